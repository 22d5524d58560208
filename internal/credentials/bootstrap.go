package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Artifact is a credential file that may be materialized from an environment variable
type Artifact struct {
	Name   string // Human readable name used in logs
	Path   string // Location on disk
	EnvKey string // Environment variable holding the file content
}

// Environment looks up a variable; os.Getenv and (*utils.Config).Get both satisfy it
type Environment func(key string) string

// Status describes what provisioning did for an artifact
type Status string

const (
	StatusPresent Status = "present" // File already existed and was left alone
	StatusWritten Status = "written" // File was written from the environment
	StatusAbsent  Status = "absent"  // Neither the file nor the variable exist
	StatusFailed  Status = "failed"  // Writing the file failed
)

// Result is the provisioning outcome of a single artifact
type Result struct {
	Artifact Artifact
	Status   Status
	Err      error
}

// DefaultArtifacts returns the OAuth client and token artifacts at the given paths
func DefaultArtifacts(credentialsPath, tokenPath string) []Artifact {
	return []Artifact{
		{Name: "credentials", Path: credentialsPath, EnvKey: "CREDENTIALS_JSON"},
		{Name: "token", Path: tokenPath, EnvKey: "TOKEN_JSON"},
	}
}

// Provision writes each absent artifact from its environment variable. Existing files are never
// overwritten and write failures are logged rather than returned, deferring the failure to first use
func Provision(artifacts []Artifact, env Environment) []Result {
	results := make([]Result, 0, len(artifacts))

	for _, artifact := range artifacts {
		status, err := provision(artifact, env)
		results = append(results, Result{Artifact: artifact, Status: status, Err: err})
	}

	return results
}

// provision performs the work for one artifact and reports what happened
func provision(artifact Artifact, env Environment) (Status, error) {
	if _, err := os.Stat(artifact.Path); err == nil {
		return StatusPresent, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Errorf("[CREDENTIALS]: Could not stat %s file %s: %v", artifact.Name, artifact.Path, err)
		return StatusFailed, err
	}

	content := env(artifact.EnvKey)
	if content == "" {
		log.Warnf("[CREDENTIALS]: %s file %s not found and %s is not set", artifact.Name, artifact.Path, artifact.EnvKey)
		return StatusAbsent, nil
	}

	if err := write(artifact, content); err != nil {
		log.Errorf("[CREDENTIALS]: Failed to write %s file %s: %v", artifact.Name, artifact.Path, err)
		return StatusFailed, err
	}

	log.Printf("[CREDENTIALS]: Wrote %s file %s from %s", artifact.Name, artifact.Path, artifact.EnvKey)
	return StatusWritten, nil
}

// write stores the content with escaped newlines restored, refusing to clobber an existing file
func write(artifact Artifact, content string) error {
	if dir := filepath.Dir(artifact.Path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(artifact.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(NormalizeNewlines(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", artifact.Path, err)
	}

	return nil
}

// NormalizeNewlines replaces literal "\n" escape sequences with real newlines
func NormalizeNewlines(content string) string {
	return strings.ReplaceAll(content, `\n`, "\n")
}
