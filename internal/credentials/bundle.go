package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethanbaker/wishes/pkg/wish"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Bundle is the OAuth client descriptor together with its access token, loaded once at startup
type Bundle struct {
	Config *oauth2.Config
	Token  *oauth2.Token
}

// LoadConfig reads an installed-app (or web) client descriptor from credentials.json
func LoadConfig(credentialsPath string, scopes ...string) (*oauth2.Config, error) {
	credentialsJSON, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	return config, nil
}

// LoadToken reads and parses an OAuth2 token file
func LoadToken(tokenPath string) (*oauth2.Token, error) {
	tokenJSON, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenJSON, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token JSON: %w", err)
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, errors.New("token file holds neither an access nor a refresh token")
	}

	return &token, nil
}

// Load reads both artifacts. Any failure is reported as a configuration error for the named component
func Load(component, credentialsPath, tokenPath string, scopes ...string) (*Bundle, error) {
	config, err := LoadConfig(credentialsPath, scopes...)
	if err != nil {
		return nil, &wish.ConfigurationError{Component: component, Err: err}
	}

	token, err := LoadToken(tokenPath)
	if err != nil {
		return nil, &wish.ConfigurationError{Component: component, Err: err}
	}

	return &Bundle{Config: config, Token: token}, nil
}

// SaveToken writes the token to path with owner-only permissions
func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to save token: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(token)
}
