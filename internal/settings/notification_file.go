package settings

import (
	"fmt"
	"os"

	"github.com/ethanbaker/wishes/pkg/wish"
	"gopkg.in/yaml.v3"
)

// NotificationFile is the optional YAML file overriding notification details
type NotificationFile struct {
	Subject    string   `yaml:"subject"`
	Sender     string   `yaml:"sender"`
	Recipients []string `yaml:"recipients"`
}

// LoadNotificationFile reads and parses the notification YAML file at path
func LoadNotificationFile(path string) (*NotificationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification config file: %w", err)
	}

	var file NotificationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse notification config file: %w", err)
	}

	return &file, nil
}

// Apply copies the non-empty fields of the file onto cfg
func (f *NotificationFile) Apply(cfg *wish.NotificationConfig) {
	if f.Subject != "" {
		cfg.Subject = f.Subject
	}
	if f.Sender != "" {
		cfg.Sender = f.Sender
	}
	if len(f.Recipients) > 0 {
		cfg.Recipients = f.Recipients
	}
}
