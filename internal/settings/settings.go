package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethanbaker/wishes/pkg/utils"
	"github.com/ethanbaker/wishes/pkg/wish"
	log "github.com/sirupsen/logrus"
)

const (
	ENV_DEVELOPMENT = "development"
	ENV_PRODUCTION  = "production"

	DEFAULT_PORT       = "4000"
	DEFAULT_SHEET_NAME = "Sheet1"
	DEFAULT_SMTP_HOST  = "smtp.sendgrid.net"
	DEFAULT_SMTP_PORT  = 587
)

// Settings is the validated, read-only configuration of the service
type Settings struct {
	Environment     string
	Port            string
	AllowedOrigins  []string
	Target          wish.SpreadsheetTarget
	SheetsTimeout   time.Duration
	CredentialsPath string
	TokenPath       string
	Notification    wish.NotificationConfig
}

// Production reports whether the service runs with production strictness
func (s *Settings) Production() bool {
	return s.Environment == ENV_PRODUCTION
}

// Load reads settings from cfg. In production, missing critical values fail with a ConfigurationError;
// in development they are logged and left for the affected component to report
func Load(cfg *utils.Config) (*Settings, error) {
	s := &Settings{
		Environment:     strings.ToLower(cfg.GetWithDefault("APP_ENV", ENV_DEVELOPMENT)),
		Port:            cfg.GetWithDefault("PORT", DEFAULT_PORT),
		AllowedOrigins:  cfg.GetList("CORS_ALLOWED_ORIGINS"),
		SheetsTimeout:   cfg.GetDurationWithDefault("SHEETS_TIMEOUT", 15*time.Second),
		CredentialsPath: cfg.GetWithDefault("GOOGLE_CREDENTIALS_PATH", "credentials.json"),
		TokenPath:       cfg.GetWithDefault("GOOGLE_TOKEN_PATH", "token.json"),
		Target: wish.SpreadsheetTarget{
			SpreadsheetID: cfg.Get("SHEET_ID"),
			SheetName:     cfg.GetWithDefault("SHEET_NAME", DEFAULT_SHEET_NAME),
		},
		Notification: wish.NotificationConfig{
			Enabled:    cfg.GetBool("NOTIFY_ENABLED"),
			Isolated:   cfg.GetBoolWithDefault("NOTIFY_ISOLATED", true),
			Transport:  wish.TransportKind(cfg.GetWithDefault("NOTIFY_TRANSPORT", string(wish.TransportRelayAPIKey))),
			Host:       cfg.GetWithDefault("SMTP_HOST", DEFAULT_SMTP_HOST),
			Port:       cfg.GetIntWithDefault("SMTP_PORT", DEFAULT_SMTP_PORT),
			Username:   cfg.Get("SMTP_USERNAME"),
			Password:   cfg.Get("SMTP_PASSWORD"),
			APIKey:     cfg.GetFirst("SMTP_API_KEY", "SENDGRID_API_KEY"),
			Sender:     cfg.Get("EMAIL_FROM"),
			Recipients: cfg.GetList("EMAIL_TO"),
			Timeout:    cfg.GetDurationWithDefault("NOTIFY_TIMEOUT", 10*time.Second),
		},
	}

	if len(s.AllowedOrigins) == 0 {
		s.AllowedOrigins = []string{"*"}
	}

	if s.Environment != ENV_DEVELOPMENT && s.Environment != ENV_PRODUCTION {
		return nil, &wish.ConfigurationError{Component: "settings", Err: fmt.Errorf("unknown APP_ENV %q", s.Environment)}
	}

	if path := cfg.Get("NOTIFY_CONFIG_PATH"); path != "" {
		file, err := LoadNotificationFile(path)
		if err != nil {
			return nil, &wish.ConfigurationError{Component: "notifications", Err: err}
		}
		file.Apply(&s.Notification)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// validate checks critical values, failing only in production
func (s *Settings) validate() error {
	var problems []error

	if s.Target.SpreadsheetID == "" {
		problems = append(problems, &wish.ConfigurationError{Component: "sheets", Err: errors.New("SHEET_ID not set in environment")})
	}

	if s.Notification.Enabled {
		if s.Notification.Sender == "" {
			problems = append(problems, &wish.ConfigurationError{Component: "notifications", Err: errors.New("EMAIL_FROM not set in environment")})
		}
		if len(s.Notification.Recipients) == 0 {
			problems = append(problems, &wish.ConfigurationError{Component: "notifications", Err: errors.New("EMAIL_TO not set in environment")})
		}
	}

	if len(problems) == 0 {
		return nil
	}

	if s.Production() {
		return errors.Join(problems...)
	}

	for _, problem := range problems {
		log.Warnf("[SETTINGS]: %v", problem)
	}
	return nil
}
