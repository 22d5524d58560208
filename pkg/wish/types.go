package wish

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Submission is a single wish received by the service. The spreadsheet row is its only durable record
type Submission struct {
	ID         uuid.UUID
	Wish       string
	ReceivedAt time.Time
}

// NewSubmission creates a submission stamped with the current UTC time
func NewSubmission(text string) (*Submission, error) {
	if text == "" {
		return nil, &ValidationError{Field: "wish", Reason: "content is missing"}
	}

	return &Submission{
		ID:         uuid.New(),
		Wish:       text,
		ReceivedAt: time.Now().UTC(),
	}, nil
}

// Timestamp returns the ISO-8601 form of the receive time stored in the sheet
func (s *Submission) Timestamp() string {
	return s.ReceivedAt.Format(time.RFC3339Nano)
}

// Row returns the two-column row appended to the spreadsheet
func (s *Submission) Row() []any {
	return []any{s.Timestamp(), s.Wish}
}

// SpreadsheetTarget identifies where rows are appended
type SpreadsheetTarget struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`
	SheetName     string `yaml:"sheet_name"`
}

// Range returns the A1 range covering the two wish columns. The sheet name is always quoted
func (t SpreadsheetTarget) Range() string {
	return "'" + strings.ReplaceAll(t.SheetName, "'", "''") + "'!A:B"
}

// TransportKind selects how the notification transport authenticates
type TransportKind string

const (
	TransportRelayAPIKey TransportKind = "smtp-relay-api-key" // SMTP relay, username "apikey" and the key as password
	TransportPassword    TransportKind = "smtp-password"      // Plain SMTP username/password
)

// NotificationConfig holds process-wide email settings
type NotificationConfig struct {
	Enabled    bool
	Isolated   bool
	Transport  TransportKind
	Host       string
	Port       int
	Username   string
	Password   string
	APIKey     string
	Sender     string
	Recipients []string
	Subject    string
	Timeout    time.Duration
}

// Outcome is the result of a notification attempt
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)
