package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethanbaker/wishes/pkg/wish"
	log "github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

const (
	DEFAULT_TIMEOUT = 10 * time.Second

	// Relays such as SendGrid expect this literal username alongside the API key
	relayUsername = "apikey"
)

// sender is the part of *mail.Client used to deliver messages
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTP sends notifications through an SMTP server or relay
type SMTP struct {
	sender    sender
	from      string
	transport wish.TransportKind
	timeout   time.Duration
}

// NewSMTP validates cfg and creates an SMTP notifier for it
func NewSMTP(cfg wish.NotificationConfig) (*SMTP, error) {
	username, password, err := smtpAuth(cfg)
	if err != nil {
		return nil, &wish.ConfigurationError{Component: "notifications", Err: err}
	}

	if cfg.Host == "" {
		return nil, &wish.ConfigurationError{Component: "notifications", Err: errors.New("SMTP host is empty")}
	}

	if cfg.Sender == "" {
		return nil, &wish.ConfigurationError{Component: "notifications", Err: errors.New("sender address is empty")}
	}

	port := cfg.Port
	if port <= 0 {
		port = mail.DefaultPortTLS
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTimeout(timeout),
	}

	if port == mail.DefaultPortSSL {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	// The TLS/SSL options move port 25 to their own default, so the port goes last
	opts = append(opts, mail.WithPort(port))

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, &wish.ConfigurationError{Component: "notifications", Err: fmt.Errorf("failed to create SMTP client: %w", err)}
	}

	return &SMTP{
		sender:    client,
		from:      cfg.Sender,
		transport: cfg.Transport,
		timeout:   timeout,
	}, nil
}

// smtpAuth picks the credentials for the configured transport kind
func smtpAuth(cfg wish.NotificationConfig) (string, string, error) {
	switch cfg.Transport {
	case wish.TransportRelayAPIKey:
		if cfg.APIKey == "" {
			return "", "", errors.New("SMTP_API_KEY not set in environment")
		}
		return relayUsername, cfg.APIKey, nil

	case wish.TransportPassword:
		if cfg.Username == "" || cfg.Password == "" {
			return "", "", errors.New("SMTP_USERNAME and SMTP_PASSWORD must both be set")
		}
		return cfg.Username, cfg.Password, nil

	default:
		return "", "", fmt.Errorf("unknown notification transport %q", cfg.Transport)
	}
}

// Notify sends msg in a single attempt
func (s *SMTP) Notify(ctx context.Context, msg Message) (wish.Outcome, error) {
	m, err := s.build(msg)
	if err != nil {
		return wish.OutcomeFailed, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sender.DialAndSendWithContext(ctx, m); err != nil {
		log.WithFields(failureFields(s.transport, msg.Recipients, err)).Errorf("[NOTIFY]: SMTP send failed: %v", err)
		return wish.OutcomeFailed, &wish.UpstreamError{Service: "smtp", Err: err}
	}

	accepted, _ := m.GetRecipients()
	log.WithFields(log.Fields{"transport": s.transport, "accepted": accepted}).Info("[NOTIFY]: Notification sent")

	return wish.OutcomeSent, nil
}

// failureFields describes a failed send. Recipients only count as rejected when the server refused them at RCPT TO
func failureFields(transport wish.TransportKind, recipients []string, err error) log.Fields {
	fields := log.Fields{"transport": transport}

	var sendErr *mail.SendError
	if !errors.As(err, &sendErr) {
		fields["recipients"] = recipients
		return fields
	}

	if sendErr.Reason == mail.ErrSMTPRcptTo {
		fields["rejected"] = recipients
	} else {
		fields["recipients"] = recipients
	}

	fields["reason"] = sendErr.Reason.String()
	fields["temporary"] = sendErr.IsTemp()
	fields["code"] = sendErr.ErrorCode()
	if status := sendErr.EnhancedStatusCode(); status != "" {
		fields["status"] = status
	}

	return fields
}

// build converts msg into a mail message
func (s *SMTP) build(msg Message) (*mail.Msg, error) {
	if len(msg.Recipients) == 0 {
		return nil, &wish.ConfigurationError{Component: "notifications", Err: errors.New("no recipients configured")}
	}

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, &wish.ConfigurationError{Component: "notifications", Err: fmt.Errorf("invalid sender: %w", err)}
	}

	if err := m.To(msg.Recipients...); err != nil {
		return nil, &wish.ConfigurationError{Component: "notifications", Err: fmt.Errorf("invalid recipients: %w", err)}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}
