package notify

import (
	"context"

	"github.com/ethanbaker/wishes/pkg/wish"
	log "github.com/sirupsen/logrus"
)

// Message is a rendered notification ready to be handed to a transport
type Message struct {
	Subject    string
	Text       string
	HTML       string
	Recipients []string
}

// Notifier delivers notification messages
type Notifier interface {
	Notify(ctx context.Context, msg Message) (wish.Outcome, error)
}

// New builds the notifier described by cfg. Configuration problems never fail startup; they surface
// on each notify call instead, where isolation decides whether they reach the caller
func New(cfg wish.NotificationConfig) Notifier {
	if !cfg.Enabled {
		return Disabled{}
	}

	var notifier Notifier
	if smtp, err := NewSMTP(cfg); err != nil {
		log.Errorf("[NOTIFY]: Notifications enabled but misconfigured: %v", err)
		notifier = Failing{Err: err}
	} else {
		notifier = smtp
	}

	if cfg.Isolated {
		return Isolated{Notifier: notifier}
	}
	return notifier
}

// Disabled skips every notification
type Disabled struct{}

func (Disabled) Notify(ctx context.Context, msg Message) (wish.Outcome, error) {
	return wish.OutcomeSkipped, nil
}

// Failing reports the same error for every notification
type Failing struct {
	Err error
}

func (f Failing) Notify(ctx context.Context, msg Message) (wish.Outcome, error) {
	return wish.OutcomeFailed, f.Err
}

// Isolated logs and swallows failures of the wrapped notifier so they never fail the caller
type Isolated struct {
	Notifier Notifier
}

func (i Isolated) Notify(ctx context.Context, msg Message) (wish.Outcome, error) {
	outcome, err := i.Notifier.Notify(ctx, msg)
	if err != nil {
		log.WithField("recipients", msg.Recipients).Warnf("[NOTIFY]: Notification failed, continuing: %v", err)
		return wish.OutcomeFailed, nil
	}

	return outcome, nil
}
