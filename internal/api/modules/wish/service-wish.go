package wish_module

import (
	"context"
	"fmt"

	"github.com/ethanbaker/wishes/internal/notify"
	"github.com/ethanbaker/wishes/internal/sheets"
	"github.com/ethanbaker/wishes/pkg/wish"
	log "github.com/sirupsen/logrus"
)

// WishService records submissions in the spreadsheet and sends the optional notification.
// It holds no per-request state and is shared by all requests
type WishService struct {
	appender   sheets.Appender
	notifier   notify.Notifier
	target     wish.SpreadsheetTarget
	subject    string
	recipients []string
}

// Result describes a saved submission
type Result struct {
	Submission *wish.Submission
	Outcome    wish.Outcome
}

// NewWishService creates a service over already-initialized adapters
func NewWishService(appender sheets.Appender, notifier notify.Notifier, target wish.SpreadsheetTarget, notification wish.NotificationConfig) *WishService {
	return &WishService{
		appender:   appender,
		notifier:   notifier,
		target:     target,
		subject:    notification.Subject,
		recipients: notification.Recipients,
	}
}

// Submit validates and appends the wish, then notifies. A nil Result means nothing was saved.
// A non-nil Result together with an error means the row exists but the notification failed
func (s *WishService) Submit(ctx context.Context, text string) (*Result, error) {
	sub, err := wish.NewSubmission(text)
	if err != nil {
		return nil, err
	}

	logger := log.WithField("submission", sub.ID.String())
	logger.Printf("[WISH]: Received wish: %q", sub.Wish)

	if err := s.appender.Append(ctx, s.target, sub.Row()); err != nil {
		logger.Errorf("[WISH]: Failed to save wish: %v", err)
		return nil, err
	}
	logger.WithField("sheet", s.target.SheetName).Print("[WISH]: Wish saved to Google Sheet")

	result := &Result{Submission: sub}

	result.Outcome, err = s.notifier.Notify(ctx, notify.Compose(sub, s.subject, s.recipients))
	if err != nil {
		return result, fmt.Errorf("failed to send notification: %w", err)
	}

	logger.WithField("outcome", result.Outcome).Debug("[WISH]: Notification finished")
	return result, nil
}
