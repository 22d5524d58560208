package sheets

import (
	"context"
	"errors"
	"time"

	"github.com/ethanbaker/wishes/internal/credentials"
	"github.com/ethanbaker/wishes/pkg/wish"
	log "github.com/sirupsen/logrus"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Open builds the shared appender for target from the credential files at startup. Problems are
// logged and returned as an Unconfigured appender so each request reports them
func Open(ctx context.Context, target wish.SpreadsheetTarget, credentialsPath, tokenPath string, timeout time.Duration) Appender {
	if target.SpreadsheetID == "" {
		return Unconfigured{Err: &wish.ConfigurationError{Component: "sheets", Err: errors.New("SHEET_ID not set in environment")}}
	}

	bundle, err := credentials.Load("sheets", credentialsPath, tokenPath, sheetsapi.SpreadsheetsScope)
	if err != nil {
		log.Errorf("[SHEETS]: Spreadsheet client unavailable: %v", err)
		return Unconfigured{Err: err}
	}

	client, err := NewClient(ctx, bundle, timeout)
	if err != nil {
		log.Errorf("[SHEETS]: Spreadsheet client unavailable: %v", err)
		return Unconfigured{Err: err}
	}

	return client
}
