package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethanbaker/wishes/internal/credentials"
	"github.com/ethanbaker/wishes/pkg/wish"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	SERVICE_NAME    = "google sheets"
	DEFAULT_TIMEOUT = 15 * time.Second

	valueInputRaw    = "RAW"
	insertRowsOption = "INSERT_ROWS"
)

// Appender appends rows to a spreadsheet target
type Appender interface {
	Append(ctx context.Context, target wish.SpreadsheetTarget, row []any) error
}

// Client wraps the Google Sheets API service. It is built once and shared by all requests
type Client struct {
	service *sheetsapi.Service
	timeout time.Duration
}

// NewClient creates an authenticated client from a credential bundle. The token source refreshes
// expired access tokens in memory; refreshed tokens are not written back to disk
func NewClient(ctx context.Context, bundle *credentials.Bundle, timeout time.Duration) (*Client, error) {
	if bundle == nil || bundle.Config == nil || bundle.Token == nil {
		return nil, &wish.ConfigurationError{Component: "sheets", Err: errors.New("missing credential bundle")}
	}

	httpClient := oauth2.NewClient(ctx, bundle.Config.TokenSource(ctx, bundle.Token))
	return NewClientWithOptions(ctx, timeout, option.WithHTTPClient(httpClient))
}

// NewClientWithOptions creates a client from raw API options
func NewClientWithOptions(ctx context.Context, timeout time.Duration, opts ...option.ClientOption) (*Client, error) {
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, &wish.ConfigurationError{Component: "sheets", Err: fmt.Errorf("failed to create sheets service: %w", err)}
	}

	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	return &Client{service: service, timeout: timeout}, nil
}

// Append inserts one row below the existing data of the target range. Existing rows are never overwritten
func (c *Client) Append(ctx context.Context, target wish.SpreadsheetTarget, row []any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	values := &sheetsapi.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]any{row},
	}

	resp, err := c.service.Spreadsheets.Values.Append(target.SpreadsheetID, target.Range(), values).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRowsOption).
		Context(ctx).
		Do()
	if err != nil {
		return &wish.UpstreamError{Service: SERVICE_NAME, Err: err}
	}

	if resp.Updates != nil {
		log.WithFields(log.Fields{
			"sheet": target.SheetName,
			"range": resp.Updates.UpdatedRange,
			"rows":  resp.Updates.UpdatedRows,
		}).Debug("[SHEETS]: Appended row")
	}

	return nil
}

// Read returns the values currently held in the target's wish columns
func (c *Client) Read(ctx context.Context, target wish.SpreadsheetTarget) ([][]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.service.Spreadsheets.Values.Get(target.SpreadsheetID, target.Range()).Context(ctx).Do()
	if err != nil {
		return nil, &wish.UpstreamError{Service: SERVICE_NAME, Err: err}
	}

	return resp.Values, nil
}

// Unconfigured is used when the credential bundle could not be loaded. Every append fails
// with the configuration error that was found at startup
type Unconfigured struct {
	Err error
}

// Append always fails with a configuration error
func (u Unconfigured) Append(ctx context.Context, target wish.SpreadsheetTarget, row []any) error {
	switch {
	case u.Err == nil:
		return &wish.ConfigurationError{Component: "sheets", Err: errors.New("credentials unavailable")}
	case wish.IsConfiguration(u.Err):
		return u.Err
	default:
		return &wish.ConfigurationError{Component: "sheets", Err: u.Err}
	}
}
