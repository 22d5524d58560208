package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const SUBMIT_WISH_PATH = "/submit-wish"

// APIError is returned when the service answers with a non-2xx status
type APIError struct {
	StatusCode int
	Response   WishResponse
}

func (e *APIError) Error() string {
	if e.Response.Error != "" {
		return fmt.Sprintf("wishes service returned %d: %s (%s)", e.StatusCode, e.Response.Message, e.Response.Error)
	}
	return fmt.Sprintf("wishes service returned %d: %s", e.StatusCode, e.Response.Message)
}

// Client wraps calls to the wishes service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SubmitWish posts a wish and returns the service's response
func (c *Client) SubmitWish(ctx context.Context, wish string) (*WishResponse, error) {
	var out WishResponse
	if err := c.doJSON(ctx, http.MethodPost, SUBMIT_WISH_PATH, &WishRequest{Wish: wish}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// doJSON is a helper to perform JSON requests to the service
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out *WishResponse) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Response: WishResponse{Message: string(raw)}}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	out.Code = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Response: *out}
	}

	return nil
}
