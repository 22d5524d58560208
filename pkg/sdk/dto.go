package sdk

import (
	"encoding/json"
	"net/http"
)

// WishRequest is the body of a wish submission
type WishRequest struct {
	Wish string `json:"wish"`
}

// WishResponse is the envelope returned by the wish endpoints
type WishResponse struct {
	Code    int    `json:"-"`               // HTTP status code, not serialized
	Success bool   `json:"success"`         // Whether the wish was durably saved
	Message string `json:"message"`         // Human-readable message
	Error   string `json:"error,omitempty"` // Underlying error message for server failures
}

// AsGinResponse converts the response to a format suitable for Gin framework
func (r WishResponse) AsGinResponse() (int, any) {
	return r.Code, r
}

// AsJSON converts the response to a JSON string
func (r WishResponse) AsJSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NewSuccess(message string) WishResponse {
	return WishResponse{
		Code:    http.StatusOK,
		Success: true,
		Message: message,
	}
}

// NewErrorResponse builds a failure envelope. A nil err leaves the error field empty
func NewErrorResponse(code int, message string, err error) WishResponse {
	resp := WishResponse{
		Code:    code,
		Success: false,
		Message: message,
	}

	if err != nil {
		resp.Error = err.Error()
	}

	return resp
}
