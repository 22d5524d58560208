package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitWish(t *testing.T) {
	var received WishRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, SUBMIT_WISH_PATH, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true,"message":"Wish saved to Google Sheets successfully."}`))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL+"/").SubmitWish(context.Background(), "Happy Birthday!")
	require.NoError(t, err)

	assert.Equal(t, "Happy Birthday!", received.Wish)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Wish saved to Google Sheets successfully.", resp.Message)
}

func TestSubmitWishErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
		errMsg  string
	}{
		{"validation", http.StatusBadRequest, `{"success":false,"message":"Wish content is missing."}`, "Wish content is missing.", ""},
		{"server", http.StatusInternalServerError, `{"success":false,"message":"Internal server error.","error":"quota exceeded"}`, "Internal server error.", "quota exceeded"},
		{"not json", http.StatusBadGateway, `bad gateway`, "bad gateway", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := NewClient(server.URL).SubmitWish(context.Background(), "")
			assert.Nil(t, resp)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.False(t, apiErr.Response.Success)
			assert.Equal(t, tt.message, apiErr.Response.Message)
			assert.Equal(t, tt.errMsg, apiErr.Response.Error)
		})
	}
}

func TestResponseEnvelope(t *testing.T) {
	code, body := NewErrorResponse(http.StatusInternalServerError, "Internal server error.", errors.New("boom")).AsGinResponse()
	assert.Equal(t, http.StatusInternalServerError, code)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error.","error":"boom"}`, string(encoded))

	text, err := NewSuccess("ok").AsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"ok"}`, text)

	text, err = NewErrorResponse(http.StatusBadRequest, "Wish content is missing.", nil).AsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Wish content is missing."}`, text)
}
