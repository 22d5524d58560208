package wish

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmission(t *testing.T) {
	t.Run("valid wish", func(t *testing.T) {
		before := time.Now().UTC()
		sub, err := NewSubmission("Happy Birthday!")
		after := time.Now().UTC()

		require.NoError(t, err)
		assert.Equal(t, "Happy Birthday!", sub.Wish)
		assert.False(t, sub.ReceivedAt.Before(before))
		assert.False(t, sub.ReceivedAt.After(after))
		assert.NotEqual(t, sub.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("empty", func(t *testing.T) {
		sub, err := NewSubmission("")
		assert.Nil(t, sub)
		assert.True(t, IsValidation(err))
	})

	for _, text := range []string{"   ", "\n\t"} {
		t.Run(fmt.Sprintf("whitespace %q", text), func(t *testing.T) {
			sub, err := NewSubmission(text)
			require.NoError(t, err)
			assert.Equal(t, text, sub.Wish)
		})
	}
}

func TestSubmissionRow(t *testing.T) {
	sub, err := NewSubmission("Many happy returns")
	require.NoError(t, err)

	row := sub.Row()
	require.Len(t, row, 2)
	assert.Equal(t, "Many happy returns", row[1])

	parsed, err := time.Parse(time.RFC3339Nano, row[0].(string))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(sub.ReceivedAt))
}

func TestSpreadsheetTargetRange(t *testing.T) {
	tests := map[string]string{
		"Wishes":      "'Wishes'!A:B",
		"Sheet1":      "'Sheet1'!A:B",
		"Bob's Party": "'Bob''s Party'!A:B",
		"A1":          "'A1'!A:B",
		"Hi!There":    "'Hi!There'!A:B",
	}

	for name, want := range tests {
		target := SpreadsheetTarget{SpreadsheetID: "abc", SheetName: name}
		assert.Equal(t, want, target.Range(), name)
	}
}

func TestErrorClassification(t *testing.T) {
	cause := errors.New("boom")

	cfgErr := fmt.Errorf("startup: %w", &ConfigurationError{Component: "sheets", Err: cause})
	assert.True(t, IsConfiguration(cfgErr))
	assert.False(t, IsUpstream(cfgErr))
	assert.ErrorIs(t, cfgErr, cause)
	assert.Contains(t, cfgErr.Error(), "sheets is not configured: boom")

	upErr := &UpstreamError{Service: "google sheets", Err: cause}
	assert.True(t, IsUpstream(upErr))
	assert.False(t, IsValidation(upErr))
	assert.Equal(t, "google sheets request failed: boom", upErr.Error())

	valErr := &ValidationError{Field: "wish", Reason: "content is missing"}
	assert.True(t, IsValidation(valErr))
	assert.Equal(t, "wish: content is missing", valErr.Error())
}
