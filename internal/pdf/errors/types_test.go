package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      string
	}{
		{ErrorTypeUnknown, "UNKNOWN"},
		{ErrorTypeUnreadableDocument, "UNREADABLE_DOCUMENT"},
		{ErrorTypeStrategyFailure, "STRATEGY_FAILURE"},
		{ErrorTypeInvalidInput, "INVALID_INPUT"},
		{ErrorTypeFileAccess, "FILE_ACCESS"},
		{ErrorTypeCanceled, "CANCELED"},
		{ErrorType(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestErrorType_IsRecoverable(t *testing.T) {
	assert.True(t, ErrorTypeStrategyFailure.IsRecoverable())
	assert.False(t, ErrorTypeUnreadableDocument.IsRecoverable())
	assert.False(t, ErrorTypeInvalidInput.IsRecoverable())
}

func TestExtractionError_Error(t *testing.T) {
	err := NewUnreadableDocument()
	assert.Equal(t, "[UNREADABLE_DOCUMENT] "+UnreadableDocumentMessage, err.Error())

	failure := NewStrategyFailure("structured", fmt.Errorf("bad xref"))
	assert.Equal(t, "[STRATEGY_FAILURE] structured: strategy failed: bad xref", failure.Error())

	withFile := New(ErrorTypeFileAccess, "cannot read file").WithFile("/tmp/cv.pdf").WithContext("permission denied")
	assert.Equal(t, "/tmp/cv.pdf", withFile.FilePath)
	assert.Contains(t, withFile.Error(), "permission denied")
}

func TestIsUnreadableDocument(t *testing.T) {
	wrapped := fmt.Errorf("extract resume: %w", NewUnreadableDocument())

	assert.True(t, IsUnreadableDocument(wrapped))
	assert.False(t, IsUnreadableDocument(errors.New("plain")))
	assert.False(t, IsUnreadableDocument(nil))
	assert.False(t, IsUnreadableDocument(New(ErrorTypeInvalidInput, "bad")))
	assert.True(t, IsInvalidInput(New(ErrorTypeInvalidInput, "bad")))
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := Wrap(ErrorTypeFileAccess, "cannot read file", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorTypeFileAccess, TypeOf(err))
}

func TestGuard(t *testing.T) {
	t.Run("returns text", func(t *testing.T) {
		text, err := Guard("ok", func() (string, error) { return "hello", nil })
		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("wraps error", func(t *testing.T) {
		cause := errors.New("boom")
		text, err := Guard("failing", func() (string, error) { return "partial", cause })
		require.Error(t, err)
		assert.Empty(t, text)
		assert.ErrorIs(t, err, cause)

		var extractionErr *ExtractionError
		require.ErrorAs(t, err, &extractionErr)
		assert.Equal(t, ErrorTypeStrategyFailure, extractionErr.Type)
		assert.Equal(t, "failing", extractionErr.Strategy)
	})

	t.Run("recovers panic", func(t *testing.T) {
		text, err := Guard("panicky", func() (string, error) { panic("index out of range") })
		require.Error(t, err)
		assert.Empty(t, text)

		var panicErr *PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.Equal(t, "index out of range", panicErr.Value)
		assert.NotEmpty(t, panicErr.StackTrace)
	})
}
