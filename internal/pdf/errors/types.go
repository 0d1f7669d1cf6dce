package errors

import (
	"errors"
	"fmt"
	"time"
)

// ExtractionError is the typed error raised by the resume extraction pipeline.
type ExtractionError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Context   string    `json:"context,omitempty"`
	Strategy  string    `json:"strategy,omitempty"`
	FilePath  string    `json:"file_path,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Err       error     `json:"-"`
}

// ErrorType represents the categories of extraction errors
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeUnreadableDocument
	ErrorTypeStrategyFailure
	ErrorTypeInvalidInput
	ErrorTypeFileAccess
	ErrorTypeCanceled
)

// UnreadableDocumentMessage is the message carried by unreadable document errors.
const UnreadableDocumentMessage = "could not extract readable text from the document; " +
	"it may be password-protected, scanned, or in an unsupported format"

// Error implements the error interface
func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
	if e.Strategy != "" {
		msg = fmt.Sprintf("[%s] %s: %s", e.Type.String(), e.Strategy, e.Message)
	}
	if e.Context != "" {
		msg += ": " + e.Context
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// String returns a string representation of the ErrorType
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeUnreadableDocument:
		return "UNREADABLE_DOCUMENT"
	case ErrorTypeStrategyFailure:
		return "STRATEGY_FAILURE"
	case ErrorTypeInvalidInput:
		return "INVALID_INPUT"
	case ErrorTypeFileAccess:
		return "FILE_ACCESS"
	case ErrorTypeCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// IsRecoverable reports whether the pipeline carries on after an error of this type.
func (et ErrorType) IsRecoverable() bool {
	switch et {
	case ErrorTypeStrategyFailure:
		return true // next strategy runs
	default:
		return false
	}
}

// New creates an ExtractionError of the given type.
func New(errorType ErrorType, message string) *ExtractionError {
	return &ExtractionError{
		Type:      errorType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap wraps err as an ExtractionError of the given type.
func Wrap(errorType ErrorType, message string, err error) *ExtractionError {
	e := New(errorType, message)
	e.Err = err
	if err != nil {
		e.Context = err.Error()
	}
	return e
}

// NewUnreadableDocument creates the error returned once every extraction strategy is exhausted.
func NewUnreadableDocument() *ExtractionError {
	return New(ErrorTypeUnreadableDocument, UnreadableDocumentMessage)
}

// NewStrategyFailure records a failed extraction strategy.
func NewStrategyFailure(strategy string, err error) *ExtractionError {
	e := Wrap(ErrorTypeStrategyFailure, "strategy failed", err)
	e.Strategy = strategy
	return e
}

// WithContext adds context to an existing ExtractionError
func (e *ExtractionError) WithContext(context string) *ExtractionError {
	e.Context = context
	return e
}

// WithFile adds file path information to an existing ExtractionError
func (e *ExtractionError) WithFile(filePath string) *ExtractionError {
	e.FilePath = filePath
	return e
}

// TypeOf returns the ErrorType of the first ExtractionError in err's chain,
// or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var e *ExtractionError
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsUnreadableDocument reports whether err means no strategy produced usable text.
func IsUnreadableDocument(err error) bool {
	return TypeOf(err) == ErrorTypeUnreadableDocument
}

// IsInvalidInput reports whether err was caused by a bad request argument or file.
func IsInvalidInput(err error) bool {
	return TypeOf(err) == ErrorTypeInvalidInput
}

// As returns the first ExtractionError in err's chain.
func As(err error) (*ExtractionError, bool) {
	var e *ExtractionError
	ok := errors.As(err, &e)
	return e, ok
}
