package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidTopN is returned when the requested ranking size cannot be parsed.
	ErrInvalidTopN = errors.New("top must be an integer")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTopN ReportErrorCode = "RPT-010001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

func (e *ReportError) Error() string { return describe(e.Message, e.Err) }

func (e *ReportError) Unwrap() error { return e.Err }

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{Code: code, Message: message, Err: err}
}
