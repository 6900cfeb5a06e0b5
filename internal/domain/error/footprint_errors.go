package error

import "errors"

// Footprint (activity record) domain errors.
var (
	// ErrFootprintNotFound is returned when a record does not exist or belongs to another user.
	ErrFootprintNotFound = errors.New("footprint not found")

	// ErrInvalidQuantity is returned for negative, NaN or infinite quantities.
	ErrInvalidQuantity = errors.New("quantity must be a finite number greater than or equal to zero")

	ErrMissingOccurredOn = errors.New("occurred_on is required")
	ErrFutureOccurredOn  = errors.New("occurred_on cannot be in the future")
	ErrMissingUnit       = errors.New("unit is required")
	ErrInvalidDateFilter = errors.New("invalid date filter, expected YYYY-MM-DD")
)

// FootprintErrorCode defines error codes for footprint errors.
type FootprintErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidQuantity       FootprintErrorCode = "FPR-010001"
	ErrCodeMissingOccurredOn     FootprintErrorCode = "FPR-010002"
	ErrCodeFutureOccurredOn      FootprintErrorCode = "FPR-010003"
	ErrCodeMissingUnit           FootprintErrorCode = "FPR-010004"
	ErrCodeFootprintActivity     FootprintErrorCode = "FPR-010005"
	ErrCodeInvalidDateFilter     FootprintErrorCode = "FPR-010006"
	ErrCodeMissingFootprintField FootprintErrorCode = "FPR-010007"

	// Lookup errors (02XXXX)
	ErrCodeFootprintNotFound FootprintErrorCode = "FPR-020001"

	// Internal errors (99XXXX)
	ErrCodeFootprintInternalError FootprintErrorCode = "FPR-990001"
)

// FootprintError represents a footprint error with code and message.
type FootprintError struct {
	Code    FootprintErrorCode
	Message string
	Err     error
}

func (e *FootprintError) Error() string { return describe(e.Message, e.Err) }

func (e *FootprintError) Unwrap() error { return e.Err }

// NewFootprintError creates a new FootprintError with the given code and message.
func NewFootprintError(code FootprintErrorCode, message string, err error) *FootprintError {
	return &FootprintError{Code: code, Message: message, Err: err}
}
