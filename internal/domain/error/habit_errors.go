package error

import "errors"

// Habit domain errors.
var (
	ErrHabitNotFound = errors.New("habit not found")

	// ErrHabitAlreadyExists is returned when the user already has a habit for the activity.
	ErrHabitAlreadyExists = errors.New("habit already exists for this activity")

	ErrInvalidFrequency = errors.New("frequency must be greater than zero")
	ErrInvalidHabitType = errors.New("habit type must be: daily, weekly, or monthly")
)

// HabitErrorCode defines error codes for habit errors.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency   HabitErrorCode = "HAB-010001"
	ErrCodeInvalidHabitType   HabitErrorCode = "HAB-010002"
	ErrCodeHabitActivity      HabitErrorCode = "HAB-010003"
	ErrCodeMissingHabitFields HabitErrorCode = "HAB-010004"

	// Conflict and lookup errors (02XXXX)
	ErrCodeHabitNotFound      HabitErrorCode = "HAB-020001"
	ErrCodeHabitAlreadyExists HabitErrorCode = "HAB-020002"

	// Internal errors (99XXXX)
	ErrCodeHabitInternalError HabitErrorCode = "HAB-990001"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

func (e *HabitError) Error() string { return describe(e.Message, e.Err) }

func (e *HabitError) Unwrap() error { return e.Err }

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{Code: code, Message: message, Err: err}
}
