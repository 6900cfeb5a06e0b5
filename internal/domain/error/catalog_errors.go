package error

import "errors"

// Reference catalog errors: categories, activities and recommendations.
var (
	ErrCategoryNotFound       = errors.New("category not found")
	ErrActivityNotFound       = errors.New("activity not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// CatalogErrorCode defines error codes for catalog lookups.
type CatalogErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeCategoryNotFound       CatalogErrorCode = "CAT-010001"
	ErrCodeActivityNotFound       CatalogErrorCode = "CAT-010002"
	ErrCodeRecommendationNotFound CatalogErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryID      CatalogErrorCode = "CAT-010004"

	// Internal errors (99XXXX)
	ErrCodeCatalogInternalError CatalogErrorCode = "CAT-990001"
)

// CatalogError represents a catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

func (e *CatalogError) Error() string { return describe(e.Message, e.Err) }

func (e *CatalogError) Unwrap() error { return e.Err }

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{Code: code, Message: message, Err: err}
}
