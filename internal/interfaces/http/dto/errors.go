package dto

import "net/http"

// Error codes shared between the domain layer and the HTTP surface.
// Domain services attach these to DomainError values; the handlers only
// translate them to status codes here.

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Authentication and authorization error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks the required role
	ErrCodeForbidden = "FORBIDDEN"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeConcurrencyConflict is used when a conditional update loses a race
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "INVALID_STATE"
	// ErrCodeInvalidTransition is used when a lifecycle transition is not allowed
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	// ErrCodeNoValidItems is used when every line of an order was dropped
	ErrCodeNoValidItems = "NO_VALID_ITEMS"
	// ErrCodeOfferExpired is used when a coupon is past its window or inactive
	ErrCodeOfferExpired = "OFFER_EXPIRED"
	// ErrCodeHasChildren is used when deleting a category that still has children
	ErrCodeHasChildren = "HAS_CHILDREN"
)

// Upstream error codes
const (
	// ErrCodeUpstreamFailure is used when an external collaborator fails
	ErrCodeUpstreamFailure = "UPSTREAM_FAILURE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Validation-style codes (INVALID_EMAIL, INVALID_PRICE, ...) are not
// listed individually; they fall through to 400 via the INVALID_ prefix
// in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound: http.StatusNotFound,
	// Duplicate registrations are reported as a client mistake rather
	// than a conflict so the error surfaces alongside other form errors.
	ErrCodeAlreadyExists:       http.StatusBadRequest,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeInvalidTransition: http.StatusUnprocessableEntity,
	ErrCodeNoValidItems:      http.StatusUnprocessableEntity,
	ErrCodeOfferExpired:      http.StatusUnprocessableEntity,
	ErrCodeHasChildren:       http.StatusUnprocessableEntity,
	"ALREADY_APPROVED":       http.StatusUnprocessableEntity,
	"INVALID_PARENT":         http.StatusUnprocessableEntity,

	ErrCodeUpstreamFailure: http.StatusInternalServerError,

	"INVALID_INPUT": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// INVALID_* codes not present in the map are treated as validation
// failures; anything else unknown maps to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if len(code) > 8 && code[:8] == "INVALID_" {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
