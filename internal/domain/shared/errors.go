package shared

// DomainError is a business-rule violation with a stable machine code.
// The HTTP layer maps codes to status codes; messages are safe to show
// to API clients.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string { return e.Message }

// Is matches any DomainError carrying the same code, so wrapped copies of
// a sentinel still satisfy errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError builds a DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Sentinels shared across contexts. Contexts mint their own codes for
// rules that belong to them alone (for example NO_VALID_ITEMS).
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "invalid input")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "resource was changed by another request")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "authentication required")
	ErrForbidden           = NewDomainError("FORBIDDEN", "not allowed")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "operation not allowed in the current state")
	ErrUpstreamFailure     = NewDomainError("UPSTREAM_FAILURE", "an upstream service failed")
)
