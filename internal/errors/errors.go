package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrArtworkUnavailable is returned when a sold or withdrawn artwork is put in a cart or order.
	ErrArtworkUnavailable = errors.New("artwork is no longer available")
	// ErrInvalidPromoCode is returned when a promo code is not recognised.
	ErrInvalidPromoCode = errors.New("invalid promo code")
	// ErrEmptyCart is returned when checking out without items.
	ErrEmptyCart = errors.New("at least one item is required")
	// ErrInvalidPrice is returned when a price is zero or negative.
	ErrInvalidPrice = errors.New("price must be greater than 0")
	// ErrAlreadySubscribed is returned when an active subscriber subscribes again.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)

// FieldIssue names one offending input field and why it was rejected.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every malformed, out-of-range or unknown input value of a request.
type ValidationError struct {
	Issues []FieldIssue
}

// Add records an issue for field.
func (e *ValidationError) Add(field, reason string) {
	e.Issues = append(e.Issues, FieldIssue{Field: field, Reason: reason})
}

// OrNil returns e when at least one issue was recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Issues) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	return "invalid parameters: " + strings.Join(parts, "; ")
}

// NotFoundError is returned when an identifier does not resolve to a row.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NotFound builds a NotFoundError for resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// BackendError wraps a failing data store call. Only Op reaches the client.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Backend wraps err as a BackendError for op, e.g. "fetch artworks".
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Backend details are never exposed.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		backendErr    *BackendError
	)
	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Error(), "VALIDATION_ERROR")
	case errors.As(err, &notFoundErr):
		return NewHTTPError(http.StatusNotFound, capitalize(notFoundErr.Error()), "NOT_FOUND")
	case errors.Is(err, ErrArtworkUnavailable):
		return NewHTTPError(http.StatusConflict, err.Error(), "ARTWORK_UNAVAILABLE")
	case errors.Is(err, ErrInvalidPromoCode):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PROMO_CODE")
	case errors.Is(err, ErrEmptyCart):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrAlreadySubscribed):
		return NewHTTPError(http.StatusBadRequest, "This email is already subscribed to our newsletter", "ALREADY_SUBSCRIBED")
	case errors.As(err, &backendErr):
		return NewHTTPError(http.StatusInternalServerError, "Failed to "+backendErr.Op, "BACKEND_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
