package gemcore

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrorCategory classifies API errors by how callers should handle them.
type ErrorCategory string

const (
	// ErrorTransient indicates a temporary failure (rate limit, server
	// overload) that may succeed if the caller tries again.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates a failure that will not go away on its own,
	// such as an invalid API key.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the request itself was invalid.
	ErrorUserInput ErrorCategory = "user_input"
)

// Error annotates an SDK error with a category and HTTP status code. The
// underlying SDK error is preserved and reachable through errors.As.
type Error struct {
	Msg      string
	Category ErrorCategory
	Code     int // HTTP status code, 0 if not applicable
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsTransient reports whether err is categorized as transient.
func IsTransient(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Category == ErrorTransient
}

// IsPermanent reports whether err is categorized as permanent.
func IsPermanent(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Category == ErrorPermanent
}

// IsUserInput reports whether err is categorized as a user input error.
func IsUserInput(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Category == ErrorUserInput
}

// StatusCodeOf returns the HTTP status code carried by err, or 0.
func StatusCodeOf(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return 0
}

// wrapError annotates genai API errors with a category. Non-API errors
// (network failures, context cancellation) pass through unchanged.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return &Error{
		Msg:      op,
		Category: categorizeStatusCode(apiErr.Code),
		Code:     apiErr.Code,
		Cause:    err,
	}
}

func categorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == 429:
		return ErrorTransient // rate limited
	case code >= 500 && code < 600:
		return ErrorTransient // server error
	case code == 401 || code == 403:
		return ErrorPermanent // authentication/authorization
	case code == 400 || code == 404 || code == 422:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// BlockedError indicates the request was rejected by content filtering
// before any candidates were produced.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("request blocked: %s", e.Reason)
}
