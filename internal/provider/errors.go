package provider

import (
	"errors"
	"fmt"
)

var (
	ErrContentBlocked = errors.New("content blocked by safety filters")
	ErrNoCandidates   = errors.New("no candidates in response")
	ErrRateLimit      = errors.New("rate limit exceeded")
	ErrAuthentication = errors.New("authentication failed")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnavailable    = errors.New("service unavailable")
	ErrNetwork        = errors.New("network error")
)

// ErrorCode classifies a backend failure.
type ErrorCode string

const (
	ErrorCodeContentBlocked ErrorCode = "content_blocked"
	ErrorCodeRateLimit      ErrorCode = "rate_limit"
	ErrorCodeAuth           ErrorCode = "authentication_failed"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeUnavailable    ErrorCode = "service_unavailable"
	ErrorCodeNetwork        ErrorCode = "network_error"
)

var codeSentinels = map[ErrorCode]error{
	ErrorCodeContentBlocked: ErrContentBlocked,
	ErrorCodeRateLimit:      ErrRateLimit,
	ErrorCodeAuth:           ErrAuthentication,
	ErrorCodeInvalidRequest: ErrInvalidRequest,
	ErrorCodeUnavailable:    ErrUnavailable,
	ErrorCodeNetwork:        ErrNetwork,
}

// ProviderError wraps a backend failure with a classification.
type ProviderError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// Is matches the sentinel for the error's code.
func (e *ProviderError) Is(target error) bool {
	return codeSentinels[e.Code] == target
}

// IsRetryable returns true if the error is retryable.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}
