package aiservice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies generation failures.
type ErrorKind string

const (
	// KindConfiguration means no credential is configured. Fatal, never retried.
	KindConfiguration ErrorKind = "configuration"
	// KindTransport covers network failures and non-success HTTP statuses.
	KindTransport ErrorKind = "transport"
	// KindQuota is a transport failure caused by exhausted quota or billing problems.
	KindQuota ErrorKind = "quota"
	// KindMalformedResponse means a success status with unusable content.
	KindMalformedResponse ErrorKind = "malformed_response"
)

const (
	configurationMessage = "configure your OpenAI API key in the environment variables (OPENAI_API_KEY)"
	quotaMessage         = "your OpenAI account has exceeded its available quota. Check your plan and billing details at https://platform.openai.com/account/billing"
)

// GenerationError is returned by every failed call to the generation service.
// Error() is the human readable message meant for the end user.
type GenerationError struct {
	Kind       ErrorKind
	StatusCode int    // HTTP status, 0 when no response was received
	Message    string // user facing message
	Err        error  // underlying cause, if any
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the error came from the exchange itself.
// Quota errors are a kind of transport error.
func (e *GenerationError) IsTransport() bool {
	return e.Kind == KindTransport || e.Kind == KindQuota
}

// KindOf extracts the ErrorKind of err, or "" when err is not a GenerationError.
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

func newConfigurationError() *GenerationError {
	return &GenerationError{Kind: KindConfiguration, Message: configurationMessage}
}

// newServiceError classifies a non-success response using the message
// reported by the service.
func newServiceError(statusCode int, serviceMessage string) *GenerationError {
	cause := fmt.Errorf("status %d: %s", statusCode, serviceMessage)
	if isQuotaMessage(serviceMessage) {
		return &GenerationError{Kind: KindQuota, StatusCode: statusCode, Message: quotaMessage, Err: cause}
	}
	return &GenerationError{
		Kind:       KindTransport,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("failed to connect to the API: %s", serviceMessage),
		Err:        cause,
	}
}

func newNetworkError(err error) *GenerationError {
	return &GenerationError{
		Kind:    KindTransport,
		Message: fmt.Sprintf("failed to connect to the API: %v", err),
		Err:     err,
	}
}

func newMalformedError(detail string, err error) *GenerationError {
	return &GenerationError{
		Kind:    KindMalformedResponse,
		Message: fmt.Sprintf("invalid response from the API: %s", detail),
		Err:     err,
	}
}

// NewMalformedResponseError lets callers that check the decoded payload
// report structural problems with the same error kind.
func NewMalformedResponseError(detail string) *GenerationError {
	return newMalformedError(detail, nil)
}

// isQuotaMessage matches the substrings exactly as the service emits them.
func isQuotaMessage(msg string) bool {
	return strings.Contains(msg, "quota") || strings.Contains(msg, "billing")
}
