package llm

import "errors"

// Transport failures. All of these are retryable by policy: the provider may
// answer the same request on a later attempt.
var (
	ErrConnection  = errors.New("provider connection failed")
	ErrTimeout     = errors.New("provider call timed out")
	ErrRateLimited = errors.New("provider rate limited")
	ErrProvider    = errors.New("provider returned an error")
)

// Content failures. Never retried automatically by this package; the caller
// decides whether a stricter prompt is worth another attempt.
var (
	ErrMalformedResponse = errors.New("provider returned unparseable content")
	ErrSchemaViolation   = errors.New("provider response violates the task contract")
)

// Retryable reports whether err belongs to the retryable transport category.
func Retryable(err error) bool {
	return errors.Is(err, ErrConnection) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrProvider)
}
