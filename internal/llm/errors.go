package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies provider failures for the retry policy.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable ErrorKind = iota
	KindRateLimited
	// KindInvalidOutput means the reply was not valid for the schema.
	KindInvalidOutput
	// KindTruncated means the reply hit MaxTokens.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate limited"
	case KindInvalidOutput:
		return "invalid output"
	case KindTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by providers for every failed request.
type Error struct {
	Kind ErrorKind

	// RetryAfter is the server's requested wait, if any.
	RetryAfter time.Duration

	// Content is the offending reply for KindInvalidOutput and KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// fromStatus classifies an SDK error by its HTTP status.
func fromStatus(status int, err error) *Error {
	if status == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimited, Err: err}
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

// transportError wraps an error that carried no usable status. Context
// errors pass through untouched.
func transportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

func invalidOutput(content json.RawMessage, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidOutput, Content: content, Err: fmt.Errorf(format, args...)}
}
