package evaluator

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes gateway failures.
type Kind string

const (
	KindInvalidRequest  Kind = "invalid_request"
	KindPayloadTooLarge Kind = "payload_too_large"
	KindUpstreamFormat  Kind = "upstream_format"
	KindUpstreamParse   Kind = "upstream_parse"
	KindInternal        Kind = "internal"
)

// Error is a gateway failure with the HTTP status it maps to. Message is
// safe to return to the caller; Cause is logged server-side only.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newInvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message, Status: http.StatusBadRequest}
}

func newPayloadTooLarge(message string) *Error {
	return &Error{Kind: KindPayloadTooLarge, Message: message, Status: http.StatusBadRequest}
}

func newUpstreamFormat(message string, cause error) *Error {
	return &Error{Kind: KindUpstreamFormat, Message: message, Status: http.StatusInternalServerError, Cause: cause}
}

func newUpstreamParse(message string, cause error) *Error {
	return &Error{Kind: KindUpstreamParse, Message: message, Status: http.StatusInternalServerError, Cause: cause}
}

func newInternal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Status: http.StatusInternalServerError, Cause: cause}
}

// StatusCode extracts the HTTP status from an error, defaulting to 500.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// ClientMessage extracts the caller-safe message from an error. Anything
// untyped gets a generic message so internals never leak to the caller.
func ClientMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
