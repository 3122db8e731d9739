package types

import (
	"errors"
	"fmt"
)

// Kind classifies failures so that callers (the HTTP adapter, the retry loop)
// can react without parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfig reports missing or invalid backend settings.
	KindConfig
	// KindIO reports a local read or write failure.
	KindIO
	// KindNetwork reports a transport failure, timeout or non-success response.
	KindNetwork
	// KindFormat reports a blob that cannot be trusted: bad magic, version,
	// length or fingerprint. Recovery requires an explicit reset.
	KindFormat
	KindCompression
	// KindConflict is the only retryable kind.
	KindConflict
	KindExhausted
	KindRetryExhausted
	KindValidation
	KindUnavailable
	KindOutOfRange
	KindInternal
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindConfig:         "config",
	KindIO:             "io",
	KindNetwork:        "network",
	KindFormat:         "format",
	KindCompression:    "compression",
	KindConflict:       "conflict",
	KindExhausted:      "exhausted",
	KindRetryExhausted: "retry_exhausted",
	KindValidation:     "validation",
	KindUnavailable:    "unavailable",
	KindOutOfRange:     "out_of_range",
	KindInternal:       "internal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error carries a Kind together with a message suitable for direct display.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns a new error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf formats a message into a new error of the given kind.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError annotates err with kind and message. A nil err yields nil.
func WrapError(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the outermost *Error in the chain, or KindUnknown.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
