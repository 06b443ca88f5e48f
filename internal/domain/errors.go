package domain

import (
	"errors"
	"fmt"
)

// Persistence failure sentinels. The repo layer wraps every store error in
// exactly one of these so the service layer can tell a missing row from a
// constraint violation from a store that is unreachable.
var (
	// ErrNotFound is returned by repo functions when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned by repo functions when an insert or update
	// violates a unique constraint.
	ErrDuplicate = errors.New("duplicate")

	// ErrUnavailable covers every other store fault: connectivity, pool
	// exhaustion, context deadline while waiting for a connection.
	ErrUnavailable = errors.New("store unavailable")

	// ErrCorrupt is returned when a stored value cannot be mapped back to a
	// domain value (e.g. an unknown role code). It is never the caller's fault.
	ErrCorrupt = errors.New("corrupt stored value")
)

// Kind classifies an Error for the transport layer.
type Kind int

const (
	// KindBadRequest means caller-supplied input failed a domain rule.
	KindBadRequest Kind = iota + 1
	// KindConflict means a uniqueness rule was violated at the store.
	KindConflict
	// KindNotFound means no record matches the given identifier.
	KindNotFound
	// KindInternal means a fault the caller neither caused nor can fix.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the single error type the service layer returns.
// Message is safe to show to callers; Err carries the underlying cause for
// logs and errors.Is checks and is never rendered.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// BadRequest builds a KindBadRequest error.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Conflict builds a KindConflict error wrapping cause.
func Conflict(msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: cause}
}

// NotFound builds a KindNotFound error wrapping cause.
func NotFound(msg string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: cause}
}

// Internal builds a KindInternal error wrapping cause.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf reports the Kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
