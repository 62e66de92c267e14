package types

import (
	"errors"
	"fmt"
)

// Kind classifies a calctl failure. The set is closed: every error the core
// raises is one of these four, and each maps to a fixed process exit class
// so the CLI never inspects messages.
type Kind int

const (
	// KindStorage covers backing-file I/O failures, malformed documents,
	// and uniqueness/existence violations raised by the store.
	KindStorage Kind = iota
	// KindInvalidInput covers malformed or out-of-range caller input,
	// always detected before any mutation.
	KindInvalidInput
	// KindNotFound means the referenced event id does not exist.
	KindNotFound
	// KindConflict means the operation would introduce a temporal overlap
	// and the caller did not force it.
	KindConflict
)

// Exit classes, matching the predecessor tool's contract.
const (
	exitStorage      = 1
	exitInvalidInput = 2
	exitNotFound     = 3
	exitConflict     = 4
)

// ExitCode returns the process exit class for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindInvalidInput:
		return exitInvalidInput
	case KindNotFound:
		return exitNotFound
	case KindConflict:
		return exitConflict
	default:
		return exitStorage
	}
}

// String returns the kind's name for logs and messages.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	default:
		return "storage"
	}
}

// Error is the single error type raised by the calctl core. It carries a
// Kind, a caller-facing message, and optionally the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// InvalidInputf returns a KindInvalidInput error with a formatted message.
func InvalidInputf(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a KindNotFound error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf returns a KindConflict error with a formatted message.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Storagef returns a KindStorage error with a formatted message.
func Storagef(format string, args ...any) error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...)}
}

// WrapStorage returns a KindStorage error with a formatted message and the
// underlying cause attached for unwrapping.
func WrapStorage(err error, format string, args ...any) error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err when it is (or wraps) a core Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is (or wraps) a core Error of kind k.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// ExitCode maps any error to a process exit class. Errors raised outside
// the core taxonomy are treated as storage-class failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if k, ok := KindOf(err); ok {
		return k.ExitCode()
	}
	return exitStorage
}
