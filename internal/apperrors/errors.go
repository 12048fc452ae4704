// Package apperrors defines the closed set of error kinds from
// spec.md §7 and the wrapper type that carries one through the
// dispatcher to the status line.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind is one of the ten error kinds spec.md §7 names.
type Kind int

const (
	ConfigSyntax Kind = iota
	ConfigPrefixConflict
	UnknownBuiltin
	UnknownOption
	OptionValue
	PlaceholderUnavailable
	SubprocessSpawn
	SubprocessExitNonzero
	IngestParse
	TerminalIO
)

func (k Kind) String() string {
	switch k {
	case ConfigSyntax:
		return "CONFIG_SYNTAX"
	case ConfigPrefixConflict:
		return "CONFIG_PREFIX_CONFLICT"
	case UnknownBuiltin:
		return "UNKNOWN_BUILTIN"
	case UnknownOption:
		return "UNKNOWN_OPTION"
	case OptionValue:
		return "OPTION_VALUE"
	case PlaceholderUnavailable:
		return "PLACEHOLDER_UNAVAILABLE"
	case SubprocessSpawn:
		return "SUBPROCESS_SPAWN"
	case SubprocessExitNonzero:
		return "SUBPROCESS_EXIT_NONZERO"
	case IngestParse:
		return "INGEST_PARSE"
	case TerminalIO:
		return "TERMINAL_IO"
	default:
		return "UNKNOWN"
	}
}

// Fatal reports whether errors of this kind must trigger orderly
// shutdown rather than a status-line message, per spec.md §7: only
// TERMINAL_IO is fatal.
func (k Kind) Fatal() bool { return k == TerminalIO }

// Error wraps an underlying error with the operation that produced it
// and its Kind.
type Error struct {
	Kind   Kind
	Op     string
	Detail string
	Err    error
}

func New(kind Kind, op, detail string, err error) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail, Err: err}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Op)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by Kind so callers can write errors.Is(err, apperrors.New(apperrors.TerminalIO, "", "", nil)).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}
