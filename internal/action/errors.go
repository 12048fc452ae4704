package action

import "errors"

// ErrUnknownBuiltin is the UNKNOWN_BUILTIN error kind from spec.md §7.
var ErrUnknownBuiltin = errors.New("unknown builtin action")
