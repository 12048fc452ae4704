package subprocess

import "errors"

// ErrEmptyArgv is returned when a resolved shell template splits into
// zero words.
var ErrEmptyArgv = errors.New("subprocess: empty command")
