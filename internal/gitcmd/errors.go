package gitcmd

import "errors"

// ErrEmptyRecord is returned by ParseCommit when given an empty or
// header-less record.
var ErrEmptyRecord = errors.New("gitcmd: empty commit record")
