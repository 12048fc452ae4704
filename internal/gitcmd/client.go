package gitcmd

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/gitrsrc/gitrsrc/internal/apperrors"
)

// Client invokes the git executable named by Exe (the "git" option's
// current value; re-read on every call so ":set git ..." takes effect
// immediately).
type Client struct {
	Exe func() string
}

// New creates a Client that always invokes the given fixed executable
// name; a Client built this way does not follow later ":set git" changes.
func New(exe string) *Client {
	return &Client{Exe: func() string { return exe }}
}

// Run executes "git <args...>" and returns its captured stdout. A
// non-zero exit is reported as SUBPROCESS_EXIT_NONZERO with stderr
// attached as Detail.
func (c *Client) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Exe(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return stdout.Bytes(), apperrors.New(apperrors.SubprocessExitNonzero, "git "+args[0], stderr.String(), err)
		}
		return nil, apperrors.New(apperrors.SubprocessSpawn, "git "+firstArg(args), "", err)
	}
	return stdout.Bytes(), nil
}

// Stream starts "git <args...>" with its stdout piped, for the pager
// ingest loop to read incrementally. The caller must Wait the
// returned cmd once the pipe has been fully drained.
func (c *Client) Stream(ctx context.Context, args ...string) (io.ReadCloser, *exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, c.Exe(), args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, apperrors.New(apperrors.SubprocessSpawn, "git "+firstArg(args), "", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, apperrors.New(apperrors.SubprocessSpawn, "git "+firstArg(args), "", err)
	}
	return stdout, cmd, nil
}

// RevParseToplevel returns the repository's working-tree root.
func (c *Client) RevParseToplevel(ctx context.Context) (string, error) {
	out, err := c.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return trimNewline(string(out)), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
