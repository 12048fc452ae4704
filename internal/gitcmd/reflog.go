package gitcmd

import (
	"bufio"
	"context"
	"strings"
)

// ReflogEntry is one "git reflog" record.
type ReflogEntry struct {
	Hash    string
	Selector string
	Message string
}

// Reflog runs "git reflog <args...>", forwarding whatever positional
// arguments the "reflog" subcommand was invoked with (spec.md §6).
func (c *Client) Reflog(ctx context.Context, args ...string) ([]ReflogEntry, error) {
	fullArgs := append([]string{"reflog"}, args...)
	out, err := c.Run(ctx, fullArgs...)
	if err != nil {
		return nil, err
	}
	return ParseReflog(string(out)), nil
}

// ParseReflog parses git's default reflog format:
// "<hash> <selector>: <message>".
func ParseReflog(output string) []ReflogEntry {
	var entries []ReflogEntry
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := sc.Text()
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			continue
		}
		hash := line[:sp]
		rest := line[sp+1:]
		colon := strings.Index(rest, ": ")
		if colon < 0 {
			entries = append(entries, ReflogEntry{Hash: hash, Selector: strings.TrimSpace(rest)})
			continue
		}
		entries = append(entries, ReflogEntry{
			Hash:     hash,
			Selector: rest[:colon],
			Message:  rest[colon+2:],
		})
	}
	return entries
}
