package gitcmd

import (
	"context"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Hunk is one unified-diff hunk: its header line and the body lines
// that follow, up to the next "@@" header or end of stream.
type Hunk struct {
	Header string
	Lines  []string
}

// Diff runs "git diff <args...>" and splits the result into hunks per
// file, per spec.md §6's diff sub-view.
func (c *Client) Diff(ctx context.Context, args ...string) ([]Hunk, error) {
	fullArgs := append([]string{"diff"}, args...)
	out, err := c.Run(ctx, fullArgs...)
	if err != nil {
		return nil, err
	}
	return ParseHunks(string(out)), nil
}

// ParseHunks splits unified-diff text into "@@ ... @@"-delimited
// hunks.
func ParseHunks(output string) []Hunk {
	var hunks []Hunk
	var current *Hunk
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "@@") {
			if current != nil {
				hunks = append(hunks, *current)
			}
			current = &Hunk{Header: line}
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}
	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks
}

// IntralineSpan is one run of a hunk-line's replacement diff: an
// unchanged, inserted, or deleted run of text.
type IntralineSpan struct {
	Text    string
	Inserted bool
	Deleted  bool
}

// Intraline computes a word-level diff between a removed and an added
// line within the same hunk, for highlighting exactly which part of
// the line changed (rather than shading the whole line).
func Intraline(removed, added string) []IntralineSpan {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(removed, added, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	spans := make([]IntralineSpan, 0, len(diffs))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			spans = append(spans, IntralineSpan{Text: d.Text, Inserted: true})
		case diffmatchpatch.DiffDelete:
			spans = append(spans, IntralineSpan{Text: d.Text, Deleted: true})
		default:
			spans = append(spans, IntralineSpan{Text: d.Text})
		}
	}
	return spans
}
