package gitcmd

import (
	"bufio"
	"context"
	"strings"
)

// FileStatus is a single file's working-tree/index state, ordered by
// severity (None < Unmerged < New < Modified < Deleted).
type FileStatus int

const (
	StatusNone FileStatus = iota
	StatusUnmerged
	StatusNew
	StatusModified
	StatusDeleted
)

// Character is the single glyph the status view draws for this
// status.
func (s FileStatus) Character() byte {
	switch s {
	case StatusModified:
		return '>'
	case StatusDeleted:
		return '-'
	case StatusNew:
		return '+'
	case StatusUnmerged:
		return '@'
	default:
		return ' '
	}
}

func statusFromByte(b byte) FileStatus {
	switch b {
	case 'M':
		return StatusModified
	case 'A':
		return StatusNew
	case 'D':
		return StatusDeleted
	case 'U':
		return StatusUnmerged
	case '?':
		return StatusNew
	default:
		return StatusNone
	}
}

// StatusEntry is one line of "git status --short --no-renames":
// independent staged and unstaged status columns plus the path.
type StatusEntry struct {
	Staged   FileStatus
	Unstaged FileStatus
	Path     string
}

// Status runs "git status --short --no-renames" and parses the
// result.
func (c *Client) Status(ctx context.Context) ([]StatusEntry, error) {
	out, err := c.Run(ctx, "status", "--short", "--no-renames")
	if err != nil {
		return nil, err
	}
	return ParseStatus(string(out)), nil
}

// ParseStatus parses the two-column porcelain short format: the first
// column is the index (staged) status, the second the worktree
// (unstaged) status, followed by a space and the path.
func ParseStatus(output string) []StatusEntry {
	var entries []StatusEntry
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 3 {
			continue
		}
		entries = append(entries, StatusEntry{
			Staged:   statusFromByte(line[0]),
			Unstaged: statusFromByte(line[1]),
			Path:     strings.TrimSpace(line[3:]),
		})
	}
	return entries
}
