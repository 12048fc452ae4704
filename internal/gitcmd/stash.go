package gitcmd

import (
	"bufio"
	"context"
	"strings"
)

// StashEntry is one "git stash list" record.
type StashEntry struct {
	Date  string
	Title string
}

// StashList runs "git stash list" with a tab-delimited date/title
// format.
func (c *Client) StashList(ctx context.Context) ([]StashEntry, error) {
	out, err := c.Run(ctx, "stash", "list", "--format=%cd\t%s", "--date=iso-local")
	if err != nil {
		return nil, err
	}
	return ParseStashList(string(out)), nil
}

// ParseStashList parses "<date>\t<title>" lines.
func ParseStashList(output string) []StashEntry {
	var entries []StashEntry
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		entries = append(entries, StashEntry{Date: parts[0], Title: parts[1]})
	}
	return entries
}
