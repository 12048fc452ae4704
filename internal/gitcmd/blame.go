package gitcmd

import (
	"bufio"
	"context"
	"strings"
)

// BlameLine is one line of "git blame" default output:
// "<hash> (<author> <date> <lineno>) <text>"; the line number is not kept.
type BlameLine struct {
	Hash   string
	Author string
	Date   string
	Text   string
}

// Blame runs "git blame <file> [rev]", mirroring the original
// implementation's invocation, expanding tabs to four spaces the same
// way it did.
func (c *Client) Blame(ctx context.Context, file, rev string) ([]BlameLine, error) {
	args := []string{"blame", file}
	if rev != "" {
		args = append(args, rev)
	}
	out, err := c.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseBlame(strings.ReplaceAll(string(out), "\t", "    ")), nil
}

// ParseBlame parses git's default (non --porcelain) blame format:
//
//	<hash> (<author> <date> <line>) <text>
func ParseBlame(output string) []BlameLine {
	var lines []BlameLine
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := sc.Text()
		open := strings.IndexByte(line, '(')
		close := strings.IndexByte(line, ')')
		if open < 0 || close < 0 || close < open {
			continue
		}
		hash := strings.TrimSpace(line[:open])
		inner := line[open+1 : close]
		text := ""
		if close+1 < len(line) {
			text = strings.TrimPrefix(line[close+1:], " ")
		}
		author, date := splitAuthorDate(inner)
		lines = append(lines, BlameLine{Hash: hash, Author: author, Date: date, Text: text})
	}
	return lines
}

// splitAuthorDate splits "<author> YYYY-MM-DD HH:MM:SS +ZZZZ <line>"
// into the author name and the date portion, dropping the trailing
// line number git blame embeds inside the parens.
func splitAuthorDate(inner string) (author, date string) {
	fields := strings.Fields(inner)
	if len(fields) < 4 {
		return strings.TrimSpace(inner), ""
	}
	// Last field is the line number; the three before it are date,
	// time and timezone; everything earlier is the author name.
	n := len(fields)
	date = strings.Join(fields[n-4:n-1], " ")
	author = strings.Join(fields[:n-4], " ")
	return author, date
}
