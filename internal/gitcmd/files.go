package gitcmd

import (
	"context"
	"strings"
)

// FileEntry is one file touched by a commit, from "git show
// --name-status".
type FileEntry struct {
	Status FileStatus
	Path   string
}

// Files runs "git show --decorate --name-status --stat --no-renames
// [rev]" and returns both the raw metadata/stat text and the parsed
// file list.
func (c *Client) Files(ctx context.Context, rev string) (metadata string, files []FileEntry, err error) {
	args := []string{"show", "--decorate", "--name-status", "--stat", "--no-renames"}
	if rev != "" {
		args = append(args, rev)
	}
	out, err := c.Run(ctx, args...)
	if err != nil {
		return "", nil, err
	}
	return ParseFiles(string(out))
}

// ParseFiles splits "git show --name-status" output into the leading
// metadata/stat block and the trailing "<status>\t<path>" lines.
func ParseFiles(output string) (metadata string, files []FileEntry, err error) {
	lines := strings.Split(output, "\n")
	var metaLines []string
	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if len(line) > 0 && isFileStatusLine(line[0]) && strings.Contains(line, "\t") {
			break
		}
		metaLines = append(metaLines, line)
	}
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if !isFileStatusLine(line[0]) {
			break
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		files = append(files, FileEntry{Status: statusFromByte(parts[0][0]), Path: parts[1]})
	}
	return strings.Join(metaLines, "\n"), files, nil
}

func isFileStatusLine(b byte) bool {
	switch b {
	case 'M', 'A', 'D', 'U':
		return true
	default:
		return false
	}
}
