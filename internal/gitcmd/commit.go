package gitcmd

import "strings"

// Commit is a parsed log/pager commit record: its full metadata
// block (headers and message), the files it touched, and the commit
// hash. Records are metadata lines, a blank separator, then
// "<status>\t<path>" lines.
type Commit struct {
	Hash     string
	Metadata string
	Files    []FileEntry
}

// ParseCommit parses one commit record out of a "git log
// --name-status"-style stream: a "commit <hash>" header line, further
// metadata lines up to the first blank line, the commit message, and
// trailing "<status>\t<path>" file lines.
func ParseCommit(record string) (Commit, error) {
	lines := strings.Split(record, "\n")
	if len(lines) == 0 {
		return Commit{}, ErrEmptyRecord
	}

	header := lines[0]
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return Commit{}, ErrEmptyRecord
	}
	hash := fields[1]

	var metadata []string
	metadata = append(metadata, header)
	i := 1
	for ; i < len(lines); i++ {
		metadata = append(metadata, lines[i])
		if lines[i] == "" {
			i++
			break
		}
	}

	var files []FileEntry
	parsingFiles := false
	for ; i < len(lines); i++ {
		line := lines[i]
		if !parsingFiles {
			if len(line) > 0 && line[0] != ' ' && line[0] != '\t' {
				parsingFiles = true
			} else {
				metadata = append(metadata, line)
				continue
			}
		}
		if len(line) == 0 || !isFileStatusLine(line[0]) {
			break
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		files = append(files, FileEntry{Status: statusFromByte(parts[0][0]), Path: parts[1]})
	}

	return Commit{Hash: hash, Metadata: strings.Join(metadata, "\n"), Files: files}, nil
}
