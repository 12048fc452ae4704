package ingest

import "bytes"

// Lines splits buf on newlines, returning each complete line (without
// its terminator) and the unconsumed remainder. On the final read any
// remaining bytes form a partial line and are returned as rest for
// the caller to discard.
func Lines(buf []byte, final bool) (items []string, rest []byte, err error) {
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		line := buf[:i]
		line = bytes.TrimSuffix(line, []byte("\r"))
		items = append(items, string(line))
		buf = buf[i+1:]
	}
	return items, buf, nil
}

// Commits splits a "git log --name-status"-style stream into raw
// commit records: runs of lines starting at each "commit " header, up
// to (but not including) the next one. Each returned string is the
// unparsed record text handed to gitcmd.ParseCommit.
func Commits(buf []byte, final bool) (items []string, rest []byte, err error) {
	for {
		nextStart := indexNextCommit(buf)
		if nextStart < 0 {
			break
		}
		items = append(items, string(bytes.TrimRight(buf[:nextStart], "\n")))
		buf = buf[nextStart:]
	}
	if final && len(buf) > 0 {
		items = append(items, string(bytes.TrimRight(buf, "\n")))
		buf = nil
	}
	return items, buf, nil
}

// indexNextCommit finds the start of the second "commit " header in
// buf (the first header, if any, belongs to the record already being
// accumulated), or -1 if there isn't one yet.
func indexNextCommit(buf []byte) int {
	first := findCommitHeader(buf, 0)
	if first < 0 {
		return -1
	}
	second := findCommitHeader(buf, first+1)
	return second
}

func findCommitHeader(buf []byte, from int) int {
	for {
		i := bytes.Index(buf[from:], []byte("commit "))
		if i < 0 {
			return -1
		}
		pos := from + i
		if pos == 0 || buf[pos-1] == '\n' {
			return pos
		}
		from = pos + 1
	}
}
