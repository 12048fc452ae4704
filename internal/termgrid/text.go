package termgrid

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// CellWidth returns the terminal column width of a single rune,
// grapheme-cluster aware via uniseg so that wide CJK runes in commit
// subjects or diff text don't desync the cursor column.
func CellWidth(r rune) int {
	return uniseg.StringWidth(string(r))
}

// Truncate trims s to at most width terminal columns, appending an
// ellipsis rune if truncation occurred.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	gr := uniseg.NewGraphemes(s)
	var b strings.Builder
	col := 0
	for gr.Next() {
		cw := uniseg.StringWidth(gr.Str())
		if col+cw > width-1 {
			b.WriteRune('…')
			return b.String()
		}
		b.WriteString(gr.Str())
		col += cw
	}
	return b.String()
}

// Wrap splits s into lines of at most width columns, breaking at rune
// boundaries rather than word boundaries, since pager and diff text is
// rarely prose.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	gr := uniseg.NewGraphemes(s)
	var b strings.Builder
	col := 0
	for gr.Next() {
		cw := uniseg.StringWidth(gr.Str())
		if col+cw > width {
			lines = append(lines, b.String())
			b.Reset()
			col = 0
		}
		b.WriteString(gr.Str())
		col += cw
	}
	lines = append(lines, b.String())
	return lines
}

// CleanControlChars expands tabs and makes carriage returns visible.
func CleanControlChars(s string) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	s = strings.ReplaceAll(s, "\r", "^M")
	return s
}

// AgeColor blends between a "fresh" and a "stale" colour by how long
// ago t was, clamped to a two-year window — used by the blame view to
// shade each line by the age of the commit that introduced it.
func AgeColor(t time.Time, fresh, stale Color) Color {
	const window = 2 * 365 * 24 * time.Hour
	age := time.Since(t)
	if age < 0 {
		age = 0
	}
	factor := float64(age) / float64(window)
	if factor > 1 {
		factor = 1
	}
	return fresh.Blend(stale, factor)
}
