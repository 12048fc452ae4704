package views

import (
	"context"
	"strings"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// diffRow is one line of rendered diff text: a hunk header or one of
// its body lines, tagged with the hunk it belongs to so the focused
// row can look up that hunk's intraline highlighting.
type diffRow struct {
	text string
	hunk int
}

// DiffView is the "diff [args]" root view: one entry per line of
// "git diff" output (header and body alike, so search and %(text)
// see the whole hunk, not just its "@@ ... @@" line). The focused
// hunk's first removed/added line pair is highlighted word-by-word
// via internal/gitcmd.Intraline.
type DiffView struct {
	client *gitcmd.Client
	ctx    context.Context
	args   []string

	hunks     []gitcmd.Hunk
	intraline map[int][]gitcmd.IntralineSpan

	list *view.List[diffRow]
}

func NewDiffView(ctx context.Context, client *gitcmd.Client, scrolloff int, args []string) *DiffView {
	return &DiffView{
		client: client,
		ctx:    ctx,
		args:   args,
		list:   view.NewList[diffRow](scrolloff),
	}
}

func (v *DiffView) Root() string { return "diff" }

func (v *DiffView) ScopePath() keymap.Scope { return keymap.Scope("diff") }

// Reload re-runs "git diff" and flattens the resulting hunks into the
// item sequence, computing each hunk's intraline highlighting against
// its first removed/added line pair up front.
func (v *DiffView) Reload() error {
	hunks, err := v.client.Diff(v.ctx, v.args...)
	if err != nil {
		return err
	}
	v.hunks = hunks
	v.intraline = make(map[int][]gitcmd.IntralineSpan)

	var rows []diffRow
	for i, h := range hunks {
		rows = append(rows, diffRow{text: h.Header, hunk: i})
		for _, line := range h.Lines {
			rows = append(rows, diffRow{text: line, hunk: i})
		}
		if removed, added, ok := firstRemovedAddedPair(h.Lines); ok {
			v.intraline[i] = gitcmd.Intraline(removed, added)
		}
	}
	v.list.SetItems(rows)
	return nil
}

// firstRemovedAddedPair finds a hunk's first removed and first added
// body line (skipping the "---"/"+++" file markers some diff output
// carries), for intraline comparison.
func firstRemovedAddedPair(lines []string) (removed, added string, ok bool) {
	for _, l := range lines {
		if removed == "" && isRemovedLine(l) {
			removed = l
		}
		if added == "" && isAddedLine(l) {
			added = l
		}
	}
	return removed, added, removed != "" && added != ""
}

func isRemovedLine(l string) bool {
	return strings.HasPrefix(l, "-") && !strings.HasPrefix(l, "---")
}

func isAddedLine(l string) bool {
	return strings.HasPrefix(l, "+") && !strings.HasPrefix(l, "+++")
}

func (v *DiffView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.list, name, height)
}

func (v *DiffView) Len() int { return v.list.Len() }

func (v *DiffView) Lines() []string {
	items := v.list.Items
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.text
	}
	return out
}

func (v *DiffView) RowIndex(row int) int { return v.list.RowToIndex(row) }
func (v *DiffView) SetCursor(i, h int)   { v.list.SetCursor(i, h) }
func (v *DiffView) CursorIndex() int     { return v.list.Cursor() }

func (v *DiffView) Rev() (string, bool) { return emptyItem() }
func (v *DiffView) File() (string, bool) { return emptyItem() }
func (v *DiffView) Line() (string, bool) { return emptyItem() }

func (v *DiffView) Text() (string, bool) {
	row, ok := v.list.Focused()
	if !ok || row.text == "" {
		return "", false
	}
	return row.text, true
}

// FocusedIntraline returns the word-level highlighting
// (internal/gitcmd.Intraline) computed for the focused row's hunk, if
// that hunk had a removed/added line pair.
func (v *DiffView) FocusedIntraline() ([]gitcmd.IntralineSpan, bool) {
	row, ok := v.list.Focused()
	if !ok {
		return nil, false
	}
	spans, ok := v.intraline[row.hunk]
	return spans, ok
}

func (v *DiffView) HandleBuiltin(action.Builtin) (bool, error) { return false, nil }
