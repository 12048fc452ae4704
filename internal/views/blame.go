package views

import (
	"context"
	"strconv"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// BlameView is the "blame <file> [line]" root view: one entry per
// line of the file, annotated with the commit that introduced it.
// NextCommitBlame/PreviousCommitBlame step by commit hash rather than
// by line, per spec.md §3.
type BlameView struct {
	client    *gitcmd.Client
	ctx       context.Context
	file      string
	rev       string
	startLine int

	list *view.List[gitcmd.BlameLine]
}

func NewBlameView(ctx context.Context, client *gitcmd.Client, scrolloff int, file, rev string, startLine int) *BlameView {
	return &BlameView{
		client:    client,
		ctx:       ctx,
		file:      file,
		rev:       rev,
		startLine: startLine,
		list:      view.NewList[gitcmd.BlameLine](scrolloff),
	}
}

func (v *BlameView) Root() string { return "blame" }

func (v *BlameView) ScopePath() keymap.Scope { return keymap.Scope("blame") }

func (v *BlameView) Reload() error {
	lines, err := v.client.Blame(v.ctx, v.file, v.rev)
	if err != nil {
		return err
	}
	cursor := v.list.Cursor()
	if v.startLine > 0 {
		cursor = v.startLine - 1
		v.startLine = 0
	}
	v.list.SetItems(lines)
	v.list.SetCursor(cursor, 0)
	return nil
}

func (v *BlameView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.list, name, height)
}

func (v *BlameView) Len() int { return v.list.Len() }

func (v *BlameView) Lines() []string {
	items := v.list.Items
	out := make([]string, len(items))
	for i, l := range items {
		out[i] = l.Text
	}
	return out
}

func (v *BlameView) RowIndex(row int) int { return v.list.RowToIndex(row) }
func (v *BlameView) SetCursor(i, h int)   { v.list.SetCursor(i, h) }
func (v *BlameView) CursorIndex() int     { return v.list.Cursor() }

func (v *BlameView) Rev() (string, bool) {
	l, ok := v.list.Focused()
	if !ok || l.Hash == "" {
		return "", false
	}
	return l.Hash, true
}

func (v *BlameView) File() (string, bool) {
	if v.file == "" {
		return "", false
	}
	return v.file, true
}

func (v *BlameView) Line() (string, bool) {
	return strconv.Itoa(v.list.Cursor() + 1), true
}

func (v *BlameView) Text() (string, bool) {
	l, ok := v.list.Focused()
	if !ok {
		return "", false
	}
	return l.Text, true
}

// HandleBuiltin steps the cursor to the next/previous line whose
// commit hash differs from the currently focused one, walking
// forward or backward through the blame annotation.
func (v *BlameView) HandleBuiltin(name action.Builtin) (bool, error) {
	switch name {
	case action.NextCommitBlame:
		v.stepToNextHash(1)
		return true, nil
	case action.PreviousCommitBlame:
		v.stepToNextHash(-1)
		return true, nil
	case action.OpenGitShow, action.OpenShowApp:
		return true, nil
	default:
		return false, nil
	}
}

func (v *BlameView) stepToNextHash(dir int) {
	cur, ok := v.list.Focused()
	if !ok {
		return
	}
	i := v.list.Cursor() + dir
	for i >= 0 && i < v.list.Len() {
		if v.list.Items[i].Hash != cur.Hash {
			v.list.SetCursor(i, 0)
			return
		}
		i += dir
	}
}
