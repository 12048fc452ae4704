package views

import (
	"context"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// ReflogView is the "reflog [args]" root view over "git reflog".
type ReflogView struct {
	client *gitcmd.Client
	ctx    context.Context
	args   []string

	list *view.List[gitcmd.ReflogEntry]
}

func NewReflogView(ctx context.Context, client *gitcmd.Client, scrolloff int, args []string) *ReflogView {
	return &ReflogView{
		client: client,
		ctx:    ctx,
		args:   args,
		list:   view.NewList[gitcmd.ReflogEntry](scrolloff),
	}
}

func (v *ReflogView) Root() string { return "reflog" }

func (v *ReflogView) ScopePath() keymap.Scope { return keymap.Scope("reflog") }

func (v *ReflogView) Reload() error {
	entries, err := v.client.Reflog(v.ctx, v.args...)
	if err != nil {
		return err
	}
	v.list.SetItems(entries)
	return nil
}

func (v *ReflogView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.list, name, height)
}

func (v *ReflogView) Len() int { return v.list.Len() }

func (v *ReflogView) Lines() []string {
	items := v.list.Items
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Selector + ": " + e.Message
	}
	return out
}

func (v *ReflogView) RowIndex(row int) int { return v.list.RowToIndex(row) }
func (v *ReflogView) SetCursor(i, h int)   { v.list.SetCursor(i, h) }
func (v *ReflogView) CursorIndex() int     { return v.list.Cursor() }

func (v *ReflogView) Rev() (string, bool) {
	e, ok := v.list.Focused()
	if !ok || e.Hash == "" {
		return "", false
	}
	return e.Hash, true
}

func (v *ReflogView) File() (string, bool) { return emptyItem() }
func (v *ReflogView) Line() (string, bool) { return emptyItem() }

func (v *ReflogView) Text() (string, bool) {
	e, ok := v.list.Focused()
	if !ok || e.Message == "" {
		return "", false
	}
	return e.Message, true
}

func (v *ReflogView) HandleBuiltin(name action.Builtin) (bool, error) {
	switch name {
	case action.OpenGitShow, action.OpenShowApp:
		return true, nil
	default:
		return false, nil
	}
}
