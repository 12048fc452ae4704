package views

import (
	"context"
	"strconv"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// StashView is the "stash" root view over "git stash list".
type StashView struct {
	client *gitcmd.Client
	ctx    context.Context

	list *view.List[gitcmd.StashEntry]
}

func NewStashView(ctx context.Context, client *gitcmd.Client, scrolloff int) *StashView {
	return &StashView{
		client: client,
		ctx:    ctx,
		list:   view.NewList[gitcmd.StashEntry](scrolloff),
	}
}

func (v *StashView) Root() string { return "stash" }

func (v *StashView) ScopePath() keymap.Scope { return keymap.Scope("stash") }

func (v *StashView) Reload() error {
	entries, err := v.client.StashList(v.ctx)
	if err != nil {
		return err
	}
	v.list.SetItems(entries)
	return nil
}

func (v *StashView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.list, name, height)
}

func (v *StashView) Len() int { return v.list.Len() }

func (v *StashView) Lines() []string {
	items := v.list.Items
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Title
	}
	return out
}

func (v *StashView) RowIndex(row int) int { return v.list.RowToIndex(row) }
func (v *StashView) SetCursor(i, h int)   { v.list.SetCursor(i, h) }
func (v *StashView) CursorIndex() int     { return v.list.Cursor() }

// Rev identifies the stash by its ordinal position (stash@{N}),
// matching the form git stash subcommands accept.
func (v *StashView) Rev() (string, bool) {
	if v.list.Len() == 0 {
		return "", false
	}
	return "stash@{" + strconv.Itoa(v.list.Cursor()) + "}", true
}

func (v *StashView) File() (string, bool) { return emptyItem() }
func (v *StashView) Line() (string, bool) { return emptyItem() }

func (v *StashView) Text() (string, bool) {
	e, ok := v.list.Focused()
	if !ok || e.Title == "" {
		return "", false
	}
	return e.Title, true
}

func (v *StashView) HandleBuiltin(action.Builtin) (bool, error) { return false, nil }
