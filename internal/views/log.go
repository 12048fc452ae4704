package views

import (
	"context"
	"fmt"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd/ingest"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// LogView is the "log" root view: one entry per commit record from
// "git log --name-status", stepped by PagerNextCommit/PreviousCommit
// in addition to plain line navigation.
type LogView struct {
	client *gitcmd.Client
	ctx    context.Context
	args   []string

	list *view.List[gitcmd.Commit]
}

// NewLogView creates a log view that forwards args to "git log
// --name-status" on Reload (spec.md §6, "log [args]").
func NewLogView(ctx context.Context, client *gitcmd.Client, scrolloff int, args []string) *LogView {
	return &LogView{
		client: client,
		ctx:    ctx,
		args:   args,
		list:   view.NewList[gitcmd.Commit](scrolloff),
	}
}

func (v *LogView) Root() string { return "log" }

func (v *LogView) ScopePath() keymap.Scope { return keymap.Scope("log") }

func (v *LogView) Reload() error {
	full := append([]string{"log", "--name-status", "--no-renames"}, v.args...)
	out, err := v.client.Run(v.ctx, full...)
	if err != nil {
		return err
	}
	records, _, err := ingest.Commits(out, true)
	if err != nil {
		return err
	}
	commits := make([]gitcmd.Commit, 0, len(records))
	for _, r := range records {
		c, err := gitcmd.ParseCommit(r)
		if err != nil {
			continue
		}
		commits = append(commits, c)
	}
	v.list.SetItems(commits)
	return nil
}

func (v *LogView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.list, name, height)
}

func (v *LogView) Len() int { return v.list.Len() }

func (v *LogView) Lines() []string {
	items := v.list.Items
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = fmt.Sprintf("%s %s", c.Hash, firstLine(c.Metadata))
	}
	return out
}

func (v *LogView) RowIndex(row int) int    { return v.list.RowToIndex(row) }
func (v *LogView) SetCursor(i, h int)      { v.list.SetCursor(i, h) }
func (v *LogView) CursorIndex() int        { return v.list.Cursor() }

func (v *LogView) Rev() (string, bool) {
	c, ok := v.list.Focused()
	if !ok || c.Hash == "" {
		return "", false
	}
	return c.Hash, true
}

func (v *LogView) File() (string, bool) { return emptyItem() }
func (v *LogView) Line() (string, bool) { return emptyItem() }

func (v *LogView) Text() (string, bool) {
	c, ok := v.list.Focused()
	if !ok {
		return "", false
	}
	return firstLine(c.Metadata), true
}

// HandleBuiltin steps the cursor by whole commit records; since each
// item already is one commit, PagerNextCommit/PreviousCommit reduce
// to Down/Up here (the distinction matters in PagerView, where many
// lines belong to the same commit).
func (v *LogView) HandleBuiltin(name action.Builtin) (bool, error) {
	switch name {
	case action.PagerNextCommit:
		v.list.Down(0)
		return true, nil
	case action.PagerPreviousCommit:
		v.list.Up(0)
		return true, nil
	case action.OpenGitShow, action.OpenShowApp:
		return true, nil
	default:
		return false, nil
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
