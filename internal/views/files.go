package views

import (
	"context"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// FilesView is the "files [rev]" root view: the list of files a
// single revision touched, from "git show --name-status".
type FilesView struct {
	client *gitcmd.Client
	ctx    context.Context
	rev    string

	metadata string
	list     *view.List[gitcmd.FileEntry]
}

func NewFilesView(ctx context.Context, client *gitcmd.Client, scrolloff int, rev string) *FilesView {
	return &FilesView{
		client: client,
		ctx:    ctx,
		rev:    rev,
		list:   view.NewList[gitcmd.FileEntry](scrolloff),
	}
}

func (v *FilesView) Root() string { return "files" }

func (v *FilesView) ScopePath() keymap.Scope { return keymap.Scope("files") }

func (v *FilesView) Reload() error {
	metadata, files, err := v.client.Files(v.ctx, v.rev)
	if err != nil {
		return err
	}
	v.metadata = metadata
	v.list.SetItems(files)
	return nil
}

func (v *FilesView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.list, name, height)
}

func (v *FilesView) Len() int { return v.list.Len() }

func (v *FilesView) Lines() []string {
	items := v.list.Items
	out := make([]string, len(items))
	for i, f := range items {
		out[i] = f.Path
	}
	return out
}

func (v *FilesView) RowIndex(row int) int { return v.list.RowToIndex(row) }
func (v *FilesView) SetCursor(i, h int)   { v.list.SetCursor(i, h) }
func (v *FilesView) CursorIndex() int     { return v.list.Cursor() }

func (v *FilesView) Rev() (string, bool) {
	if v.rev == "" {
		return "", false
	}
	return v.rev, true
}

func (v *FilesView) File() (string, bool) {
	f, ok := v.list.Focused()
	if !ok || f.Path == "" {
		return "", false
	}
	return f.Path, true
}

func (v *FilesView) Line() (string, bool) { return emptyItem() }
func (v *FilesView) Text() (string, bool) { return v.File() }

func (v *FilesView) HandleBuiltin(name action.Builtin) (bool, error) {
	switch name {
	case action.OpenGitShow, action.OpenShowApp:
		return true, nil
	default:
		return false, nil
	}
}
