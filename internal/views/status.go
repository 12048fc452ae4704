package views

import (
	"context"
	"fmt"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// side names which of the two status columns is currently focused,
// per spec.md §6's "stage/unstage toggling" requirement.
type side int

const (
	sideUnstaged side = iota
	sideStaged
)

// StatusView is the "status" root view: a dual list of unstaged and
// staged entries from "git status --short", with stage/unstage
// toggling bound to the builtins spec.md §3 names.
type StatusView struct {
	client *gitcmd.Client
	ctx    context.Context

	unstaged *view.List[gitcmd.StatusEntry]
	staged   *view.List[gitcmd.StatusEntry]
	focus    side
}

// NewStatusView creates an empty status view; call Reload to populate it.
func NewStatusView(ctx context.Context, client *gitcmd.Client, scrolloff int) *StatusView {
	return &StatusView{
		client:   client,
		ctx:      ctx,
		unstaged: view.NewList[gitcmd.StatusEntry](scrolloff),
		staged:   view.NewList[gitcmd.StatusEntry](scrolloff),
	}
}

func (v *StatusView) Root() string { return "status" }

func (v *StatusView) active() *view.List[gitcmd.StatusEntry] {
	if v.focus == sideStaged {
		return v.staged
	}
	return v.unstaged
}

func (v *StatusView) ScopePath() keymap.Scope {
	base := "status:unstaged"
	if v.focus == sideStaged {
		base = "status:staged"
	}
	entry, ok := v.active().Focused()
	if !ok {
		return keymap.Scope(base)
	}
	st := entry.Unstaged
	if v.focus == sideStaged {
		st = entry.Staged
	}
	return keymap.Scope(fmt.Sprintf("%s:%s", base, statusName(st.Character())))
}

// Reload re-runs "git status --short --no-renames" and re-buckets the
// result into the unstaged and staged lists. Per spec.md §8, reload
// applied twice in a row on unchanged state yields identical
// sequences: bucketing is a pure function of the parsed entries.
func (v *StatusView) Reload() error {
	entries, err := v.client.Status(v.ctx)
	if err != nil {
		return err
	}
	var unstaged, staged []gitcmd.StatusEntry
	for _, e := range entries {
		if e.Unstaged != gitcmd.StatusNone {
			unstaged = append(unstaged, e)
		}
		if e.Staged != gitcmd.StatusNone {
			staged = append(staged, e)
		}
	}
	v.unstaged.SetItems(unstaged)
	v.staged.SetItems(staged)
	return nil
}

func (v *StatusView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.active(), name, height)
}

func (v *StatusView) Len() int { return v.active().Len() }

func (v *StatusView) Lines() []string {
	items := v.active().Items
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Path
	}
	return out
}

func (v *StatusView) RowIndex(row int) int       { return v.active().RowToIndex(row) }
func (v *StatusView) SetCursor(i, height int)    { v.active().SetCursor(i, height) }
func (v *StatusView) CursorIndex() int           { return v.active().Cursor() }

func (v *StatusView) Rev() (string, bool) { return emptyItem() }

func (v *StatusView) File() (string, bool) {
	e, ok := v.active().Focused()
	if !ok || e.Path == "" {
		return "", false
	}
	return e.Path, true
}

func (v *StatusView) Line() (string, bool) { return emptyItem() }
func (v *StatusView) Text() (string, bool) { return v.File() }

// HandleBuiltin implements the status-local verbs: toggling which
// column has focus and staging/unstaging one or all entries.
func (v *StatusView) HandleBuiltin(name action.Builtin) (bool, error) {
	switch name {
	case action.FocusUnstagedView:
		v.focus = sideUnstaged
		return true, nil
	case action.FocusStagedView:
		v.focus = sideStaged
		return true, nil
	case action.StatusSwitchView:
		if v.focus == sideUnstaged {
			v.focus = sideStaged
		} else {
			v.focus = sideUnstaged
		}
		return true, nil
	case action.StageUnstageFile:
		return true, v.toggleOne()
	case action.StageUnstageFiles:
		return true, v.toggleAll()
	default:
		return false, nil
	}
}

func (v *StatusView) toggleOne() error {
	e, ok := v.active().Focused()
	if !ok {
		return nil
	}
	if v.focus == sideStaged {
		if _, err := v.client.Run(v.ctx, "restore", "--staged", e.Path); err != nil {
			return err
		}
	} else {
		if _, err := v.client.Run(v.ctx, "add", e.Path); err != nil {
			return err
		}
	}
	return v.Reload()
}

func (v *StatusView) toggleAll() error {
	if v.focus == sideStaged {
		if _, err := v.client.Run(v.ctx, "restore", "--staged", "."); err != nil {
			return err
		}
	} else {
		if _, err := v.client.Run(v.ctx, "add", "-A"); err != nil {
			return err
		}
	}
	return v.Reload()
}
