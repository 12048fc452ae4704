package views

import (
	"context"
	"testing"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
)

func TestStatusViewScopePathReflectsFocusAndEntryStatus(t *testing.T) {
	v := NewStatusView(context.Background(), gitcmd.New("git"), 0)
	v.unstaged.SetItems([]gitcmd.StatusEntry{{Unstaged: gitcmd.StatusModified, Path: "a.go"}})
	v.staged.SetItems([]gitcmd.StatusEntry{{Staged: gitcmd.StatusNew, Path: "b.go"}})

	if got := v.ScopePath(); got != "status:unstaged:modified" {
		t.Errorf("ScopePath() = %q", got)
	}

	if _, err := v.HandleBuiltin(action.FocusStagedView); err != nil {
		t.Fatalf("HandleBuiltin: %v", err)
	}
	if got := v.ScopePath(); got != "status:staged:new" {
		t.Errorf("ScopePath() = %q", got)
	}
}

func TestStatusViewScopePathEmptyList(t *testing.T) {
	v := NewStatusView(context.Background(), gitcmd.New("git"), 0)
	if got := v.ScopePath(); got != "status:unstaged" {
		t.Errorf("ScopePath() = %q", got)
	}
}

func TestStatusViewStatusSwitchViewTogglesFocus(t *testing.T) {
	v := NewStatusView(context.Background(), gitcmd.New("git"), 0)
	if v.focus != sideUnstaged {
		t.Fatalf("expected initial focus unstaged")
	}
	if ok, err := v.HandleBuiltin(action.StatusSwitchView); !ok || err != nil {
		t.Fatalf("HandleBuiltin = %v, %v", ok, err)
	}
	if v.focus != sideStaged {
		t.Fatalf("expected focus staged after switch")
	}
	if ok, _ := v.HandleBuiltin(action.StatusSwitchView); !ok {
		t.Fatal("expected ok=true")
	}
	if v.focus != sideUnstaged {
		t.Fatalf("expected focus back to unstaged")
	}
}

func TestStatusViewHandleBuiltinUnknownVerbIsNoOp(t *testing.T) {
	v := NewStatusView(context.Background(), gitcmd.New("git"), 0)
	if ok, err := v.HandleBuiltin(action.Quit); ok || err != nil {
		t.Fatalf("HandleBuiltin(Quit) = %v, %v, want false, nil", ok, err)
	}
}

func TestStatusViewFileReflectsFocusedEntry(t *testing.T) {
	v := NewStatusView(context.Background(), gitcmd.New("git"), 0)
	v.unstaged.SetItems([]gitcmd.StatusEntry{{Unstaged: gitcmd.StatusModified, Path: "a.go"}})
	if f, ok := v.File(); !ok || f != "a.go" {
		t.Errorf("File() = %q, %v", f, ok)
	}
	if _, ok := v.Rev(); ok {
		t.Error("Rev() should never be present for a status entry")
	}
}

func TestStatusViewLinesListsPaths(t *testing.T) {
	v := NewStatusView(context.Background(), gitcmd.New("git"), 0)
	v.unstaged.SetItems([]gitcmd.StatusEntry{
		{Unstaged: gitcmd.StatusModified, Path: "a.go"},
		{Unstaged: gitcmd.StatusNew, Path: "b.go"},
	})
	lines := v.Lines()
	if len(lines) != 2 || lines[0] != "a.go" || lines[1] != "b.go" {
		t.Fatalf("Lines() = %v", lines)
	}
}
