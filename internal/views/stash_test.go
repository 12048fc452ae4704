package views

import (
	"context"
	"testing"

	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
)

func TestStashViewRevUsesCursorOrdinal(t *testing.T) {
	v := NewStashView(context.Background(), gitcmd.New("git"), 0)
	v.list.SetItems([]gitcmd.StashEntry{
		{Date: "d0", Title: "first"},
		{Date: "d1", Title: "second"},
		{Date: "d2", Title: "third"},
	})
	v.SetCursor(2, 0)
	if rev, ok := v.Rev(); !ok || rev != "stash@{2}" {
		t.Errorf("Rev() = %q, %v", rev, ok)
	}
}

func TestStashViewRevAbsentWhenEmpty(t *testing.T) {
	v := NewStashView(context.Background(), gitcmd.New("git"), 0)
	if _, ok := v.Rev(); ok {
		t.Error("Rev() should be absent with no stash entries")
	}
}

func TestStashViewLinesListsTitles(t *testing.T) {
	v := NewStashView(context.Background(), gitcmd.New("git"), 0)
	v.list.SetItems([]gitcmd.StashEntry{{Title: "a"}, {Title: "b"}})
	if got := v.Lines(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Lines() = %v", got)
	}
}
