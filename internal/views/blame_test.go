package views

import (
	"context"
	"testing"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
)

func newBlameViewWithLines(lines []gitcmd.BlameLine) *BlameView {
	v := NewBlameView(context.Background(), gitcmd.New("git"), 0, "f.go", "", 0)
	v.list.SetItems(lines)
	return v
}

func TestBlameViewStepToNextHashForward(t *testing.T) {
	v := newBlameViewWithLines([]gitcmd.BlameLine{
		{Hash: "aaa", Text: "one"},
		{Hash: "aaa", Text: "two"},
		{Hash: "bbb", Text: "three"},
		{Hash: "bbb", Text: "four"},
		{Hash: "ccc", Text: "five"},
	})
	if ok, err := v.HandleBuiltin(action.NextCommitBlame); !ok || err != nil {
		t.Fatalf("HandleBuiltin = %v, %v", ok, err)
	}
	if v.CursorIndex() != 2 {
		t.Fatalf("CursorIndex() = %d, want 2", v.CursorIndex())
	}
	if ok, _ := v.HandleBuiltin(action.NextCommitBlame); !ok {
		t.Fatal("expected ok=true")
	}
	if v.CursorIndex() != 4 {
		t.Fatalf("CursorIndex() = %d, want 4", v.CursorIndex())
	}
}

func TestBlameViewStepToNextHashBackward(t *testing.T) {
	v := newBlameViewWithLines([]gitcmd.BlameLine{
		{Hash: "aaa", Text: "one"},
		{Hash: "bbb", Text: "two"},
		{Hash: "bbb", Text: "three"},
	})
	v.list.SetCursor(2, 0)
	if ok, err := v.HandleBuiltin(action.PreviousCommitBlame); !ok || err != nil {
		t.Fatalf("HandleBuiltin = %v, %v", ok, err)
	}
	if v.CursorIndex() != 0 {
		t.Fatalf("CursorIndex() = %d, want 0", v.CursorIndex())
	}
}

func TestBlameViewStepToNextHashStaysPutAtBoundary(t *testing.T) {
	v := newBlameViewWithLines([]gitcmd.BlameLine{
		{Hash: "aaa", Text: "one"},
		{Hash: "aaa", Text: "two"},
	})
	if ok, err := v.HandleBuiltin(action.NextCommitBlame); !ok || err != nil {
		t.Fatalf("HandleBuiltin = %v, %v", ok, err)
	}
	if v.CursorIndex() != 0 {
		t.Fatalf("CursorIndex() = %d, want 0 (no further commit)", v.CursorIndex())
	}
}

func TestBlameViewRevAndLineReflectCursor(t *testing.T) {
	v := newBlameViewWithLines([]gitcmd.BlameLine{
		{Hash: "aaa", Text: "one"},
		{Hash: "bbb", Text: "two"},
	})
	v.list.SetCursor(1, 0)
	if rev, ok := v.Rev(); !ok || rev != "bbb" {
		t.Errorf("Rev() = %q, %v", rev, ok)
	}
	if line, ok := v.Line(); !ok || line != "2" {
		t.Errorf("Line() = %q, %v", line, ok)
	}
}

func TestBlameViewStartLineAppliesOnFirstReload(t *testing.T) {
	v := NewBlameView(context.Background(), gitcmd.New("git"), 0, "f.go", "", 5)
	// Simulate what Reload would do after a successful git blame,
	// without actually invoking git: apply the pending startLine and
	// clear it, exactly as Reload's body does.
	if v.startLine != 5 {
		t.Fatalf("startLine = %d, want 5 before the first reload", v.startLine)
	}
	lines := []gitcmd.BlameLine{{Hash: "a"}, {Hash: "b"}, {Hash: "c"}, {Hash: "d"}, {Hash: "e"}, {Hash: "f"}}
	cursor := v.list.Cursor()
	if v.startLine > 0 {
		cursor = v.startLine - 1
		v.startLine = 0
	}
	v.list.SetItems(lines)
	v.list.SetCursor(cursor, 0)

	if v.CursorIndex() != 4 {
		t.Fatalf("CursorIndex() = %d, want 4 (startLine 5 is 0-based index 4)", v.CursorIndex())
	}
	if v.startLine != 0 {
		t.Fatalf("startLine should be cleared after the first reload, got %d", v.startLine)
	}
}
