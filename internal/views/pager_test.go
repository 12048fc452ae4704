package views

import (
	"context"
	"testing"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/apperrors"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
)

func TestPagerViewAppendAddsInStreamOrder(t *testing.T) {
	v := NewPagerView(context.Background(), gitcmd.New("git"), 0, "", nil)
	v.Append([]string{"one", "two"})
	v.Append([]string{"three"})
	if got := v.Lines(); len(got) != 3 || got[2] != "three" {
		t.Fatalf("Lines() = %v", got)
	}
}

func TestPagerViewStepCommitBoundaryForward(t *testing.T) {
	v := NewPagerView(context.Background(), gitcmd.New("git"), 0, "", nil)
	v.Append([]string{
		"commit aaa",
		"    message one",
		"commit bbb",
		"    message two",
	})
	if ok, err := v.HandleBuiltin(action.PagerNextCommit); !ok || err != nil {
		t.Fatalf("HandleBuiltin = %v, %v", ok, err)
	}
	if v.CursorIndex() != 2 {
		t.Fatalf("CursorIndex() = %d, want 2", v.CursorIndex())
	}
}

func TestPagerViewStepCommitBoundaryNoneFoundReturnsIngestParseError(t *testing.T) {
	v := NewPagerView(context.Background(), gitcmd.New("git"), 0, "", nil)
	v.Append([]string{"just text", "no commit markers"})
	ok, err := v.HandleBuiltin(action.PagerNextCommit)
	if !ok {
		t.Fatal("expected ok=true even though stepping failed")
	}
	if err == nil {
		t.Fatal("expected an error when no commit boundary exists")
	}
	ae, isAppErr := err.(*apperrors.Error)
	if !isAppErr || ae.Kind != apperrors.IngestParse {
		t.Fatalf("err = %v, want an apperrors.IngestParse error", err)
	}
}

func TestPagerViewRevPresenceTracksConstructorArgument(t *testing.T) {
	withRev := NewPagerView(context.Background(), gitcmd.New("git"), 0, "deadbeef", nil)
	if rev, ok := withRev.Rev(); !ok || rev != "deadbeef" {
		t.Errorf("Rev() = %q, %v", rev, ok)
	}
	withoutRev := NewPagerView(context.Background(), gitcmd.New("git"), 0, "", nil)
	if _, ok := withoutRev.Rev(); ok {
		t.Error("Rev() should be absent when no revision was given")
	}
}

func TestPagerViewTextReflectsFocusedLine(t *testing.T) {
	v := NewPagerView(context.Background(), gitcmd.New("git"), 0, "", nil)
	v.Append([]string{"first", "second"})
	v.SetCursor(1, 0)
	if text, ok := v.Text(); !ok || text != "second" {
		t.Errorf("Text() = %q, %v", text, ok)
	}
}
