package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/key"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/optstore"
	"github.com/gitrsrc/gitrsrc/internal/search"
	"github.com/gitrsrc/gitrsrc/internal/subprocess"
)

// fakeView is a minimal view.Model for exercising the dispatcher
// without any real gitcmd-backed state.
type fakeView struct {
	scope   keymap.Scope
	lines   []string
	cursor  int
	navigs  []action.Builtin
	handled []action.Builtin
	reloads int
	item    fakeItem
}

func (v *fakeView) Root() string           { return string(v.scope) }
func (v *fakeView) ScopePath() keymap.Scope { return v.scope }
func (v *fakeView) Reload() error           { v.reloads++; return nil }
func (v *fakeView) Len() int                { return len(v.lines) }
func (v *fakeView) Lines() []string         { return v.lines }
func (v *fakeView) RowIndex(row int) int {
	if row < 0 || row >= len(v.lines) {
		return -1
	}
	return row
}
func (v *fakeView) SetCursor(i, height int) { v.cursor = i }
func (v *fakeView) CursorIndex() int        { return v.cursor }

func (v *fakeView) Rev() (string, bool)  { return v.item.Rev() }
func (v *fakeView) File() (string, bool) { return v.item.File() }
func (v *fakeView) Line() (string, bool) { return v.item.Line() }
func (v *fakeView) Text() (string, bool) { return v.item.Text() }

func (v *fakeView) Navigate(name action.Builtin, height int) bool {
	switch name {
	case action.First:
		v.cursor = 0
	case action.Last:
		v.cursor = len(v.lines) - 1
	case action.Down:
		v.cursor++
	case action.Up:
		v.cursor--
	default:
		return false
	}
	v.navigs = append(v.navigs, name)
	return true
}

func (v *fakeView) HandleBuiltin(name action.Builtin) (bool, error) {
	switch name {
	case action.StageUnstageFile:
		v.handled = append(v.handled, name)
		return true, nil
	default:
		return false, nil
	}
}

// fakeItem implements action.FocusedItem with a fixed revision, used
// by the shell-action scenarios.
type fakeItem struct{ rev, file, line, text string }

func (f fakeItem) Rev() (string, bool)  { return f.rev, f.rev != "" }
func (f fakeItem) File() (string, bool) { return f.file, f.file != "" }
func (f fakeItem) Line() (string, bool) { return f.line, f.line != "" }
func (f fakeItem) Text() (string, bool) { return f.text, f.text != "" }

type fakeSuspender struct{ suspended, resumed int }

func (s *fakeSuspender) Suspend() error { s.suspended++; return nil }
func (s *fakeSuspender) Resume() error  { s.resumed++; return nil }

func newDispatcher() (*Dispatcher, *keymap.Registry) {
	reg := keymap.NewRegistry()
	opts := optstore.New()
	se := search.New(true)
	runner := &subprocess.Runner{}
	d := New(reg, opts, se, runner, &fakeSuspender{})
	return d, reg
}

func seqMust(t *testing.T, s string) key.Sequence {
	t.Helper()
	seq, err := key.ParseTokens(s)
	if err != nil {
		t.Fatalf("parse sequence %q: %v", s, err)
	}
	return seq
}

func bindBuiltin(t *testing.T, reg *keymap.Registry, scope keymap.Scope, seq string, name action.Builtin) {
	t.Helper()
	act, err := action.NewBuiltin(string(name))
	if err != nil {
		t.Fatalf("new builtin %q: %v", name, err)
	}
	if err := reg.Bind(scope, seqMust(t, seq), act); err != nil {
		t.Fatalf("bind %q: %v", seq, err)
	}
}

func TestResolvedSequenceFiresImmediately(t *testing.T) {
	d, reg := newDispatcher()
	bindBuiltin(t, reg, keymap.Global, "g", action.First)

	v := &fakeView{scope: keymap.Global, lines: []string{"a", "b", "c"}, cursor: 2}
	if err := d.HandleKey(context.Background(), key.Rn('g'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if v.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", v.cursor)
	}
	if d.State() != Idle {
		t.Fatalf("state = %v, want Idle", d.State())
	}
}

func TestAmbiguousSequenceWaitsThenFiresOnSecondKey(t *testing.T) {
	d, reg := newDispatcher()
	bindBuiltin(t, reg, keymap.Global, "g", action.First)
	bindBuiltin(t, reg, keymap.Global, "gg", action.First)

	v := &fakeView{scope: keymap.Global, lines: []string{"a", "b", "c"}, cursor: 2}
	if err := d.HandleKey(context.Background(), key.Rn('g'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if d.State() != Pending {
		t.Fatalf("state = %v, want Pending", d.State())
	}
	if err := d.HandleKey(context.Background(), key.Rn('g'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if v.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 (first)", v.cursor)
	}
	if d.State() != Idle {
		t.Fatalf("state = %v, want Idle", d.State())
	}
}

func TestEscInPendingCancelsWithNoActionFired(t *testing.T) {
	d, reg := newDispatcher()
	bindBuiltin(t, reg, keymap.Global, "gg", action.First)

	v := &fakeView{scope: keymap.Global, lines: []string{"a", "b", "c"}, cursor: 1}
	if err := d.HandleKey(context.Background(), key.Rn('g'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if d.State() != Pending {
		t.Fatalf("state = %v, want Pending", d.State())
	}
	if err := d.HandleKey(context.Background(), key.Sp(key.Esc), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if d.State() != Idle {
		t.Fatalf("state = %v, want Idle", d.State())
	}
	if len(v.navigs) != 0 {
		t.Fatalf("navigs = %v, want none fired", v.navigs)
	}
	if v.cursor != 1 {
		t.Fatalf("cursor = %d, want unchanged at 1", v.cursor)
	}
}

func TestAmbiguityTimeoutFiresTerminalAction(t *testing.T) {
	d, reg := newDispatcher()
	bindBuiltin(t, reg, keymap.Global, "g", action.First)
	bindBuiltin(t, reg, keymap.Global, "gg", action.First)

	v := &fakeView{scope: keymap.Global, lines: []string{"a", "b", "c"}, cursor: 2}
	if err := d.HandleKey(context.Background(), key.Rn('g'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	deadline, ok := d.NextDeadline()
	if !ok {
		t.Fatal("expected a pending deadline")
	}
	if !deadline.After(time.Now()) {
		t.Fatal("deadline should be in the future immediately after the key")
	}

	// Simulate the timeout elapsing with no further key.
	d.deadline = time.Now().Add(-time.Millisecond)
	if err := d.Tick(context.Background(), v); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(v.navigs) != 1 || v.navigs[0] != action.First {
		t.Fatalf("navigs = %v, want [First]", v.navigs)
	}
	if d.State() != Idle {
		t.Fatalf("state = %v, want Idle", d.State())
	}
}

func TestUnboundKeyIsNoOp(t *testing.T) {
	d, _ := newDispatcher()
	v := &fakeView{scope: keymap.Global, lines: []string{"a"}}
	if err := d.HandleKey(context.Background(), key.Rn('z'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if d.State() != Idle {
		t.Fatalf("state = %v, want Idle", d.State())
	}
}

func TestViewLocalBuiltinRoutesToHandler(t *testing.T) {
	d, reg := newDispatcher()
	bindBuiltin(t, reg, keymap.Global, "s", action.StageUnstageFile)

	v := &fakeView{scope: keymap.Global, lines: []string{"a"}}
	if err := d.HandleKey(context.Background(), key.Rn('s'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if len(v.handled) != 1 || v.handled[0] != action.StageUnstageFile {
		t.Fatalf("handled = %v, want [StageUnstageFile]", v.handled)
	}
}

func TestCommandLineSetsOption(t *testing.T) {
	d, reg := newDispatcher()
	v := &fakeView{scope: keymap.Global, lines: []string{"a"}}

	if err := d.HandleKey(context.Background(), key.Rn(':'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if d.State() != CommandLine {
		t.Fatalf("state = %v, want CommandLine", d.State())
	}
	for _, r := range "set scrolloff 10" {
		if err := d.HandleKey(context.Background(), key.Rn(r), v); err != nil {
			t.Fatalf("HandleKey(%q): %v", r, err)
		}
	}
	if err := d.HandleKey(context.Background(), key.Sp(key.CR), v); err != nil {
		t.Fatalf("HandleKey(CR): %v", err)
	}
	if d.State() != Idle {
		t.Fatalf("state = %v, want Idle", d.State())
	}
	if got := d.Options.Int("scrolloff"); got != 10 {
		t.Fatalf("scrolloff = %d, want 10", got)
	}
	_ = reg
}

func TestSearchFindsAndAdvances(t *testing.T) {
	d, _ := newDispatcher()
	v := &fakeView{scope: keymap.Global, lines: []string{"alpha", "beta", "alpha again"}}

	if err := d.HandleKey(context.Background(), key.Rn('/'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	for _, r := range "alpha" {
		if err := d.HandleKey(context.Background(), key.Rn(r), v); err != nil {
			t.Fatalf("HandleKey(%q): %v", r, err)
		}
	}
	if err := d.HandleKey(context.Background(), key.Sp(key.CR), v); err != nil {
		t.Fatalf("HandleKey(CR): %v", err)
	}
	if v.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 (first match)", v.cursor)
	}

	act, err := action.NewBuiltin(string(action.NextSearchResult))
	if err != nil {
		t.Fatalf("NewBuiltin: %v", err)
	}
	if err := d.fire(context.Background(), act, v); err != nil {
		t.Fatalf("fire: %v", err)
	}
	if v.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 (second match)", v.cursor)
	}
}

func TestLeftClickMovesCursorWithoutConsultingRegistry(t *testing.T) {
	d, reg := newDispatcher()
	bindBuiltin(t, reg, keymap.Global, "<lclick>", action.Last)

	v := &fakeView{scope: keymap.Global, lines: []string{"a", "b", "c"}, cursor: 0}
	if err := d.HandleKey(context.Background(), key.Ms(key.LClick, 1, 0), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if v.cursor != 1 {
		t.Fatalf("cursor = %d, want 1 (row clicked)", v.cursor)
	}
	if len(v.navigs) != 0 {
		t.Fatalf("navigs = %v, want none: left click only moves the cursor", v.navigs)
	}
}

func TestShellActionResolvesFocusedItemAndSuspendsTerminal(t *testing.T) {
	d, reg := newDispatcher()
	term := &fakeSuspender{}
	d.Term = term
	shellAct := action.NewShell(action.WAIT, "echo %(rev)")
	if err := reg.Bind(keymap.Global, seqMust(t, "r"), shellAct); err != nil {
		t.Fatalf("bind: %v", err)
	}

	v := &fakeView{scope: keymap.Global, lines: []string{"a"}, item: fakeItem{rev: "deadbeef"}}
	if err := d.HandleKey(context.Background(), key.Rn('r'), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if term.suspended != 1 || term.resumed != 1 {
		t.Fatalf("suspended=%d resumed=%d, want 1 and 1", term.suspended, term.resumed)
	}
	if d.State() != Idle {
		t.Fatalf("state = %v, want Idle after the child returns", d.State())
	}
}

func TestRightClickMovesCursorThenConsultsBinding(t *testing.T) {
	d, reg := newDispatcher()
	bindBuiltin(t, reg, keymap.Global, "<rclick>", action.StageUnstageFile)

	v := &fakeView{scope: keymap.Global, lines: []string{"a", "b", "c"}, cursor: 0}
	if err := d.HandleKey(context.Background(), key.Ms(key.RClick, 2, 0), v); err != nil {
		t.Fatalf("HandleKey: %v", err)
	}
	if v.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 (row clicked)", v.cursor)
	}
	if len(v.handled) != 1 {
		t.Fatalf("handled = %v, want one StageUnstageFile call", v.handled)
	}
}
