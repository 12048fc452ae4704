package view

import (
	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
)

// Model is the contract every concrete view (internal/views)
// implements, per spec.md §4.8: an item sequence, a cursor with
// navigation primitives, a scope-path accessor, a focused-item
// accessor, a reload primitive, and click routing.
type Model interface {
	action.FocusedItem

	// Root is the view's scope root, e.g. "status", "log", "pager".
	Root() string

	// ScopePath returns the current scope, which may depend on the
	// focused item (e.g. "status:unstaged:modified").
	ScopePath() keymap.Scope

	// Reload discards the current item sequence and re-fetches it
	// (typically via internal/gitcmd). Reload applied twice in a row
	// on unchanged underlying state must yield identical sequences
	// (spec.md §8).
	Reload() error

	// Navigate applies a navigation builtin (up/down/first/last/half
	// page/shift-line-*) against the given viewport height. ok is
	// false when name is not a navigation verb this view recognises.
	Navigate(name action.Builtin, height int) (ok bool)

	// Len and Lines expose the textual projection the search
	// subsystem scans; Lines()[i] is the line searched for match i.
	Len() int
	Lines() []string

	// RowIndex converts a viewport row into an item index (-1 if out
	// of range), for left-click cursor placement.
	RowIndex(row int) int

	// SetCursor moves the cursor to item index i for the given
	// viewport height (used by left clicks and by goto).
	SetCursor(i, height int)

	// CursorIndex is the current cursor position into Lines()/items.
	CursorIndex() int
}

// Handler executes the view-local subset of builtins spec.md §4.8
// lists beyond plain navigation: stage/unstage, view-switching,
// pager/blame commit stepping. A view that doesn't recognise a verb
// returns ok=false so the dispatcher can decide it was a no-op.
type Handler interface {
	HandleBuiltin(name action.Builtin) (ok bool, err error)
}
