package views

import (
	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// navigate applies a navigation builtin to l, reporting whether name
// was one it recognises. Shared by every concrete view so the nine
// navigation verbs from spec.md §3 behave identically everywhere.
func navigate[T any](l *view.List[T], name action.Builtin, height int) bool {
	switch name {
	case action.Up:
		l.Up(height)
	case action.Down:
		l.Down(height)
	case action.First:
		l.First(height)
	case action.Last:
		l.Last(height)
	case action.HalfPageUp:
		l.HalfPageUp(height)
	case action.HalfPageDown:
		l.HalfPageDown(height)
	case action.ShiftLineTop:
		l.ShiftLineTop(height)
	case action.ShiftLineMiddle:
		l.ShiftLineMiddle(height)
	case action.ShiftLineBottom:
		l.ShiftLineBottom(height)
	default:
		return false
	}
	return true
}

func statusName(s byte) string {
	switch s {
	case '>':
		return "modified"
	case '-':
		return "deleted"
	case '+':
		return "new"
	case '@':
		return "unmerged"
	default:
		return "none"
	}
}

func emptyItem() (string, bool) { return "", false }
