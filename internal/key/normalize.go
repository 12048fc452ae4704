package key

import "github.com/gitrsrc/gitrsrc/internal/termgrid"

// Normalize implements spec.md §4.1: it turns one terminal event into
// at most one canonical Token. Resize events and anything termgrid
// does not recognise produce (Token{}, false).
func Normalize(ev termgrid.Event) (Token, bool) {
	switch ev.Type {
	case termgrid.EventKey:
		return normalizeKey(ev)
	case termgrid.EventMouse:
		return normalizeMouse(ev)
	default:
		return Token{}, false
	}
}

func normalizeKey(ev termgrid.Event) (Token, bool) {
	if ev.Key == termgrid.RawRune {
		r := ev.Rune
		if ev.Mod.Has(termgrid.RawModCtrl) {
			return Ctl(r), true
		}
		// Shift on a letter is already reflected in the rune's case by
		// the backend; no separate <s-...> form exists for letters.
		return Rn(r), true
	}

	switch ev.Key {
	case termgrid.RawEnter:
		return Sp(CR), true
	case termgrid.RawTab:
		return Sp(Tab), true
	case termgrid.RawEscape:
		return Sp(Esc), true
	case termgrid.RawBackspace:
		return Sp(Backspace), true
	case termgrid.RawHome:
		return Sp(Home), true
	case termgrid.RawEnd:
		return Sp(End), true
	case termgrid.RawPageUp:
		return Sp(PgUp), true
	case termgrid.RawPageDown:
		return Sp(PgDown), true
	case termgrid.RawUp:
		return Sp(Up), true
	case termgrid.RawDown:
		return Sp(Down), true
	case termgrid.RawLeft:
		return Sp(Left), true
	case termgrid.RawRight:
		return Sp(Right), true
	default:
		return Token{}, false
	}
}

func normalizeMouse(ev termgrid.Event) (Token, bool) {
	switch ev.MouseButton {
	case termgrid.RawButtonLeft:
		return Ms(LClick, ev.MouseRow, ev.MouseCol), true
	case termgrid.RawButtonRight:
		return Ms(RClick, ev.MouseRow, ev.MouseCol), true
	case termgrid.RawWheelUp:
		return Ms(ScrollUp, ev.MouseRow, ev.MouseCol), true
	case termgrid.RawWheelDown:
		return Ms(ScrollDown, ev.MouseRow, ev.MouseCol), true
	default:
		return Token{}, false
	}
}
