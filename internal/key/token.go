package key

import "fmt"

// Kind distinguishes the four token shapes spec.md §3 allows.
type Kind uint8

const (
	// KindRune is a single printable character, e.g. "k", "G".
	KindRune Kind = iota
	// KindSpecial is a named non-printable key, e.g. <cr>, <tab>.
	KindSpecial
	// KindCtrl is a control-modified letter, e.g. <c-u>.
	KindCtrl
	// KindMouse is a pointer event, e.g. <lclick>, <scroll-up>.
	KindMouse
)

// Special enumerates the named specials from spec.md §4.1.
type Special uint8

const (
	SpecialNone Special = iota
	CR
	Tab
	Esc
	Home
	End
	PgUp
	PgDown
	Up
	Down
	Left
	Right
	Space
	Backspace
)

var specialNames = map[Special]string{
	CR: "cr", Tab: "tab", Esc: "esc", Home: "home", End: "end",
	PgUp: "pgup", PgDown: "pgdown", Up: "up", Down: "down",
	Left: "left", Right: "right", Space: "space", Backspace: "bs",
}

var namesToSpecial = func() map[string]Special {
	m := make(map[string]Special, len(specialNames))
	for s, n := range specialNames {
		m[n] = s
	}
	return m
}()

// MouseKind enumerates the pointer events from spec.md §4.1.
type MouseKind uint8

const (
	MouseNone MouseKind = iota
	LClick
	RClick
	ScrollUp
	ScrollDown
)

var mouseNames = map[MouseKind]string{
	LClick: "lclick", RClick: "rclick", ScrollUp: "scroll-up", ScrollDown: "scroll-down",
}

// Token is one canonical keystroke or pointer event. Tokens compare
// structurally for equality and are total-ordered by their String form
// for tie-breaking, per spec.md §3.
type Token struct {
	Kind    Kind
	Rune    rune      // valid for KindRune and KindCtrl (the unmodified letter)
	Special Special   // valid for KindSpecial
	Mouse   MouseKind // valid for KindMouse

	// Row, Col carry out-of-band pointer position for KindMouse tokens.
	// They do not participate in equality or trie lookup: two clicks at
	// different coordinates are the same token for binding purposes.
	Row, Col int
}

// Rn builds a printable-rune token.
func Rn(r rune) Token { return Token{Kind: KindRune, Rune: r} }

// Ctl builds a control-modified token, e.g. Ctl('u') for <c-u>.
func Ctl(r rune) Token { return Token{Kind: KindCtrl, Rune: toLower(r)} }

// Sp builds a named-special token.
func Sp(s Special) Token { return Token{Kind: KindSpecial, Special: s} }

// Ms builds a mouse-event token at the given terminal cell.
func Ms(k MouseKind, row, col int) Token {
	return Token{Kind: KindMouse, Mouse: k, Row: row, Col: col}
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Equal reports structural equality, ignoring pointer coordinates.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindRune:
		return t.Rune == o.Rune
	case KindCtrl:
		return t.Rune == o.Rune
	case KindSpecial:
		return t.Special == o.Special
	case KindMouse:
		return t.Mouse == o.Mouse
	default:
		return false
	}
}

// Key is the canonical string form used as a trie edge label and for
// lexicographic tie-breaking. It deliberately omits mouse coordinates.
func (t Token) Key() string {
	switch t.Kind {
	case KindRune:
		return string(t.Rune)
	case KindCtrl:
		return fmt.Sprintf("<c-%c>", t.Rune)
	case KindSpecial:
		if name, ok := specialNames[t.Special]; ok {
			return "<" + name + ">"
		}
		return "<special?>"
	case KindMouse:
		if name, ok := mouseNames[t.Mouse]; ok {
			return "<" + name + ">"
		}
		return "<mouse?>"
	default:
		return "<?>"
	}
}

func (t Token) String() string { return t.Key() }

// Less implements the total order used to break ties between
// ambiguous bindings; it operates purely on the canonical Key form.
func (t Token) Less(o Token) bool { return t.Key() < o.Key() }

// IsClick reports whether the token is a left or right click.
func (t Token) IsClick() bool {
	return t.Kind == KindMouse && (t.Mouse == LClick || t.Mouse == RClick)
}
