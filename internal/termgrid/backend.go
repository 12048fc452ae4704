package termgrid

// EventType identifies the kind of terminal event delivered by a Backend.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// RawKey is the backend's raw key identity, prior to normalisation
// into a key.Token. It mirrors the small set of keys terminals report
// distinctly; everything else arrives as RawRune.
type RawKey int

const (
	RawNone RawKey = iota
	RawRune
	RawEnter
	RawTab
	RawEscape
	RawBackspace
	RawHome
	RawEnd
	RawPageUp
	RawPageDown
	RawUp
	RawDown
	RawLeft
	RawRight
)

// RawMod is the backend's raw modifier mask.
type RawMod int

const (
	RawModNone RawMod = 0
	RawModCtrl RawMod = 1 << iota
	RawModAlt
	RawModShift
)

func (m RawMod) Has(o RawMod) bool { return m&o != 0 }

// RawButton identifies which mouse button/action fired.
type RawButton int

const (
	RawButtonNone RawButton = iota
	RawButtonLeft
	RawButtonRight
	RawWheelUp
	RawWheelDown
)

// Event is a single terminal event: a key press, a mouse action, or a
// resize. Exactly one of the Key*/Mouse*/Width,Height field groups is
// meaningful, selected by Type.
type Event struct {
	Type EventType

	Key  RawKey
	Rune rune
	Mod  RawMod

	MouseButton RawButton
	MouseRow    int
	MouseCol    int

	Width, Height int
}

// Backend is the terminal collaborator the UI depends on. Production
// code uses the tcell-backed Terminal; tests use NullBackend.
type Backend interface {
	Init() error
	Shutdown()
	Size() (width, height int)

	// PollEvent blocks until the next event is available or the
	// backend is shut down, in which case it returns a zero Event
	// with Type EventNone.
	PollEvent() Event

	SetCell(x, y int, r rune, style Style)
	Clear()
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// Suspend hands the character grid over to a foreground child
	// process (subprocess.Runner's WAIT/WAIT_AND_EXIT disciplines);
	// Resume restores it afterwards. Both are idempotent.
	Suspend() error
	Resume() error
}
