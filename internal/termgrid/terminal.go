package termgrid

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell to drive a terminal
// character grid.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal constructs a tcell-backed Backend. The screen is not
// initialised until Init is called.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

// Suspend relinquishes the alternate screen for a foreground child
// process spawned by subprocess.Runner under the WAIT/WAIT_AND_EXIT
// disciplines (spec.md §4.7).
func (t *Terminal) Suspend() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Suspend()
}

func (t *Terminal) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Resume()
}

// PollEvent blocks for the next tcell event and translates it into a
// termgrid.Event. It never blocks forever on a closed screen: Fini
// causes PollEvent to return nil, which we surface as EventNone.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventNone}
	}
	switch e := ev.(type) {
	case *tcell.EventKey:
		return keyEventFromTcell(e)
	case *tcell.EventMouse:
		return mouseEventFromTcell(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

func keyEventFromTcell(e *tcell.EventKey) Event {
	ev := Event{Type: EventKey}
	if e.Modifiers()&tcell.ModCtrl != 0 {
		ev.Mod |= RawModCtrl
	}
	if e.Modifiers()&tcell.ModAlt != 0 {
		ev.Mod |= RawModAlt
	}
	if e.Modifiers()&tcell.ModShift != 0 {
		ev.Mod |= RawModShift
	}

	switch e.Key() {
	case tcell.KeyEnter:
		ev.Key = RawEnter
	case tcell.KeyTab:
		ev.Key = RawTab
	case tcell.KeyEsc:
		ev.Key = RawEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ev.Key = RawBackspace
	case tcell.KeyHome:
		ev.Key = RawHome
	case tcell.KeyEnd:
		ev.Key = RawEnd
	case tcell.KeyPgUp:
		ev.Key = RawPageUp
	case tcell.KeyPgDn:
		ev.Key = RawPageDown
	case tcell.KeyUp:
		ev.Key = RawUp
	case tcell.KeyDown:
		ev.Key = RawDown
	case tcell.KeyLeft:
		ev.Key = RawLeft
	case tcell.KeyRight:
		ev.Key = RawRight
	case tcell.KeyRune:
		ev.Key = RawRune
		ev.Rune = e.Rune()
	default:
		// Control letters arrive as their own tcell.Key (e.g. KeyCtrlU);
		// recover the underlying letter and flag it as a rune+ctrl so
		// the key normaliser can emit <c-u>.
		if r, ok := ctrlRune(e.Key()); ok {
			ev.Key = RawRune
			ev.Rune = r
			ev.Mod |= RawModCtrl
		} else {
			ev.Key = RawNone
		}
	}
	return ev
}

func ctrlRune(k tcell.Key) (rune, bool) {
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return rune('a' + int(k-tcell.KeyCtrlA)), true
	}
	return 0, false
}

func mouseEventFromTcell(e *tcell.EventMouse) Event {
	ev := Event{Type: EventMouse}
	ev.MouseCol, ev.MouseRow = e.Position()
	switch {
	case e.Buttons()&tcell.Button1 != 0:
		ev.MouseButton = RawButtonLeft
	case e.Buttons()&tcell.Button3 != 0:
		ev.MouseButton = RawButtonRight
	case e.Buttons()&tcell.WheelUp != 0:
		ev.MouseButton = RawWheelUp
	case e.Buttons()&tcell.WheelDown != 0:
		ev.MouseButton = RawWheelDown
	default:
		ev.MouseButton = RawButtonNone
	}
	return ev
}

func convertStyle(s Style) tcell.Style {
	st := tcell.StyleDefault
	if !s.Fg.Default {
		st = st.Foreground(convertColor(s.Fg))
	}
	if !s.Bg.Default {
		st = st.Background(convertColor(s.Bg))
	}
	if s.Attr.Has(AttrBold) {
		st = st.Bold(true)
	}
	if s.Attr.Has(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attr.Has(AttrReverse) {
		st = st.Reverse(true)
	}
	if s.Attr.Has(AttrDim) {
		st = st.Dim(true)
	}
	return st
}

func convertColor(c Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
