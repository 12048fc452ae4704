package termgrid

// NullBackend is a deterministic in-memory Backend used by tests: a
// queue of synthetic events plus a recorded grid, with no real
// terminal behind it.
type NullBackend struct {
	width, height int
	grid          [][]rune
	styles        [][]Style
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
	suspended     bool
}

// NewNullBackend creates a null backend of the given size.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width: width, height: height,
		events: make(chan Event, 256),
	}
}

func (b *NullBackend) Init() error {
	b.grid = make([][]rune, b.height)
	b.styles = make([][]Style, b.height)
	for y := range b.grid {
		b.grid[y] = make([]rune, b.width)
		b.styles[y] = make([]Style, b.width)
		for x := range b.grid[y] {
			b.grid[y][x] = ' '
			b.styles[y][x] = StyleDefault
		}
	}
	return nil
}

func (b *NullBackend) Shutdown() { close(b.events) }
func (b *NullBackend) Size() (int, int) { return b.width, b.height }

func (b *NullBackend) SetCell(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.grid[y][x] = r
	b.styles[y][x] = style
}

func (b *NullBackend) Clear() {
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = ' '
			b.styles[y][x] = StyleDefault
		}
	}
}

func (b *NullBackend) Show() {}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() { b.cursorVisible = false }

func (b *NullBackend) Suspend() error { b.suspended = true; return nil }
func (b *NullBackend) Resume() error  { b.suspended = false; return nil }

// PollEvent returns the next injected event, or a zero EventNone
// event once the queue is closed.
func (b *NullBackend) PollEvent() Event {
	ev, ok := <-b.events
	if !ok {
		return Event{Type: EventNone}
	}
	return ev
}

// Inject pushes a synthetic event for PollEvent to return next.
func (b *NullBackend) Inject(ev Event) { b.events <- ev }

// CellAt returns the rune and style at a grid position, for test assertions.
func (b *NullBackend) CellAt(x, y int) (rune, Style) { return b.grid[y][x], b.styles[y][x] }

// CursorPosition reports where ShowCursor last moved to, for test assertions.
func (b *NullBackend) CursorPosition() (int, int, bool) { return b.cursorX, b.cursorY, b.cursorVisible }

// IsSuspended reports whether Suspend was called without a matching Resume.
func (b *NullBackend) IsSuspended() bool { return b.suspended }
