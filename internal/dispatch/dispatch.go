package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/apperrors"
	"github.com/gitrsrc/gitrsrc/internal/applog"
	"github.com/gitrsrc/gitrsrc/internal/config"
	"github.com/gitrsrc/gitrsrc/internal/key"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/optstore"
	"github.com/gitrsrc/gitrsrc/internal/search"
	"github.com/gitrsrc/gitrsrc/internal/subprocess"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// ambiguityTimeout is the delay after which a terminal node that also
// has descendants fires its action if no further key arrives
// (spec.md §4.2, Open Question resolved in SPEC_FULL §7: pinned to
// 250ms rather than exposed as an option).
const ambiguityTimeout = 250 * time.Millisecond

// State is one of the five dispatcher states from spec.md §4.6.
type State int

const (
	Idle State = iota
	Pending
	CommandLine
	SearchMode
	SubprocessState
)

// Dispatcher is the single-threaded state machine that turns
// normalised key.Tokens into view actions and subprocess calls. It
// holds no reference to a particular view: every call is given the
// currently active view.Model.
type Dispatcher struct {
	Registry *keymap.Registry
	Options  *optstore.Store
	Search   *search.State
	Runner   *subprocess.Runner
	Term     subprocess.Suspender
	Log      *applog.Logger

	// Exit is called by the WAIT_AND_EXIT discipline with the child's
	// status. Defaults to nil (a no-op) so tests never terminate the
	// process; app wiring sets it to os.Exit.
	Exit func(code int)

	state State

	pendingSeq       key.Sequence
	hasPendingAction bool
	pendingAction    action.Action
	deadline         time.Time

	cmdBuffer    []rune
	searchBuffer []rune
	searchDir    search.Direction

	viewportHeight int

	StatusMessage string
	Quit          bool
}

// New creates a Dispatcher wired to the given shared state.
func New(reg *keymap.Registry, opts *optstore.Store, se *search.State, runner *subprocess.Runner, term subprocess.Suspender) *Dispatcher {
	return &Dispatcher{
		Registry: reg,
		Options:  opts,
		Search:   se,
		Runner:   runner,
		Term:     term,
		Log:      applog.Default(),
	}
}

// State returns the current dispatcher state.
func (d *Dispatcher) State() State { return d.state }

// SetViewportHeight records the active view's current viewport height
// for scrolloff-aware navigation and search-result cursor placement.
func (d *Dispatcher) SetViewportHeight(h int) { d.viewportHeight = h }

// CommandBuffer returns the in-progress ":"-command line for the
// status/command bar to render.
func (d *Dispatcher) CommandBuffer() string { return string(d.cmdBuffer) }

// SearchBuffer returns the in-progress "/"- or "?"-search query.
func (d *Dispatcher) SearchBuffer() string { return string(d.searchBuffer) }

// HandleKey advances the state machine by one normalised token.
func (d *Dispatcher) HandleKey(ctx context.Context, tok key.Token, v view.Model) error {
	switch d.state {
	case Idle:
		return d.handleIdle(ctx, tok, v)
	case Pending:
		return d.handlePending(ctx, tok, v)
	case CommandLine:
		return d.handleCommandLine(tok)
	case SearchMode:
		return d.handleSearch(tok, v)
	case SubprocessState:
		// Input is routed to the child for the duration of a
		// foreground subprocess; HandleKey is not called while
		// fireShell's call to Runner.Run blocks (spec.md §4.6,
		// "during Subprocess input is routed to the child").
		return nil
	default:
		return nil
	}
}

// Tick fires an Ambiguous action whose deadline has passed without a
// further key arriving (spec.md §4.2/§4.6). The event loop calls this
// when the timer armed from NextDeadline fires; a new key is handled
// by HandleKey instead.
func (d *Dispatcher) Tick(ctx context.Context, v view.Model) error {
	if d.state != Pending || !d.hasPendingAction {
		return nil
	}
	if time.Now().Before(d.deadline) {
		return nil
	}
	act := d.pendingAction
	d.resetPending()
	return d.fire(ctx, act, v)
}

// NextDeadline reports the time the event loop should next wake the
// dispatcher for Tick, if any is pending.
func (d *Dispatcher) NextDeadline() (time.Time, bool) {
	if d.state != Pending || !d.hasPendingAction {
		return time.Time{}, false
	}
	return d.deadline, true
}

func (d *Dispatcher) handleIdle(ctx context.Context, tok key.Token, v view.Model) error {
	if tok.Kind == key.KindMouse {
		return d.handleMouseIdle(ctx, tok, v)
	}
	if tok.Kind == key.KindRune {
		switch tok.Rune {
		case ':':
			d.state = CommandLine
			d.cmdBuffer = d.cmdBuffer[:0]
			return nil
		case '/':
			d.state = SearchMode
			d.searchDir = search.Forward
			d.searchBuffer = d.searchBuffer[:0]
			return nil
		case '?':
			d.state = SearchMode
			d.searchDir = search.Backward
			d.searchBuffer = d.searchBuffer[:0]
			return nil
		}
	}
	return d.consumeToken(ctx, tok, v)
}

func (d *Dispatcher) handleMouseIdle(ctx context.Context, tok key.Token, v view.Model) error {
	if !tok.IsClick() {
		return d.consumeToken(ctx, tok, v)
	}
	if idx := v.RowIndex(tok.Row); idx >= 0 {
		v.SetCursor(idx, d.viewportHeight)
	}
	if tok.Mouse == key.RClick {
		return d.consumeToken(ctx, tok, v)
	}
	return nil
}

func (d *Dispatcher) handlePending(ctx context.Context, tok key.Token, v view.Model) error {
	if tok.Kind == key.KindSpecial && tok.Special == key.Esc {
		d.resetPending()
		return nil
	}
	return d.consumeToken(ctx, tok, v)
}

// consumeToken appends tok to the accumulated prefix and re-evaluates
// it against the active scope chain. Registry.Lookup re-walks the
// whole prefix from each scope's root, so this is safe to call
// repeatedly as the prefix grows.
func (d *Dispatcher) consumeToken(ctx context.Context, tok key.Token, v view.Model) error {
	d.pendingSeq = append(d.pendingSeq, tok)
	chain := v.ScopePath().Chain()
	res := d.Registry.Lookup(chain, d.pendingSeq)

	switch res.Status {
	case keymap.Unmatched:
		d.resetPending()
		return nil
	case keymap.Pending:
		d.state = Pending
		return nil
	case keymap.Resolved:
		act := res.Action
		d.resetPending()
		return d.fire(ctx, act, v)
	case keymap.Ambiguous:
		d.state = Pending
		d.pendingAction = res.Action
		d.hasPendingAction = true
		d.deadline = time.Now().Add(ambiguityTimeout)
		return nil
	default:
		d.resetPending()
		return nil
	}
}

func (d *Dispatcher) resetPending() {
	d.state = Idle
	d.pendingSeq = d.pendingSeq[:0]
	d.hasPendingAction = false
	d.deadline = time.Time{}
}

func (d *Dispatcher) handleCommandLine(tok key.Token) error {
	switch {
	case tok.Kind == key.KindSpecial && tok.Special == key.Esc:
		d.state = Idle
		d.cmdBuffer = d.cmdBuffer[:0]
		return nil
	case tok.Kind == key.KindSpecial && tok.Special == key.CR:
		line := string(d.cmdBuffer)
		d.cmdBuffer = d.cmdBuffer[:0]
		d.state = Idle
		if err := config.ApplyLine(line, config.Target{Registry: d.Registry, Options: d.Options}); err != nil {
			d.StatusMessage = err.Error()
		}
		return nil
	case tok.Kind == key.KindSpecial && tok.Special == key.Backspace:
		if len(d.cmdBuffer) > 0 {
			d.cmdBuffer = d.cmdBuffer[:len(d.cmdBuffer)-1]
		}
		return nil
	case tok.Kind == key.KindRune:
		d.cmdBuffer = append(d.cmdBuffer, tok.Rune)
		return nil
	default:
		return nil
	}
}

func (d *Dispatcher) handleSearch(tok key.Token, v view.Model) error {
	switch {
	case tok.Kind == key.KindSpecial && tok.Special == key.Esc:
		d.state = Idle
		d.searchBuffer = d.searchBuffer[:0]
		return nil
	case tok.Kind == key.KindSpecial && tok.Special == key.CR:
		query := strings.TrimSpace(string(d.searchBuffer))
		d.searchBuffer = d.searchBuffer[:0]
		d.state = Idle
		d.Search.Start(query, d.searchDir)
		if m, ok := d.Search.Next(v.Lines()); ok {
			v.SetCursor(m.Line, d.viewportHeight)
		}
		return nil
	case tok.Kind == key.KindSpecial && tok.Special == key.Backspace:
		if len(d.searchBuffer) > 0 {
			d.searchBuffer = d.searchBuffer[:len(d.searchBuffer)-1]
		}
		return nil
	case tok.Kind == key.KindRune:
		d.searchBuffer = append(d.searchBuffer, tok.Rune)
		return nil
	default:
		return nil
	}
}

func (d *Dispatcher) fire(ctx context.Context, act action.Action, v view.Model) error {
	if act.Kind == action.KindShell {
		return d.fireShell(ctx, act, v)
	}
	return d.fireBuiltin(ctx, act.Builtin, v)
}

func (d *Dispatcher) fireBuiltin(ctx context.Context, name action.Builtin, v view.Model) error {
	switch name {
	case action.Quit:
		d.Quit = true
		return nil
	case action.Nop:
		return nil
	case action.Echo:
		return nil
	case action.TypeCommand:
		d.state = CommandLine
		d.cmdBuffer = d.cmdBuffer[:0]
		return nil
	case action.Search:
		d.state = SearchMode
		d.searchDir = search.Forward
		d.searchBuffer = d.searchBuffer[:0]
		return nil
	case action.SearchReverse:
		d.state = SearchMode
		d.searchDir = search.Backward
		d.searchBuffer = d.searchBuffer[:0]
		return nil
	case action.NextSearchResult:
		if m, ok := d.Search.Next(v.Lines()); ok {
			v.SetCursor(m.Line, d.viewportHeight)
		}
		return nil
	case action.PreviousSearchResult:
		if m, ok := d.Search.Previous(v.Lines()); ok {
			v.SetCursor(m.Line, d.viewportHeight)
		}
		return nil
	case action.Reload:
		if err := v.Reload(); err != nil {
			d.StatusMessage = err.Error()
			return err
		}
		d.Search.Invalidate()
		return nil
	case action.Goto:
		v.SetCursor(v.CursorIndex(), d.viewportHeight)
		return nil
	}

	if v.Navigate(name, d.viewportHeight) {
		return nil
	}
	if h, ok := v.(view.Handler); ok {
		if handled, err := h.HandleBuiltin(name); handled || err != nil {
			if err != nil {
				d.StatusMessage = err.Error()
			}
			return err
		}
	}
	return nil
}

func (d *Dispatcher) fireShell(ctx context.Context, act action.Action, v view.Model) error {
	d.state = SubprocessState
	_, err := d.Runner.Run(ctx, act.Discipline, act.Template, v, d.Options.Lookup, d.Term, d.Exit)
	d.state = Idle
	if err != nil {
		d.StatusMessage = err.Error()
		var appErr *apperrors.Error
		if ae, ok := err.(*apperrors.Error); ok {
			appErr = ae
		}
		if appErr != nil && appErr.Kind.Fatal() {
			return err
		}
		if d.Log != nil {
			d.Log.Warn("shell action failed: %v", err)
		}
		return nil
	}
	return nil
}
