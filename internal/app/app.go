package app

import (
	"context"
	"os"

	"github.com/gitrsrc/gitrsrc/internal/apperrors"
	"github.com/gitrsrc/gitrsrc/internal/applog"
	"github.com/gitrsrc/gitrsrc/internal/dispatch"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/gitconfig"
	"github.com/gitrsrc/gitrsrc/internal/key"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/optstore"
	"github.com/gitrsrc/gitrsrc/internal/search"
	"github.com/gitrsrc/gitrsrc/internal/subprocess"
	"github.com/gitrsrc/gitrsrc/internal/termgrid"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// App owns every piece of shared state a running gitrsrc session
// needs: the keymap/option stores, the dispatcher state machine, the
// terminal backend, and the currently active view.
type App struct {
	Registry   *keymap.Registry
	Options    *optstore.Store
	Search     *search.State
	Runner     *subprocess.Runner
	Dispatcher *dispatch.Dispatcher
	Client     *gitcmd.Client
	Backend    termgrid.Backend
	Log        *applog.Logger
	Palette    gitconfig.Palette

	View view.Model

	width, height int
}

// New creates an App with an empty registry, default options and the given
// backend and git client already wired. Call Bootstrap to load
// configuration before Run.
func New(backend termgrid.Backend, client *gitcmd.Client) *App {
	reg := keymap.NewRegistry()
	opts := optstore.New()
	se := search.New(opts.Bool("smart_case"))
	runner := &subprocess.Runner{}

	a := &App{
		Registry: reg,
		Options:  opts,
		Search:   se,
		Runner:   runner,
		Client:   client,
		Backend:  backend,
		Log:      applog.Default(),
	}
	a.Dispatcher = dispatch.New(reg, opts, se, runner, backend)
	a.Dispatcher.Exit = os.Exit
	return a
}

// SetView installs v as the active view and reloads it immediately,
// matching "opening a view always shows current data" (spec.md §6).
func (a *App) SetView(v view.Model) error {
	a.View = v
	a.Dispatcher.SetViewportHeight(a.viewportHeight())
	return v.Reload()
}

func (a *App) viewportHeight() int {
	if a.height <= 1 {
		return a.height
	}
	return a.height - 1 // reserve one row for the status/command line
}

// HandleTerminalEvent normalises a raw termgrid.Event and, if it maps
// to a key.Token, advances the dispatcher by one step.
func (a *App) HandleTerminalEvent(ctx context.Context, ev termgrid.Event) error {
	if ev.Type == termgrid.EventResize {
		a.width, a.height = ev.Width, ev.Height
		a.Dispatcher.SetViewportHeight(a.viewportHeight())
		return nil
	}
	tok, ok := key.Normalize(ev)
	if !ok {
		return nil
	}
	if ev.Type == termgrid.EventMouse && !a.Options.Bool("mouse") {
		return nil
	}
	return a.Dispatcher.HandleKey(ctx, tok, a.View)
}

// fatal reports whether err should trigger orderly shutdown rather
// than a status-line message, per spec.md §7: only TERMINAL_IO is.
func fatal(err error) bool {
	var ae *apperrors.Error
	if e, ok := err.(*apperrors.Error); ok {
		ae = e
	}
	return ae != nil && ae.Kind.Fatal()
}
