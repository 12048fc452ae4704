package app

import (
	"context"
	"time"

	"github.com/gitrsrc/gitrsrc/internal/gitcmd/ingest"
	"github.com/gitrsrc/gitrsrc/internal/termgrid"
)

// pagerIngest is the narrow interface a pager-backed view.Model
// exposes for the event loop to merge its async stream with terminal
// input, per spec.md §4.9/§5. Not every view implements it; views
// that don't are simply never selected on.
type pagerIngest interface {
	Channel() <-chan ingest.Batch[string]
	Append(items []string)
}

// Run drives the event loop until the dispatcher requests Quit or a
// fatal error occurs. Terminal events are polled on a dedicated
// goroutine (Backend.PollEvent blocks) and merged with the active
// view's ingest channel, if any; ties are broken in favour of the
// terminal event (spec.md §5).
func (a *App) Run(ctx context.Context) error {
	if err := a.Backend.Init(); err != nil {
		return err
	}
	defer a.Backend.Shutdown()

	a.width, a.height = a.Backend.Size()
	a.Dispatcher.SetViewportHeight(a.viewportHeight())

	events := a.pollEvents(ctx)
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		if a.Dispatcher.Quit {
			return nil
		}
		a.resetTimer(timer)

		// A terminal event ready at the same instant as an ingest batch
		// or a tick wins the race: check events non-blockingly first,
		// and only fall through to the fair multi-way select when none
		// is waiting. Go's select itself picks uniformly among ready
		// cases, which would violate the ordering spec.md §5 requires.
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.HandleTerminalEvent(ctx, ev); err != nil {
				if fatal(err) {
					return err
				}
				a.Log.Warn("event handling failed: %v", err)
			}
			continue
		default:
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.HandleTerminalEvent(ctx, ev); err != nil {
				if fatal(err) {
					return err
				}
				a.Log.Warn("event handling failed: %v", err)
			}
		case batch, ok := <-a.ingestChannel():
			if ok {
				a.deliverBatch(batch)
			}
		case <-timer.C:
			if err := a.Dispatcher.Tick(ctx, a.View); err != nil && fatal(err) {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// resetTimer arms timer for the dispatcher's next ambiguity deadline,
// per spec.md §4.2/§4.6's "ties are broken in favour of the terminal
// event" ordering: the timer only ever fires Tick, never preempts a
// key that arrived first within the same select.
func (a *App) resetTimer(timer *time.Timer) {
	timer.Stop()
	select {
	case <-timer.C:
	default:
	}
	deadline, ok := a.Dispatcher.NextDeadline()
	if !ok {
		timer.Reset(time.Hour)
		return
	}
	d := time.Until(deadline)
	if d < 0 {
		d = 0
	}
	timer.Reset(d)
}

// pollEvents spawns the goroutine that turns Backend.PollEvent's
// blocking calls into a channel the select loop can merge with other
// sources. It closes the channel once the backend reports EventNone,
// which Shutdown causes PollEvent to return.
func (a *App) pollEvents(ctx context.Context) <-chan termgrid.Event {
	out := make(chan termgrid.Event)
	go func() {
		defer close(out)
		for {
			ev := a.Backend.PollEvent()
			if ev.Type == termgrid.EventNone {
				return
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (a *App) ingestChannel() <-chan ingest.Batch[string] {
	if p, ok := a.View.(pagerIngest); ok {
		return p.Channel()
	}
	return nil
}

func (a *App) deliverBatch(b ingest.Batch[string]) {
	p, ok := a.View.(pagerIngest)
	if !ok {
		return
	}
	if b.Err != nil {
		a.Log.Warn("ingest: %v", b.Err)
		return
	}
	p.Append(b.Items)
	a.Search.Invalidate()
}

