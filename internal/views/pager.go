package views

import (
	"context"
	"os/exec"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/apperrors"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd/ingest"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/view"
)

// PagerView is the line-oriented pager from spec.md §4.9: its Reload
// starts a subprocess streamed through the async ingest loop instead
// of blocking until the whole command exits, so a slow "git show" on
// a huge revision never stalls the UI thread. Append is called by the
// app's event loop as batches arrive on Channel().
type PagerView struct {
	client *gitcmd.Client
	ctx    context.Context
	rev    string
	argv   []string
	root   string

	list   *view.List[string]
	batch  chan ingest.Batch[string]
	cancel context.CancelFunc
}

// NewPagerView creates a pager view that will stream "git <argv...>"
// on Reload, reporting the bare pager root scope (spec.md §6's
// $GIT_PAGER / stdin-stream invocation mode). rev is carried only for
// the %(rev) placeholder (e.g. the revision a "show" pager is
// displaying).
func NewPagerView(ctx context.Context, client *gitcmd.Client, scrolloff int, rev string, argv []string) *PagerView {
	return newPagerView(ctx, client, scrolloff, rev, argv, "pager")
}

func newPagerView(ctx context.Context, client *gitcmd.Client, scrolloff int, rev string, argv []string, root string) *PagerView {
	return &PagerView{
		client: client,
		ctx:    ctx,
		rev:    rev,
		argv:   argv,
		root:   root,
		list:   view.NewList[string](scrolloff),
	}
}

func (v *PagerView) Root() string { return v.root }

// ScopePath reports the view's scope, per spec.md §3's invariant that
// it begins with the view's root name. The "show" root additionally
// narrows to "show:new" when the focused line is one the commit
// introduced (SPEC_FULL §5's "a hunk line introduced by the commit"),
// mirroring a unified diff's leading '+'.
func (v *PagerView) ScopePath() keymap.Scope {
	if v.root == "show" {
		if line, ok := v.list.Focused(); ok && isAddedDiffLine(line) {
			return keymap.Scope("show:new")
		}
	}
	return keymap.Scope(v.root)
}

func isAddedDiffLine(line string) bool {
	return len(line) > 0 && line[0] == '+' && !(len(line) >= 3 && line[:3] == "+++")
}

// Channel returns the batch stream the app event loop should select
// on alongside terminal events, per spec.md §5's merge point.
func (v *PagerView) Channel() <-chan ingest.Batch[string] { return v.batch }

// Append adds a batch's items to the view in stream order, called by
// the event loop every time Channel() produces a value.
func (v *PagerView) Append(items []string) { v.list.Append(items...) }

// Reload cancels any in-flight stream and starts a fresh one,
// discarding the current item sequence immediately so the view never
// shows a mix of two runs (spec.md §8's reload-idempotence requires a
// clean slate, not an append).
func (v *PagerView) Reload() error {
	if v.cancel != nil {
		v.cancel()
	}
	v.list.SetItems(nil)

	stdout, cmd, err := v.client.Stream(v.ctx, v.argv...)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel
	out := make(chan ingest.Batch[string], 8)
	v.batch = out

	go func() {
		ingest.Loop[string](ctx, stdout, ingest.Lines, out, func(rest []byte) {
			_ = rest // partial trailing record discarded per spec.md §4.9
		})
		_ = waitIgnoringKill(cmd)
	}()
	return nil
}

func waitIgnoringKill(cmd *exec.Cmd) error {
	err := cmd.Wait()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
	}
	return err
}

func (v *PagerView) Navigate(name action.Builtin, height int) bool {
	return navigate(v.list, name, height)
}

func (v *PagerView) Len() int          { return v.list.Len() }
func (v *PagerView) Lines() []string   { return v.list.Items }
func (v *PagerView) RowIndex(row int) int { return v.list.RowToIndex(row) }
func (v *PagerView) SetCursor(i, h int)   { v.list.SetCursor(i, h) }
func (v *PagerView) CursorIndex() int     { return v.list.Cursor() }

func (v *PagerView) Rev() (string, bool) {
	if v.rev == "" {
		return "", false
	}
	return v.rev, true
}

func (v *PagerView) File() (string, bool) { return emptyItem() }
func (v *PagerView) Line() (string, bool) { return emptyItem() }

func (v *PagerView) Text() (string, bool) {
	s, ok := v.list.Focused()
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func (v *PagerView) HandleBuiltin(name action.Builtin) (bool, error) {
	switch name {
	case action.PagerNextCommit, action.PagerPreviousCommit:
		// Commit-boundary stepping requires a "commit " marker scan
		// across already-ingested lines; nothing to step to until the
		// stream has delivered at least one such line.
		return true, v.stepCommitBoundary(name == action.PagerNextCommit)
	default:
		return false, nil
	}
}

func (v *PagerView) stepCommitBoundary(forward bool) error {
	dir := 1
	if !forward {
		dir = -1
	}
	i := v.list.Cursor() + dir
	for i >= 0 && i < v.list.Len() {
		if len(v.list.Items[i]) >= 7 && v.list.Items[i][:7] == "commit " {
			v.list.SetCursor(i, 0)
			return nil
		}
		i += dir
	}
	return apperrors.New(apperrors.IngestParse, "pager_step", "no further commit boundary", nil)
}
