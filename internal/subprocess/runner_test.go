package subprocess

import (
	"context"
	"testing"

	"github.com/gitrsrc/gitrsrc/internal/action"
)

type fakeItem struct{}

func (fakeItem) Rev() (string, bool)  { return "", false }
func (fakeItem) File() (string, bool) { return "", false }
func (fakeItem) Line() (string, bool) { return "", false }
func (fakeItem) Text() (string, bool) { return "", false }

type fakeSuspender struct {
	suspended, resumed int
}

func (f *fakeSuspender) Suspend() error { f.suspended++; return nil }
func (f *fakeSuspender) Resume() error  { f.resumed++; return nil }

func TestRunWaitSuspendsAndResumes(t *testing.T) {
	r := &Runner{}
	term := &fakeSuspender{}
	res, err := r.Run(context.Background(), action.WAIT, "true", fakeItem{}, nil, term, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0", res.ExitCode)
	}
	if term.suspended != 1 || term.resumed != 1 {
		t.Fatalf("suspend/resume counts = %d/%d, want 1/1", term.suspended, term.resumed)
	}
}

func TestRunWaitNonzeroExit(t *testing.T) {
	r := &Runner{}
	term := &fakeSuspender{}
	res, err := r.Run(context.Background(), action.WAIT, "false", fakeItem{}, nil, term, nil)
	if err == nil {
		t.Fatal("expected error for nonzero exit")
	}
	if res.ExitCode != 1 {
		t.Fatalf("exit code = %d, want 1", res.ExitCode)
	}
	if term.resumed != 1 {
		t.Fatal("expected terminal resumed even on nonzero exit")
	}
}

func TestRunWaitAndExitInvokesExitFunc(t *testing.T) {
	r := &Runner{}
	term := &fakeSuspender{}
	var gotCode int
	called := false
	exit := func(code int) { called = true; gotCode = code }

	_, _ = r.Run(context.Background(), action.WAITAndExit, "true", fakeItem{}, nil, term, exit)
	if !called {
		t.Fatal("expected exit func to be called")
	}
	if gotCode != 0 {
		t.Fatalf("exit code passed = %d, want 0", gotCode)
	}
}

func TestRunBackgroundReturnsImmediately(t *testing.T) {
	r := &Runner{}
	res, err := r.Run(context.Background(), action.BACKGROUND, "sleep 0.01", fakeItem{}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Started.IsZero() {
		t.Fatal("expected Started to be set")
	}
}

func TestRunEmptyTemplateErrors(t *testing.T) {
	r := &Runner{}
	if _, err := r.Run(context.Background(), action.WAIT, "   ", fakeItem{}, nil, nil, nil); err == nil {
		t.Fatal("expected error for empty argv")
	}
}
