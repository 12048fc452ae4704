package apperrors

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	e := New(OptionValue, "set", `scrolloff="abc"`, errors.New("not an integer"))
	want := `OPTION_VALUE: set (scrolloff="abc"): not an integer`
	if got := e.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorIsMatchesByKind(t *testing.T) {
	e1 := New(SubprocessSpawn, "run", "", errors.New("boom"))
	e2 := New(SubprocessSpawn, "other-op", "", nil)
	if !errors.Is(e1, e2) {
		t.Fatal("expected errors.Is to match same Kind")
	}
	e3 := New(IngestParse, "run", "", nil)
	if errors.Is(e1, e3) {
		t.Fatal("expected errors.Is to reject different Kind")
	}
}

func TestKindFatal(t *testing.T) {
	if !TerminalIO.Fatal() {
		t.Fatal("TERMINAL_IO must be fatal")
	}
	if ConfigSyntax.Fatal() {
		t.Fatal("CONFIG_SYNTAX must not be fatal")
	}
}
