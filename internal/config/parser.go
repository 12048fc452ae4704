package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/key"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
	"github.com/gitrsrc/gitrsrc/internal/optstore"
)

// Target bundles the two mutable stores a configuration line can
// affect: the keymap/button registry and the option store.
type Target struct {
	Registry *keymap.Registry
	Options  *optstore.Store
}

// Apply reads every line of r through the grammar in spec.md §4.3 and
// applies each mutation to t. It never returns early on a bad line:
// errors are accumulated and returned once input is exhausted, per
// spec.md §4.3's non-fatal error handling.
func Apply(r io.Reader, t Target) []error {
	var errs []error
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if err := ApplyLine(line, t); err != nil {
			errs = append(errs, &LineError{Line: lineNo, Text: line, Err: err})
		}
	}
	return errs
}

// ApplyLine parses and applies a single configuration line — used
// both for file lines and for ":"-typed runtime commands (spec.md
// §4.6). Blank lines and comments (leading "#") are silently ignored.
func ApplyLine(line string, t Target) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	cmd, rest, ok := nextField(trimmed)
	if !ok {
		return fmt.Errorf("config: empty line")
	}

	switch cmd {
	case "map":
		return applyMap(rest, t.Registry)
	case "button":
		return applyButton(rest, t.Registry)
	case "set":
		return applySet(rest, t.Options)
	default:
		return fmt.Errorf("config: unknown directive %q", cmd)
	}
}

func applyMap(rest string, reg *keymap.Registry) error {
	scopeStr, rest, ok := nextField(rest)
	if !ok {
		return fmt.Errorf("config: map: missing scope")
	}
	tokensStr, rest, ok := nextField(rest)
	if !ok {
		return fmt.Errorf("config: map: missing tokens")
	}
	actionStr := strings.TrimSpace(rest)
	if actionStr == "" {
		return fmt.Errorf("config: map: missing action")
	}

	seq, err := key.ParseTokens(tokensStr)
	if err != nil {
		return fmt.Errorf("config: map: %w", err)
	}
	act, err := parseAction(actionStr)
	if err != nil {
		return fmt.Errorf("config: map: %w", err)
	}
	if err := reg.Bind(keymap.Scope(scopeStr), seq, act); err != nil {
		return fmt.Errorf("config: map: %w", err)
	}
	return nil
}

func applyButton(rest string, reg *keymap.Registry) error {
	scopeStr, rest, ok := nextField(rest)
	if !ok {
		return fmt.Errorf("config: button: missing scope")
	}
	label, rest, ok := nextField(rest)
	if !ok {
		return fmt.Errorf("config: button: missing label")
	}
	actionStr := strings.TrimSpace(rest)
	if actionStr == "" {
		return fmt.Errorf("config: button: missing action")
	}
	act, err := parseAction(actionStr)
	if err != nil {
		return fmt.Errorf("config: button: %w", err)
	}
	reg.AddButton(keymap.Scope(scopeStr), label, act)
	return nil
}

func applySet(rest string, opts *optstore.Store) error {
	name, rest, ok := nextField(rest)
	if !ok {
		return fmt.Errorf("config: set: missing option name")
	}
	value := strings.TrimSpace(rest)
	if value == "" {
		return fmt.Errorf("config: set: missing value")
	}
	if err := opts.Set(name, value); err != nil {
		return fmt.Errorf("config: set: %w", err)
	}
	return nil
}

// parseAction implements spec.md §4.3's <action> production: either a
// built-in verb name, or a shell template introduced by "!", ">" or "@".
func parseAction(s string) (action.Action, error) {
	if d, ok := action.DisciplineFromSigil(s[0]); ok {
		return action.NewShell(d, s[1:]), nil
	}
	return action.NewBuiltin(s)
}
