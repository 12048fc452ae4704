package action

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPlaceholderUnavailable is the PLACEHOLDER_UNAVAILABLE error kind
// from spec.md §7: either the placeholder name is unknown, or the
// focused item has no value for it.
var ErrPlaceholderUnavailable = errors.New("placeholder unavailable")

// FocusedItem is the four-placeholder accessor every view exposes for
// its currently focused item (spec.md §3, "View state"). A method
// returns ("", false) to report "not applicable" — it must never
// return ("", true): an empty-string substitution is itself an error
// per spec.md's invariants.
type FocusedItem interface {
	Rev() (string, bool)
	File() (string, bool)
	Line() (string, bool)
	Text() (string, bool)
}

// Lookup supplies the %(git) and %(clip) option-backed placeholders.
type Lookup func(name string) (string, bool)

// Resolve substitutes every %(name) occurrence in template against
// item (for rev/file/line/text) and opts (for git/clip), per spec.md
// §4.4-4.5. It is a pure function of its three arguments.
func Resolve(template string, item FocusedItem, opts Lookup) (string, error) {
	var b strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); {
		if runes[i] == '%' && i+1 < len(runes) && runes[i+1] == '(' {
			end := i + 2
			for end < len(runes) && runes[end] != ')' {
				end++
			}
			if end >= len(runes) {
				return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrPlaceholderUnavailable, template)
			}
			name := string(runes[i+2 : end])
			val, err := resolveOne(name, item, opts)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
			i = end + 1
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String(), nil
}

func resolveOne(name string, item FocusedItem, opts Lookup) (string, error) {
	var val string
	var ok bool
	switch name {
	case "rev":
		val, ok = item.Rev()
	case "file":
		val, ok = item.File()
	case "line":
		val, ok = item.Line()
	case "text":
		val, ok = item.Text()
	case "git", "clip":
		if opts == nil {
			return "", fmt.Errorf("%w: %%(%s) with no option lookup", ErrPlaceholderUnavailable, name)
		}
		val, ok = opts(name)
	default:
		return "", fmt.Errorf("%w: unknown placeholder %%(%s)", ErrPlaceholderUnavailable, name)
	}
	if !ok || val == "" {
		return "", fmt.Errorf("%w: %%(%s)", ErrPlaceholderUnavailable, name)
	}
	return val, nil
}
