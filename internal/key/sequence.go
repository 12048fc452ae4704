package key

import (
	"fmt"
	"strings"
)

// Sequence is an ordered list of tokens, e.g. the two-token sequence
// bound to "gg" or the single-token sequence bound to "<c-u>".
type Sequence []Token

// String renders the sequence back to its canonical textual form, the
// concatenation of each token's Key(), matching the grammar §4.3
// describes for <tokens>.
func (s Sequence) String() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Key())
	}
	return b.String()
}

// Equal reports whether two sequences contain the same tokens in order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether s is a (possibly equal) prefix of o.
func (s Sequence) IsPrefixOf(o Sequence) bool {
	if len(s) > len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// ParseTokens parses a <tokens> string from the configuration grammar
// (spec.md §4.3): a concatenation of printable characters and
// angle-bracketed specials with no intervening spaces, e.g. "gg",
// "<c-u>", "!r" (the latter two tokenize to one Ctrl token and to two
// runes, respectively — "!" and "r" are themselves just
// printable runes; the configuration parser decides elsewhere that a
// leading "!" in the *action* column means "shell", not here).
func ParseTokens(s string) (Sequence, error) {
	var seq Sequence
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '<' {
			end := i + 1
			for end < len(runes) && runes[end] != '>' {
				end++
			}
			if end >= len(runes) {
				return nil, fmt.Errorf("key: unterminated %q in %q", "<...>", s)
			}
			tok, err := parseBracketed(string(runes[i+1 : end]))
			if err != nil {
				return nil, fmt.Errorf("key: %q: %w", s, err)
			}
			seq = append(seq, tok)
			i = end + 1
			continue
		}
		seq = append(seq, Rn(r))
		i++
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("key: empty token sequence")
	}
	return seq, nil
}

// parseBracketed parses the inside of a <...> notation, e.g. "cr",
// "c-u", "lclick".
func parseBracketed(inner string) (Token, error) {
	lower := strings.ToLower(strings.TrimSpace(inner))
	if sp, ok := namesToSpecial[lower]; ok {
		return Sp(sp), nil
	}
	if mk, ok := reverseMouseNames()[lower]; ok {
		return Ms(mk, -1, -1), nil
	}
	if strings.HasPrefix(lower, "c-") && len([]rune(lower)) == 3 {
		r := []rune(lower)[2]
		return Ctl(r), nil
	}
	return Token{}, fmt.Errorf("unknown token <%s>", inner)
}

func reverseMouseNames() map[string]MouseKind {
	m := make(map[string]MouseKind, len(mouseNames))
	for k, n := range mouseNames {
		m[n] = k
	}
	return m
}
