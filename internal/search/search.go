// Package search implements the smart-case substring search
// subsystem from spec.md §4.10: a lazily (re)computed list of match
// positions over a view's textual projection, with a wrap-around
// cursor and forward/backward navigation.
package search

import "strings"

// Direction is which way "/" or "?" initiated the search.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Match is one substring match: the line index into the view's
// Lines() projection, and the byte column within that line.
type Match struct {
	Line int
	Col  int
}

// State holds one active (or most-recently-run) search. The zero
// value is a valid, empty state.
type State struct {
	query         string
	caseSensitive bool
	direction     Direction
	smartCase     bool

	matches []Match
	cursor  int
	dirty   bool
}

// New creates a State honouring the "smart_case" option.
func New(smartCase bool) *State {
	return &State{smartCase: smartCase}
}

// SetSmartCase updates the smart-case policy (":set smart_case ...").
func (s *State) SetSmartCase(v bool) { s.smartCase = v }

// Start begins a new search for query in the given direction,
// invalidating any previous match list. Smart-case: an all-lowercase
// query matches case-insensitively; any uppercase letter switches to
// case-sensitive matching, when smart_case is enabled (spec.md §8).
func (s *State) Start(query string, dir Direction) {
	s.query = query
	s.direction = dir
	if s.smartCase {
		s.caseSensitive = query != strings.ToLower(query)
	} else {
		s.caseSensitive = true
	}
	s.dirty = true
}

// Active reports whether a non-empty query has been started.
func (s *State) Active() bool { return s.query != "" }

// Query returns the current search string.
func (s *State) Query() string { return s.query }

// Invalidate marks the match list stale. Call whenever the view's
// item sequence changes (reload, pager append) per spec.md §4.10.
func (s *State) Invalidate() { s.dirty = true }

func (s *State) ensure(lines []string) {
	if !s.dirty {
		return
	}
	s.matches = s.matches[:0]
	if s.query != "" {
		needle := s.query
		if !s.caseSensitive {
			needle = strings.ToLower(needle)
		}
		for i, line := range lines {
			hay := line
			if !s.caseSensitive {
				hay = strings.ToLower(hay)
			}
			for start := 0; ; {
				idx := strings.Index(hay[start:], needle)
				if idx < 0 {
					break
				}
				s.matches = append(s.matches, Match{Line: i, Col: start + idx})
				start += idx + len(needle)
				if start >= len(hay) {
					break
				}
			}
		}
	}
	s.cursor = -1
	s.dirty = false
}

// Matches returns every match against the current lines, recomputing
// first if the sequence changed since the last search.
func (s *State) Matches(lines []string) []Match {
	s.ensure(lines)
	return s.matches
}

// advance moves the cursor by delta with wrap-around and returns the
// match landed on.
func (s *State) advance(lines []string, delta int) (Match, bool) {
	s.ensure(lines)
	if len(s.matches) == 0 {
		return Match{}, false
	}
	if s.cursor < 0 {
		s.cursor = 0
		if delta < 0 {
			s.cursor = len(s.matches) - 1
		}
		return s.matches[s.cursor], true
	}
	n := len(s.matches)
	s.cursor = ((s.cursor+delta)%n + n) % n
	return s.matches[s.cursor], true
}

// Next implements the "n" builtin: advance in the direction the
// search was initiated.
func (s *State) Next(lines []string) (Match, bool) {
	if s.direction == Backward {
		return s.advance(lines, -1)
	}
	return s.advance(lines, 1)
}

// Previous implements the "N" builtin: advance opposite the direction
// the search was initiated.
func (s *State) Previous(lines []string) (Match, bool) {
	if s.direction == Backward {
		return s.advance(lines, 1)
	}
	return s.advance(lines, -1)
}

// Cursor returns the index into Matches() the search cursor currently
// rests on, or -1 if no match has been visited yet.
func (s *State) Cursor() int { return s.cursor }
