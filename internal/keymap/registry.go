package keymap

import (
	"sync"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/key"
)

// Binding is the (scope, token-sequence, action) tuple from spec.md §3.
type Binding struct {
	Scope  Scope
	Seq    key.Sequence
	Action action.Action
}

// Registry holds, per scope, the prefix-free trie of bound token
// sequences and the ordered button list, per spec.md §4.2.
type Registry struct {
	mu      sync.RWMutex
	tries   map[Scope]*trie
	buttons map[Scope][]Button
}

// Button is one (label, action) entry in a scope's menu bar, per
// spec.md §4.2.
type Button struct {
	Label  string
	Action action.Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tries:   make(map[Scope]*trie),
		buttons: make(map[Scope][]Button),
	}
}

// Bind adds or replaces a binding. An exact-sequence rebind within the
// same scope replaces the previous action; a genuine prefix conflict
// returns ErrPrefixConflict (spec.md §4.3).
func (r *Registry) Bind(scope Scope, seq key.Sequence, act action.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tries[scope]
	if !ok {
		t = newTrie()
		r.tries[scope] = t
	}
	return t.insert(seq, act)
}

// Unbind removes an exact-sequence binding from scope, if present.
func (r *Registry) Unbind(scope Scope, seq key.Sequence) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tries[scope]; ok {
		t.remove(seq)
	}
}

// Lookup walks seq through the scope chain, most-specific first,
// falling back to a shorter scope only on Unmatched, per spec.md §3
// and §4.2. The returned Result reflects whichever scope in chain
// first produces a non-Unmatched outcome for the whole of seq.
func (r *Registry) Lookup(chain []Scope, seq key.Sequence) Result {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sc := range chain {
		t, ok := r.tries[sc]
		if !ok {
			continue
		}
		res, matched := walk(t, seq)
		if matched {
			return res
		}
	}
	return Result{Status: Unmatched}
}

// walk feeds every token of seq through t from its root, returning
// the final Result and whether every token matched (i.e. the scope
// did not report Unmatched partway through).
func walk(t *trie, seq key.Sequence) (Result, bool) {
	var node *trieNode
	var res Result
	for _, tok := range seq {
		var stepRes Result
		node, stepRes = t.step(node, tok)
		if stepRes.Status == Unmatched {
			return Result{}, false
		}
		res = stepRes
	}
	return res, true
}

// AddButton appends a (label, action) entry to scope's menu bar.
func (r *Registry) AddButton(scope Scope, label string, act action.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buttons[scope] = append(r.buttons[scope], Button{Label: label, Action: act})
}

// Buttons returns the menu-bar entries visible for the given scope
// chain: most-specific scope's buttons first, then each ancestor's,
// mirroring binding inheritance.
func (r *Registry) Buttons(chain []Scope) []Button {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Button
	seen := make(map[string]bool)
	for _, sc := range chain {
		for _, b := range r.buttons[sc] {
			if seen[b.Label] {
				continue
			}
			seen[b.Label] = true
			out = append(out, b)
		}
	}
	return out
}
