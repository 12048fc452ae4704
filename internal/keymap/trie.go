package keymap

import (
	"errors"
	"fmt"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/key"
)

// ErrPrefixConflict is the CONFIG_PREFIX_CONFLICT error kind from
// spec.md §7: a new sequence is a proper prefix of an existing one,
// or vice versa, within the same scope.
var ErrPrefixConflict = errors.New("keymap: prefix conflict")

// trieNode is one node of a scope's prefix-free keymap trie.
type trieNode struct {
	children map[string]*trieNode
	action   *action.Action // non-nil if this node is terminal
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

func (n *trieNode) isLeaf() bool { return len(n.children) == 0 }

// trie is one scope's prefix-free keymap.
type trie struct {
	root *trieNode
}

func newTrie() *trie { return &trie{root: newTrieNode()} }

// insert adds seq -> act. Exact-match rebinding replaces the previous
// action. A genuine prefix conflict (seq is a proper prefix of an
// existing bound sequence, or an existing bound sequence is a proper
// prefix of seq) is rejected with ErrPrefixConflict, per spec.md §3's
// Binding invariant and §4.3.
func (t *trie) insert(seq key.Sequence, act action.Action) error {
	if len(seq) == 0 {
		return fmt.Errorf("keymap: empty key sequence")
	}
	node := t.root
	for i, tok := range seq {
		k := tok.Key()
		// A shorter existing bound sequence is a strict prefix of seq.
		// This is a genuine conflict only when it would resolve to a
		// different action than seq's own: the same action bound at
		// both lengths is exactly the Ambiguous case spec.md §4.2
		// describes ("gg" resolves immediately, lone "g" resolves the
		// same way after the ambiguity timeout), not an error.
		if node.action != nil && *node.action != act {
			return fmt.Errorf("%w: existing binding %q is a prefix of %q", ErrPrefixConflict, seqPrefixString(seq, i-1), seq.String())
		}
		child, ok := node.children[k]
		if !ok {
			child = newTrieNode()
			node.children[k] = child
		}
		node = child
	}
	// seq lands on a node that already has children: seq would be a
	// strict prefix of an existing longer binding, unless every action
	// reachable below it already agrees with act.
	if node.action == nil && !node.isLeaf() && !subtreeAgrees(node, act) {
		return fmt.Errorf("%w: %q is a prefix of an existing longer binding", ErrPrefixConflict, seq.String())
	}
	a := act
	node.action = &a
	return nil
}

// subtreeAgrees reports whether every terminal action in n's subtree
// equals act.
func subtreeAgrees(n *trieNode, act action.Action) bool {
	if n.action != nil && *n.action != act {
		return false
	}
	for _, c := range n.children {
		if !subtreeAgrees(c, act) {
			return false
		}
	}
	return true
}

func seqPrefixString(seq key.Sequence, upto int) string {
	return seq[:upto+1].String()
}

// remove deletes the exact-match binding at seq, if any, pruning dead nodes.
func (t *trie) remove(seq key.Sequence) {
	path := []*trieNode{t.root}
	node := t.root
	for _, tok := range seq {
		child, ok := node.children[tok.Key()]
		if !ok {
			return
		}
		path = append(path, child)
		node = child
	}
	node.action = nil
	for i := len(path) - 1; i > 0; i-- {
		cur := path[i]
		if cur.action == nil && cur.isLeaf() {
			parent := path[i-1]
			for k, c := range parent.children {
				if c == cur {
					delete(parent.children, k)
					break
				}
			}
		} else {
			break
		}
	}
}

// Status is the outcome of feeding one more token to a pending lookup,
// per spec.md §4.2.
type Status int

const (
	// Unmatched: no child under the current prefix in this scope.
	Unmatched Status = iota
	// Pending: the node exists but is not terminal and has children.
	Pending
	// Resolved: the node is terminal with no further children.
	Resolved
	// Ambiguous: the node is terminal AND has descendants.
	Ambiguous
)

// Result is the outcome of a trie step.
type Result struct {
	Status Status
	Action action.Action // valid when Status is Resolved or Ambiguous
}

// step advances the trie by one token from node, returning the next
// node (or nil on Unmatched) and the Result.
func (t *trie) step(node *trieNode, tok key.Token) (*trieNode, Result) {
	if node == nil {
		node = t.root
	}
	child, ok := node.children[tok.Key()]
	if !ok {
		return nil, Result{Status: Unmatched}
	}
	switch {
	case child.action != nil && child.isLeaf():
		return child, Result{Status: Resolved, Action: *child.action}
	case child.action != nil:
		return child, Result{Status: Ambiguous, Action: *child.action}
	default:
		return child, Result{Status: Pending}
	}
}
