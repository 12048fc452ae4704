// Package keymap implements the keymap trie and button registry from
// spec.md §3-4.2: a prefix-free, per-scope mapping from key-token
// sequences to actions, with most-specific-first scope fallback.
package keymap
