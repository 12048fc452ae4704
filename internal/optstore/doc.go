// Package optstore is the typed option table from spec.md §3: a
// mapping from option names to typed values, each with a default, a
// parser from its textual form, and at most one writer (the
// configuration parser).
package optstore
