// Package termgrid is the narrow terminal-layer collaborator spec.md
// §6 describes: a character grid, key/mouse event source, an
// alternate-screen toggle, and a cursor-visibility toggle. It is
// deliberately thin — ANSI colour handling, highlighting, and anything
// beyond a character grid are out of scope (spec.md §1 non-goals).
package termgrid
