// Package subprocess runs the argv produced by resolving a shell
// action's template (internal/action) under one of the three
// execution disciplines from spec.md §4.7: WAIT, WAIT_AND_EXIT, and
// BACKGROUND. WAIT and WAIT_AND_EXIT hand the terminal to the child
// via the termgrid.Backend's Suspend/Resume pair; BACKGROUND never
// touches the terminal.
package subprocess
