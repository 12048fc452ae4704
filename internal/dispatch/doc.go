// Package dispatch implements the dispatcher state machine from
// spec.md §4.6: Idle, Pending(prefix), CommandLine, Search, and
// Subprocess. It owns no view state itself — every call takes the
// active view.Model so the same Dispatcher serves whichever view is
// current.
package dispatch
