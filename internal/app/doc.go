// Package app wires together the shared state dispatch.Dispatcher
// needs — the keymap registry, the option store, search state, the
// subprocess runner and the terminal backend — and runs the event
// loop that merges terminal input with a pager's async ingest channel
// (spec.md §5).
package app
