// Package views holds the concrete view.Model implementations spec.md
// §6 names as gitrsrc's subcommands: status, log, show, files, blame,
// reflog, stash and diff, plus the pager view that backs all of them
// when their output is streamed incrementally (spec.md §4.9). Each
// view wraps a view.List[T] over records fetched through
// internal/gitcmd and answers the four FocusedItem placeholders from
// whatever record is under the cursor.
package views
