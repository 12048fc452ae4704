// Package gitcmd wraps the git executable (named by the "git"
// option) as a subprocess, parsing its machine-readable / porcelain
// output into the data each view needs, per spec.md §6 ("Version-
// control executable: invoked as a subprocess; its stdout may be
// piped into the pager ingest"). The exact invocations are pinned
// down concretely (see DESIGN.md).
package gitcmd
