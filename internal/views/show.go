package views

import (
	"context"

	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
)

// NewShowView builds the "show [rev]" pager: "git show" streamed
// through the same async ingest loop as any other pager content
// (spec.md §6, "show [rev]" is the pager applied to one commit). Its
// scope root is "show", not "pager" (SPEC_FULL §5): the bare/
// $GIT_PAGER invocation mode is the only one that reports "pager".
func NewShowView(ctx context.Context, client *gitcmd.Client, scrolloff int, rev string) *PagerView {
	argv := []string{"show", "--decorate"}
	if rev != "" {
		argv = append(argv, rev)
	}
	return newPagerView(ctx, client, scrolloff, rev, argv, "show")
}
