// Package main is the entry point for gitrsrc, a keyboard-driven
// terminal UI to git.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gitrsrc/gitrsrc/internal/app"
	"github.com/gitrsrc/gitrsrc/internal/gitcmd"
	"github.com/gitrsrc/gitrsrc/internal/termgrid"
	"github.com/gitrsrc/gitrsrc/internal/view"
	"github.com/gitrsrc/gitrsrc/internal/views"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		usage()
		return 1
	}

	switch os.Args[1] {
	case "-v", "--version":
		fmt.Printf("gitrsrc %s\n", version)
		return 0
	case "-h", "--help":
		usage()
		return 0
	}

	sub, rest := os.Args[1], os.Args[2:]

	term, err := termgrid.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitrsrc: %v\n", err)
		return 1
	}

	a := app.New(term, gitcmd.New("git"))
	if errs := a.Bootstrap(userHome()); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "gitrsrc: config: %v\n", e)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	v, err := buildView(ctx, a, sub, rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitrsrc: %v\n", err)
		return 1
	}
	if err := a.SetView(v); err != nil {
		fmt.Fprintf(os.Stderr, "gitrsrc: %v\n", err)
		return 1
	}

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "gitrsrc: %v\n", err)
		return 1
	}
	return 0
}

// buildView implements spec.md §6's subcommand grammar: "status | log
// [args] | show [rev] | reflog [args] | stash | files [rev] | blame
// <file> [line] | diff [args]".
func buildView(ctx context.Context, a *app.App, sub string, args []string) (view.Model, error) {
	scrolloff := a.Options.Int("scrolloff")
	switch sub {
	case "status":
		return views.NewStatusView(ctx, a.Client, scrolloff), nil
	case "log":
		return views.NewLogView(ctx, a.Client, scrolloff, args), nil
	case "show":
		return views.NewShowView(ctx, a.Client, scrolloff, firstArg(args)), nil
	case "reflog":
		return views.NewReflogView(ctx, a.Client, scrolloff, args), nil
	case "stash":
		return views.NewStashView(ctx, a.Client, scrolloff), nil
	case "files":
		return views.NewFilesView(ctx, a.Client, scrolloff, firstArg(args)), nil
	case "blame":
		if len(args) == 0 {
			return nil, fmt.Errorf("blame requires a file argument")
		}
		file := args[0]
		var rev string
		line := 0
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil {
				line = n
			} else {
				rev = args[1]
			}
		}
		return views.NewBlameView(ctx, a.Client, scrolloff, file, rev, line), nil
	case "diff":
		return views.NewDiffView(ctx, a.Client, scrolloff, args), nil
	default:
		return nil, fmt.Errorf("unknown subcommand %q", sub)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func usage() {
	fmt.Fprintf(os.Stderr, "gitrsrc - a keyboard-driven terminal UI to git\n\n")
	fmt.Fprintf(os.Stderr, "Usage: gitrsrc <command> [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  status             working-tree and index status\n")
	fmt.Fprintf(os.Stderr, "  log [args]         commit history\n")
	fmt.Fprintf(os.Stderr, "  show [rev]         one commit's metadata and diff\n")
	fmt.Fprintf(os.Stderr, "  reflog [args]      the ref log\n")
	fmt.Fprintf(os.Stderr, "  stash              the stash list\n")
	fmt.Fprintf(os.Stderr, "  files [rev]        files touched by a revision\n")
	fmt.Fprintf(os.Stderr, "  blame <file> [line] per-line commit attribution\n")
	fmt.Fprintf(os.Stderr, "  diff [args]        a working-tree or ref diff\n")
}
