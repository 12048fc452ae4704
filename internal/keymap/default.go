package keymap

import (
	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/key"
)

// builtin is a tiny helper for the table below; it panics on an
// unknown name, which would be a programming error in this file, not
// a runtime condition.
func builtin(name string) action.Action {
	a, err := action.NewBuiltin(name)
	if err != nil {
		panic(err)
	}
	return a
}

func shell(d action.Discipline, template string) action.Action {
	return action.NewShell(d, template)
}

func seq(s string) key.Sequence {
	parsed, err := key.ParseTokens(s)
	if err != nil {
		panic(err)
	}
	return parsed
}

type defaultBinding struct {
	scope  Scope
	keys   string
	action action.Action
}

// defaultBindings is spec.md §8 scenario 1's "g/gg -> first, G -> last"
// (g alone resolves after the ambiguity timeout; gg resolves
// immediately) plus the global navigation/search set and the
// scope-specific examples spec.md §8 walks through verbatim
// (status:unstaged:modified "!r" and log "!r").
var defaultBindings = []defaultBinding{
	{Global, "g", builtin(string(action.First))},
	{Global, "gg", builtin(string(action.First))},
	{Global, "G", builtin(string(action.Last))},
	{Global, "j", builtin(string(action.Down))},
	{Global, "k", builtin(string(action.Up))},
	{Global, "<down>", builtin(string(action.Down))},
	{Global, "<up>", builtin(string(action.Up))},
	{Global, "<c-u>", builtin(string(action.HalfPageUp))},
	{Global, "<c-d>", builtin(string(action.HalfPageDown))},
	{Global, "zz", builtin(string(action.ShiftLineMiddle))},
	{Global, "zt", builtin(string(action.ShiftLineTop))},
	{Global, "zb", builtin(string(action.ShiftLineBottom))},
	{Global, "/", builtin(string(action.Search))},
	{Global, "?", builtin(string(action.SearchReverse))},
	{Global, "n", builtin(string(action.NextSearchResult))},
	{Global, "N", builtin(string(action.PreviousSearchResult))},
	{Global, "r", builtin(string(action.Reload))},
	{Global, "q", builtin(string(action.Quit))},
	{Global, ":", builtin(string(action.TypeCommand))},

	{"status", "<space>", builtin(string(action.StageUnstageFile))},
	{"status", "yc", shell(action.BACKGROUND, "%(clip) < %(file)")},
	{"status", "<tab>", builtin(string(action.StatusSwitchView))},
	{"status:staged", "u", builtin(string(action.FocusUnstagedView))},
	{"status:unstaged", "s", builtin(string(action.FocusStagedView))},
	{"status:unstaged:modified", "!r", shell(action.WAIT, "%(git) restore %(file)")},
	{"status:unstaged:untracked", "!r", shell(action.WAIT, "%(git) clean -f %(file)")},

	{"log", "!r", shell(action.WAIT, "%(git) rebase -i %(rev)^")},
	{"log", "<cr>", builtin(string(action.OpenShowApp))},
	{"log", ">g", shell(action.WAITAndExit, "%(git) checkout %(rev)")},

	{"show", "<cr>", builtin(string(action.OpenGitShow))},

	{"blame", "<cr>", builtin(string(action.OpenShowApp))},
	{"blame", "]", builtin(string(action.NextCommitBlame))},
	{"blame", "[", builtin(string(action.PreviousCommitBlame))},

	{"pager", "<cr>", builtin(string(action.OpenShowApp))},
	{"pager", "]", builtin(string(action.PagerNextCommit))},
	{"pager", "[", builtin(string(action.PagerPreviousCommit))},
}

// LoadDefaults registers the default bindings into r, per spec.md §3
// ("On startup, the default binding set is loaded unless
// default_mappings = false").
func LoadDefaults(r *Registry) error {
	for _, b := range defaultBindings {
		if err := r.Bind(b.scope, seq(b.keys), b.action); err != nil {
			return err
		}
	}
	return nil
}

type defaultButton struct {
	scope  Scope
	label  string
	action action.Action
}

var defaultButtonsTable = []defaultButton{
	{"global", "Quit", builtin(string(action.Quit))},
	{"global", "Help", builtin(string(action.Nop))},
	{"status", "Stage", builtin(string(action.StageUnstageFile))},
	{"log", "Show", builtin(string(action.OpenShowApp))},
}

// LoadDefaultButtons registers the default menu-bar entries, mirrored
// by the "default_buttons" option (spec.md §3).
func LoadDefaultButtons(r *Registry) {
	for _, b := range defaultButtonsTable {
		r.AddButton(b.scope, b.label, b.action)
	}
}
