package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitrsrc/gitrsrc/internal/applog"
	"github.com/gitrsrc/gitrsrc/internal/config"
	"github.com/gitrsrc/gitrsrc/internal/gitconfig"
	"github.com/gitrsrc/gitrsrc/internal/keymap"
)

// defaultMappings and defaultButtons are applied before the user's
// ~/.gitrsrc, per spec.md §6's "default_mappings"/"default_buttons"
// options: a baseline keymap a user file can override but never has
// to fully restate.
const defaultMappings = `
map global j down
map global k up
map global g first
map global G last
map global <c-u> half_page_up
map global <c-d> half_page_down
map global zt shift_line_top
map global zz shift_line_middle
map global zb shift_line_bottom
map global / search
map global ? search_reverse
map global n next_search_result
map global N previous_search_result
map global : type_command
map global q quit
map global r reload
map status s stage_unstage_file
map status S stage_unstage_files
map status <tab> status_switch_view
map log <cr> open_show_app
map log p pager_next_commit
map log P pager_previous_commit
map pager p pager_next_commit
map pager P pager_previous_commit
map blame <c-n> next_commit_blame
map blame <c-p> previous_commit_blame
`

const defaultButtons = `
button global Quit quit
button global Reload reload
`

// Bootstrap loads the optional ~/.gitrsrc keymap/option file and the
// optional ~/.gitrsrc.toml palette, in that order, honouring the
// "default_mappings"/"default_buttons" options along the way. Missing
// files are not errors; malformed lines inside a present file are
// accumulated and returned, never fatal (spec.md §4.3).
func (a *App) Bootstrap(home string) []error {
	var errs []error

	target := config.Target{Registry: a.Registry, Options: a.Options}

	if a.Options.Bool("default_mappings") {
		errs = append(errs, config.Apply(strings.NewReader(defaultMappings), target)...)
	}
	if a.Options.Bool("default_buttons") {
		errs = append(errs, config.Apply(strings.NewReader(defaultButtons), target)...)
	}

	cfgPath := filepath.Join(home, ".gitrsrc")
	if f, err := os.Open(cfgPath); err == nil {
		errs = append(errs, config.Apply(f, target)...)
		f.Close()
	} else if !os.IsNotExist(err) {
		errs = append(errs, fmt.Errorf("app: open %s: %w", cfgPath, err))
	}

	palette, err := gitconfig.Load(filepath.Join(home, ".gitrsrc.toml"))
	if err != nil {
		errs = append(errs, err)
	} else {
		a.Palette = palette
	}

	a.Log.SetLevel(applog.ParseLevel(a.Options.String("log_level")))
	return errs
}

// RootScopes lists the per-view scope roots the default mappings
// above assume exist, independent of which concrete view the caller
// later installs with SetView.
func RootScopes() []keymap.Scope {
	return []keymap.Scope{"status", "log", "show", "files", "blame", "reflog", "stash", "diff", "pager"}
}
