// Package action defines the tagged-union action model from spec.md
// §3-4.4: either a closed-vocabulary builtin verb, or a shell command
// template with one of three execution disciplines.
package action

import "fmt"

// Builtin is the closed vocabulary of built-in verbs spec.md §3 names.
type Builtin string

const (
	Up                     Builtin = "up"
	Down                   Builtin = "down"
	First                  Builtin = "first"
	Last                   Builtin = "last"
	HalfPageUp             Builtin = "half_page_up"
	HalfPageDown           Builtin = "half_page_down"
	ShiftLineMiddle        Builtin = "shift_line_middle"
	ShiftLineTop           Builtin = "shift_line_top"
	ShiftLineBottom        Builtin = "shift_line_bottom"
	Search                 Builtin = "search"
	SearchReverse          Builtin = "search_reverse"
	NextSearchResult       Builtin = "next_search_result"
	PreviousSearchResult   Builtin = "previous_search_result"
	StageUnstageFile       Builtin = "stage_unstage_file"
	StageUnstageFiles      Builtin = "stage_unstage_files"
	StatusSwitchView       Builtin = "status_switch_view"
	FocusStagedView        Builtin = "focus_staged_view"
	FocusUnstagedView      Builtin = "focus_unstaged_view"
	PagerNextCommit        Builtin = "pager_next_commit"
	PagerPreviousCommit    Builtin = "pager_previous_commit"
	NextCommitBlame        Builtin = "next_commit_blame"
	PreviousCommitBlame    Builtin = "previous_commit_blame"
	OpenShowApp            Builtin = "open_show_app"
	OpenLogApp             Builtin = "open_log_app"
	OpenGitShow            Builtin = "open_git_show"
	Reload                 Builtin = "reload"
	Quit                   Builtin = "quit"
	Nop                    Builtin = "nop"
	Echo                   Builtin = "echo"
	TypeCommand            Builtin = "type_command"
	Goto                   Builtin = "goto"
)

// builtins is the closed set used to validate configuration input
// (spec.md §7, error kind UNKNOWN_BUILTIN).
var builtins = map[Builtin]bool{
	Up: true, Down: true, First: true, Last: true,
	HalfPageUp: true, HalfPageDown: true,
	ShiftLineMiddle: true, ShiftLineTop: true, ShiftLineBottom: true,
	Search: true, SearchReverse: true,
	NextSearchResult: true, PreviousSearchResult: true,
	StageUnstageFile: true, StageUnstageFiles: true,
	StatusSwitchView: true, FocusStagedView: true, FocusUnstagedView: true,
	PagerNextCommit: true, PagerPreviousCommit: true,
	NextCommitBlame: true, PreviousCommitBlame: true,
	OpenShowApp: true, OpenLogApp: true, OpenGitShow: true,
	Reload: true, Quit: true, Nop: true, Echo: true,
	TypeCommand: true, Goto: true,
}

// IsBuiltin reports whether name names a known builtin verb.
func IsBuiltin(name string) bool { return builtins[Builtin(name)] }

// Discipline selects how a shell action's subprocess is run (spec.md §4.7).
type Discipline int

const (
	// WAIT suspends the UI, hands the terminal to the child, and
	// redraws on return. Bound to the "!" sigil.
	WAIT Discipline = iota
	// WAITAndExit behaves like WAIT, then exits gitrsrc with the
	// child's status. Bound to the ">" sigil.
	WAITAndExit
	// BACKGROUND spawns detached and does not wait. Bound to "@".
	BACKGROUND
)

func (d Discipline) String() string {
	switch d {
	case WAIT:
		return "wait"
	case WAITAndExit:
		return "wait_and_exit"
	case BACKGROUND:
		return "background"
	default:
		return "unknown"
	}
}

// DisciplineFromSigil maps the configuration grammar's leading
// character to a Discipline, per spec.md §4.3.
func DisciplineFromSigil(sigil byte) (Discipline, bool) {
	switch sigil {
	case '!':
		return WAIT, true
	case '>':
		return WAITAndExit, true
	case '@':
		return BACKGROUND, true
	default:
		return 0, false
	}
}

// Kind distinguishes the two members of the Action tagged union.
type Kind int

const (
	KindBuiltin Kind = iota
	KindShell
)

// Action is the tagged union from spec.md §3.
type Action struct {
	Kind Kind

	// Builtin is valid when Kind == KindBuiltin.
	Builtin Builtin

	// Discipline and Template are valid when Kind == KindShell.
	Discipline Discipline
	Template   string
}

// NewBuiltin constructs a builtin action, validating against the
// closed vocabulary.
func NewBuiltin(name string) (Action, error) {
	if !IsBuiltin(name) {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
	}
	return Action{Kind: KindBuiltin, Builtin: Builtin(name)}, nil
}

// NewShell constructs a shell action.
func NewShell(d Discipline, template string) Action {
	return Action{Kind: KindShell, Discipline: d, Template: template}
}

func (a Action) String() string {
	if a.Kind == KindBuiltin {
		return string(a.Builtin)
	}
	sigil := map[Discipline]byte{WAIT: '!', WAITAndExit: '>', BACKGROUND: '@'}[a.Discipline]
	return fmt.Sprintf("%c%s", sigil, a.Template)
}
