package subprocess

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gitrsrc/gitrsrc/internal/action"
	"github.com/gitrsrc/gitrsrc/internal/apperrors"
)

// Suspender is the narrow slice of termgrid.Backend the runner needs:
// releasing and reclaiming the character grid around a foreground
// child. Both methods are idempotent.
type Suspender interface {
	Suspend() error
	Resume() error
}

// Result reports the outcome of a WAIT or WAIT_AND_EXIT run.
type Result struct {
	ExitCode int
	Started  time.Time
	Duration time.Duration
}

// Runner executes resolved shell templates. The zero value is ready
// to use.
type Runner struct {
	// Shell, if non-empty, wraps argv as `Shell -c "joined argv"`
	// instead of exec'ing argv[0] directly. Left empty by default:
	// gitrsrc runs the split argv directly, per action.Split's doc
	// comment ("no ... underlying shell's job").
	Shell string
}

// Run executes template under discipline. item and opts resolve the
// template's placeholders (action.Resolve); term suspends/resumes the
// terminal around foreground children.
//
// WAIT and WAIT_AND_EXIT block until the child exits and hand the
// terminal to it for the duration. BACKGROUND starts the child
// detached from the terminal and returns immediately without waiting.
// WAIT_AND_EXIT calls exit with the child's status once it returns;
// exit is the caller-supplied process exit function so tests can
// observe it instead of terminating the test binary.
func (r *Runner) Run(ctx context.Context, discipline action.Discipline, template string, item action.FocusedItem, opts action.Lookup, term Suspender, exit func(code int)) (Result, error) {
	resolved, err := action.Resolve(template, item, opts)
	if err != nil {
		return Result{}, err
	}
	argv, err := action.Split(resolved)
	if err != nil {
		return Result{}, apperrors.New(apperrors.SubprocessSpawn, "split", resolved, err)
	}
	if len(argv) == 0 {
		return Result{}, apperrors.New(apperrors.SubprocessSpawn, "split", resolved, ErrEmptyArgv)
	}
	if r.Shell != "" {
		argv = []string{r.Shell, "-c", strings.Join(argv, " ")}
	}

	switch discipline {
	case action.WAIT, action.WAITAndExit:
		res, runErr := r.runForeground(ctx, argv, term)
		if discipline == action.WAITAndExit && exit != nil {
			exit(res.ExitCode)
		}
		return res, runErr
	case action.BACKGROUND:
		return r.runBackground(ctx, argv)
	default:
		return Result{}, apperrors.New(apperrors.SubprocessSpawn, "run", resolved, fmt.Errorf("unknown discipline %v", discipline))
	}
}

func (r *Runner) runForeground(ctx context.Context, argv []string, term Suspender) (Result, error) {
	if term != nil {
		if err := term.Suspend(); err != nil {
			return Result{}, apperrors.New(apperrors.TerminalIO, "suspend", "", err)
		}
		defer func() {
			_ = term.Resume()
		}()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	started := time.Now()
	err := cmd.Run()
	res := Result{Started: started, Duration: time.Since(started)}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, apperrors.New(apperrors.SubprocessExitNonzero, argv[0], exitErr.Error(), err)
		}
		return res, apperrors.New(apperrors.SubprocessSpawn, argv[0], "", err)
	}
	res.ExitCode = 0
	return res, nil
}

func (r *Runner) runBackground(ctx context.Context, argv []string) (Result, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = nil
	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err == nil {
		cmd.Stdout = devnull
		cmd.Stderr = devnull
	}

	started := time.Now()
	if err := cmd.Start(); err != nil {
		if devnull != nil {
			_ = devnull.Close()
		}
		return Result{}, apperrors.New(apperrors.SubprocessSpawn, argv[0], "", err)
	}

	go func() {
		_ = cmd.Wait()
		if devnull != nil {
			_ = devnull.Close()
		}
	}()

	return Result{Started: started}, nil
}
