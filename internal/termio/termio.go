// Package termio implements raw-mode enable/disable, window-size queries,
// and the shared suspend path `^Z` and `:shell` both use (spec §5 "suspend
// pauses raw mode, invokes shell/SIGTSTP, restores").
//
// Grounded in the teacher's rawmode.Winsize shape (rawmode/winsize.go)
// and the Enable/Restore call pattern at main.go:92/app.go:345, generalized
// from the teacher's own termios syscalls onto golang.org/x/term, and in
// signals_unix.go's SIGWINCH notify-channel pattern.
package termio

import (
	"os"
	"os/exec"

	"golang.org/x/term"
)

// Size is a terminal's dimensions in rows and columns.
type Size struct {
	Rows int
	Cols int
}

// Terminal owns the raw-mode state for stdin/stdout and the logic shared
// by Ctrl-Z suspend and the `:shell` command.
type Terminal struct {
	fd       int
	oldState *term.State
	shell    string
}

// New constructs a Terminal over fd (typically int(os.Stdin.Fd())).
func New(fd int) *Terminal {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
	}
	return &Terminal{fd: fd, shell: shell}
}

// EnableRaw puts the terminal into raw mode, remembering the prior state
// for Restore.
func (t *Terminal) EnableRaw() error {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.oldState = state
	return nil
}

// Restore returns the terminal to its pre-raw-mode state. A nil receiver
// state (never enabled, or already restored) is a no-op.
func (t *Terminal) Restore() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	return err
}

// Size queries the current terminal dimensions.
func (t *Terminal) Size() (Size, error) {
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return Size{}, err
	}
	return Size{Rows: rows, Cols: cols}, nil
}

// Suspend restores cooked mode, runs $SHELL (or sh) to completion
// attached to the controlling terminal, then re-enters raw mode. Both
// Ctrl-Z and the `:shell` ex-command call this one entry point (spec §5,
// SPEC_FULL.md SUPPLEMENTED FEATURES).
func (t *Terminal) Suspend() error {
	if err := t.Restore(); err != nil {
		return err
	}

	cmd := exec.Command(t.shell)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	if err := t.EnableRaw(); err != nil {
		if runErr != nil {
			return runErr
		}
		return err
	}
	return runErr
}
