//go:build !windows

package termio

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// NotifyResize relays SIGWINCH onto ch, mirroring the teacher's
// signals_unix.go signal_chan pattern, generalized onto golang.org/x/sys/unix's
// signal numbers per SPEC_FULL.md's domain stack.
func NotifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}

// NotifySuspend relays SIGTSTP onto ch, used by the event loop to trigger
// the same Suspend path as `:shell` (spec §5).
func NotifySuspend(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGTSTP)
}
