//go:build windows

package termio

import "os"

// NotifyResize is a no-op on Windows: there is no SIGWINCH, so no resize
// notifications are delivered there and size changes go unnoticed.
func NotifyResize(ch chan<- os.Signal) {}

// NotifySuspend is a no-op on Windows: there is no SIGTSTP, so `^Z` is
// unavailable there and only the `:shell` path triggers Suspend.
func NotifySuspend(ch chan<- os.Signal) {}
