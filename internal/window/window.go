// Package window implements Window: a sequence of Panes with split,
// rotate, resize, equalize, zoom, and focus cycling (spec §4.7, §3
// "Window"). Grounded in the teacher's app_context.go Session.Windows
// owned-list and screen.go's positionWindows, which divides available
// screen space by the slot count the same way equalize/resize here divide
// tracked window height by pane count.
package window

import (
	"github.com/sirupsen/logrus"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/pane"
)

// MinPaneHeight is the minimum cell height a pane may be resized or split
// down to (spec §3 "Minimum per-pane height = 4 cells").
const MinPaneHeight = 4

type slot struct {
	Pane   *pane.Pane
	Height *int
	Width  *int
}

// Window is a tile/zoom sequence of Panes (spec §4.7).
type Window struct {
	slots       []*slot
	index       int
	zoomed      bool
	totalHeight int
	log         *logrus.Logger
}

// Option configures a Window at construction.
type Option func(*Window)

// WithLogger attaches a structured logger.
func WithLogger(l *logrus.Logger) Option {
	return func(w *Window) { w.log = l }
}

// New constructs a Window holding a single pane.
func New(initial *pane.Pane, totalHeight int, opts ...Option) *Window {
	w := &Window{slots: []*slot{{Pane: initial}}, totalHeight: totalHeight}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Current returns the focused Pane.
func (w *Window) Current() *pane.Pane { return w.slots[w.index].Pane }

// Len returns the number of panes.
func (w *Window) Len() int { return len(w.slots) }

// Index returns the focused pane's position.
func (w *Window) Index() int { return w.index }

// Zoomed reports whether the window is in zoom state.
func (w *Window) Zoomed() bool { return w.zoomed }

// SetHeight updates the tracked total window height, called by the event
// loop on resize notifications.
func (w *Window) SetHeight(h int) { w.totalHeight = h }

// Dispatch applies a Focus(FocusWindow, ...) or Window intent, returning a
// warn intent when the operation is refused. Any other Kind is ignored.
func (w *Window) Dispatch(in intent.Intent) *intent.Intent {
	switch in.Kind {
	case intent.KindFocus:
		if in.FocusTarget != intent.FocusWindow {
			return nil
		}
		return w.focus(in.WinDirection, in.FocusCount, in.HasFocusCount)
	case intent.KindWindow:
		switch in.WindowAction {
		case intent.WinSplit:
			return w.split(in.WindowDirection, in.StepCount)
		case intent.WinResize:
			return w.resize(in.WindowDirection, in.StepCount)
		case intent.WinRotate:
			return w.rotate(in.WindowDirection, in.StepCount)
		}
	}
	return nil
}

func effective(count uint32) int {
	if count == 0 {
		return 1
	}
	return int(count)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// focus implements the next/previous/top/bottom/up/down/left/right/zoom
// focus transitions (spec §4.7).
func (w *Window) focus(dir intent.WinDirection, count uint32, hasCount bool) *intent.Intent {
	n := len(w.slots)
	switch dir {
	case intent.WinDirNext:
		if hasCount {
			w.index = clampIndex(int(count)-1, n)
		} else {
			w.index = (w.index + 1) % n
		}
	case intent.WinDirPrevious:
		if hasCount {
			w.index = clampIndex(int(count)-1, n)
		} else {
			w.index = (w.index - 1 + n) % n
		}
	case intent.WinDirTop:
		w.index = 0
	case intent.WinDirBottom:
		w.index = n - 1
	case intent.WinDirUp:
		w.index = clampIndex(w.index-effective(count), n)
	case intent.WinDirDown:
		w.index = clampIndex(w.index+effective(count), n)
	case intent.WinDirLeft, intent.WinDirRight:
		return warnPtr("vertical splits not supported")
	case intent.WinDirZoom:
		w.zoomed = !w.zoomed
	}
	return nil
}

// split implements hsplit/vsplit (spec §4.7). dir DirUp is hsplit, DirLeft
// is vsplit. count, when greater than 1, fixes the new pane's height
// (vifsm always supplies at least 1 as the default count, so a plain 's'
// with no explicit prefix is treated as "no fixed height requested"). The
// clone is inserted at the focused index, so the new pane takes focus and
// the previously-focused pane shifts down by one (spec §4.7 "insert a
// clone of the current pane at index").
func (w *Window) split(dir intent.Direction, count uint32) *intent.Intent {
	if dir == intent.DirLeft {
		return warnPtr("Vertical splits not yet supported")
	}

	n := len(w.slots)
	if w.totalHeight/(n+1) < MinPaneHeight {
		return warnPtr("Not enough room")
	}

	var height *int
	if count > 1 {
		h := int(count)
		if h < MinPaneHeight {
			h = MinPaneHeight
		}
		height = &h
	}

	clone := &slot{Pane: w.Current().Clone(), Height: height}
	idx := w.index
	w.slots = append(w.slots[:idx:idx], append([]*slot{clone}, w.slots[idx:]...)...)
	return nil
}

// resize implements hresize/eresize (spec §4.7). dir DirUp grows the
// focused pane, DirDown shrinks it, DirNone clears all fixed sizes.
func (w *Window) resize(dir intent.Direction, count uint32) *intent.Intent {
	if dir == intent.DirNone {
		for _, s := range w.slots {
			s.Height = nil
		}
		return nil
	}

	cur := w.slots[w.index]
	base := w.totalHeight / len(w.slots)
	if cur.Height != nil {
		base = *cur.Height
	}

	delta := int(count)
	if dir == intent.DirDown {
		delta = -delta
	}
	h := base + delta
	if h < MinPaneHeight {
		h = MinPaneHeight
	}
	cur.Height = &h
	return nil
}

// rotate implements rotate(up|down, k) (spec §4.7): dir DirUp rotates the
// pane list so the k-th successor becomes first; DirDown is its inverse.
// The focused pane's index is updated so it stays on the same element.
func (w *Window) rotate(dir intent.Direction, count uint32) *intent.Intent {
	n := len(w.slots)
	if n < 2 {
		return nil
	}
	k := int(count) % n
	if k == 0 {
		return nil
	}

	switch dir {
	case intent.DirUp:
		w.slots = rotateLeft(w.slots, k)
		w.index = ((w.index-k)%n + n) % n
	case intent.DirDown:
		w.slots = rotateLeft(w.slots, n-k)
		w.index = (w.index + k) % n
	}
	return nil
}

func rotateLeft(s []*slot, k int) []*slot {
	n := len(s)
	out := make([]*slot, n)
	for i := 0; i < n; i++ {
		out[i] = s[(i+k)%n]
	}
	return out
}

// Quit closes the focused pane (spec §4.7 "Quit"). It reports whether the
// caller should terminate the process, which happens when the last pane
// is closed.
func (w *Window) Quit() (terminate bool) {
	if len(w.slots) <= 1 {
		return true
	}
	idx := w.index
	w.slots = append(w.slots[:idx], w.slots[idx+1:]...)
	if w.index >= len(w.slots) {
		w.index = len(w.slots) - 1
	}
	return false
}

func warnPtr(format string, args ...any) *intent.Intent {
	w := intent.Warn(format, args...)
	return &w
}
