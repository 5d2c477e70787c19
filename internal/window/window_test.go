package window

import (
	"testing"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/pane"
	"github.com/mmterm/mmterm/internal/register"
)

func newTestWindow(t *testing.T, height int) *Window {
	t.Helper()
	regs := register.New()
	v := pane.NewView(nil, regs)
	p := pane.New(v, regs)
	return New(p, height)
}

func TestSplitInsertsClonedPane(t *testing.T) {
	w := newTestWindow(t, 40)
	out := w.Dispatch(intent.Window(intent.WinSplit, intent.DirUp, 1))
	if out != nil {
		t.Fatalf("split warned: %v", out)
	}
	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
}

func TestSplitRefusesWhenNotEnoughRoom(t *testing.T) {
	w := newTestWindow(t, 6) // 6/(1+1)=3 < MinPaneHeight
	out := w.Dispatch(intent.Window(intent.WinSplit, intent.DirUp, 1))
	if out == nil || out.Kind != intent.KindWarn {
		t.Fatalf("out = %v, want a warn", out)
	}
	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (split refused)", w.Len())
	}
}

func TestVsplitAlwaysWarns(t *testing.T) {
	w := newTestWindow(t, 40)
	out := w.Dispatch(intent.Window(intent.WinSplit, intent.DirLeft, 1))
	if out == nil || out.Kind != intent.KindWarn {
		t.Fatalf("out = %v, want a warn", out)
	}
}

func TestFocusNextCyclesAndWraps(t *testing.T) {
	w := newTestWindow(t, 40)
	w.Dispatch(intent.Window(intent.WinSplit, intent.DirUp, 1))
	if w.Index() != 0 {
		t.Fatalf("index = %d, want 0 (split focuses the new pane)", w.Index())
	}
	w.Dispatch(intent.FocusPane(intent.WinDirNext, 1, false))
	if w.Index() != 1 {
		t.Fatalf("index = %d, want 1", w.Index())
	}
	w.Dispatch(intent.FocusPane(intent.WinDirNext, 1, false))
	if w.Index() != 0 {
		t.Fatalf("index = %d, want 0 (wrapped)", w.Index())
	}
}

func TestFocusLeftRightWarn(t *testing.T) {
	w := newTestWindow(t, 40)
	out := w.Dispatch(intent.FocusPane(intent.WinDirLeft, 1, false))
	if out == nil || out.Kind != intent.KindWarn {
		t.Fatalf("out = %v, want a warn", out)
	}
}

func TestZoomToggles(t *testing.T) {
	w := newTestWindow(t, 40)
	w.Dispatch(intent.FocusPane(intent.WinDirZoom, 1, false))
	if !w.Zoomed() {
		t.Fatal("expected zoomed after one zoom toggle")
	}
	w.Dispatch(intent.FocusPane(intent.WinDirZoom, 1, false))
	if w.Zoomed() {
		t.Fatal("expected unzoomed after a second toggle")
	}
}

func TestRotateKeepsFocusedElement(t *testing.T) {
	w := newTestWindow(t, 40)
	w.Dispatch(intent.Window(intent.WinSplit, intent.DirUp, 1))
	w.Dispatch(intent.Window(intent.WinSplit, intent.DirUp, 1))
	focused := w.Current()

	w.Dispatch(intent.Window(intent.WinRotate, intent.DirDown, 1))
	if w.Current() != focused {
		t.Fatal("expected rotate to keep the same pane focused")
	}
}

func TestQuitClosesFocusedPaneUnlessLast(t *testing.T) {
	w := newTestWindow(t, 40)
	w.Dispatch(intent.Window(intent.WinSplit, intent.DirUp, 1))
	if term := w.Quit(); term {
		t.Fatal("expected Quit to not terminate with 2 panes")
	}
	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	if term := w.Quit(); !term {
		t.Fatal("expected Quit to terminate on the last pane")
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	w := newTestWindow(t, 40)
	w.Dispatch(intent.Window(intent.WinResize, intent.DirDown, 100))
	out := w.Dispatch(intent.Window(intent.WinResize, intent.DirDown, 100))
	if out != nil {
		t.Fatalf("resize warned unexpectedly: %v", out)
	}
	if h := w.slots[w.index].Height; h == nil || *h != MinPaneHeight {
		t.Fatalf("pane height not clamped to MinPaneHeight %d", MinPaneHeight)
	}
}
