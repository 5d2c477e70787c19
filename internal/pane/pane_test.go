package pane

import (
	"testing"

	"github.com/mmterm/mmterm/internal/backend"
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/register"
)

type fakeRoom struct {
	id    string
	alias string
	ok    bool
}

func (r fakeRoom) ID() string                           { return r.id }
func (r fakeRoom) Alias() (string, bool)                { return r.alias, r.ok }
func (r fakeRoom) Name() (string, bool)                 { return r.alias, r.ok }
func (r fakeRoom) ForEachMessage(func(backend.Message)) {}
func (r fakeRoom) SendMessage(text string, cb func(error)) {
	cb(nil)
}
func (r fakeRoom) OnMessage(func(backend.Message)) {}

// New seeds the jump list with initial and publishes its short name into
// RegisterStore '%' (spec §3 "Creating a Pane ... sets %/#").
func TestNewSeedsBufferName(t *testing.T) {
	regs := register.New()
	v := NewView(fakeRoom{alias: "lobby", ok: true}, regs)
	p := New(v, regs)

	if p.Current() != v {
		t.Fatalf("Current() = %v, want the seeded view", p.Current())
	}
	if name, _ := regs.Get(register.CurBuf); name != "lobby" {
		t.Fatalf("register %% = %q, want %q", name, "lobby")
	}
}

// FocusHistory steps the jump list and swings '%'/'#' to the new/old short
// names (spec §4.6).
func TestFocusHistorySwapsBufferNames(t *testing.T) {
	regs := register.New()
	a := NewView(fakeRoom{alias: "alpha", ok: true}, regs)
	p := New(a, regs)
	b := NewView(fakeRoom{alias: "beta", ok: true}, regs)
	p.FocusView(b)

	if p.Current() != b {
		t.Fatalf("Current() = %v, want b", p.Current())
	}

	prev := p.FocusHistory(intent.WinDirPrevious, 1)
	if prev != a {
		t.Fatalf("FocusHistory(previous) = %v, want a", prev)
	}
	if name, _ := regs.Get(register.CurBuf); name != "alpha" {
		t.Fatalf("register %% = %q, want %q", name, "alpha")
	}
	if name, _ := regs.Get(register.AltBuf); name != "beta" {
		t.Fatalf("register # = %q, want %q", name, "beta")
	}

	next := p.FocusHistory(intent.WinDirNext, 1)
	if next != b {
		t.Fatalf("FocusHistory(next) = %v, want b", next)
	}
}

// A View over a room with no alias falls back to its bare ID.
func TestShortNameFallsBackToID(t *testing.T) {
	regs := register.New()
	v := NewView(fakeRoom{ok: false}, regs)
	if v.shortName() != v.ID {
		t.Fatalf("shortName() = %q, want the view's ID %q", v.shortName(), v.ID)
	}
}

// Clone produces an independent jump list: stepping the clone must not
// move the original's cursor (spec §4.6 "clone()").
func TestCloneIsIndependent(t *testing.T) {
	regs := register.New()
	a := NewView(fakeRoom{alias: "alpha", ok: true}, regs)
	p := New(a, regs)
	b := NewView(fakeRoom{alias: "beta", ok: true}, regs)
	p.FocusView(b)

	clone := p.Clone()
	clone.FocusHistory(intent.WinDirPrevious, 1)

	if p.Current() != b {
		t.Fatalf("original Current() = %v, want b (unaffected by clone's step)", p.Current())
	}
	if clone.Current() != a {
		t.Fatalf("clone Current() = %v, want a", clone.Current())
	}
}
