package simplefsm

import (
	"testing"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

func press(r rune) keys.Event   { return keys.Event{Kind: keys.KindPress, Rune: r} }
func control(c rune) keys.Event { return keys.Event{Kind: keys.KindControl, Control: c} }

func TestTypePrintable(t *testing.T) {
	f := New()
	out := f.Handle(press('x'))
	if len(out) != 1 || out[0].Kind != intent.KindType || out[0].Char != 'x' {
		t.Fatalf("out = %v, want Type('x')", out)
	}
	if f.State() != StateWaiting {
		t.Fatalf("state = %v, want StateWaiting", f.State())
	}
}

func TestCtrlASetsLineStart(t *testing.T) {
	f := New()
	out := f.Handle(control('a'))
	if len(out) != 1 || out[0].Motion.Movement != intent.MoveLine || out[0].Motion.Direction != intent.DirLeft {
		t.Fatalf("out = %v, want move-line left", out)
	}
}

func TestBackspaceDeletesLeft(t *testing.T) {
	f := New()
	out := f.Handle(keys.Event{Kind: keys.KindControl, Control: '?'})
	if len(out) != 1 || out[0].Action != intent.ActionDelete || out[0].Motion.Direction != intent.DirLeft {
		t.Fatalf("out = %v, want delete-left", out)
	}
}

func TestCtrlUDeletesEntireLine(t *testing.T) {
	f := New()
	out := f.Handle(control('u'))
	if len(out) != 1 || out[0].Motion.Movement != intent.MoveLine || out[0].Motion.Direction != intent.DirDown {
		t.Fatalf("out = %v, want whole-line delete", out)
	}
}

func TestCtrlREntersPasteThenConsumesRegister(t *testing.T) {
	f := New()
	f.Handle(control('r'))
	if f.State() != StatePaste {
		t.Fatalf("state = %v, want StatePaste", f.State())
	}
	out := f.Handle(press('a'))
	if f.State() != StateWaiting {
		t.Fatalf("state = %v, want StateWaiting", f.State())
	}
	if len(out) != 1 || out[0].Kind != intent.KindPaste || out[0].Register != intent.RegisterName('a') {
		t.Fatalf("out = %v, want paste from register 'a'", out)
	}
}

func TestTabCallsCompleteNext(t *testing.T) {
	f := New()
	out := f.Handle(control('i'))
	if len(out) != 1 || out[0].Kind != intent.KindComplete || out[0].CompleteDirection != intent.DirRight {
		t.Fatalf("out = %v, want complete(next)", out)
	}
}

func TestShiftTabCallsCompletePrevious(t *testing.T) {
	f := New()
	out := f.Handle(keys.Event{Kind: keys.KindSpecial, Special: keys.SpecialShiftTab, Mods: keys.ModShift})
	if len(out) != 1 || out[0].Kind != intent.KindComplete || out[0].CompleteDirection != intent.DirLeft {
		t.Fatalf("out = %v, want complete(previous)", out)
	}
}

func TestEnterSubmits(t *testing.T) {
	f := New()
	out := f.Handle(control('j'))
	if len(out) != 1 || out[0].Kind != intent.KindSubmit {
		t.Fatalf("out = %v, want Submit", out)
	}
}

func TestCtrlCSwitchesAway(t *testing.T) {
	f := New()
	out := f.Handle(control('c'))
	if len(out) != 1 || out[0].Kind != intent.KindSwitch {
		t.Fatalf("out = %v, want Switch", out)
	}
}

func TestShiftArrowsExtendByWord(t *testing.T) {
	f := New()
	left := f.Handle(keys.Event{Kind: keys.KindSpecial, Special: keys.SpecialArrowLeft, Mods: keys.ModShift})
	if left[0].Motion.Movement != intent.MoveWordBegin || left[0].Motion.Direction != intent.DirLeft {
		t.Fatalf("left = %v, want word-begin left", left)
	}
	right := f.Handle(keys.Event{Kind: keys.KindSpecial, Special: keys.SpecialArrowRight, Mods: keys.ModShift})
	if right[0].Motion.Movement != intent.MoveWordEnd || right[0].Motion.Direction != intent.DirRight {
		t.Fatalf("right = %v, want word-end right", right)
	}
}

func TestDeleteKeyDeletesRight(t *testing.T) {
	f := New()
	out := f.Handle(keys.Event{Kind: keys.KindSpecial, Special: keys.SpecialDelete})
	if len(out) != 1 || out[0].Action != intent.ActionDelete || out[0].Motion.Direction != intent.DirRight {
		t.Fatalf("out = %v, want delete-right", out)
	}
}
