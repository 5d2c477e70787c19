package vifsm

import (
	"testing"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

func press(r rune) keys.Event   { return keys.Event{Kind: keys.KindPress, Rune: r} }
func control(c rune) keys.Event { return keys.Event{Kind: keys.KindControl, Control: c} }

func pressAll(f *FSM, s string) [][]intent.Intent {
	var out [][]intent.Intent
	for _, r := range s {
		out = append(out, f.Handle(press(r)))
	}
	return out
}

// "dw" on a fresh FSM: 'd' enters StateMovement pending delete, 'w' resolves
// the word-begin motion and emits Edit(delete, ...), returning to Normal
// with a Clamp and Checkpoint appended (spec §8 scenario 1, FSM side).
func TestDeleteWordEmitsEditThenClampCheckpoint(t *testing.T) {
	f := New()
	out1 := f.Handle(press('d'))
	if len(out1) != 0 || f.State() != StateMovement {
		t.Fatalf("after 'd': intents=%v state=%v, want StateMovement no intents", out1, f.State())
	}

	out2 := f.Handle(press('w'))
	if f.State() != StateNormal {
		t.Fatalf("after 'dw': state=%v, want StateNormal", f.State())
	}
	if len(out2) != 3 {
		t.Fatalf("after 'dw': intents=%v, want [edit, clamp, checkpoint]", out2)
	}
	if out2[0].Kind != intent.KindEdit || out2[0].Action != intent.ActionDelete {
		t.Fatalf("intent[0] = %+v, want delete edit", out2[0])
	}
	if out2[0].Motion.Movement != intent.MoveWordBegin || out2[0].Motion.Direction != intent.DirRight {
		t.Fatalf("motion = %+v, want word-begin right", out2[0].Motion)
	}
	if out2[1].Kind != intent.KindClamp {
		t.Fatalf("intent[1] = %+v, want Clamp", out2[1])
	}
	if out2[2].Kind != intent.KindCheckpoint {
		t.Fatalf("intent[2] = %+v, want Checkpoint", out2[2])
	}
}

// "3l" accumulates a count then resolves a bare rightward char motion with
// Count=3 (spec §8 scenario 2).
func TestCountedMotionCarriesCount(t *testing.T) {
	f := New()
	f.Handle(press('3'))
	out := f.Handle(press('l'))
	if len(out) != 2 || out[0].Kind != intent.KindEdit || out[0].Action != intent.ActionMove {
		t.Fatalf("out = %v, want [move-edit, clamp]", out)
	}
	if out[0].Motion.Count != 3 {
		t.Fatalf("count = %d, want 3", out[0].Motion.Count)
	}
}

// "fX" enters StateCharSearch, then resolves to a to-char motion once the
// target character arrives; ';' afterward repeats it (spec §8 scenario 3).
func TestCharSearchThenRepeat(t *testing.T) {
	f := New()
	f.Handle(press('f'))
	if f.State() != StateCharSearch {
		t.Fatalf("after 'f': state=%v, want StateCharSearch", f.State())
	}
	out := f.Handle(press('X'))
	if out[0].Motion.Movement != intent.MoveToChar || out[0].Motion.Character != 'X' {
		t.Fatalf("motion = %+v, want to-char 'X'", out[0].Motion)
	}

	out2 := f.Handle(press(';'))
	if out2[0].Motion.Movement != intent.MoveToChar || out2[0].Motion.Character != 'X' {
		t.Fatalf("repeat motion = %+v, want to-char 'X' again", out2[0].Motion)
	}
}

// `"ayw` selects register a, then yanks a word (spec §8 scenario 5).
func TestNamedRegisterYank(t *testing.T) {
	f := New()
	f.Handle(press('"'))
	if f.State() != StateRegister {
		t.Fatalf("after '\"': state=%v, want StateRegister", f.State())
	}
	f.Handle(press('a'))
	if f.State() != StateNormal {
		t.Fatalf("after '\"a': state=%v, want StateNormal", f.State())
	}
	out := f.Handle(press('y'))
	if f.State() != StateMovement {
		t.Fatalf("after '\"ay': state=%v, want StateMovement", f.State())
	}
	_ = out
	out2 := f.Handle(press('w'))
	if out2[0].Motion.Register != intent.RegisterName('a') {
		t.Fatalf("register = %v, want 'a'", out2[0].Motion.Register)
	}
}

// "dd" (doubled operator key) selects the whole-line motion direction down.
func TestDoubledOperatorKeySelectsLine(t *testing.T) {
	f := New()
	f.Handle(press('d'))
	out := f.Handle(press('d'))
	if out[0].Motion.Movement != intent.MoveLine || out[0].Motion.Direction != intent.DirDown {
		t.Fatalf("motion = %+v, want whole-line down", out[0].Motion)
	}
}

// 'v' enters Visual and sets the highlight anchor; a motion afterward
// extends it (ActionHighlight, not ActionMove); 'd' applies delete to the
// selection and exits to Normal.
func TestVisualExtendThenDelete(t *testing.T) {
	f := New()
	out := f.Handle(press('v'))
	if f.State() != StateVisual || out[0].Kind != intent.KindEnterHighlight {
		t.Fatalf("after 'v': state=%v out=%v", f.State(), out)
	}
	out2 := f.Handle(press('w'))
	if out2[0].Action != intent.ActionHighlight {
		t.Fatalf("visual motion action = %v, want highlight", out2[0].Action)
	}
	out3 := f.Handle(press('d'))
	if f.State() != StateNormal {
		t.Fatalf("after visual 'd': state=%v, want StateNormal", f.State())
	}
	if out3[0].Motion.Movement != intent.MoveHighlight || out3[0].Action != intent.ActionDelete {
		t.Fatalf("visual delete intent = %+v", out3[0])
	}
	foundExit := false
	for _, in := range out3 {
		if in.Kind == intent.KindExitHighlight {
			foundExit = true
		}
	}
	if !foundExit {
		t.Fatalf("expected ExitHighlight among %v", out3)
	}
}

// Ctrl-C in Normal warns rather than doing anything destructive.
func TestCtrlCInNormalWarns(t *testing.T) {
	f := New()
	out := f.Handle(control('c'))
	if len(out) == 0 || out[0].Kind != intent.KindWarn {
		t.Fatalf("out = %v, want a warn intent", out)
	}
	if f.State() != StateNormal {
		t.Fatalf("state = %v, want StateNormal", f.State())
	}
}

// Ctrl-J/Ctrl-M in normal mode submits the composed message rather than
// editing the buffer.
func TestCtrlJSubmits(t *testing.T) {
	f := New()
	out := f.Handle(control('j'))
	if len(out) == 0 || out[0].Kind != intent.KindSubmit {
		t.Fatalf("out = %v, want a submit intent", out)
	}
	if f.State() != StateNormal {
		t.Fatalf("state = %v, want StateNormal", f.State())
	}
}

// Ctrl-W enters wincmd; 'l' focuses the pane to the right and returns to
// normal with a clamp but no checkpoint (window focus isn't a buffer mutation).
func TestWincmdFocus(t *testing.T) {
	f := New()
	f.Handle(control('w'))
	if f.State() != StateWincmd {
		t.Fatalf("state = %v, want StateWincmd", f.State())
	}
	out := f.Handle(press('l'))
	if f.State() != StateNormal {
		t.Fatalf("state = %v, want StateNormal", f.State())
	}
	if len(out) != 2 || out[0].Kind != intent.KindFocus || out[0].WinDirection != intent.WinDirRight {
		t.Fatalf("out = %v, want focus-right then clamp", out)
	}
	if out[1].Kind != intent.KindClamp {
		t.Fatalf("out[1] = %+v, want Clamp", out[1])
	}
	for _, in := range out {
		if in.Kind == intent.KindCheckpoint {
			t.Fatalf("did not expect a checkpoint for a window focus change: %v", out)
		}
	}
}

// 'i' enters Insert; typed characters produce KindType; Escape returns to
// Normal and fires Clamp (and Checkpoint, since typing is mutating).
func TestInsertTypeEscapeClamps(t *testing.T) {
	f := New()
	f.Handle(press('i'))
	if f.State() != StateInsert {
		t.Fatalf("state = %v, want StateInsert", f.State())
	}
	for _, out := range pressAll(f, "hi") {
		if out[0].Kind != intent.KindType {
			t.Fatalf("out = %v, want KindType", out)
		}
	}
	out := f.Handle(control('['))
	if f.State() != StateNormal {
		t.Fatalf("state = %v, want StateNormal", f.State())
	}
	if len(out) != 2 || out[0].Kind != intent.KindClamp || out[1].Kind != intent.KindCheckpoint {
		t.Fatalf("out = %v, want [clamp, checkpoint]", out)
	}
}

// Mode changes fire the registered callback exactly on Mode transitions,
// not on every sub-state transition within Normal.
func TestModeChangeCallback(t *testing.T) {
	var seen []Mode
	f := New(WithModeChangeFunc(func(m Mode) { seen = append(seen, m) }))

	f.Handle(press('"')) // StateRegister, still ModeNormal
	f.Handle(press('a'))
	f.Handle(press('i')) // -> ModeInsert
	f.Handle(control('[')) // -> ModeNormal

	if len(seen) != 2 {
		t.Fatalf("seen = %v, want exactly 2 mode changes", seen)
	}
	if seen[0] != ModeInsert || seen[1] != ModeNormal {
		t.Fatalf("seen = %v, want [Insert, Normal]", seen)
	}
}

// 'r' + a character replaces count characters forward without entering a
// persistent mode.
func TestCharReplace(t *testing.T) {
	f := New()
	f.Handle(press('3'))
	f.Handle(press('r'))
	if f.State() != StateCharReplace {
		t.Fatalf("state = %v, want StateCharReplace", f.State())
	}
	out := f.Handle(press('x'))
	if f.State() != StateNormal {
		t.Fatalf("state = %v, want StateNormal", f.State())
	}
	if out[0].Kind != intent.KindReplace || out[0].Char != 'x' || out[0].Motion.Count != 3 {
		t.Fatalf("out[0] = %+v, want replace('x', count=3)", out[0])
	}
}
