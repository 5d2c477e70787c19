package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleVisual implements StateVisual (spec §4.3): motions extend the
// highlight; d/x/c/y/~/u/U apply to the selection and exit.
func (f *FSM) handleVisual(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind == keys.KindControl && (ev.Control == 'c' || ev.Control == '[') {
		f.resetCount()
		f.takeRegister()
		return StateNormal, []intent.Intent{intent.ExitHighlight()}
	}

	if ev.Kind == keys.KindPress {
		switch {
		case ev.Rune >= '1' && ev.Rune <= '9':
			f.count = f.count*10 + uint32(ev.Rune-'0')
			return StateVisual, nil
		case ev.Rune == '0' && f.count != 0:
			f.count = f.count * 10
			return StateVisual, nil
		}
		switch ev.Rune {
		case '"':
			f.registerReturn = StateVisual
			return StateRegister, nil
		case 'd', 'x':
			return f.visualOperator(intent.ActionDelete, StateNormal)
		case 'y':
			return f.visualOperator(intent.ActionYank, StateNormal)
		case 'c':
			return f.visualOperator(intent.ActionDelete, StateInsert)
		case '~':
			return f.visualOperator(intent.ActionTogglecase, StateNormal)
		case 'u':
			return f.visualOperator(intent.ActionLowercase, StateNormal)
		case 'U':
			return f.visualOperator(intent.ActionUppercase, StateNormal)
		case 'r':
			return StateVisReplace, nil
		case 'v':
			f.resetCount()
			return StateNormal, []intent.Intent{intent.ExitHighlight()}
		}
	}

	outcome := f.resolveMotionKey(ev)
	if outcome.recognized {
		if outcome.needsChar {
			f.csMovement = outcome.motion.Movement
			f.csDir = outcome.motion.Direction
			f.csForVisual = true
			return StateCharSearch, nil
		}
		return StateVisual, f.applyBareMotion(outcome.motion, true)
	}

	return StateVisual, f.unknownKey(ev)
}

// visualOperator applies action to the current highlight (resolved via the
// MoveHighlight motion, which swaps cursor and anchor in TextBuffer) and
// exits visual mode.
func (f *FSM) visualOperator(action intent.ActionKind, post State) (State, []intent.Intent) {
	reg := f.takeRegister()
	f.resetCount()
	m := intent.Motion{Movement: intent.MoveHighlight, Register: reg}
	return post, []intent.Intent{intent.Edit(action, m), intent.ExitHighlight()}
}

// handleVisReplace implements StateVisReplace: the next character
// overwrites the entire highlighted range (spec §4.3 "r in visual").
func (f *FSM) handleVisReplace(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind == keys.KindControl && (ev.Control == 'c' || ev.Control == '[') {
		return StateVisual, nil
	}
	if ev.Kind != keys.KindPress {
		return StateVisual, f.unknownKey(ev)
	}
	m := intent.Motion{Movement: intent.MoveHighlight, Character: ev.Rune, HasChar: true, Register: f.takeRegister()}
	return StateNormal, []intent.Intent{intent.Edit(intent.ActionReplace, m), intent.ExitHighlight()}
}
