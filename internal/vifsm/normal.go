package vifsm

import (
	"unicode"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleNormal implements the bulk of spec §4.3's normative key table for
// StateNormal: digit accumulation, motion keys, operator entry, register
// selection, replace entry, visual entry, and the control chords.
func (f *FSM) handleNormal(ev keys.Event) (State, []intent.Intent) {
	switch ev.Kind {
	case keys.KindControl:
		return f.handleNormalControl(ev)
	case keys.KindSpecial:
		return f.handleNormalSpecial(ev)
	}

	switch {
	case ev.Rune >= '1' && ev.Rune <= '9':
		f.count = f.count*10 + uint32(ev.Rune-'0')
		return StateNormal, nil
	case ev.Rune == '0' && f.count != 0:
		f.count = f.count * 10
		return StateNormal, nil
	}

	switch ev.Rune {
	case '"':
		f.registerReturn = StateNormal
		return StateRegister, nil
	case ':':
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Focus(intent.FocusCommand, intent.DirNone, 0, false)}
	case 'm':
		return StateMark, nil
	case '\'':
		return StateLinejump, nil
	case '`':
		return StateCharjump, nil
	case 'g':
		return StateGoto, nil
	case 'v':
		f.resetCount()
		return StateVisual, []intent.Intent{intent.EnterHighlight()}
	case 'r':
		f.replaceCount = f.effectiveCount()
		return StateCharReplace, nil
	case 'R':
		f.resetCount()
		f.takeRegister()
		return StateReplace, nil
	case 'i':
		f.resetCount()
		f.takeRegister()
		return StateInsert, nil
	case 'a':
		f.resetCount()
		f.takeRegister()
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: 1}
		return StateInsert, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case 'I':
		f.resetCount()
		f.takeRegister()
		m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirFirstWord}
		return StateInsert, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case 'A':
		f.resetCount()
		f.takeRegister()
		m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirRight}
		return StateInsert, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case 'x':
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: f.effectiveCount(), Register: f.takeRegister()}
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Edit(intent.ActionDelete, m)}
	case 'X':
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirLeft, Count: f.effectiveCount(), Register: f.takeRegister()}
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Edit(intent.ActionDelete, m)}
	case '~':
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: f.effectiveCount()}
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Edit(intent.ActionTogglecase, m)}
	case 'y', 'd', 'c':
		return f.enterOperator(ev.Rune)
	case 'p':
		n := f.effectiveCount()
		reg := f.takeRegister()
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Paste(intent.PasteAfter, reg, n)}
	case 'P':
		n := f.effectiveCount()
		reg := f.takeRegister()
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Paste(intent.PasteBefore, reg, n)}
	case 'u':
		n := f.effectiveCount()
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Undo(n)}
	}

	if ev.IsControl('w') {
		return StateWincmd, nil
	}

	outcome := f.resolveMotionKey(ev)
	if outcome.recognized {
		if outcome.needsChar {
			f.csMovement = outcome.motion.Movement
			f.csDir = outcome.motion.Direction
			f.csForVisual = false
			return StateCharSearch, nil
		}
		return StateNormal, f.applyBareMotion(outcome.motion, false)
	}

	return StateNormal, f.unknownKey(ev)
}

func (f *FSM) handleNormalControl(ev keys.Event) (State, []intent.Intent) {
	switch {
	case ev.Control == 'w':
		return StateWincmd, nil
	case ev.Control == 'r':
		n := f.effectiveCount()
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Redo(n)}
	case ev.Control == 'c':
		f.resetCount()
		f.takeRegister()
		return StateNormal, warn("Type :quit<Enter> to exit")
	case ev.Control == '[':
		f.resetCount()
		f.takeRegister()
		return StateNormal, nil
	case ev.Control == 'j' || ev.Control == 'm':
		f.resetCount()
		f.takeRegister()
		return StateNormal, []intent.Intent{intent.Submit()}
	}
	return StateNormal, f.unknownKey(ev)
}

func (f *FSM) handleNormalSpecial(ev keys.Event) (State, []intent.Intent) {
	switch ev.Special {
	case keys.SpecialArrowUp:
		n := f.effectiveCount()
		hasCount := f.count != 0
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Focus(intent.FocusHistory, intent.DirUp, n, hasCount)}
	case keys.SpecialArrowDown:
		n := f.effectiveCount()
		hasCount := f.count != 0
		f.resetCount()
		return StateNormal, []intent.Intent{intent.Focus(intent.FocusHistory, intent.DirDown, n, hasCount)}
	}
	outcome := f.resolveMotionKey(ev)
	if outcome.recognized {
		return StateNormal, f.applyBareMotion(outcome.motion, false)
	}
	return StateNormal, f.unknownKey(ev)
}

// enterOperator handles y/d/c: transition to StateMovement awaiting the
// operand motion (spec §4.3).
func (f *FSM) enterOperator(key rune) (State, []intent.Intent) {
	var action intent.ActionKind
	var post State
	switch key {
	case 'y':
		action, post = intent.ActionYank, StateNormal
	case 'd':
		action, post = intent.ActionDelete, StateNormal
	case 'c':
		action, post = intent.ActionDelete, StateInsert
	}
	f.opPending = true
	f.opAction = action
	f.opPoststate = post
	f.opChar = key
	return StateMovement, nil
}

// unknownKey surfaces spec §7's UnknownKey error.
func (f *FSM) unknownKey(ev keys.Event) []intent.Intent {
	if f.log != nil {
		f.log.WithField("event", ev).Debug("vifsm: unhandled key")
	}
	f.resetCount()
	f.takeRegister()
	return warn("Not yet implemented in %s mode: %s", f.state, describeKey(ev))
}

func describeKey(ev keys.Event) string {
	switch ev.Kind {
	case keys.KindPress:
		return string(ev.Rune)
	case keys.KindControl:
		return "^" + string(unicode.ToUpper(ev.Control))
	default:
		return "<special>"
	}
}
