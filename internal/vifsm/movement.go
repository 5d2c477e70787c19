package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleMovement implements StateMovement: waiting for the operand motion
// of a pending y/d/c (spec §4.3). A doubled operator key (dd, yy, cc)
// selects the whole-line movement, direction down.
func (f *FSM) handleMovement(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind == keys.KindControl && (ev.Control == 'c' || ev.Control == '[') {
		f.opPending = false
		f.resetCount()
		f.takeRegister()
		return StateNormal, nil
	}

	if ev.Kind == keys.KindPress {
		switch {
		case ev.Rune >= '1' && ev.Rune <= '9':
			f.count = f.count*10 + uint32(ev.Rune-'0')
			return StateMovement, nil
		case ev.Rune == '0' && f.count != 0:
			f.count = f.count * 10
			return StateMovement, nil
		case ev.Rune == f.opChar:
			m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirDown, Count: f.effectiveCount(), Register: f.register}
			return f.applyPendingOperator(m)
		case ev.Rune == '"':
			f.registerReturn = StateMovement
			return StateRegister, nil
		}
	}

	outcome := f.resolveMotionKey(ev)
	if outcome.recognized {
		if outcome.needsChar {
			f.csMovement = outcome.motion.Movement
			f.csDir = outcome.motion.Direction
			f.csForVisual = false
			return StateCharSearch, nil
		}
		return f.applyPendingOperator(outcome.motion)
	}

	f.opPending = false
	return StateNormal, f.unknownKey(ev)
}
