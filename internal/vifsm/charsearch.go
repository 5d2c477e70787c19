package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleCharSearch consumes the target character of a pending f/F/t/T
// (spec §4.3), then resolves either as an operator operand (if a y/d/c was
// pending), a highlight extension (if invoked from VISUAL), or a bare move.
func (f *FSM) handleCharSearch(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind == keys.KindControl && (ev.Control == 'c' || ev.Control == '[') {
		wasVisual := f.csForVisual
		f.opPending = false
		f.csForVisual = false
		f.resetCount()
		f.takeRegister()
		if wasVisual {
			return StateVisual, nil
		}
		return StateNormal, nil
	}
	if ev.Kind != keys.KindPress {
		f.opPending = false
		f.csForVisual = false
		return StateNormal, f.unknownKey(ev)
	}

	ch := ev.Rune
	m := intent.Motion{
		Movement: f.csMovement, Direction: f.csDir,
		Character: ch, HasChar: true,
		Count: f.effectiveCount(), Register: f.register,
	}
	f.lastSearch = charSearchParams{movement: f.csMovement, dir: f.csDir, char: ch, valid: true}

	if f.opPending {
		return f.applyPendingOperator(m)
	}

	visual := f.csForVisual
	f.csForVisual = false
	f.resetCount()
	f.takeRegister()

	action := intent.ActionMove
	state := StateNormal
	if visual {
		action = intent.ActionHighlight
		state = StateVisual
	}
	return state, []intent.Intent{intent.Edit(action, m)}
}
