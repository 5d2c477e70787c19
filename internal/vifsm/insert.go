package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleInsert implements StateInsert: printable keys type a character;
// Escape returns to normal; backspace deletes left; Ctrl-R enters the
// register-paste sub-state (spec §4.3 "paste (after ^R in insert/replace)").
func (f *FSM) handleInsert(ev keys.Event) (State, []intent.Intent) {
	switch ev.Kind {
	case keys.KindControl:
		switch {
		case ev.Control == '[':
			return StateNormal, nil
		case ev.Control == 'r':
			f.pasteReturn = StateInsert
			return StatePaste, nil
		case ev.Control == '?':
			m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirLeft, Count: 1}
			return StateInsert, []intent.Intent{intent.Edit(intent.ActionDelete, m)}
		}
		return StateInsert, f.unknownKey(ev)
	case keys.KindSpecial:
		switch ev.Special {
		case keys.SpecialArrowLeft:
			m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirLeft, Count: 1}
			return StateInsert, []intent.Intent{intent.Edit(intent.ActionMove, m)}
		case keys.SpecialArrowRight:
			m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: 1}
			return StateInsert, []intent.Intent{intent.Edit(intent.ActionMove, m)}
		case keys.SpecialDelete:
			m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: 1}
			return StateInsert, []intent.Intent{intent.Edit(intent.ActionDelete, m)}
		}
		return StateInsert, f.unknownKey(ev)
	}
	return StateInsert, []intent.Intent{intent.Type(ev.Rune)}
}
