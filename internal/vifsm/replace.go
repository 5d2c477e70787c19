package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleCharReplace implements StateCharReplace, entered by 'r': the next
// keypress overwrites replaceCount characters forward (spec §4.3, §4.5
// replace(ch, typing=false, motion)).
func (f *FSM) handleCharReplace(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind == keys.KindControl && (ev.Control == 'c' || ev.Control == '[') {
		return StateNormal, nil
	}
	if ev.Kind != keys.KindPress {
		return StateNormal, f.unknownKey(ev)
	}
	m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: f.replaceCount, Register: f.takeRegister()}
	f.resetCount()
	return StateNormal, []intent.Intent{intent.Replace(ev.Rune, false, m)}
}

// handleReplace implements StateReplace (REPLACE mode, entered by 'R'):
// every printable key overwrites in place (typing=true); backspace emits
// erase, restoring the original character rather than just moving left
// (spec §4.5 erase semantics).
func (f *FSM) handleReplace(ev keys.Event) (State, []intent.Intent) {
	switch ev.Kind {
	case keys.KindControl:
		switch {
		case ev.Control == '[':
			return StateNormal, nil
		case ev.Control == 'r':
			f.pasteReturn = StateReplace
			return StatePaste, nil
		case ev.Control == '?':
			m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirLeft, Count: 1}
			return StateReplace, []intent.Intent{intent.Edit(intent.ActionErase, m)}
		}
		return StateReplace, f.unknownKey(ev)
	case keys.KindSpecial:
		switch ev.Special {
		case keys.SpecialArrowLeft:
			m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirLeft, Count: 1}
			return StateReplace, []intent.Intent{intent.Edit(intent.ActionMove, m)}
		case keys.SpecialArrowRight:
			m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: 1}
			return StateReplace, []intent.Intent{intent.Edit(intent.ActionMove, m)}
		}
		return StateReplace, f.unknownKey(ev)
	}
	m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: 1}
	return StateReplace, []intent.Intent{intent.Replace(ev.Rune, true, m)}
}
