package simplefsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleWaiting implements StateWaiting, the normal command-bar state
// (spec §4.4).
func (f *FSM) handleWaiting(ev keys.Event) (State, []intent.Intent) {
	switch ev.Kind {
	case keys.KindControl:
		return f.handleWaitingControl(ev)
	case keys.KindSpecial:
		return f.handleWaitingSpecial(ev)
	default:
		return StateWaiting, []intent.Intent{intent.Type(ev.Rune)}
	}
}

func (f *FSM) handleWaitingControl(ev keys.Event) (State, []intent.Intent) {
	switch ev.Control {
	case 'a': // ^A: move to line start
		m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirLeft}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case 'e': // ^E: move to line end
		m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirRight}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case 'h', '?': // ^H / backspace: delete-char-left
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirLeft, Count: 1}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionDelete, m)}
	case 'u': // ^U: delete entire line
		m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirDown}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionDelete, m)}
	case 'r': // ^R: enter paste, next key names a register
		return StatePaste, nil
	case 'i': // ^I / Tab: complete(next)
		return StateWaiting, []intent.Intent{intent.Complete(intent.DirRight)}
	case 'j', 'm': // ^J / ^M: submit
		return StateWaiting, []intent.Intent{intent.Submit()}
	case 'c', '[': // ^C / ^[: leave the command bar
		return StateWaiting, []intent.Intent{intent.Switch()}
	default:
		return StateWaiting, f.unknownKey(ev)
	}
}

func (f *FSM) handleWaitingSpecial(ev keys.Event) (State, []intent.Intent) {
	if ev.Mods&keys.ModShift != 0 {
		return f.handleShiftedSpecial(ev)
	}
	switch ev.Special {
	case keys.SpecialArrowLeft:
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirLeft, Count: 1}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case keys.SpecialArrowRight:
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: 1}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case keys.SpecialHome:
		m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirLeft}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case keys.SpecialEnd:
		m := intent.Motion{Movement: intent.MoveLine, Direction: intent.DirRight}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case keys.SpecialDelete: // forward delete
		m := intent.Motion{Movement: intent.MoveChar, Direction: intent.DirRight, Count: 1}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionDelete, m)}
	case keys.SpecialShiftTab:
		return StateWaiting, []intent.Intent{intent.Complete(intent.DirLeft)}
	default:
		return StateWaiting, f.unknownKey(ev)
	}
}

// handleShiftedSpecial implements the shift+arrow extended-selection
// shortcuts: shift+left jumps to the start of the current word, shift+right
// seeks forward to the next word boundary, approximating "seek to next
// space" with the word-end motion TextBuffer already resolves.
func (f *FSM) handleShiftedSpecial(ev keys.Event) (State, []intent.Intent) {
	switch ev.Special {
	case keys.SpecialArrowLeft:
		m := intent.Motion{Movement: intent.MoveWordBegin, Direction: intent.DirLeft, Count: 1}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case keys.SpecialArrowRight:
		m := intent.Motion{Movement: intent.MoveWordEnd, Direction: intent.DirRight, Count: 1}
		return StateWaiting, []intent.Intent{intent.Edit(intent.ActionMove, m)}
	case keys.SpecialShiftTab:
		return StateWaiting, []intent.Intent{intent.Complete(intent.DirLeft)}
	default:
		return StateWaiting, f.unknownKey(ev)
	}
}

// handlePaste implements StatePaste, entered by ^R: the next key names a
// register whose content is inserted at the cursor.
func (f *FSM) handlePaste(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind == keys.KindControl && (ev.Control == 'c' || ev.Control == '[') {
		return StateWaiting, nil
	}
	if ev.Kind != keys.KindPress {
		return StateWaiting, f.unknownKey(ev)
	}
	return StateWaiting, []intent.Intent{intent.Paste(intent.PasteBefore, intent.RegisterName(ev.Rune), 1)}
}
