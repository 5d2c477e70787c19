package vifsm

import (
	"strings"
	"unicode"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// registerChars is the accepted alphabet for StateRegister (spec §4.3: "next
// key must match [a-zA-Z0-9.:%#/_\"=-], else warn"). The spec's Open
// Questions section fixes the append-register range to A..Z (not the
// source's A..z typo).
const registerChars = `abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.:%#/_"=-`

// handleRegister consumes the register-name key following '"' and returns
// to whichever state requested it (Normal, Movement, or Visual).
func (f *FSM) handleRegister(ev keys.Event) (State, []intent.Intent) {
	ret := f.registerReturn
	if ev.Kind != keys.KindPress || !strings.ContainsRune(registerChars, ev.Rune) {
		return ret, warn("Not yet implemented in register mode: %s", describeKey(ev))
	}
	f.register = intent.RegisterName(ev.Rune)
	f.hasRegister = true
	return ret, nil
}

// handleMark, handleLinejump, handleCharjump consume the single
// lowercase-folded character key that names a mark/jump target (spec §4.3).
func (f *FSM) handleMark(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind != keys.KindPress {
		return StateNormal, f.unknownKey(ev)
	}
	ch := unicode.ToLower(ev.Rune)
	return StateNormal, []intent.Intent{intent.Mark(ch)}
}

func (f *FSM) handleLinejump(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind != keys.KindPress {
		return StateNormal, f.unknownKey(ev)
	}
	ch := unicode.ToLower(ev.Rune)
	return StateNormal, []intent.Intent{intent.Linejump(ch)}
}

func (f *FSM) handleCharjump(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind != keys.KindPress {
		return StateNormal, f.unknownKey(ev)
	}
	ch := unicode.ToLower(ev.Rune)
	return StateNormal, []intent.Intent{intent.Charjump(ch)}
}

// handleGoto is StateGoto, entered by 'g'. 'gg' (go to first line) and 'ge'
// (backward word-end) are dropped on purpose: spec §4.3's normative key
// table has no 'g'-prefixed entries, and both are multi-line/word-end
// motions a single logical line has no use for. Any key here just warns
// and returns to normal.
func (f *FSM) handleGoto(ev keys.Event) (State, []intent.Intent) {
	return StateNormal, f.unknownKey(ev)
}
