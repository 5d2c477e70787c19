package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handlePaste implements StatePaste, entered by Ctrl-R from insert or
// replace mode: the next key names a register whose content is inserted
// at the cursor without leaving the calling mode.
func (f *FSM) handlePaste(ev keys.Event) (State, []intent.Intent) {
	ret := f.pasteReturn
	if ev.Kind == keys.KindControl && (ev.Control == 'c' || ev.Control == '[') {
		return ret, nil
	}
	if ev.Kind != keys.KindPress {
		return ret, f.unknownKey(ev)
	}
	return ret, []intent.Intent{intent.Paste(intent.PasteBefore, intent.RegisterName(ev.Rune), 1)}
}
