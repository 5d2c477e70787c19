package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// handleWincmd implements StateWincmd, entered by Ctrl-W (spec §4.3: "^W
// in normal enters wincmd"). Plain caret '^' is already the first-word
// motion key in the normative table, so wincmd entry is resolved to the
// conventional vi Ctrl-W chord rather than a literal caret press.
func (f *FSM) handleWincmd(ev keys.Event) (State, []intent.Intent) {
	if ev.Kind == keys.KindControl {
		switch ev.Control {
		case 'c', '[':
			return StateNormal, nil
		case 'w':
			return StateWincmd, []intent.Intent{intent.FocusPane(intent.WinDirNext, 1, false)}
		}
		return StateNormal, f.unknownKey(ev)
	}

	if ev.Kind == keys.KindSpecial {
		switch ev.Special {
		case keys.SpecialArrowLeft:
			return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirLeft, 1, false)}
		case keys.SpecialArrowRight:
			return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirRight, 1, false)}
		case keys.SpecialArrowUp:
			return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirUp, 1, false)}
		case keys.SpecialArrowDown:
			return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirDown, 1, false)}
		}
		return StateNormal, f.unknownKey(ev)
	}

	n := f.effectiveCount()
	hasCount := f.count != 0
	f.resetCount()

	switch ev.Rune {
	case 'h':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirLeft, n, hasCount)}
	case 'l':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirRight, n, hasCount)}
	case 'j':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirDown, n, hasCount)}
	case 'k':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirUp, n, hasCount)}
	case 'w':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirNext, n, hasCount)}
	case 'W':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirPrevious, n, hasCount)}
	case 't':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirTop, n, hasCount)}
	case 'b':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirBottom, n, hasCount)}
	case 'z':
		return StateNormal, []intent.Intent{intent.FocusPane(intent.WinDirZoom, 1, false)}
	case 's':
		return StateNormal, []intent.Intent{intent.Window(intent.WinSplit, intent.DirUp, n)}
	case 'v':
		return StateNormal, []intent.Intent{intent.Window(intent.WinSplit, intent.DirLeft, n)}
	case 'r':
		return StateNormal, []intent.Intent{intent.Window(intent.WinRotate, intent.DirDown, n)}
	case 'R':
		return StateNormal, []intent.Intent{intent.Window(intent.WinRotate, intent.DirUp, n)}
	case '+':
		return StateNormal, []intent.Intent{intent.Window(intent.WinResize, intent.DirUp, n)}
	case '-':
		return StateNormal, []intent.Intent{intent.Window(intent.WinResize, intent.DirDown, n)}
	case '<':
		return StateNormal, []intent.Intent{intent.Window(intent.WinResize, intent.DirDown, n)}
	case '>':
		return StateNormal, []intent.Intent{intent.Window(intent.WinResize, intent.DirUp, n)}
	case '=':
		return StateNormal, []intent.Intent{intent.Window(intent.WinResize, intent.DirNone, 0)}
	}

	return StateNormal, f.unknownKey(ev)
}
