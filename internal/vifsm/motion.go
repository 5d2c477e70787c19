package vifsm

import (
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// motionOutcome is the result of trying to interpret a key as a motion
// key. needsChar is set for f/F/t/T, which require one more keystroke
// before the motion is known.
type motionOutcome struct {
	recognized bool
	needsChar  bool
	motion     intent.Motion
}

// resolveMotionKey implements the motion-key portion of spec §4.3's
// table: "h l w b e f F t T ; , ^ $ 0". It is shared between StateNormal
// (bare motions), StateMovement (operator operands), and StateVisual
// (highlight extension) — the "process_movement_key" helper called for in
// Design Notes §9.
func (f *FSM) resolveMotionKey(ev keys.Event) motionOutcome {
	count := f.effectiveCount()
	reg := f.register

	base := func(kind intent.MovementKind, dir intent.Direction) motionOutcome {
		return motionOutcome{
			recognized: true,
			motion: intent.Motion{
				Movement: kind, Direction: dir, Count: count, Register: reg,
			},
		}
	}

	if ev.Kind == keys.KindSpecial {
		switch ev.Special {
		case keys.SpecialArrowLeft:
			return base(intent.MoveChar, intent.DirLeft)
		case keys.SpecialArrowRight:
			return base(intent.MoveChar, intent.DirRight)
		}
		return motionOutcome{}
	}

	if ev.Kind != keys.KindPress {
		return motionOutcome{}
	}

	switch ev.Rune {
	case 'h':
		return base(intent.MoveChar, intent.DirLeft)
	case 'l':
		return base(intent.MoveChar, intent.DirRight)
	case 'w':
		return base(intent.MoveWordBegin, intent.DirRight)
	case 'b':
		return base(intent.MoveWordBegin, intent.DirLeft)
	case 'e':
		return base(intent.MoveWordEnd, intent.DirRight)
	case '^':
		return base(intent.MoveLine, intent.DirFirstWord)
	case '$':
		return base(intent.MoveLine, intent.DirRight)
	case '0':
		// Only a motion key when a count is already accumulating; otherwise
		// the digit '0' is consumed by digit accumulation before this
		// function is ever reached (see handleNormal/handleMovement).
		return base(intent.MoveLine, intent.DirLeft)
	case 'f':
		return motionOutcome{recognized: true, needsChar: true, motion: intent.Motion{
			Movement: intent.MoveToChar, Direction: intent.DirRight, Count: count, Register: reg,
		}}
	case 'F':
		return motionOutcome{recognized: true, needsChar: true, motion: intent.Motion{
			Movement: intent.MoveToChar, Direction: intent.DirLeft, Count: count, Register: reg,
		}}
	case 't':
		return motionOutcome{recognized: true, needsChar: true, motion: intent.Motion{
			Movement: intent.MoveTillChar, Direction: intent.DirRight, Count: count, Register: reg,
		}}
	case 'T':
		return motionOutcome{recognized: true, needsChar: true, motion: intent.Motion{
			Movement: intent.MoveTillChar, Direction: intent.DirLeft, Count: count, Register: reg,
		}}
	case ';':
		if !f.lastSearch.valid {
			return motionOutcome{}
		}
		return motionOutcome{recognized: true, motion: intent.Motion{
			Movement: f.lastSearch.movement, Direction: f.lastSearch.dir,
			Character: f.lastSearch.char, HasChar: true, Count: count, Register: reg,
		}}
	case ',':
		if !f.lastSearch.valid {
			return motionOutcome{}
		}
		return motionOutcome{recognized: true, motion: intent.Motion{
			Movement: f.lastSearch.movement, Direction: opposite(f.lastSearch.dir),
			Character: f.lastSearch.char, HasChar: true, Count: count, Register: reg,
		}}
	}
	return motionOutcome{}
}

func opposite(dir intent.Direction) intent.Direction {
	switch dir {
	case intent.DirLeft:
		return intent.DirRight
	case intent.DirRight:
		return intent.DirLeft
	default:
		return dir
	}
}

// applyBareMotion turns a resolved Motion into the intents for a plain
// (non-operator) cursor move: ActionMove in Normal, ActionHighlight in
// Visual (the highlight is extended, selection finalizes on the next
// operator key, not here).
func (f *FSM) applyBareMotion(m intent.Motion, visual bool) []intent.Intent {
	f.resetCount()
	f.takeRegister()
	action := intent.ActionMove
	if visual {
		action = intent.ActionHighlight
	}
	return []intent.Intent{intent.Edit(action, m)}
}

// applyPendingOperator applies the operator captured on entry to
// StateMovement to a now-resolved Motion, and returns the state to land
// in afterward (spec §4.3's movement_poststate).
func (f *FSM) applyPendingOperator(m intent.Motion) (State, []intent.Intent) {
	action := f.opAction
	post := f.opPoststate
	f.opPending = false
	f.resetCount()
	f.takeRegister()
	return post, []intent.Intent{intent.Edit(action, m)}
}
