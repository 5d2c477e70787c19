// Package vifsm implements ViInputFSM: the vi keymap that turns terminal
// key events into the intent.Intent stream TextBuffer and Window consume.
//
// The teacher's govim engine (vim/govim/input.go, engine.go) dispatches on
// a single integer mode field inside one large GoEngine struct, growing one
// big switch per keystroke. Per the re-architecture called for here, the
// same key-to-intent mapping is instead expressed as an enum of State
// variants, each with its own handle function returning the next state and
// the intents to emit, so the state machine is exhaustive by construction
// rather than by convention.
package vifsm

import (
	"github.com/sirupsen/logrus"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// State is one variant of the vi input state machine (spec §4.3).
type State int

const (
	StateNormal State = iota
	StateInsert
	StateReplace
	StateVisual
	StateMovement
	StateGoto
	StateCharSearch
	StateMark
	StateLinejump
	StateCharjump
	StateRegister
	StateWincmd
	StateCharReplace
	StateVisReplace
	StatePaste
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateInsert:
		return "insert"
	case StateReplace:
		return "replace"
	case StateVisual:
		return "visual"
	case StateMovement:
		return "movement"
	case StateGoto:
		return "goto"
	case StateCharSearch:
		return "charsearch"
	case StateMark:
		return "mark"
	case StateLinejump:
		return "linejump"
	case StateCharjump:
		return "charjump"
	case StateRegister:
		return "register"
	case StateWincmd:
		return "wincmd"
	case StateCharReplace:
		return "charreplace"
	case StateVisReplace:
		return "visreplace"
	case StatePaste:
		return "paste"
	default:
		return "unknown"
	}
}

// Mode is the coarse display mode StatusLine cares about. Several States
// are sub-states of Mode: goto/charsearch/mark/.../wincmd/register are all
// transient sub-states of Normal, since vi shows no special status line
// while a multi-key command is pending.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeReplace
	ModeVisual
)

func modeOf(s State) Mode {
	switch s {
	case StateInsert, StatePaste:
		return ModeInsert
	case StateReplace:
		return ModeReplace
	case StateVisual, StateVisReplace:
		return ModeVisual
	default:
		return ModeNormal
	}
}

// charSearchParams remembers the last to-char/till-char invocation so that
// ';' and ',' can repeat it (spec §4.3).
type charSearchParams struct {
	movement intent.MovementKind
	dir      intent.Direction
	char     rune
	valid    bool
}

// FSM is ViInputFSM. It carries no reference to TextBuffer or Window: it
// only ever produces intent.Intent values for a caller to dispatch, per the
// "shared mutable program object" re-architecture (spec Design Notes §9).
type FSM struct {
	state State

	count uint32 // accumulating decimal prefix; 0 means "unspecified"

	register    intent.RegisterName
	hasRegister bool

	// Pending operator state, set on entry to StateMovement by y/d/c and
	// consumed once the operand motion resolves.
	opPending   bool
	opAction    intent.ActionKind
	opPoststate State
	opChar      rune // the operator key itself, to detect doubled keys (dd, yy)

	// Pending charsearch state, set on entry to StateCharSearch by f/F/t/T
	// and consumed once the target character arrives.
	csMovement  intent.MovementKind
	csDir       intent.Direction
	csForVisual bool // true if charsearch was entered from StateVisual

	lastSearch charSearchParams

	// Pending replace-by-count state (StateCharReplace), set by 'r'.
	replaceCount uint32

	// registerReturn is the state StateRegister returns to once a register
	// name is consumed (Normal, Movement, or Visual all use '"').
	registerReturn State

	// pasteReturn is the state StatePaste returns to (Insert or Replace).
	pasteReturn State

	checkpointPending bool

	mode Mode

	log          *logrus.Logger
	onModeChange func(Mode)
}

// Option configures an FSM at construction.
type Option func(*FSM)

// WithLogger attaches a structured logger, used to trace unhandled keys at
// Debug level.
func WithLogger(log *logrus.Logger) Option {
	return func(f *FSM) { f.log = log }
}

// WithModeChangeFunc registers a callback invoked whenever the FSM's Mode
// changes, driving StatusLine's message/status toggling (spec §4.8).
func WithModeChangeFunc(fn func(Mode)) Option {
	return func(f *FSM) { f.onModeChange = fn }
}

// New constructs an FSM in StateNormal.
func New(opts ...Option) *FSM {
	f := &FSM{state: StateNormal, mode: ModeNormal}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State reports the current sub-state, mostly useful for tests.
func (f *FSM) State() State { return f.state }

// Mode reports the coarse display mode.
func (f *FSM) Mode() Mode { return f.mode }

// effectiveCount returns f.count, or 1 if unspecified.
func (f *FSM) effectiveCount() uint32 {
	if f.count == 0 {
		return 1
	}
	return f.count
}

// takeRegister returns the selected register (or the zero value, which
// TextBuffer resolves to unnamed) and resets selection, per spec §4.3
// "register: optional selected register; reset to None after each action".
func (f *FSM) takeRegister() intent.RegisterName {
	r := f.register
	f.register = 0
	f.hasRegister = false
	return r
}

// resetCount clears the accumulating decimal prefix after it has been
// consumed by an action.
func (f *FSM) resetCount() { f.count = 0 }

// Handle decodes one key event in the FSM's current state, returning the
// intents to dispatch. It is the single entry point a caller needs.
func (f *FSM) Handle(ev keys.Event) []intent.Intent {
	next, out := f.dispatch(ev)
	out = markCheckpointPending(out, &f.checkpointPending)

	if next != f.state {
		f.setState(next)
	}
	if next == StateNormal {
		out = append(out, intent.Clamp())
		if f.checkpointPending {
			out = append(out, intent.Checkpoint())
			f.checkpointPending = false
		}
	}
	return out
}

// setState transitions the FSM and fires the mode-change callback if the
// coarse Mode actually changed.
func (f *FSM) setState(next State) {
	prevMode := f.mode
	f.state = next
	f.mode = modeOf(next)
	if f.mode != prevMode && f.onModeChange != nil {
		f.onModeChange(f.mode)
	}
}

// markCheckpointPending sets *pending when intents contain a kind that
// dirties the buffer and therefore requires a checkpoint on the next
// return to normal.
func markCheckpointPending(intents []intent.Intent, pending *bool) []intent.Intent {
	for _, in := range intents {
		switch in.Kind {
		case intent.KindType, intent.KindReplace, intent.KindPaste, intent.KindUndo, intent.KindRedo:
			*pending = true
		case intent.KindEdit:
			if in.Action != intent.ActionMove && in.Action != intent.ActionHighlight {
				*pending = true
			}
		}
	}
	return intents
}

// dispatch routes ev to the handler for the current state.
func (f *FSM) dispatch(ev keys.Event) (State, []intent.Intent) {
	switch f.state {
	case StateNormal:
		return f.handleNormal(ev)
	case StateInsert:
		return f.handleInsert(ev)
	case StateReplace:
		return f.handleReplace(ev)
	case StateVisual:
		return f.handleVisual(ev)
	case StateMovement:
		return f.handleMovement(ev)
	case StateGoto:
		return f.handleGoto(ev)
	case StateCharSearch:
		return f.handleCharSearch(ev)
	case StateMark:
		return f.handleMark(ev)
	case StateLinejump:
		return f.handleLinejump(ev)
	case StateCharjump:
		return f.handleCharjump(ev)
	case StateRegister:
		return f.handleRegister(ev)
	case StateWincmd:
		return f.handleWincmd(ev)
	case StateCharReplace:
		return f.handleCharReplace(ev)
	case StateVisReplace:
		return f.handleVisReplace(ev)
	case StatePaste:
		return f.handlePaste(ev)
	default:
		return StateNormal, nil
	}
}

func warn(format string, args ...any) []intent.Intent {
	return []intent.Intent{intent.Warn(format, args...)}
}
