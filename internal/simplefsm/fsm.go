// Package simplefsm implements SimpleInputFSM: the readline-style keymap
// for the single-line command bar (spec §4.4). It reuses the same
// intent.Intent vocabulary ViInputFSM emits, so TextBuffer needs no
// special casing for which FSM produced an edit.
//
// Grounded in the same re-architecture as internal/vifsm (spec Design
// Notes §9): an enum of State variants, each with its own handle method,
// rather than the teacher's mode-int switch.
package simplefsm

import (
	"github.com/sirupsen/logrus"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/keys"
)

// State is one variant of the command-bar input state machine.
type State int

const (
	StateWaiting State = iota
	StatePaste
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePaste:
		return "paste"
	default:
		return "unknown"
	}
}

// FSM is SimpleInputFSM.
type FSM struct {
	state State
	log   *logrus.Logger
}

// Option configures an FSM at construction.
type Option func(*FSM)

// WithLogger attaches a structured logger, used to trace unhandled keys.
func WithLogger(log *logrus.Logger) Option {
	return func(f *FSM) { f.log = log }
}

// New constructs an FSM in StateWaiting.
func New(opts ...Option) *FSM {
	f := &FSM{state: StateWaiting}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State reports the current state, mostly useful for tests.
func (f *FSM) State() State { return f.state }

// Handle decodes one key event, returning the intents to dispatch.
func (f *FSM) Handle(ev keys.Event) []intent.Intent {
	var next State
	var out []intent.Intent
	switch f.state {
	case StatePaste:
		next, out = f.handlePaste(ev)
	default:
		next, out = f.handleWaiting(ev)
	}
	f.state = next
	return out
}

func (f *FSM) unknownKey(ev keys.Event) []intent.Intent {
	if f.log != nil {
		f.log.WithField("event", ev).Debug("simplefsm: unhandled key")
	}
	return nil
}
