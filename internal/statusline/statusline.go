// Package statusline implements StatusLine: a two-state display toggling
// between a transient message and a mode indicator (spec §4.8), driven by
// vifsm's mode-change callback (internal/vifsm.WithModeChangeFunc).
package statusline

import (
	"github.com/fatih/color"

	"github.com/mmterm/mmterm/internal/vifsm"
)

var bold = color.New(color.Bold)

// State is one variant of StatusLine's display.
type State int

const (
	StateMessage State = iota
	StateStatus
)

// StatusLine is C8 (spec §4.8).
type StatusLine struct {
	state State
	msg   string
	mode  vifsm.Mode
}

// New constructs a StatusLine in the message state with an empty message.
func New() *StatusLine {
	return &StatusLine{state: StateMessage}
}

// State reports the current display state.
func (s *StatusLine) State() State { return s.state }

// SetMessage displays msg in bold and switches to the message state,
// regardless of the current mode (spec §4.8 "message: displays an
// arbitrary transient string in bold").
func (s *StatusLine) SetMessage(msg string) {
	s.msg = msg
	s.state = StateMessage
}

// Message returns the currently displayed message, empty outside the
// message state.
func (s *StatusLine) Message() string {
	if s.state != StateMessage {
		return ""
	}
	return s.msg
}

// Rendered is what the draw surface actually writes for the message
// state: the text wrapped in bold SGR codes (spec §4.8 "displays an
// arbitrary transient string in bold"). Message stays plain for callers
// (like command.Execute's warn path) that only care about the text.
func (s *StatusLine) Rendered() string {
	if s.state != StateMessage || s.msg == "" {
		return ""
	}
	return bold.Sprint(s.msg)
}

// OnModeChange is the callback vifsm.WithModeChangeFunc expects: entering
// Normal returns to the message state with a cleared buffer; entering any
// other mode switches to the status state showing "-- MODE --"
// (spec §4.8).
func (s *StatusLine) OnModeChange(m vifsm.Mode) {
	s.mode = m
	if m == vifsm.ModeNormal {
		s.state = StateMessage
		s.msg = ""
		return
	}
	s.state = StateStatus
}

// Status returns the "-- MODE --" string the status state displays, empty
// outside the status state.
func (s *StatusLine) Status() string {
	if s.state != StateStatus {
		return ""
	}
	switch s.mode {
	case vifsm.ModeInsert:
		return "-- INSERT --"
	case vifsm.ModeReplace:
		return "-- REPLACE --"
	case vifsm.ModeVisual:
		return "-- VISUAL --"
	default:
		return ""
	}
}
