// Package intent defines the semantic editing vocabulary emitted by the
// input finite state machines (ViInputFSM, SimpleInputFSM) and consumed by
// TextBuffer, Window, and StatusLine. An Intent is a tagged union: Kind
// selects which of the payload fields are meaningful.
package intent

import "fmt"

// Direction is the spatial or logical direction of a motion, scroll, focus
// change, or window action.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	DirFirstWord
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirFirstWord:
		return "first-word"
	default:
		return "none"
	}
}

// MovementKind identifies the shape of a Motion's target.
type MovementKind int

const (
	MoveChar MovementKind = iota
	MoveWordBegin
	MoveWordEnd
	MoveLine
	MoveToChar
	MoveTillChar
	MoveHighlight
)

// ActionKind is the operator a Motion is applied under.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionHighlight
	ActionDelete
	ActionYank
	ActionPaste
	ActionErase
	ActionTogglecase
	ActionUppercase
	ActionLowercase
	ActionReplace
)

func (a ActionKind) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionHighlight:
		return "highlight"
	case ActionDelete:
		return "delete"
	case ActionYank:
		return "yank"
	case ActionPaste:
		return "paste"
	case ActionErase:
		return "erase"
	case ActionTogglecase:
		return "togglecase"
	case ActionUppercase:
		return "uppercase"
	case ActionLowercase:
		return "lowercase"
	case ActionReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// RegisterName is a single-character register selector. The zero value
// is the "unspecified" register, which TextBuffer resolves to '"'.
type RegisterName rune

// Motion fully describes a cursor target or operator operand.
type Motion struct {
	Movement  MovementKind
	Direction Direction
	Character rune // target of to-char/till-char; zero if unused
	HasChar   bool
	Count     uint32 // always >= 1
	Register  RegisterName
}

// PasteSide selects where paste(before|after) inserts relative to cursor.
type PasteSide int

const (
	PasteBefore PasteSide = iota
	PasteAfter
)

// ScrollKind distinguishes the granularity of a scroll intent.
type ScrollKind int

const (
	ScrollScreen ScrollKind = iota
	ScrollLine
	ScrollChar
	ScrollTop
	ScrollBottom
)

// FocusTarget selects what a focus intent redirects input to.
type FocusTarget int

const (
	FocusCommand FocusTarget = iota
	FocusLobby
	FocusWindow
	FocusHistory
)

// WinDirection is the richer direction vocabulary Window.focus_* operations
// need (spec §4.7), a superset of the plain Direction used by motions.
type WinDirection int

const (
	WinDirNone WinDirection = iota
	WinDirNext
	WinDirPrevious
	WinDirTop
	WinDirBottom
	WinDirUp
	WinDirDown
	WinDirLeft
	WinDirRight
	WinDirZoom
)

// WindowAction identifies a Window-directed intent's operation.
type WindowAction int

const (
	WinSplit WindowAction = iota
	WinResize
	WinRotate
)

// Kind discriminates which Intent fields are populated.
type Kind int

const (
	KindClamp Kind = iota
	KindCheckpoint
	KindEnterHighlight
	KindExitHighlight
	KindEdit
	KindType
	KindReplace
	KindPaste
	KindScroll
	KindMark
	KindLinejump
	KindCharjump
	KindFocus
	KindWindow
	KindSubmit
	KindClear
	KindSuspend
	KindRefresh
	KindComplete
	KindUndo
	KindRedo
	KindWarn
	KindSwitch
)

// Intent is the single discriminated-union value emitted by an input FSM
// and dispatched, field by field, onto a handler (TextBuffer, Window,
// StatusLine, ...). Direct method dispatch on the Kind replaces the
// teacher's callback/event-emitter fan-out (see Design Notes in SPEC_FULL).
type Intent struct {
	Kind Kind

	// KindEdit
	Action ActionKind
	Motion Motion

	// KindType, KindReplace (typed char), KindMark, KindLinejump, KindCharjump
	Char rune

	// KindReplace
	Typing bool

	// KindPaste
	PasteSide PasteSide
	Register  RegisterName
	Count     uint32

	// KindScroll
	ScrollDirection Direction
	ScrollKind      ScrollKind

	// KindFocus
	FocusTarget    FocusTarget
	FocusDirection Direction
	WinDirection   WinDirection // meaningful when FocusTarget == FocusWindow
	HasFocusCount  bool
	FocusCount     uint32

	// KindWindow
	WindowAction    WindowAction
	WindowDirection Direction

	// KindComplete
	CompleteDirection Direction

	// KindUndo, KindRedo
	StepCount uint32

	// KindWarn
	Message string
}

// Edit builds a KindEdit intent.
func Edit(action ActionKind, m Motion) Intent {
	return Intent{Kind: KindEdit, Action: action, Motion: m}
}

// Type builds a KindType intent.
func Type(ch rune) Intent {
	return Intent{Kind: KindType, Char: ch}
}

// Replace builds a KindReplace intent.
func Replace(ch rune, typing bool, m Motion) Intent {
	return Intent{Kind: KindReplace, Char: ch, Typing: typing, Motion: m}
}

// Paste builds a KindPaste intent.
func Paste(side PasteSide, reg RegisterName, count uint32) Intent {
	return Intent{Kind: KindPaste, PasteSide: side, Register: reg, Count: count}
}

// Warn builds a KindWarn intent.
func Warn(format string, args ...any) Intent {
	return Intent{Kind: KindWarn, Message: fmt.Sprintf(format, args...)}
}

// Clamp, Checkpoint, Submit, Clear, Suspend, Refresh, Switch are the
// argument-less intents.
func Clamp() Intent      { return Intent{Kind: KindClamp} }
func Switch() Intent     { return Intent{Kind: KindSwitch} }
func Checkpoint() Intent { return Intent{Kind: KindCheckpoint} }
func Submit() Intent     { return Intent{Kind: KindSubmit} }
func Clear() Intent      { return Intent{Kind: KindClear} }
func Suspend() Intent    { return Intent{Kind: KindSuspend} }
func Refresh() Intent    { return Intent{Kind: KindRefresh} }

// EnterHighlight and ExitHighlight drive TextBuffer's highlight_anchor
// (spec §3 invariant 4) on VISUAL mode entry/exit.
func EnterHighlight() Intent { return Intent{Kind: KindEnterHighlight} }
func ExitHighlight() Intent  { return Intent{Kind: KindExitHighlight} }

// Undo/Redo build their respective intents.
func Undo(count uint32) Intent { return Intent{Kind: KindUndo, StepCount: count} }
func Redo(count uint32) Intent { return Intent{Kind: KindRedo, StepCount: count} }

// Complete builds a KindComplete intent; direction is DirRight for "next"
// and DirLeft for "previous" by convention of the ring in TextBuffer.
func Complete(direction Direction) Intent {
	return Intent{Kind: KindComplete, CompleteDirection: direction}
}

// Mark, Linejump, Charjump build their single-character intents; ch is
// already lowercase-folded by the FSM per spec §4.3.
func Mark(ch rune) Intent     { return Intent{Kind: KindMark, Char: ch} }
func Linejump(ch rune) Intent { return Intent{Kind: KindLinejump, Char: ch} }
func Charjump(ch rune) Intent { return Intent{Kind: KindCharjump, Char: ch} }

// Focus builds a KindFocus intent targeting the command bar, lobby, or
// the pane's jump list of previously shown views.
func Focus(target FocusTarget, dir Direction, count uint32, hasCount bool) Intent {
	return Intent{Kind: KindFocus, FocusTarget: target, FocusDirection: dir, FocusCount: count, HasFocusCount: hasCount}
}

// FocusPane builds a KindFocus intent targeting pane focus (spec §4.7):
// next/previous/top/bottom/up/down/left/right/zoom.
func FocusPane(dir WinDirection, count uint32, hasCount bool) Intent {
	return Intent{Kind: KindFocus, FocusTarget: FocusWindow, WinDirection: dir, FocusCount: count, HasFocusCount: hasCount}
}

// Window builds a KindWindow intent.
func Window(action WindowAction, dir Direction, count uint32) Intent {
	return Intent{Kind: KindWindow, WindowAction: action, WindowDirection: dir, StepCount: count}
}

// Scroll builds a KindScroll intent.
func Scroll(dir Direction, kind ScrollKind, count uint32) Intent {
	return Intent{Kind: KindScroll, ScrollDirection: dir, ScrollKind: kind, StepCount: count}
}
