// Package pane implements View and Pane: a chat room's input buffer bound
// to a backend room (spec §3 GLOSSARY "View"), and the jump-list of Views
// a single screen region cycles through (spec §4.6).
//
// Grounded in the teacher's init.go short-ID convention
// (uuid.New().String(), init.go:109) and app_context.go's owned-list
// pattern (Session.Windows []Window).
package pane

import (
	"github.com/google/uuid"

	"github.com/mmterm/mmterm/internal/backend"
	"github.com/mmterm/mmterm/internal/hist"
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/register"
	"github.com/mmterm/mmterm/internal/textbuffer"
)

// View is the composition of a chat room and the message-compose buffer
// bound to it. The chat log itself is rendered by the out-of-scope terminal
// back-end; View retains only what routing and register bookkeeping need.
type View struct {
	ID    string
	Room  backend.Room // nil for the lobby view
	Input *textbuffer.Buffer
}

// NewView constructs a View bound to room (nil for the lobby), with a
// fresh compose buffer backed by regs.
func NewView(room backend.Room, regs *register.Store, opts ...textbuffer.Option) *View {
	return &View{
		ID:    uuid.New().String(),
		Room:  room,
		Input: textbuffer.New(regs, "", opts...),
	}
}

// shortName is the value written into RegisterStore %/# for a View: the
// room's alias if it has one, else the bare ID (spec §4.6 "short name").
func (v *View) shortName() string {
	if v.Room != nil {
		if alias, ok := v.Room.Alias(); ok {
			return alias
		}
	}
	return v.ID
}

// Pane owns a jump-list of Views and delegates focus/cursor state to
// whichever one is current (spec §4.6, §3 "Pane").
type Pane struct {
	jumpList *hist.List[*View]
	regs     *register.Store
}

// DefaultJumpListSize bounds the jump list the way HistList bounds undo
// history; large enough that normal room-hopping never evicts entries.
const DefaultJumpListSize = 100

// New constructs a Pane seeded with initial, appending it to the jump list
// and setting RegisterStore '%' to its short name (spec §3 "Creating a
// Pane with initial view appends that view to the jump list and sets %/#").
func New(initial *View, regs *register.Store) *Pane {
	p := &Pane{
		jumpList: hist.NewWithSeed(DefaultJumpListSize, initial),
		regs:     regs,
	}
	regs.SetBufferName(initial.shortName())
	return p
}

// Current returns the focused View.
func (p *Pane) Current() *View { return p.jumpList.Current() }

// FocusView appends view to the jump list and makes it current (spec §4.6).
func (p *Pane) FocusView(view *View) {
	p.jumpList.Append(view)
}

// FocusHistory steps the jump-list cursor by count in dir (WinDirNext or
// WinDirPrevious), makes the resulting View current, and updates
// RegisterStore '%'/'#' to the new/old short names (spec §4.6).
func (p *Pane) FocusHistory(dir intent.WinDirection, count uint32) *View {
	old := p.jumpList.Current()
	k := int(count)
	if k == 0 {
		k = 1
	}
	var next *View
	switch dir {
	case intent.WinDirNext:
		next = p.jumpList.Next(k)
	case intent.WinDirPrevious:
		next = p.jumpList.Prev(k)
	default:
		return old
	}
	p.regs.SetBufferName(next.shortName())
	p.regs.SetAlternateBufferName(old.shortName())
	return next
}

// Clone deep-copies the jump list and current pointer, used by Window's
// hsplit so the new pane starts on the same view (spec §4.6 clone()).
func (p *Pane) Clone() *Pane {
	return &Pane{jumpList: p.jumpList.Clone(), regs: p.regs}
}
