// Package textbuffer implements TextBuffer: the single-line editable
// buffer that interprets the intent vocabulary (spec §3, §4.5) into motion
// resolution, operator application, register and history integration,
// tab-completion, and character-wise replace.
//
// The algorithms are grounded in the teacher's govim buffer
// (vim/govim/buffer.go, normal_mode_motion.go) generalized from vim's
// multi-line row model down to the spec's single logical line, and
// enriched with real Unicode-aware stepping (mattn/go-runewidth,
// rivo/uniseg) where the teacher's byte-indexed Go strings would silently
// mishandle combining marks and wide glyphs.
package textbuffer

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"

	"github.com/mmterm/mmterm/internal/hist"
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/register"
)

// Cursor is a position in the buffer. Y is always 0 for this single-line
// buffer but is preserved per spec §3 to keep the model extensible.
type Cursor struct {
	X, Y int
}

// Completer returns candidate completion suffixes for stem. It is
// injected by the host (e.g. room/user-name completion) and is the only
// point where TextBuffer reaches outside its own state.
type Completer func(stem string) []string

type completionState struct {
	options         []string
	index           int // len(options) means "no completion" / original text
	active          bool
	originalText    string
	originalCursor  Cursor
	stem            string
}

// Buffer is the single-line editable text buffer of spec §4.5.
type Buffer struct {
	value           []rune
	cursor          Cursor
	start           Cursor
	highlightAnchor *Cursor

	history *hist.List[string]
	prev    string

	completion completionState

	registers *register.Store
	completer Completer
	cache     *ttlcache.Cache[string, []string]
	log       *logrus.Logger

	visibleWidth int
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithCompleter injects the completion source.
func WithCompleter(c Completer) Option {
	return func(b *Buffer) { b.completer = c }
}

// WithLogger attaches a logger; a default logrus.New() logger is used if
// omitted.
func WithLogger(l *logrus.Logger) Option {
	return func(b *Buffer) { b.log = l }
}

// WithVisibleWidth sets the horizontal scroll window width (spec §3
// invariant 2). Defaults to 80.
func WithVisibleWidth(w int) Option {
	return func(b *Buffer) { b.visibleWidth = w }
}

// WithHistorySize overrides the default undo-history depth of 1000.
func WithHistorySize(n int) Option {
	return func(b *Buffer) {
		b.history = hist.NewWithSeed(n, "")
	}
}

// New constructs a Buffer bound to regs, seeded with initial content.
func New(regs *register.Store, initial string, opts ...Option) *Buffer {
	b := &Buffer{
		value:        []rune(initial),
		registers:    regs,
		history:      hist.NewWithSeed(1000, initial),
		prev:         initial,
		visibleWidth: 80,
		log:          logrus.New(),
		cache: ttlcache.New[string, []string](
			ttlcache.WithTTL[string, []string](2 * time.Second),
		),
	}
	b.completion.index = 0
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Value returns the buffer's current content.
func (b *Buffer) Value() string { return string(b.value) }

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Cursor { return b.cursor }

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.value) }

// HighlightAnchor reports the visual-mode selection anchor, if any.
func (b *Buffer) HighlightAnchor() (Cursor, bool) {
	if b.highlightAnchor == nil {
		return Cursor{}, false
	}
	return *b.highlightAnchor, true
}

// EnterHighlight sets the anchor at the current cursor (spec §3 invariant
// 4: highlight_anchor.is_some() iff the owning FSM is in VISUAL mode).
func (b *Buffer) EnterHighlight() {
	c := b.cursor
	b.highlightAnchor = &c
}

// ExitHighlight clears the anchor without otherwise touching state.
func (b *Buffer) ExitHighlight() {
	b.highlightAnchor = nil
}

// Clamp implements spec §4.5 Clamp: on exit from INSERT/REPLACE/VISUAL, if
// cursor.x == len and len > 0 the cursor steps back one; if len == 0 the
// cursor goes to 0; the highlight anchor is cleared.
func (b *Buffer) Clamp() {
	n := len(b.value)
	if n == 0 {
		b.cursor.X = 0
	} else if b.cursor.X >= n {
		b.cursor.X = n - 1
	}
	b.highlightAnchor = nil
	b.clampScroll()
}

// clampScroll maintains invariant 2: the cursor stays within a window of
// visibleWidth display cells starting at start.x. The window is measured
// in terminal cells, not rune counts, so a line of wide CJK glyphs scrolls
// sooner than the same rune count of Latin text would.
func (b *Buffer) clampScroll() {
	if b.cursor.X < b.start.X {
		b.start.X = b.cursor.X
	}
	if b.visibleWidth > 0 {
		for b.cellWidth(b.start.X, b.cursor.X) >= b.visibleWidth {
			b.start.X++
		}
	}
	if b.start.X < 0 {
		b.start.X = 0
	}
}

// cellWidth measures the display width, in terminal cells, of the runes
// in [from, to).
func (b *Buffer) cellWidth(from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(b.value) {
		to = len(b.value)
	}
	if from >= to {
		return 0
	}
	return displayWidth(string(b.value[from:to]))
}

// Checkpoint implements the checkpoint policy of spec §4.5: if the value
// differs from the last snapshot, push it onto history and update prev.
func (b *Buffer) Checkpoint() {
	cur := string(b.value)
	if cur != b.prev {
		b.history.Append(cur)
		b.prev = cur
	}
}

// Undo sets value to the k-th previous history snapshot.
func (b *Buffer) Undo(k uint32) {
	if k == 0 {
		k = 1
	}
	v := b.history.Prev(int(k))
	b.setValueFromHistory(v)
}

// Redo sets value to the k-th next history snapshot.
func (b *Buffer) Redo(k uint32) {
	if k == 0 {
		k = 1
	}
	v := b.history.Next(int(k))
	b.setValueFromHistory(v)
}

func (b *Buffer) setValueFromHistory(v string) {
	b.value = []rune(v)
	b.prev = v
	if b.cursor.X > len(b.value) {
		b.cursor.X = len(b.value)
	}
	b.resetCompletion()
}

// Dispatch is the single entry point TextBuffer exposes to its callers:
// apply one intent and return any warning it produced. This is the
// direct-method-dispatch replacement for the teacher's event-emitter fan
// out (see Design Notes, SPEC_FULL "Event-emitter fan-out").
func (b *Buffer) Dispatch(in intent.Intent) *intent.Intent {
	switch in.Kind {
	case intent.KindEdit:
		return b.applyEdit(in.Action, in.Motion)
	case intent.KindType:
		b.typeChar(in.Char)
		return nil
	case intent.KindReplace:
		return b.applyReplace(in.Char, in.Typing, in.Motion)
	case intent.KindPaste:
		return b.applyPaste(in.PasteSide, in.Register, in.Count)
	case intent.KindClamp:
		b.Clamp()
		return nil
	case intent.KindEnterHighlight:
		b.EnterHighlight()
		return nil
	case intent.KindExitHighlight:
		b.ExitHighlight()
		return nil
	case intent.KindCheckpoint:
		b.Checkpoint()
		return nil
	case intent.KindUndo:
		b.Undo(in.StepCount)
		return nil
	case intent.KindRedo:
		b.Redo(in.StepCount)
		return nil
	case intent.KindComplete:
		return b.applyComplete(in.CompleteDirection)
	default:
		return nil
	}
}
