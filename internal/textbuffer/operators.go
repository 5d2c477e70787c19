package textbuffer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/register"
)

var (
	caseUpper = cases.Upper(language.Und)
	caseLower = cases.Lower(language.Und)
)

// registerOrUnnamed resolves the zero value of intent.RegisterName to the
// unnamed register.
func registerOrUnnamed(r intent.RegisterName) register.Name {
	if r == 0 {
		return register.Unnamed
	}
	return register.Name(r)
}

// applyEdit implements spec §4.5's operator table for move/highlight/
// delete/yank/erase/togglecase/uppercase/lowercase. It does not snapshot
// history itself: the FSM tracks checkpoint_pending for mutating intents
// and emits a KindCheckpoint on return to normal, which Dispatch routes to
// Checkpoint. Any edit whose motion resolves resets completion state.
func (b *Buffer) applyEdit(action intent.ActionKind, m intent.Motion) *intent.Intent {
	res := b.resolveMotion(m)
	if !res.ok {
		return nil // OutOfRangeMotion: silently abandoned, state untouched (spec §7)
	}
	b.resetCompletion()

	rng := deriveRange(b.cursor, res.target, m)
	if m.Movement == intent.MoveLine && (m.Direction == intent.DirUp || m.Direction == intent.DirDown) {
		rng = textRange{0, len(b.value)}
	}
	rng = clampRange(rng, len(b.value))

	switch action {
	case intent.ActionMove, intent.ActionHighlight:
		b.cursor = res.target
		return nil
	case intent.ActionDelete:
		b.deleteRange(rng, m.Register)
		return nil
	case intent.ActionYank:
		b.yankRange(rng, m.Register)
		return nil
	case intent.ActionErase:
		b.eraseRange(rng)
		return nil
	case intent.ActionTogglecase:
		b.transformRange(rng, toggleCase)
		return nil
	case intent.ActionUppercase:
		b.transformRange(rng, func(s string) string { return caseUpper.String(s) })
		return nil
	case intent.ActionLowercase:
		b.transformRange(rng, func(s string) string { return caseLower.String(s) })
		return nil
	case intent.ActionReplace:
		b.replaceRangeWithChar(rng, m.Character)
		return nil
	default:
		return nil
	}
}

func clampRange(r textRange, n int) textRange {
	if r.start < 0 {
		r.start = 0
	}
	if r.end > n {
		r.end = n
	}
	if r.end < r.start {
		r.end = r.start
	}
	return r
}

func toggleCase(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			out = append(out, unicode.ToLower(r))
		case unicode.IsLower(r):
			out = append(out, unicode.ToUpper(r))
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func (b *Buffer) spliceOut(rng textRange) string {
	cut := string(b.value[rng.start:rng.end])
	b.value = append(b.value[:rng.start:rng.start], b.value[rng.end:]...)
	return cut
}

func (b *Buffer) deleteRange(rng textRange, regName intent.RegisterName) {
	cut := b.spliceOut(rng)
	b.registers.Update(register.ActionDelete, registerOrUnnamed(regName), cut)
	b.cursor = Cursor{X: rng.start}
	b.resetCompletion()
}

func (b *Buffer) yankRange(rng textRange, regName intent.RegisterName) {
	text := string(b.value[rng.start:rng.end])
	b.registers.Update(register.ActionYank, registerOrUnnamed(regName), text)
	b.cursor = Cursor{X: rng.start}
}

// eraseRange implements the REPLACE-mode backspace operator: every index
// in the range is restored from the last checkpointed snapshot if it
// existed there, else deleted outright (spec §4.5).
func (b *Buffer) eraseRange(rng textRange) {
	prevRunes := []rune(b.prev)
	var rebuilt []rune
	rebuilt = append(rebuilt, b.value[:rng.start]...)
	for i := rng.start; i < rng.end; i++ {
		if i < len(prevRunes) {
			rebuilt = append(rebuilt, prevRunes[i])
		}
	}
	rebuilt = append(rebuilt, b.value[rng.end:]...)
	b.value = rebuilt
	b.cursor = Cursor{X: rng.start}
	b.resetCompletion()
}

// replaceRangeWithChar overwrites every position in rng with ch, used by
// the visual-mode replace operator (a whole-selection variant of 'r').
func (b *Buffer) replaceRangeWithChar(rng textRange, ch rune) {
	for i := rng.start; i < rng.end; i++ {
		b.value[i] = ch
	}
	b.cursor = Cursor{X: rng.start}
	b.resetCompletion()
}

func (b *Buffer) transformRange(rng textRange, f func(string) string) {
	if rng.start >= rng.end {
		return
	}
	transformed := []rune(f(string(b.value[rng.start:rng.end])))
	rebuilt := append([]rune{}, b.value[:rng.start]...)
	rebuilt = append(rebuilt, transformed...)
	rebuilt = append(rebuilt, b.value[rng.end:]...)
	b.value = rebuilt
	b.resetCompletion()
}

// typeChar inserts a single rune at the cursor and advances past it
// (KindType).
func (b *Buffer) typeChar(ch rune) {
	b.insertAt(b.cursor.X, string(ch))
	b.cursor.X++
	b.registers.SetLastInsert(string(ch))
	b.resetCompletion()
	b.clampScroll()
}

func (b *Buffer) insertAt(pos int, s string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.value) {
		pos = len(b.value)
	}
	ins := []rune(s)
	rebuilt := append([]rune{}, b.value[:pos]...)
	rebuilt = append(rebuilt, ins...)
	rebuilt = append(rebuilt, b.value[pos:]...)
	b.value = rebuilt
}

// applyReplace implements both r (typing=false, overwrites count chars
// forward) and REPLACE-mode typing (typing=true, always writes at least
// one character even at end-of-line) per spec §4.5.
func (b *Buffer) applyReplace(ch rune, typing bool, m intent.Motion) *intent.Intent {
	if typing {
		if b.cursor.X < len(b.value) {
			b.value[b.cursor.X] = ch
		} else {
			b.value = append(b.value, ch)
		}
		b.cursor.X++
		b.resetCompletion()
		b.clampScroll()
		return nil
	}

	count := int(m.Count)
	if count < 1 {
		count = 1
	}
	if b.cursor.X+count > len(b.value) {
		return warnPtr("Not enough characters to replace")
	}
	for i := 0; i < count; i++ {
		b.value[b.cursor.X+i] = ch
	}
	b.resetCompletion()
	return nil
}

// applyPaste implements spec §4.5 paste(before|after, reg, count).
func (b *Buffer) applyPaste(side intent.PasteSide, regName intent.RegisterName, count uint32) *intent.Intent {
	reg := registerOrUnnamed(regName)
	if reg == register.Blackhole {
		return nil
	}
	content, ok := b.registers.Get(reg)
	if !ok || content == "" {
		return warnPtr("Nothing in register %s", string(rune(reg)))
	}
	if count < 1 {
		count = 1
	}
	text := strings.Repeat(content, int(count))

	pos := b.cursor.X
	if side == intent.PasteAfter {
		pos = b.cursor.X + 1
		if pos > len(b.value) {
			pos = len(b.value)
		}
	}
	b.insertAt(pos, text)

	n := len([]rune(text))
	end := pos + n
	if side == intent.PasteBefore {
		end--
	}
	if end < 0 {
		end = 0
	}
	b.cursor.X = end
	b.resetCompletion()
	b.clampScroll()
	return nil
}

// warnPtr builds a KindWarn intent and returns its address in one step.
func warnPtr(format string, args ...any) *intent.Intent {
	w := intent.Warn(format, args...)
	return &w
}
