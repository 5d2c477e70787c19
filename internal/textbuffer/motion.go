package textbuffer

import (
	"github.com/mmterm/mmterm/internal/intent"
)

// class is one of the three character classes spec §4.5 defines for
// word-begin/word-end motion resolution.
type class int

const (
	classWhitespace class = iota
	classWord
	classKeyword
)

func classify(r rune) class {
	switch {
	case r == ' ' || r == '\t':
		return classWhitespace
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
		return classWord
	default:
		return classKeyword
	}
}

// resolveResult is the outcome of resolving a Motion from a starting
// cursor: either a target cursor, or failure (to-char/till-char with
// fewer than count matches — spec §4.5, the motion is "abandoned").
type resolveResult struct {
	target Cursor
	ok     bool
}

// resolveMotion computes the target cursor for m starting at b.cursor,
// without mutating buffer state.
func (b *Buffer) resolveMotion(m intent.Motion) resolveResult {
	count := int(m.Count)
	if count < 1 {
		count = 1
	}

	switch m.Movement {
	case intent.MoveChar:
		return b.resolveChar(m.Direction, count)
	case intent.MoveLine:
		return b.resolveLine(m.Direction)
	case intent.MoveWordBegin:
		return b.resolveWordBegin(m.Direction, count)
	case intent.MoveWordEnd:
		return b.resolveWordEnd(m.Direction, count)
	case intent.MoveToChar:
		return b.resolveCharSearch(m.Direction, m.Character, count, false)
	case intent.MoveTillChar:
		return b.resolveCharSearch(m.Direction, m.Character, count, true)
	case intent.MoveHighlight:
		if b.highlightAnchor == nil {
			return resolveResult{}
		}
		return resolveResult{target: *b.highlightAnchor, ok: true}
	default:
		return resolveResult{}
	}
}

func (b *Buffer) resolveChar(dir intent.Direction, count int) resolveResult {
	x := b.cursor.X
	switch dir {
	case intent.DirLeft:
		x = stepGraphemes(b.value, x, count, false)
	case intent.DirRight:
		x = stepGraphemes(b.value, x, count, true)
	default:
		return resolveResult{}
	}
	return resolveResult{target: Cursor{X: x}, ok: true}
}

func (b *Buffer) resolveLine(dir intent.Direction) resolveResult {
	switch dir {
	case intent.DirLeft:
		return resolveResult{target: Cursor{X: 0}, ok: true}
	case intent.DirRight:
		return resolveResult{target: Cursor{X: len(b.value)}, ok: true}
	case intent.DirFirstWord:
		for i, r := range b.value {
			if classify(r) != classWhitespace {
				return resolveResult{target: Cursor{X: i}, ok: true}
			}
		}
		return resolveResult{target: Cursor{X: 0}, ok: true}
	default:
		// DirUp/DirDown ("dd"-style whole-line operand): the cursor does
		// not move, the operator applies to the whole line (spec §4.5
		// "line direction up/down: whole-line range [0, len)").
		return resolveResult{target: b.cursor, ok: true}
	}
}

// isWordBeginTransition reports whether position i is a word-begin
// boundary: the class of value[i-1] differs from the class of value[i] in
// one of word<->keyword, whitespace->word, whitespace->keyword (spec
// §4.5).
func isWordBeginTransition(prev, cur class) bool {
	if prev == cur {
		return false
	}
	if cur == classWhitespace {
		return false
	}
	return true
}

func (b *Buffer) resolveWordBegin(dir intent.Direction, count int) resolveResult {
	n := len(b.value)
	x := b.cursor.X
	if dir == intent.DirRight {
		for c := 0; c < count; c++ {
			moved := false
			for i := x + 1; i <= n; i++ {
				if i == n {
					x = n
					moved = true
					break
				}
				if isWordBeginTransition(classify(b.value[i-1]), classify(b.value[i])) {
					x = i
					moved = true
					break
				}
			}
			if !moved {
				x = n
				break
			}
			if x == n {
				break
			}
		}
		return resolveResult{target: Cursor{X: x}, ok: true}
	}
	// leftward (b motion)
	for c := 0; c < count; c++ {
		if x == 0 {
			break
		}
		moved := false
		for i := x - 1; i > 0; i-- {
			if isWordBeginTransition(classify(b.value[i-1]), classify(b.value[i])) {
				x = i
				moved = true
				break
			}
		}
		if !moved {
			x = 0
		}
	}
	return resolveResult{target: Cursor{X: x}, ok: true}
}

// isWordEndTransition mirrors isWordBeginTransition on the right side of
// the boundary: position i is a word-end if class(value[i]) differs from
// class(value[i+1]) and value[i]'s class is not whitespace.
func isWordEndTransition(cur, next class) bool {
	if cur == next {
		return false
	}
	if cur == classWhitespace {
		return false
	}
	return true
}

func (b *Buffer) resolveWordEnd(dir intent.Direction, count int) resolveResult {
	n := len(b.value)
	if n == 0 {
		return resolveResult{target: Cursor{X: 0}, ok: true}
	}
	x := b.cursor.X
	if dir == intent.DirRight {
		for c := 0; c < count; c++ {
			moved := false
			for i := x + 1; i < n-1; i++ {
				if isWordEndTransition(classify(b.value[i]), classify(b.value[i+1])) {
					x = i
					moved = true
					break
				}
			}
			if !moved {
				x = n - 1
				break
			}
		}
		return resolveResult{target: Cursor{X: x}, ok: true}
	}
	for c := 0; c < count; c++ {
		moved := false
		for i := x - 1; i > 0; i-- {
			if isWordEndTransition(classify(b.value[i-1]), classify(b.value[i])) {
				x = i - 1
				moved = true
				break
			}
		}
		if !moved {
			x = 0
		}
	}
	return resolveResult{target: Cursor{X: x}, ok: true}
}

// resolveCharSearch scans for the count-th occurrence of ch. till=true
// lands immediately before the match (searching right) or after it
// (searching left). Fewer than count matches is a motion failure (spec
// §4.5, §8 property 3).
func (b *Buffer) resolveCharSearch(dir intent.Direction, ch rune, count int, till bool) resolveResult {
	n := len(b.value)
	x := b.cursor.X
	found := 0
	if dir == intent.DirRight {
		for i := x + 1; i < n; i++ {
			if b.value[i] == ch {
				found++
				if found == count {
					if till {
						return resolveResult{target: Cursor{X: i - 1}, ok: true}
					}
					return resolveResult{target: Cursor{X: i}, ok: true}
				}
			}
		}
		return resolveResult{}
	}
	for i := x - 1; i >= 0; i-- {
		if b.value[i] == ch {
			found++
			if found == count {
				if till {
					return resolveResult{target: Cursor{X: i + 1}, ok: true}
				}
				return resolveResult{target: Cursor{X: i}, ok: true}
			}
		}
	}
	return resolveResult{}
}

// textRange is a resolved [start, end) splice range.
type textRange struct {
	start, end int
}

// deriveRange implements spec §4.5 range derivation, turning a resolved
// target cursor into a [start, end) splice range relative to b.cursor.
func deriveRange(from, to Cursor, m intent.Motion) textRange {
	if to.X < from.X {
		end := from.X
		if m.Movement == intent.MoveHighlight {
			end++
		}
		return textRange{to.X, end}
	}

	end := to.X
	switch m.Movement {
	case intent.MoveToChar, intent.MoveTillChar, intent.MoveWordEnd, intent.MoveHighlight:
		end++
	}
	return textRange{from.X, end}
}
