package textbuffer

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/jellydator/ttlcache/v3"

	"github.com/mmterm/mmterm/internal/intent"
)

// resetCompletion drops any in-progress completion ring. Spec §4.5: "Any
// non-completion edit or motion resets completion state."
func (b *Buffer) resetCompletion() {
	b.completion = completionState{}
}

// stemAt scans leftward from pos while the preceding rune is a word
// character (spec §4.5) to find where the completion stem begins. Word
// boundaries are found with uax29's Unicode segmenter rather than a hand
// rolled ASCII scan, so completion behaves correctly for non-Latin script
// room/user names.
func (b *Buffer) stemAt(pos int) int {
	if pos <= 0 {
		return 0
	}
	data := []byte(string(b.value[:pos]))
	seg := words.FromBytes(data)
	lastStart, lastIsWord := pos, false
	offset := 0
	for seg.Next() {
		tok := seg.Value()
		lastStart, lastIsWord = offset, isWordToken(tok)
		offset += len([]rune(string(tok)))
	}
	if !lastIsWord {
		return pos
	}
	return lastStart
}

func isWordToken(tok []byte) bool {
	for _, r := range string(tok) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r) && r != '_' {
			return false
		}
	}
	return len(tok) > 0
}

// applyComplete implements spec §4.5 completion cycling. The first
// invocation after a reset captures original_text/original_cursor, finds
// the stem, and calls the injected completer (through a short-TTL cache
// keyed by stem, so rapid Tab/Shift-Tab cycling doesn't recompute). The
// ring has len(options)+1 positions; the extra slot is "no completion".
func (b *Buffer) applyComplete(dir intent.Direction) *intent.Intent {
	if b.completer == nil {
		return warnPtr("No completion source configured")
	}

	if !b.completion.active {
		stemStart := b.stemAt(b.cursor.X)
		stem := string(b.value[stemStart:b.cursor.X])

		var options []string
		if item := b.cache.Get(stem); item != nil {
			options = item.Value()
		} else {
			options = b.completer(stem)
			b.cache.Set(stem, options, ttlcache.DefaultTTL)
		}

		b.completion = completionState{
			options:        options,
			index:          len(options),
			active:         true,
			originalText:   string(b.value),
			originalCursor: b.cursor,
			stem:           stem,
		}
	}

	modulus := len(b.completion.options) + 1
	if modulus == 1 {
		return warnPtr("No matching completions")
	}

	switch dir {
	case intent.DirRight:
		b.completion.index = (b.completion.index + 1) % modulus
	default:
		b.completion.index = (b.completion.index - 1 + modulus) % modulus
	}

	b.applyCompletionSelection()
	return nil
}

// applyCompletionSelection rebuilds the value from the captured original
// text on every cycle step, so repeated Tab/Shift-Tab presses are
// idempotent regardless of how many steps came before.
func (b *Buffer) applyCompletionSelection() {
	origRunes := []rune(b.completion.originalText)
	stemLen := len([]rune(b.completion.stem))
	stemStart := b.completion.originalCursor.X - stemLen

	before := origRunes[:stemStart]
	after := origRunes[b.completion.originalCursor.X:]

	replacement := b.completion.stem
	if b.completion.index < len(b.completion.options) {
		replacement += b.completion.options[b.completion.index]
	}

	rebuilt := append([]rune{}, before...)
	rebuilt = append(rebuilt, []rune(replacement)...)
	rebuilt = append(rebuilt, after...)
	b.value = rebuilt
	b.cursor.X = stemStart + len([]rune(replacement))
}

// cacheDebugStats exposes the completion cache's item count, the number of
// distinct stems whose completer results are currently cached.
func (b *Buffer) cacheDebugStats() int {
	return b.cache.Len()
}
