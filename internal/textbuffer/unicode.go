package textbuffer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeBoundaries returns the rune-index boundaries of each grapheme
// cluster in value, e.g. "e" + combining acute + "x" yields [0, 2, 3]:
// position 1 sits inside the combining sequence and is never a valid
// cursor stop.
func graphemeBoundaries(value []rune) []int {
	bounds := []int{0}
	s := string(value)
	state := -1
	pos := 0
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		pos += len([]rune(cluster))
		bounds = append(bounds, pos)
	}
	return bounds
}

// stepGraphemes moves x by count grapheme clusters (forward or backward),
// clamping to [0, len(value)]. Cursor stepping follows grapheme cluster
// boundaries rather than raw rune indices so a combining mark never
// splits from its base character (spec §4.5 char motion).
func stepGraphemes(value []rune, x, count int, forward bool) int {
	bounds := graphemeBoundaries(value)
	idx := len(bounds) - 1
	for i, b := range bounds {
		if b >= x {
			idx = i
			break
		}
	}
	if forward {
		idx += count
	} else {
		idx -= count
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(bounds) {
		idx = len(bounds) - 1
	}
	return bounds[idx]
}

// displayWidth measures the terminal cell width of s: wide CJK glyphs
// count as 2 cells, zero-width combining marks count as 0 (spec §3
// invariant 2, which is stated in display cells, not rune counts).
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
