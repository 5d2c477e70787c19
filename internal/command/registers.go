package command

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/dustin/go-humanize"

	"github.com/mmterm/mmterm/internal/register"
)

// formatRegisters renders the :registers dump (spec §6), sizing each
// value with humanize.Bytes and colorizing the name=value lines with
// chroma the way the teacher's help text is rendered for display.
func formatRegisters(regs *register.Store) string {
	var b strings.Builder
	for _, e := range regs.Dump() {
		fmt.Fprintf(&b, "%q = %q (%s)\n", string(rune(e.Name)), e.Value, humanize.Bytes(uint64(len(e.Value))))
	}
	return colorize(b.String())
}

// colorize lexes src as INI-style "name = value" lines and formats it for
// a 16M-color terminal, falling back to the plain source on any failure
// (no lexer/formatter/style registered, or a tokenizer error).
func colorize(src string) string {
	lexer := lexers.Get("ini")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return src
	}
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return buf.String()
}
