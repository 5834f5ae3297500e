package disassembler

import (
	"fmt"
	"strings"
)

// minStringLen is the shortest zero-terminated run rendered as .STRINGZ.
const minStringLen = 2

// isStringChar reports whether a cell holds a character .STRINGZ can express.
func isStringChar(w uint16) bool {
	switch w {
	case '\n', '\t', '\r', 0x1B:
		return true
	}
	return w >= 0x20 && w <= 0x7E
}

// escapeChar renders one character for a string literal.
func escapeChar(sb *strings.Builder, w uint16) {
	switch w {
	case '\n':
		sb.WriteString(`\n`)
	case '\t':
		sb.WriteString(`\t`)
	case '\r':
		sb.WriteString(`\r`)
	case 0x1B:
		sb.WriteString(`\e`)
	case '"':
		sb.WriteString(`\"`)
	case '\\':
		sb.WriteString(`\\`)
	default:
		sb.WriteByte(byte(w))
	}
}

// formatData writes a block of non-code cells as .STRINGZ and .FILL directives.
func formatData(out *strings.Builder, data []uint16) {
	n := len(data)
	i := 0
	for i < n {
		end := i
		for end < n && isStringChar(data[end]) {
			end++
		}
		if end-i >= minStringLen && end < n && data[end] == 0 {
			var sb strings.Builder
			sb.WriteByte('"')
			for _, w := range data[i:end] {
				escapeChar(&sb, w)
			}
			sb.WriteByte('"')
			writeLine(out, ".STRINGZ", sb.String())
			i = end + 1
			continue
		}

		w := data[i]
		if isStringChar(w) && w >= 0x20 {
			fmt.Fprintf(out, "    %-8s %-8s ; '%c'\n", ".FILL", hexWord(w), rune(w))
		} else {
			writeLine(out, ".FILL", hexWord(w))
		}
		i++
	}
}
