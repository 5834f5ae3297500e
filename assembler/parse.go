package assembler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reRegister = regexp.MustCompile(`(?i)^r([0-7])$`)
	reHex      = regexp.MustCompile(`(?i)^-?(0x|x)([0-9a-f]+)$`)
	reBinary   = regexp.MustCompile(`(?i)^-?b([01]+)$`)
	reDecimal  = regexp.MustCompile(`^#?([+-]?[0-9]+)$`)
	reLabel    = regexp.MustCompile(`(?i)^[a-z_][a-z0-9_]*$`)
)

// mnemonics lists every instruction name the assembler accepts, lowercased.
var mnemonics = map[string]bool{
	"add": true, "and": true, "not": true,
	"jmp": true, "ret": true, "jsr": true, "jsrr": true,
	"ld": true, "ldi": true, "ldr": true, "lea": true,
	"st": true, "sti": true, "str": true,
	"trap": true, "rti": true,
	"getc": true, "out": true, "puts": true, "in": true, "putsp": true, "halt": true,
}

// isMnemonic reports whether s names an instruction, including every BR form.
func isMnemonic(s string) bool {
	s = strings.ToLower(s)
	if mnemonics[s] {
		return true
	}
	_, ok := branchCondition(s)
	return ok
}

// isDirective reports whether s is a dot directive.
func isDirective(s string) bool {
	switch strings.ToLower(s) {
	case ".orig", ".fill", ".blkw", ".stringz", ".end":
		return true
	}
	return false
}

// branchCondition parses "br", "brn", "brzp" and so on into the nzp bits.
// A bare "br" branches always.
func branchCondition(s string) (uint16, bool) {
	if !strings.HasPrefix(s, "br") {
		return 0, false
	}
	flags := s[2:]
	if flags == "" {
		return 7, true
	}
	var nzp uint16
	for _, r := range flags {
		var bit uint16
		switch r {
		case 'n':
			bit = 4
		case 'z':
			bit = 2
		case 'p':
			bit = 1
		default:
			return 0, false
		}
		if nzp&bit != 0 {
			return 0, false
		}
		nzp |= bit
	}
	return nzp, true
}

// parseRegister converts "R0".."R7" to a register number.
func parseRegister(s string) (uint16, error) {
	m := reRegister.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("expected a register, got %q", s)
	}
	return uint16(m[1][0] - '0'), nil
}

// parseConstant parses #decimal, bare decimal, xHEX, 0xHEX and bBINARY literals.
func parseConstant(s string) (int64, error) {
	s = strings.TrimSpace(s)
	body := strings.TrimPrefix(s, "#")
	neg := strings.HasPrefix(body, "-")

	if m := reHex.FindStringSubmatch(body); m != nil {
		v, err := strconv.ParseInt(m[2], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hex literal %q: %w", s, err)
		}
		if neg {
			v = -v
		}
		return v, nil
	}
	if m := reBinary.FindStringSubmatch(body); m != nil {
		v, err := strconv.ParseInt(m[1], 2, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid binary literal %q: %w", s, err)
		}
		if neg {
			v = -v
		}
		return v, nil
	}
	if m := reDecimal.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid decimal literal %q: %w", s, err)
		}
		return v, nil
	}
	return 0, fmt.Errorf("invalid literal %q", s)
}

// isLabel reports whether s is usable as a symbol name.
// Names that read as literals, like x10 or b01, are not.
func isLabel(s string) bool {
	if !reLabel.MatchString(s) || isMnemonic(s) || reRegister.MatchString(s) {
		return false
	}
	_, err := parseConstant(s)
	return err != nil
}

// stripComment removes a ';' comment, ignoring semicolons inside string literals.
func stripComment(line string) string {
	inString := false
	escaped := false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && inString:
			escaped = true
		case r == '"':
			inString = !inString
		case r == ';' && !inString:
			return line[:i]
		}
	}
	return line
}

// splitOperands splits an operand string by commas, but ignores commas inside string literals.
func splitOperands(s string) []string {
	var result []string
	inString := false
	escaped := false
	last := 0
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && inString:
			escaped = true
		case r == '"':
			inString = !inString
		case r == ',' && !inString:
			result = append(result, strings.TrimSpace(s[last:i]))
			last = i + 1
		}
	}
	if tail := strings.TrimSpace(s[last:]); tail != "" || len(result) > 0 {
		result = append(result, tail)
	}
	return result
}

// parseString decodes a double-quoted literal with C-style escapes.
func parseString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected a quoted string, got %s", s)
	}
	body := s[1 : len(s)-1]
	var out strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			out.WriteByte(ch)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("unterminated escape in %s", s)
		}
		switch body[i] {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case 'e':
			out.WriteByte(0x1B)
		case '0':
			out.WriteByte(0)
		case '\\', '"':
			out.WriteByte(body[i])
		default:
			return "", fmt.Errorf("unknown escape \\%c in %s", body[i], s)
		}
	}
	return out.String(), nil
}
