package assembler

import (
	"fmt"
	"strings"
)

// expectOperands checks the operand count of an instruction.
func expectOperands(n *Node, count int) error {
	if len(n.Operands) != count {
		return fmt.Errorf("%s requires %d operand(s), got %d", strings.ToUpper(n.Mnemonic), count, len(n.Operands))
	}
	return nil
}

// signedField checks that v fits in a two's complement field and returns its bits.
func signedField(v int64, bits uint, what string) (uint16, error) {
	lo := -(int64(1) << (bits - 1))
	hi := int64(1)<<(bits-1) - 1
	if v < lo || v > hi {
		return 0, fmt.Errorf("%s %d out of range [%d, %d]", what, v, lo, hi)
	}
	return uint16(v) & (1<<bits - 1), nil
}

// unsignedField checks that v fits in an unsigned field.
func unsignedField(v int64, bits uint, what string) (uint16, error) {
	if v < 0 || v >= int64(1)<<bits {
		return 0, fmt.Errorf("%s %d out of range [0, %d]", what, v, int64(1)<<bits-1)
	}
	return uint16(v), nil
}

// pcOffset resolves a label or literal operand to a PC-relative field.
// Labels are measured from the incremented PC; literals are taken as the offset itself.
func (asm *Assembler) pcOffset(n *Node, operand string, bits uint) (uint16, error) {
	operand = strings.TrimSpace(operand)
	if v, err := parseConstant(operand); err == nil {
		return signedField(v, bits, fmt.Sprintf("PCoffset%d", bits))
	}
	target, ok := asm.labels[strings.ToLower(operand)]
	if !ok {
		return 0, fmt.Errorf("undefined label %s", operand)
	}
	offset := int64(target) - (int64(n.Address) + 1)
	field, err := signedField(offset, bits, fmt.Sprintf("offset to %s: PCoffset%d", operand, bits))
	if err != nil {
		return 0, err
	}
	return field, nil
}

// value resolves a literal or a label to a 16-bit word.
func (asm *Assembler) value(operand string) (uint16, error) {
	operand = strings.TrimSpace(operand)
	if v, err := parseConstant(operand); err == nil {
		if v < -32768 || v > 0xFFFF {
			return 0, fmt.Errorf("value %d does not fit in 16 bits", v)
		}
		return uint16(v), nil
	}
	if addr, ok := asm.labels[strings.ToLower(operand)]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("undefined label or invalid value %s", operand)
}
