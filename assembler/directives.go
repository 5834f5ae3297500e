package assembler

import (
	"fmt"
)

// origAddress validates the .ORIG operand.
func (asm *Assembler) origAddress(n *Node) (uint16, error) {
	if len(n.Operands) != 1 {
		return 0, fmt.Errorf(".ORIG requires a single address")
	}
	v, err := parseConstant(n.Operands[0])
	if err != nil {
		return 0, fmt.Errorf("invalid .ORIG address: %w", err)
	}
	return unsignedField(v, 16, ".ORIG address")
}

// getDirectiveSize calculates the word count of a directive for the layout pass.
func (asm *Assembler) getDirectiveSize(n *Node) (int, error) {
	switch n.Mnemonic {
	case ".fill":
		if len(n.Operands) != 1 {
			return 0, fmt.Errorf(".FILL requires a single value")
		}
		return 1, nil

	case ".blkw":
		if len(n.Operands) < 1 || len(n.Operands) > 2 {
			return 0, fmt.Errorf(".BLKW requires a count and an optional fill value")
		}
		count, err := parseConstant(n.Operands[0])
		if err != nil {
			return 0, fmt.Errorf("invalid count for .BLKW: %w", err)
		}
		if count < 1 {
			return 0, fmt.Errorf(".BLKW count must be positive, got %d", count)
		}
		return int(count), nil

	case ".stringz":
		if len(n.Operands) != 1 {
			return 0, fmt.Errorf(".STRINGZ requires a single string")
		}
		s, err := parseString(n.Operands[0])
		if err != nil {
			return 0, err
		}
		return len(s) + 1, nil

	default:
		return 0, fmt.Errorf("unknown directive: %s", n.Mnemonic)
	}
}

// generateDirectiveCode generates the words for assembler directives.
func (asm *Assembler) generateDirectiveCode(n *Node) ([]uint16, error) {
	switch n.Mnemonic {
	case ".orig":
		return nil, nil

	case ".fill":
		v, err := asm.value(n.Operands[0])
		if err != nil {
			return nil, fmt.Errorf(".FILL: %w", err)
		}
		return []uint16{v}, nil

	case ".blkw":
		var fill uint16
		if len(n.Operands) == 2 {
			v, err := asm.value(n.Operands[1])
			if err != nil {
				return nil, fmt.Errorf(".BLKW: %w", err)
			}
			fill = v
		}
		code := make([]uint16, n.Size)
		for i := range code {
			code[i] = fill
		}
		return code, nil

	case ".stringz":
		s, err := parseString(n.Operands[0])
		if err != nil {
			return nil, err
		}
		code := make([]uint16, 0, len(s)+1)
		for i := 0; i < len(s); i++ {
			code = append(code, uint16(s[i]))
		}
		return append(code, 0), nil

	default:
		return nil, fmt.Errorf("unknown directive: %s", n.Mnemonic)
	}
}
