package assembler

import (
	"fmt"

	"github.com/Urethramancer/lc3/cpu"
)

var trapAliases = map[string]uint16{
	"getc":  cpu.TrapGETC,
	"out":   cpu.TrapOUT,
	"puts":  cpu.TrapPUTS,
	"in":    cpu.TrapIN,
	"putsp": cpu.TrapPUTSP,
	"halt":  cpu.TrapHALT,
}

// assembleTrap handles TRAP and the service routine aliases.
// Format: 1111 0000 trapvect8
func (asm *Assembler) assembleTrap(n *Node) (uint16, error) {
	if vector, ok := trapAliases[n.Mnemonic]; ok {
		if err := expectOperands(n, 0); err != nil {
			return 0, err
		}
		return cpu.OPTRAP | vector, nil
	}

	if err := expectOperands(n, 1); err != nil {
		return 0, err
	}
	v, err := parseConstant(n.Operands[0])
	if err != nil {
		return 0, fmt.Errorf("invalid TRAP vector: %w", err)
	}
	vector, err := unsignedField(v, 8, "TRAP vector")
	if err != nil {
		return 0, err
	}
	return cpu.OPTRAP | vector, nil
}
