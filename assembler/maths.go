package assembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/lc3/cpu"
)

// assembleOperate handles ADD and AND, in register or immediate form.
// Format: op DR SR1 0 00 SR2 or op DR SR1 1 imm5
func (asm *Assembler) assembleOperate(n *Node) (uint16, error) {
	if err := expectOperands(n, 3); err != nil {
		return 0, err
	}
	opword := uint16(cpu.OPADD)
	if n.Mnemonic == "and" {
		opword = cpu.OPAND
	}

	dr, err := parseRegister(n.Operands[0])
	if err != nil {
		return 0, err
	}
	sr1, err := parseRegister(n.Operands[1])
	if err != nil {
		return 0, err
	}
	opword |= dr<<9 | sr1<<6

	if sr2, err := parseRegister(n.Operands[2]); err == nil {
		return opword | sr2, nil
	}
	v, err := parseConstant(n.Operands[2])
	if err != nil {
		return 0, fmt.Errorf("%s: third operand must be a register or imm5: %w", strings.ToUpper(n.Mnemonic), err)
	}
	imm, err := signedField(v, 5, "imm5")
	if err != nil {
		return 0, err
	}
	return opword | 0x20 | imm, nil
}
