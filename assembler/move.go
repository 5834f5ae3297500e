package assembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/lc3/cpu"
)

var pcRelativeOpwords = map[string]uint16{
	"ld":  cpu.OPLD,
	"ldi": cpu.OPLDI,
	"lea": cpu.OPLEA,
	"st":  cpu.OPST,
	"sti": cpu.OPSTI,
}

// assemblePCRelative handles LD, LDI, LEA, ST and STI.
// Format: op R PCoffset9
func (asm *Assembler) assemblePCRelative(n *Node) (uint16, error) {
	if err := expectOperands(n, 2); err != nil {
		return 0, err
	}
	reg, err := parseRegister(n.Operands[0])
	if err != nil {
		return 0, err
	}
	off, err := asm.pcOffset(n, n.Operands[1], 9)
	if err != nil {
		return 0, err
	}
	return pcRelativeOpwords[n.Mnemonic] | reg<<9 | off, nil
}

// assembleBaseOffset handles LDR and STR.
// Format: op R BaseR offset6
func (asm *Assembler) assembleBaseOffset(n *Node) (uint16, error) {
	if err := expectOperands(n, 3); err != nil {
		return 0, err
	}
	opword := uint16(cpu.OPLDR)
	if n.Mnemonic == "str" {
		opword = cpu.OPSTR
	}
	reg, err := parseRegister(n.Operands[0])
	if err != nil {
		return 0, err
	}
	base, err := parseRegister(n.Operands[1])
	if err != nil {
		return 0, err
	}
	v, err := parseConstant(n.Operands[2])
	if err != nil {
		return 0, fmt.Errorf("%s: offset6 must be a literal: %w", strings.ToUpper(n.Mnemonic), err)
	}
	off, err := signedField(v, 6, "offset6")
	if err != nil {
		return 0, err
	}
	return opword | reg<<9 | base<<6 | off, nil
}
