package assembler

import (
	"github.com/Urethramancer/lc3/cpu"
)

// assembleBranch handles BR and its condition variants.
// Format: 0000 n z p PCoffset9
func (asm *Assembler) assembleBranch(n *Node, nzp uint16) (uint16, error) {
	if err := expectOperands(n, 1); err != nil {
		return 0, err
	}
	off, err := asm.pcOffset(n, n.Operands[0], 9)
	if err != nil {
		return 0, err
	}
	return cpu.OPBR | nzp<<9 | off, nil
}

// assembleJump handles JMP, RET, JSRR and RTI.
func assembleJump(n *Node) (uint16, error) {
	switch n.Mnemonic {
	case "ret":
		if err := expectOperands(n, 0); err != nil {
			return 0, err
		}
		return cpu.OPRET, nil

	case "rti":
		if err := expectOperands(n, 0); err != nil {
			return 0, err
		}
		return cpu.OPRTI, nil
	}

	if err := expectOperands(n, 1); err != nil {
		return 0, err
	}
	base, err := parseRegister(n.Operands[0])
	if err != nil {
		return 0, err
	}
	if n.Mnemonic == "jsrr" {
		return cpu.OPJSR | base<<6, nil
	}
	return cpu.OPJMP | base<<6, nil
}

// assembleJsr handles JSR with an 11-bit PC offset.
// Format: 0100 1 PCoffset11
func (asm *Assembler) assembleJsr(n *Node) (uint16, error) {
	if err := expectOperands(n, 1); err != nil {
		return 0, err
	}
	off, err := asm.pcOffset(n, n.Operands[0], 11)
	if err != nil {
		return 0, err
	}
	return cpu.OPJSR | 0x800 | off, nil
}
