package assembler

import "github.com/Urethramancer/lc3/cpu"

// assembleNot handles NOT DR, SR.
func assembleNot(n *Node) (uint16, error) {
	if err := expectOperands(n, 2); err != nil {
		return 0, err
	}
	dr, err := parseRegister(n.Operands[0])
	if err != nil {
		return 0, err
	}
	sr, err := parseRegister(n.Operands[1])
	if err != nil {
		return 0, err
	}
	return cpu.OPNOT | dr<<9 | sr<<6, nil
}
