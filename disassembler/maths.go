package disassembler

import (
	"fmt"

	"github.com/Urethramancer/lc3/cpu"
)

// decodeOperate decodes ADD and AND.
func decodeOperate(inst cpu.Instruction) (string, string) {
	mn := "ADD"
	if inst.Op() == cpu.AND {
		mn = "AND"
	}
	if inst.IsImm() {
		return mn, fmt.Sprintf("%s, %s, %s", reg(inst.DR()), reg(inst.SR1()), imm(inst.Imm5()))
	}
	return mn, fmt.Sprintf("%s, %s, %s", reg(inst.DR()), reg(inst.SR1()), reg(inst.SR2()))
}

// decodeNot decodes NOT.
func decodeNot(inst cpu.Instruction) (string, string) {
	return "NOT", fmt.Sprintf("%s, %s", reg(inst.DR()), reg(inst.SR1()))
}
