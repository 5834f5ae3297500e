package disassembler

import (
	"strings"

	"github.com/Urethramancer/lc3/cpu"
)

// branchMnemonic builds BRn, BRzp and so on. All three bits print as plain BR.
func branchMnemonic(nzp uint16) string {
	switch nzp {
	case 0:
		return "NOP"
	case 7:
		return "BR"
	}
	var sb strings.Builder
	sb.WriteString("BR")
	if nzp&4 != 0 {
		sb.WriteByte('n')
	}
	if nzp&2 != 0 {
		sb.WriteByte('z')
	}
	if nzp&1 != 0 {
		sb.WriteByte('p')
	}
	return sb.String()
}

// decodeBranch decodes BR. pc is the address of the instruction itself.
func decodeBranch(inst cpu.Instruction, pc uint16, target targetFormatter) (string, string) {
	off := inst.PCOffset9()
	mn := branchMnemonic(inst.NZP())
	if inst.NZP() == 0 {
		return mn, ""
	}
	return mn, target(pc+1+off, cpu.Signed(off))
}

// decodeJmp decodes JMP and RET.
func decodeJmp(inst cpu.Instruction) (string, string) {
	if inst.BaseR() == 7 {
		return "RET", ""
	}
	return "JMP", reg(inst.BaseR())
}

// decodeJsr decodes JSR and JSRR.
func decodeJsr(inst cpu.Instruction, pc uint16, target targetFormatter) (string, string) {
	if !inst.JSRLong() {
		return "JSRR", reg(inst.BaseR())
	}
	off := inst.PCOffset11()
	return "JSR", target(pc+1+off, cpu.Signed(off))
}
