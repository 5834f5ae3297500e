package disassembler

import (
	"fmt"

	"github.com/Urethramancer/lc3/cpu"
)

// decodePCRelative decodes LD, LDI, LEA, ST and STI.
func decodePCRelative(inst cpu.Instruction, pc uint16, target targetFormatter) (string, string) {
	off := inst.PCOffset9()
	return inst.Op().String(), fmt.Sprintf("%s, %s", reg(inst.DR()), target(pc+1+off, cpu.Signed(off)))
}

// decodeBaseOffset decodes LDR and STR.
func decodeBaseOffset(inst cpu.Instruction) (string, string) {
	return inst.Op().String(), fmt.Sprintf("%s, %s, %s", reg(inst.DR()), reg(inst.BaseR()), imm(inst.Offset6()))
}
