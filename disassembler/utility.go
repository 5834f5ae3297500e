package disassembler

import (
	"fmt"

	"github.com/Urethramancer/lc3/cpu"
)

// LabelType defines the context of a label.
type LabelType int

const (
	// DataReference is for a PC-relative load, store or LEA.
	DataReference LabelType = iota
	// JumpTarget is for a branch.
	JumpTarget
	// SubroutineEntry is for a JSR target.
	SubroutineEntry
)

// targetFormatter renders a PC-relative operand given its absolute target and raw offset.
type targetFormatter func(target uint16, offset int16) string

// absoluteTarget prints targets as hex addresses.
func absoluteTarget(target uint16, _ int16) string {
	return hexWord(target)
}

func reg(r uint16) string {
	return fmt.Sprintf("R%d", r)
}

func imm(v uint16) string {
	return fmt.Sprintf("#%d", cpu.Signed(v))
}

func hexWord(v uint16) string {
	return fmt.Sprintf("x%04X", v)
}

// labelName generates a label string based on the address and its context.
func labelName(addr uint16, labelType LabelType) string {
	prefix := "loc_"
	switch labelType {
	case SubroutineEntry:
		prefix = "sub_"
	case DataReference:
		prefix = "dat_"
	}
	return fmt.Sprintf("%s%04X", prefix, addr)
}

// canonical reports whether the assembler would produce exactly this word.
// Words with junk in reserved bits still decode, but are written back as .FILL.
func canonical(word uint16) bool {
	inst := cpu.Instruction(word)
	switch inst.Op() {
	case cpu.BR:
		return inst.NZP() != 0
	case cpu.ADD, cpu.AND:
		return inst.IsImm() || word&0x18 == 0
	case cpu.NOT:
		return word&0x3F == 0x3F
	case cpu.JMP:
		return word&0x0E3F == 0
	case cpu.JSR:
		return inst.JSRLong() || word&0x063F == 0
	case cpu.RTI:
		return word&0x0FFF == 0
	case cpu.RES:
		return false
	case cpu.TRAP:
		return word&0x0F00 == 0
	}
	return true
}
