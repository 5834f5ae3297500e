package cpu

// handler executes one decoded instruction.
type handler func(*CPU, Instruction) error

// handlers is indexed by Opcode. Every slot is filled, including the reserved ones.
var handlers = [16]handler{
	BR:   (*CPU).opBR,
	ADD:  (*CPU).opADD,
	LD:   (*CPU).opLD,
	ST:   (*CPU).opST,
	JSR:  (*CPU).opJSR,
	AND:  (*CPU).opAND,
	LDR:  (*CPU).opLDR,
	STR:  (*CPU).opSTR,
	RTI:  (*CPU).opReserved,
	NOT:  (*CPU).opNOT,
	LDI:  (*CPU).opLDI,
	STI:  (*CPU).opSTI,
	JMP:  (*CPU).opJMP,
	RES:  (*CPU).opReserved,
	LEA:  (*CPU).opLEA,
	TRAP: (*CPU).opTRAP,
}

// Decode returns the opcode in the top 4 bits of an instruction word.
// All 16 values are defined, so decoding never fails.
func Decode(word uint16) Opcode {
	return Opcode(word >> 12)
}

// opReserved handles RTI and RES, which have no user-mode behaviour.
func (c *CPU) opReserved(inst Instruction) error {
	return &ReservedOpcodeError{Op: inst.Op(), Address: c.PC - 1}
}
