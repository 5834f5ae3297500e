package cpu

// Opcode is the top nibble of an instruction word.
type Opcode uint8

// Opcodes in encoding order.
const (
	BR Opcode = iota
	ADD
	LD
	ST
	JSR
	AND
	LDR
	STR
	RTI
	NOT
	LDI
	STI
	JMP
	RES
	LEA
	TRAP
)

var opcodeNames = [16]string{
	"BR", "ADD", "LD", "ST", "JSR", "AND", "LDR", "STR",
	"RTI", "NOT", "LDI", "STI", "JMP", "RES", "LEA", "TRAP",
}

func (op Opcode) String() string {
	return opcodeNames[op&0xF]
}

// Base opwords for the assembler, opcode in the top nibble.
const (
	OPBR   = 0x0000 // BR
	OPADD  = 0x1000 // ADD
	OPLD   = 0x2000 // LD
	OPST   = 0x3000 // ST
	OPJSR  = 0x4000 // JSR/JSRR
	OPAND  = 0x5000 // AND
	OPLDR  = 0x6000 // LDR
	OPSTR  = 0x7000 // STR
	OPRTI  = 0x8000 // RTI
	OPNOT  = 0x903F // NOT (bits 5-0 set)
	OPLDI  = 0xA000 // LDI
	OPSTI  = 0xB000 // STI
	OPJMP  = 0xC000 // JMP
	OPRET  = 0xC1C0 // RET (JMP R7)
	OPRES  = 0xD000 // reserved
	OPLEA  = 0xE000 // LEA
	OPTRAP = 0xF000 // TRAP
)

// Trap vectors.
const (
	TrapGETC  = 0x20 // read a character, no echo
	TrapOUT   = 0x21 // write a character
	TrapPUTS  = 0x22 // write a word-per-character string
	TrapIN    = 0x23 // prompt, read and echo a character
	TrapPUTSP = 0x24 // write a packed byte string
	TrapHALT  = 0x25 // stop the machine
)

// TrapName returns the alias of a trap vector, or "" for unknown vectors.
func TrapName(vector uint8) string {
	switch vector {
	case TrapGETC:
		return "GETC"
	case TrapOUT:
		return "OUT"
	case TrapPUTS:
		return "PUTS"
	case TrapIN:
		return "IN"
	case TrapPUTSP:
		return "PUTSP"
	case TrapHALT:
		return "HALT"
	}
	return ""
}

// Instruction is a raw instruction word with accessors for its fields.
type Instruction uint16

// Op returns the opcode.
func (i Instruction) Op() Opcode { return Decode(uint16(i)) }

// DR is the destination register, bits 11-9. ST, STI and STR use the same field for SR.
func (i Instruction) DR() uint16 { return (uint16(i) >> 9) & 7 }

// SR1 is the first source register, bits 8-6.
func (i Instruction) SR1() uint16 { return (uint16(i) >> 6) & 7 }

// BaseR shares bits 8-6 with SR1.
func (i Instruction) BaseR() uint16 { return (uint16(i) >> 6) & 7 }

// SR2 is the second source register, bits 2-0.
func (i Instruction) SR2() uint16 { return uint16(i) & 7 }

// IsImm reports whether bit 5 selects the immediate form of ADD and AND.
func (i Instruction) IsImm() bool { return uint16(i)&0x20 != 0 }

// JSRLong reports whether bit 11 selects JSR over JSRR.
func (i Instruction) JSRLong() bool { return uint16(i)&0x800 != 0 }

// NZP returns the branch condition bits 11-9.
func (i Instruction) NZP() uint16 { return (uint16(i) >> 9) & 7 }

// Imm5 returns the sign-extended 5-bit immediate.
func (i Instruction) Imm5() uint16 { return SignExtend(uint16(i)&0x1F, 5) }

// Offset6 returns the sign-extended 6-bit base offset.
func (i Instruction) Offset6() uint16 { return SignExtend(uint16(i)&0x3F, 6) }

// PCOffset9 returns the sign-extended 9-bit PC offset.
func (i Instruction) PCOffset9() uint16 { return SignExtend(uint16(i)&0x1FF, 9) }

// PCOffset11 returns the sign-extended 11-bit PC offset.
func (i Instruction) PCOffset11() uint16 { return SignExtend(uint16(i)&0x7FF, 11) }

// TrapVector returns the low 8 bits.
func (i Instruction) TrapVector() uint8 { return uint8(i) }
