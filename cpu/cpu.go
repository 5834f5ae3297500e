package cpu

// CPU memory and registers.
type CPU struct {
	// R is for the general purpose registers. R7 holds return addresses.
	R [8]uint16
	// PC is the program counter. It always points at the next instruction.
	PC uint16
	// COND is the condition register, exactly one of FlagN, FlagZ or FlagP.
	COND uint16

	// Mem is the whole 64K word address space.
	Mem *Memory
	// Console services the character I/O traps.
	Console Console

	// Steps counts retired instructions.
	Steps uint64
	// Trace is called before each instruction is executed, if set.
	Trace func(pc, word uint16)

	state State
}

// Condition flags.
const (
	// FlagP is positive
	FlagP = 1 << 0
	// FlagZ is zero
	FlagZ = 1 << 1
	// FlagN is negative
	FlagN = 1 << 2
)

// State of the run loop.
type State int

const (
	// Running is the initial state.
	Running State = iota
	// Halted is entered through the HALT trap.
	Halted
	// Exhausted means execution ran off the top of memory.
	Exhausted
	// Faulted is entered when an instruction fails.
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Exhausted:
		return "exhausted"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// New creates a new CPU instance with zeroed memory and registers.
// A nil console is replaced by NullConsole.
func New(console Console) *CPU {
	if console == nil {
		console = NullConsole()
	}
	return &CPU{
		Mem:     &Memory{},
		Console: console,
		COND:    FlagZ,
	}
}

// State returns the run state.
func (c *CPU) State() State {
	return c.state
}

// Resume puts a stopped CPU back into the running state without touching registers or memory.
func (c *CPU) Resume() {
	c.state = Running
}

// Reset clears registers, memory and the run state.
func (c *CPU) Reset() {
	c.R = [8]uint16{}
	c.PC = 0
	c.COND = FlagZ
	c.Steps = 0
	*c.Mem = Memory{}
	c.state = Running
}

// setCC updates the condition register from the value of register r.
func (c *CPU) setCC(r uint16) {
	v := c.R[r]
	switch {
	case v == 0:
		c.COND = FlagZ
	case v&0x8000 != 0:
		c.COND = FlagN
	default:
		c.COND = FlagP
	}
}

// CondString returns the condition register as "N", "Z" or "P".
func (c *CPU) CondString() string {
	switch c.COND {
	case FlagN:
		return "N"
	case FlagZ:
		return "Z"
	case FlagP:
		return "P"
	default:
		return "?"
	}
}
