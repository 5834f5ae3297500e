package cpu

import "fmt"

// Prompt written by the IN trap.
const Prompt = "Enter a character: "

// HaltMessage is written by the HALT trap.
const HaltMessage = "HALT\n"

type trapRoutine func(*CPU) error

var traps = map[uint8]trapRoutine{
	TrapGETC:  (*CPU).trapGETC,
	TrapOUT:   (*CPU).trapOUT,
	TrapPUTS:  (*CPU).trapPUTS,
	TrapIN:    (*CPU).trapIN,
	TrapPUTSP: (*CPU).trapPUTSP,
	TrapHALT:  (*CPU).trapHALT,
}

// opTRAP handles the TRAP instruction.
// Format: 1111 0000 trapvect8
func (c *CPU) opTRAP(inst Instruction) error {
	c.R[7] = c.PC
	vector := inst.TrapVector()
	routine, ok := traps[vector]
	if !ok {
		return &TrapError{Vector: vector, Address: c.PC - 1}
	}
	if err := routine(c); err != nil {
		return fmt.Errorf("trap %s: %w", TrapName(vector), err)
	}
	return nil
}

func (c *CPU) trapGETC() error {
	ch, err := c.Console.ReadChar()
	if err != nil {
		return err
	}
	c.R[0] = uint16(ch)
	return nil
}

func (c *CPU) trapOUT() error {
	if err := c.Console.WriteChar(byte(c.R[0])); err != nil {
		return err
	}
	return c.Console.Flush()
}

func (c *CPU) trapPUTS() error {
	for addr := c.R[0]; ; addr++ {
		ch := c.Mem.Read(addr)
		if ch == 0 {
			break
		}
		if err := c.Console.WriteChar(byte(ch)); err != nil {
			return err
		}
	}
	return c.Console.Flush()
}

func (c *CPU) trapIN() error {
	if err := c.writeString(Prompt); err != nil {
		return err
	}
	if err := c.Console.Flush(); err != nil {
		return err
	}
	ch, err := c.Console.ReadChar()
	if err != nil {
		return err
	}
	if err := c.Console.WriteChar(ch); err != nil {
		return err
	}
	c.R[0] = uint16(ch)
	return c.Console.Flush()
}

// trapPUTSP writes two characters per cell, low byte first.
func (c *CPU) trapPUTSP() error {
	for addr := c.R[0]; ; addr++ {
		cell := c.Mem.Read(addr)
		lo, hi := byte(cell), byte(cell>>8)
		if lo == 0 {
			break
		}
		if err := c.Console.WriteChar(lo); err != nil {
			return err
		}
		if hi == 0 {
			break
		}
		if err := c.Console.WriteChar(hi); err != nil {
			return err
		}
	}
	return c.Console.Flush()
}

func (c *CPU) trapHALT() error {
	if err := c.writeString(HaltMessage); err != nil {
		return err
	}
	if err := c.Console.Flush(); err != nil {
		return err
	}
	c.state = Halted
	return nil
}

func (c *CPU) writeString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := c.Console.WriteChar(s[i]); err != nil {
			return err
		}
	}
	return nil
}
