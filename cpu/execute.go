package cpu

import "fmt"

// Step fetches, decodes, and executes a single instruction.
func (c *CPU) Step() error {
	if c.state != Running {
		return nil
	}

	// Fetch
	addr := c.PC
	word := c.Mem.Read(addr)
	c.PC++

	if c.Trace != nil {
		c.Trace(addr, word)
	}

	// Decode and execute
	op := Decode(word)
	err := handlers[op](c, Instruction(word))
	c.Steps++
	if err != nil {
		c.state = Faulted
		return fmt.Errorf("execution failed for %s (%04X) at 0x%04X: %w", op, word, addr, err)
	}

	// Falling through from the last cell means the program ran off the end of memory.
	if addr == 0xFFFF && c.PC == 0 && c.state == Running {
		c.state = Exhausted
	}
	return nil
}

// Run steps until the machine halts, runs out of address space or fails.
func (c *CPU) Run() error {
	for c.state == Running {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
