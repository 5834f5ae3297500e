package cpu

// opBR handles BR. The branch is taken when any of the n, z, p bits matches COND.
// Format: 0000 n z p PCoffset9
func (c *CPU) opBR(inst Instruction) error {
	if inst.NZP()&c.COND != 0 {
		c.PC += inst.PCOffset9()
	}
	return nil
}

// opJMP handles JMP and RET (JMP R7).
// Format: 1100 000 BaseR 000000
func (c *CPU) opJMP(inst Instruction) error {
	c.PC = c.R[inst.BaseR()]
	return nil
}

// opJSR handles JSR and JSRR.
// Format: 0100 1 PCoffset11 or 0100 0 00 BaseR 000000
func (c *CPU) opJSR(inst Instruction) error {
	// Read the base register first: JSRR R7 jumps to the old R7.
	target := c.R[inst.BaseR()]
	if inst.JSRLong() {
		target = c.PC + inst.PCOffset11()
	}
	c.R[7] = c.PC
	c.PC = target
	return nil
}
