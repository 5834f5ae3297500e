package cpu

// opLD handles LD: DR = mem[PC + offset9].
func (c *CPU) opLD(inst Instruction) error {
	dr := inst.DR()
	c.R[dr] = c.Mem.Read(c.PC + inst.PCOffset9())
	c.setCC(dr)
	return nil
}

// opLDI handles LDI: DR = mem[mem[PC + offset9]].
func (c *CPU) opLDI(inst Instruction) error {
	dr := inst.DR()
	ptr := c.Mem.Read(c.PC + inst.PCOffset9())
	c.R[dr] = c.Mem.Read(ptr)
	c.setCC(dr)
	return nil
}

// opLDR handles LDR: DR = mem[BaseR + offset6].
func (c *CPU) opLDR(inst Instruction) error {
	dr := inst.DR()
	c.R[dr] = c.Mem.Read(c.R[inst.BaseR()] + inst.Offset6())
	c.setCC(dr)
	return nil
}

// opLEA handles LEA: DR = PC + offset9. Nothing is read from memory.
func (c *CPU) opLEA(inst Instruction) error {
	dr := inst.DR()
	c.R[dr] = c.PC + inst.PCOffset9()
	c.setCC(dr)
	return nil
}

// opST handles ST: mem[PC + offset9] = SR.
func (c *CPU) opST(inst Instruction) error {
	c.Mem.Write(c.PC+inst.PCOffset9(), c.R[inst.DR()])
	return nil
}

// opSTI handles STI: mem[mem[PC + offset9]] = SR.
func (c *CPU) opSTI(inst Instruction) error {
	ptr := c.Mem.Read(c.PC + inst.PCOffset9())
	c.Mem.Write(ptr, c.R[inst.DR()])
	return nil
}

// opSTR handles STR: mem[BaseR + offset6] = SR.
func (c *CPU) opSTR(inst Instruction) error {
	c.Mem.Write(c.R[inst.BaseR()]+inst.Offset6(), c.R[inst.DR()])
	return nil
}
