package cpu

// opADD handles the ADD instruction.
// Format: 0001 DR SR1 0 00 SR2 or 0001 DR SR1 1 imm5
func (c *CPU) opADD(inst Instruction) error {
	dr := inst.DR()
	c.R[dr] = c.R[inst.SR1()] + c.operand2(inst)
	c.setCC(dr)
	return nil
}

// opAND handles the AND instruction. Same layout as ADD.
func (c *CPU) opAND(inst Instruction) error {
	dr := inst.DR()
	c.R[dr] = c.R[inst.SR1()] & c.operand2(inst)
	c.setCC(dr)
	return nil
}

// opNOT handles the NOT instruction.
// Format: 1001 DR SR 111111
func (c *CPU) opNOT(inst Instruction) error {
	dr := inst.DR()
	c.R[dr] = ^c.R[inst.SR1()]
	c.setCC(dr)
	return nil
}

// operand2 is SR2 or the immediate, selected by bit 5.
func (c *CPU) operand2(inst Instruction) uint16 {
	if inst.IsImm() {
		return inst.Imm5()
	}
	return c.R[inst.SR2()]
}
