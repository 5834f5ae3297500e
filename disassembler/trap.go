package disassembler

import (
	"fmt"

	"github.com/Urethramancer/lc3/cpu"
)

// decodeTrap prints the service routine alias when the vector has one.
func decodeTrap(inst cpu.Instruction) (string, string) {
	vector := inst.TrapVector()
	if name := cpu.TrapName(vector); name != "" {
		return name, ""
	}
	return "TRAP", fmt.Sprintf("x%02X", vector)
}
