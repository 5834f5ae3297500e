package monitor

import (
	"fmt"

	"github.com/Urethramancer/lc3/disassembler"
	"github.com/mgutz/ansi"
)

var changed = ansi.ColorCode("yellow+b")

// highlight wraps s in colour when the value differs from the last stop.
func (m *Monitor) highlight(s string, diff bool) string {
	if !m.Color || !diff {
		return s
	}
	return changed + s + ansi.Reset
}

func (m *Monitor) printRegs() {
	c := m.CPU
	old := m.snapshot
	for i := 0; i < 8; i++ {
		fmt.Fprintf(m.Out, "R%d=%s ", i, m.highlight(fmt.Sprintf("x%04X", c.R[i]), c.R[i] != old.R[i]))
		if i == 3 {
			fmt.Fprintln(m.Out)
		}
	}
	fmt.Fprintln(m.Out)
	fmt.Fprintf(m.Out, "PC=%s COND=%s steps=%d state=%s\n",
		m.highlight(fmt.Sprintf("x%04X", c.PC), c.PC != old.PC),
		m.highlight(c.CondString(), c.COND != old.COND),
		c.Steps, c.State())
}

func (m *Monitor) printMem(addr uint16, count int) {
	words := m.CPU.Mem.Slice(addr, count)
	for i := 0; i < len(words); i += 8 {
		fmt.Fprintf(m.Out, "x%04X:", addr+uint16(i))
		for j := i; j < i+8 && j < len(words); j++ {
			fmt.Fprintf(m.Out, " %04X", words[j])
		}
		fmt.Fprintln(m.Out)
	}
}

func (m *Monitor) printDis(addr uint16, count int) {
	for i := 0; i < count; i++ {
		a := addr + uint16(i)
		word := m.CPU.Mem.Read(a)
		mark := " "
		if a == m.CPU.PC {
			mark = ">"
		}
		if m.breakpoints[a] {
			mark = "*"
		}
		fmt.Fprintf(m.Out, "%s x%04X  %04X  %s\n", mark, a, word, disassembler.Format(word, a))
	}
}

// printNext shows the instruction about to execute.
func (m *Monitor) printNext() {
	pc := m.CPU.PC
	word := m.CPU.Mem.Read(pc)
	fmt.Fprintf(m.Out, "x%04X  %04X  %s\n", pc, word, disassembler.Format(word, pc))
}
