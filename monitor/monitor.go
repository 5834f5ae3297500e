// Package monitor is an interactive debugger for the LC-3 machine.
package monitor

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Urethramancer/lc3/cpu"
)

// Monitor inspects and drives a CPU one command at a time.
type Monitor struct {
	CPU *cpu.CPU
	Out io.Writer
	// Color enables ANSI highlighting of changed registers.
	Color bool

	breakpoints map[uint16]bool
	snapshot    snapshot
}

// snapshot holds register values from before the last step or continue.
// Registers that differ from it changed since the previous stop.
type snapshot struct {
	R    [8]uint16
	PC   uint16
	COND uint16
}

type command struct {
	names []string
	usage string
	help  string
	run   func(m *Monitor, args []string) (bool, error)
}

var commands []command

func init() {
	commands = []command{
		{[]string{"step", "s"}, "step [n]", "execute n instructions (default 1)", (*Monitor).cmdStep},
		{[]string{"continue", "c"}, "continue", "run until a breakpoint, HALT or an error", (*Monitor).cmdContinue},
		{[]string{"regs", "r"}, "regs", "show registers", (*Monitor).cmdRegs},
		{[]string{"mem", "m"}, "mem <addr> [count]", "dump memory words", (*Monitor).cmdMem},
		{[]string{"dis", "d"}, "dis [addr] [count]", "disassemble from addr (default PC)", (*Monitor).cmdDis},
		{[]string{"break", "b"}, "break [addr]", "set a breakpoint, or list them", (*Monitor).cmdBreak},
		{[]string{"delete"}, "delete <addr>", "remove a breakpoint", (*Monitor).cmdDelete},
		{[]string{"set"}, "set <reg> <value>", "set R0-R7 or PC", (*Monitor).cmdSet},
		{[]string{"help", "h", "?"}, "help", "show this list", (*Monitor).cmdHelp},
		{[]string{"quit", "q", "exit"}, "quit", "leave the monitor", (*Monitor).cmdQuit},
	}
}

// New creates a monitor for c writing to out.
func New(c *cpu.CPU, out io.Writer) *Monitor {
	m := &Monitor{
		CPU:         c,
		Out:         out,
		breakpoints: make(map[uint16]bool),
	}
	m.takeSnapshot()
	return m
}

// Exec runs one command line. quit is true when the monitor should exit.
func (m *Monitor) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	for _, cmd := range commands {
		for _, n := range cmd.names {
			if n == name {
				return cmd.run(m, fields[1:])
			}
		}
	}
	return false, fmt.Errorf("unknown command %q, try help", fields[0])
}

// AddBreakpoint stops Continue before the instruction at addr executes.
func (m *Monitor) AddBreakpoint(addr uint16) {
	m.breakpoints[addr] = true
}

// Breakpoints returns the breakpoint addresses in order.
func (m *Monitor) Breakpoints() []uint16 {
	list := make([]uint16, 0, len(m.breakpoints))
	for addr := range m.breakpoints {
		list = append(list, addr)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Continue runs until a breakpoint is reached or the machine stops.
// The instruction at the current PC always executes, so a stop on a breakpoint can be resumed.
func (m *Monitor) Continue() error {
	c := m.CPU
	first := true
	for c.State() == cpu.Running {
		if !first && m.breakpoints[c.PC] {
			fmt.Fprintf(m.Out, "breakpoint at x%04X\n", c.PC)
			return nil
		}
		first = false
		if err := c.Step(); err != nil {
			return err
		}
	}
	fmt.Fprintf(m.Out, "machine %s after %d instructions\n", c.State(), c.Steps)
	return nil
}

func (m *Monitor) cmdStep(args []string) (bool, error) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return false, fmt.Errorf("invalid step count %q", args[0])
		}
		n = v
	}
	if m.CPU.State() != cpu.Running {
		return false, fmt.Errorf("machine is %s", m.CPU.State())
	}
	m.takeSnapshot()
	for i := 0; i < n && m.CPU.State() == cpu.Running; i++ {
		if err := m.CPU.Step(); err != nil {
			return false, err
		}
	}
	if m.CPU.State() != cpu.Running {
		fmt.Fprintf(m.Out, "machine %s\n", m.CPU.State())
		return false, nil
	}
	m.printNext()
	return false, nil
}

func (m *Monitor) cmdContinue(args []string) (bool, error) {
	if m.CPU.State() != cpu.Running {
		return false, fmt.Errorf("machine is %s", m.CPU.State())
	}
	m.takeSnapshot()
	if err := m.Continue(); err != nil {
		return false, err
	}
	if m.CPU.State() == cpu.Running {
		m.printNext()
	}
	return false, nil
}

func (m *Monitor) cmdRegs(args []string) (bool, error) {
	m.printRegs()
	return false, nil
}

func (m *Monitor) cmdMem(args []string) (bool, error) {
	if len(args) < 1 || len(args) > 2 {
		return false, fmt.Errorf("usage: mem <addr> [count]")
	}
	addr, err := parseWord(args[0])
	if err != nil {
		return false, err
	}
	count := 8
	if len(args) == 2 {
		count, err = parseCount(args[1])
		if err != nil {
			return false, err
		}
	}
	m.printMem(addr, count)
	return false, nil
}

func (m *Monitor) cmdDis(args []string) (bool, error) {
	if len(args) > 2 {
		return false, fmt.Errorf("usage: dis [addr] [count]")
	}
	addr := m.CPU.PC
	count := 10
	var err error
	if len(args) > 0 {
		addr, err = parseWord(args[0])
		if err != nil {
			return false, err
		}
	}
	if len(args) > 1 {
		count, err = parseCount(args[1])
		if err != nil {
			return false, err
		}
	}
	m.printDis(addr, count)
	return false, nil
}

func (m *Monitor) cmdBreak(args []string) (bool, error) {
	if len(args) == 0 {
		for _, addr := range m.Breakpoints() {
			fmt.Fprintf(m.Out, "x%04X\n", addr)
		}
		return false, nil
	}
	addr, err := parseWord(args[0])
	if err != nil {
		return false, err
	}
	m.AddBreakpoint(addr)
	fmt.Fprintf(m.Out, "breakpoint set at x%04X\n", addr)
	return false, nil
}

func (m *Monitor) cmdDelete(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: delete <addr>")
	}
	addr, err := parseWord(args[0])
	if err != nil {
		return false, err
	}
	if !m.breakpoints[addr] {
		return false, fmt.Errorf("no breakpoint at x%04X", addr)
	}
	delete(m.breakpoints, addr)
	return false, nil
}

func (m *Monitor) cmdSet(args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("usage: set <reg> <value>")
	}
	v, err := parseWord(args[1])
	if err != nil {
		return false, err
	}
	name := strings.ToUpper(args[0])
	if name == "PC" {
		m.CPU.PC = v
		return false, nil
	}
	if len(name) == 2 && name[0] == 'R' && name[1] >= '0' && name[1] <= '7' {
		m.CPU.R[name[1]-'0'] = v
		return false, nil
	}
	return false, fmt.Errorf("unknown register %q", args[0])
}

func (m *Monitor) cmdHelp(args []string) (bool, error) {
	for _, cmd := range commands {
		fmt.Fprintf(m.Out, "  %-20s %s\n", cmd.usage, cmd.help)
	}
	return false, nil
}

func (m *Monitor) cmdQuit(args []string) (bool, error) {
	return true, nil
}

func (m *Monitor) takeSnapshot() {
	c := m.CPU
	m.snapshot = snapshot{R: c.R, PC: c.PC, COND: c.COND}
}

// parseWord accepts x3000, 0x3000, #12 and plain decimal.
func parseWord(s string) (uint16, error) {
	var v int64
	var err error
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		v, err = strconv.ParseInt(lower[2:], 16, 32)
	case strings.HasPrefix(lower, "x"):
		v, err = strconv.ParseInt(lower[1:], 16, 32)
	default:
		v, err = strconv.ParseInt(strings.TrimPrefix(lower, "#"), 10, 32)
	}
	if err != nil || v < -32768 || v > 0xFFFF {
		return 0, fmt.Errorf("invalid value %q", s)
	}
	return uint16(v), nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > cpu.MemorySize {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	return n, nil
}
