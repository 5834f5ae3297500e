package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Urethramancer/lc3/cpu"
)

// newTestMonitor loads words at x3000 and collects monitor output.
func newTestMonitor(words ...uint16) (*Monitor, *bytes.Buffer) {
	c := cpu.New(nil)
	c.Load(cpu.Image{Origin: cpu.UserSpace, Code: words})
	out := &bytes.Buffer{}
	return New(c, out), out
}

func mustExec(t *testing.T, m *Monitor, line string) {
	t.Helper()
	quit, err := m.Exec(line)
	if err != nil {
		t.Fatalf("%q: %v", line, err)
	}
	if quit {
		t.Fatalf("%q: unexpected quit", line)
	}
}

func TestStepAndRegs(t *testing.T) {
	// ADD R0, R0, #1 three times, then HALT.
	m, out := newTestMonitor(0x1021, 0x1021, 0x1021, 0xF025)

	mustExec(t, m, "step")
	if m.CPU.PC != 0x3001 || m.CPU.R[0] != 1 {
		t.Errorf("step: PC = %04X R0 = %d", m.CPU.PC, m.CPU.R[0])
	}
	if !strings.Contains(out.String(), "x3001  1021  ADD R0, R0, #1") {
		t.Errorf("step should show the next instruction, got %q", out.String())
	}

	out.Reset()
	mustExec(t, m, "s 2")
	mustExec(t, m, "regs")
	if !strings.Contains(out.String(), "R0=x0003") || !strings.Contains(out.String(), "PC=x3003") {
		t.Errorf("regs: %q", out.String())
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Error("colour codes written with Color off")
	}

	out.Reset()
	mustExec(t, m, "step")
	if m.CPU.State() != cpu.Halted || !strings.Contains(out.String(), "halted") {
		t.Errorf("state %s, output %q", m.CPU.State(), out.String())
	}
	if _, err := m.Exec("step"); err == nil {
		t.Error("stepping a halted machine should fail")
	}
}

func TestRegsHighlight(t *testing.T) {
	// ADD R0, R0, #1; ADD R1, R1, #2; HALT
	m, out := newTestMonitor(0x1021, 0x1262, 0xF025)
	m.Color = true
	mustExec(t, m, "s")
	mustExec(t, m, "r")
	if !strings.Contains(out.String(), changed+"x0001") {
		t.Errorf("changed R0 not highlighted: %q", out.String())
	}

	// Highlights last until the next stop, however often regs runs.
	out.Reset()
	mustExec(t, m, "r")
	if !strings.Contains(out.String(), changed+"x0001") {
		t.Errorf("second regs lost the highlight: %q", out.String())
	}

	out.Reset()
	mustExec(t, m, "s")
	mustExec(t, m, "r")
	got := out.String()
	if !strings.Contains(got, "R0=x0001") || strings.Contains(got, changed+"x0001") {
		t.Errorf("R0 did not change in the last step but is highlighted: %q", got)
	}
	if !strings.Contains(got, "R1="+changed+"x0002") {
		t.Errorf("changed R1 not highlighted: %q", got)
	}
}

func TestHighlightSpansSteps(t *testing.T) {
	// ADD R0, R0, #1 twice: each stop compares with the one before it.
	m, out := newTestMonitor(0x1021, 0x1021, 0xF025)
	m.Color = true
	mustExec(t, m, "s")
	mustExec(t, m, "s")
	out.Reset()
	mustExec(t, m, "r")
	if !strings.Contains(out.String(), "R0="+changed+"x0002") {
		t.Errorf("R0 changed by the last step is not highlighted: %q", out.String())
	}
	if strings.Contains(out.String(), "R1="+changed) {
		t.Errorf("untouched R1 highlighted: %q", out.String())
	}
}

func TestBreakpoints(t *testing.T) {
	// BRnzp #-1 would spin forever; the breakpoint stops it.
	m, out := newTestMonitor(0x1021, 0x1021, 0x0FFF)
	mustExec(t, m, "break x3002")
	mustExec(t, m, "b 0x3001")
	out.Reset()
	mustExec(t, m, "b")
	if out.String() != "x3001\nx3002\n" {
		t.Errorf("breakpoint list: %q", out.String())
	}

	mustExec(t, m, "continue")
	if m.CPU.PC != 0x3001 {
		t.Errorf("continue stopped at %04X, want 3001", m.CPU.PC)
	}
	mustExec(t, m, "c")
	if m.CPU.PC != 0x3002 || m.CPU.R[0] != 2 {
		t.Errorf("continue stopped at %04X with R0 = %d", m.CPU.PC, m.CPU.R[0])
	}
	// The loop comes back to its own breakpoint.
	mustExec(t, m, "c")
	if m.CPU.PC != 0x3002 || m.CPU.Steps != 3 {
		t.Errorf("loop: PC = %04X steps = %d", m.CPU.PC, m.CPU.Steps)
	}

	mustExec(t, m, "delete x3002")
	if _, err := m.Exec("delete x3002"); err == nil {
		t.Error("deleting a missing breakpoint should fail")
	}
	if len(m.Breakpoints()) != 1 {
		t.Errorf("breakpoints: %v", m.Breakpoints())
	}
}

func TestContinueToHalt(t *testing.T) {
	m, out := newTestMonitor(0x1021, 0xF025)
	mustExec(t, m, "c")
	if m.CPU.State() != cpu.Halted || !strings.Contains(out.String(), "machine halted after 2 instructions") {
		t.Errorf("state %s, output %q", m.CPU.State(), out.String())
	}
}

func TestMemoryCommands(t *testing.T) {
	m, out := newTestMonitor(0x1021, 0xF025)
	mustExec(t, m, "mem x3000 2")
	if out.String() != "x3000: 1021 F025\n" {
		t.Errorf("mem: %q", out.String())
	}

	out.Reset()
	mustExec(t, m, "dis x3000 2")
	want := "> x3000  1021  ADD R0, R0, #1\n  x3001  F025  HALT\n"
	if out.String() != want {
		t.Errorf("dis: got %q, want %q", out.String(), want)
	}

	mustExec(t, m, "set R3 x10")
	mustExec(t, m, "set pc #12289")
	if m.CPU.R[3] != 0x10 || m.CPU.PC != 0x3001 {
		t.Errorf("set: R3 = %04X PC = %04X", m.CPU.R[3], m.CPU.PC)
	}
}

func TestExecErrors(t *testing.T) {
	m, _ := newTestMonitor(0xF025)
	for _, line := range []string{"bogus", "mem", "mem xZZ", "set R9 1", "set PC", "step 0", "dis 1 2 3", "mem x3000 0"} {
		if _, err := m.Exec(line); err == nil {
			t.Errorf("%q: expected an error", line)
		}
	}
	if quit, err := m.Exec(""); quit || err != nil {
		t.Errorf("empty line: %v %v", quit, err)
	}
	for _, line := range []string{"quit", "q", "exit"} {
		if quit, _ := m.Exec(line); !quit {
			t.Errorf("%q should quit", line)
		}
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"x3000", 0x3000},
		{"0xFFFF", 0xFFFF},
		{"#10", 10},
		{"42", 42},
		{"-1", 0xFFFF},
	}
	for _, tt := range tests {
		got, err := parseWord(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseWord(%q) = %04X, %v", tt.in, got, err)
		}
	}
	if _, err := parseWord("x10000"); err == nil {
		t.Error("x10000 should not parse")
	}
}
