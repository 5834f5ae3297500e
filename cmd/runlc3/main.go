package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/grimdork/climate/arg"
	"golang.org/x/term"

	"github.com/Urethramancer/lc3/cpu"
	"github.com/Urethramancer/lc3/disassembler"
	"github.com/Urethramancer/lc3/monitor"
)

const (
	exitOK    = 0
	exitFault = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

// run loads an LC-3 object image and executes it until HALT, exhaustion or a fault.
func run() int {
	log.SetFlags(0)
	log.SetPrefix("runlc3: ")

	fd := int(os.Stdin.Fd())
	tty := term.IsTerminal(fd)

	opt := arg.New("runlc3")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "t", "trace", "Log every instruction to stderr.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "d", "debug", "Start the interactive monitor.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "r", "raw", "Put the terminal in raw mode for unbuffered key input (default when stdin is a terminal).", tty, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "R", "no-raw", "Leave the terminal in line mode.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "i", "input", "Read console input from a file instead of stdin.", "", false, arg.VarString, nil)
	opt.SetPositional("IMAGE", "Object image to load.", "", true, arg.VarString)
	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return exitUsage
		}
		log.Printf("%v", err)
		return exitUsage
	}

	var in io.Reader = os.Stdin
	name := opt.GetString("input")
	if name != "" {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Printf("%v", err)
			return exitUsage
		}
		in = bytes.NewReader(data)
	}

	var out io.Writer = os.Stdout
	if useRaw(tty, opt.GetBool("raw"), opt.GetBool("no-raw"), name != "", opt.GetBool("debug")) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			log.Printf("raw mode: %v", err)
			return exitFault
		}
		defer term.Restore(fd, oldState)
		out = &crlfWriter{w: os.Stdout}
	}

	c := cpu.New(cpu.NewStreamConsole(in, out))
	img, err := c.LoadFile(opt.GetPosString("IMAGE"))
	if err != nil {
		log.Printf("%v", err)
		return exitFault
	}

	if opt.GetBool("trace") {
		tl := log.New(os.Stderr, "", 0)
		c.Trace = func(pc, word uint16) {
			tl.Printf("x%04X  %04X  %-24s %s", pc, word, disassembler.Format(word, pc), regLine(c))
		}
	}

	if opt.GetBool("debug") {
		m := monitor.New(c, os.Stdout)
		m.Color = term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Fprintf(os.Stdout, "loaded %d words at x%04X\n", len(img.Code), img.Origin)
		if err := m.Run(); err != nil {
			log.Printf("monitor: %v", err)
			return exitFault
		}
		return stateCode(c, nil)
	}

	return stateCode(c, c.Run())
}

// useRaw decides whether stdin goes into raw mode. Only a terminal that feeds
// the console can be raw; the monitor needs line editing, and a file needs nothing.
func useRaw(tty, raw, noRaw, fromFile, debug bool) bool {
	return tty && raw && !noRaw && !fromFile && !debug
}

// stateCode maps the final machine state to a process exit code.
func stateCode(c *cpu.CPU, err error) int {
	if err != nil {
		var te *cpu.TrapError
		if errors.As(err, &te) {
			log.Printf("%v (R7=x%04X)", err, c.R[7])
		} else {
			log.Printf("%v", err)
		}
		return exitFault
	}
	if c.State() == cpu.Faulted {
		return exitFault
	}
	return exitOK
}

func regLine(c *cpu.CPU) string {
	return fmt.Sprintf("R0=%04X R1=%04X R2=%04X R3=%04X R4=%04X R5=%04X R6=%04X R7=%04X %s",
		c.R[0], c.R[1], c.R[2], c.R[3], c.R[4], c.R[5], c.R[6], c.R[7], c.CondString())
}

// crlfWriter adds carriage returns, since a raw terminal no longer does.
type crlfWriter struct {
	w io.Writer
}

func (cw *crlfWriter) Write(p []byte) (int, error) {
	_, err := cw.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
