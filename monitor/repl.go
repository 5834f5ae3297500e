package monitor

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/shibukawa/configdir"

	"github.com/Urethramancer/lc3/disassembler"
)

// Run drives the monitor from an interactive prompt until quit or EOF.
func (m *Monitor) Run() error {
	// get history path
	configDirs := configdir.New("lc3", "monitor")
	cacheDir := configDirs.QueryCacheFolder()
	historyPath := ""
	if err := cacheDir.MkdirAll(); err == nil {
		historyPath = filepath.Join(cacheDir.Path, "history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          m.prompt(),
		HistoryFile:     historyPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	m.Out = rl.Stdout()
	m.printNext()
	for {
		rl.SetPrompt(m.prompt())
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if line == "" {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := m.Exec(line)
		if err != nil {
			fmt.Fprintf(m.Out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// prompt shows the next instruction, the way a debugger shows its stop location.
func (m *Monitor) prompt() string {
	c := m.CPU
	word := c.Mem.Read(c.PC)
	return fmt.Sprintf("[x%04X %s] ", c.PC, disassembler.Format(word, c.PC))
}
