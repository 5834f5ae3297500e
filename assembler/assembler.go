package assembler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Urethramancer/lc3/cpu"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	labels map[string]uint16
	origin uint16
}

// Symbol is a label and the address it resolved to.
type Symbol struct {
	Name    string
	Address uint16
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		labels: make(map[string]uint16),
	}
}

// Assemble is a shortcut for New().Assemble(src).
func Assemble(src string) (cpu.Image, error) {
	return New().Assemble(src)
}

// Assemble takes LC-3 assembly source and returns the object image.
func (asm *Assembler) Assemble(src string) (cpu.Image, error) {
	asm.labels = make(map[string]uint16)
	asm.origin = 0
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	nodes, err := asm.parseLines(lines)
	if err != nil {
		return cpu.Image{}, fmt.Errorf("parsing error: %w", err)
	}

	// Pass 1: every statement has a fixed size, so one sweep places all labels.
	if err := asm.layout(nodes); err != nil {
		return cpu.Image{}, err
	}

	// Pass 2: generate machine code.
	img := cpu.Image{Origin: asm.origin}
	for _, n := range nodes {
		var code []uint16
		var err error

		switch n.Type {
		case NodeLabel:
			continue
		case NodeDirective:
			code, err = asm.generateDirectiveCode(n)
		case NodeInstruction:
			code, err = asm.generateInstructionCode(n)
		}
		if err != nil {
			return cpu.Image{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		img.Code = append(img.Code, code...)
	}
	return img, nil
}

// Symbols returns the label table of the last assembly, sorted by address.
func (asm *Assembler) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(asm.labels))
	for name, addr := range asm.labels {
		syms = append(syms, Symbol{Name: name, Address: addr})
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].Address == syms[j].Address {
			return syms[i].Name < syms[j].Name
		}
		return syms[i].Address < syms[j].Address
	})
	return syms
}

// layout assigns an address to every node and records label addresses.
func (asm *Assembler) layout(nodes []*Node) error {
	if len(nodes) == 0 || !isOrig(nodes[0]) {
		return fmt.Errorf("program must start with .ORIG")
	}

	pc := 0
	for _, n := range nodes {
		if isOrig(n) {
			if n != nodes[0] {
				return fmt.Errorf("line %d: only one .ORIG is supported", n.Line)
			}
			addr, err := asm.origAddress(n)
			if err != nil {
				return fmt.Errorf("line %d: %w", n.Line, err)
			}
			asm.origin = addr
			pc = int(addr)
			continue
		}

		n.Address = uint16(pc)
		if n.Type == NodeLabel {
			if _, dup := asm.labels[n.Label]; dup {
				return fmt.Errorf("line %d: duplicate label %s", n.Line, n.Label)
			}
			asm.labels[n.Label] = uint16(pc)
			continue
		}

		size := 1
		if n.Type == NodeDirective {
			var err error
			size, err = asm.getDirectiveSize(n)
			if err != nil {
				return fmt.Errorf("line %d: %w", n.Line, err)
			}
		}
		n.Size = size
		pc += size
		if pc > cpu.MemorySize {
			return fmt.Errorf("line %d: program runs past the end of memory", n.Line)
		}
	}
	return nil
}

// parseLines converts raw source lines into a slice of Node objects.
// Parsing stops at .END.
func (asm *Assembler) parseLines(lines []string) ([]*Node, error) {
	var nodes []*Node
	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSpace(stripComment(line))
		if line == "" {
			continue
		}

		first, rest := splitFirst(line)

		// A leading word that is neither an opcode nor a directive is a label.
		if !isMnemonic(first) && !isDirective(first) {
			label := strings.TrimSuffix(first, ":")
			if !isLabel(label) {
				return nil, fmt.Errorf("line %d: invalid label or unknown instruction %q", lineNo, first)
			}
			nodes = append(nodes, &Node{Type: NodeLabel, Line: lineNo, Label: strings.ToLower(label)})
			if rest == "" {
				continue
			}
			first, rest = splitFirst(rest)
		}

		mnemonic := strings.ToLower(first)
		var operands []string
		if rest != "" {
			operands = splitOperands(rest)
		}

		if isDirective(mnemonic) {
			if mnemonic == ".end" {
				break
			}
			nodes = append(nodes, &Node{Type: NodeDirective, Line: lineNo, Mnemonic: mnemonic, Operands: operands})
			continue
		}
		if !isMnemonic(mnemonic) {
			return nil, fmt.Errorf("line %d: unknown instruction %q", lineNo, first)
		}
		nodes = append(nodes, &Node{Type: NodeInstruction, Line: lineNo, Mnemonic: mnemonic, Operands: operands})
	}
	return nodes, nil
}

// generateInstructionCode dispatches to the appropriate instruction assembler.
func (asm *Assembler) generateInstructionCode(n *Node) ([]uint16, error) {
	var word uint16
	var err error

	switch n.Mnemonic {
	case "add", "and":
		word, err = asm.assembleOperate(n)
	case "not":
		word, err = assembleNot(n)
	case "jmp", "ret", "jsrr", "rti":
		word, err = assembleJump(n)
	case "jsr":
		word, err = asm.assembleJsr(n)
	case "ld", "ldi", "lea", "st", "sti":
		word, err = asm.assemblePCRelative(n)
	case "ldr", "str":
		word, err = asm.assembleBaseOffset(n)
	case "trap", "getc", "out", "puts", "in", "putsp", "halt":
		word, err = asm.assembleTrap(n)
	default:
		if nzp, ok := branchCondition(n.Mnemonic); ok {
			word, err = asm.assembleBranch(n, nzp)
			break
		}
		return nil, fmt.Errorf("unknown instruction: %s", n.Mnemonic)
	}
	if err != nil {
		return nil, err
	}
	return []uint16{word}, nil
}

func isOrig(n *Node) bool {
	return n.Type == NodeDirective && n.Mnemonic == ".orig"
}

// splitFirst splits a line at the first run of whitespace.
func splitFirst(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i == -1 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
