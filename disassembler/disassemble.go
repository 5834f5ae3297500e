package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/lc3/cpu"
)

// Decode returns the mnemonic and operands of the instruction word at pc.
// PC-relative targets are printed as absolute addresses.
func Decode(word, pc uint16) (string, string) {
	return decode(word, pc, absoluteTarget)
}

// Format renders one instruction as "MNEMONIC operands".
func Format(word, pc uint16) string {
	mn, ops := Decode(word, pc)
	if ops == "" {
		return mn
	}
	return mn + " " + ops
}

// List prints one line per cell: address, raw word and decoded instruction.
func List(img cpu.Image) string {
	var out strings.Builder
	for i, word := range img.Code {
		addr := img.Origin + uint16(i)
		fmt.Fprintf(&out, "%s  %04X  %s\n", hexWord(addr), word, Format(word, addr))
	}
	return out.String()
}

// decode returns the mnemonic and operand string of one word.
func decode(word, pc uint16, target targetFormatter) (string, string) {
	inst := cpu.Instruction(word)
	switch inst.Op() {
	case cpu.BR:
		return decodeBranch(inst, pc, target)
	case cpu.ADD, cpu.AND:
		return decodeOperate(inst)
	case cpu.NOT:
		return decodeNot(inst)
	case cpu.LD, cpu.LDI, cpu.LEA, cpu.ST, cpu.STI:
		return decodePCRelative(inst, pc, target)
	case cpu.LDR, cpu.STR:
		return decodeBaseOffset(inst)
	case cpu.JMP:
		return decodeJmp(inst)
	case cpu.JSR:
		return decodeJsr(inst, pc, target)
	case cpu.TRAP:
		return decodeTrap(inst)
	case cpu.RTI:
		return "RTI", ""
	}
	return ".FILL", hexWord(word)
}

// Disassemble turns an image back into assembler source.
// Cells reachable from the origin become instructions; the rest become data.
func Disassemble(img cpu.Image) string {
	if len(img.Code) == 0 {
		return fmt.Sprintf("    .ORIG %s\n    .END\n", hexWord(img.Origin))
	}

	inImage := func(addr uint16) bool {
		return int(addr) >= int(img.Origin) && int(addr) < img.End()
	}
	word := func(addr uint16) uint16 {
		return img.Code[addr-img.Origin]
	}

	// --- STAGE 1: Control Flow Analysis ---
	isCode := make(map[uint16]bool)
	labels := make(map[uint16]LabelType)
	addLabel := func(addr uint16, t LabelType) {
		if old, ok := labels[addr]; !ok || t > old {
			labels[addr] = t
		}
	}

	q := newQueue()
	q.push(img.Origin)
	for {
		addr, ok := q.pop()
		if !ok {
			break
		}
		if !inImage(addr) || isCode[addr] {
			continue
		}
		w := word(addr)
		if !canonical(w) {
			continue
		}
		isCode[addr] = true
		inst := cpu.Instruction(w)
		next := addr + 1
		fallThrough := true

		switch inst.Op() {
		case cpu.BR:
			t := next + inst.PCOffset9()
			if inImage(t) {
				addLabel(t, JumpTarget)
				q.push(t)
			}
			fallThrough = inst.NZP() != 7
		case cpu.JSR:
			if inst.JSRLong() {
				t := next + inst.PCOffset11()
				if inImage(t) {
					addLabel(t, SubroutineEntry)
					q.push(t)
				}
			}
		case cpu.LD, cpu.LDI, cpu.LEA, cpu.ST, cpu.STI:
			if t := next + inst.PCOffset9(); inImage(t) {
				addLabel(t, DataReference)
			}
		case cpu.JMP, cpu.RTI:
			fallThrough = false
		case cpu.TRAP:
			fallThrough = inst.TrapVector() != cpu.TrapHALT
		}

		if fallThrough && next != 0 {
			q.push(next)
		}
	}

	// Labels must point at cells in the image to be rendered.
	target := func(t uint16, offset int16) string {
		if _, ok := labels[t]; ok && inImage(t) {
			return labelName(t, labels[t])
		}
		return fmt.Sprintf("#%d", offset)
	}

	// --- STAGE 2: Render Final Output ---
	var out strings.Builder
	fmt.Fprintf(&out, "    %-8s %s\n", ".ORIG", hexWord(img.Origin))

	for i := 0; i < len(img.Code); {
		addr := img.Origin + uint16(i)
		if t, ok := labels[addr]; ok {
			fmt.Fprintf(&out, "%s\n", labelName(addr, t))
		}

		if isCode[addr] {
			mn, ops := decode(img.Code[i], addr, target)
			writeLine(&out, mn, ops)
			i++
			continue
		}

		// Find the extent of this data block: up to the next code cell or label.
		end := i + 1
		for end < len(img.Code) {
			a := img.Origin + uint16(end)
			if _, labelled := labels[a]; labelled || isCode[a] {
				break
			}
			end++
		}
		formatData(&out, img.Code[i:end])
		i = end
	}

	fmt.Fprintf(&out, "    %s\n", ".END")
	return out.String()
}

func writeLine(out *strings.Builder, mn, ops string) {
	if ops == "" {
		fmt.Fprintf(out, "    %s\n", mn)
		return
	}
	fmt.Fprintf(out, "    %-8s %s\n", mn, ops)
}

// addrQueue is a simple worklist queue for addresses to decode.
type addrQueue struct {
	items []uint16
	seen  map[uint16]bool
}

func newQueue() *addrQueue {
	return &addrQueue{seen: make(map[uint16]bool)}
}

func (q *addrQueue) push(addr uint16) {
	if !q.seen[addr] {
		q.items = append(q.items, addr)
		q.seen[addr] = true
	}
}

func (q *addrQueue) pop() (uint16, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a, true
}
