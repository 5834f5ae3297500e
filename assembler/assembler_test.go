package assembler_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Urethramancer/lc3/assembler"
)

// Assembles source placed at x3000 and checks the words against an expected hex string.
func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	var expected []uint16
	for _, f := range strings.Fields(expectedHex) {
		var w uint16
		if _, err := fmt.Sscanf(f, "%x", &w); err != nil {
			t.Fatalf("[%s] invalid expected hex word %q: %v", name, f, err)
		}
		expected = append(expected, w)
	}

	img, err := assembler.Assemble(".ORIG x3000\n" + src + "\n.END")
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if img.Origin != 0x3000 {
		t.Fatalf("[%s] origin %04X, want 3000", name, img.Origin)
	}
	if len(img.Code) != len(expected) {
		t.Fatalf("[%s] expected %d words, got %d\nexpected: %04X\ngot:      %04X",
			name, len(expected), len(img.Code), expected, img.Code)
	}
	for i := range img.Code {
		if img.Code[i] != expected[i] {
			t.Errorf("[%s] mismatch at word %d\nexpected: %04X\ngot:      %04X",
				name, i, expected, img.Code)
			break
		}
	}
}

// Assembles source and expects an error mentioning want.
func assembleAndExpectError(t *testing.T, name, src, want string) {
	t.Helper()
	_, err := assembler.Assemble(src)
	if err == nil {
		t.Errorf("[%s] expected an error", name)
		return
	}
	if !strings.Contains(err.Error(), want) {
		t.Errorf("[%s] error %q does not mention %q", name, err, want)
	}
}

func TestOperateEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"ADD_Reg", "ADD R2, R0, R1", "1401"},
		{"ADD_Imm", "add r0, r0, #1", "1021"},
		{"ADD_NegImm", "ADD R0, R0, #-1", "103F"},
		{"ADD_ImmMax", "ADD R7, R7, #15", "1FEF"},
		{"ADD_ImmMin", "ADD R1, R2, #-16", "12B0"},
		{"ADD_HexImm", "ADD R1, R1, x5", "1265"},
		{"AND_Clear", "AND R0, R0, #0", "5020"},
		{"AND_Reg", "AND R3, R4, R5", "5705"},
		{"NOT", "NOT R1, R0", "923F"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestMemoryEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"LD_Offset", "LD R0, #2", "2002"},
		{"LDI_Offset", "LDI R3, #-1", "A7FF"},
		{"ST_Offset", "ST R1, x10", "3210"},
		{"STI_Offset", "STI R1, #2", "B202"},
		{"LEA_Offset", "LEA R2, #3", "E403"},
		{"LDR", "LDR R1, R2, #-1", "62BF"},
		{"STR", "STR R0, R6, #31", "719F"},
		{"LD_Label", "LD R0, DATA\nHALT\nDATA .FILL xBEEF", "2001 F025 BEEF"},
		{"LEA_BackLabel", "HERE LEA R0, HERE", "E1FF"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestFlowControlEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"BR", "BR #0", "0E00"},
		{"BRnzp", "BRnzp #-1", "0FFF"},
		{"BRn", "BRn #4", "0804"},
		{"BRzp", "brzp #1", "0601"},
		{"BRnp_Label", "BRnp SKIP\nHALT\nSKIP RET", "0A01 F025 C1C0"},
		{"BR_Loop", "LOOP: ADD R0, R0, #-1\nBRp LOOP", "103F 03FE"},
		{"JMP", "JMP R3", "C0C0"},
		{"RET", "RET", "C1C0"},
		{"JSR_Offset", "JSR #15", "480F"},
		{"JSR_Label", "JSR SUB\nHALT\nSUB RET", "4801 F025 C1C0"},
		{"JSRR", "JSRR R5", "4140"},
		{"RTI", "RTI", "8000"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestTrapEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"GETC", "GETC", "F020"},
		{"OUT", "OUT", "F021"},
		{"PUTS", "PUTS", "F022"},
		{"IN", "IN", "F023"},
		{"PUTSP", "PUTSP", "F024"},
		{"HALT", "HALT", "F025"},
		{"TRAP_Hex", "TRAP x25", "F025"},
		{"TRAP_Decimal", "TRAP #153", "F099"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestDirectiveEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"FILL_Hex", ".FILL x1234", "1234"},
		{"FILL_Negative", ".FILL #-1", "FFFF"},
		{"FILL_Binary", ".FILL b1010", "000A"},
		{"FILL_Label", "HERE .FILL HERE", "3000"},
		{"BLKW", ".BLKW 3", "0000 0000 0000"},
		{"BLKW_Fill", ".BLKW 2, xFFFF", "FFFF FFFF"},
		{"STRINGZ", `.STRINGZ "Hi"`, "0048 0069 0000"},
		{"STRINGZ_Escapes", `.STRINGZ "a\n\"; b"`, "0061 000A 0022 003B 0020 0062 0000"},
		{"STRINGZ_Empty", `.STRINGZ ""`, "0000"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestLabelResolution(t *testing.T) {
	src := `
	.ORIG x3000
START	LEA R0, MSG   ; comment
	PUTS
	BRnzp END
MSG	.STRINGZ "ok"
END:	HALT
	.END
	ignored after .END`
	asm := assembler.New()
	img, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("failed to assemble: %v", err)
	}
	want := []uint16{0xE002, 0xF022, 0x0E03, 'o', 'k', 0, 0xF025}
	if len(img.Code) != len(want) {
		t.Fatalf("got %04X, want %04X", img.Code, want)
	}
	for i := range want {
		if img.Code[i] != want[i] {
			t.Fatalf("got %04X, want %04X", img.Code, want)
		}
	}

	syms := asm.Symbols()
	wantSyms := []assembler.Symbol{
		{Name: "start", Address: 0x3000},
		{Name: "msg", Address: 0x3003},
		{Name: "end", Address: 0x3006},
	}
	if len(syms) != len(wantSyms) {
		t.Fatalf("symbols: %v", syms)
	}
	for i := range wantSyms {
		if syms[i] != wantSyms[i] {
			t.Errorf("symbol %d: got %v, want %v", i, syms[i], wantSyms[i])
		}
	}

	// Reusing the assembler starts from a clean symbol table.
	if _, err := asm.Assemble(src); err != nil {
		t.Errorf("second assembly failed: %v", err)
	}
}

func TestOriginAndLayout(t *testing.T) {
	img, err := assembler.Assemble(".orig 0x4000\nA .BLKW 2\nB .FILL B\n.end")
	if err != nil {
		t.Fatal(err)
	}
	if img.Origin != 0x4000 || len(img.Code) != 3 || img.Code[2] != 0x4002 {
		t.Errorf("got origin %04X code %04X", img.Origin, img.Code)
	}
}

func TestAssemblerErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"NoOrig", "ADD R0, R0, #1", ".ORIG"},
		{"TwoOrig", ".ORIG x3000\n.ORIG x4000", "only one .ORIG"},
		{"Imm5High", ".ORIG x3000\nADD R0, R0, #16", "imm5"},
		{"Imm5Low", ".ORIG x3000\nADD R0, R0, #-17", "imm5"},
		{"Offset6", ".ORIG x3000\nLDR R0, R1, #32", "offset6"},
		{"PCOffset9", ".ORIG x3000\nBR #256", "PCoffset9"},
		{"PCOffset11", ".ORIG x3000\nJSR #1024", "PCoffset11"},
		{"TrapVector", ".ORIG x3000\nTRAP x100", "TRAP vector"},
		{"FarLabel", ".ORIG x3000\nLD R0, FAR\n.BLKW 300\nFAR .FILL 0", "FAR"},
		{"UndefinedLabel", ".ORIG x3000\nBR NOWHERE", "undefined label"},
		{"DuplicateLabel", ".ORIG x3000\nA HALT\nA HALT", "duplicate label"},
		{"BadRegister", ".ORIG x3000\nADD R8, R0, R0", "register"},
		{"OperandCount", ".ORIG x3000\nNOT R0", "requires 2"},
		{"UnknownOp", ".ORIG x3000\nFOO BAR R1", "line 2"},
		{"BadString", ".ORIG x3000\n.STRINGZ \"x\\q\"", "escape"},
		{"PastMemory", ".ORIG xFFFF\n.BLKW 2", "end of memory"},
		{"BadOrig", ".ORIG x10000", ".ORIG"},
	}
	for _, tc := range tests {
		assembleAndExpectError(t, tc.name, tc.src, tc.want)
	}
}
