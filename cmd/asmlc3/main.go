package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/lc3/assembler"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("asmlc3: ")

	opt := arg.New("asmlc3")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "Print the symbol table.", false, false, arg.VarBool, nil)
	opt.SetPositional("SOURCE", "Assembler source file.", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Object file to write (default SOURCE with .obj).", "", false, arg.VarString)
	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			os.Exit(2)
		}
		log.Printf("%v", err)
		os.Exit(2)
	}

	src := opt.GetPosString("SOURCE")
	data, err := os.ReadFile(src)
	if err != nil {
		log.Fatalf("%v", err)
	}

	asm := assembler.New()
	img, err := asm.Assemble(string(data))
	if err != nil {
		log.Fatalf("%s: %v", src, err)
	}

	out := opt.GetPosString("OUTPUT")
	if out == "" {
		out = strings.TrimSuffix(src, filepath.Ext(src)) + ".obj"
	}
	if err := os.WriteFile(out, img.Bytes(), 0644); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("%d words at x%04X written to %s\n", len(img.Code), img.Origin, out)

	if opt.GetBool("symbols") {
		for _, sym := range asm.Symbols() {
			fmt.Printf("x%04X  %s\n", sym.Address, sym.Name)
		}
	}
}
