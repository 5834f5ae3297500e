package main

import (
	"fmt"
	"log"
	"os"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/lc3/cpu"
	"github.com/Urethramancer/lc3/disassembler"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dislc3: ")

	opt := arg.New("dislc3")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "l", "list", "Print an address and word listing instead of source.", false, false, arg.VarBool, nil)
	opt.SetPositional("IMAGE", "Object image to disassemble.", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "File to write (default stdout).", "", false, arg.VarString)
	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			os.Exit(2)
		}
		log.Printf("%v", err)
		os.Exit(2)
	}

	f, err := os.Open(opt.GetPosString("IMAGE"))
	if err != nil {
		log.Fatalf("%v", err)
	}
	img, err := cpu.ReadImage(f)
	f.Close()
	if err != nil {
		log.Fatalf("%v", err)
	}

	var text string
	if opt.GetBool("list") {
		text = disassembler.List(img)
	} else {
		text = disassembler.Disassemble(img)
	}

	out := opt.GetPosString("OUTPUT")
	if out == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Disassembly written to %s\n", out)
}
