// Command nescore loads an iNES ROM and runs it in an ebiten window.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/halvard/nescore/cartridge"
	"github.com/halvard/nescore/cpu"
	"github.com/halvard/nescore/internal/console"
	"github.com/halvard/nescore/internal/trace"
)

var (
	romFile  = flag.String("nes_rom", "", "Path to the NES ROM to run.")
	traceLog = flag.Bool("trace", false, "Write a per-instruction execution trace to stderr.")
)

func main() {
	flag.Parse()

	cart, err := cartridge.Load(*romFile)
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}

	var sink cpu.TraceSink
	if *traceLog {
		sink = trace.NewWriter(os.Stderr).Sink
	}

	if err := console.Run(context.Background(), cart, sink); err != nil {
		log.Fatalf("nescore: %v", err)
	}
}
