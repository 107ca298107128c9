// Package trace formats CPU register snapshots into a single-line,
// NESTEST-log-compatible trace, the same kind of per-instruction
// dump the teacher's BIOS debugger prints for a human, but aimed at
// a log file instead of a terminal prompt.
package trace

import (
	"fmt"
	"io"

	"github.com/halvard/nescore/cpu"
)

// Writer turns CPU snapshots into formatted trace lines written to w.
type Writer struct {
	w io.Writer
}

// NewWriter wraps a destination writer (a file, or os.Stdout) as a
// cpu.TraceSink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Sink adapts the writer to cpu.TraceSink so it can be passed
// directly to cpu.RunWithTrace.
func (w *Writer) Sink(s cpu.Snapshot) {
	fmt.Fprintln(w.w, Format(s))
}

// Format renders one snapshot as a fixed-width line:
//
//	PC      A:xx X:xx Y:xx P:xx SP:xx CYC:n
func Format(s cpu.Snapshot) string {
	return fmt.Sprintf("%04X  A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		s.PC, s.A, s.X, s.Y, uint8(s.P), s.SP, s.Cycles)
}
