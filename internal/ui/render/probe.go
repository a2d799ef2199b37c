package render

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Capabilities is resolved once at startup and never re-probed mid-render.
type Capabilities struct {
	RichTable   bool
	Chart       bool
	Interactive bool
}

// Probe inspects the attached streams. chartAvailable comes from the chart
// backend compiled into the binary.
func Probe(stdin, stdout *os.File, chartAvailable bool) Capabilities {
	outTTY := isTerminal(stdout)
	return Capabilities{
		RichTable:   outTTY,
		Chart:       chartAvailable,
		Interactive: outTTY && isTerminal(stdin),
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
