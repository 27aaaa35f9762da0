package internal

import (
	"fmt"
	"io"
	"os"
)

// Printer is the interpreter's only observable side effect: writing a
// rendered value followed by a newline. Grounded on grotsky's
// IPrinter (internal/interp.go), which exists precisely so tests can
// capture program output without touching stdout.
type Printer interface {
	Println(a ...interface{}) (int, error)
}

// StdPrinter writes to stdout, the default used outside tests.
type StdPrinter struct {
	Writer io.Writer
}

func NewStdPrinter() *StdPrinter {
	return &StdPrinter{Writer: os.Stdout}
}

func (p *StdPrinter) Println(a ...interface{}) (int, error) {
	return fmt.Fprintln(p.Writer, a...)
}
