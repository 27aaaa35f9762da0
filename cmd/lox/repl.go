package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"lox/internal"
)

// redWriter colors everything written to it red before forwarding to the
// underlying writer, so compile and runtime diagnostics stand out in an
// interactive session without the engine itself knowing about color.
type redWriter struct {
	w *os.File
}

func (r redWriter) Write(p []byte) (int, error) {
	fmt.Fprint(r.w, color.Red(string(p)))
	return len(p), nil
}

// runPrompt reads one line at a time, evaluating each against a session
// that keeps its global environment across lines, echoing the value of
// bare expressions the way an interactive prompt is expected to.
func runPrompt(log *logrus.Logger) {
	sess := internal.NewSession(internal.Options{
		Out: internal.NewStdPrinter(),
		Log: log,
		Err: redWriter{w: os.Stderr},
	})

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Cyan("lox> "))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		sess.EvalLine(line)
	}
}
