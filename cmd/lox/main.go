// Command lox is the tree-walking interpreter's entry point: run a
// script file, or drop into an interactive prompt with no arguments.
// Grounded on grotsky's cmd/grotsky/main.go, generalized past a
// single hard-coded source file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"lox/internal"
)

func main() {
	log := newLogger()

	switch len(os.Args) {
	case 1:
		runPrompt(log)
	case 2:
		runFile(os.Args[1], log)
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(64)
	}
}

// newLogger builds the diagnostics logger, configurable via LOX_LOG_LEVEL
// (e.g. "debug", "info", "warn") the same way grotsky's go.mod
// required logrus without ever wiring it up; the level defaults to warn
// so a normal run stays quiet.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if levelName := os.Getenv("LOX_LOG_LEVEL"); levelName != "" {
		if level, err := logrus.ParseLevel(levelName); err == nil {
			log.SetLevel(level)
		} else {
			log.Warnf("LOX_LOG_LEVEL %q is not a valid level, keeping warn", levelName)
		}
	}
	return log
}

func runFile(path string, log *logrus.Logger) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't read %s: %v\n", path, err)
		os.Exit(66)
	}

	result := internal.RunSource(string(source), internal.Options{
		Out: internal.NewStdPrinter(),
		Log: log,
		Err: os.Stderr,
	})

	switch result {
	case internal.RunCompileError:
		os.Exit(65)
	case internal.RunRuntimeError:
		os.Exit(70)
	}
}
