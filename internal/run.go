package internal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// RunResult mirrors the CLI's three exit codes without tying this
// package to os.Exit.
type RunResult int

const (
	RunOK RunResult = iota
	RunCompileError
	RunRuntimeError
)

// Options configures one run of the pipeline. Grounded on grotsky's
// RunSourceWithPrinter (internal/interp.go), which threads a printer
// through the same way; Log is new, wiring the logging dependency
// grotsky's go.mod already required but never imported.
type Options struct {
	Out Printer
	Log *logrus.Logger
	Err io.Writer
}

// RunSource lexes, parses, resolves, and evaluates source in one shot,
// writing diagnostics to opts.Err and program output through opts.Out.
func RunSource(source string, opts Options) RunResult {
	if opts.Err == nil {
		panic("RunSource: opts.Err must be set")
	}

	state := newInterpreterState(source, opts.Log, opts.Out)

	lex := newLexer(source, state)
	state.tokens = lex.scan()

	if !state.valid() {
		state.printErrors(opts.Err)
		return RunCompileError
	}

	p := newParser(state)
	p.parse()

	if !state.valid() {
		state.printErrors(opts.Err)
		return RunCompileError
	}

	res := newResolver(state)
	res.resolve(state.stmts)

	if !state.valid() {
		state.printErrors(opts.Err)
		return RunCompileError
	}

	interp := newInterpreter(state)
	interp.Interpret(state.stmts)

	if state.runtimeErr != nil {
		reportRuntimeError(opts.Err, state.runtimeErr)
		return RunRuntimeError
	}

	return RunOK
}

// Session is a REPL's persistent half of the pipeline: one interpreter
// (and so one global environment) reused across lines, so a variable,
// function, or class declared on one line is visible on the next. The
// lexer, parser, and resolver, by contrast, are stateless per line.
type Session struct {
	interp *Interpreter
	opts   Options
}

func NewSession(opts Options) *Session {
	state := newInterpreterState("", opts.Log, opts.Out)
	return &Session{interp: newInterpreter(state), opts: opts}
}

// EvalLine runs one line of REPL input against the session's standing
// environment. When the line parses to exactly one bare expression
// statement, its value is echoed through opts.Out instead of being
// silently discarded - the one REPL-only deviation from file semantics.
func (sess *Session) EvalLine(source string) RunResult {
	if sess.opts.Err == nil {
		panic("Session.EvalLine: opts.Err must be set")
	}

	state := sess.interp.state
	state.source = source
	state.tokens = nil
	state.stmts = nil
	state.errors = nil
	state.runtimeErr = nil

	lex := newLexer(source, state)
	state.tokens = lex.scan()
	if !state.valid() {
		state.printErrors(sess.opts.Err)
		return RunCompileError
	}

	p := newParser(state)
	p.parse()
	if !state.valid() {
		state.printErrors(sess.opts.Err)
		return RunCompileError
	}

	res := newResolver(state)
	res.resolve(state.stmts)
	if !state.valid() {
		state.printErrors(sess.opts.Err)
		return RunCompileError
	}

	if len(state.stmts) == 1 {
		if exprStmt, ok := state.stmts[0].(*expressionStmt); ok {
			value := sess.evalGuarded(exprStmt.expression)
			if state.runtimeErr != nil {
				reportRuntimeError(sess.opts.Err, state.runtimeErr)
				return RunRuntimeError
			}
			sess.opts.Out.Println("=>", stringify(value))
			return RunOK
		}
	}

	sess.interp.Interpret(state.stmts)
	if state.runtimeErr != nil {
		reportRuntimeError(sess.opts.Err, state.runtimeErr)
		return RunRuntimeError
	}
	return RunOK
}

func (sess *Session) evalGuarded(e expr) (value interface{}) {
	state := sess.interp.state
	defer func() {
		if r := recover(); r != nil {
			if rtErr, ok := r.(*runtimeError); ok {
				state.runtimeErr = rtErr
				return
			}
			panic(r)
		}
	}()
	return sess.interp.evaluate(e)
}

func reportRuntimeError(w io.Writer, err *runtimeError) {
	line := 0
	if err.token != nil {
		line = err.token.line
	}
	fmt.Fprintf(w, "%s\n[line %d]\n", err.err.Error(), line)
}
