package internal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// compileError is a lexical, syntactic, or static-resolution diagnostic:
// always a line number plus a message, matching grotsky's parseError.
type compileError struct {
	err  error
	line int
}

// interpreterState carries everything one compile-and-run of a source
// string threads through the pipeline: the accumulated tokens, AST,
// resolution table, and any diagnostics raised along the way. Grouping
// this mutable state in one struct (rather than threading return values
// through every pass) follows grotsky's interpreterState.
type interpreterState struct {
	source string
	tokens []*token
	stmts  []stmt

	locals map[expr]int

	errors []compileError

	runtimeErr *runtimeError

	log *logrus.Logger
	out Printer
}

func newInterpreterState(source string, log *logrus.Logger, out Printer) *interpreterState {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	if out == nil {
		out = NewStdPrinter()
	}
	return &interpreterState{
		source: source,
		locals: make(map[expr]int),
		log:    log,
		out:    out,
	}
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, compileError{err: err, line: line})
	s.log.WithFields(logrus.Fields{"phase": "compile", "line": line}).Debug(err.Error())
}

// valid reports whether the pipeline has accumulated no compile-time
// diagnostics so far.
func (s *interpreterState) valid() bool {
	return len(s.errors) == 0
}

// printErrors writes every accumulated compile diagnostic to w, one per
// line in the "[line N] Error: message\n" shape, for lexer, parser and
// resolver errors alike.
func (s *interpreterState) printErrors(w io.Writer) {
	for _, e := range s.errors {
		fmt.Fprintf(w, "[line %d] Error: %s\n", e.line, e.err.Error())
	}
}

// resolve records that expression e, looked up at evaluation time, should
// walk depth environments up the chain from the current one. Keyed by the
// node's own pointer identity, since the AST is pointer-based and every
// node is already a unique, stable handle.
func (s *interpreterState) resolve(e expr, depth int) {
	s.locals[e] = depth
}
