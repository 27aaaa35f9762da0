package internal

import (
	"bytes"
	"fmt"
	"testing"
)

// testPrinter captures every Println call into a string, the same
// capture-instead-of-stdout idiom grotsky's exec_test.go uses its
// testPrinter for.
type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (int, error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Equals(s string) bool {
	if t.printed == s+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

// checkExpression evaluates exp via `print`, asserting the rendered output
// matches result exactly.
func checkExpression(t *testing.T, exp string, result string) {
	t.Helper()
	checkStatements(t, "", exp, result)
}

// checkStatements runs code followed by `print <printExpr>;`, asserting the
// rendered output matches result exactly.
func checkStatements(t *testing.T, code string, printExpr string, result string) {
	t.Helper()
	source := code + "\nprint " + printExpr + ";"
	tp := &testPrinter{}
	var errBuf bytes.Buffer
	res := RunSource(source, Options{Out: tp, Err: &errBuf})
	if res != RunOK {
		t.Fatalf("source failed to run (result %v):\n%s\nstderr:\n%s", res, source, errBuf.String())
	}
	if !tp.Equals(result) {
		t.Errorf("source:\n%s\nwant %q, got %q", source, result, tp.printed)
	}
}

// checkCompileError asserts source fails lexing, parsing, or resolution,
// and that the diagnostic output contains msg.
func checkCompileError(t *testing.T, source string, msg string) {
	t.Helper()
	tp := &testPrinter{}
	var errBuf bytes.Buffer
	res := RunSource(source, Options{Out: tp, Err: &errBuf})
	if res != RunCompileError {
		t.Fatalf("source:\n%s\nwant a compile error, got %v (stderr: %s)", source, res, errBuf.String())
	}
	if !bytes.Contains(errBuf.Bytes(), []byte(msg)) {
		t.Errorf("source:\n%s\nwant stderr to contain %q, got %q", source, msg, errBuf.String())
	}
}

// checkRuntimeError asserts source runs to a runtime error whose message
// is msg and whose reported line is line.
func checkRuntimeError(t *testing.T, source string, msg string, line int) {
	t.Helper()
	tp := &testPrinter{}
	var errBuf bytes.Buffer
	res := RunSource(source, Options{Out: tp, Err: &errBuf})
	if res != RunRuntimeError {
		t.Fatalf("source:\n%s\nwant a runtime error, got %v (stderr: %s)", source, res, errBuf.String())
	}
	want := fmt.Sprintf("%s\n[line %d]\n", msg, line)
	if errBuf.String() != want {
		t.Errorf("source:\n%s\nwant stderr %q, got %q", source, want, errBuf.String())
	}
}
