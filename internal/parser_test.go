package internal

import (
	"bytes"
	"strings"
	"testing"
)

func TestParserPrecedenceAndAssociativity(t *testing.T) {
	checkExpression(t, "1 + 2 * 3", "7")
	checkExpression(t, "(1 + 2) * 3", "9")
	checkExpression(t, "2 - 3 - 4", "-5") // left-associative
	checkExpression(t, "1 < 2 == true", "true")
	checkExpression(t, "!!true", "true")
	checkExpression(t, "-1 + 2", "1")
}

func TestParserLogicalShortCircuitReturnsOperand(t *testing.T) {
	// `or`/`and` return the operand value itself, never a coerced bool.
	checkExpression(t, `nil or "fallback"`, "fallback")
	checkExpression(t, `1 and 2`, "2")
	checkExpression(t, `false and 2`, "false")
}

func TestParserForDesugarsToWhile(t *testing.T) {
	checkStatements(t, `
		var total = 0;
		for (var i = 0; i < 5; i = i + 1) {
			total = total + i;
		}
	`, "total", "10")
}

func TestParserForOmittedInitializerAndIncrement(t *testing.T) {
	checkStatements(t, `
		var i = 0;
		var total = 0;
		for (; i < 3; ) {
			total = total + 1;
			i = i + 1;
		}
	`, "total", "3")
}

// A `for` with every clause omitted is an infinite loop whose only exit is
// a return from the enclosing function, since the language has no break
// statement.
func TestParserForAllClausesOmitted(t *testing.T) {
	checkStatements(t, `
		fun count() {
			var i = 0;
			for (;;) {
				if (i >= 3) return i;
				i = i + 1;
			}
		}
		var total = count();
	`, "total", "3")
}

func TestParserAssignmentTargetMustBeVariableOrProperty(t *testing.T) {
	checkCompileError(t, `1 + 2 = 3;`, errInvalidAssignTarget.Error())
}

func TestParserSynchronizeSurfacesMultipleErrors(t *testing.T) {
	var errBuf bytes.Buffer
	tp := &testPrinter{}
	source := "var = ;\nvar = ;\n"
	res := RunSource(source, Options{Out: tp, Err: &errBuf})
	if res != RunCompileError {
		t.Fatalf("want compile error, got %v", res)
	}
	if strings.Count(errBuf.String(), "[line") < 2 {
		t.Errorf("want at least two reported errors after synchronizing, got:\n%s", errBuf.String())
	}
}

func TestParserMaxArgumentsLimit(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	source := "f(" + strings.Join(args, ",") + ");"
	checkCompileError(t, source, errMaxArguments.Error())
}

func TestParserMaxParametersLimit(t *testing.T) {
	params := make([]string, 256)
	for i := range params {
		params[i] = "p"
	}
	source := "fun f(" + strings.Join(params, ",") + ") {}"
	checkCompileError(t, source, errMaxParameters.Error())
}
