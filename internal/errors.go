package internal

import (
	"errors"
	"fmt"
)

// Lexer errors.
var errIllegalChar = errors.New("Illegal character")
var errUnterminatedString = errors.New("Unterminated string")

// Parser errors.
var errExpectedExpression = errors.New("Expect expression")
var errExpectedSemicolon = errors.New("Expect ';' after value")
var errExpectedVarName = errors.New("Expect variable name")
var errExpectedParen = errors.New("Expect '(' here")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errUnclosedBrace = errors.New("Expect '}' after block")
var errExpectedOpeningBrace = errors.New("Expect '{' here")
var errExpectedPropertyName = errors.New("Expect property name after '.'")
var errExpectedMethodName = errors.New("Expect method name")
var errExpectedSuperDot = errors.New("Expect '.' after 'super'")
var errExpectedSuperMethod = errors.New("Expect superclass method name")
var errExpectedFunctionName = errors.New("Expect function name")
var errExpectedParameterName = errors.New("Expect parameter name")
var errExpectedClassName = errors.New("Expect class name")
var errExpectedSuperclassName = errors.New("Expect superclass name")
var errInvalidAssignTarget = errors.New("Invalid assignment target")
var errMaxArguments = errors.New("Can't have more than 255 arguments")
var errMaxParameters = errors.New("Can't have more than 255 parameters")

// Resolver errors.
var errLocalReadInOwnInitializer = errors.New("Can't read local variable in its own initializer")
var errReturnOutsideFunction = errors.New("Can't return from top-level code")
var errReturnValueFromInitializer = errors.New("Can't return a value from an initializer")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass")
var errClassInheritsFromItself = errors.New("A class can't inherit from itself")

// Runtime errors: a fixed message set, reused verbatim so diagnostics
// match regardless of call site.
var errOperandMustBeNumber = errors.New("Operand must be a number.")
var errOperandsMustBeNumbers = errors.New("Operands must be numbers.")
var errOperandsMustBeNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errOnlyCallFunctionsAndClasses = errors.New("Can only call functions and classes.")
var errOnlyInstancesHaveProperties = errors.New("Only instances have properties.")
var errOnlyInstancesHaveFields = errors.New("Only instances have fields.")
var errSuperclassMustBeClass = errors.New("Superclass must be a class.")

func errUndefinedVariable(name string) error {
	return fmt.Errorf("Undefined variable '%s'.", name)
}

func errUndefinedProperty(name string) error {
	return fmt.Errorf("Undefined property '%s'.", name)
}

func errExpectedArgs(want, got int) error {
	return fmt.Errorf("Expected %d arguments but got %d.", want, got)
}

// runtimeError carries the token nearest the failure (the operator, the
// closing paren of a call, or the return keyword) so diagnostics can point
// at a source line. It is raised with panic and caught at the interpreter's
// top-level entry point, the same non-local-exit idiom grotsky uses
// for return.
type runtimeError struct {
	token *token
	err   error
}

func (e *runtimeError) Error() string {
	return e.err.Error()
}

func newRuntimeError(tok *token, err error) *runtimeError {
	return &runtimeError{token: tok, err: err}
}
