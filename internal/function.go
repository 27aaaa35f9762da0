package internal

import "fmt"

// function is a user-defined function or method value paired with the
// environment it closed over, following grotsky's grotskyFunction
// (internal/grotskyFunction.go) field-for-field, plus isInitializer which
// grotsky's newer internal/ package started adding but never wired up.
type function struct {
	declaration   *functionStmt
	closure       *environment
	isInitializer bool
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

// call binds parameters to argument values in a fresh environment
// enclosing the closure, then executes the body. A returnSignal panic
// unwinds to here and supplies the result, the same idiom grotsky
// uses in grotskyFunction.call via recover().
func (f *function) call(interp *Interpreter, arguments []interface{}) (result interface{}) {
	env := newEnvironment(f.closure)
	for i, param := range f.declaration.params {
		env.define(param.lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(returnSignal); ok {
				if f.isInitializer {
					result = f.closure.getAt(0, "this")
					return
				}
				result = ret.value
				return
			}
			panic(r)
		}
	}()

	interp.executeBlock(f.declaration.body, env)

	if f.isInitializer {
		return f.closure.getAt(0, "this")
	}
	return nil
}

// bind returns a copy of f whose closure has been extended with `this`
// set to instance, i.e. a bound method. No separate "bound method" value
// variant is needed.
func (f *function) bind(instance *instance) *function {
	env := newEnvironment(f.closure)
	env.define("this", instance)
	return &function{
		declaration:   f.declaration,
		closure:       env,
		isInitializer: f.isInitializer,
	}
}

func (f *function) String() string {
	if f.declaration.name == nil {
		return "<fn>"
	}
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

// returnSignal is the non-local exit a `return` statement raises; it
// unwinds blocks (each executeBlock defers environment restoration) up to
// the enclosing call's function.call, which recovers it.
type returnSignal struct {
	value interface{}
}
