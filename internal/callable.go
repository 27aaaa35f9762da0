package internal

// callable is anything invocable with `(...)`: native functions, user
// functions/closures, and classes (construction). Grounded on
// grotsky's grotskyCallable interface.
type callable interface {
	arity() int
	call(interp *Interpreter, arguments []interface{}) interface{}
	String() string
}

// nativeFn is a host routine exposed to scripts, following grotsky's
// nativeFn (internal/grotskyFunction.go) exactly: a name, fixed arity,
// and a Go closure.
type nativeFn struct {
	name       string
	arityValue int
	fn         func(interp *Interpreter, arguments []interface{}) interface{}
}

func (n *nativeFn) arity() int { return n.arityValue }

func (n *nativeFn) call(interp *Interpreter, arguments []interface{}) interface{} {
	return n.fn(interp, arguments)
}

func (n *nativeFn) String() string { return "<native fn>" }
