package internal

// class is a runtime class value: a name, an optional superclass, and its
// own methods. Method lookup walks the superclass chain, grounded on
// grotsky's grotskyClass.findMethod.
type class struct {
	name       string
	superclass *class
	methods    map[string]*function
}

func (c *class) findMethod(name string) *function {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

// arity is the arity of init if the class (or an ancestor) defines one,
// else 0.
func (c *class) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

// call constructs a new instance, binding and invoking init (if any)
// before returning it, following grotsky's grotskyClass.call.
func (c *class) call(interp *Interpreter, arguments []interface{}) interface{} {
	obj := &instance{class: c, fields: make(map[string]interface{})}
	if init := c.findMethod("init"); init != nil {
		init.bind(obj).call(interp, arguments)
	}
	return obj
}

func (c *class) String() string {
	return c.name
}
