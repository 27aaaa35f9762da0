package internal

import "fmt"

// instance is a runtime object: a class handle plus a schemaless field
// map created on first assignment, grounded on grotsky's
// grotskyObject.
type instance struct {
	class  *class
	fields map[string]interface{}
}

// get looks up name first among fields, then methods along the class
// chain; a found method comes back bound to this instance.
func (i *instance) get(name *token) interface{} {
	if value, ok := i.fields[name.lexeme]; ok {
		return value
	}
	if method := i.class.findMethod(name.lexeme); method != nil {
		return method.bind(i)
	}
	panic(newRuntimeError(name, errUndefinedProperty(name.lexeme)))
}

func (i *instance) set(name *token, value interface{}) {
	i.fields[name.lexeme] = value
}

func (i *instance) String() string {
	return fmt.Sprintf("%s instance", i.class.name)
}
