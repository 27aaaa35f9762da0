package internal

import "time"

// defineNatives installs the native functions exposed to scripts, the
// same pattern as grotsky's defineGlobals (internal/grotskyGlobals.go)
// but scoped to the single native function this language exposes.
func defineNatives(globals *environment) {
	globals.define("clock", &nativeFn{
		name:       "clock",
		arityValue: 0,
		fn: func(interp *Interpreter, arguments []interface{}) interface{} {
			return float64(time.Now().UnixNano()) / float64(time.Second)
		},
	})
}
