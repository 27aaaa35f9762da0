package internal

import (
	"math"
	"strconv"
)

// isTruthy implements the language's truthiness coercion: nil and false
// are falsy, everything else (including 0 and "") is truthy. Grounded on
// grotsky's exec.truthy, simplified to Lox's flat value set.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual is structural equality across all value kinds: values of
// different kinds are never equal, nil == nil is true, and NaN is not
// equal to itself (Go's == on float64 already gives us that for free).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	af, aIsNum := a.(float64)
	bf, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return af == bf
	}
	return a == b
}

// stringify renders a value the way print and the REPL echo do:
// integral doubles print without a decimal point, negative
// zero prints as "-0", functions/classes/instances get their distinct
// renderings.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}

	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return stringifyNumber(v)
	case string:
		return v
	case *function:
		return v.String()
	case *nativeFn:
		return v.String()
	case *class:
		return v.String()
	case *instance:
		return v.String()
	}
	return "nil"
}

func stringifyNumber(n float64) string {
	if math.Signbit(n) && n == 0 {
		return "-0"
	}
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
