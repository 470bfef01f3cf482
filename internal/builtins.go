package internal

// The operator surface is closed: call position always names one of
// the builtins below. Checker and evaluator both key off these maps,
// so the static rule and the native operation can never drift apart.

var builtinArity = map[string]int{
	"+": 2, "-": 2, "*": 2, "/": 2,
	"+.": 2, "-.": 2, "*.": 2, "/.": 2,
	"=": 2, "<": 2, ">": 2, "<=": 2, ">=": 2,
	"and": 2, "or": 2,
	"not":     1,
	"print":   1,
	"println": 1,
	"type-of": 1,
}

// Integer arithmetic: both operands i32, result i32. Division
// truncates toward zero, which is what Go's int32 division does.
var intArith = map[string]func(a, b int32) (int32, error){
	"+": func(a, b int32) (int32, error) { return a + b, nil },
	"-": func(a, b int32) (int32, error) { return a - b, nil },
	"*": func(a, b int32) (int32, error) { return a * b, nil },
	"/": func(a, b int32) (int32, error) {
		if b == 0 {
			return 0, errDivisionByZero
		}
		return a / b, nil
	},
}

// Float arithmetic: both operands f64, result f64.
var floatArith = map[string]func(a, b float64) (float64, error){
	"+.": func(a, b float64) (float64, error) { return a + b, nil },
	"-.": func(a, b float64) (float64, error) { return a - b, nil },
	"*.": func(a, b float64) (float64, error) { return a * b, nil },
	"/.": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivisionByZero
		}
		return a / b, nil
	},
}

// Comparisons accept two i32 or two f64 and produce a bool.
var intCompare = map[string]func(a, b int32) bool{
	"=":  func(a, b int32) bool { return a == b },
	"<":  func(a, b int32) bool { return a < b },
	">":  func(a, b int32) bool { return a > b },
	"<=": func(a, b int32) bool { return a <= b },
	">=": func(a, b int32) bool { return a >= b },
}

var floatCompare = map[string]func(a, b float64) bool{
	"=":  func(a, b float64) bool { return a == b },
	"<":  func(a, b float64) bool { return a < b },
	">":  func(a, b float64) bool { return a > b },
	"<=": func(a, b float64) bool { return a <= b },
	">=": func(a, b float64) bool { return a >= b },
}

var boolOps = map[string]func(a, b bool) bool{
	"and": func(a, b bool) bool { return a && b },
	"or":  func(a, b bool) bool { return a || b },
}
