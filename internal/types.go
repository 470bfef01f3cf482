package internal

// ltype is the closed set of types the checker works with.
type ltype int

const (
	typeI32 ltype = iota
	typeF64
	typeBool
	typeString
)

func (t ltype) String() string {
	switch t {
	case typeI32:
		return "i32"
	case typeF64:
		return "f64"
	case typeBool:
		return "bool"
	case typeString:
		return "String"
	}
	return "unknown"
}

var typeNames = map[string]ltype{
	"i32":    typeI32,
	"f64":    typeF64,
	"bool":   typeBool,
	"String": typeString,
}

func typeByName(name string) (ltype, bool) {
	t, ok := typeNames[name]
	return t, ok
}
