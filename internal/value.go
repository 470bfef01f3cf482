package internal

import (
	"strconv"
	"strings"
)

// value is a runtime value. The Go type of the concrete
// implementation is the runtime tag: it always matches the ltype the
// checker assigned to the originating expression.
type value interface {
	vtype() ltype
	// String is the plain display form used by print/println
	String() string
	// repr is the REPL echo form (strings quoted)
	repr() string
}

type ruspInt int32

func (v ruspInt) vtype() ltype { return typeI32 }

func (v ruspInt) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v ruspInt) repr() string { return v.String() }

type ruspFloat float64

func (v ruspFloat) vtype() ltype { return typeF64 }

func (v ruspFloat) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	// whole floats still display a decimal point: 4.0, not 4
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (v ruspFloat) repr() string { return v.String() }

type ruspBool bool

func (v ruspBool) vtype() ltype { return typeBool }

func (v ruspBool) String() string {
	return strconv.FormatBool(bool(v))
}

func (v ruspBool) repr() string { return v.String() }

type ruspString string

func (v ruspString) vtype() ltype { return typeString }

func (v ruspString) String() string { return string(v) }

func (v ruspString) repr() string {
	return strconv.Quote(string(v))
}
