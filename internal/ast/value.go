package ast

import (
	"math"
	"strconv"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	NilKind ValueKind = iota
	BoolKind
	NumberKind
	StringKind
)

func (k ValueKind) String() string {
	switch k {
	case NilKind:
		return "Nil"
	case BoolKind:
		return "Bool"
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a literal value. The zero Value is nil.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Str    string
}

func NilValue() Value {
	return Value{}
}

func BoolValue(b bool) Value {
	return Value{Kind: BoolKind, Bool: b}
}

func NumberValue(n float64) Value {
	return Value{Kind: NumberKind, Number: n}
}

func StringValue(s string) Value {
	return Value{Kind: StringKind, Str: s}
}

func (v Value) IsNil() bool {
	return v.Kind == NilKind
}

// Equal reports whether v and other hold the same variant and payload.
// Numbers are compared by their IEEE-754 bit pattern: a NaN equals an
// identical NaN, and 0 differs from -0.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case BoolKind:
		return v.Bool == other.Bool
	case NumberKind:
		return math.Float64bits(v.Number) == math.Float64bits(other.Number)
	case StringKind:
		return v.Str == other.Str
	}
	return true
}

func (v Value) String() string {
	switch v.Kind {
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case NumberKind:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case StringKind:
		return strconv.Quote(v.Str)
	}
	return "nil"
}
