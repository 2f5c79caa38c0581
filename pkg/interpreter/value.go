package interpreter

import (
	"fmt"
	"strconv"
)

// Type is the static type tag of a runtime value.
type Type int

const (
	TypeUnit Type = iota // result of statements; never declarable
	TypeI32
	TypeBool
	TypeStr
)

func (t Type) String() string {
	switch t {
	case TypeUnit:
		return "unit"
	case TypeI32:
		return "i32"
	case TypeBool:
		return "bool"
	case TypeStr:
		return "str"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// typeForToken maps a type keyword to its Type.
func typeForToken(tt TokenType) (Type, bool) {
	switch tt {
	case TYPE_I32:
		return TypeI32, true
	case TYPE_BOOL:
		return TypeBool, true
	case TYPE_STR:
		return TypeStr, true
	}
	return TypeUnit, false
}

// Value is a runtime value. The concrete variants are IntValue,
// BoolValue, StrValue and Unit.
type Value interface {
	Type() Type
	String() string
}

// IntValue holds an i32 payload. The payload is 64 bits wide; the
// name of the type is the language's, not a storage width.
type IntValue struct {
	V int64
}

func (IntValue) Type() Type       { return TypeI32 }
func (v IntValue) String() string { return strconv.FormatInt(v.V, 10) }

type BoolValue struct {
	V bool
}

func (BoolValue) Type() Type { return TypeBool }
func (v BoolValue) String() string {
	if v.V {
		return "true"
	}
	return "false"
}

// Int returns the 0/1 encoding used when ordering booleans.
func (v BoolValue) Int() int64 {
	if v.V {
		return 1
	}
	return 0
}

type StrValue struct {
	V string
}

func (StrValue) Type() Type       { return TypeStr }
func (v StrValue) String() string { return v.V }

// Unit is the empty result of statements.
type Unit struct{}

func (Unit) Type() Type     { return TypeUnit }
func (Unit) String() string { return "" }

// floorDiv divides rounding toward negative infinity. b must be non-zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
