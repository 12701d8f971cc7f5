// Package types defines runtime value types for glox.
package types

import (
	"fmt"
	"math"
	"strconv"
)

// Kind represents the type of a Lox value.
type Kind uint8

const (
	KindNil  Kind = iota // nil
	KindBool             // Boolean value
	KindNum              // Numeric value (float64)
	KindStr              // String value
	KindObj              // Object (callable or instance)
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	case KindObj:
		return "obj"
	default:
		return "unknown"
	}
}

// Object is implemented by heap-allocated runtime values: functions,
// native functions, classes, bound methods, and instances. Objects
// compare by identity and carry their own printed representation.
type Object interface {
	// TypeName returns a user-facing type name ("function", "class",
	// "instance") used in runtime error messages.
	TypeName() string
	// String returns the Lox printed representation.
	String() string
}

// Value represents a Lox runtime value.
// Uses tagged union pattern for type safety; scalar values carry no
// heap allocation. Values are passed by value.
type Value struct {
	kind Kind
	num  float64
	str  string
	obj  Object
}

// Constructors

// Nil returns the nil value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, num: 1}
	}
	return Value{kind: KindBool}
}

// Num creates a numeric value.
func Num(n float64) Value {
	return Value{kind: KindNum, num: n}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}

// Obj creates an object value.
func Obj(o Object) Value {
	return Value{kind: KindObj, obj: o}
}

// Accessors

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil returns true if the value is nil.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// IsBool returns true if the value is a boolean.
func (v Value) IsBool() bool {
	return v.kind == KindBool
}

// IsNum returns true if the value is a number.
func (v Value) IsNum() bool {
	return v.kind == KindNum
}

// IsStr returns true if the value is a string.
func (v Value) IsStr() bool {
	return v.kind == KindStr
}

// IsObj returns true if the value is an object.
func (v Value) IsObj() bool {
	return v.kind == KindObj
}

// AsNum returns the numeric value. Only meaningful for KindNum.
func (v Value) AsNum() float64 {
	return v.num
}

// AsStr returns the string value. Only meaningful for KindStr.
func (v Value) AsStr() string {
	return v.str
}

// AsObj returns the object value, or nil for non-object kinds.
func (v Value) AsObj() Object {
	return v.obj
}

// AsBool returns the Lox truthiness of the value:
// nil and false are falsey, everything else (including 0 and "") is truthy.
func (v Value) AsBool() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.num != 0
	default:
		return true
	}
}

// TypeName returns a user-facing type name for error messages.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNum:
		return "number"
	case KindStr:
		return "string"
	default:
		return v.obj.TypeName()
	}
}

// Format returns the Lox printed representation of the value.
// Integral numbers print without a fractional part ("7", not "7.0");
// other numbers use the shortest round-tripping decimal form.
func (v Value) Format() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.num != 0 {
			return "true"
		}
		return "false"
	case KindNum:
		return FormatNum(v.num)
	case KindStr:
		return v.str
	default:
		return v.obj.String()
	}
}

// String returns a debug representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "Nil()"
	case KindBool:
		return fmt.Sprintf("Bool(%v)", v.num != 0)
	case KindNum:
		return fmt.Sprintf("Num(%s)", FormatNum(v.num))
	case KindStr:
		return fmt.Sprintf("Str(%q)", v.str)
	default:
		return fmt.Sprintf("Obj(%s)", v.obj)
	}
}

// Equal compares two values using Lox equality semantics.
// Values of different kinds are never equal (no coercion); nil equals
// only nil; numbers use ordinary floating-point comparison, so
// NaN != NaN; objects compare by identity.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return (a.num != 0) == (b.num != 0)
	case KindNum:
		return a.num == b.num
	case KindStr:
		return a.str == b.str
	default:
		return a.obj == b.obj
	}
}

// FormatNum formats a number using Lox conventions.
func FormatNum(n float64) string {
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
