package scheme

import (
	"fmt"
	"strings"
)

type ValueType uint8

const (
	ValueTypeUnit ValueType = iota
	ValueTypeInt
	ValueTypeFloat
	ValueTypeString
	ValueTypeBuiltin
	ValueTypeClosure
)

var valueTypes = map[ValueType]string{
	ValueTypeUnit:    "unit",
	ValueTypeInt:     "int",
	ValueTypeFloat:   "float",
	ValueTypeString:  "string",
	ValueTypeBuiltin: "builtin",
	ValueTypeClosure: "closure",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression.
type Value struct {
	v interface{}

	Type ValueType
}

// Unit is the value of the empty expression.
var Unit = &Value{Type: ValueTypeUnit}

// NewIntValue returns an integer value.
func NewIntValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

// NewFloatValue returns a float value.
func NewFloatValue(v float64) *Value {
	return &Value{v: v, Type: ValueTypeFloat}
}

// NewStringValue returns a text value.
func NewStringValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

func newBuiltinValue(v *Builtin) *Value {
	return &Value{v: v, Type: ValueTypeBuiltin}
}

func newClosureValue(v *Closure) *Value {
	return &Value{v: v, Type: ValueTypeClosure}
}

// Int returns the integer held by the value.
func (v Value) Int() int64 {
	return v.v.(int64)
}

// Float64 returns the float held by the value.
func (v Value) Float64() float64 {
	return v.v.(float64)
}

// Text returns the string contents held by the value.
func (v Value) Text() string {
	return v.v.(string)
}

// Builtin returns the native operation held by the value.
func (v Value) Builtin() *Builtin {
	return v.v.(*Builtin)
}

// Closure returns the user-defined function held by the value.
func (v Value) Closure() *Closure {
	return v.v.(*Closure)
}

// IsNumeric reports whether the value can feed an arithmetic builtin.
func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeInt || v.Type == ValueTypeFloat
}

// String renders the display form the REPL prints.
func (v Value) String() string {
	switch v.Type {
	case ValueTypeUnit:
		return "()"
	case ValueTypeInt:
		return fmt.Sprintf("%d", v.Int())
	case ValueTypeFloat:
		return fmt.Sprintf("%v", v.Float64())
	case ValueTypeString:
		return v.Text()
	case ValueTypeBuiltin:
		return fmt.Sprintf("#<builtin %s>", v.Builtin().Name())
	case ValueTypeClosure:
		return fmt.Sprintf("#<closure (%s)>", strings.Join(v.Closure().Params(), " "))
	}
	return fmt.Sprintf("%v", v.v)
}
