// Package value implements the charlang value model: immutable runtime values,
// the descriptor protocol registered primitive types implement, and the
// operator dispatch shared by all of them.
package value

import "reflect"

const (
	PrimitiveKind = Kind("primitive")
	RecordKind    = Kind("record")
	ArrayKind     = Kind("array")
	UnitKind      = Kind("unit")
)

type Kind string

// Value is any charlang runtime value. NativeValue returns the JSON-compatible
// external representation (nil, bool, int64, float64, string, or []any) used
// for equality and host interop.
type Value interface {
	Kind() Kind
	TypeName() string
	NativeValue() any
}

// Type is the descriptor a registered primitive type implements. The
// descriptor doubles as the prototype value operators dispatch against, so it
// carries the full Value surface too.
type Type interface {
	Value
	Default() Value
	FromLiteral(args ...any) (Value, error)
	FromValue(args ...Value) (Value, error)
}

// CloneWithValue builds a fresh primitive from a literal: the default value
// of t re-constructed with data.
func CloneWithValue(t Type, data any) (Value, error) {
	if def, ok := t.Default().(Type); ok {
		return def.FromLiteral(data)
	}
	return t.FromLiteral(data)
}

// Equal compares two values by external representation: primitives by type
// name and canonical form, records by name and field-wise equality, arrays
// element-wise, unit only to unit.
func Equal(left, right Value) bool {
	switch l := left.(type) {
	case Record:
		r, ok := right.(Record)
		if !ok || l.Name != r.Name || len(l.Fields) != len(r.Fields) {
			return false
		}
		for i, f := range l.Fields {
			if f.Name != r.Fields[i].Name || !Equal(f.Value, r.Fields[i].Value) {
				return false
			}
		}
		return true
	case Array:
		r, ok := right.(Array)
		if !ok || len(l) != len(r) {
			return false
		}
		for i, v := range l {
			if !Equal(v, r[i]) {
				return false
			}
		}
		return true
	case Unit:
		_, ok := right.(Unit)
		return ok
	default:
		if right.Kind() != PrimitiveKind {
			return false
		}
		// extension types may represent themselves as []any, which the ==
		// operator can not compare
		return left.TypeName() == right.TypeName() &&
			reflect.DeepEqual(left.NativeValue(), right.NativeValue())
	}
}
