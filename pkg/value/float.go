package value

import (
	"fmt"
	"math"
)

// Float is the built-in 64-bit floating point type.
type Float float64

func (f Float) Kind() Kind {
	return PrimitiveKind
}

func (f Float) TypeName() string {
	return "float"
}

func (f Float) NativeValue() any {
	return (float64)(f)
}

func (f Float) Default() Value {
	return Float(0)
}

func (f Float) FromLiteral(args ...any) (Value, error) {
	if err := arity("float", len(args)); err != nil {
		return nil, err
	}
	n, ok := args[0].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: expected float literal, got %T", ErrInvalidArgument, args[0])
	}
	return Float(n), nil
}

func (f Float) FromValue(args ...Value) (Value, error) {
	if err := arity("float", len(args)); err != nil {
		return nil, err
	}
	n, err := f.otherFloat(args[0])
	if err != nil {
		return nil, err
	}
	return Float(n), nil
}

func (f Float) otherFloat(right Value) (float64, error) {
	if right.TypeName() != "float" {
		return 0, fmt.Errorf("%w: expected float, got %s", ErrInvalidArgument, right.TypeName())
	}
	n, ok := right.NativeValue().(float64)
	if !ok {
		return 0, fmt.Errorf("%w: malformed float value", ErrInvalidArgument)
	}
	return n, nil
}

func (f Float) binOp(right Value, fn func(float64, float64) float64) (Value, error) {
	n, err := f.otherFloat(right)
	if err != nil {
		return nil, err
	}
	return Float(fn((float64)(f), n)), nil
}

func (f Float) binCompare(right Value, fn func(float64, float64) bool) (Value, error) {
	n, err := f.otherFloat(right)
	if err != nil {
		return nil, err
	}
	return Bool(fn((float64)(f), n)), nil
}

func (f Float) Add(right Value) (Value, error) {
	return f.binOp(right, func(a, b float64) float64 { return a + b })
}

func (f Float) Sub(right Value) (Value, error) {
	return f.binOp(right, func(a, b float64) float64 { return a - b })
}

func (f Float) Mul(right Value) (Value, error) {
	return f.binOp(right, func(a, b float64) float64 { return a * b })
}

func (f Float) Div(right Value) (Value, error) {
	n, err := f.otherFloat(right)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, (float64)(f))
	}
	return Float((float64)(f) / n), nil
}

func (f Float) Mod(right Value) (Value, error) {
	n, err := f.otherFloat(right)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %v %% 0", ErrModuloByZero, (float64)(f))
	}
	return Float(math.Mod((float64)(f), n)), nil
}

func (f Float) Eq(right Value) (Value, error) {
	return f.binCompare(right, func(a, b float64) bool { return a == b })
}

func (f Float) Ne(right Value) (Value, error) {
	return f.binCompare(right, func(a, b float64) bool { return a != b })
}

func (f Float) Lt(right Value) (Value, error) {
	return f.binCompare(right, func(a, b float64) bool { return a < b })
}

func (f Float) Le(right Value) (Value, error) {
	return f.binCompare(right, func(a, b float64) bool { return a <= b })
}

func (f Float) Gt(right Value) (Value, error) {
	return f.binCompare(right, func(a, b float64) bool { return a > b })
}

func (f Float) Ge(right Value) (Value, error) {
	return f.binCompare(right, func(a, b float64) bool { return a >= b })
}
