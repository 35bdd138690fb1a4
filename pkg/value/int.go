package value

import "fmt"

// Int is the built-in 64-bit signed integer type.
type Int int64

func (i Int) Kind() Kind {
	return PrimitiveKind
}

func (i Int) TypeName() string {
	return "int"
}

func (i Int) NativeValue() any {
	return (int64)(i)
}

func (i Int) Default() Value {
	return Int(0)
}

func (i Int) FromLiteral(args ...any) (Value, error) {
	if err := arity("int", len(args)); err != nil {
		return nil, err
	}
	n, ok := args[0].(int64)
	if !ok {
		return nil, fmt.Errorf("%w: expected integer literal, got %T", ErrInvalidArgument, args[0])
	}
	return Int(n), nil
}

func (i Int) FromValue(args ...Value) (Value, error) {
	if err := arity("int", len(args)); err != nil {
		return nil, err
	}
	n, err := i.otherInt(args[0])
	if err != nil {
		return nil, err
	}
	return Int(n), nil
}

func (i Int) otherInt(right Value) (int64, error) {
	if right.TypeName() != "int" {
		return 0, fmt.Errorf("%w: expected int, got %s", ErrInvalidArgument, right.TypeName())
	}
	n, ok := right.NativeValue().(int64)
	if !ok {
		return 0, fmt.Errorf("%w: malformed int value", ErrInvalidArgument)
	}
	return n, nil
}

func (i Int) binOp(right Value, f func(int64, int64) int64) (Value, error) {
	n, err := i.otherInt(right)
	if err != nil {
		return nil, err
	}
	return Int(f((int64)(i), n)), nil
}

func (i Int) binCompare(right Value, f func(int64, int64) bool) (Value, error) {
	n, err := i.otherInt(right)
	if err != nil {
		return nil, err
	}
	return Bool(f((int64)(i), n)), nil
}

func (i Int) Add(right Value) (Value, error) {
	return i.binOp(right, func(a, b int64) int64 { return a + b })
}

func (i Int) Sub(right Value) (Value, error) {
	return i.binOp(right, func(a, b int64) int64 { return a - b })
}

func (i Int) Mul(right Value) (Value, error) {
	return i.binOp(right, func(a, b int64) int64 { return a * b })
}

func (i Int) Div(right Value) (Value, error) {
	n, err := i.otherInt(right)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, (int64)(i))
	}
	return Int((int64)(i) / n), nil
}

func (i Int) Mod(right Value) (Value, error) {
	n, err := i.otherInt(right)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %d %% 0", ErrModuloByZero, (int64)(i))
	}
	return Int((int64)(i) % n), nil
}

func (i Int) Eq(right Value) (Value, error) {
	return i.binCompare(right, func(a, b int64) bool { return a == b })
}

func (i Int) Ne(right Value) (Value, error) {
	return i.binCompare(right, func(a, b int64) bool { return a != b })
}

func (i Int) Lt(right Value) (Value, error) {
	return i.binCompare(right, func(a, b int64) bool { return a < b })
}

func (i Int) Le(right Value) (Value, error) {
	return i.binCompare(right, func(a, b int64) bool { return a <= b })
}

func (i Int) Gt(right Value) (Value, error) {
	return i.binCompare(right, func(a, b int64) bool { return a > b })
}

func (i Int) Ge(right Value) (Value, error) {
	return i.binCompare(right, func(a, b int64) bool { return a >= b })
}
