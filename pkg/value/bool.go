package value

import "fmt"

var (
	True  = Bool(true)
	False = Bool(false)
)

// Bool is the built-in boolean type. Add is logical AND and Sub is logical
// OR; ordering treats false < true.
type Bool bool

func (b Bool) Kind() Kind {
	return PrimitiveKind
}

func (b Bool) TypeName() string {
	return "bool"
}

func (b Bool) NativeValue() any {
	return (bool)(b)
}

func (b Bool) Default() Value {
	return False
}

func (b Bool) FromLiteral(args ...any) (Value, error) {
	if err := arity("bool", len(args)); err != nil {
		return nil, err
	}
	v, ok := args[0].(bool)
	if !ok {
		return nil, fmt.Errorf("%w: expected boolean literal, got %T", ErrInvalidArgument, args[0])
	}
	return Bool(v), nil
}

func (b Bool) FromValue(args ...Value) (Value, error) {
	if err := arity("bool", len(args)); err != nil {
		return nil, err
	}
	v, err := b.otherBool(args[0])
	if err != nil {
		return nil, err
	}
	return Bool(v), nil
}

func (b Bool) otherBool(right Value) (bool, error) {
	if right.TypeName() != "bool" {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrInvalidArgument, right.TypeName())
	}
	v, ok := right.NativeValue().(bool)
	if !ok {
		return false, fmt.Errorf("%w: malformed bool value", ErrInvalidArgument)
	}
	return v, nil
}

func (b Bool) Add(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool((bool)(b) && v), nil
}

func (b Bool) Sub(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool((bool)(b) || v), nil
}

func (b Bool) Mul(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: bool multiplication", ErrUnsupportedOperation)
}

func (b Bool) Div(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: bool division", ErrUnsupportedOperation)
}

func (b Bool) Mod(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: bool modulo", ErrUnsupportedOperation)
}

func (b Bool) Eq(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool((bool)(b) == v), nil
}

func (b Bool) Ne(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool((bool)(b) != v), nil
}

func (b Bool) Lt(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool(!(bool)(b) && v), nil
}

func (b Bool) Le(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool(!(bool)(b) || v), nil
}

func (b Bool) Gt(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool((bool)(b) && !v), nil
}

func (b Bool) Ge(right Value) (Value, error) {
	v, err := b.otherBool(right)
	if err != nil {
		return nil, err
	}
	return Bool((bool)(b) || !v), nil
}
