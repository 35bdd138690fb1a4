package value

import "fmt"

type Adder interface {
	Add(right Value) (Value, error)
}

type Subber interface {
	Sub(right Value) (Value, error)
}

type Muler interface {
	Mul(right Value) (Value, error)
}

type Diver interface {
	Div(right Value) (Value, error)
}

type Modder interface {
	Mod(right Value) (Value, error)
}

type Comparable interface {
	Eq(right Value) (Value, error)
	Ne(right Value) (Value, error)
}

type Ordered interface {
	Lt(right Value) (Value, error)
	Le(right Value) (Value, error)
	Gt(right Value) (Value, error)
	Ge(right Value) (Value, error)
}

// Binary dispatches op to the left operand's protocol method. Operands whose
// type does not implement the capability report ErrUnsupportedOperation.
func Binary(op string, left, right Value) (Value, error) {
	switch op {
	case "+":
		if l, ok := left.(Adder); ok {
			return l.Add(right)
		}
	case "-":
		if l, ok := left.(Subber); ok {
			return l.Sub(right)
		}
	case "*":
		if l, ok := left.(Muler); ok {
			return l.Mul(right)
		}
	case "/":
		if l, ok := left.(Diver); ok {
			return l.Div(right)
		}
	case "%":
		if l, ok := left.(Modder); ok {
			return l.Mod(right)
		}
	case "==":
		if l, ok := left.(Comparable); ok {
			return l.Eq(right)
		}
	case "!=":
		if l, ok := left.(Comparable); ok {
			return l.Ne(right)
		}
	case "<":
		if l, ok := left.(Ordered); ok {
			return l.Lt(right)
		}
	case "<=":
		if l, ok := left.(Ordered); ok {
			return l.Le(right)
		}
	case ">":
		if l, ok := left.(Ordered); ok {
			return l.Gt(right)
		}
	case ">=":
		if l, ok := left.(Ordered); ok {
			return l.Ge(right)
		}
	default:
		return nil, fmt.Errorf("%w: unknown operator %q", ErrUnsupportedOperation, op)
	}
	return nil, fmt.Errorf("%w: %s %s %s", ErrUnsupportedOperation, left.TypeName(), op, right.TypeName())
}

// ToBool unwraps a boolean external representation.
func ToBool(v Value) (bool, error) {
	b, ok := v.NativeValue().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrTypeMismatch, v.TypeName())
	}
	return b, nil
}

// ToInt unwraps an integer external representation.
func ToInt(v Value) (int64, error) {
	n, ok := v.NativeValue().(int64)
	if !ok {
		return 0, fmt.Errorf("%w: expected int, got %s", ErrTypeMismatch, v.TypeName())
	}
	return n, nil
}

// ToString unwraps a string external representation.
func ToString(v Value) (string, error) {
	s, ok := v.NativeValue().(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %s", ErrTypeMismatch, v.TypeName())
	}
	return s, nil
}

// arity enforces the single-argument contract shared by every constructor.
func arity(typeName string, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: %s takes one argument", ErrMissingArgument, typeName)
	}
	if n > 1 {
		return fmt.Errorf("%w: %s takes one argument, got %d", ErrTooManyArguments, typeName, n)
	}
	return nil
}
