package value

import (
	"fmt"
	"math"
	"strings"
)

// String is the built-in string type. Add concatenates (strings and chars),
// Mul repeats by a non-negative int, comparisons are lexicographic.
type String string

func (s String) Kind() Kind {
	return PrimitiveKind
}

func (s String) TypeName() string {
	return "string"
}

func (s String) NativeValue() any {
	return (string)(s)
}

func (s String) Default() Value {
	return String("")
}

func (s String) FromLiteral(args ...any) (Value, error) {
	if err := arity("string", len(args)); err != nil {
		return nil, err
	}
	v, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string literal, got %T", ErrInvalidArgument, args[0])
	}
	return String(v), nil
}

func (s String) FromValue(args ...Value) (Value, error) {
	if err := arity("string", len(args)); err != nil {
		return nil, err
	}
	if args[0].TypeName() != "string" {
		return nil, fmt.Errorf("%w: expected string, got %s", ErrInvalidArgument, args[0].TypeName())
	}
	v, ok := args[0].NativeValue().(string)
	if !ok {
		return nil, fmt.Errorf("%w: malformed string value", ErrInvalidArgument)
	}
	return String(v), nil
}

func (s String) otherString(right Value) (string, error) {
	switch right.TypeName() {
	case "string", "char":
	default:
		return "", fmt.Errorf("%w: expected string, got %s", ErrInvalidArgument, right.TypeName())
	}
	v, ok := right.NativeValue().(string)
	if !ok {
		return "", fmt.Errorf("%w: malformed string value", ErrInvalidArgument)
	}
	return v, nil
}

func (s String) binCompare(right Value, f func(string, string) bool) (Value, error) {
	v, err := s.otherString(right)
	if err != nil {
		return nil, err
	}
	return Bool(f((string)(s), v)), nil
}

func (s String) Add(right Value) (Value, error) {
	v, err := s.otherString(right)
	if err != nil {
		return nil, err
	}
	return String((string)(s) + v), nil
}

func (s String) Sub(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: string subtraction", ErrUnsupportedOperation)
}

func (s String) Mul(right Value) (Value, error) {
	count, err := repeatCount(right, len(s))
	if err != nil {
		return nil, err
	}
	return String(strings.Repeat((string)(s), int(count))), nil
}

func (s String) Div(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: string division", ErrUnsupportedOperation)
}

func (s String) Mod(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: string modulo", ErrUnsupportedOperation)
}

func (s String) Eq(right Value) (Value, error) {
	return s.binCompare(right, func(a, b string) bool { return a == b })
}

func (s String) Ne(right Value) (Value, error) {
	return s.binCompare(right, func(a, b string) bool { return a != b })
}

func (s String) Lt(right Value) (Value, error) {
	return s.binCompare(right, func(a, b string) bool { return a < b })
}

func (s String) Le(right Value) (Value, error) {
	return s.binCompare(right, func(a, b string) bool { return a <= b })
}

func (s String) Gt(right Value) (Value, error) {
	return s.binCompare(right, func(a, b string) bool { return a > b })
}

func (s String) Ge(right Value) (Value, error) {
	return s.binCompare(right, func(a, b string) bool { return a >= b })
}

// repeatCount validates the right operand of string/char repetition. length
// is the byte length of the repeated operand; counts whose product would
// overflow int are rejected so strings.Repeat can not panic.
func repeatCount(right Value, length int) (int64, error) {
	if right.TypeName() != "int" {
		return 0, fmt.Errorf("%w: repetition count must be int, got %s", ErrInvalidArgument, right.TypeName())
	}
	count, ok := right.NativeValue().(int64)
	if !ok {
		return 0, fmt.Errorf("%w: malformed int value", ErrInvalidArgument)
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: negative repetition count %d", ErrInvalidArgument, count)
	}
	if length > 0 && count > int64(math.MaxInt/length) {
		return 0, fmt.Errorf("%w: repeating %d bytes %d times overflows", ErrInvalidArgument, length, count)
	}
	return count, nil
}
