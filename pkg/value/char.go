package value

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Char is the built-in single-character type. Its external representation is
// a one-character string; Add and Mul produce strings.
type Char rune

func (c Char) Kind() Kind {
	return PrimitiveKind
}

func (c Char) TypeName() string {
	return "char"
}

func (c Char) NativeValue() any {
	return string(rune(c))
}

func (c Char) Default() Value {
	return Char(0)
}

func (c Char) FromLiteral(args ...any) (Value, error) {
	if err := arity("char", len(args)); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case rune:
		return Char(v), nil
	case string:
		r := []rune(v)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: expected a single character, got %q", ErrInvalidArgument, v)
		}
		return Char(r[0]), nil
	default:
		return nil, fmt.Errorf("%w: expected character literal, got %T", ErrInvalidArgument, args[0])
	}
}

func (c Char) FromValue(args ...Value) (Value, error) {
	if err := arity("char", len(args)); err != nil {
		return nil, err
	}
	if args[0].TypeName() != "char" {
		return nil, fmt.Errorf("%w: expected char, got %s", ErrInvalidArgument, args[0].TypeName())
	}
	s, ok := args[0].NativeValue().(string)
	if !ok || len([]rune(s)) != 1 {
		return nil, fmt.Errorf("%w: malformed char value", ErrInvalidArgument)
	}
	return Char([]rune(s)[0]), nil
}

func (c Char) otherString(right Value) (string, error) {
	switch right.TypeName() {
	case "char", "string":
	default:
		return "", fmt.Errorf("%w: expected char, got %s", ErrInvalidArgument, right.TypeName())
	}
	v, ok := right.NativeValue().(string)
	if !ok {
		return "", fmt.Errorf("%w: malformed char value", ErrInvalidArgument)
	}
	return v, nil
}

func (c Char) binCompare(right Value, f func(string, string) bool) (Value, error) {
	v, err := c.otherString(right)
	if err != nil {
		return nil, err
	}
	return Bool(f(string(rune(c)), v)), nil
}

func (c Char) Add(right Value) (Value, error) {
	v, err := c.otherString(right)
	if err != nil {
		return nil, err
	}
	return String(string(rune(c)) + v), nil
}

func (c Char) Sub(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: char subtraction", ErrUnsupportedOperation)
}

func (c Char) Mul(right Value) (Value, error) {
	count, err := repeatCount(right, len(string(rune(c))))
	if err != nil {
		return nil, err
	}
	return String(strings.Repeat(string(rune(c)), int(count))), nil
}

func (c Char) Div(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: char division", ErrUnsupportedOperation)
}

func (c Char) Mod(right Value) (Value, error) {
	return nil, fmt.Errorf("%w: char modulo", ErrUnsupportedOperation)
}

func (c Char) Eq(right Value) (Value, error) {
	return c.binCompare(right, func(a, b string) bool { return a == b })
}

func (c Char) Ne(right Value) (Value, error) {
	return c.binCompare(right, func(a, b string) bool { return a != b })
}

func (c Char) Lt(right Value) (Value, error) {
	return c.binCompare(right, func(a, b string) bool { return a < b })
}

func (c Char) Le(right Value) (Value, error) {
	return c.binCompare(right, func(a, b string) bool { return a <= b })
}

func (c Char) Gt(right Value) (Value, error) {
	return c.binCompare(right, func(a, b string) bool { return a > b })
}

func (c Char) Ge(right Value) (Value, error) {
	return c.binCompare(right, func(a, b string) bool { return a >= b })
}

func (c Char) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(rune(c)))
}
