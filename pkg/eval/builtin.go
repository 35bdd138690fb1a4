package eval

import (
	"encoding/json"
	"fmt"

	"github.com/raisfeld-ori/charlang/pkg/value"
)

// BuiltinFunction is a host-provided function callable from script code. It
// lives in its own namespace, resolved after user functions.
type BuiltinFunction interface {
	Name() string
	DeclaredParameters() []string
	Run(args []value.Value) (value.Value, error)
}

// toStringFunc converts any value's external representation to a string
// primitive. It is the only builtin registered by default.
type toStringFunc struct{}

func (toStringFunc) Name() string {
	return "toString"
}

func (toStringFunc) DeclaredParameters() []string {
	return []string{"value"}
}

func (toStringFunc) Run(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: toString takes one argument, got %d", ErrArityMismatch, len(args))
	}
	data, err := json.Marshal(args[0].NativeValue())
	if err != nil {
		return nil, fmt.Errorf("toString: %w", err)
	}
	return value.String(data), nil
}
