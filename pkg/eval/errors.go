package eval

import (
	"errors"
	"fmt"
)

// ErrUndefinedName reports a call or instantiation of a name absent from all
// four namespaces.
type ErrUndefinedName struct {
	Name string
}

func (e *ErrUndefinedName) Error() string {
	return fmt.Sprintf("undefined name: %s", e.Name)
}

// ErrDuplicateDefinition reports a declaration or registration reusing a name
// already taken in its namespace.
type ErrDuplicateDefinition struct {
	Kind string
	Name string
}

func (e *ErrDuplicateDefinition) Error() string {
	return fmt.Sprintf("%s %q is already defined", e.Kind, e.Name)
}

var (
	ErrArityMismatch = errors.New("arity mismatch")
	ErrUnknownField  = errors.New("unknown field")
)
