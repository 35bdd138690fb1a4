package value

import "errors"

var (
	ErrMissingArgument      = errors.New("missing argument")
	ErrTooManyArguments     = errors.New("too many arguments")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrModuloByZero         = errors.New("modulo by zero")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
