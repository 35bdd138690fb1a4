package ir

// Expression is the marker interface for expression nodes.
type Expression interface {
	isExpression()
}

// Literal carries one already-typed constant. Value is one of int64, float64,
// string, rune, or bool; the lowering step guarantees the dynamic type.
type Literal struct {
	Value any
}

func (Literal) isExpression() {}

// Variable references a bound name.
type Variable string

func (Variable) isExpression() {}

// Operation applies Operator to two sub-expressions. Statement-shaped
// operators (Return, Break, Continue, Expr) only use Left.
type Operation struct {
	Operator Operator
	Left     Expression
	Right    Expression
}

func (*Operation) isExpression() {}
func (*Operation) isAction()     {}

// FunctionCall is any call-shaped expression. The runtime resolves Name
// against its four namespaces at evaluation time.
type FunctionCall struct {
	Name string
	Args []Expression
}

func (*FunctionCall) isExpression() {}
