// Package ir holds the lowered representation of a charlang program: a flat
// sequence of actions produced by an external lowering step. The runtime only
// reads it, so every node here is plain data with no behavior attached.
package ir

// Operator identifies a binary operation or a statement-level marker carried
// by an Operation node.
type Operator string

const (
	Add          = Operator("+")
	Subtract     = Operator("-")
	Multiply     = Operator("*")
	Divide       = Operator("/")
	Modulo       = Operator("%")
	Equal        = Operator("==")
	NotEqual     = Operator("!=")
	Less         = Operator("<")
	LessEqual    = Operator("<=")
	Greater      = Operator(">")
	GreaterEqual = Operator(">=")
	And          = Operator("&&")
	Or           = Operator("||")
	ArrayAccess  = Operator("[]")
	MemberAccess = Operator(".")
	Assignment   = Operator("=")
	Ternary      = Operator("?:")
	Comma        = Operator(",")
	Return       = Operator("return")
	Break        = Operator("break")
	Continue     = Operator("continue")
	Expr         = Operator("expr")
)

// Typing is descriptive type metadata attached to declarations. The runtime
// never enforces it.
type Typing struct {
	Name      string
	ArrayDims int
}

// Param is a named slot in a function or struct declaration.
type Param struct {
	Name   string
	Typing Typing
}
