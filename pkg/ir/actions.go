package ir

// Action is the marker interface for statement nodes.
type Action interface {
	isAction()
}

// FuncDecl declares a user function.
type FuncDecl struct {
	Name   string
	Params []Param
	Body   []Action
}

func (*FuncDecl) isAction() {}

// VarDecl declares a variable and binds its initializer.
type VarDecl struct {
	Name   string
	Typing Typing
	Data   VariableData
}

func (*VarDecl) isAction() {}

// StructDecl declares a user record type with an ordered field list.
type StructDecl struct {
	Name   string
	Fields []Param
}

func (*StructDecl) isAction() {}

// Conditional is a condition plus two branches. Loop marks conditionals
// lowered from while/for/do-while bodies: the runtime re-tests the condition
// after every pass instead of running Then at most once.
type Conditional struct {
	Condition Expression
	Then      []Action
	Else      []Action
	Loop      bool
}

func (*Conditional) isAction() {}

// ExprAction is a bare expression in statement position.
type ExprAction struct {
	Expr Expression
}

func (ExprAction) isAction() {}
