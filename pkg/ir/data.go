package ir

// VariableData is the initializer union for VarDecl.
type VariableData interface {
	isVariableData()
}

// LiteralData initializes from a constant.
type LiteralData struct {
	Value any
}

func (LiteralData) isVariableData() {}

// StructInstanceData initializes a record by naming its fields.
type StructInstanceData struct {
	Name   string
	Fields []FieldInit
}

func (StructInstanceData) isVariableData() {}

// FieldInit pairs a field name with its initializer.
type FieldInit struct {
	Name string
	Data VariableData
}

// ArrayData initializes an ordered sequence.
type ArrayData struct {
	Elems []VariableData
}

func (ArrayData) isVariableData() {}

// ExpressionData initializes from an arbitrary expression.
type ExpressionData struct {
	Expr Expression
}

func (ExpressionData) isVariableData() {}

// NullData leaves the variable bound to the unit value.
type NullData struct{}

func (NullData) isVariableData() {}
