package eval

import (
	"fmt"
	"maps"

	"github.com/raisfeld-ori/charlang/pkg/ir"
	"github.com/raisfeld-ori/charlang/pkg/value"
)

// environment is a flat name-to-value binding set. Function calls evaluate
// against an independent copy taken at the call site, so callee mutations
// never leak back to the caller.
type environment map[string]value.Value

// status distinguishes normal completion from the non-local exits return,
// break, and continue.
type status int

const (
	statusNormal status = iota
	statusReturn
	statusBreak
	statusContinue
)

// result pairs a control status with the value it carries. Break and
// continue always carry Unit.
type result struct {
	status status
	value  value.Value
}

func normal(v value.Value) result {
	return result{status: statusNormal, value: v}
}

// runActions evaluates a body in order. The first non-normal status stops
// the sequence and propagates unchanged; otherwise the result is the last
// evaluated value.
func (p *Program) runActions(env environment, actions []ir.Action) (result, error) {
	last := normal(value.Unit{})
	for _, action := range actions {
		res, err := p.runAction(env, action)
		if err != nil {
			return result{}, err
		}
		if res.status != statusNormal {
			return res, nil
		}
		last = res
	}
	return last, nil
}

func (p *Program) runAction(env environment, action ir.Action) (result, error) {
	switch a := action.(type) {
	case *ir.FuncDecl:
		if err := p.declareFunction(a); err != nil {
			return result{}, err
		}
		return normal(value.Unit{}), nil
	case *ir.StructDecl:
		if err := p.declareStruct(a); err != nil {
			return result{}, err
		}
		return normal(value.Unit{}), nil
	case *ir.VarDecl:
		if err := p.declareVariable(env, a); err != nil {
			return result{}, fmt.Errorf("on variable %s: %w", a.Name, err)
		}
		return normal(value.Unit{}), nil
	case *ir.Conditional:
		return p.runConditional(env, a)
	case *ir.Operation:
		return p.runOperation(env, a)
	case ir.ExprAction:
		v, err := p.evalExpression(env, a.Expr)
		if err != nil {
			return result{}, err
		}
		return normal(v), nil
	default:
		return result{}, fmt.Errorf("%w: unknown action %T", value.ErrUnsupportedOperation, action)
	}
}

// runOperation handles statement-position operations: the control-flow
// operators raise their signal, everything else evaluates as an expression.
func (p *Program) runOperation(env environment, op *ir.Operation) (result, error) {
	switch op.Operator {
	case ir.Return:
		v, err := p.evalOperand(env, op.Left)
		if err != nil {
			return result{}, err
		}
		return result{status: statusReturn, value: v}, nil
	case ir.Break:
		return result{status: statusBreak, value: value.Unit{}}, nil
	case ir.Continue:
		return result{status: statusContinue, value: value.Unit{}}, nil
	case ir.Expr:
		v, err := p.evalOperand(env, op.Left)
		if err != nil {
			return result{}, err
		}
		return normal(v), nil
	default:
		v, err := p.evalExpression(env, op)
		if err != nil {
			return result{}, err
		}
		return normal(v), nil
	}
}

// runConditional evaluates an if or, when Loop is set, a lowered loop. Loops
// iterate rather than recurse so stack depth stays independent of the
// iteration count.
func (p *Program) runConditional(env environment, c *ir.Conditional) (result, error) {
	if !c.Loop {
		b, err := p.condition(env, c.Condition)
		if err != nil {
			return result{}, err
		}
		if b {
			return p.runActions(env, c.Then)
		}
		if len(c.Else) == 0 {
			return normal(value.Unit{}), nil
		}
		return p.runActions(env, c.Else)
	}

	for {
		b, err := p.condition(env, c.Condition)
		if err != nil {
			return result{}, err
		}
		if !b {
			break
		}
		res, err := p.runActions(env, c.Then)
		if err != nil {
			return result{}, err
		}
		switch res.status {
		case statusBreak:
			return normal(value.Unit{}), nil
		case statusReturn:
			return res, nil
		}
		// normal and continue both re-test the condition
	}
	return normal(value.Unit{}), nil
}

func (p *Program) condition(env environment, expr ir.Expression) (bool, error) {
	v, err := p.evalExpression(env, expr)
	if err != nil {
		return false, err
	}
	if v.TypeName() != "bool" {
		return false, fmt.Errorf("%w: condition must be bool, got %s", value.ErrTypeMismatch, v.TypeName())
	}
	return value.ToBool(v)
}

// evalOperand tolerates the padding operand the lowering step attaches to
// one-sided operations.
func (p *Program) evalOperand(env environment, expr ir.Expression) (value.Value, error) {
	if expr == nil {
		return value.Unit{}, nil
	}
	return p.evalExpression(env, expr)
}

func (p *Program) evalExpression(env environment, expr ir.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case ir.Literal:
		return p.literalValue(e.Value)
	case ir.Variable:
		// unknown names in expression position read as Unit
		if v, ok := env[string(e)]; ok {
			return v, nil
		}
		return value.Unit{}, nil
	case *ir.FunctionCall:
		return p.call(env, e)
	case *ir.Operation:
		return p.evalOperation(env, e)
	default:
		return nil, fmt.Errorf("%w: unknown expression %T", value.ErrUnsupportedOperation, expr)
	}
}

func (p *Program) evalOperation(env environment, op *ir.Operation) (value.Value, error) {
	switch op.Operator {
	case ir.Assignment:
		name, ok := op.Left.(ir.Variable)
		if !ok {
			return nil, fmt.Errorf("%w: assignment target must be a variable", value.ErrInvalidArgument)
		}
		v, err := p.evalExpression(env, op.Right)
		if err != nil {
			return nil, err
		}
		env[string(name)] = v
		return v, nil
	case ir.Comma:
		left, err := p.evalExpression(env, op.Left)
		if err != nil {
			return nil, err
		}
		if _, err := p.evalExpression(env, op.Right); err != nil {
			return nil, err
		}
		return left, nil
	case ir.And, ir.Or:
		return p.evalLogical(env, op)
	case ir.ArrayAccess:
		return p.evalArrayAccess(env, op)
	case ir.MemberAccess:
		return p.evalMemberAccess(env, op)
	case ir.Return, ir.Break, ir.Continue, ir.Expr, ir.Ternary:
		return nil, fmt.Errorf("%w: %q in expression position", value.ErrUnsupportedOperation, op.Operator)
	default:
		left, err := p.evalExpression(env, op.Left)
		if err != nil {
			return nil, err
		}
		right, err := p.evalExpression(env, op.Right)
		if err != nil {
			return nil, err
		}
		return value.Binary(string(op.Operator), left, right)
	}
}

// evalLogical checks both operands are booleans by type name, then
// dispatches to the boolean protocol: Add is AND, Sub is OR.
func (p *Program) evalLogical(env environment, op *ir.Operation) (value.Value, error) {
	left, err := p.evalExpression(env, op.Left)
	if err != nil {
		return nil, err
	}
	right, err := p.evalExpression(env, op.Right)
	if err != nil {
		return nil, err
	}
	if left.TypeName() != "bool" || right.TypeName() != "bool" {
		return nil, fmt.Errorf("%w: %q requires bool operands, got %s and %s",
			value.ErrTypeMismatch, op.Operator, left.TypeName(), right.TypeName())
	}
	if op.Operator == ir.And {
		return value.Binary("+", left, right)
	}
	return value.Binary("-", left, right)
}

func (p *Program) evalArrayAccess(env environment, op *ir.Operation) (value.Value, error) {
	left, err := p.evalExpression(env, op.Left)
	if err != nil {
		return nil, err
	}
	arr, ok := left.(value.Array)
	if !ok {
		return nil, fmt.Errorf("%w: can not index %s", value.ErrTypeMismatch, left.TypeName())
	}
	idxValue, err := p.evalExpression(env, op.Right)
	if err != nil {
		return nil, err
	}
	idx, err := value.ToInt(idxValue)
	if err != nil {
		return nil, err
	}
	v, ok := arr.Index(idx)
	if !ok {
		return nil, fmt.Errorf("%w: index %d out of range for array of %d", value.ErrInvalidArgument, idx, arr.Len())
	}
	return v, nil
}

func (p *Program) evalMemberAccess(env environment, op *ir.Operation) (value.Value, error) {
	left, err := p.evalExpression(env, op.Left)
	if err != nil {
		return nil, err
	}
	rec, ok := left.(value.Record)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no members", value.ErrTypeMismatch, left.TypeName())
	}
	name, ok := op.Right.(ir.Variable)
	if !ok {
		return nil, fmt.Errorf("%w: member access needs a field name", value.ErrInvalidArgument)
	}
	v, ok := rec.Lookup(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %s", ErrUnknownField, rec.Name, name)
	}
	return v, nil
}

// call resolves a call-shaped expression against the four namespaces in
// priority order: user function, builtin function, user struct, built-in
// type. Arguments evaluate left to right before resolution dispatch.
func (p *Program) call(env environment, call *ir.FunctionCall) (value.Value, error) {
	args := make([]value.Value, 0, len(call.Args))
	for _, arg := range call.Args {
		v, err := p.evalExpression(env, arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if fn, ok := p.functions[call.Name]; ok {
		return p.callFunction(env, fn, args)
	}
	if fn, ok := p.builtins[call.Name]; ok {
		return fn.Run(args)
	}
	if decl, ok := p.structs[call.Name]; ok {
		return p.instantiate(decl, args)
	}
	if t, ok := p.types[call.Name]; ok {
		return t.FromValue(args...)
	}
	return nil, &ErrUndefinedName{Name: call.Name}
}

// callFunction runs a user function against a copy of the caller's bindings
// with the arguments bound over it. A return signal yields its operand;
// otherwise the body's last value is the call result.
func (p *Program) callFunction(env environment, fn *ir.FuncDecl, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrArityMismatch, fn.Name, len(fn.Params), len(args))
	}
	callEnv := maps.Clone(env)
	for i, param := range fn.Params {
		callEnv[param.Name] = args[i]
	}
	res, err := p.runActions(callEnv, fn.Body)
	if err != nil {
		return nil, err
	}
	return res.value, nil
}

func (p *Program) instantiate(decl *ir.StructDecl, args []value.Value) (value.Value, error) {
	if len(args) != len(decl.Fields) {
		return nil, fmt.Errorf("%w: struct %s has %d fields, got %d",
			ErrArityMismatch, decl.Name, len(decl.Fields), len(args))
	}
	fields := make([]value.Field, 0, len(decl.Fields))
	for i, field := range decl.Fields {
		fields = append(fields, value.Field{Name: field.Name, Value: args[i]})
	}
	return value.Record{Name: decl.Name, Fields: fields}, nil
}

// literalValue turns an already-typed literal into a primitive through the
// registered type for its canonical name.
func (p *Program) literalValue(data any) (value.Value, error) {
	var name string
	switch data.(type) {
	case int64:
		name = "int"
	case float64:
		name = "float"
	case string:
		name = "string"
	case rune:
		name = "char"
	case bool:
		name = "bool"
	default:
		return nil, fmt.Errorf("%w: unsupported literal %T", value.ErrInvalidArgument, data)
	}
	t, ok := p.types[name]
	if !ok {
		return nil, &ErrUndefinedName{Name: name}
	}
	return value.CloneWithValue(t, data)
}

// extractData evaluates a variable initializer.
func (p *Program) extractData(env environment, data ir.VariableData) (value.Value, error) {
	switch d := data.(type) {
	case ir.LiteralData:
		return p.literalValue(d.Value)
	case ir.StructInstanceData:
		return p.instantiateNamed(env, d)
	case ir.ArrayData:
		elems := make(value.Array, 0, len(d.Elems))
		for _, elem := range d.Elems {
			v, err := p.extractData(env, elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return elems, nil
	case ir.ExpressionData:
		return p.evalExpression(env, d.Expr)
	case ir.NullData:
		return value.Unit{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown initializer %T", value.ErrInvalidArgument, data)
	}
}

// instantiateNamed builds a record from named field initializers. Every
// declared field must be supplied exactly once, and naming an undeclared
// field is an error rather than silently dropped.
func (p *Program) instantiateNamed(env environment, data ir.StructInstanceData) (value.Value, error) {
	decl, ok := p.structs[data.Name]
	if !ok {
		return nil, &ErrUndefinedName{Name: data.Name}
	}

	supplied := make(map[string]ir.VariableData, len(data.Fields))
	for _, f := range data.Fields {
		if _, ok := supplied[f.Name]; ok {
			return nil, fmt.Errorf("%w: struct %s field %s initialized twice",
				value.ErrInvalidArgument, decl.Name, f.Name)
		}
		supplied[f.Name] = f.Data
	}
	for _, f := range data.Fields {
		found := false
		for _, declared := range decl.Fields {
			if declared.Name == f.Name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: struct %s has no field %s", ErrUnknownField, decl.Name, f.Name)
		}
	}

	fields := make([]value.Field, 0, len(decl.Fields))
	for _, declared := range decl.Fields {
		init, ok := supplied[declared.Name]
		if !ok {
			return nil, fmt.Errorf("%w: struct %s missing field %s", ErrArityMismatch, decl.Name, declared.Name)
		}
		v, err := p.extractData(env, init)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Name: declared.Name, Value: v})
	}
	return value.Record{Name: decl.Name, Fields: fields}, nil
}
