package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raisfeld-ori/charlang/pkg/ir"
	"github.com/raisfeld-ori/charlang/pkg/value"
)

func intLit(n int64) ir.Expression {
	return ir.Literal{Value: n}
}

func binOp(op ir.Operator, left, right ir.Expression) *ir.Operation {
	return &ir.Operation{Operator: op, Left: left, Right: right}
}

func assign(name string, expr ir.Expression) *ir.Operation {
	return &ir.Operation{Operator: ir.Assignment, Left: ir.Variable(name), Right: expr}
}

func ret(expr ir.Expression) *ir.Operation {
	return &ir.Operation{Operator: ir.Return, Left: expr}
}

func intVar(name string, n int64) *ir.VarDecl {
	return &ir.VarDecl{
		Name:   name,
		Typing: ir.Typing{Name: "int"},
		Data:   ir.LiteralData{Value: n},
	}
}

func TestRunReturnsFirstBareExpression(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		intVar("x", 40),
		ir.ExprAction{Expr: binOp(ir.Add, ir.Variable("x"), intLit(2))},
		ir.ExprAction{Expr: intLit(99)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.NativeValue())
}

func TestRunWithoutExpressionYieldsUnit(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{intVar("x", 1)})
	require.NoError(t, err)
	assert.Equal(t, value.UnitKind, v.Kind())
}

func TestUnknownVariableReadsUnit(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{ir.ExprAction{Expr: ir.Variable("nope")}})
	require.NoError(t, err)
	assert.Equal(t, value.UnitKind, v.Kind())
}

func TestPointScenario(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		&ir.StructDecl{Name: "Point", Fields: []ir.Param{
			{Name: "x", Typing: ir.Typing{Name: "int"}},
		}},
		&ir.FuncDecl{Name: "p", Body: []ir.Action{
			ret(&ir.FunctionCall{Name: "Point", Args: []ir.Expression{intLit(5)}}),
		}},
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "p"}},
	})
	require.NoError(t, err)

	rec, ok := v.(value.Record)
	require.True(t, ok)
	assert.Equal(t, "Point", rec.Name)
	assert.Empty(t, cmp.Diff([]any{int64(5)}, rec.NativeValue()))

	x, ok := rec.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, int64(5), x.NativeValue())
}

func TestForLoopBreakRunsBodyTwice(t *testing.T) {
	// for (int i = 0; i < 3; i = i + 1) { if (i == 1) break; }
	p := New()
	_, err := p.Run([]ir.Action{
		intVar("i", 0),
		intVar("count", 0),
		&ir.Conditional{
			Loop:      true,
			Condition: binOp(ir.Less, ir.Variable("i"), intLit(3)),
			Then: []ir.Action{
				assign("count", binOp(ir.Add, ir.Variable("count"), intLit(1))),
				&ir.Conditional{
					Condition: binOp(ir.Equal, ir.Variable("i"), intLit(1)),
					Then:      []ir.Action{&ir.Operation{Operator: ir.Break}},
				},
				assign("i", binOp(ir.Add, ir.Variable("i"), intLit(1))),
			},
		},
	})
	require.NoError(t, err)

	count, ok := p.LookupVariable("count")
	require.True(t, ok)
	assert.Equal(t, int64(2), count.NativeValue())

	i, ok := p.LookupVariable("i")
	require.True(t, ok)
	assert.Equal(t, int64(1), i.NativeValue())
}

func TestContinueSkipsRestOfIteration(t *testing.T) {
	// while (i < 5) { i = i + 1; if (i == 3) continue; hits = hits + 1; }
	p := New()
	_, err := p.Run([]ir.Action{
		intVar("i", 0),
		intVar("hits", 0),
		&ir.Conditional{
			Loop:      true,
			Condition: binOp(ir.Less, ir.Variable("i"), intLit(5)),
			Then: []ir.Action{
				assign("i", binOp(ir.Add, ir.Variable("i"), intLit(1))),
				&ir.Conditional{
					Condition: binOp(ir.Equal, ir.Variable("i"), intLit(3)),
					Then:      []ir.Action{&ir.Operation{Operator: ir.Continue}},
				},
				assign("hits", binOp(ir.Add, ir.Variable("hits"), intLit(1))),
			},
		},
	})
	require.NoError(t, err)

	hits, ok := p.LookupVariable("hits")
	require.True(t, ok)
	assert.Equal(t, int64(4), hits.NativeValue())
}

func TestReturnPropagatesThroughLoop(t *testing.T) {
	// firstAbove(limit) { while (i < 100) { if (i > limit) return i; i = i + 1; } }
	p := New()
	v, err := p.Run([]ir.Action{
		&ir.FuncDecl{
			Name:   "firstAbove",
			Params: []ir.Param{{Name: "limit"}},
			Body: []ir.Action{
				intVar("i", 0),
				&ir.Conditional{
					Loop:      true,
					Condition: binOp(ir.Less, ir.Variable("i"), intLit(100)),
					Then: []ir.Action{
						&ir.Conditional{
							Condition: binOp(ir.Greater, ir.Variable("i"), ir.Variable("limit")),
							Then:      []ir.Action{ret(ir.Variable("i"))},
						},
						assign("i", binOp(ir.Add, ir.Variable("i"), intLit(1))),
					},
				},
			},
		},
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "firstAbove", Args: []ir.Expression{intLit(7)}}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), v.NativeValue())
}

func TestSwitchLowering(t *testing.T) {
	// switch (x) { case 1: r = 10; break; case 2: r = 20; break; default: r = -1; }
	// lowered as a single-pass loop so case breaks terminate the chain
	switchChain := func(x int64) []ir.Action {
		return []ir.Action{
			intVar("x", x),
			intVar("r", 0),
			&ir.VarDecl{Name: "once", Data: ir.LiteralData{Value: true}},
			&ir.Conditional{
				Loop:      true,
				Condition: ir.Variable("once"),
				Then: []ir.Action{
					assign("once", ir.Literal{Value: false}),
					&ir.Conditional{
						Condition: binOp(ir.Equal, ir.Variable("x"), intLit(1)),
						Then: []ir.Action{
							assign("r", intLit(10)),
							&ir.Operation{Operator: ir.Break},
						},
					},
					&ir.Conditional{
						Condition: binOp(ir.Equal, ir.Variable("x"), intLit(2)),
						Then: []ir.Action{
							assign("r", intLit(20)),
							&ir.Operation{Operator: ir.Break},
						},
					},
					assign("r", intLit(-1)),
				},
			},
			ir.ExprAction{Expr: ir.Variable("r")},
		}
	}

	for x, want := range map[int64]int64{1: 10, 2: 20, 9: -1} {
		v, err := New().Run(switchChain(x))
		require.NoError(t, err)
		assert.Equal(t, want, v.NativeValue())
	}
}

func TestCopyOnCallIsolation(t *testing.T) {
	// shadow() { x = 99; return x; } — the caller's x stays untouched
	p := New()
	v, err := p.Run([]ir.Action{
		intVar("x", 1),
		&ir.FuncDecl{Name: "shadow", Body: []ir.Action{
			assign("x", intLit(99)),
			ret(ir.Variable("x")),
		}},
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "shadow"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), v.NativeValue())

	x, ok := p.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), x.NativeValue())
}

func TestCalleeSeesCallerBindingsAtCallTime(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		intVar("base", 10),
		&ir.FuncDecl{Name: "addBase", Params: []ir.Param{{Name: "n"}}, Body: []ir.Action{
			ret(binOp(ir.Add, ir.Variable("base"), ir.Variable("n"))),
		}},
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "addBase", Args: []ir.Expression{intLit(5)}}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), v.NativeValue())
}

func TestFunctionBodyLastValueWithoutReturn(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		&ir.FuncDecl{Name: "f", Body: []ir.Action{
			&ir.Operation{Operator: ir.Expr, Left: intLit(7)},
		}},
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "f"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.NativeValue())
}

func TestFunctionArityMismatch(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.FuncDecl{Name: "f", Params: []ir.Param{{Name: "a"}}, Body: nil},
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "f"}},
	})
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestLogicalOperators(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		ir.ExprAction{Expr: binOp(ir.Or,
			binOp(ir.And, ir.Literal{Value: true}, ir.Literal{Value: false}),
			ir.Literal{Value: true},
		)},
	})
	require.NoError(t, err)
	assert.Equal(t, true, v.NativeValue())
}

func TestLogicalOperatorsRequireBooleans(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		ir.ExprAction{Expr: binOp(ir.And, intLit(1), ir.Literal{Value: true})},
	})
	require.ErrorIs(t, err, value.ErrTypeMismatch)
}

func TestConditionMustBeBoolean(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.Conditional{Condition: intLit(1), Then: []ir.Action{}},
	})
	require.ErrorIs(t, err, value.ErrTypeMismatch)
}

func TestCharLiterals(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		ir.ExprAction{Expr: binOp(ir.Add, ir.Literal{Value: 'a'}, ir.Literal{Value: 'b'})},
	})
	require.NoError(t, err)
	assert.Equal(t, "string", v.TypeName())
	assert.Equal(t, "ab", v.NativeValue())

	v, err = p.Run([]ir.Action{
		&ir.VarDecl{Name: "c", Typing: ir.Typing{Name: "char"}, Data: ir.LiteralData{Value: 'x'}},
		ir.ExprAction{Expr: binOp(ir.Equal, ir.Variable("c"), ir.Literal{Value: 'x'})},
	})
	require.NoError(t, err)
	assert.Equal(t, true, v.NativeValue())

	c, ok := p.LookupVariable("c")
	require.True(t, ok)
	assert.Equal(t, "char", c.TypeName())
	assert.Equal(t, "x", c.NativeValue())
}

func TestCommaYieldsLeft(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		ir.ExprAction{Expr: binOp(ir.Comma, intLit(1), intLit(2))},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.NativeValue())
}

func TestArrayAccess(t *testing.T) {
	p := New()
	actions := []ir.Action{
		&ir.VarDecl{Name: "xs", Data: ir.ArrayData{Elems: []ir.VariableData{
			ir.LiteralData{Value: int64(10)},
			ir.LiteralData{Value: int64(20)},
		}}},
		ir.ExprAction{Expr: binOp(ir.ArrayAccess, ir.Variable("xs"), intLit(1))},
	}
	v, err := p.Run(actions)
	require.NoError(t, err)
	assert.Equal(t, int64(20), v.NativeValue())

	_, err = New().Run([]ir.Action{
		&ir.VarDecl{Name: "xs", Data: ir.ArrayData{Elems: []ir.VariableData{
			ir.LiteralData{Value: int64(10)},
		}}},
		ir.ExprAction{Expr: binOp(ir.ArrayAccess, ir.Variable("xs"), intLit(5))},
	})
	require.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestMemberAccess(t *testing.T) {
	p := New()
	v, err := p.Run([]ir.Action{
		&ir.StructDecl{Name: "Pair", Fields: []ir.Param{{Name: "a"}, {Name: "b"}}},
		&ir.VarDecl{Name: "pair", Data: ir.ExpressionData{
			Expr: &ir.FunctionCall{Name: "Pair", Args: []ir.Expression{intLit(1), intLit(2)}},
		}},
		ir.ExprAction{Expr: binOp(ir.MemberAccess, ir.Variable("pair"), ir.Variable("b"))},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.NativeValue())

	_, err = p.Run([]ir.Action{
		ir.ExprAction{Expr: binOp(ir.MemberAccess, ir.Variable("pair"), ir.Variable("missing"))},
	})
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestStructInstanceData(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.StructDecl{Name: "Pair", Fields: []ir.Param{{Name: "a"}, {Name: "b"}}},
		&ir.VarDecl{Name: "pair", Data: ir.StructInstanceData{Name: "Pair", Fields: []ir.FieldInit{
			{Name: "b", Data: ir.LiteralData{Value: int64(2)}},
			{Name: "a", Data: ir.LiteralData{Value: int64(1)}},
		}}},
	})
	require.NoError(t, err)

	pair, ok := p.LookupVariable("pair")
	require.True(t, ok)
	// fields come out in declaration order regardless of initializer order
	assert.Empty(t, cmp.Diff([]any{int64(1), int64(2)}, pair.NativeValue()))
}

func TestStructInstanceUnknownField(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.StructDecl{Name: "Pair", Fields: []ir.Param{{Name: "a"}}},
		&ir.VarDecl{Name: "pair", Data: ir.StructInstanceData{Name: "Pair", Fields: []ir.FieldInit{
			{Name: "a", Data: ir.LiteralData{Value: int64(1)}},
			{Name: "z", Data: ir.LiteralData{Value: int64(9)}},
		}}},
	})
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestStructInstanceDuplicateField(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.StructDecl{Name: "Pair", Fields: []ir.Param{{Name: "a"}, {Name: "b"}}},
		&ir.VarDecl{Name: "pair", Data: ir.StructInstanceData{Name: "Pair", Fields: []ir.FieldInit{
			{Name: "a", Data: ir.LiteralData{Value: int64(1)}},
			{Name: "a", Data: ir.LiteralData{Value: int64(2)}},
			{Name: "b", Data: ir.LiteralData{Value: int64(3)}},
		}}},
	})
	require.ErrorIs(t, err, value.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "initialized twice")
}

func TestStructInstanceMissingField(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.StructDecl{Name: "Pair", Fields: []ir.Param{{Name: "a"}, {Name: "b"}}},
		&ir.VarDecl{Name: "pair", Data: ir.StructInstanceData{Name: "Pair", Fields: []ir.FieldInit{
			{Name: "a", Data: ir.LiteralData{Value: int64(1)}},
		}}},
	})
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestStructConstructorArityMismatch(t *testing.T) {
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.StructDecl{Name: "Pair", Fields: []ir.Param{{Name: "a"}, {Name: "b"}}},
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "Pair", Args: []ir.Expression{intLit(1)}}},
	})
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestMidRunDeclarationStays(t *testing.T) {
	// declarations made inside a call land in the shared registries
	p := New()
	_, err := p.Run([]ir.Action{
		&ir.FuncDecl{Name: "declare", Body: []ir.Action{
			&ir.FuncDecl{Name: "inner", Body: []ir.Action{ret(intLit(5))}},
			ret(intLit(0)),
		}},
		&ir.VarDecl{Name: "ignored", Data: ir.ExpressionData{Expr: &ir.FunctionCall{Name: "declare"}}},
	})
	require.NoError(t, err)

	v, err := p.Run([]ir.Action{
		ir.ExprAction{Expr: &ir.FunctionCall{Name: "inner"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.NativeValue())
}
