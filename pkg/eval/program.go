// Package eval executes lowered charlang programs: it owns the four
// name-keyed registries (built-in types, builtin functions, user structs,
// user functions), the variable bindings, and the tree-walking evaluator.
package eval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raisfeld-ori/charlang/pkg/ir"
	"github.com/raisfeld-ori/charlang/pkg/value"
)

// Program is one self-contained execution context. Each embedding owns its
// own Program; nothing is shared through globals. Registries only grow during
// a run, and execution is single-threaded throughout.
type Program struct {
	types     map[string]value.Type
	builtins  map[string]BuiltinFunction
	functions map[string]*ir.FuncDecl
	structs   map[string]*ir.StructDecl
	vars      environment
}

// New creates a Program with the five primitive types and the toString
// builtin registered.
func New() *Program {
	p := &Program{
		types:     map[string]value.Type{},
		builtins:  map[string]BuiltinFunction{},
		functions: map[string]*ir.FuncDecl{},
		structs:   map[string]*ir.StructDecl{},
		vars:      environment{},
	}
	for _, t := range []value.Type{
		value.Int(0),
		value.Float(0),
		value.Bool(false),
		value.Char(0),
		value.String(""),
	} {
		// names can not collide on a fresh program
		_ = p.IncludePrimitiveType(t)
	}
	_ = p.IncludeBuiltinFunction(toStringFunc{})
	return p
}

// IncludePrimitiveType registers a primitive type descriptor. Registered
// types are never replaced or removed.
func (p *Program) IncludePrimitiveType(t value.Type) error {
	name := t.TypeName()
	if _, ok := p.types[name]; ok {
		return &ErrDuplicateDefinition{Kind: "type", Name: name}
	}
	p.types[name] = t
	return nil
}

// IncludeBuiltinFunction registers a host function.
func (p *Program) IncludeBuiltinFunction(fn BuiltinFunction) error {
	name := fn.Name()
	if _, ok := p.builtins[name]; ok {
		return &ErrDuplicateDefinition{Kind: "builtin function", Name: name}
	}
	p.builtins[name] = fn
	return nil
}

// IncludeStdLibrary registers a batch of types and functions, stopping at the
// first failure.
func (p *Program) IncludeStdLibrary(types []value.Type, fns []BuiltinFunction) error {
	for _, t := range types {
		if err := p.IncludePrimitiveType(t); err != nil {
			return err
		}
	}
	for _, fn := range fns {
		if err := p.IncludeBuiltinFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

// Run evaluates a top-level action sequence. Declarations register as they
// are encountered; the first bare expression or operation ends the run and
// its value is the result. A sequence with no bare expression yields Unit.
// The first error aborts the run without rolling back prior registrations.
func (p *Program) Run(actions []ir.Action) (value.Value, error) {
	for _, action := range actions {
		switch a := action.(type) {
		case *ir.FuncDecl:
			if err := p.declareFunction(a); err != nil {
				return nil, err
			}
		case *ir.StructDecl:
			if err := p.declareStruct(a); err != nil {
				return nil, err
			}
		case *ir.VarDecl:
			if err := p.declareVariable(p.vars, a); err != nil {
				return nil, fmt.Errorf("on variable %s: %w", a.Name, err)
			}
		case *ir.Conditional:
			res, err := p.runConditional(p.vars, a)
			if err != nil {
				return nil, err
			}
			if res.status != statusNormal {
				return res.value, nil
			}
		case *ir.Operation:
			res, err := p.runOperation(p.vars, a)
			if err != nil {
				return nil, err
			}
			return res.value, nil
		case ir.ExprAction:
			v, err := p.evalExpression(p.vars, a.Expr)
			if err != nil {
				return nil, err
			}
			return v, nil
		default:
			return nil, fmt.Errorf("%w: unknown action %T", value.ErrUnsupportedOperation, action)
		}
	}
	return value.Unit{}, nil
}

// LookupVariable exposes a binding for post-run host inspection.
func (p *Program) LookupVariable(name string) (value.Value, bool) {
	v, ok := p.vars[name]
	return v, ok
}

func (p *Program) declareFunction(decl *ir.FuncDecl) error {
	if _, ok := p.functions[decl.Name]; ok {
		return &ErrDuplicateDefinition{Kind: "function", Name: decl.Name}
	}
	p.functions[decl.Name] = decl
	return nil
}

// declareStruct enforces uniqueness against both user structs and registered
// built-in types, which share call syntax with struct instantiation.
func (p *Program) declareStruct(decl *ir.StructDecl) error {
	if _, ok := p.structs[decl.Name]; ok {
		return &ErrDuplicateDefinition{Kind: "struct", Name: decl.Name}
	}
	if _, ok := p.types[decl.Name]; ok {
		return &ErrDuplicateDefinition{Kind: "struct", Name: decl.Name}
	}
	p.structs[decl.Name] = decl
	return nil
}

func (p *Program) declareVariable(env environment, decl *ir.VarDecl) error {
	v, err := p.extractData(env, decl.Data)
	if err != nil {
		return err
	}
	env[decl.Name] = v
	return nil
}

// String dumps the program state for host-side debugging.
func (p *Program) String() string {
	var b strings.Builder
	b.WriteString("charlang program state:\n")
	writeSection := func(title string, names []string) {
		sort.Strings(names)
		b.WriteString("\n" + title + ":\n")
		for _, name := range names {
			b.WriteString("    " + name + "\n")
		}
	}
	writeSection("functions", keys(p.functions))
	writeSection("structs", keys(p.structs))
	writeSection("variables", keys(p.vars))
	return b.String()
}

func keys[V any](m map[string]V) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
