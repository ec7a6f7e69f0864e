// Package builtins owns the closed set of named builtin type constants,
// primitive type names, and library functions (spec §4.2 "Built-ins").
// Each entry carries its Dhall type (consulted by internal/typecheck)
// and, once its declared arity of arguments has accumulated, a
// reduction rule (invoked by internal/reduction's Application rule).
//
// Grounded on the "registry of name -> (type, Go func)" shape of the
// teacher's internal/eval/builtins_arithmetic.go, builtins_conversion.go
// and builtins_call.go.
package builtins

import "github.com/sunholo/dhallcore/internal/core"

// Evaluator is the minimal callback reduction rules need to materialize
// higher-order builtins like List/build, without this package importing
// internal/reduction (which imports this package for types/arities —
// the dependency only runs one way).
type Evaluator interface {
	Eval(core.Expr) core.Expr
}

// Builtin is one named entry in the closed builtin set.
type Builtin struct {
	Name string
	// Type returns the builtin's Dhall type. A func rather than a plain
	// field because some types (List/fold) are built from shared
	// sub-expressions that are cheaper to construct lazily than to keep
	// as package-level shared mutable trees.
	Type func() core.Expr
	// Arity is the number of arguments the Application rule must
	// accumulate before Reduce is called. 0 for builtins that are
	// already in normal form as bare leaves (Bool, Natural, ...).
	Arity int
	// Reduce performs the builtin's reduction once Arity arguments have
	// been evaluated. ok is false if the builtin is stuck on these
	// particular arguments (e.g. List/head of a non-ListLit), in which
	// case the caller rebuilds the application node instead.
	Reduce func(ev Evaluator, args []core.Expr) (core.Expr, bool)
}

var registry = map[string]*Builtin{}

func register(b *Builtin) { registry[b.Name] = b }

// Lookup returns the builtin named name, if one exists.
func Lookup(name string) (*Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

func typeConst() core.Expr { return &core.Const{Universe: core.UType} }

func init() {
	for _, name := range []string{"Bool", "Natural", "Double", "Text"} {
		name := name
		register(&Builtin{Name: name, Type: typeConst, Arity: 0})
	}

	register(&Builtin{
		Name:  "List",
		Type:  func() core.Expr { return &core.ForAll{ParamName: "_", ParamType: typeConst(), Body: typeConst()} },
		Arity: 1,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			return &core.ListType{Element: args[0]}, true
		},
	})

	register(&Builtin{
		Name:  "Optional",
		Type:  func() core.Expr { return &core.ForAll{ParamName: "_", ParamType: typeConst(), Body: typeConst()} },
		Arity: 1,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			return &core.OptionalType{Element: args[0]}, true
		},
	})

	registerArithmetic()
	registerListOps()
	registerShowOps()
}
