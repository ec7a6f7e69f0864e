package builtins

import "github.com/sunholo/dhallcore/internal/core"

func naturalUnary(name string, f func(uint64) bool) {
	register(&Builtin{
		Name:  name,
		Type:  func() core.Expr { return &core.ForAll{ParamName: "_", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Builtin{Name: "Bool"}} },
		Arity: 1,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			n, ok := args[0].(*core.NaturalLit)
			if !ok {
				return nil, false
			}
			return &core.BoolLit{Value: f(n.Value)}, true
		},
	})
}

func registerArithmetic() {
	naturalUnary("Natural/even", func(n uint64) bool { return n%2 == 0 })
	naturalUnary("Natural/odd", func(n uint64) bool { return n%2 != 0 })
	naturalUnary("Natural/isZero", func(n uint64) bool { return n == 0 })
}
