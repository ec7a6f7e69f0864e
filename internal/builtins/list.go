package builtins

import "github.com/sunholo/dhallcore/internal/core"

// unwindApply decomposes a chain of *core.Apply nodes down to its
// ultimate head. ok is true only when the head is a *core.Builtin; args
// are in application order (first-applied first).
func unwindApply(e core.Expr) (name string, args []core.Expr, ok bool) {
	var chain []core.Expr
	cur := e
	for {
		app, isApp := cur.(*core.Apply)
		if !isApp {
			break
		}
		chain = append(chain, app.Arg)
		cur = app.Fn
	}
	b, isBuiltin := cur.(*core.Builtin)
	if !isBuiltin {
		return "", nil, false
	}
	// chain was collected outermost-first; reverse to application order.
	args = make([]core.Expr, len(chain))
	for i, a := range chain {
		args[len(chain)-1-i] = a
	}
	return b.Name, args, true
}

func registerListOps() {
	register(&Builtin{
		Name: "List/build",
		Type: func() core.Expr {
			a := &core.Var{Name: "a"}
			listT := &core.Var{Name: "list"}
			consType := &core.ForAll{ParamName: "_", ParamType: a, Body: &core.ForAll{ParamName: "_", ParamType: listT, Body: listT}}
			builderType := &core.ForAll{ParamName: "list", ParamType: typeConst(), Body: &core.ForAll{ParamName: "_", ParamType: consType, Body: &core.ForAll{ParamName: "_", ParamType: listT, Body: listT}}}
			return &core.ForAll{ParamName: "a", ParamType: typeConst(),
				Body: &core.ForAll{ParamName: "_", ParamType: builderType, Body: &core.ListType{Element: a}}}
		},
		Arity: 2,
		Reduce: func(ev Evaluator, args []core.Expr) (core.Expr, bool) {
			elem, builder := args[0], args[1]
			// Fusion law: List/build a (List/fold a' xs) => xs.
			if name, foldArgs, ok := unwindApply(builder); ok && name == "List/fold" && len(foldArgs) == 2 {
				return foldArgs[1], true
			}
			// Materialize: builder List (\x -> \xs -> [x] # xs) ([] : List a)
			nilList := &core.ListLit{ElementType: elem}
			cons := &core.Lambda{ParamName: "head", ParamType: elem,
				Body: &core.Lambda{ParamName: "tail", ParamType: &core.ListType{Element: elem},
					Body: &core.Operator{Op: core.ListAppend,
						Arg1: &core.ListLit{Items: []core.Expr{&core.Var{Name: "head"}}},
						Arg2: &core.Var{Name: "tail"},
					},
				},
			}
			applied := &core.Apply{Fn: &core.Apply{Fn: &core.Apply{Fn: builder, Arg: &core.ListType{Element: elem}}, Arg: cons}, Arg: nilList}
			return ev.Eval(applied), true
		},
	})

	register(&Builtin{
		Name: "List/fold",
		Type: func() core.Expr {
			a := &core.Var{Name: "a"}
			listT := &core.Var{Name: "list"}
			consType := &core.ForAll{ParamName: "_", ParamType: a, Body: &core.ForAll{ParamName: "_", ParamType: listT, Body: listT}}
			return &core.ForAll{ParamName: "a", ParamType: typeConst(),
				Body: &core.ForAll{ParamName: "_", ParamType: &core.ListType{Element: a},
					Body: &core.ForAll{ParamName: "list", ParamType: typeConst(),
						Body: &core.ForAll{ParamName: "_", ParamType: consType,
							Body: &core.ForAll{ParamName: "_", ParamType: listT, Body: listT}}}}}
		},
		Arity: 5,
		Reduce: func(ev Evaluator, args []core.Expr) (core.Expr, bool) {
			_, xs, _, cons, nilVal := args[0], args[1], args[2], args[3], args[4]
			list, ok := xs.(*core.ListLit)
			if !ok {
				return nil, false
			}
			acc := nilVal
			for i := len(list.Items) - 1; i >= 0; i-- {
				acc = ev.Eval(&core.Apply{Fn: &core.Apply{Fn: cons, Arg: list.Items[i]}, Arg: acc})
			}
			return acc, true
		},
	})

	register(&Builtin{
		Name: "List/length",
		Type: func() core.Expr {
			a := &core.Var{Name: "a"}
			return &core.ForAll{ParamName: "a", ParamType: typeConst(), Body: &core.ForAll{ParamName: "_", ParamType: &core.ListType{Element: a}, Body: &core.Builtin{Name: "Natural"}}}
		},
		Arity: 2,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			list, ok := args[1].(*core.ListLit)
			if !ok {
				return nil, false
			}
			return &core.NaturalLit{Value: uint64(len(list.Items))}, true
		},
	})

	register(&Builtin{
		Name: "List/reverse",
		Type: func() core.Expr {
			a := &core.Var{Name: "a"}
			return &core.ForAll{ParamName: "a", ParamType: typeConst(), Body: &core.ForAll{ParamName: "_", ParamType: &core.ListType{Element: a}, Body: &core.ListType{Element: a}}}
		},
		Arity: 2,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			list, ok := args[1].(*core.ListLit)
			if !ok {
				return nil, false
			}
			out := make([]core.Expr, len(list.Items))
			for i, it := range list.Items {
				out[len(list.Items)-1-i] = it
			}
			return &core.ListLit{Items: out, ElementType: list.ElementType}, true
		},
	})

	for _, which := range []string{"List/head", "List/last"} {
		which := which
		register(&Builtin{
			Name: which,
			Type: func() core.Expr {
				a := &core.Var{Name: "a"}
				return &core.ForAll{ParamName: "a", ParamType: typeConst(), Body: &core.ForAll{ParamName: "_", ParamType: &core.ListType{Element: a}, Body: &core.OptionalType{Element: a}}}
			},
			Arity: 2,
			Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
				list, ok := args[1].(*core.ListLit)
				if !ok {
					return nil, false
				}
				if len(list.Items) == 0 {
					return &core.OptionalLit{ElementType: args[0]}, true
				}
				if which == "List/head" {
					return &core.OptionalLit{Value: list.Items[0], ElementType: args[0]}, true
				}
				return &core.OptionalLit{Value: list.Items[len(list.Items)-1], ElementType: args[0]}, true
			},
		})
	}
}
