package manifest

import "github.com/sunholo/dhallcore/internal/core"

// The scenarios below are the concrete, literal-input test cases named
// directly (spec §8 "Concrete scenarios"), plus a handful covering the
// universal laws in the same section. Registering them here rather than
// only inline in _test.go files lets cmd/dhallcore's REPL load the same
// fixtures interactively (:list, :load).
func init() {
	Register(&Scenario{
		Name:        "successor-application",
		Description: "(λ(x : Natural) → x + 1) 2 reduces to 3",
		Tags:        []string{"evaluate", "operator"},
		Build: func() core.Expr {
			succ := &core.Lambda{
				ParamName: "x",
				ParamType: &core.Builtin{Name: "Natural"},
				Body:      &core.Operator{Op: core.Plus, Arg1: &core.Var{Name: "x"}, Arg2: &core.NaturalLit{Value: 1}},
			}
			return &core.Apply{Fn: succ, Arg: &core.NaturalLit{Value: 2}}
		},
		ExpectedNormalForm: "3",
	})

	Register(&Scenario{
		Name:        "identity-alpha-normal-form",
		Description: "λ(x : Natural) → x alpha-normalizes to λ(_ : Natural) → _",
		Tags:        []string{"normalize"},
		Build: func() core.Expr {
			return &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
		},
		ExpectedNormalForm: "λ(_ : Natural) → _",
	})

	Register(&Scenario{
		Name:        "nested-let-addition",
		Description: "let x = 1 in let y = 2 in x + y reduces to 3",
		Tags:        []string{"evaluate", "let"},
		Build: func() core.Expr {
			return &core.LetIn{
				Bindings: []core.LetBinding{
					{Name: "x", Value: &core.NaturalLit{Value: 1}},
					{Name: "y", Value: &core.NaturalLit{Value: 2}},
				},
				Body: &core.Operator{Op: core.Plus, Arg1: &core.Var{Name: "x"}, Arg2: &core.Var{Name: "y"}},
			}
		},
		ExpectedNormalForm: "3",
	})

	Register(&Scenario{
		Name:        "or-short-circuit-true",
		Description: "True || p reduces to True for any well-typed p : Bool",
		Tags:        []string{"evaluate", "operator", "bool"},
		Build: func() core.Expr {
			p := &core.Lambda{ParamName: "p", ParamType: &core.Builtin{Name: "Bool"}, Body: &core.Var{Name: "p"}}
			return &core.Apply{
				Fn: &core.Lambda{
					ParamName: "p", ParamType: &core.Builtin{Name: "Bool"},
					Body: &core.Operator{Op: core.Or, Arg1: &core.BoolLit{Value: true}, Arg2: &core.Var{Name: "p"}},
				},
				Arg: &core.Apply{Fn: p, Arg: &core.BoolLit{Value: false}},
			}
		},
		ExpectedNormalForm: "True",
	})

	Register(&Scenario{
		Name:        "or-short-circuit-false",
		Description: "False || p reduces to p",
		Tags:        []string{"evaluate", "operator", "bool"},
		Build: func() core.Expr {
			return &core.Lambda{
				ParamName: "p", ParamType: &core.Builtin{Name: "Bool"},
				Body: &core.Operator{Op: core.Or, Arg1: &core.BoolLit{Value: false}, Arg2: &core.Var{Name: "p"}},
			}
		},
		ExpectedNormalForm: "λ(_ : Bool) → _",
	})

	Register(&Scenario{
		Name:        "or-right-absorbing-true",
		Description: "p || True reduces to True for any well-typed p : Bool",
		Tags:        []string{"evaluate", "operator", "bool"},
		Build: func() core.Expr {
			return &core.Lambda{
				ParamName: "p", ParamType: &core.Builtin{Name: "Bool"},
				Body: &core.Operator{Op: core.Or, Arg1: &core.Var{Name: "p"}, Arg2: &core.BoolLit{Value: true}},
			}
		},
		ExpectedNormalForm: "λ(_ : Bool) → True",
	})

	Register(&Scenario{
		Name:        "and-right-absorbing-false",
		Description: "p && False reduces to False for any well-typed p : Bool",
		Tags:        []string{"evaluate", "operator", "bool"},
		Build: func() core.Expr {
			return &core.Lambda{
				ParamName: "p", ParamType: &core.Builtin{Name: "Bool"},
				Body: &core.Operator{Op: core.And, Arg1: &core.Var{Name: "p"}, Arg2: &core.BoolLit{Value: false}},
			}
		},
		ExpectedNormalForm: "λ(_ : Bool) → False",
	})

	Register(&Scenario{
		Name:        "union-injection-constructor",
		Description: "(< Left : Natural | Right : Bool >).Left types as the Left alternative's injection constructor",
		Tags:        []string{"typecheck", "union"},
		Build: func() core.Expr {
			ut := &core.UnionType{Alternatives: []core.UnionAlt{
				{Label: "Left", Type: &core.Builtin{Name: "Natural"}},
				{Label: "Right", Type: &core.Builtin{Name: "Bool"}},
			}}
			return &core.Select{Record: ut, Label: "Left"}
		},
		ExpectedType: "∀(_ : Natural) → <Left : Natural | Right : Bool>",
	})

	Register(&Scenario{
		Name:        "list-build-fold-fusion",
		Description: "List/build Natural (List/fold Natural xs) fuses to xs",
		Tags:        []string{"evaluate", "builtins", "list"},
		Build: func() core.Expr {
			xs := &core.Var{Name: "xs"}
			foldApplied := &core.Apply{
				Fn:  &core.Apply{Fn: &core.Builtin{Name: "List/fold"}, Arg: &core.Builtin{Name: "Natural"}},
				Arg: xs,
			}
			built := &core.Apply{
				Fn:  &core.Apply{Fn: &core.Builtin{Name: "List/build"}, Arg: &core.Builtin{Name: "Natural"}},
				Arg: foldApplied,
			}
			return &core.Lambda{
				ParamName: "xs", ParamType: &core.ListType{Element: &core.Builtin{Name: "Natural"}},
				Body: built,
			}
		},
		ExpectedNormalForm: "λ(_ : List Natural) → _",
	})

	Register(&Scenario{
		Name:        "merge-union-typed-natural",
		Description: "merge {Left, Right} (< Left = 5 | Right : Bool >) type-checks to Natural and evaluates to 5",
		Tags:        []string{"evaluate", "typecheck", "merge", "union"},
		Build: func() core.Expr {
			handlers := &core.RecordLit{Fields: []core.RecordField{
				{Label: "Left", Value: &core.Lambda{ParamName: "n", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "n"}}},
				{Label: "Right", Value: &core.Lambda{ParamName: "b", ParamType: &core.Builtin{Name: "Bool"}, Body: &core.NaturalLit{Value: 0}}},
			}}
			union := &core.Union{
				Tag:   "Left",
				Value: &core.NaturalLit{Value: 5},
				Alternatives: []core.UnionAlt{
					{Label: "Left", Type: &core.Builtin{Name: "Natural"}},
					{Label: "Right", Type: &core.Builtin{Name: "Bool"}},
				},
			}
			return &core.Merge{Handlers: handlers, Union: union}
		},
		ExpectedNormalForm: "5",
	})

	Register(&Scenario{
		Name:        "annotation-mismatch",
		Description: "1 : Bool fails with an annotation mismatch",
		Tags:        []string{"typecheck", "error"},
		Build: func() core.Expr {
			return &core.Annot{Value: &core.NaturalLit{Value: 1}, Type: &core.Builtin{Name: "Bool"}}
		},
		ExpectError:       true,
		ExpectedErrorKind: "annotation_mismatch",
	})

	Register(&Scenario{
		Name:        "parameter-mismatch",
		Description: "(λ(x : Natural) → x) True fails with a parameter-type mismatch",
		Tags:        []string{"typecheck", "error"},
		Build: func() core.Expr {
			id := &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
			return &core.Apply{Fn: id, Arg: &core.BoolLit{Value: true}}
		},
		ExpectError:       true,
		ExpectedErrorKind: "parameter_mismatch",
	})

	Register(&Scenario{
		Name:        "record-type-label-canonicalization",
		Description: "a RecordType with out-of-order fields normalizes to label-sorted order",
		Tags:        []string{"normalize", "record"},
		Build: func() core.Expr {
			return &core.RecordType{Fields: []core.RecordTypeField{
				{Label: "zebra", Type: &core.Builtin{Name: "Natural"}},
				{Label: "apple", Type: &core.Builtin{Name: "Bool"}},
			}}
		},
		ExpectedNormalForm: "{apple : Bool, zebra : Natural}",
	})

	Register(&Scenario{
		Name:        "record-projection",
		Description: "{ a = 1, b = True, c = \"x\" }.{ a, c } projects the requested fields",
		Tags:        []string{"evaluate", "record"},
		Build: func() core.Expr {
			rec := &core.RecordLit{Fields: []core.RecordField{
				{Label: "a", Value: &core.NaturalLit{Value: 1}},
				{Label: "b", Value: &core.BoolLit{Value: true}},
				{Label: "c", Value: &core.TextLit{Chunks: []core.TextChunk{{Prefix: "x"}}}},
			}}
			return &core.Project{Record: rec, Labels: []string{"a", "c"}}
		},
		ExpectedNormalForm: `{a = 1, c = "x"}`,
	})
}
