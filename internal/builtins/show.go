package builtins

import (
	"strconv"

	"github.com/sunholo/dhallcore/internal/core"
)

func registerShowOps() {
	register(&Builtin{
		Name:  "Double/show",
		Type:  func() core.Expr { return &core.ForAll{ParamName: "_", ParamType: &core.Builtin{Name: "Double"}, Body: &core.Builtin{Name: "Text"}} },
		Arity: 1,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			d, ok := args[0].(*core.DoubleLit)
			if !ok {
				return nil, false
			}
			s := strconv.FormatFloat(d.Value, 'g', -1, 64)
			return &core.TextLit{Chunks: []core.TextChunk{{Prefix: s}}}, true
		},
	})

	register(&Builtin{
		Name:  "Natural/show",
		Type:  func() core.Expr { return &core.ForAll{ParamName: "_", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Builtin{Name: "Text"}} },
		Arity: 1,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			n, ok := args[0].(*core.NaturalLit)
			if !ok {
				return nil, false
			}
			s := strconv.FormatUint(n.Value, 10)
			return &core.TextLit{Chunks: []core.TextChunk{{Prefix: s}}}, true
		},
	})

	register(&Builtin{
		Name:  "Text/show",
		Type:  func() core.Expr { return &core.ForAll{ParamName: "_", ParamType: &core.Builtin{Name: "Text"}, Body: &core.Builtin{Name: "Text"}} },
		Arity: 1,
		Reduce: func(_ Evaluator, args []core.Expr) (core.Expr, bool) {
			t, ok := args[0].(*core.TextLit)
			if !ok || len(t.Chunks) != 1 || t.Chunks[0].Interp != nil {
				return nil, false
			}
			return &core.TextLit{Chunks: []core.TextChunk{{Prefix: strconv.Quote(t.Chunks[0].Prefix)}}}, true
		},
	})
}
