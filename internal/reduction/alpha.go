// Package reduction implements the two structural judgments that don't
// need a typing context: α-normalization and β-evaluation (spec §4.3,
// §4.2 per-variant Normalize/Evaluate rules). Both are single type
// switches over core.Expr dispatching to a per-variant function,
// grounded on the dispatch shape of the teacher's
// eval.CoreEvaluator.evalCore.
package reduction

import "github.com/sunholo/dhallcore/internal/core"
import "github.com/sunholo/dhallcore/internal/env"

// bound is the canonical name every bound variable is renamed to.
const bound = "_"

// AlphaCtx tracks which names are currently bound, for Normalize's
// rename-to-"_" + scope-reindex rule. The payload carries no data; only
// Has/Age (via Shadow's push-order generation counter) are used.
type AlphaCtx = env.Shadow[struct{}]

// Normalize returns e's α-normal form under ctx: every bound variable is
// renamed to "_", and free variable scopes are left alone (spec §3,
// §4.2 Variable normalize rule, §8 property 1 idempotence).
func Normalize(ctx *AlphaCtx, e core.Expr) core.Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *core.Var:
		if ctx.Has(n.Name, n.Scope) {
			return &core.Var{Node: n.Node, Name: bound, Scope: ctx.Age(n.Name, n.Scope)}
		}
		return n

	case *core.Lambda:
		inner := ctx.ShadowSingle(n.ParamName, struct{}{})
		return &core.Lambda{
			Node:      n.Node,
			ParamName: bound,
			ParamType: Normalize(ctx, n.ParamType),
			Body:      Normalize(inner, n.Body),
		}

	case *core.ForAll:
		inner := ctx.ShadowSingle(n.ParamName, struct{}{})
		return &core.ForAll{
			Node:      n.Node,
			ParamName: bound,
			ParamType: Normalize(ctx, n.ParamType),
			Body:      Normalize(inner, n.Body),
		}

	case *core.LetIn:
		cur := ctx
		bindings := make([]core.LetBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			nb := core.LetBinding{Name: bound, Value: Normalize(cur, b.Value)}
			if b.Annotation != nil {
				nb.Annotation = Normalize(cur, b.Annotation)
			}
			bindings[i] = nb
			cur = cur.ShadowSingle(b.Name, struct{}{})
		}
		return &core.LetIn{Node: n.Node, Bindings: bindings, Body: Normalize(cur, n.Body)}

	case *core.RecordType:
		out := n.Walk(func(sub core.Expr) core.Expr { return Normalize(ctx, sub) }).(*core.RecordType)
		sortRecordTypeFields(out.Fields)
		return out

	case *core.UnionType:
		out := n.Walk(func(sub core.Expr) core.Expr { return Normalize(ctx, sub) }).(*core.UnionType)
		sortAlts(out.Alternatives)
		return out

	case *core.Union:
		out := n.Walk(func(sub core.Expr) core.Expr { return Normalize(ctx, sub) }).(*core.Union)
		sortAlts(out.Alternatives)
		return out

	default:
		return n.Walk(func(sub core.Expr) core.Expr { return Normalize(ctx, sub) })
	}
}
