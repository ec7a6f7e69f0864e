package reduction

import (
	"github.com/sunholo/dhallcore/internal/builtins"
	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/env"
)

// ValueEnv is the substitution environment threaded through Evaluate. A
// nil payload at (name, scope) is the "no value" sentinel: the variable
// is bound (by an enclosing binder) but not substituted, so evaluation
// may proceed under the binder without prematurely resolving it (spec
// §3 bound-variable lifecycle, §9 design notes).
type ValueEnv = env.Shadow[core.Expr]

// Evaluate reduces e to β-normal form under ctx (spec §4.2 per-variant
// Evaluate rules, §8 properties 2-3). Evaluate never fails: an
// application of a non-function rebuilds the Apply node rather than
// raising (spec §4.4 failure model).
func Evaluate(ctx *ValueEnv, e core.Expr) core.Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *core.Var:
		if ctx.Has(n.Name, n.Scope) {
			if v := ctx.Get(n.Name, n.Scope); v != nil {
				return v
			}
		}
		return n

	case *core.Lambda:
		inner := ctx.ShadowSingle(n.ParamName, nil)
		return &core.Lambda{Node: n.Node, ParamName: n.ParamName, ParamType: Evaluate(ctx, n.ParamType), Body: Evaluate(inner, n.Body)}

	case *core.ForAll:
		inner := ctx.ShadowSingle(n.ParamName, nil)
		return &core.ForAll{Node: n.Node, ParamName: n.ParamName, ParamType: Evaluate(ctx, n.ParamType), Body: Evaluate(inner, n.Body)}

	case *core.Apply:
		return evalApply(ctx, n)

	case *core.LetIn:
		cur := ctx
		for _, b := range n.Bindings {
			cur = cur.ShadowSingle(b.Name, Evaluate(cur, b.Value))
		}
		return Evaluate(cur, n.Body)

	case *core.Conditional:
		cond := Evaluate(ctx, n.Cond)
		if lit, ok := cond.(*core.BoolLit); ok {
			if lit.Value {
				return Evaluate(ctx, n.True)
			}
			return Evaluate(ctx, n.False)
		}
		return &core.Conditional{Node: n.Node, Cond: cond, True: Evaluate(ctx, n.True), False: Evaluate(ctx, n.False)}

	case *core.Annot:
		return Evaluate(ctx, n.Value)

	case *core.Operator:
		return evalOperator(ctx, n)

	case *core.Select:
		record := Evaluate(ctx, n.Record)
		if lit, ok := record.(*core.RecordLit); ok {
			if v, found := lit.Lookup(n.Label); found {
				return v
			}
		}
		return &core.Select{Node: n.Node, Record: record, Label: n.Label}

	case *core.Project:
		record := Evaluate(ctx, n.Record)
		if lit, ok := record.(*core.RecordLit); ok {
			fields := make([]core.RecordField, 0, len(n.Labels))
			for _, l := range n.Labels {
				if v, found := lit.Lookup(l); found {
					fields = append(fields, core.RecordField{Label: l, Value: v})
				}
			}
			return &core.RecordLit{Fields: fields}
		}
		return &core.Project{Node: n.Node, Record: record, Labels: n.Labels}

	case *core.Merge:
		return evalMerge(ctx, n)

	default:
		return n.Walk(func(sub core.Expr) core.Expr { return Evaluate(ctx, sub) })
	}
}

func evalOperator(ctx *ValueEnv, n *core.Operator) core.Expr {
	a1 := Evaluate(ctx, n.Arg1)
	a2 := Evaluate(ctx, n.Arg2)
	switch n.Op {
	case core.ListAppend:
		l1, ok1 := a1.(*core.ListLit)
		l2, ok2 := a2.(*core.ListLit)
		if ok1 && ok2 {
			items := append(append([]core.Expr(nil), l1.Items...), l2.Items...)
			et := l1.ElementType
			if et == nil {
				et = l2.ElementType
			}
			return &core.ListLit{Items: items, ElementType: et}
		}
	case core.Plus:
		n1, ok1 := a1.(*core.NaturalLit)
		n2, ok2 := a2.(*core.NaturalLit)
		if ok1 && ok2 {
			return &core.NaturalLit{Value: n1.Value + n2.Value}
		}
	case core.Times:
		n1, ok1 := a1.(*core.NaturalLit)
		n2, ok2 := a2.(*core.NaturalLit)
		if ok1 && ok2 {
			return &core.NaturalLit{Value: n1.Value * n2.Value}
		}
	case core.Or:
		if b1, ok := a1.(*core.BoolLit); ok {
			if b1.Value {
				return a1
			}
			return a2
		}
		if b2, ok := a2.(*core.BoolLit); ok {
			if b2.Value {
				return a2
			}
			return a1
		}
		if core.Print(a1) == core.Print(a2) {
			return a1
		}
	case core.And:
		if b1, ok := a1.(*core.BoolLit); ok {
			if !b1.Value {
				return a1
			}
			return a2
		}
		if b2, ok := a2.(*core.BoolLit); ok {
			if !b2.Value {
				return a2
			}
			return a1
		}
		if core.Print(a1) == core.Print(a2) {
			return a1
		}
	}
	return &core.Operator{Node: n.Node, Op: n.Op, Arg1: a1, Arg2: a2}
}

func evalMerge(ctx *ValueEnv, n *core.Merge) core.Expr {
	handlers := Evaluate(ctx, n.Handlers)
	union := Evaluate(ctx, n.Union)
	if h, ok := handlers.(*core.RecordLit); ok {
		if u, ok := union.(*core.Union); ok {
			if handler, found := h.Lookup(u.Tag); found {
				if u.Value == nil {
					return Evaluate(ctx, handler)
				}
				return Evaluate(env.New[core.Expr](), &core.Apply{Fn: handler, Arg: u.Value})
			}
		}
	}
	m := &core.Merge{Node: n.Node, Handlers: handlers, Union: union}
	if n.Annotation != nil {
		m.Annotation = Evaluate(ctx, n.Annotation)
	}
	return m
}

type ctxEvaluator struct{}

func (ctxEvaluator) Eval(e core.Expr) core.Expr { return Evaluate(env.New[core.Expr](), e) }

func evalApply(ctx *ValueEnv, n *core.Apply) core.Expr {
	fn := Evaluate(ctx, n.Fn)
	arg := Evaluate(ctx, n.Arg)

	if lam, ok := fn.(*core.Lambda); ok {
		return Evaluate(env.New[core.Expr](), Subst(lam.ParamName, 0, arg, lam.Body))
	}

	if name, args, ok := unwindBuiltinApply(fn); ok {
		args = append(args, arg)
		if b, found := builtins.Lookup(name); found && len(args) == b.Arity {
			if result, ok := b.Reduce(ctxEvaluator{}, args); ok {
				return Evaluate(env.New[core.Expr](), result)
			}
		}
	}

	return &core.Apply{Node: n.Node, Fn: fn, Arg: arg}
}

// unwindBuiltinApply decomposes a chain of evaluated Apply nodes down to
// its head, reporting the accumulated arguments when the head is a
// Builtin reference (mirrors builtins.unwindApply, duplicated here since
// builtins must not import this package).
func unwindBuiltinApply(e core.Expr) (string, []core.Expr, bool) {
	var chain []core.Expr
	cur := e
	for {
		app, ok := cur.(*core.Apply)
		if !ok {
			break
		}
		chain = append(chain, app.Arg)
		cur = app.Fn
	}
	b, ok := cur.(*core.Builtin)
	if !ok {
		return "", nil, false
	}
	args := make([]core.Expr, len(chain))
	for i, a := range chain {
		args[len(chain)-1-i] = a
	}
	return b.Name, args, true
}
