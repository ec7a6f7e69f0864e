// Package typecheck implements the bidirectional type inference
// judgment (spec §4.4): Infer walks an Expression and either returns its
// type or the first failure encountered, wrapping the failure with a
// trace of enclosing subexpressions (spec §7).
//
// Grounded on the dispatch shape of the teacher's
// types.InferenceContext.Infer and the diagnostic-wrapping style of
// types.TypeCheckError.
package typecheck

import (
	"fmt"

	"github.com/sunholo/dhallcore/internal/builtins"
	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/env"
	"github.com/sunholo/dhallcore/internal/reduction"
)

// TypeBinding is the typing-context payload for one bound variable
// (spec §3): Type is its declared type, Value is its let-bound value (nil
// if it is a lambda/forall parameter rather than a let-binding), and
// Covering is the environment under which Type and Value were themselves
// typed.
type TypeBinding struct {
	Type     core.Expr
	Value    core.Expr
	Covering *TypeEnv
}

// TypeEnv is the typing environment: a Shadow Environment over
// TypeBinding payloads (spec §4.1).
type TypeEnv = env.Shadow[TypeBinding]

// valueEnvOf derives a substitution (value) environment from a typing
// environment: every bound name keeps its declared Value (nil becomes
// the "no value" sentinel reduction.Evaluate already expects), so
// expressions can be reduced to weak head normal form relative to the
// current typing context without internal/reduction knowing anything
// about TypeBinding.
func valueEnvOf(ctx *TypeEnv) *reduction.ValueEnv {
	return env.MapShadow(ctx, func(b TypeBinding) core.Expr { return b.Value })
}

func evalUnder(ctx *TypeEnv, e core.Expr) core.Expr {
	return reduction.Evaluate(valueEnvOf(ctx), e)
}

// Infer computes e's type under ctx (spec §6 `type`). On failure, it
// appends e's canonical form to the returned error's trace before
// propagating, so every enclosing Infer call contributes one line to the
// final diagnostic (spec §7).
func Infer(ctx *TypeEnv, e core.Expr) (core.Expr, *TypeEnv, error) {
	t, outCtx, err := infer(ctx, e)
	if err != nil {
		if te, ok := err.(*Error); ok {
			te.Path = append(te.Path, core.Print(e))
			return nil, ctx, te
		}
		return nil, ctx, err
	}
	return t, outCtx, nil
}

// universeOf infers e's type and requires it to be one of the three
// universe constants, returning which one.
func universeOf(ctx *TypeEnv, e core.Expr) (core.Universe, error) {
	t, _, err := Infer(ctx, e)
	if err != nil {
		return 0, err
	}
	c, ok := evalUnder(ctx, t).(*core.Const)
	if !ok {
		return 0, &Error{Kind: InconsistentUniverse, Message: fmt.Sprintf("expected a sort (Type/Kind/Sort), got %s", core.Print(t))}
	}
	return c.Universe, nil
}

func infer(ctx *TypeEnv, e core.Expr) (core.Expr, *TypeEnv, error) {
	switch n := e.(type) {
	case *core.Const:
		return inferConst(n)
	case *core.Var:
		return inferVar(ctx, n)
	case *core.Lambda:
		return inferLambda(ctx, n)
	case *core.ForAll:
		return inferForAll(ctx, n)
	case *core.Apply:
		return inferApply(ctx, n)
	case *core.LetIn:
		return inferLetIn(ctx, n)
	case *core.Conditional:
		return inferConditional(ctx, n)
	case *core.Annot:
		return inferAnnot(ctx, n)
	case *core.Operator:
		return inferOperator(ctx, n)
	case *core.Select:
		return inferSelect(ctx, n)
	case *core.Project:
		return inferProject(ctx, n)
	case *core.Merge:
		return inferMerge(ctx, n)
	case *core.NaturalLit:
		return &core.Builtin{Name: "Natural"}, ctx, nil
	case *core.DoubleLit:
		return &core.Builtin{Name: "Double"}, ctx, nil
	case *core.BoolLit:
		return &core.Builtin{Name: "Bool"}, ctx, nil
	case *core.TextLit:
		return inferTextLit(ctx, n)
	case *core.ListLit:
		return inferListLit(ctx, n)
	case *core.OptionalLit:
		return inferOptionalLit(ctx, n)
	case *core.RecordLit:
		return inferRecordLit(ctx, n)
	case *core.Union:
		return inferUnion(ctx, n)
	case *core.ListType:
		return inferListType(ctx, n)
	case *core.OptionalType:
		return inferOptionalType(ctx, n)
	case *core.RecordType:
		return inferRecordType(ctx, n)
	case *core.UnionType:
		return inferUnionType(ctx, n)
	case *core.Builtin:
		return inferBuiltin(n)
	case *core.Import:
		return nil, ctx, fmt.Errorf("precondition violation: unresolved ImportExpression reached type inference")
	default:
		return nil, ctx, fmt.Errorf("precondition violation: unknown expression variant %T", e)
	}
}

func inferConst(n *core.Const) (core.Expr, *TypeEnv, error) {
	switch n.Universe {
	case core.UType:
		return &core.Const{Universe: core.UKind}, nil, nil
	case core.UKind:
		return &core.Const{Universe: core.USort}, nil, nil
	default:
		return nil, nil, &Error{Kind: SortHasNoType, Message: "Sort has no type"}
	}
}

func inferVar(ctx *TypeEnv, n *core.Var) (core.Expr, *TypeEnv, error) {
	if !ctx.Has(n.Name, n.Scope) {
		return nil, ctx, &Error{Kind: UnboundVariable, Message: fmt.Sprintf("unbound variable: %s", n.Name)}
	}
	b := ctx.Get(n.Name, n.Scope)
	if b.Value != nil {
		return Infer(b.Covering, b.Value)
	}
	return b.Type, b.Covering, nil
}

func inferLambda(ctx *TypeEnv, n *core.Lambda) (core.Expr, *TypeEnv, error) {
	if _, err := universeOf(ctx, n.ParamType); err != nil {
		return nil, ctx, err
	}
	paramTypeNF := evalUnder(ctx, n.ParamType)
	bodyCtx := ctx.ShadowSingle(n.ParamName, TypeBinding{Type: paramTypeNF, Covering: ctx})
	bodyType, _, err := Infer(bodyCtx, n.Body)
	if err != nil {
		return nil, ctx, err
	}
	pi := &core.ForAll{ParamName: n.ParamName, ParamType: n.ParamType, Body: bodyType}
	if _, _, err := infer(ctx, pi); err != nil {
		return nil, ctx, err
	}
	return pi, ctx, nil
}

func inferForAll(ctx *TypeEnv, n *core.ForAll) (core.Expr, *TypeEnv, error) {
	p, err := universeOf(ctx, n.ParamType)
	if err != nil {
		return nil, ctx, err
	}
	paramTypeNF := evalUnder(ctx, n.ParamType)
	bodyCtx := ctx.ShadowSingle(n.ParamName, TypeBinding{Type: paramTypeNF, Covering: ctx})
	r, err := universeOf(bodyCtx, n.Body)
	if err != nil {
		return nil, ctx, err
	}
	result, ok := FunctionCheck(p, r)
	if !ok {
		return nil, ctx, &Error{Kind: InconsistentUniverse, Message: fmt.Sprintf("no rule for forall with parameter universe %s and body universe %s", p, r)}
	}
	return &core.Const{Universe: result}, ctx, nil
}

func inferApply(ctx *TypeEnv, n *core.Apply) (core.Expr, *TypeEnv, error) {
	fnType, _, err := Infer(ctx, n.Fn)
	if err != nil {
		return nil, ctx, err
	}
	pi, ok := evalUnder(ctx, fnType).(*core.ForAll)
	if !ok {
		return nil, ctx, &Error{Kind: NotAFunction, Message: fmt.Sprintf("cannot apply a value of type %s", core.Print(fnType))}
	}
	argType, _, err := Infer(ctx, n.Arg)
	if err != nil {
		return nil, ctx, err
	}
	if !Equivalent(argType, pi.ParamType) {
		return nil, ctx, &Error{Kind: ParameterMismatch, Message: "function argument type mismatch", Expected: core.Print(pi.ParamType), Actual: core.Print(argType)}
	}
	argNF := evalUnder(ctx, n.Arg)
	result := evalUnder(ctx, reduction.Subst(pi.ParamName, 0, argNF, pi.Body))
	return result, ctx, nil
}

func inferLetIn(ctx *TypeEnv, n *core.LetIn) (core.Expr, *TypeEnv, error) {
	cur := ctx
	for _, b := range n.Bindings {
		valType, _, err := Infer(cur, b.Value)
		if err != nil {
			return nil, ctx, err
		}
		if b.Annotation != nil {
			if _, err := universeOf(cur, b.Annotation); err != nil {
				return nil, ctx, err
			}
			annotNF := evalUnder(cur, b.Annotation)
			if !Equivalent(annotNF, valType) {
				return nil, ctx, &Error{Kind: AnnotationMismatch, Message: fmt.Sprintf("let binding %q: annotation doesn't match expression type", b.Name), Expected: core.Print(annotNF), Actual: core.Print(valType)}
			}
			valType = annotNF
		}
		valNF := evalUnder(cur, b.Value)
		prev := cur
		cur = cur.ShadowSingle(b.Name, TypeBinding{Type: valType, Value: valNF, Covering: prev})
	}
	return Infer(cur, n.Body)
}

func inferConditional(ctx *TypeEnv, n *core.Conditional) (core.Expr, *TypeEnv, error) {
	condType, _, err := Infer(ctx, n.Cond)
	if err != nil {
		return nil, ctx, err
	}
	if !isBuiltinType(evalUnder(ctx, condType), "Bool") {
		return nil, ctx, &Error{Kind: AnnotationMismatch, Message: "if condition must have type Bool", Actual: core.Print(condType)}
	}
	trueType, _, err := Infer(ctx, n.True)
	if err != nil {
		return nil, ctx, err
	}
	falseType, _, err := Infer(ctx, n.False)
	if err != nil {
		return nil, ctx, err
	}
	if !Equivalent(trueType, falseType) {
		return nil, ctx, &Error{Kind: AnnotationMismatch, Message: "if branches must have the same type", Expected: core.Print(trueType), Actual: core.Print(falseType)}
	}
	return trueType, ctx, nil
}

func inferAnnot(ctx *TypeEnv, n *core.Annot) (core.Expr, *TypeEnv, error) {
	if _, err := universeOf(ctx, n.Type); err != nil {
		return nil, ctx, err
	}
	valType, _, err := Infer(ctx, n.Value)
	if err != nil {
		return nil, ctx, err
	}
	if !Equivalent(valType, n.Type) {
		return nil, ctx, &Error{Kind: AnnotationMismatch, Message: "annotation doesn't match expression type", Expected: core.Print(n.Type), Actual: core.Print(valType)}
	}
	return evalUnder(ctx, n.Type), ctx, nil
}

func isBuiltinType(e core.Expr, name string) bool {
	b, ok := e.(*core.Builtin)
	return ok && b.Name == name
}

func inferBuiltin(n *core.Builtin) (core.Expr, *TypeEnv, error) {
	b, ok := builtins.Lookup(n.Name)
	if !ok {
		return nil, nil, fmt.Errorf("precondition violation: unknown builtin %q", n.Name)
	}
	return b.Type(), nil, nil
}
