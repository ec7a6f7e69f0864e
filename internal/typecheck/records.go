package typecheck

import (
	"fmt"

	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/reduction"
)

func inferOperator(ctx *TypeEnv, n *core.Operator) (core.Expr, *TypeEnv, error) {
	t1, _, err := Infer(ctx, n.Arg1)
	if err != nil {
		return nil, ctx, err
	}
	t2, _, err := Infer(ctx, n.Arg2)
	if err != nil {
		return nil, ctx, err
	}

	switch n.Op {
	case core.Plus, core.Times:
		if !isBuiltinType(evalUnder(ctx, t1), "Natural") || !isBuiltinType(evalUnder(ctx, t2), "Natural") {
			return nil, ctx, &Error{Kind: AnnotationMismatch, Message: fmt.Sprintf("operator %s requires Natural operands", n.Op), Expected: "Natural", Actual: fmt.Sprintf("%s, %s", core.Print(t1), core.Print(t2))}
		}
		return &core.Builtin{Name: "Natural"}, ctx, nil

	case core.Or, core.And:
		if !isBuiltinType(evalUnder(ctx, t1), "Bool") || !isBuiltinType(evalUnder(ctx, t2), "Bool") {
			return nil, ctx, &Error{Kind: AnnotationMismatch, Message: fmt.Sprintf("operator %s requires Bool operands", n.Op), Expected: "Bool", Actual: fmt.Sprintf("%s, %s", core.Print(t1), core.Print(t2))}
		}
		return &core.Builtin{Name: "Bool"}, ctx, nil

	case core.ListAppend:
		l1, ok1 := evalUnder(ctx, t1).(*core.ListType)
		l2, ok2 := evalUnder(ctx, t2).(*core.ListType)
		if !ok1 || !ok2 {
			return nil, ctx, &Error{Kind: AnnotationMismatch, Message: "operator # requires List operands", Actual: fmt.Sprintf("%s, %s", core.Print(t1), core.Print(t2))}
		}
		if !Equivalent(l1.Element, l2.Element) {
			return nil, ctx, &Error{Kind: ParameterMismatch, Message: "list append operands have different element types", Expected: core.Print(l1.Element), Actual: core.Print(l2.Element)}
		}
		return l1, ctx, nil
	}
	return nil, ctx, fmt.Errorf("precondition violation: unknown operator %v", n.Op)
}

func inferSelect(ctx *TypeEnv, n *core.Select) (core.Expr, *TypeEnv, error) {
	rt, _, err := Infer(ctx, n.Record)
	if err != nil {
		return nil, ctx, err
	}

	// `<alts>.L`: expr is itself a union type, not a value of one — the
	// result is the alternative's injection constructor, a Π from the
	// payload type to the union type itself (or the union type directly,
	// for a payload-less alternative).
	if ut, ok := evalUnder(ctx, n.Record).(*core.UnionType); ok {
		payload, found := ut.Lookup(n.Label)
		if !found {
			return nil, ctx, &Error{Kind: MissingField, Message: fmt.Sprintf("union type has no alternative %q", n.Label)}
		}
		if payload == nil {
			return ut, ctx, nil
		}
		return &core.ForAll{ParamName: "_", ParamType: payload, Body: ut}, ctx, nil
	}

	rec, ok := evalUnder(ctx, rt).(*core.RecordType)
	if !ok {
		return nil, ctx, &Error{Kind: NotARecordOrUnion, Message: fmt.Sprintf("cannot select a field from a value of type %s", core.Print(rt))}
	}
	fieldType, found := rec.Lookup(n.Label)
	if !found {
		return nil, ctx, &Error{Kind: MissingField, Message: fmt.Sprintf("record has no field %q", n.Label)}
	}
	return fieldType, ctx, nil
}

// inferProject types Record.{Labels...}. The spec's own projection rule
// iterates over every requested label to build the result record type;
// a version that substituted the rule's first "label" singular for the
// whole "labels" list would silently drop every label past the first.
func inferProject(ctx *TypeEnv, n *core.Project) (core.Expr, *TypeEnv, error) {
	rt, _, err := Infer(ctx, n.Record)
	if err != nil {
		return nil, ctx, err
	}
	rec, ok := evalUnder(ctx, rt).(*core.RecordType)
	if !ok {
		return nil, ctx, &Error{Kind: NotARecordOrUnion, Message: fmt.Sprintf("cannot project fields from a value of type %s", core.Print(rt))}
	}
	fields := make([]core.RecordTypeField, 0, len(n.Labels))
	for _, label := range n.Labels {
		ft, found := rec.Lookup(label)
		if !found {
			return nil, ctx, &Error{Kind: MissingField, Message: fmt.Sprintf("record has no field %q", label)}
		}
		fields = append(fields, core.RecordTypeField{Label: label, Type: ft})
	}
	return &core.RecordType{Fields: fields}, ctx, nil
}

// inferMerge types `merge Handlers Union [: Annotation]`. Every
// alternative of Union's type must have a same-named handler in
// Handlers; a handler for a payload-bearing alternative must be a
// function whose parameter type matches the payload and whose result
// type does not mention the parameter (forbidding a merge whose output
// type depends on which alternative was matched); every handler's
// result type must agree.
func inferMerge(ctx *TypeEnv, n *core.Merge) (core.Expr, *TypeEnv, error) {
	handlersType, _, err := Infer(ctx, n.Handlers)
	if err != nil {
		return nil, ctx, err
	}
	handlersRT, ok := evalUnder(ctx, handlersType).(*core.RecordType)
	if !ok {
		return nil, ctx, &Error{Kind: NotARecordOrUnion, Message: "merge handlers must be a record", Actual: core.Print(handlersType)}
	}

	unionType, _, err := Infer(ctx, n.Union)
	if err != nil {
		return nil, ctx, err
	}
	ut, ok := evalUnder(ctx, unionType).(*core.UnionType)
	if !ok {
		return nil, ctx, &Error{Kind: NotARecordOrUnion, Message: "merge target must be a union", Actual: core.Print(unionType)}
	}

	if len(ut.Alternatives) == 0 {
		if n.Annotation == nil {
			return nil, ctx, &Error{Kind: EmptyMergeNoAnnotation, Message: "merge of an empty union requires a result type annotation"}
		}
		if _, err := universeOf(ctx, n.Annotation); err != nil {
			return nil, ctx, err
		}
		return evalUnder(ctx, n.Annotation), ctx, nil
	}

	var resultType core.Expr
	if n.Annotation != nil {
		if _, err := universeOf(ctx, n.Annotation); err != nil {
			return nil, ctx, err
		}
		resultType = evalUnder(ctx, n.Annotation)
	}

	for _, alt := range ut.Alternatives {
		handlerType, found := handlersRT.Lookup(alt.Label)
		if !found {
			return nil, ctx, &Error{Kind: MergeLabelMismatch, Message: fmt.Sprintf("missing handler for alternative %q", alt.Label)}
		}
		handlerType = evalUnder(ctx, handlerType)

		var out core.Expr
		if alt.Type != nil {
			pi, ok := handlerType.(*core.ForAll)
			if !ok {
				return nil, ctx, &Error{Kind: HandlerNotFunction, Message: fmt.Sprintf("handler for alternative %q must be a function", alt.Label)}
			}
			if !Equivalent(pi.ParamType, alt.Type) {
				return nil, ctx, &Error{Kind: ParameterMismatch, Message: fmt.Sprintf("handler for alternative %q: parameter type doesn't match the alternative's payload type", alt.Label), Expected: core.Print(alt.Type), Actual: core.Print(pi.ParamType)}
			}
			if freeVarOccurs(pi.ParamName, 0, pi.Body) {
				return nil, ctx, &Error{Kind: HandlerOutputMismatch, Message: fmt.Sprintf("handler for alternative %q: result type must not depend on the matched payload", alt.Label)}
			}
			out = reduction.Shift(-1, pi.ParamName, 0, pi.Body)
		} else {
			out = handlerType
		}

		if resultType == nil {
			resultType = out
		} else if !Equivalent(resultType, out) {
			return nil, ctx, &Error{Kind: HandlerOutputMismatch, Message: fmt.Sprintf("handler for alternative %q: result type differs from other handlers", alt.Label), Expected: core.Print(resultType), Actual: core.Print(out)}
		}
	}
	return resultType, ctx, nil
}
