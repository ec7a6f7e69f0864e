package typecheck

import (
	"fmt"

	"github.com/sunholo/dhallcore/internal/core"
)

func inferTextLit(ctx *TypeEnv, n *core.TextLit) (core.Expr, *TypeEnv, error) {
	for _, c := range n.Chunks {
		if c.Interp == nil {
			continue
		}
		it, _, err := Infer(ctx, c.Interp)
		if err != nil {
			return nil, ctx, err
		}
		if !isBuiltinType(evalUnder(ctx, it), "Text") {
			return nil, ctx, &Error{Kind: AnnotationMismatch, Message: "interpolated expression must have type Text", Expected: "Text", Actual: core.Print(it)}
		}
	}
	return &core.Builtin{Name: "Text"}, ctx, nil
}

func inferListLit(ctx *TypeEnv, n *core.ListLit) (core.Expr, *TypeEnv, error) {
	if len(n.Items) == 0 {
		if n.ElementType == nil {
			return nil, ctx, fmt.Errorf("precondition violation: empty list literal missing an element type annotation")
		}
		if _, err := universeOf(ctx, n.ElementType); err != nil {
			return nil, ctx, err
		}
		return &core.ListType{Element: evalUnder(ctx, n.ElementType)}, ctx, nil
	}
	firstType, _, err := Infer(ctx, n.Items[0])
	if err != nil {
		return nil, ctx, err
	}
	if _, err := universeOf(ctx, firstType); err != nil {
		return nil, ctx, err
	}
	elemType := evalUnder(ctx, firstType)
	for i, it := range n.Items[1:] {
		t, _, err := Infer(ctx, it)
		if err != nil {
			return nil, ctx, err
		}
		if !Equivalent(t, elemType) {
			return nil, ctx, &Error{Kind: AnnotationMismatch, Message: fmt.Sprintf("list element %d has a different type than element 0", i+1), Expected: core.Print(elemType), Actual: core.Print(t)}
		}
	}
	return &core.ListType{Element: elemType}, ctx, nil
}

func inferOptionalLit(ctx *TypeEnv, n *core.OptionalLit) (core.Expr, *TypeEnv, error) {
	if n.Value == nil {
		if n.ElementType == nil {
			return nil, ctx, fmt.Errorf("precondition violation: None literal missing an element type annotation")
		}
		if _, err := universeOf(ctx, n.ElementType); err != nil {
			return nil, ctx, err
		}
		return &core.OptionalType{Element: evalUnder(ctx, n.ElementType)}, ctx, nil
	}
	valType, _, err := Infer(ctx, n.Value)
	if err != nil {
		return nil, ctx, err
	}
	if n.ElementType != nil && !Equivalent(n.ElementType, valType) {
		return nil, ctx, &Error{Kind: AnnotationMismatch, Message: "Some annotation doesn't match value type", Expected: core.Print(n.ElementType), Actual: core.Print(valType)}
	}
	return &core.OptionalType{Element: valType}, ctx, nil
}

func inferRecordLit(ctx *TypeEnv, n *core.RecordLit) (core.Expr, *TypeEnv, error) {
	fields := make([]core.RecordTypeField, 0, len(n.Fields))
	seen := make(map[string]bool, len(n.Fields))
	for _, fl := range n.Fields {
		if seen[fl.Label] {
			return nil, ctx, &Error{Kind: DuplicateLabel, Message: fmt.Sprintf("duplicate record field %q", fl.Label)}
		}
		seen[fl.Label] = true
		t, _, err := Infer(ctx, fl.Value)
		if err != nil {
			return nil, ctx, err
		}
		fields = append(fields, core.RecordTypeField{Label: fl.Label, Type: t})
	}
	return &core.RecordType{Fields: fields}, ctx, nil
}

func inferUnion(ctx *TypeEnv, n *core.Union) (core.Expr, *TypeEnv, error) {
	seen := make(map[string]bool, len(n.Alternatives))
	alts := make([]core.UnionAlt, 0, len(n.Alternatives))
	foundTag := false
	for _, a := range n.Alternatives {
		if seen[a.Label] {
			return nil, ctx, &Error{Kind: DuplicateLabel, Message: fmt.Sprintf("duplicate union alternative %q", a.Label)}
		}
		seen[a.Label] = true

		if a.Label != n.Tag {
			if a.Type != nil {
				if _, err := universeOf(ctx, a.Type); err != nil {
					return nil, ctx, err
				}
			}
			alts = append(alts, a)
			continue
		}

		foundTag = true
		if n.Value == nil {
			if a.Type != nil {
				return nil, ctx, fmt.Errorf("precondition violation: alternative %q declares a payload but the union literal carries none", a.Label)
			}
			alts = append(alts, core.UnionAlt{Label: a.Label})
			continue
		}
		t, _, err := Infer(ctx, n.Value)
		if err != nil {
			return nil, ctx, err
		}
		if a.Type != nil && !Equivalent(a.Type, t) {
			return nil, ctx, &Error{Kind: AnnotationMismatch, Message: fmt.Sprintf("alternative %q: declared payload type doesn't match value", a.Label), Expected: core.Print(a.Type), Actual: core.Print(t)}
		}
		alts = append(alts, core.UnionAlt{Label: a.Label, Type: t})
	}
	if !foundTag {
		return nil, ctx, fmt.Errorf("precondition violation: union literal's tag %q is not among its alternatives", n.Tag)
	}
	return &core.UnionType{Alternatives: alts}, ctx, nil
}

func inferListType(ctx *TypeEnv, n *core.ListType) (core.Expr, *TypeEnv, error) {
	u, err := universeOf(ctx, n.Element)
	if err != nil {
		return nil, ctx, err
	}
	if u != core.UType {
		return nil, ctx, &Error{Kind: InconsistentUniverse, Message: "List's argument must be a term of type Type"}
	}
	return &core.Const{Universe: core.UType}, ctx, nil
}

func inferOptionalType(ctx *TypeEnv, n *core.OptionalType) (core.Expr, *TypeEnv, error) {
	u, err := universeOf(ctx, n.Element)
	if err != nil {
		return nil, ctx, err
	}
	if u != core.UType {
		return nil, ctx, &Error{Kind: InconsistentUniverse, Message: "Optional's argument must be a term of type Type"}
	}
	return &core.Const{Universe: core.UType}, ctx, nil
}

func inferRecordType(ctx *TypeEnv, n *core.RecordType) (core.Expr, *TypeEnv, error) {
	maxU := core.UType
	seen := make(map[string]bool, len(n.Fields))
	for _, fl := range n.Fields {
		if seen[fl.Label] {
			return nil, ctx, &Error{Kind: DuplicateLabel, Message: fmt.Sprintf("duplicate record type field %q", fl.Label)}
		}
		seen[fl.Label] = true
		u, err := universeOf(ctx, fl.Type)
		if err != nil {
			return nil, ctx, err
		}
		if u > maxU {
			maxU = u
		}
	}
	return &core.Const{Universe: maxU}, ctx, nil
}

func inferUnionType(ctx *TypeEnv, n *core.UnionType) (core.Expr, *TypeEnv, error) {
	maxU := core.UType
	seen := make(map[string]bool, len(n.Alternatives))
	for _, a := range n.Alternatives {
		if seen[a.Label] {
			return nil, ctx, &Error{Kind: DuplicateLabel, Message: fmt.Sprintf("duplicate union alternative %q", a.Label)}
		}
		seen[a.Label] = true
		if a.Type == nil {
			continue
		}
		u, err := universeOf(ctx, a.Type)
		if err != nil {
			return nil, ctx, err
		}
		if u > maxU {
			maxU = u
		}
	}
	return &core.Const{Universe: maxU}, ctx, nil
}
