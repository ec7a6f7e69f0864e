package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/env"
)

func emptyCtx() *TypeEnv { return env.New[TypeBinding]() }

func TestInferLiterals(t *testing.T) {
	tests := []struct {
		name string
		e    core.Expr
		want string
	}{
		{"natural", &core.NaturalLit{Value: 1}, "Natural"},
		{"bool", &core.BoolLit{Value: true}, "Bool"},
		{"double", &core.DoubleLit{Value: 1.5}, "Double"},
		{"text", &core.TextLit{Chunks: []core.TextChunk{{Prefix: "hi"}}}, "Text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, _, err := Infer(emptyCtx(), tt.e)
			require.NoError(t, err)
			assert.Equal(t, tt.want, core.Print(typ))
		})
	}
}

func TestInferConstUniverses(t *testing.T) {
	typ, _, err := Infer(emptyCtx(), &core.Const{Universe: core.UType})
	require.NoError(t, err)
	assert.Equal(t, "Kind", core.Print(typ))

	_, _, err = Infer(emptyCtx(), &core.Const{Universe: core.USort})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, SortHasNoType, te.Kind)
}

func TestInferUnboundVariable(t *testing.T) {
	_, _, err := Infer(emptyCtx(), &core.Var{Name: "x"})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnboundVariable, te.Kind)
}

func TestInferIdentityLambdaIsAForAll(t *testing.T) {
	lam := &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
	typ, _, err := Infer(emptyCtx(), lam)
	require.NoError(t, err)
	pi, ok := typ.(*core.ForAll)
	require.True(t, ok)
	assert.Equal(t, "Natural", core.Print(pi.ParamType))
	assert.Equal(t, "Natural", core.Print(pi.Body))
}

func TestInferApplicationSubstitutesResultType(t *testing.T) {
	id := &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
	typ, _, err := Infer(emptyCtx(), &core.Apply{Fn: id, Arg: &core.NaturalLit{Value: 4}})
	require.NoError(t, err)
	assert.Equal(t, "Natural", core.Print(typ))
}

func TestInferApplyParameterMismatch(t *testing.T) {
	id := &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
	_, _, err := Infer(emptyCtx(), &core.Apply{Fn: id, Arg: &core.BoolLit{Value: true}})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ParameterMismatch, te.Kind)
}

func TestInferApplyOfNonFunction(t *testing.T) {
	_, _, err := Infer(emptyCtx(), &core.Apply{Fn: &core.NaturalLit{Value: 1}, Arg: &core.NaturalLit{Value: 2}})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, NotAFunction, te.Kind)
}

func TestInferAnnotationMismatch(t *testing.T) {
	_, _, err := Infer(emptyCtx(), &core.Annot{Value: &core.NaturalLit{Value: 1}, Type: &core.Builtin{Name: "Bool"}})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, AnnotationMismatch, te.Kind)
	require.NotEmpty(t, te.Path, "Infer must append the failing subexpression to the error's trace")
}

func TestInferConditionalRequiresMatchingBranches(t *testing.T) {
	cond := &core.Conditional{Cond: &core.BoolLit{Value: true}, True: &core.NaturalLit{Value: 1}, False: &core.BoolLit{Value: false}}
	_, _, err := Infer(emptyCtx(), cond)
	require.Error(t, err)
}

func TestInferLetInThreadsBindingTypes(t *testing.T) {
	e := &core.LetIn{
		Bindings: []core.LetBinding{{Name: "x", Value: &core.NaturalLit{Value: 1}}},
		Body:     &core.Var{Name: "x"},
	}
	typ, _, err := Infer(emptyCtx(), e)
	require.NoError(t, err)
	assert.Equal(t, "Natural", core.Print(typ))
}

func TestInferForAllUniverseRule(t *testing.T) {
	pi := &core.ForAll{ParamName: "_", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Builtin{Name: "Natural"}}
	typ, _, err := Infer(emptyCtx(), pi)
	require.NoError(t, err)
	assert.Equal(t, "Type", core.Print(typ))
}

func TestInferRecordAndSelect(t *testing.T) {
	rec := &core.RecordLit{Fields: []core.RecordField{
		{Label: "a", Value: &core.NaturalLit{Value: 1}},
		{Label: "b", Value: &core.BoolLit{Value: true}},
	}}
	typ, _, err := Infer(emptyCtx(), &core.Select{Record: rec, Label: "b"})
	require.NoError(t, err)
	assert.Equal(t, "Bool", core.Print(typ))

	_, _, err = Infer(emptyCtx(), &core.Select{Record: rec, Label: "missing"})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, MissingField, te.Kind)
}

func TestInferSelectOnUnionTypeYieldsInjectionConstructor(t *testing.T) {
	ut := &core.UnionType{Alternatives: []core.UnionAlt{
		{Label: "Left", Type: &core.Builtin{Name: "Natural"}},
		{Label: "Right", Type: &core.Builtin{Name: "Bool"}},
	}}

	typ, _, err := Infer(emptyCtx(), &core.Select{Record: ut, Label: "Left"})
	require.NoError(t, err)
	assert.Equal(t, "∀(_ : Natural) → <Left : Natural | Right : Bool>", core.Print(typ))

	_, _, err = Infer(emptyCtx(), &core.Select{Record: ut, Label: "missing"})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, MissingField, te.Kind)
}

func TestInferSelectOnUnionTypePayloadLessAlternative(t *testing.T) {
	ut := &core.UnionType{Alternatives: []core.UnionAlt{
		{Label: "None"},
		{Label: "Some", Type: &core.Builtin{Name: "Natural"}},
	}}

	typ, _, err := Infer(emptyCtx(), &core.Select{Record: ut, Label: "None"})
	require.NoError(t, err)
	assert.Equal(t, "<None | Some : Natural>", core.Print(typ))
}

func TestInferProjectKeepsEveryRequestedLabel(t *testing.T) {
	rec := &core.RecordLit{Fields: []core.RecordField{
		{Label: "a", Value: &core.NaturalLit{Value: 1}},
		{Label: "b", Value: &core.BoolLit{Value: true}},
		{Label: "c", Value: &core.TextLit{Chunks: []core.TextChunk{{Prefix: "x"}}}},
	}}
	typ, _, err := Infer(emptyCtx(), &core.Project{Record: rec, Labels: []string{"a", "c"}})
	require.NoError(t, err)
	assert.Equal(t, "{a : Natural, c : Text}", core.Print(typ))
}

func TestInferMergeAgreesOnHandlerOutputs(t *testing.T) {
	handlers := &core.RecordLit{Fields: []core.RecordField{
		{Label: "Left", Value: &core.Lambda{ParamName: "n", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "n"}}},
		{Label: "Right", Value: &core.Lambda{ParamName: "b", ParamType: &core.Builtin{Name: "Bool"}, Body: &core.NaturalLit{Value: 0}}},
	}}
	union := &core.Union{
		Tag: "Left", Value: &core.NaturalLit{Value: 5},
		Alternatives: []core.UnionAlt{{Label: "Left", Type: &core.Builtin{Name: "Natural"}}, {Label: "Right", Type: &core.Builtin{Name: "Bool"}}},
	}
	typ, _, err := Infer(emptyCtx(), &core.Merge{Handlers: handlers, Union: union})
	require.NoError(t, err)
	assert.Equal(t, "Natural", core.Print(typ))
}

func TestInferMergeMissingHandler(t *testing.T) {
	handlers := &core.RecordLit{Fields: []core.RecordField{
		{Label: "Left", Value: &core.Lambda{ParamName: "n", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "n"}}},
	}}
	union := &core.Union{
		Tag: "Left", Value: &core.NaturalLit{Value: 5},
		Alternatives: []core.UnionAlt{{Label: "Left", Type: &core.Builtin{Name: "Natural"}}, {Label: "Right", Type: &core.Builtin{Name: "Bool"}}},
	}
	_, _, err := Infer(emptyCtx(), &core.Merge{Handlers: handlers, Union: union})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, MergeLabelMismatch, te.Kind)
}

func TestInferMergeEmptyUnionRequiresAnnotation(t *testing.T) {
	ctx := emptyCtx().ShadowSingle("u", TypeBinding{Type: &core.UnionType{}})
	_, _, err := Infer(ctx, &core.Merge{Handlers: &core.RecordLit{}, Union: &core.Var{Name: "u"}})
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, EmptyMergeNoAnnotation, te.Kind)
}

func TestInferListLitRequiresConsistentElementType(t *testing.T) {
	list := &core.ListLit{Items: []core.Expr{&core.NaturalLit{Value: 1}, &core.BoolLit{Value: true}}}
	_, _, err := Infer(emptyCtx(), list)
	require.Error(t, err)
}

func TestInferDuplicateRecordTypeField(t *testing.T) {
	rt := &core.RecordType{Fields: []core.RecordTypeField{
		{Label: "a", Type: &core.Builtin{Name: "Natural"}},
		{Label: "a", Type: &core.Builtin{Name: "Bool"}},
	}}
	_, _, err := Infer(emptyCtx(), rt)
	require.Error(t, err)
	te, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DuplicateLabel, te.Kind)
}
