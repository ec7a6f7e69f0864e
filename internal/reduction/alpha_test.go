package reduction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/env"
)

func normalizeEmpty(e core.Expr) core.Expr {
	return Normalize(env.New[struct{}](), e)
}

func TestNormalizeRenamesBoundVariableToUnderscore(t *testing.T) {
	lam := &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
	assert.Equal(t, "λ(_ : Natural) → _", core.Print(normalizeEmpty(lam)))
}

func TestNormalizeLeavesFreeVariablesAlone(t *testing.T) {
	v := &core.Var{Name: "free"}
	assert.Equal(t, "free", core.Print(normalizeEmpty(v)))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	lam := &core.Lambda{
		ParamName: "x", ParamType: &core.Builtin{Name: "Natural"},
		Body: &core.Lambda{ParamName: "y", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}},
	}
	once := normalizeEmpty(lam)
	twice := normalizeEmpty(once)
	assert.Equal(t, core.Print(once), core.Print(twice))
}

func TestNormalizeLeavesReferencePastOnlyBinderUnchanged(t *testing.T) {
	// A single binder named x whose body refers to scope 1 is a
	// reference past this binder, to a free x bound further out.
	outerRef := &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x", Scope: 1}}

	result := normalizeEmpty(outerRef)
	lam, ok := result.(*core.Lambda)
	assert.True(t, ok)
	assert.Equal(t, "_", lam.ParamName)
	// The only binder is this one; Scope 1 refers outward (free), so it
	// stays untouched rather than being reassigned an in-scope age.
	v, ok := lam.Body.(*core.Var)
	assert.True(t, ok)
	assert.Equal(t, 1, v.Scope)
}

func TestNormalizeSortsRecordTypeLabels(t *testing.T) {
	rt := &core.RecordType{Fields: []core.RecordTypeField{
		{Label: "zebra", Type: &core.Builtin{Name: "Natural"}},
		{Label: "apple", Type: &core.Builtin{Name: "Bool"}},
	}}
	assert.Equal(t, "{apple : Bool, zebra : Natural}", core.Print(normalizeEmpty(rt)))
}
