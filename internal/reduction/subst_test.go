package reduction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/dhallcore/internal/core"
)

func TestSubstReplacesMatchingFreeVariable(t *testing.T) {
	e := &core.Var{Name: "x"}
	result := Subst("x", 0, &core.NaturalLit{Value: 5}, e)
	assert.Equal(t, "5", core.Print(result))
}

func TestSubstLeavesOtherNamesAlone(t *testing.T) {
	e := &core.Var{Name: "y"}
	result := Subst("x", 0, &core.NaturalLit{Value: 5}, e)
	assert.Equal(t, "y", core.Print(result))
}

func TestSubstDoesNotDescendPastASameNameBinder(t *testing.T) {
	// λ(x : Natural) → x : substituting for the outer x must not touch
	// the inner x, since the inner binder shadows it.
	lam := &core.Lambda{ParamName: "x", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
	result := Subst("x", 0, &core.NaturalLit{Value: 9}, lam)
	assert.Equal(t, "λ(x : Natural) → x", core.Print(result))
}

func TestSubstShiftsReplacementUnderABinderOfADifferentName(t *testing.T) {
	// λ(y : Natural) → x, substituting x := y (the caller's free y)
	// must shift that replacement so it refers past the new y binder.
	lam := &core.Lambda{ParamName: "y", ParamType: &core.Builtin{Name: "Natural"}, Body: &core.Var{Name: "x"}}
	result := Subst("x", 0, &core.Var{Name: "y"}, lam)
	inner, ok := result.(*core.Lambda)
	assert.True(t, ok)
	v, ok := inner.Body.(*core.Var)
	assert.True(t, ok)
	assert.Equal(t, "y", v.Name)
	assert.Equal(t, 1, v.Scope, "substituted free y must be shifted past the new y binder")
}

func TestShiftAdjustsOnlyVariablesAtOrAboveCutoff(t *testing.T) {
	v := &core.Var{Name: "x", Scope: 1}
	result := Shift(2, "x", 1, v)
	rv, ok := result.(*core.Var)
	assert.True(t, ok)
	assert.Equal(t, 3, rv.Scope)

	below := &core.Var{Name: "x", Scope: 0}
	result2 := Shift(2, "x", 1, below)
	rv2, ok := result2.(*core.Var)
	assert.True(t, ok)
	assert.Equal(t, 0, rv2.Scope, "a variable below cutoff is unaffected by Shift")
}
