package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/dhallcore/internal/core"
)

type noopEvaluator struct{}

func (noopEvaluator) Eval(e core.Expr) core.Expr { return e }

func TestLookupKnownBuiltins(t *testing.T) {
	for _, name := range []string{"Bool", "Natural", "Double", "Text", "List", "Optional",
		"List/build", "List/fold", "List/length", "List/reverse", "List/head", "List/last",
		"Natural/even", "Natural/odd", "Natural/isZero",
		"Double/show", "Natural/show", "Text/show"} {
		_, ok := Lookup(name)
		assert.True(t, ok, "expected builtin %q to be registered", name)
	}
}

func TestLookupUnknownBuiltin(t *testing.T) {
	_, ok := Lookup("Natural/toInteger")
	assert.False(t, ok)
}

func TestNaturalIsZero(t *testing.T) {
	b, ok := Lookup("Natural/isZero")
	require.True(t, ok)
	result, ok := b.Reduce(noopEvaluator{}, []core.Expr{&core.NaturalLit{Value: 0}})
	require.True(t, ok)
	assert.True(t, result.(*core.BoolLit).Value)

	result, ok = b.Reduce(noopEvaluator{}, []core.Expr{&core.NaturalLit{Value: 3}})
	require.True(t, ok)
	assert.False(t, result.(*core.BoolLit).Value)
}

func TestNaturalEvenOdd(t *testing.T) {
	even, _ := Lookup("Natural/even")
	r, ok := even.Reduce(noopEvaluator{}, []core.Expr{&core.NaturalLit{Value: 4}})
	require.True(t, ok)
	assert.True(t, r.(*core.BoolLit).Value)

	odd, _ := Lookup("Natural/odd")
	r, ok = odd.Reduce(noopEvaluator{}, []core.Expr{&core.NaturalLit{Value: 4}})
	require.True(t, ok)
	assert.False(t, r.(*core.BoolLit).Value)
}

func TestShowBuiltins(t *testing.T) {
	natShow, _ := Lookup("Natural/show")
	r, ok := natShow.Reduce(noopEvaluator{}, []core.Expr{&core.NaturalLit{Value: 42}})
	require.True(t, ok)
	assert.Equal(t, `"42"`, core.Print(r))

	dblShow, _ := Lookup("Double/show")
	r, ok = dblShow.Reduce(noopEvaluator{}, []core.Expr{&core.DoubleLit{Value: 1.5}})
	require.True(t, ok)
	assert.Equal(t, `"1.5"`, core.Print(r))
}

func TestListLengthAndReverse(t *testing.T) {
	list := &core.ListLit{Items: []core.Expr{&core.NaturalLit{Value: 1}, &core.NaturalLit{Value: 2}, &core.NaturalLit{Value: 3}}}

	length, _ := Lookup("List/length")
	r, ok := length.Reduce(noopEvaluator{}, []core.Expr{&core.Builtin{Name: "Natural"}, list})
	require.True(t, ok)
	assert.Equal(t, uint64(3), r.(*core.NaturalLit).Value)

	reverse, _ := Lookup("List/reverse")
	r, ok = reverse.Reduce(noopEvaluator{}, []core.Expr{&core.Builtin{Name: "Natural"}, list})
	require.True(t, ok)
	rl, ok := r.(*core.ListLit)
	require.True(t, ok)
	require.Len(t, rl.Items, 3)
	assert.Equal(t, uint64(3), rl.Items[0].(*core.NaturalLit).Value)
	assert.Equal(t, uint64(1), rl.Items[2].(*core.NaturalLit).Value)
}

func TestListHeadAndLastOnEmptyListReturnNone(t *testing.T) {
	empty := &core.ListLit{ElementType: &core.Builtin{Name: "Natural"}}

	head, _ := Lookup("List/head")
	r, ok := head.Reduce(noopEvaluator{}, []core.Expr{&core.Builtin{Name: "Natural"}, empty})
	require.True(t, ok)
	opt, ok := r.(*core.OptionalLit)
	require.True(t, ok)
	assert.Nil(t, opt.Value)

	last, _ := Lookup("List/last")
	r, ok = last.Reduce(noopEvaluator{}, []core.Expr{&core.Builtin{Name: "Natural"}, empty})
	require.True(t, ok)
	opt, ok = r.(*core.OptionalLit)
	require.True(t, ok)
	assert.Nil(t, opt.Value)
}

func TestListBuildFusesWithListFold(t *testing.T) {
	xs := &core.Var{Name: "xs"}
	fold := &core.Apply{Fn: &core.Apply{Fn: &core.Builtin{Name: "List/fold"}, Arg: &core.Builtin{Name: "Natural"}}, Arg: xs}

	build, _ := Lookup("List/build")
	result, ok := build.Reduce(noopEvaluator{}, []core.Expr{&core.Builtin{Name: "Natural"}, fold})
	require.True(t, ok)
	assert.Same(t, xs, result)
}
