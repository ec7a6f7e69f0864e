package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ignoreNodeID treats Node.NodeID as bookkeeping, matching the Node
// type's doc comment that two expressions differing only in NodeID are still
// structurally equal under every judgment in this package.
var ignoreNodeID = cmp.Comparer(func(a, b Node) bool { return true })

func TestWalkRebuildsLambdaStructurallyUnchanged(t *testing.T) {
	lam := &Lambda{
		ParamName: "x",
		ParamType: &Builtin{Name: "Natural"},
		Body:      &Var{Name: "x"},
	}
	rebuilt := lam.Walk(func(e Expr) Expr { return e })

	if diff := cmp.Diff(lam, rebuilt, ignoreNodeID); diff != "" {
		t.Errorf("Walk with an identity function must reproduce an equal tree (-want +got):\n%s", diff)
	}
}

func TestWalkReplacesImmediateSubexpressions(t *testing.T) {
	lam := &Lambda{
		ParamName: "x",
		ParamType: &Builtin{Name: "Natural"},
		Body:      &Var{Name: "x"},
	}

	replaced := lam.Walk(func(e Expr) Expr {
		if _, ok := e.(*Var); ok {
			return &NaturalLit{Value: 0}
		}
		return e
	})

	want := &Lambda{
		ParamName: "x",
		ParamType: &Builtin{Name: "Natural"},
		Body:      &NaturalLit{Value: 0},
	}

	if diff := cmp.Diff(want, replaced, ignoreNodeID); diff != "" {
		t.Errorf("Walk must apply f to the lambda's body (-want +got):\n%s", diff)
	}
}

func TestRecordLitFieldsAreStructurallyComparable(t *testing.T) {
	a := &RecordLit{Fields: []RecordField{
		{Label: "x", Value: &NaturalLit{Value: 1}},
		{Label: "y", Value: &BoolLit{Value: true}},
	}}
	b := &RecordLit{Fields: []RecordField{
		{Label: "x", Value: &NaturalLit{Value: 1}},
		{Label: "y", Value: &BoolLit{Value: true}},
	}}

	if diff := cmp.Diff(a, b, ignoreNodeID); diff != "" {
		t.Errorf("two record literals built from equal fields must compare equal (-want +got):\n%s", diff)
	}
}
