package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintLiterals(t *testing.T) {
	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{"natural", &NaturalLit{Value: 3}, "3"},
		{"bool true", &BoolLit{Value: true}, "True"},
		{"bool false", &BoolLit{Value: false}, "False"},
		{"text", &TextLit{Chunks: []TextChunk{{Prefix: "hi"}}}, `"hi"`},
		{"var free", &Var{Name: "x"}, "x"},
		{"var scoped", &Var{Name: "x", Scope: 2}, "x@2"},
		{"const type", &Const{Universe: UType}, "Type"},
		{"const kind", &Const{Universe: UKind}, "Kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Print(tt.e))
		})
	}
}

func TestPrintLambdaAndForAll(t *testing.T) {
	lam := &Lambda{ParamName: "x", ParamType: &Builtin{Name: "Natural"}, Body: &Var{Name: "x"}}
	assert.Equal(t, "λ(x : Natural) → x", Print(lam))

	pi := &ForAll{ParamName: "x", ParamType: &Builtin{Name: "Natural"}, Body: &Builtin{Name: "Natural"}}
	assert.Equal(t, "∀(x : Natural) → Natural", Print(pi))
}

func TestPrintSortsRecordTypeFields(t *testing.T) {
	rt := &RecordType{Fields: []RecordTypeField{
		{Label: "zebra", Type: &Builtin{Name: "Natural"}},
		{Label: "apple", Type: &Builtin{Name: "Bool"}},
	}}
	assert.Equal(t, "{apple : Bool, zebra : Natural}", Print(rt))
}

func TestPrintSortsUnionTypeAlternatives(t *testing.T) {
	ut := &UnionType{Alternatives: []UnionAlt{
		{Label: "Right", Type: &Builtin{Name: "Bool"}},
		{Label: "Left", Type: &Builtin{Name: "Natural"}},
	}}
	assert.Equal(t, "<Left : Natural | Right : Bool>", Print(ut))
}

func TestPrintListAndOptional(t *testing.T) {
	list := &ListLit{Items: []Expr{&NaturalLit{Value: 1}, &NaturalLit{Value: 2}}}
	assert.Equal(t, "[1, 2]", Print(list))

	empty := &ListLit{ElementType: &Builtin{Name: "Natural"}}
	assert.Equal(t, "[] : List Natural", Print(empty))

	some := &OptionalLit{Value: &NaturalLit{Value: 1}}
	assert.Equal(t, "Some 1", Print(some))

	none := &OptionalLit{ElementType: &Builtin{Name: "Natural"}}
	assert.Equal(t, "None Natural", Print(none))
}

func TestWalkRebuildsLambdaFields(t *testing.T) {
	lam := &Lambda{ParamName: "x", ParamType: &Builtin{Name: "Natural"}, Body: &Var{Name: "x"}}
	rebuilt := lam.Walk(func(e Expr) Expr {
		if v, ok := e.(*Var); ok {
			return &Var{Name: v.Name + "!"}
		}
		return e
	})
	assert.Equal(t, "λ(x : Natural) → x!", Print(rebuilt))
}
