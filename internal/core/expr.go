// Package core defines the single Expression AST shared by the
// normalization, evaluation, and type-inference judgments. It plays the
// same role in this module that the ANF Core AST plays in the teacher
// interpreter: one tagged union, ~30 variants, each implementing the
// same small set of methods, dispatched on by a type switch in every
// other package.
package core

import "fmt"

// Node carries the bookkeeping every Expr variant embeds: a stable
// identifier assigned at construction time. It carries no semantic
// weight — two expressions that differ only in NodeID are still
// structurally equal under every judgment in this package.
type Node struct {
	NodeID uint64
}

func (n Node) ID() uint64 { return n.NodeID }

// Expr is the base interface implemented by every expression variant.
type Expr interface {
	ID() uint64
	// Walk rebuilds this node, applying f to each immediate
	// subexpression-typed field. Variants with no special normalize/
	// evaluate rule recurse purely through Walk.
	Walk(f func(Expr) Expr) Expr
	expr()
}

// Universe is one of the three type-of-types constants: Type, Kind, Sort.
type Universe int

const (
	UType Universe = iota
	UKind
	USort
)

func (u Universe) String() string {
	switch u {
	case UType:
		return "Type"
	case UKind:
		return "Kind"
	case USort:
		return "Sort"
	default:
		return fmt.Sprintf("Universe(%d)", int(u))
	}
}

// Const is one of the universe constants Type, Kind, Sort.
type Const struct {
	Node
	Universe Universe
}

func (e *Const) expr() {}
func (e *Const) Walk(func(Expr) Expr) Expr { return e }

// Var is a variable reference, resolved by name and de-Bruijn-like scope
// index (0 = innermost binding of that name).
type Var struct {
	Node
	Name  string
	Scope int // default 0
}

func (e *Var) expr() {}
func (e *Var) Walk(func(Expr) Expr) Expr { return e }

// Lambda is a λ-abstraction: λ(ParamName : ParamType) → Body.
type Lambda struct {
	Node
	ParamName string
	ParamType Expr
	Body      Expr
}

func (e *Lambda) expr() {}
func (e *Lambda) Walk(f func(Expr) Expr) Expr {
	return &Lambda{Node: e.Node, ParamName: e.ParamName, ParamType: f(e.ParamType), Body: f(e.Body)}
}

// ForAll is a dependent product (Π-type): ∀(ParamName : ParamType) → Body.
type ForAll struct {
	Node
	ParamName string
	ParamType Expr
	Body      Expr
}

func (e *ForAll) expr() {}
func (e *ForAll) Walk(f func(Expr) Expr) Expr {
	return &ForAll{Node: e.Node, ParamName: e.ParamName, ParamType: f(e.ParamType), Body: f(e.Body)}
}

// Apply is function application: Fn Arg.
type Apply struct {
	Node
	Fn  Expr
	Arg Expr
}

func (e *Apply) expr() {}
func (e *Apply) Walk(f func(Expr) Expr) Expr {
	return &Apply{Node: e.Node, Fn: f(e.Fn), Arg: f(e.Arg)}
}

// LetBinding is one binding of a LetIn: `name = value [: annotation]`.
type LetBinding struct {
	Name       string
	Value      Expr
	Annotation Expr // nil if no annotation
}

// LetIn is a (possibly multi-binding) let expression.
type LetIn struct {
	Node
	Bindings []LetBinding
	Body     Expr
}

func (e *LetIn) expr() {}
func (e *LetIn) Walk(f func(Expr) Expr) Expr {
	bindings := make([]LetBinding, len(e.Bindings))
	for i, b := range e.Bindings {
		nb := LetBinding{Name: b.Name, Value: f(b.Value)}
		if b.Annotation != nil {
			nb.Annotation = f(b.Annotation)
		}
		bindings[i] = nb
	}
	return &LetIn{Node: e.Node, Bindings: bindings, Body: f(e.Body)}
}

// Conditional is `if Cond then True else False`.
type Conditional struct {
	Node
	Cond  Expr
	True  Expr
	False Expr
}

func (e *Conditional) expr() {}
func (e *Conditional) Walk(f func(Expr) Expr) Expr {
	return &Conditional{Node: e.Node, Cond: f(e.Cond), True: f(e.True), False: f(e.False)}
}

// Annot is a type annotation: Value : Type.
type Annot struct {
	Node
	Value Expr
	Type  Expr
}

func (e *Annot) expr() {}
func (e *Annot) Walk(f func(Expr) Expr) Expr {
	return &Annot{Node: e.Node, Value: f(e.Value), Type: f(e.Type)}
}

// OpKind identifies a BinaryOperator variant.
type OpKind int

const (
	ListAppend OpKind = iota
	Plus
	Times
	Or
	And
)

func (k OpKind) String() string {
	switch k {
	case ListAppend:
		return "#"
	case Plus:
		return "+"
	case Times:
		return "*"
	case Or:
		return "||"
	case And:
		return "&&"
	default:
		return "?"
	}
}

// Operator is one of the ListAppend/Plus/Times/Or/And binary operators.
type Operator struct {
	Node
	Op   OpKind
	Arg1 Expr
	Arg2 Expr
}

func (e *Operator) expr() {}
func (e *Operator) Walk(f func(Expr) Expr) Expr {
	return &Operator{Node: e.Node, Op: e.Op, Arg1: f(e.Arg1), Arg2: f(e.Arg2)}
}

// Select is `Record.Label`.
type Select struct {
	Node
	Record Expr
	Label  string
}

func (e *Select) expr() {}
func (e *Select) Walk(f func(Expr) Expr) Expr {
	return &Select{Node: e.Node, Record: f(e.Record), Label: e.Label}
}

// Project is `Record.{Labels...}`.
type Project struct {
	Node
	Record Expr
	Labels []string
}

func (e *Project) expr() {}
func (e *Project) Walk(f func(Expr) Expr) Expr {
	return &Project{Node: e.Node, Record: f(e.Record), Labels: append([]string(nil), e.Labels...)}
}

// Merge is `merge Handlers Union [: Annotation]`.
type Merge struct {
	Node
	Handlers   Expr
	Union      Expr
	Annotation Expr // nil unless present
}

func (e *Merge) expr() {}
func (e *Merge) Walk(f func(Expr) Expr) Expr {
	m := &Merge{Node: e.Node, Handlers: f(e.Handlers), Union: f(e.Union)}
	if e.Annotation != nil {
		m.Annotation = f(e.Annotation)
	}
	return m
}

// NaturalLit is a non-negative integer literal.
type NaturalLit struct {
	Node
	Value uint64
}

func (e *NaturalLit) expr() {}
func (e *NaturalLit) Walk(func(Expr) Expr) Expr { return e }

// DoubleLit is a floating point literal.
type DoubleLit struct {
	Node
	Value float64
}

func (e *DoubleLit) expr() {}
func (e *DoubleLit) Walk(func(Expr) Expr) Expr { return e }

// BoolLit is a boolean literal (what `True`/`False` resolve to).
type BoolLit struct {
	Node
	Value bool
}

func (e *BoolLit) expr() {}
func (e *BoolLit) Walk(func(Expr) Expr) Expr { return e }

// TextChunk is one piece of a TextLit: a literal prefix followed by an
// optional interpolated expression (nil Interp on the final chunk).
type TextChunk struct {
	Prefix string
	Interp Expr
}

// TextLit is a (possibly interpolated) text literal.
type TextLit struct {
	Node
	Chunks []TextChunk
}

func (e *TextLit) expr() {}
func (e *TextLit) Walk(f func(Expr) Expr) Expr {
	chunks := make([]TextChunk, len(e.Chunks))
	for i, c := range e.Chunks {
		nc := TextChunk{Prefix: c.Prefix}
		if c.Interp != nil {
			nc.Interp = f(c.Interp)
		}
		chunks[i] = nc
	}
	return &TextLit{Node: e.Node, Chunks: chunks}
}

// ListLit is a list literal. ElementType is required iff Items is empty.
type ListLit struct {
	Node
	Items       []Expr
	ElementType Expr
}

func (e *ListLit) expr() {}
func (e *ListLit) Walk(f func(Expr) Expr) Expr {
	items := make([]Expr, len(e.Items))
	for i, it := range e.Items {
		items[i] = f(it)
	}
	l := &ListLit{Node: e.Node, Items: items}
	if e.ElementType != nil {
		l.ElementType = f(e.ElementType)
	}
	return l
}

// OptionalLit is `Some Value` (Value non-nil) or `None ElementType`.
type OptionalLit struct {
	Node
	Value       Expr // nil for None
	ElementType Expr // required when Value is nil, optional otherwise
}

func (e *OptionalLit) expr() {}
func (e *OptionalLit) Walk(f func(Expr) Expr) Expr {
	o := &OptionalLit{Node: e.Node}
	if e.Value != nil {
		o.Value = f(e.Value)
	}
	if e.ElementType != nil {
		o.ElementType = f(e.ElementType)
	}
	return o
}

// RecordField is one label/value pair of a RecordLit.
type RecordField struct {
	Label string
	Value Expr
}

// RecordLit is a record literal `{ l1 = v1, l2 = v2, ... }`.
type RecordLit struct {
	Node
	Fields []RecordField
}

func (e *RecordLit) expr() {}
func (e *RecordLit) Walk(f func(Expr) Expr) Expr {
	fields := make([]RecordField, len(e.Fields))
	for i, fl := range e.Fields {
		fields[i] = RecordField{Label: fl.Label, Value: f(fl.Value)}
	}
	return &RecordLit{Node: e.Node, Fields: fields}
}

// Lookup returns the field value for label, and whether it was found.
func (e *RecordLit) Lookup(label string) (Expr, bool) {
	for _, fl := range e.Fields {
		if fl.Label == label {
			return fl.Value, true
		}
	}
	return nil, false
}

// UnionAlt is one alternative of a union type: a label and, for
// alternatives that carry a payload, its type (nil for payload-less
// alternatives).
type UnionAlt struct {
	Label string
	Type  Expr // nil if the alternative carries no payload
}

// Union is a union literal: `< Tag = Value | other alternatives... >`.
type Union struct {
	Node
	Tag          string
	Value        Expr // nil if Tag's alternative carries no payload
	Alternatives []UnionAlt
}

func (e *Union) expr() {}
func (e *Union) Walk(f func(Expr) Expr) Expr {
	u := &Union{Node: e.Node, Tag: e.Tag, Alternatives: walkAlts(e.Alternatives, f)}
	if e.Value != nil {
		u.Value = f(e.Value)
	}
	return u
}

func walkAlts(alts []UnionAlt, f func(Expr) Expr) []UnionAlt {
	out := make([]UnionAlt, len(alts))
	for i, a := range alts {
		na := UnionAlt{Label: a.Label}
		if a.Type != nil {
			na.Type = f(a.Type)
		}
		out[i] = na
	}
	return out
}

// ListType is the applied list type constructor `List Element`.
type ListType struct {
	Node
	Element Expr
}

func (e *ListType) expr() {}
func (e *ListType) Walk(f func(Expr) Expr) Expr {
	return &ListType{Node: e.Node, Element: f(e.Element)}
}

// OptionalType is `Optional Element`.
type OptionalType struct {
	Node
	Element Expr
}

func (e *OptionalType) expr() {}
func (e *OptionalType) Walk(f func(Expr) Expr) Expr {
	return &OptionalType{Node: e.Node, Element: f(e.Element)}
}

// RecordTypeField is one label/type pair of a RecordType.
type RecordTypeField struct {
	Label string
	Type  Expr
}

// RecordType is a record type `{ l1 : T1, l2 : T2, ... }`.
type RecordType struct {
	Node
	Fields []RecordTypeField
}

func (e *RecordType) expr() {}
func (e *RecordType) Walk(f func(Expr) Expr) Expr {
	fields := make([]RecordTypeField, len(e.Fields))
	for i, fl := range e.Fields {
		fields[i] = RecordTypeField{Label: fl.Label, Type: f(fl.Type)}
	}
	return &RecordType{Node: e.Node, Fields: fields}
}

// Lookup returns the field type for label, and whether it was found.
func (e *RecordType) Lookup(label string) (Expr, bool) {
	for _, fl := range e.Fields {
		if fl.Label == label {
			return fl.Type, true
		}
	}
	return nil, false
}

// UnionType is a union type `< L1 : T1 | L2 : T2 | ... >`.
type UnionType struct {
	Node
	Alternatives []UnionAlt
}

func (e *UnionType) expr() {}
func (e *UnionType) Walk(f func(Expr) Expr) Expr {
	return &UnionType{Node: e.Node, Alternatives: walkAlts(e.Alternatives, f)}
}

// Lookup returns the alternative's payload type (nil if payload-less)
// and whether the label was found at all.
func (e *UnionType) Lookup(label string) (Expr, bool) {
	for _, a := range e.Alternatives {
		if a.Label == label {
			return a.Type, true
		}
	}
	return nil, false
}

// Builtin is a reference to one of the closed set of built-in type
// constants, primitive type names, or builtin functions (see package
// builtins). Its type and reduction behavior are resolved by name.
type Builtin struct {
	Node
	Name string
}

func (e *Builtin) expr() {}
func (e *Builtin) Walk(func(Expr) Expr) Expr { return e }

// Import is an opaque, structurally inert leaf. The core never inspects
// or reduces it; an external resolver replaces it before an expression
// reaches Normalized/Evaluated/TypeOf.
type Import struct {
	Node
	Opaque interface{}
}

func (e *Import) expr() {}
func (e *Import) Walk(func(Expr) Expr) Expr { return e }
