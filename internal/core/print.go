package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Print renders e in the minimal canonical Dhall-like text form used for
// error messages and equality diagnostics (spec §6, §1 non-goals: this is
// not a full pretty-printer, just enough structure to read a trace or
// compare two normal forms by eye). Record and union alternatives are
// printed in label-sorted order, matching the canonical form Normalized
// produces for RecordType/UnionType (spec §8 property 6).
//
// Bound variables at nonzero scope print as name@scope.
func Print(e Expr) string {
	var b strings.Builder
	print1(&b, e)
	return b.String()
}

func print1(b *strings.Builder, e Expr) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	switch n := e.(type) {
	case *Const:
		b.WriteString(n.Universe.String())

	case *Var:
		b.WriteString(n.Name)
		if n.Scope != 0 {
			fmt.Fprintf(b, "@%d", n.Scope)
		}

	case *Lambda:
		fmt.Fprintf(b, "λ(%s : %s) → %s", n.ParamName, Print(n.ParamType), Print(n.Body))

	case *ForAll:
		fmt.Fprintf(b, "∀(%s : %s) → %s", n.ParamName, Print(n.ParamType), Print(n.Body))

	case *Apply:
		fmt.Fprintf(b, "(%s %s)", Print(n.Fn), Print(n.Arg))

	case *LetIn:
		for _, bind := range n.Bindings {
			b.WriteString("let ")
			b.WriteString(bind.Name)
			if bind.Annotation != nil {
				fmt.Fprintf(b, " : %s", Print(bind.Annotation))
			}
			fmt.Fprintf(b, " = %s in ", Print(bind.Value))
		}
		b.WriteString(Print(n.Body))

	case *Conditional:
		fmt.Fprintf(b, "if %s then %s else %s", Print(n.Cond), Print(n.True), Print(n.False))

	case *Annot:
		fmt.Fprintf(b, "(%s : %s)", Print(n.Value), Print(n.Type))

	case *Operator:
		fmt.Fprintf(b, "(%s %s %s)", Print(n.Arg1), n.Op.String(), Print(n.Arg2))

	case *Select:
		fmt.Fprintf(b, "%s.%s", Print(n.Record), n.Label)

	case *Project:
		fmt.Fprintf(b, "%s.{%s}", Print(n.Record), strings.Join(n.Labels, ", "))

	case *Merge:
		b.WriteString("merge ")
		b.WriteString(Print(n.Handlers))
		b.WriteString(" ")
		b.WriteString(Print(n.Union))
		if n.Annotation != nil {
			fmt.Fprintf(b, " : %s", Print(n.Annotation))
		}

	case *NaturalLit:
		b.WriteString(strconv.FormatUint(n.Value, 10))

	case *DoubleLit:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))

	case *BoolLit:
		if n.Value {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}

	case *TextLit:
		b.WriteString(`"`)
		for _, c := range n.Chunks {
			b.WriteString(normalizeText(c.Prefix))
			if c.Interp != nil {
				fmt.Fprintf(b, "${%s}", Print(c.Interp))
			}
		}
		b.WriteString(`"`)

	case *ListLit:
		b.WriteString("[")
		for i, it := range n.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Print(it))
		}
		b.WriteString("]")
		if len(n.Items) == 0 && n.ElementType != nil {
			fmt.Fprintf(b, " : List %s", Print(n.ElementType))
		}

	case *OptionalLit:
		if n.Value != nil {
			fmt.Fprintf(b, "Some %s", Print(n.Value))
		} else {
			fmt.Fprintf(b, "None %s", Print(n.ElementType))
		}

	case *RecordLit:
		fields := append([]RecordField(nil), n.Fields...)
		sort.Slice(fields, func(i, j int) bool { return fields[i].Label < fields[j].Label })
		b.WriteString("{")
		for i, fl := range fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s = %s", fl.Label, Print(fl.Value))
		}
		b.WriteString("}")

	case *Union:
		b.WriteString("<")
		fmt.Fprintf(b, "%s", n.Tag)
		if n.Value != nil {
			fmt.Fprintf(b, " = %s", Print(n.Value))
		}
		alts := sortedAlts(n.Alternatives)
		for _, a := range alts {
			if a.Label == n.Tag {
				continue
			}
			b.WriteString(" | ")
			b.WriteString(a.Label)
			if a.Type != nil {
				fmt.Fprintf(b, " : %s", Print(a.Type))
			}
		}
		b.WriteString(">")

	case *ListType:
		fmt.Fprintf(b, "List %s", Print(n.Element))

	case *OptionalType:
		fmt.Fprintf(b, "Optional %s", Print(n.Element))

	case *RecordType:
		fields := append([]RecordTypeField(nil), n.Fields...)
		sort.Slice(fields, func(i, j int) bool { return fields[i].Label < fields[j].Label })
		b.WriteString("{")
		for i, fl := range fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s : %s", fl.Label, Print(fl.Type))
		}
		b.WriteString("}")

	case *UnionType:
		b.WriteString("<")
		for i, a := range sortedAlts(n.Alternatives) {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(a.Label)
			if a.Type != nil {
				fmt.Fprintf(b, " : %s", Print(a.Type))
			}
		}
		b.WriteString(">")

	case *Builtin:
		b.WriteString(n.Name)

	case *Import:
		b.WriteString("<import>")

	default:
		fmt.Fprintf(b, "<unprintable %T>", e)
	}
}

// sortedAlts returns alternatives in label-sorted order, the canonical
// form RecordType/UnionType normalize to (spec §4.2, §8 property 6).
func sortedAlts(alts []UnionAlt) []UnionAlt {
	out := append([]UnionAlt(nil), alts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// normalizeText applies Unicode NFC normalization to a text-literal chunk
// so that diagnostic output is stable across encoding variants of the
// same text, the way a surface lexer would normalize source bytes (this
// module has no lexer).
func normalizeText(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
