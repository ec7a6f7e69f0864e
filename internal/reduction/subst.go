package reduction

import "github.com/sunholo/dhallcore/internal/core"

// Shift adjusts the scope index of every free variable named name in e
// by d, treating any occurrence with scope >= cutoff as free relative to
// a binder being inserted at cutoff. It is the standard companion to
// Subst, used to avoid variable capture when a substituted expression is
// carried underneath a new binder that happens to share a bound name
// with one of the substituted expression's own free variables.
func Shift(d int, name string, cutoff int, e core.Expr) core.Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *core.Var:
		if n.Name == name && n.Scope >= cutoff {
			return &core.Var{Node: n.Node, Name: n.Name, Scope: n.Scope + d}
		}
		return n

	case *core.Lambda:
		nextCutoff := cutoff
		if n.ParamName == name {
			nextCutoff++
		}
		return &core.Lambda{Node: n.Node, ParamName: n.ParamName, ParamType: Shift(d, name, cutoff, n.ParamType), Body: Shift(d, name, nextCutoff, n.Body)}

	case *core.ForAll:
		nextCutoff := cutoff
		if n.ParamName == name {
			nextCutoff++
		}
		return &core.ForAll{Node: n.Node, ParamName: n.ParamName, ParamType: Shift(d, name, cutoff, n.ParamType), Body: Shift(d, name, nextCutoff, n.Body)}

	case *core.LetIn:
		cur := cutoff
		bindings := make([]core.LetBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			nb := core.LetBinding{Name: b.Name, Value: Shift(d, name, cur, b.Value)}
			if b.Annotation != nil {
				nb.Annotation = Shift(d, name, cur, b.Annotation)
			}
			bindings[i] = nb
			if b.Name == name {
				cur++
			}
		}
		return &core.LetIn{Node: n.Node, Bindings: bindings, Body: Shift(d, name, cur, n.Body)}

	default:
		return n.Walk(func(sub core.Expr) core.Expr { return Shift(d, name, cutoff, sub) })
	}
}

// Subst replaces the free variable (name, scope) with repl throughout e,
// shifting repl's own free variables as it is carried under new binders
// of the same name (the standard capture-avoiding named-variable
// substitution used by Dhall's reference normalizer).
func Subst(name string, scope int, repl core.Expr, e core.Expr) core.Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *core.Var:
		if n.Name == name && n.Scope == scope {
			return repl
		}
		return n

	case *core.Lambda:
		paramType := Subst(name, scope, repl, n.ParamType)
		var body core.Expr
		if n.ParamName == name {
			body = Subst(name, scope+1, Shift(1, name, 0, repl), n.Body)
		} else {
			body = Subst(name, scope, Shift(1, n.ParamName, 0, repl), n.Body)
		}
		return &core.Lambda{Node: n.Node, ParamName: n.ParamName, ParamType: paramType, Body: body}

	case *core.ForAll:
		paramType := Subst(name, scope, repl, n.ParamType)
		var body core.Expr
		if n.ParamName == name {
			body = Subst(name, scope+1, Shift(1, name, 0, repl), n.Body)
		} else {
			body = Subst(name, scope, Shift(1, n.ParamName, 0, repl), n.Body)
		}
		return &core.ForAll{Node: n.Node, ParamName: n.ParamName, ParamType: paramType, Body: body}

	case *core.LetIn:
		curScope, curRepl := scope, repl
		bindings := make([]core.LetBinding, len(n.Bindings))
		for i, b := range n.Bindings {
			nb := core.LetBinding{Name: b.Name, Value: Subst(name, curScope, curRepl, b.Value)}
			if b.Annotation != nil {
				nb.Annotation = Subst(name, curScope, curRepl, b.Annotation)
			}
			bindings[i] = nb
			if b.Name == name {
				curScope++
				curRepl = Shift(1, name, 0, curRepl)
			} else {
				curRepl = Shift(1, b.Name, 0, curRepl)
			}
		}
		return &core.LetIn{Node: n.Node, Bindings: bindings, Body: Subst(name, curScope, curRepl, n.Body)}

	default:
		return n.Walk(func(sub core.Expr) core.Expr { return Subst(name, scope, repl, sub) })
	}
}
