package typecheck

import "github.com/sunholo/dhallcore/internal/core"

// freeVarOccurs reports whether the free variable (name, scope) occurs
// in e, tracking binders the same way reduction.Subst does. Used by the
// Merge typing rule to reject a handler whose result type depends on the
// value it matched.
func freeVarOccurs(name string, scope int, e core.Expr) bool {
	if e == nil {
		return false
	}
	switch n := e.(type) {
	case *core.Var:
		return n.Name == name && n.Scope == scope

	case *core.Lambda:
		if freeVarOccurs(name, scope, n.ParamType) {
			return true
		}
		next := scope
		if n.ParamName == name {
			next++
		}
		return freeVarOccurs(name, next, n.Body)

	case *core.ForAll:
		if freeVarOccurs(name, scope, n.ParamType) {
			return true
		}
		next := scope
		if n.ParamName == name {
			next++
		}
		return freeVarOccurs(name, next, n.Body)

	case *core.LetIn:
		cur := scope
		for _, b := range n.Bindings {
			if freeVarOccurs(name, cur, b.Value) {
				return true
			}
			if b.Annotation != nil && freeVarOccurs(name, cur, b.Annotation) {
				return true
			}
			if b.Name == name {
				cur++
			}
		}
		return freeVarOccurs(name, cur, n.Body)

	default:
		found := false
		n.Walk(func(sub core.Expr) core.Expr {
			if freeVarOccurs(name, scope, sub) {
				found = true
			}
			return sub
		})
		return found
	}
}
