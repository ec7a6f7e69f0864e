// Package dhallcore is the public entry point to the calculus core: the
// three top-level judgments a caller drives an already-constructed
// Expression tree through (spec §6) — Normalized, Evaluated, and TypeOf.
// Surface-syntax parsing, import resolution, and binary encoding are
// the responsibility of external collaborators; this package only
// requires that any ImportExpression leaf has already been resolved
// away before a tree reaches Evaluated or TypeOf.
package dhallcore

import (
	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/env"
	"github.com/sunholo/dhallcore/internal/reduction"
	"github.com/sunholo/dhallcore/internal/typecheck"
)

// Expr is the expression tree every operation in this package walks.
type Expr = core.Expr

// Normalized returns e's α-normal form: every bound variable renamed to
// its canonical scope-indexed name, independent of the names the caller
// originally chose.
func Normalized(e Expr) Expr {
	return reduction.Normalize(env.New[struct{}](), e)
}

// Evaluated returns e's β-normal form under the empty substitution
// environment. Evaluation never fails: a redex that cannot fire (for
// example, applying a non-function) is left in place rather than
// raising an error.
func Evaluated(e Expr) Expr {
	return reduction.Evaluate(env.New[core.Expr](), e)
}

// TypeOf infers e's type under the empty typing context, returning the
// first type error encountered. A non-nil error is always a
// *typecheck.Error unless e (or a subexpression it reaches) violates a
// caller precondition the type system itself cannot diagnose, such as an
// unresolved ImportExpression.
func TypeOf(e Expr) (Expr, error) {
	t, _, err := typecheck.Infer(env.New[typecheck.TypeBinding](), e)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Equivalent implements the `≡` relation (spec §4.3): whether two
// expressions evaluate and α-normalize to the same canonical form.
func Equivalent(a, b Expr) bool {
	return typecheck.Equivalent(a, b)
}

// Print renders e in its canonical textual form, used for diagnostics
// and equality-check output (spec §6).
func Print(e Expr) string {
	return core.Print(e)
}
