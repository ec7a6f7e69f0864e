package typecheck

import (
	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/env"
	"github.com/sunholo/dhallcore/internal/reduction"
)

// Equivalent implements the `≡` relation (spec §4.3): two expressions are
// α/β-equivalent when their normalized evaluations are structurally
// identical. Structural identity is decided by comparing canonical text
// forms: Print already renders record/union alternatives in
// label-sorted order and bound variables by canonical name/scope, so two
// structurally distinct trees never print equal and two α-renamings of
// the same tree always do (spec §8 properties 1, 6).
func Equivalent(a, b core.Expr) bool {
	return core.Print(normalizeClosed(a)) == core.Print(normalizeClosed(b))
}

func normalizeClosed(e core.Expr) core.Expr {
	evaluated := reduction.Evaluate(env.New[core.Expr](), e)
	return reduction.Normalize(env.New[struct{}](), evaluated)
}
