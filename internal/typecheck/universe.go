package typecheck

import "github.com/sunholo/dhallcore/internal/core"

// FunctionCheck is the closed, total table deciding which universe a
// dependent product (ForAll) inhabits given the universes of its
// parameter (p) and body (r) (spec §4.2 ForAll typing rule, §8 property
// 5). Grounded on the closed, total table shape of the teacher's
// types.Kind table in internal/types/kinds.go.
func FunctionCheck(p, r core.Universe) (core.Universe, bool) {
	switch {
	case r == core.UType:
		return core.UType, true
	case p == core.UKind && r == core.UKind:
		return core.UKind, true
	case p == core.USort && (r == core.UKind || r == core.USort):
		return core.USort, true
	default:
		return 0, false
	}
}
