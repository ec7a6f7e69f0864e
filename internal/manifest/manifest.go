// Package manifest is the fixture registry (spec §6's "external
// interfaces" need concrete expressions to drive): named Scenarios,
// each built in Go (there is no surface parser to read Dhall text
// from) together with its expected outcome, and documented by name,
// description and tags in fixtures.yaml, which Validate keeps in sync
// with the registry —
// the same role the teacher's own manifest package plays for its
// example files, retargeted from tracking *.ail file status to
// tracking in-code core.Expr scenarios.
package manifest

import "github.com/sunholo/dhallcore/internal/core"

// Scenario is one named, Go-constructed Expression together with the
// judgments it's expected to satisfy.
type Scenario struct {
	Name        string
	Description string
	Tags        []string
	// Build constructs the scenario's expression fresh on every call, so
	// a test mutating a returned tree (it shouldn't, but Expr values are
	// shared pointers) never corrupts another test's view of the same
	// scenario.
	Build func() core.Expr
	// ExpectError, when true, means Build's expression is expected to
	// fail type inference with ExpectedErrorKind; ExpectedNormalForm is
	// then unused.
	ExpectError       bool
	ExpectedErrorKind string
	// ExpectedNormalForm is the canonical (core.Print) form of the
	// scenario's evaluated-then-normalized expression. Leave unset for a
	// scenario that only asserts ExpectedType.
	ExpectedNormalForm string
	// ExpectedType, when set, is the canonical (core.Print) form of the
	// scenario's inferred type. Checked independently of
	// ExpectedNormalForm so a scenario can assert one, the other, or
	// both.
	ExpectedType string
}

var registry = map[string]*Scenario{}
var order []string

// Register adds s to the registry. Register panics on a duplicate
// name: two scenarios sharing a name is a registration bug, not a
// runtime condition callers should need to handle.
func Register(s *Scenario) {
	if _, exists := registry[s.Name]; exists {
		panic("manifest: duplicate scenario name " + s.Name)
	}
	registry[s.Name] = s
	order = append(order, s.Name)
}

// Lookup returns the scenario named name, if one is registered.
func Lookup(name string) (*Scenario, bool) {
	s, ok := registry[name]
	return s, ok
}

// All returns every registered scenario in registration order.
func All() []*Scenario {
	out := make([]*Scenario, len(order))
	for i, name := range order {
		out[i] = registry[name]
	}
	return out
}
