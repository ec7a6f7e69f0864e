package manifest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// FixtureSpec is one YAML-described entry documenting a registered
// Scenario. Grounded on the teacher's internal/eval_harness.BenchmarkSpec:
// a plain yaml-tagged struct loaded with yaml.Unmarshal and checked for
// its required fields by hand rather than through a schema validator.
type FixtureSpec struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// LoadSpecs reads the fixture documentation file at path.
func LoadSpecs(path string) ([]FixtureSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture specs: %w", err)
	}
	var specs []FixtureSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse fixture specs: %w", err)
	}
	for i, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("fixture spec %d missing required field: name", i)
		}
	}
	return specs, nil
}

// Validate checks that specs and the in-code Scenario registry describe
// exactly the same set of names, the way the teacher's manifest package
// keeps its documentation in sync with the examples it describes. It
// returns every mismatch found rather than stopping at the first, since
// a documentation drift check is more useful as a complete report.
func Validate(specs []FixtureSpec) []error {
	var problems []error

	documented := make(map[string]bool, len(specs))
	for _, s := range specs {
		documented[s.Name] = true
	}

	registered := make(map[string]bool, len(order))
	for _, name := range order {
		registered[name] = true
	}

	for name := range documented {
		if !registered[name] {
			problems = append(problems, fmt.Errorf("fixtures.yaml documents %q but no Scenario is registered under that name", name))
		}
	}
	for name := range registered {
		if !documented[name] {
			problems = append(problems, fmt.Errorf("scenario %q is registered but not documented in fixtures.yaml", name))
		}
	}

	sort.Slice(problems, func(i, j int) bool { return problems[i].Error() < problems[j].Error() })
	return problems
}
