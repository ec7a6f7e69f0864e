// validate_manifest.go validates the fixture manifest against its YAML
// documentation and, for every registered scenario, checks that
// evaluation and type inference produce the expected error kind, type or
// normal form recorded on that Scenario in internal/manifest/fixtures.go.
// It ensures documentation stays in sync with reality.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/sunholo/dhallcore/internal/core"
	"github.com/sunholo/dhallcore/internal/env"
	"github.com/sunholo/dhallcore/internal/manifest"
	"github.com/sunholo/dhallcore/internal/reduction"
	"github.com/sunholo/dhallcore/internal/typecheck"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		specsPath = flag.String("fixtures", "internal/manifest/fixtures.yaml", "Path to the fixture documentation file")
		verbose   = flag.Bool("verbose", false, "Print every scenario, not just failures")
	)
	flag.Parse()

	fmt.Printf("%s Fixture Manifest Validator\n", bold("dhallcore"))
	fmt.Printf("Fixtures: %s\n\n", *specsPath)

	specs, err := manifest.LoadSpecs(*specsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed to load fixture specs: %v\n", red("Error:"), err)
		os.Exit(1)
	}

	problems := manifest.Validate(specs)
	for _, p := range problems {
		fmt.Printf("%s %v\n", red("✗"), p)
	}

	failed := len(problems)
	for _, s := range manifest.All() {
		ok, msg := checkScenario(s)
		if !ok {
			failed++
			fmt.Printf("%s %s: %s\n", red("✗"), s.Name, msg)
		} else if *verbose {
			fmt.Printf("%s %s: %s\n", green("✓"), s.Name, msg)
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("─", 60))
	total := len(manifest.All())
	fmt.Printf("Results: %s passed, %s failed (of %d scenarios)\n",
		green(fmt.Sprintf("%d", total-failed)), red(fmt.Sprintf("%d", failed)), total)

	if failed > 0 {
		os.Exit(1)
	}
}

func checkScenario(s *manifest.Scenario) (bool, string) {
	e := s.Build()

	if s.ExpectError {
		_, _, err := typecheck.Infer(env.New[typecheck.TypeBinding](), e)
		if err == nil {
			return false, "expected a type error but inference succeeded"
		}
		te, ok := err.(*typecheck.Error)
		if !ok {
			return false, fmt.Sprintf("expected a *typecheck.Error, got %T", err)
		}
		if string(te.Kind) != s.ExpectedErrorKind {
			return false, fmt.Sprintf("expected error kind %q, got %q", s.ExpectedErrorKind, te.Kind)
		}
		return true, fmt.Sprintf("failed as expected (%s)", te.Kind)
	}

	var results []string

	if s.ExpectedType != "" {
		ty, _, err := typecheck.Infer(env.New[typecheck.TypeBinding](), e)
		if err != nil {
			return false, fmt.Sprintf("unexpected type error: %v", err)
		}
		gotType := core.Print(ty)
		if gotType != s.ExpectedType {
			return false, fmt.Sprintf("type mismatch:\n  expected: %s\n  got:      %s", s.ExpectedType, gotType)
		}
		results = append(results, gotType)
	}

	if s.ExpectedNormalForm != "" {
		evaluated := reduction.Evaluate(env.New[core.Expr](), e)
		normalized := reduction.Normalize(env.New[struct{}](), evaluated)
		got := core.Print(normalized)
		if got != s.ExpectedNormalForm {
			return false, fmt.Sprintf("normal form mismatch:\n  expected: %s\n  got:      %s", s.ExpectedNormalForm, got)
		}
		results = append(results, got)
	}

	return true, strings.Join(results, "; ")
}
