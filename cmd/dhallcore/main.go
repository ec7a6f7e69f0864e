// Command dhallcore is the CLI front end for the calculus core: a fixture
// browser and REPL, and one-shot type/normal-form queries against named
// scenarios from the fixture manifest.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	dhallcore "github.com/sunholo/dhallcore"
	"github.com/sunholo/dhallcore/internal/manifest"
	"github.com/sunholo/dhallcore/internal/repl"
)

var (
	red  = color.New(color.FgRed).SprintFunc()
	cyan = color.New(color.FgCyan).SprintFunc()
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dhallcore",
		Short: "Explore the pure, total, dependently-typed calculus core",
	}

	root.AddCommand(replCmd(), listCmd(), typeCmd(), normCmd(), evalCmd())
	return root
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Run: func(cmd *cobra.Command, args []string) {
			repl.New().Start(os.Stdin, os.Stdout)
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fixture scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range manifest.All() {
				fmt.Printf("%s\t%s\n", cyan(s.Name), s.Description)
			}
		},
	}
}

func scenarioByArg(args []string) (expr dhallcore.Expr, err error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one scenario name")
	}
	s, ok := manifest.Lookup(args[0])
	if !ok {
		return nil, fmt.Errorf("no such scenario %q", args[0])
	}
	return s.Build(), nil
}

func typeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <scenario>",
		Short: "Infer a scenario's type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := scenarioByArg(args)
			if err != nil {
				return err
			}
			typ, err := dhallcore.TypeOf(e)
			if err != nil {
				return err
			}
			fmt.Println(dhallcore.Print(typ))
			return nil
		},
	}
}

func normCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "norm <scenario>",
		Short: "Alpha-normalize a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := scenarioByArg(args)
			if err != nil {
				return err
			}
			fmt.Println(dhallcore.Print(dhallcore.Normalized(e)))
			return nil
		},
	}
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <scenario>",
		Short: "Beta-evaluate a scenario to normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := scenarioByArg(args)
			if err != nil {
				return err
			}
			fmt.Println(dhallcore.Print(dhallcore.Evaluated(e)))
			return nil
		},
	}
}
