package repl

import (
	"fmt"
	"io"
	"strings"

	dhallcore "github.com/sunholo/dhallcore"
	"github.com/sunholo/dhallcore/internal/manifest"
)

// HandleCommand processes a single REPL command.
func (r *REPL) HandleCommand(cmd string, out io.Writer) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case ":help", ":h":
		r.printHelp(out)

	case ":list", ":ls":
		r.listScenarios(out)

	case ":load", ":l":
		if len(parts) < 2 {
			fmt.Fprintln(out, "Usage: :load <name>")
			return
		}
		r.loadScenario(parts[1], out)

	case ":type", ":t":
		r.showType(out)

	case ":norm", ":n":
		r.showNormalized(out)

	case ":eval", ":e":
		r.showEvaluated(out)

	case ":show", ":s":
		r.showCurrent(out)

	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%3d  %s\n", i+1, h)
		}

	case ":clear":
		fmt.Fprint(out, "\033[H\033[2J")

	default:
		fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		fmt.Fprintln(out, "Type :help for help")
	}
}

func (r *REPL) listScenarios(out io.Writer) {
	for _, s := range manifest.All() {
		tags := ""
		if len(s.Tags) > 0 {
			tags = " " + dim(fmt.Sprintf("[%s]", strings.Join(s.Tags, ", ")))
		}
		fmt.Fprintf(out, "  %s%s\n", cyan(s.Name), tags)
		if s.Description != "" {
			fmt.Fprintf(out, "      %s\n", s.Description)
		}
	}
}

func (r *REPL) loadScenario(name string, out io.Writer) {
	s, ok := manifest.Lookup(name)
	if !ok {
		fmt.Fprintf(out, "%s: no such scenario %q\n", red("Error"), name)
		return
	}
	r.current = s
	r.currentExpr = s.Build()
	fmt.Fprintf(out, "%s Loaded %s\n", green("✓"), name)
}

func (r *REPL) requireCurrent(out io.Writer) bool {
	if r.current == nil {
		fmt.Fprintf(out, "%s: nothing loaded; try :list then :load <name>\n", yellow("Note"))
		return false
	}
	return true
}

func (r *REPL) showCurrent(out io.Writer) {
	if !r.requireCurrent(out) {
		return
	}
	fmt.Fprintln(out, dhallcore.Print(r.currentExpr))
}

func (r *REPL) showType(out io.Writer) {
	if !r.requireCurrent(out) {
		return
	}
	typ, err := dhallcore.TypeOf(r.currentExpr)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Type error"), err)
		return
	}
	fmt.Fprintf(out, "%s : %s\n", r.current.Name, cyan(dhallcore.Print(typ)))
}

func (r *REPL) showNormalized(out io.Writer) {
	if !r.requireCurrent(out) {
		return
	}
	fmt.Fprintln(out, cyan(dhallcore.Print(dhallcore.Normalized(r.currentExpr))))
}

func (r *REPL) showEvaluated(out io.Writer) {
	if !r.requireCurrent(out) {
		return
	}
	fmt.Fprintln(out, cyan(dhallcore.Print(dhallcore.Evaluated(r.currentExpr))))
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("Commands:"))
	fmt.Fprintln(out, "  :help, :h          Show this help")
	fmt.Fprintln(out, "  :quit, :q          Exit the REPL")
	fmt.Fprintln(out, "  :list, :ls         List fixture scenarios")
	fmt.Fprintln(out, "  :load, :l <name>   Load a scenario by name")
	fmt.Fprintln(out, "  :show, :s          Print the loaded expression as written")
	fmt.Fprintln(out, "  :type, :t          Infer the loaded expression's type")
	fmt.Fprintln(out, "  :norm, :n          Alpha-normalize the loaded expression")
	fmt.Fprintln(out, "  :eval, :e          Beta-evaluate the loaded expression to normal form")
	fmt.Fprintln(out, "  :history           Show command history")
	fmt.Fprintln(out, "  :clear             Clear the screen")
	fmt.Fprintln(out)
	fmt.Fprintln(out, bold("Example:"))
	fmt.Fprintln(out, "  :load successor-application")
	fmt.Fprintln(out, "  :eval")
}
