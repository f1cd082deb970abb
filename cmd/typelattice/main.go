// Command typelattice is a small demonstrator for the type engine: it can
// round-trip a type term through the textual syntax or run the inference
// driver over a handful of builtin-backed demonstration expression trees
// and print the results, colorized when attached to a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/typelattice/typelattice/internal/diagnostics"
	"github.com/typelattice/typelattice/internal/infer"
	"github.com/typelattice/typelattice/internal/types"
	"github.com/typelattice/typelattice/internal/vertex"
)

// BuildVersion is set via -ldflags at release build time.
var BuildVersion = "dev"

func main() {
	term := flag.String("term", "", "parse and print a type term in the textual syntax, then exit")
	builtinsPath := flag.String("builtins", "", "path to an alternate builtin YAML table (default: embedded)")
	diagnosticsDB := flag.String("diagnostics-db", "", "path to a sqlite database for persisted diagnostics (default: log to stderr only)")
	version := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *version {
		fmt.Println("typelattice " + BuildVersion)
		return
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	if *term != "" {
		t, err := types.Parse(*term)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse error:", err)
			os.Exit(1)
		}
		fmt.Println(colorize(color, t, types.Print(t)))
		return
	}

	reg, err := loadRegistry(*builtinsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading builtins:", err)
		os.Exit(1)
	}

	sink, closeSink, err := buildSink(*diagnosticsDB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening diagnostics store:", err)
		os.Exit(1)
	}
	defer closeSink()

	runDemo(reg, sink, color)
}

// buildSink returns the diagnostics.Sink the run should use: a sqlite-backed
// Store when dbPath is set, so a diagnostics history persists across runs,
// or the plain stderr Logger otherwise. The returned func releases any
// resources the sink holds and is always safe to defer.
func buildSink(dbPath string) (types.Sink, func(), error) {
	if dbPath == "" {
		return diagnostics.NewLogger(os.Stderr), func() {}, nil
	}
	store, err := diagnostics.OpenStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return diagnostics.Sink{Store: store}, func() { store.Close() }, nil
}

func loadRegistry(path string) (*vertex.Registry, error) {
	if path == "" {
		return vertex.NewRegistry()
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return vertex.LoadRegistry(doc)
}

// demo is one named expression tree built directly from the builtin
// registry, for the CLI's illustrative output.
type demo struct {
	name string
	tree *vertex.Tree
}

func demos() []demo {
	return []demo{
		{"and(#1, #2)", vertex.Apply(vertex.Builtin{BuiltinName: "and"},
			vertex.Leaf(vertex.Argument{Index: 1}), vertex.Leaf(vertex.Argument{Index: 2}))},
		{"if(#1, 2.0, 3.0)", vertex.Apply(vertex.Builtin{BuiltinName: "if"},
			vertex.Leaf(vertex.Argument{Index: 1}),
			vertex.Leaf(vertex.ContinLiteral{Value: 2.0}),
			vertex.Leaf(vertex.ContinLiteral{Value: 3.0}))},
		{"and(#1, 2.0)", vertex.Apply(vertex.Builtin{BuiltinName: "and"},
			vertex.Leaf(vertex.Argument{Index: 1}), vertex.Leaf(vertex.ContinLiteral{Value: 2.0}))},
	}
}

func runDemo(reg *vertex.Registry, sink types.Sink, color bool) {
	for _, d := range demos() {
		result, diags := infer.InferType(d.tree, reg, sink)
		fmt.Printf("%-20s => %s  (arity %d, contin %d, boolean %d, action_result %d)\n",
			d.name, colorize(color, result, types.Print(result)), types.Arity(result),
			types.ContinArity(result), types.BooleanArity(result), types.ActionResultArity(result))
		for _, diag := range diags {
			fmt.Printf("%*s  %s: %s\n", len(d.name), "", diag.Reason, diag.Message)
		}
	}
}

func colorize(color bool, t *types.Term, s string) string {
	if !color {
		return s
	}
	if !types.WellFormed(t) {
		return "\033[31m" + s + "\033[0m" // red for anything containing ill_formed
	}
	return "\033[32m" + s + "\033[0m" // green otherwise
}
