// Command optecho parses its arguments and echoes what it found: the count
// and value of each option and the list of operands. It is a playground for
// the option syntax.
//
// Usage:
//
//	optecho [options] [operands...]
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jpvetterli/opts"
	"github.com/jpvetterli/opts/help"
)

var declarations = []opts.Option{
	opts.Flag("help,h", "Print this help text and exit."),
	opts.Flag("verbose,v", "Increase the level of detail. Can be repeated."),
	opts.Flag("lenient", "Skip unknown options instead of failing."),
	opts.Var[opts.Path]("output,o", "Write the report to this file instead of standard output."),
	opts.VarDefault("jobs,j", 1, "Number of things pretended to be done in parallel."),
	opts.VarDefault("ratio", 0.5, "A floating point number, for trying out conversions."),
	opts.VarDefault("timeout", 30*time.Second, "A duration like 1m30s."),
	opts.VarDefault("name", "world", "Whom to greet."),
	opts.Flag("debug-dump", "Also print options never seen.").Hide(),
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("optecho: ")

	args := os.Args[1:]
	r := opts.New(declarations...)
	err := r.Parse(args, false)
	if errors.Is(err, opts.UnknownOption) && lenient(args) {
		// start over, the first attempt stopped half way
		r = opts.New(declarations...)
		err = r.Parse(args, true)
	}
	if err != nil {
		log.Fatalf("%v (try --help)", err)
	}

	if r.Has("help") {
		fmt.Printf("Usage: %s [options] [operands...]\n\nOptions:\n", os.Args[0])
		if err := help.Print(os.Stdout, r); err != nil {
			log.Fatal(err)
		}
		return
	}

	out := io.Writer(os.Stdout)
	if p, err := opts.Get[opts.Path](r, "output"); err == nil {
		f, err := os.Create(string(p))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	report(out, r)
}

// lenient looks for --lenient with a registry knowing nothing else, since
// parsing may have failed before it was seen.
func lenient(args []string) bool {
	probe := opts.New(opts.Flag("lenient", ""))
	if err := probe.Parse(args, true); err != nil {
		return false
	}
	return probe.Has("lenient")
}

func report(w io.Writer, r *opts.Registry) {
	all := r.Has("debug-dump")
	for _, o := range r.Options() {
		if o.Count() == 0 && !all {
			continue
		}
		fmt.Fprintf(w, "%-20s seen %d", o.Spelling(), o.Count())
		if !o.IsFlag() {
			fmt.Fprintf(w, ", value %s", value(r, o))
		}
		fmt.Fprintln(w)
	}
	for i, s := range r.Operands() {
		fmt.Fprintf(w, "operand %d: %q\n", i, s)
	}
	if r.Count("verbose") > 1 {
		log.Printf("greeting %s with %d jobs", opts.GetOr(r, "name", ""), opts.GetOr(r, "jobs", 0))
	}
}

// value returns the current value of o as text.
func value(r *opts.Registry, o *opts.Option) string {
	name := o.Name()
	var v any
	var err error
	switch name {
	case "output":
		v, err = opts.Get[opts.Path](r, name)
	case "jobs":
		v, err = opts.Get[int](r, name)
	case "ratio":
		v, err = opts.Get[float64](r, name)
	case "timeout":
		v, err = opts.Get[time.Duration](r, name)
	default:
		v, err = opts.Get[string](r, name)
	}
	if err != nil {
		return "(" + err.Error() + ")"
	}
	return fmt.Sprint(v)
}
