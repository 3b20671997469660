package opts_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/jpvetterli/opts"
)

func Example() {
	r := opts.New(
		opts.Flag("verbose,v", "say more"),
		opts.VarDefault("jobs,j", 4, "number of parallel jobs"),
		opts.Var[opts.Path]("output,o", "output file"),
	)
	err := r.Parse([]string{"-vv", "src", "--jobs=8", "-otarget.bin", "--", "-notes.txt"}, false)
	if err != nil {
		fmt.Println(err)
		return
	}
	jobs, _ := opts.Get[int](r, "jobs")
	output, _ := opts.Get[opts.Path](r, "output")
	fmt.Println("verbosity:", r.Count("verbose"))
	fmt.Println("jobs:", jobs)
	fmt.Println("output:", output)
	fmt.Printf("operands: %q\n", r.Operands())

	// output:
	// verbosity: 2
	// jobs: 8
	// output: target.bin
	// operands: ["src" "-notes.txt"]
}

func ExampleRegistry_Parse() {
	declarations := []opts.Option{
		opts.Flag("quiet,q", "say nothing"),
		opts.Var[float64]("ratio", "compression ratio"),
	}

	r := opts.New(declarations...)
	err := r.Parse([]string{"--ratio", "high", "-q"}, false)
	fmt.Println(err)
	fmt.Println(errors.Is(err, opts.InvalidValue))

	fmt.Println("Oops... let's try again")
	r = opts.New(declarations...)
	err = r.Parse([]string{"--ratio", "0.75", "-qz", "--fast"}, true)
	ratio, _ := opts.Get[float64](r, "ratio")
	fmt.Println(err, ratio, r.Has("quiet"))

	// output:
	// invalid argument for option: --ratio: strconv.ParseFloat: parsing "high": invalid syntax
	// true
	// Oops... let's try again
	// <nil> 0.75 true
}

func ExampleGet() {
	r := opts.New(
		opts.VarDefault("timeout", 30*time.Second, "how long to wait"),
		opts.Var[string]("user", "user name"),
	)
	r.Parse(nil, false)

	timeout, err := opts.Get[time.Duration](r, "timeout")
	fmt.Println(timeout, err)
	_, err = opts.Get[string](r, "user")
	fmt.Println(err)
	_, err = opts.Get[int](r, "timeout")
	fmt.Println(err)
	fmt.Println(opts.GetOr(r, "user", "nobody"))

	// output:
	// 30s <nil>
	// option was not specified: user
	// option type mismatch: timeout: declared as time.Duration, requested as int
	// nobody
}

func ExampleOption_Hide() {
	r := opts.New(
		opts.Flag("help,h", "print help"),
		opts.Flag("debug", "dump internals").Hide(),
	)
	r.Parse([]string{"--debug"}, false)
	for _, o := range r.Options() {
		fmt.Println(o.Spelling(), o.IsHidden(), o.Count())
	}

	// output:
	// -h, --help false 0
	// --debug true 1
}
