/*
Package opts parses command line options in the usual POSIX and GNU style. A
program declares its options, registers them, parses the arguments it gets
from the system, and then asks for what it found:

	package main

	import (
		"fmt"
		"os"

		"github.com/jpvetterli/opts"
		"github.com/jpvetterli/opts/help"
	)

	func main() {
		r := opts.New(
			opts.Flag("help,h", "print a usage summary and exit"),
			opts.Flag("verbose,v", "say more, can be repeated"),
			opts.VarDefault("jobs,j", 4, "number of parallel jobs"),
			opts.Var[opts.Path]("output,o", "output file"),
		)
		if err := r.Parse(os.Args[1:], false); err != nil {
			fmt.Fprintln(os.Stderr, err.Error()+" (try --help)")
			os.Exit(1)
		}
		if r.Has("help") {
			help.Print(os.Stdout, r)
			os.Exit(0)
		}
		jobs, _ := opts.Get[int](r, "jobs") // 4 unless specified
		...
	}

Declaring Options

Flag declares an option taking no argument. Var and VarDefault declare an
option taking an argument of a type T, which can be any integer or floating
point type, a string, a Path or a time.Duration. Types derived from these are
supported too. The name of an option is written in one of three ways:

	"x"          the short option -x
	"long"       the long option --long
	"long,x"     both --long and -x

A declaration is a prototype. A Registry copies the options given to New or
Register, so the same declarations can be used for several registries, which
never share state.

Command Line Syntax

Arguments are examined from left to right:

	--name          a long option
	--name=value    a long option with its argument
	--name=         a long option with an empty argument
	--name value    the same, if the option takes an argument
	-x              a short option
	-xyz            the short options -x, -y and -z
	-xvalue         -x with its argument "value", if -x takes one
	-x value        the same
	-               nothing, it is ignored
	--              the end of options, all remaining arguments are operands
	anything else   an operand

Options and operands can be mixed freely. An option taking an argument always
takes one: the rest of the argument after "=" or after the short name, or
else the next argument, even if it starts with a hyphen. In a group of short
options, only the last can take an argument, because it ends the group.

After "=" the argument can be empty: "--output=" gives --output the empty
string and does not take the next argument. A lone "-" is not an operand
unless it comes after "--".

Each time an option is found its count is incremented, and an argument is
converted to the type of the option and replaces any previous value. So for
options taking an argument, the last one wins.

Errors

Parsing stops at the first error. Errors are of type *Error and have a Kind,
which can be tested with errors.Is:

	err := r.Parse(args, false)
	if errors.Is(err, opts.UnknownOption) {
		...
	}

The kinds reported by Parse are UnknownOption, OptionDoesNotAcceptArgument,
MissingArgument and InvalidValue. When Parse is told to ignore unknown options,
these are skipped and do not count as operands. Get reports UnknownOption,
OptionNotSpecified and TypeMismatch.

Mistakes in declarations, like an invalid name, are bugs in the program and
cause a panic.

Help

Registry.WriteHelp writes a help text using a Renderer. Package help has the
usual one, which formats a table fitting in the terminal.

Concurrency

A Registry is not safe for concurrent use. The package-level functions use a
process-wide registry set up with Init, a convenience for small programs.
*/
package opts
