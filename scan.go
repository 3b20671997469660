package opts

import (
	"strings"
	"unicode/utf8"
)

type scanState uint8

const (
	ssOptions  scanState = iota // options and operands mixed
	ssOperands                  // after "--", operands only
)

// Parse parses command line arguments. The program name must not be
// included, so a program usually passes os.Args[1:]. Each option found is
// counted and, if it takes an argument, assigned a value. All other
// arguments are operands. The input syntax is explained in the package
// documentation.
//
// Parsing stops at the first error, which is an *Error. Options seen until
// then keep their count and value. If ignoreUnknown is true, unknown options
// are skipped silently instead of causing an UnknownOption error.
func (r *Registry) Parse(args []string, ignoreUnknown bool) error {
	s := scanner{registry: r, args: args, ignoreUnknown: ignoreUnknown}
	return s.run()
}

// scanner walks through an argument vector once.
type scanner struct {
	registry      *Registry
	args          []string
	pos           int // index of the next argument
	state         scanState
	ignoreUnknown bool
}

func (s *scanner) run() error {
	for s.pos < len(s.args) {
		arg := s.next()

		switch {
		case s.state == ssOperands:
			s.operand(arg)
		case arg == "--":
			s.state = ssOperands
		case !strings.HasPrefix(arg, "-"):
			// POSIX says the first operand ends the options but
			// people expect to mix options and operands
			s.operand(arg)
		case strings.HasPrefix(arg, "--"):
			if err := s.long(arg[2:]); err != nil {
				return err
			}
		default:
			// a lone "-" is an empty cluster
			if err := s.cluster(arg[1:]); err != nil {
				return err
			}
		}
	}
	return nil
}

// next consumes the next argument.
func (s *scanner) next() string {
	arg := s.args[s.pos]
	s.pos++
	return arg
}

func (s *scanner) operand(arg string) {
	s.registry.operands = append(s.registry.operands, arg)
}

// long handles "--name" and "--name=value" (without the leading "--").
func (s *scanner) long(arg string) error {
	name, value, inline := strings.Cut(arg, "=")
	spelling := "--" + name
	o := s.registry.Lookup(name)
	if o == nil {
		return s.unknown(spelling)
	}
	if o.IsFlag() {
		if inline {
			return newError(OptionDoesNotAcceptArgument, spelling, nil)
		}
		o.record()
		return nil
	}
	o.record()
	if !inline {
		var ok bool
		if value, ok = s.argument(); !ok {
			return newError(MissingArgument, spelling, nil)
		}
	}
	return s.assign(o, spelling, value)
}

// cluster handles one or more short options in a single argument (without
// the leading "-"). An option taking an argument ends the cluster: the rest
// of the cluster, or else the next argument, is its value.
func (s *scanner) cluster(arg string) error {
	for i := 0; i < len(arg); {
		c, size := utf8.DecodeRuneInString(arg[i:])
		i += size
		spelling := "-" + string(c)
		o := s.registry.LookupShort(c)
		if o == nil {
			if err := s.unknown(spelling); err != nil {
				return err
			}
			continue
		}
		o.record()
		if o.IsFlag() {
			continue
		}
		value := arg[i:]
		if len(value) == 0 {
			var ok bool
			if value, ok = s.argument(); !ok {
				return newError(MissingArgument, spelling, nil)
			}
		}
		return s.assign(o, spelling, value)
	}
	return nil
}

// argument consumes the next argument as an option argument, whatever it
// looks like. It returns false at the end of the arguments.
func (s *scanner) argument() (string, bool) {
	if s.pos >= len(s.args) {
		return "", false
	}
	return s.next(), true
}

func (s *scanner) assign(o *Option, spelling, value string) error {
	if err := o.assign(value); err != nil {
		return newError(InvalidValue, spelling, err)
	}
	return nil
}

// unknown returns an UnknownOption error unless unknown options are ignored.
func (s *scanner) unknown(spelling string) error {
	if s.ignoreUnknown {
		return nil
	}
	return newError(UnknownOption, spelling, nil)
}
