package opts

import (
	"github.com/google/shlex"
)

// Registry methods register options, parse command line arguments and
// provide the values found. A Registry is not safe for concurrent use.
type Registry struct {
	options  []*Option // in registration sequence
	operands []string
}

// New returns a Registry with a copy of each option, in the order given.
func New(options ...Option) *Registry {
	r := &Registry{
		options:  make([]*Option, 0, len(options)),
		operands: make([]string, 0),
	}
	for i := range options {
		r.Register(options[i])
	}
	return r
}

// Register adds a copy of o to the registry. Registering two options with
// the same name is allowed but pointless: the option registered first wins.
func (r *Registry) Register(o Option) {
	r.options = append(r.options, o.clone())
}

// Lookup returns the option with the given long name, or nil.
func (r *Registry) Lookup(name string) *Option {
	for _, o := range r.options {
		if o.name == name {
			return o
		}
	}
	return nil
}

// LookupShort returns the option with the given short name, or nil.
func (r *Registry) LookupShort(short rune) *Option {
	if short == 0 {
		return nil
	}
	for _, o := range r.options {
		if o.short == short {
			return o
		}
	}
	return nil
}

// Options returns the options in registration order.
func (r *Registry) Options() []*Option {
	return append([]*Option(nil), r.options...)
}

// Operands returns the arguments which are neither options nor option
// arguments, in the order they were found.
func (r *Registry) Operands() []string {
	return append([]string(nil), r.operands...)
}

// Has returns true if the option is declared and was either seen or has a
// default value.
func (r *Registry) Has(name string) bool {
	o := r.Lookup(name)
	return o != nil && (o.count > 0 || o.HasDefault())
}

// Count returns the number of times the option was seen, 0 if it is not
// declared.
func (r *Registry) Count(name string) int {
	if o := r.Lookup(name); o != nil {
		return o.count
	}
	return 0
}

// ParseLine splits line into words like a POSIX shell would (quotes,
// backslash escapes, comments) and calls Parse with the result.
func (r *Registry) ParseLine(line string, ignoreUnknown bool) error {
	args, err := shlex.Split(line)
	if err != nil {
		return err
	}
	return r.Parse(args, ignoreUnknown)
}
