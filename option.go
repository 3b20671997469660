package opts

import "unicode/utf8"

// Option describes one option: its names, its help text, whether it takes
// an argument, its default value and, once registered and parsed, the number
// of times it was seen and its current value.
//
// The functions Flag, Var and VarDefault return an Option which serves as a
// prototype. A Registry keeps its own copy of every prototype, so one
// prototype can be registered in any number of registries, and parsing never
// modifies it. Option methods are designed to support chaining:
//
//	opts.Var[int]("jobs,j", "number of parallel jobs").Hide()
type Option struct {
	name   string // the long name
	short  rune   // 0 if none
	doc    string
	hidden bool
	count  int    // number of times seen
	value  holder // nil for a flag
}

// holder holds the typed value of an option taking an argument.
type holder interface {
	set(value string) error
	hasDefault() bool
	defaultString() string
	typeName() string
	clone() holder
}

// typed is the holder of an option taking a T.
type typed[T Scalar] struct {
	value  T
	valid  bool // value is set, either by default or by an argument
	def    T
	hasDef bool
}

func (h *typed[T]) set(value string) error {
	v, err := convert[T](value)
	if err != nil {
		return err
	}
	// if specified more than once, the last wins
	h.value, h.valid = v, true
	return nil
}

func (h *typed[T]) hasDefault() bool {
	return h.hasDef
}

func (h *typed[T]) defaultString() string {
	if !h.hasDef {
		return ""
	}
	return format(h.def)
}

func (h *typed[T]) typeName() string {
	return typeName[T]()
}

func (h *typed[T]) clone() holder {
	c := *h
	return &c
}

// Flag returns an option taking no argument. Its presence is its value.
//
// The name is one of "x" (a short name, also usable as long name), "long" (a
// long name) or "long,x" (a long name and a short name). Names are made of
// letters, digits, hyphens and underscores, and a long name cannot start with
// a hyphen. Panics if the name is invalid, since this is a bug in the program.
func Flag(name, description string) Option {
	long, short := splitName(name)
	return Option{name: long, short: short, doc: description}
}

// Var returns an option taking an argument of type T, without a default
// value. The name is specified as for Flag.
func Var[T Scalar](name, description string) Option {
	o := Flag(name, description)
	o.value = &typed[T]{}
	return o
}

// VarDefault returns an option taking an argument of type T, with a default
// value. The name is specified as for Flag.
func VarDefault[T Scalar](name string, def T, description string) Option {
	o := Flag(name, description)
	o.value = &typed[T]{value: def, valid: true, def: def, hasDef: true}
	return o
}

// Hide returns a copy of the option which does not appear in help output. A
// hidden option is parsed like any other.
func (o Option) Hide() Option {
	o.hidden = true
	return o
}

// Name returns the long name of the option.
func (o *Option) Name() string { return o.name }

// Short returns the short name of the option, or 0 if it has none.
func (o *Option) Short() rune { return o.short }

// Description returns the help text.
func (o *Option) Description() string { return o.doc }

// IsFlag returns true if the option takes no argument.
func (o *Option) IsFlag() bool { return o.value == nil }

// IsHidden returns true if the option is excluded from help output.
func (o *Option) IsHidden() bool { return o.hidden }

// Count returns the number of times the option was seen.
func (o *Option) Count() int { return o.count }

// HasDefault returns true if the option takes an argument and has a default
// value.
func (o *Option) HasDefault() bool {
	return o.value != nil && o.value.hasDefault()
}

// Default returns the text representation of the default value, or an empty
// string if there is none.
func (o *Option) Default() string {
	if o.value == nil {
		return ""
	}
	return o.value.defaultString()
}

// Spelling returns the names of the option as written on a command line,
// for example "-v, --verbose".
func (o *Option) Spelling() string {
	switch {
	case o.short == 0:
		return "--" + o.name
	case utf8.RuneCountInString(o.name) == 1:
		return "-" + string(o.short)
	default:
		return "-" + string(o.short) + ", --" + o.name
	}
}

// record counts one occurrence.
func (o *Option) record() {
	o.count++
}

// assign converts value and makes it the current value. The option must take
// an argument.
func (o *Option) assign(value string) error {
	return o.value.set(value)
}

// clone returns a copy of o which shares no state with it.
func (o *Option) clone() *Option {
	c := *o
	if o.value != nil {
		c.value = o.value.clone()
	}
	return &c
}
