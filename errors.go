package opts

import "fmt"

// ErrorKind classifies errors reported while parsing arguments or querying
// option values. An ErrorKind is itself an error, so that
//
//	errors.Is(err, opts.UnknownOption)
//
// tells whether err, or any error it wraps, is of that kind.
type ErrorKind uint8

// Error kinds.
const (
	UnknownOption ErrorKind = iota + 1
	OptionDoesNotAcceptArgument
	MissingArgument
	InvalidValue
	OptionNotSpecified
	TypeMismatch
)

var kindMessage = map[ErrorKind]string{
	UnknownOption:               "unknown option",
	OptionDoesNotAcceptArgument: "option does not accept argument",
	MissingArgument:             "missing argument for option",
	InvalidValue:                "invalid argument for option",
	OptionNotSpecified:          "option was not specified",
	TypeMismatch:                "option type mismatch",
}

func (k ErrorKind) String() string {
	if s, ok := kindMessage[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the error returned by Parse and Get. Option is the option as
// spelled by the user (like "--out" or "-o") or the name passed to Get. Err
// is the underlying cause, if any, for example the error of a failed
// numeric conversion.
type Error struct {
	Kind   ErrorKind
	Option string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Option, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Option)
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, option string, cause error) *Error {
	return &Error{Kind: kind, Option: option, Err: cause}
}
