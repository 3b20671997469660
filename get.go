package opts

import "fmt"

// Get returns the value of the named option: the last value found by Parse,
// else the default. T must be the type the option was declared with. The
// error is an *Error of kind UnknownOption if the option is not declared,
// OptionNotSpecified if it has no value (which is always the case for a
// flag), or TypeMismatch if T is not the declared type.
func Get[T Scalar](r *Registry, name string) (T, error) {
	var zero T
	o := r.Lookup(name)
	if o == nil {
		return zero, newError(UnknownOption, name, nil)
	}
	if o.IsFlag() {
		return zero, newError(OptionNotSpecified, name, nil)
	}
	h, ok := o.value.(*typed[T])
	if !ok {
		return zero, newError(TypeMismatch, name,
			fmt.Errorf("declared as %s, requested as %s", o.value.typeName(), typeName[T]()))
	}
	if !h.valid {
		return zero, newError(OptionNotSpecified, name, nil)
	}
	return h.value, nil
}

// GetOr returns the value of the named option like Get, or fallback if Get
// fails.
func GetOr[T Scalar](r *Registry, name string, fallback T) T {
	if v, err := Get[T](r, name); err == nil {
		return v
	}
	return fallback
}
