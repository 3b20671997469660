package opts

// std is the registry used by the package-level functions.
var std = New()

// Default returns the process-wide registry used by the package-level
// functions Parse, Has, Count and Operands. Use it with Get:
//
//	n, err := opts.Get[int](opts.Default(), "jobs")
func Default() *Registry {
	return std
}

// Init replaces the process-wide registry with a new one holding a copy of
// the options.
func Init(options ...Option) {
	std = New(options...)
}

// Parse parses arguments using the process-wide registry.
func Parse(args []string, ignoreUnknown bool) error {
	return std.Parse(args, ignoreUnknown)
}

// Has calls Has on the process-wide registry.
func Has(name string) bool {
	return std.Has(name)
}

// Count calls Count on the process-wide registry.
func Count(name string) int {
	return std.Count(name)
}

// Operands calls Operands on the process-wide registry.
func Operands() []string {
	return std.Operands()
}
