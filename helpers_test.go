package opts

import (
	"fmt"
	"testing"
)

// panicHandler triggers a testing error if panic message differs from expected
func panicHandler(expected string, t *testing.T) {
	t.Helper()
	err := recover()
	if err == nil {
		if len(expected) > 0 {
			t.Errorf(`(recovery) no error caught, expected: "%s"`, expected)
		}
	} else {
		if e, ok := err.(error); !ok {
			t.Errorf("(recovery) unexpected error: %v", err)
		} else {
			if e.Error() != expected {
				t.Errorf(`(recovery) unexpected error message: "%s" expected: "%s"`, err, expected)
			}
		}
	}
}

// matchErrorMessage returns nil if the error message matches, else an error.
func matchErrorMessage(err error, expected string) error {
	if err == nil {
		return fmt.Errorf(`expected error message missing: "%s"`, expected)
	} else if err.Error() != expected {
		return fmt.Errorf(`unexpected error message: "%s", expected: "%s"`, err.Error(), expected)
	}
	return nil
}

// matchResult returns nil if error is nil and test returns nil, else an error.
func matchResult(err error, test func() error) error {
	if err != nil {
		return fmt.Errorf(`unexpected error: "%s"`, err.Error())
	}
	if e := test(); e != nil {
		return e
	}
	return nil
}

// testRegistry returns a registry with flags -a, -b, --verbose/-v, options
// taking arguments -c, --out, --jobs/-j (default 42) and --ratio.
func testRegistry() *Registry {
	return New(
		Flag("a", "flag a"),
		Flag("b", "flag b"),
		Flag("verbose,v", "verbose flag"),
		Var[string]("c", "option c"),
		Var[Path]("out", "output file"),
		VarDefault("jobs,j", 42, "number of jobs"),
		Var[float64]("ratio", "a ratio"),
	)
}
