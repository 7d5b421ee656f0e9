package profiler

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is returned when the run is configured without any profile
	// paths.
	ErrConfig = errors.New("at least one profiling proto path should be provided")

	// ErrIO is returned when a profile cannot be opened or read.
	ErrIO = errors.New("cannot read profiling proto")

	// ErrDecode is returned when a profile is not a valid
	// BenchmarkProfilingData record.
	ErrDecode = errors.New("cannot decode profiling proto")
)

// wrapErr wraps the error with name if it is not nil.
func wrapErr(err *error, name string) {
	if *err != nil {
		*err = fmt.Errorf("%s: %w", name, *err)
	}
}
