package profiler

import (
	"errors"
	"fmt"
	"os"

	"github.com/kmrgirish/tflite-overlay/pb"
)

// Load reads and decodes the BenchmarkProfilingData stored at path. The file
// is closed before Load returns.
func Load(path string) (profile *pb.BenchmarkProfilingData, err error) {
	defer wrapErr(&err, "load "+path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	profile, err = pb.Parse(f)
	if errors.Is(err, pb.ErrRead) {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return profile, nil
}

// Each loads every path in order and hands the decoded profile to fn. It
// stops at the first error, whether from loading or from fn. No file is
// touched when paths is empty.
func Each(paths []string, fn func(path string, profile *pb.BenchmarkProfilingData) error) error {
	if len(paths) == 0 {
		return ErrConfig
	}

	for _, path := range paths {
		profile, err := Load(path)
		if err != nil {
			return err
		}
		if err := fn(path, profile); err != nil {
			return err
		}
	}
	return nil
}
