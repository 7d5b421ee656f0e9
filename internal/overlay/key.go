package overlay

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrFormat is returned when an op profile name does not end in ":<digits>".
var ErrFormat = errors.New("op profile name is not in the expected format")

var opKeyRe = regexp.MustCompile(`:([0-9]+)$`)

// OpKey returns the node key of an op profile name, the digits following the
// last colon. "CONV_2D:007" yields "007"; the key is opaque, so leading zeros
// are kept.
func OpKey(name string) (string, error) {
	m := opKeyRe.FindStringSubmatch(name)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrFormat, name)
	}
	return m[1], nil
}
