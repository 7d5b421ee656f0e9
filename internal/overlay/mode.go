package overlay

import "errors"

// ErrUnsupportedMode is returned by the Builder the first time it has to
// produce a value for a Mode it does not know.
var ErrUnsupportedMode = errors.New("unsupported model explorer json type")

// Mode selects what value is attached to every op in the overlay.
type Mode string

const (
	// PerOpLatency reports the average op latency in milliseconds and adds
	// a heat-map gradient to every subgraph.
	PerOpLatency Mode = "per_op_latency"
	// OpType reports the op type label.
	OpType Mode = "op_type"
)

func (m Mode) String() string { return string(m) }
