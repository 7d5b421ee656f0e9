package overlay

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kmrgirish/tflite-overlay/pb"
)

// Builder accumulates the overlay of one or more benchmark profiles. A
// subgraph seen again in a later profile has its results replaced, not
// merged.
type Builder struct {
	mode    Mode
	log     logrus.FieldLogger
	overlay Overlay
}

// NewBuilder returns a Builder producing values for mode. The mode is not
// checked here; an unknown mode fails on the first op.
func NewBuilder(mode Mode, log logrus.FieldLogger) *Builder {
	return &Builder{
		mode:    mode,
		log:     log,
		overlay: make(Overlay),
	}
}

// Add folds the runtime subgraph profiles of profile into the overlay. On
// error the overlay must not be written; the subgraph that failed is left
// untouched but earlier ones may already be updated.
func (b *Builder) Add(profile *pb.BenchmarkProfilingData) error {
	if profile == nil || profile.RuntimeProfile == nil {
		return nil
	}
	for _, sg := range profile.RuntimeProfile.SubgraphProfiles {
		if err := b.addSubgraph(sg); err != nil {
			return fmt.Errorf("subgraph %q: %w", sg.SubgraphName, err)
		}
	}
	return nil
}

// Overlay returns the accumulated overlay. It is shared with the Builder.
func (b *Builder) Overlay() Overlay {
	return b.overlay
}

func (b *Builder) addSubgraph(sg *pb.SubGraphProfilingData) error {
	results := make(map[string]Entry, len(sg.PerOpProfiles))
	for _, op := range sg.PerOpProfiles {
		key, value, err := b.entry(op)
		if err != nil {
			return err
		}
		results[key] = Entry{Value: value}
	}

	s, ok := b.overlay[sg.SubgraphName]
	if !ok {
		s = &Subgraph{}
		b.overlay[sg.SubgraphName] = s
	}
	s.Results = results

	if b.mode == PerOpLatency {
		s.Gradient = LatencyGradient()
		b.logLatencySummary(sg.SubgraphName, results)
	}
	return nil
}

func (b *Builder) entry(op *pb.OpProfileData) (string, any, error) {
	key, err := OpKey(op.Name)
	if err != nil {
		return "", nil, err
	}

	switch b.mode {
	case PerOpLatency:
		return key, op.AvgInferenceMicroseconds() / 1000.0, nil
	case OpType:
		return key, op.NodeType, nil
	}
	return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, b.mode)
}
