package overlay

import "slices"

// Overlay is the Model Explorer node data document, keyed by subgraph name.
type Overlay map[string]*Subgraph

// Subgraph holds the node values of one subgraph.
type Subgraph struct {
	Results  map[string]Entry `json:"results"`
	Gradient []GradientStop   `json:"gradient,omitempty"`
}

// Entry is the value attached to one node. Value is a float64 latency in
// milliseconds or a string op type, depending on the Mode.
type Entry struct {
	Value any `json:"value"`
}

// GradientStop is one color stop of the visualizer heat-map.
type GradientStop struct {
	Stop    float64 `json:"stop"`
	BgColor string  `json:"bgColor"`
}

var latencyGradient = []GradientStop{
	{Stop: 0, BgColor: "green"},
	{Stop: 0.33, BgColor: "yellow"},
	{Stop: 0.67, BgColor: "orange"},
	{Stop: 1, BgColor: "red"},
}

// LatencyGradient returns the color stops attached to subgraphs in
// PerOpLatency mode.
func LatencyGradient() []GradientStop {
	return slices.Clone(latencyGradient)
}
