package overlay

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/sirupsen/logrus"
)

// latencySummary describes the spread of op latencies in one subgraph, in
// milliseconds.
type latencySummary struct {
	Ops    int
	Min    float64
	Median float64
	Max    float64
	Total  float64
}

func summarizeLatency(results map[string]Entry) (latencySummary, bool) {
	xs := make([]float64, 0, len(results))
	for _, e := range results {
		if v, ok := e.Value.(float64); ok {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return latencySummary{}, false
	}

	sample := stats.Sample{Xs: xs}
	lo, hi := sample.Bounds()
	return latencySummary{
		Ops:    len(xs),
		Min:    lo,
		Median: sample.Quantile(0.5),
		Max:    hi,
		Total:  sample.Sum(),
	}, true
}

func (b *Builder) logLatencySummary(subgraph string, results map[string]Entry) {
	s, ok := summarizeLatency(results)
	if !ok {
		return
	}
	b.log.WithFields(logrus.Fields{
		"subgraph":  subgraph,
		"ops":       s.Ops,
		"min_ms":    s.Min,
		"median_ms": s.Median,
		"max_ms":    s.Max,
		"total_ms":  s.Total,
	}).Debug("per op latency")
}
