package pb

// BenchmarkProfilingData is the top level record written by the TFLite
// benchmark tool when op profiling output is requested.
type BenchmarkProfilingData struct {
	ModelName      string
	InitProfile    *ModelProfilingData
	RuntimeProfile *ModelProfilingData
}

// ModelProfilingData holds the per subgraph and per delegate op profiles of
// one profiling phase (init or runtime).
type ModelProfilingData struct {
	SubgraphProfiles []*SubGraphProfilingData
	DelegateProfiles []*DelegateProfilingData
}

// SubGraphProfilingData holds the op profiles of one subgraph.
type SubGraphProfilingData struct {
	SubgraphName  string
	SubgraphIndex int32
	PerOpProfiles []*OpProfileData
}

// DelegateProfilingData holds the op profiles reported by one delegate.
type DelegateProfilingData struct {
	DelegateName  string
	PerOpProfiles []*OpProfileData
}

// OpProfileData is the measured statistics of a single op. Name is the
// display name, usually "<op>:<node index>".
type OpProfileData struct {
	NodeType              string
	InferenceMicroseconds *OpProfilingStat
	MemKB                 *OpProfilingStat
	TimesCalled           int64
	Name                  string
	RunOrder              int64
}

// OpProfilingStat summarizes repeated measurements of one op, in the unit of
// the field holding it.
type OpProfilingStat struct {
	First    int64
	Last     int64
	Avg      float64
	Stddev   float32
	Variance float32
	Min      int64
	Max      int64
	Sum      int64
	Count    int64
}

// AvgInferenceMicroseconds returns the average inference time of the op in
// microseconds, or 0 if the op carries no timing stats.
func (o *OpProfileData) AvgInferenceMicroseconds() float64 {
	if o == nil || o.InferenceMicroseconds == nil {
		return 0
	}
	return o.InferenceMicroseconds.Avg
}
