package pb

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Marshal returns the protobuf wire encoding of m. Zero valued scalars and
// nil messages are omitted; an empty but non-nil message is kept. The op
// average is written as a double.
func Marshal(m *BenchmarkProfilingData) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	msg := dynamicpb.NewMessage(benchmarkProfilingDataDesc)
	setString(msg, "model_name", m.ModelName)
	setMessage(msg, "init_profile", m.InitProfile.fill)
	setMessage(msg, "runtime_profile", m.RuntimeProfile.fill)
	return proto.MarshalOptions{Deterministic: true}.Marshal(msg)
}

func (m *ModelProfilingData) fill(msg protoreflect.Message) bool {
	if m == nil {
		return false
	}
	for _, sg := range m.SubgraphProfiles {
		appendMessage(msg, "subgraph_profiles", sg.fill)
	}
	for _, d := range m.DelegateProfiles {
		appendMessage(msg, "delegate_profiles", d.fill)
	}
	return true
}

func (m *SubGraphProfilingData) fill(msg protoreflect.Message) bool {
	if m == nil {
		return false
	}
	setString(msg, "subgraph_name", m.SubgraphName)
	if m.SubgraphIndex != 0 {
		msg.Set(fieldDesc(msg, "subgraph_index"), protoreflect.ValueOfInt32(m.SubgraphIndex))
	}
	for _, op := range m.PerOpProfiles {
		appendMessage(msg, "per_op_profiles", op.fill)
	}
	return true
}

func (m *DelegateProfilingData) fill(msg protoreflect.Message) bool {
	if m == nil {
		return false
	}
	setString(msg, "delegate_name", m.DelegateName)
	for _, op := range m.PerOpProfiles {
		appendMessage(msg, "per_op_profiles", op.fill)
	}
	return true
}

func (m *OpProfileData) fill(msg protoreflect.Message) bool {
	if m == nil {
		return false
	}
	setString(msg, "node_type", m.NodeType)
	setMessage(msg, "inference_microseconds", m.InferenceMicroseconds.fill)
	setMessage(msg, "mem_kb", m.MemKB.fill)
	setInt(msg, "times_called", m.TimesCalled)
	setString(msg, "name", m.Name)
	setInt(msg, "run_order", m.RunOrder)
	return true
}

func (m *OpProfilingStat) fill(msg protoreflect.Message) bool {
	if m == nil {
		return false
	}
	setInt(msg, "first", m.First)
	setInt(msg, "last", m.Last)
	if m.Avg != 0 {
		msg.Set(fieldDesc(msg, "avg"), protoreflect.ValueOfFloat64(m.Avg))
	}
	setFloat(msg, "stddev", m.Stddev)
	setFloat(msg, "variance", m.Variance)
	setInt(msg, "min", m.Min)
	setInt(msg, "max", m.Max)
	setInt(msg, "sum", m.Sum)
	setInt(msg, "count", m.Count)
	return true
}

func setString(msg protoreflect.Message, name protoreflect.Name, v string) {
	if v != "" {
		msg.Set(fieldDesc(msg, name), protoreflect.ValueOfString(v))
	}
}

func setInt(msg protoreflect.Message, name protoreflect.Name, v int64) {
	if v != 0 {
		msg.Set(fieldDesc(msg, name), protoreflect.ValueOfInt64(v))
	}
}

func setFloat(msg protoreflect.Message, name protoreflect.Name, v float32) {
	if v != 0 {
		msg.Set(fieldDesc(msg, name), protoreflect.ValueOfFloat32(v))
	}
}

// setMessage sets the embedded message name when fill reports it present.
func setMessage(msg protoreflect.Message, name protoreflect.Name, fill func(protoreflect.Message) bool) {
	fd := fieldDesc(msg, name)
	child := dynamicpb.NewMessage(fd.Message())
	if fill(child) {
		msg.Set(fd, protoreflect.ValueOfMessage(child))
	}
}

// appendMessage appends to the repeated message field name. Nil elements are
// dropped.
func appendMessage(msg protoreflect.Message, name protoreflect.Name, fill func(protoreflect.Message) bool) {
	fd := fieldDesc(msg, name)
	child := dynamicpb.NewMessage(fd.Message())
	if fill(child) {
		msg.Mutable(fd).List().Append(protoreflect.ValueOfMessage(child))
	}
}
