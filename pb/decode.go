package pb

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ErrRead is wrapped around failures to read the input in Parse, so callers
// can tell them apart from decoding failures.
var ErrRead = errors.New("read profile")

// Parse reads a binary encoded BenchmarkProfilingData from r.
func Parse(r io.Reader) (*BenchmarkProfilingData, error) {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	profile := &BenchmarkProfilingData{}
	err = Unmarshal(bytes, profile)
	return profile, err
}

// Unmarshal decodes the protobuf wire encoding in b into m, replacing its
// contents. Unknown fields, and known fields sent with a different wire type,
// are skipped as proto does.
func Unmarshal(b []byte, m *BenchmarkProfilingData) error {
	if m == nil {
		return fmt.Errorf("nil message")
	}

	msg := dynamicpb.NewMessage(benchmarkProfilingDataDesc)
	if err := proto.Unmarshal(b, msg); err != nil {
		return err
	}

	*m = BenchmarkProfilingData{
		ModelName:      stringField(msg, "model_name"),
		InitProfile:    modelFromMessage(messageField(msg, "init_profile")),
		RuntimeProfile: modelFromMessage(messageField(msg, "runtime_profile")),
	}
	return nil
}

func modelFromMessage(msg protoreflect.Message) *ModelProfilingData {
	if msg == nil {
		return nil
	}
	m := &ModelProfilingData{}
	eachMessage(msg, "subgraph_profiles", func(sg protoreflect.Message) {
		m.SubgraphProfiles = append(m.SubgraphProfiles, &SubGraphProfilingData{
			SubgraphName:  stringField(sg, "subgraph_name"),
			SubgraphIndex: int32(intField(sg, "subgraph_index")),
			PerOpProfiles: opsFromMessage(sg),
		})
	})
	eachMessage(msg, "delegate_profiles", func(d protoreflect.Message) {
		m.DelegateProfiles = append(m.DelegateProfiles, &DelegateProfilingData{
			DelegateName:  stringField(d, "delegate_name"),
			PerOpProfiles: opsFromMessage(d),
		})
	})
	return m
}

func opsFromMessage(msg protoreflect.Message) []*OpProfileData {
	var ops []*OpProfileData
	eachMessage(msg, "per_op_profiles", func(op protoreflect.Message) {
		ops = append(ops, &OpProfileData{
			NodeType:              stringField(op, "node_type"),
			InferenceMicroseconds: statFromMessage(messageField(op, "inference_microseconds")),
			MemKB:                 statFromMessage(messageField(op, "mem_kb")),
			TimesCalled:           intField(op, "times_called"),
			Name:                  stringField(op, "name"),
			RunOrder:              intField(op, "run_order"),
		})
	})
	return ops
}

func statFromMessage(msg protoreflect.Message) *OpProfilingStat {
	if msg == nil {
		return nil
	}
	return &OpProfilingStat{
		First:    intField(msg, "first"),
		Last:     intField(msg, "last"),
		Avg:      statAverage(msg),
		Stddev:   float32(floatField(msg, "stddev")),
		Variance: float32(floatField(msg, "variance")),
		Min:      intField(msg, "min"),
		Max:      intField(msg, "max"),
		Sum:      intField(msg, "sum"),
		Count:    intField(msg, "count"),
	}
}

// statAverage returns avg as a double, or, when a producer wrote it as an
// int64, the last varint avg found among the unknown fields.
func statAverage(msg protoreflect.Message) float64 {
	fd := msg.Descriptor().Fields().ByName("avg")
	if msg.Has(fd) {
		return msg.Get(fd).Float()
	}

	var avg float64
	b := msg.GetUnknown()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			break
		}
		b = b[n:]
		if num == statAvg && typ == protowire.VarintType {
			if v, m := protowire.ConsumeVarint(b); m > 0 {
				avg = float64(int64(v))
			}
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			break
		}
		b = b[n:]
	}
	return avg
}

func fieldDesc(msg protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	return msg.Descriptor().Fields().ByName(name)
}

func stringField(msg protoreflect.Message, name protoreflect.Name) string {
	return msg.Get(fieldDesc(msg, name)).String()
}

func intField(msg protoreflect.Message, name protoreflect.Name) int64 {
	return msg.Get(fieldDesc(msg, name)).Int()
}

func floatField(msg protoreflect.Message, name protoreflect.Name) float64 {
	return msg.Get(fieldDesc(msg, name)).Float()
}

// messageField returns the embedded message name of msg, or nil if unset.
func messageField(msg protoreflect.Message, name protoreflect.Name) protoreflect.Message {
	fd := fieldDesc(msg, name)
	if !msg.Has(fd) {
		return nil
	}
	return msg.Get(fd).Message()
}

func eachMessage(msg protoreflect.Message, name protoreflect.Name, fn func(protoreflect.Message)) {
	list := msg.Get(fieldDesc(msg, name)).List()
	for i := 0; i < list.Len(); i++ {
		fn(list.Get(i).Message())
	}
}
