package pb

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Field numbers of tflite.profiling messages.
const (
	benchmarkModelName      = 1
	benchmarkInitProfile    = 2
	benchmarkRuntimeProfile = 3

	modelSubgraphProfiles = 1
	modelDelegateProfiles = 2

	subgraphName          = 1
	subgraphIndex         = 2
	subgraphPerOpProfiles = 3

	delegateName          = 1
	delegatePerOpProfiles = 2

	opNodeType              = 1
	opInferenceMicroseconds = 2
	opMemKB                 = 3
	opTimesCalled           = 4
	opName                  = 5
	opRunOrder              = 6

	statFirst    = 1
	statLast     = 2
	statAvg      = 3
	statStddev   = 4
	statVariance = 5
	statMin      = 6
	statMax      = 7
	statSum      = 8
	statCount    = 9
)

const protoPackage = "tflite.profiling"

// profilingInfo describes profiling_info.proto. The avg of OpProfilingStat is
// declared as a double; integer encoded averages are recovered from the
// unknown fields (see statAverage).
var profilingInfo = func() protoreflect.FileDescriptor {
	var (
		str    = descriptorpb.FieldDescriptorProto_TYPE_STRING
		i32    = descriptorpb.FieldDescriptorProto_TYPE_INT32
		i64    = descriptorpb.FieldDescriptorProto_TYPE_INT64
		f32    = descriptorpb.FieldDescriptorProto_TYPE_FLOAT
		f64    = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
		msg    = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
		single = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
		many   = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	)

	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("tensorflow/lite/profiling/proto/profiling_info.proto"),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			message("BenchmarkProfilingData",
				field("model_name", benchmarkModelName, single, str, ""),
				field("init_profile", benchmarkInitProfile, single, msg, "ModelProfilingData"),
				field("runtime_profile", benchmarkRuntimeProfile, single, msg, "ModelProfilingData"),
			),
			message("ModelProfilingData",
				field("subgraph_profiles", modelSubgraphProfiles, many, msg, "SubGraphProfilingData"),
				field("delegate_profiles", modelDelegateProfiles, many, msg, "DelegateProfilingData"),
			),
			message("SubGraphProfilingData",
				field("subgraph_name", subgraphName, single, str, ""),
				field("subgraph_index", subgraphIndex, single, i32, ""),
				field("per_op_profiles", subgraphPerOpProfiles, many, msg, "OpProfileData"),
			),
			message("DelegateProfilingData",
				field("delegate_name", delegateName, single, str, ""),
				field("per_op_profiles", delegatePerOpProfiles, many, msg, "OpProfileData"),
			),
			message("OpProfilingStat",
				field("first", statFirst, single, i64, ""),
				field("last", statLast, single, i64, ""),
				field("avg", statAvg, single, f64, ""),
				field("stddev", statStddev, single, f32, ""),
				field("variance", statVariance, single, f32, ""),
				field("min", statMin, single, i64, ""),
				field("max", statMax, single, i64, ""),
				field("sum", statSum, single, i64, ""),
				field("count", statCount, single, i64, ""),
			),
			message("OpProfileData",
				field("node_type", opNodeType, single, str, ""),
				field("inference_microseconds", opInferenceMicroseconds, single, msg, "OpProfilingStat"),
				field("mem_kb", opMemKB, single, msg, "OpProfilingStat"),
				field("times_called", opTimesCalled, single, i64, ""),
				field("name", opName, single, str, ""),
				field("run_order", opRunOrder, single, i64, ""),
			),
		},
	}

	file, err := protodesc.NewFile(fd, nil)
	if err != nil {
		panic("pb: invalid profiling_info descriptor: " + err.Error())
	}
	return file
}()

var benchmarkProfilingDataDesc = profilingInfo.Messages().ByName("BenchmarkProfilingData")

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func field(name string, num int32, label descriptorpb.FieldDescriptorProto_Label, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  label.Enum(),
		Type:   typ.Enum(),
	}
	if typeName != "" {
		f.TypeName = proto.String("." + protoPackage + "." + typeName)
	}
	return f
}
