package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"

	"github.com/kmrgirish/tflite-overlay/internal/overlay"
	"github.com/kmrgirish/tflite-overlay/pb"
	"github.com/kmrgirish/tflite-overlay/profiler"
)

type Cmd struct {
	ProfilingProtoPaths   pathList     `arg:"--profiling_proto_paths" help:"comma separated list of paths to the profiling protos, more than one is only needed if the model has multiple signatures"`
	OutputPath            string       `arg:"--output_path" help:"path to the output node overlay json, logged when empty"`
	ModelExplorerJSONType overlay.Mode `arg:"--model_explorer_json_type" help:"type of model explorer json to generate: per_op_latency or op_type" default:"per_op_latency"`
	Verbose               bool         `arg:"-v,--verbose" help:"enable debug logging"`
}

func (Cmd) Description() string {
	return "Converts TFLite benchmark profiling protos to a Model Explorer node overlay."
}

// pathList is a comma separated list of paths. Empty elements are dropped.
type pathList []string

func (l *pathList) UnmarshalText(b []byte) error {
	*l = nil
	for _, p := range strings.Split(string(b), ",") {
		if p = strings.TrimSpace(p); p != "" {
			*l = append(*l, p)
		}
	}
	return nil
}

func main() {
	var cmd Cmd
	arg.MustParse(&cmd)

	log := newLogger(cmd.Verbose)
	if err := run(cmd, log); err != nil {
		log.Fatal(err)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableQuote: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func run(cmd Cmd, log logrus.FieldLogger) error {
	builder := overlay.NewBuilder(cmd.ModelExplorerJSONType, log)

	err := profiler.Each(cmd.ProfilingProtoPaths, func(path string, profile *pb.BenchmarkProfilingData) error {
		log.WithFields(logrus.Fields{
			"path":  path,
			"model": profile.ModelName,
		}).Debug("loaded profiling proto")

		if err := builder.Add(profile); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		return overlay.LogJSON(log, builder.Overlay())
	}
	if err := overlay.WriteFile(cmd.OutputPath, builder.Overlay()); err != nil {
		return fmt.Errorf("write overlay: %w", err)
	}
	log.WithField("path", cmd.OutputPath).Debug("wrote node overlay")
	return nil
}
