package profiler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmrgirish/tflite-overlay/pb"
)

func writeProfile(t *testing.T, dir, name string, subgraphs ...string) string {
	t.Helper()

	profile := &pb.BenchmarkProfilingData{RuntimeProfile: &pb.ModelProfilingData{}}
	for _, sg := range subgraphs {
		profile.RuntimeProfile.SubgraphProfiles = append(profile.RuntimeProfile.SubgraphProfiles, &pb.SubGraphProfilingData{
			SubgraphName: sg,
			PerOpProfiles: []*pb.OpProfileData{{
				Name:                  "ADD:0",
				NodeType:              "ADD",
				InferenceMicroseconds: &pb.OpProfilingStat{Avg: 10},
			}},
		})
	}

	data, err := pb.Marshal(profile)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, t.TempDir(), "profile.pb", "main")

	profile, err := Load(path)
	require.NoError(t, err)
	require.Len(t, profile.RuntimeProfile.SubgraphProfiles, 1)
	assert.Equal(t, "main", profile.RuntimeProfile.SubgraphProfiles[0].SubgraphName)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pb")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrDecode)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pb")
	require.NoError(t, os.WriteFile(path, []byte{0x0a, 0xff, 0xff}, 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrIO)
}

func TestEach(t *testing.T) {
	dir := t.TempDir()
	first := writeProfile(t, dir, "first.pb", "a")
	second := writeProfile(t, dir, "second.pb", "b", "c")

	var seen []string
	err := Each([]string{first, second}, func(path string, profile *pb.BenchmarkProfilingData) error {
		for _, sg := range profile.RuntimeProfile.SubgraphProfiles {
			seen = append(seen, filepath.Base(path)+":"+sg.SubgraphName)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first.pb:a", "second.pb:b", "second.pb:c"}, seen)
}

func TestEachNoPaths(t *testing.T) {
	called := false
	err := Each(nil, func(string, *pb.BenchmarkProfilingData) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrConfig)
	assert.False(t, called)
}

func TestEachStopsAtFirstError(t *testing.T) {
	dir := t.TempDir()
	good := writeProfile(t, dir, "good.pb", "main")
	missing := filepath.Join(dir, "missing.pb")

	var calls int
	err := Each([]string{good, missing, good}, func(string, *pb.BenchmarkProfilingData) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, ErrIO)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	calls = 0
	err = Each([]string{good, good}, func(string, *pb.BenchmarkProfilingData) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
