package overlay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOverlay() Overlay {
	return Overlay{
		"sg0": {
			Results:  map[string]Entry{"1": {Value: 2.0}, "2": {Value: 0.5}},
			Gradient: LatencyGradient(),
		},
		"sg1": {
			Results: map[string]Entry{"007": {Value: 0.001}},
		},
	}
}

const sampleJSON = `{
  "sg0": {
    "results": {"1": {"value": 2.0}, "2": {"value": 0.5}},
    "gradient": [
      {"stop": 0, "bgColor": "green"},
      {"stop": 0.33, "bgColor": "yellow"},
      {"stop": 0.67, "bgColor": "orange"},
      {"stop": 1, "bgColor": "red"}
    ]
  },
  "sg1": {"results": {"007": {"value": 0.001}}}
}`

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.json")
	require.NoError(t, WriteFile(path, sampleOverlay()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, sampleJSON, string(data))
	assert.NotContains(t, string(data), "\n")

	var got Overlay
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleOverlay(), got)
}

func TestWriteFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644))

	require.NoError(t, WriteFile(path, Overlay{}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteFileDeterministic(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")
	require.NoError(t, WriteFile(a, sampleOverlay()))
	require.NoError(t, WriteFile(b, sampleOverlay()))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "overlay.json"), sampleOverlay())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogJSON(t *testing.T) {
	log, hook := test.NewNullLogger()
	require.NoError(t, LogJSON(log, sampleOverlay()))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.JSONEq(t, sampleJSON, entry.Message)
	assert.True(t, strings.HasPrefix(entry.Message, "{\n  \"sg0\": {\n    \"results\""), entry.Message)
}
