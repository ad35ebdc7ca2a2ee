package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fixtures/internal/fixture"
	"github.com/born-ml/fixtures/internal/serialization"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(context.Background(), append([]string{"fixture"}, args...))
	return out.String(), errOut.String(), err
}

func TestRunDefault(t *testing.T) {
	out, logs, err := runApp(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "LogSoftmax: shape=[1 2 3 3] dim=1 slices=9")
	assert.Contains(t, logs, "fixture verified")
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dim: 0\nshape: [4, 6]\nlog_format: json\n"), 0o600))

	out, logs, err := runApp(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "shape=[4 6] dim=0 slices=6")
	assert.Contains(t, logs, `"msg":"fixture verified"`)

	out, _, err = runApp(t, "run", "--config", path, "--dim=-1")
	require.NoError(t, err)
	assert.Contains(t, out, "dim=1 slices=4")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown fixture", []string{"run", "--fixture", "Conv2d"}},
		{"dim out of range", []string{"run", "--dim", "4"}},
		{"bad shape", []string{"run", "--shape", "1,x"}},
		{"overflowing shape", []string{"run", "--shape", "4611686018427387904,4"}},
		{"oversized shape", []string{"run", "--shape", "1000000000,1000000000"}},
		{"bad log format", []string{"run", "--log-format", "pretty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, _, err = runApp(t, tt.args...) })
			assert.Error(t, err)
		})
	}
}

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")
	_, _, err := runApp(t, "dump", "--seed", "11", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec dumpRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	_, err = uuid.Parse(rec.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "LogSoftmax", rec.Fixture)
	assert.Equal(t, 1, rec.Dim)
	assert.Equal(t, int64(11), rec.Seed)
	assert.Equal(t, []int{1, 2, 3, 3}, rec.Shape)
	assert.Len(t, rec.Input, 18)
	assert.Len(t, rec.Output, 18)

	// Same seed, same dummy.
	out, _, err := runApp(t, "dump", "--seed", "11")
	require.NoError(t, err)
	var again dumpRecord
	require.NoError(t, json.Unmarshal([]byte(out), &again))
	assert.Equal(t, rec.Input, again.Input)
	assert.NotEqual(t, rec.RunID, again.RunID)
}

func TestDumpSafeTensors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.safetensors")
	_, _, err := runApp(t, "dump", "--format", "safetensors", "--out", path)
	require.NoError(t, err)

	tensors, meta, err := serialization.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "LogSoftmax", meta["fixture"])
	assert.Equal(t, "1", meta["dim"])

	input, output := tensors["input"], tensors["output"]
	require.NotNil(t, input)
	require.NotNil(t, output)
	report, err := fixture.Verify(input, output, 1, fixture.DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, 9, report.Slices)

	_, _, err = runApp(t, "dump", "--format", "safetensors")
	assert.Error(t, err, "safetensors needs --out")

	_, _, err = runApp(t, "dump", "--format", "xml")
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	out, _, err := runApp(t, "graph", "--dim=-1")
	require.NoError(t, err)

	var g struct {
		Opset int64 `json:"opset"`
		Nodes []struct {
			OpType     string `json:"op_type"`
			Attributes []struct {
				Name string `json:"name"`
				I    int64  `json:"i"`
			} `json:"attributes"`
		} `json:"nodes"`
		Inputs []struct {
			ElemType string `json:"elem_type"`
		} `json:"inputs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.Equal(t, int64(13), g.Opset)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "LogSoftmax", g.Nodes[0].OpType)
	assert.Equal(t, "axis", g.Nodes[0].Attributes[0].Name)
	assert.Equal(t, int64(3), g.Nodes[0].Attributes[0].I)
	assert.Equal(t, "float32", g.Inputs[0].ElemType)
}

func TestListAndVersion(t *testing.T) {
	out, _, err := runApp(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "LogSoftmax\n", out)

	out, _, err = runApp(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestParseShape(t *testing.T) {
	shape, err := parseShape(" 1, 2,3 ,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 3}, shape)

	shape, err = parseShape("")
	require.NoError(t, err)
	assert.Empty(t, shape)

	_, err = parseShape("1,,2")
	assert.Error(t, err)
}
