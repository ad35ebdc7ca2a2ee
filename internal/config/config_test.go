package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fixtures/internal/tensor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultFixture, cfg.Fixture)
	assert.Nil(t, cfg.Dim)
	assert.Equal(t, tensor.Shape{1, 2, 3, 3}, cfg.TensorShape())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
dim: -1
seed: 42
shape: [2, 5]
log_format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Dim)
	assert.Equal(t, -1, *cfg.Dim)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, tensor.Shape{2, 5}, cfg.TensorShape())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DefaultFixture, cfg.Fixture, "unset keys keep defaults")
	assert.Equal(t, 1e-5, cfg.Tolerance)
}

func TestLoadDimZero(t *testing.T) {
	cfg, err := Load(writeConfig(t, "dim: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Dim)
	assert.Equal(t, 0, *cfg.Dim)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "dim: [1\n"},
		{"empty fixture", "fixture: \"\"\n"},
		{"bad shape", "shape: [1, 0]\n"},
		{"bad tolerance", "tolerance: -1\n"},
		{"bad level", "log_level: chatty\n"},
		{"bad format", "log_format: pretty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
