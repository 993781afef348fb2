package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "end", cfg.Sentinel)
	assert.Empty(t, cfg.HistoryDB)
	assert.Empty(t, cfg.MetricsFile)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(`
sentinel: stop
history_db: /tmp/history.db
metrics_file: /tmp/wordtally.prom
verbose: true
`))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Sentinel:    "stop",
		HistoryDB:   "/tmp/history.db",
		MetricsFile: "/tmp/wordtally.prom",
		Verbose:     true,
	}, cfg)
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("verbose: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "end", cfg.Sentinel)
	assert.True(t, cfg.Verbose)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("sentinal: stop\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_InvalidSentinel(t *testing.T) {
	for _, sentinel := range []string{`""`, "end2", `"two words"`} {
		t.Run(sentinel, func(t *testing.T) {
			_, err := Parse([]byte("sentinel: " + sentinel + "\n"))
			require.Error(t, err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordtally.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sentinel: quit\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "quit", cfg.Sentinel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
