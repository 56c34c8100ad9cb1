package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silentvoices/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.Storage.DatabasePath)
	assert.Equal(t, 40, cfg.Risk.MoodCravingPoints)
	assert.Equal(t, 70, cfg.Risk.HighCutoff)
	assert.Equal(t, 0.5, cfg.Risk.RoutineCompletionCutoff)
	assert.Equal(t, 5*time.Second, cfg.NotifyTTL())
	assert.Equal(t, 30*time.Second, cfg.AdvisoryTimeout())
	assert.Equal(t, "gemini-3-flash-preview", cfg.Advisory.Models.Flash)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Risk, cfg.Risk)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  database_path: /tmp/voices-test.db
risk:
  high_cutoff: 80
notify:
  ttl: 10s
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/voices-test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 80, cfg.Risk.HighCutoff)
	assert.Equal(t, 40, cfg.Risk.MoodCravingPoints, "unset fields keep defaults")
	assert.Equal(t, 10*time.Second, cfg.NotifyTTL())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SILENTVOICES_API_KEY", "key-from-env")
	t.Setenv("SILENTVOICES_DB", "/tmp/env.db")
	t.Setenv("SILENTVOICES_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.Advisory.APIKey)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestGeminiKeyFallback(t *testing.T) {
	t.Setenv("SILENTVOICES_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.Advisory.APIKey)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.DatabasePath = "/tmp/rt.db"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/rt.db", loaded.Storage.DatabasePath)
}

// Guard against accidental coupling: config must not need a profile to
// make sense of risk constants.
func TestRiskConfigStandsAlone(t *testing.T) {
	cfg := DefaultConfig()
	level := cfg.Risk.Assess(nil, nil, time.Now())
	assert.Equal(t, types.RiskLow, level)
}
