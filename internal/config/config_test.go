package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv("TEMPUS_TARGET", "")
	return &Config{Dir: t.TempDir()}
}

func TestLoad_DirOverride(t *testing.T) {
	t.Setenv("TEMPUS_DIR", "/tmp/tempus-test")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tempus-test", cfg.Dir)
	assert.Equal(t, filepath.Join("/tmp/tempus-test", "sessions.csv"), cfg.SessionsPath())
}

func TestSessionsPath_EnvOverride(t *testing.T) {
	cfg := newTestConfig(t)
	t.Setenv("TEMPUS_SESSIONS", "/data/work.csv")
	assert.Equal(t, "/data/work.csv", cfg.SessionsPath())
}

func TestDailyTarget_DefaultWhenUnset(t *testing.T) {
	cfg := newTestConfig(t)
	assert.Equal(t, DefaultDailyTarget, cfg.DailyTarget())
}

func TestDailyTarget_RoundTrip(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.SetDailyTarget(7.5))
	assert.Equal(t, 7.5, cfg.DailyTarget())
}

func TestDailyTarget_FallsBackOnJunk(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, "settings.json"), []byte("not json"), 0o600))
	assert.Equal(t, DefaultDailyTarget, cfg.DailyTarget())

	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, "settings.json"), []byte(`{"daily_target_hours": -3}`), 0o600))
	assert.Equal(t, DefaultDailyTarget, cfg.DailyTarget())
}

func TestDailyTarget_EnvOverride(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.SetDailyTarget(7.5))

	t.Setenv("TEMPUS_TARGET", "6")
	assert.Equal(t, 6.0, cfg.DailyTarget())

	// An unparseable override is ignored, not an error.
	t.Setenv("TEMPUS_TARGET", "lots")
	assert.Equal(t, 7.5, cfg.DailyTarget())
}

func TestSetDailyTarget_RejectsInvalid(t *testing.T) {
	cfg := newTestConfig(t)
	assert.Error(t, cfg.SetDailyTarget(0))
	assert.Error(t, cfg.SetDailyTarget(-1))
}
