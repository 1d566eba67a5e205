package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"room": "museum/gallery.json",
		"seed": 42,
		"log_level": "DEBUG",
		"window": {"width": 640},
		"dialogue": {"reveal_interval_ms": 5}
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "unset nested fields keep defaults")
	assert.Equal(t, "intro", cfg.StartScene)
	assert.Equal(t, 5*time.Millisecond, cfg.RevealInterval())
	assert.Equal(t, filepath.Join("data", "museum", "gallery.json"), cfg.RoomPath())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"seed": "x"}`), 0o644))
	_, err := LoadConfig(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	level := filepath.Join(dir, "level.json")
	require.NoError(t, os.WriteFile(level, []byte(`{"log_level": "loud"}`), 0o644))
	_, err = LoadConfig(level)
	assert.ErrorContains(t, err, "invalid log_level")
}

func TestRoomPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.RoomPath())

	abs, err := filepath.Abs("room.json")
	require.NoError(t, err)
	cfg.Room = abs
	assert.Equal(t, abs, cfg.RoomPath())
}

func TestNewLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown key=1")
}

func TestExampleConfig(t *testing.T) {
	path := "../../" + DefaultPath
	if _, err := os.Stat(path); err != nil {
		t.Skipf("Skipping %s (file not found, this is OK for unit tests)", path)
	}
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DataDir)
}
