// Package config holds the settings shared by the roomforge commands.
// Settings are loaded from a JSON file; anything the file leaves out keeps
// its default, and a missing file means all defaults.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultPath is where commands look for the config file.
const DefaultPath = "data/roomforge.json"

// Config holds all application settings
type Config struct {
	DataDir    string `json:"data_dir"`    // Root of room collections
	Room       string `json:"room"`        // Room file, relative to DataDir; empty = first one found
	ContentDir string `json:"content_dir"` // Dialogue scene directory; empty = scenes built into the binary
	StartScene string `json:"start_scene"` // Scene played on startup
	Seed       int64  `json:"seed"`        // Layout seed, 0 = time based
	LogLevel   string `json:"log_level"`   // debug, info, warn or error

	Window   WindowConfig   `json:"window"`
	Dialogue DialogueConfig `json:"dialogue"`
}

// WindowConfig sizes the preview window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	Scale  int    `json:"scale"` // Pixels per world unit in the room view
}

// DialogueConfig tunes dialogue presentation
type DialogueConfig struct {
	RevealIntervalMS int `json:"reveal_interval_ms"` // Delay between revealed characters
	HistoryLimit     int `json:"history_limit"`      // Lines kept in the history log
}

// DefaultConfig returns the settings used when no file overrides them
func DefaultConfig() *Config {
	return &Config{
		DataDir:    "data",
		StartScene: "intro",
		LogLevel:   "info",
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Roomforge",
			Scale:  32,
		},
		Dialogue: DialogueConfig{
			RevealIntervalMS: 30,
			HistoryLimit:     200,
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := config.Level(); err != nil {
		return nil, err
	}
	return config, nil
}

// RoomPath resolves Room against DataDir. It returns "" when no room is set.
func (c *Config) RoomPath() string {
	if c.Room == "" || filepath.IsAbs(c.Room) {
		return c.Room
	}
	return filepath.Join(c.DataDir, c.Room)
}

// RevealInterval is the typewriter delay as a duration.
func (c *Config) RevealInterval() time.Duration {
	return time.Duration(c.Dialogue.RevealIntervalMS) * time.Millisecond
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
