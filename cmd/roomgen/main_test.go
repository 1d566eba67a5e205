package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoom(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "box.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "box",
		"spec": {"grid_x": 2, "grid_y": 2, "make_floor": true, "make_wall": true},
		"pools": {"tiles": ["t"], "walls": ["w"], "first_walls": ["f"], "wall_corners": ["c"], "wall_halves": ["h"]}
	}`), 0o644))
	return path
}

func TestRunTable(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{configPath: filepath.Join(t.TempDir(), "none.json"), roomPath: writeRoom(t), seed: 5})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Room box, seed 5, 2x2 cells, 1 storeys")
	assert.Contains(t, text, "Tile_1_1")
	assert.Contains(t, text, "Corner_0")
	assert.Contains(t, text, "9 placements: tile=4 first_wall=1 wall=2 corner=1 half=1")
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, options{configPath: filepath.Join(t.TempDir(), "none.json"), roomPath: writeRoom(t), seed: 5, asJSON: true}))

	var doc struct {
		Room       string `json:"room"`
		Seed       int64  `json:"seed"`
		Placements []struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"placements"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "box", doc.Room)
	assert.Equal(t, int64(5), doc.Seed)
	require.Len(t, doc.Placements, 9)
	assert.Equal(t, "tile", doc.Placements[0].Kind)
}

func TestRunFallsBackToFirstRoom(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(filepath.Join(data, "museum"), 0o755))
	room, err := os.ReadFile(writeRoom(t))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(data, "museum", "box.json"), room, 0o644))

	configPath := filepath.Join(dir, "roomforge.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"data_dir": "`+filepath.ToSlash(data)+`"}`), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(&out, options{configPath: configPath, seed: 5}))
	assert.Contains(t, out.String(), "Room box, seed 5")
}

func TestRunNeedsRoom(t *testing.T) {
	var out bytes.Buffer
	configPath := filepath.Join(t.TempDir(), "roomforge.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"data_dir": "`+filepath.ToSlash(t.TempDir())+`"}`), 0o644))

	err := run(&out, options{configPath: configPath, seed: 1})
	assert.ErrorContains(t, err, "no room given")
	assert.ErrorContains(t, err, "no room files found")
}

func TestRunWritesImages(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		configPath: filepath.Join(dir, "none.json"),
		roomPath:   writeRoom(t),
		seed:       5,
		pngPath:    filepath.Join(dir, "plan.png"),
		pngScale:   8,
	}
	var out bytes.Buffer
	require.NoError(t, run(&out, opts))

	info, err := os.Stat(opts.pngPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// The test room has no catalog to draw swatches from.
	opts.swatchPath = filepath.Join(dir, "swatches.png")
	assert.ErrorContains(t, run(&out, opts), "names no prefab catalog")
}
