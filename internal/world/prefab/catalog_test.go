package prefab

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogParsing(t *testing.T) {
	jsonData := `{
		"name": "museum",
		"prefabs": [
			{
				"name": "floor_marble",
				"kind": "tile",
				"color": [220, 220, 210, 255],
				"properties": {
					"material": "marble",
					"walkable": true
				}
			},
			{
				"name": "door_oak",
				"kind": "door",
				"properties": {
					"width": 2
				}
			}
		]
	}`

	catalog, err := Parse([]byte(jsonData))
	require.NoError(t, err)

	assert.Equal(t, "museum", catalog.Config.Name)
	assert.Equal(t, []string{"door_oak", "floor_marble"}, catalog.Names())

	floor, ok := catalog.Get("floor_marble")
	require.True(t, ok)
	assert.Equal(t, "tile", floor.Kind)
	clr, ok := floor.RGBA()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{220, 220, 210, 255}, clr)

	door, ok := catalog.Get("door_oak")
	require.True(t, ok)
	_, ok = door.RGBA()
	assert.False(t, ok, "zero alpha means no preview colour")
	assert.Equal(t, 2, door.PropertyInt("width", 0))

	assert.False(t, catalog.Has("missing"))
}

func TestDefinitionProperties(t *testing.T) {
	def := Definition{
		Name: "test_prefab",
		Properties: map[string]interface{}{
			"bool_prop":   true,
			"string_prop": "test_value",
			"int_prop":    42.0, // JSON numbers are float64
		},
	}

	assert.True(t, def.PropertyBool("bool_prop", false))
	assert.Equal(t, "test_value", def.PropertyString("string_prop", ""))
	assert.Equal(t, 42, def.PropertyInt("int_prop", 0))

	assert.True(t, def.PropertyBool("missing", true))
	assert.Equal(t, "default", def.PropertyString("missing", "default"))
	assert.Equal(t, 99, def.PropertyInt("missing", 99))

	// Wrong type falls back to the default.
	assert.Equal(t, 7, def.PropertyInt("string_prop", 7))
}

func TestCatalogValidation(t *testing.T) {
	_, err := Parse([]byte(`{"prefabs": [{"name": "a"}, {"name": "a"}]}`))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte(`{"prefabs": [{"kind": "wall"}]}`))
	assert.ErrorContains(t, err, "no name")

	_, err = Parse([]byte(`{"prefabs": `))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefabs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "tmp", "prefabs": [{"name": "wall_a", "kind": "wall"}]}`), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.True(t, catalog.Has("wall_a"))

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestExampleCatalog(t *testing.T) {
	path := "../../../data/museum/prefabs.json"
	if _, err := os.Stat(path); err != nil {
		t.Skipf("Skipping %s (file not found, this is OK for unit tests)", path)
	}

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Names())
}
