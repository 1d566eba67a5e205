package placeholders

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/roomforge/internal/world/prefab"
	"chosenoffset.com/roomforge/internal/world/room"
)

func smallRoom() []room.Placement {
	spec := room.DefaultSpec()
	spec.GridX = 2
	spec.GridY = 2
	spec.MakeFloor = true
	spec.MakeWall = true
	pools := &room.PrefabPools{
		Tiles:       []string{"tile"},
		Walls:       []string{"wall"},
		FirstWalls:  []string{"first"},
		WallCorners: []string{"corner"},
		WallHalves:  []string{"half"},
	}
	return room.Generate(spec, pools, room.Transform{}, rand.New(rand.NewSource(1)))
}

func TestPlanLayout(t *testing.T) {
	img := Plan(smallRoom(), nil, 10, -1)

	// Positions span X 0..2 and Z -2..0, plus a one unit margin.
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())

	assert.Equal(t, Background, img.RGBAAt(0, 0))
	assert.Equal(t, KindColors[room.KindTile], img.RGBAAt(6, 6), "tile edge outside the first wall")
	assert.Equal(t, KindColors[room.KindFirstWall], img.RGBAAt(10, 10), "walls draw over tiles")
	assert.Equal(t, KindColors[room.KindCorner], img.RGBAAt(30, 10))
	assert.Equal(t, Lighten(KindColors[room.KindCorner], 0.6), img.RGBAAt(28, 8), "corners are outlined")
	assert.Equal(t, KindColors[room.KindHalf], img.RGBAAt(30, 30))
}

func TestPlanUsesCatalogColours(t *testing.T) {
	catalog, err := prefab.Parse([]byte(`{"prefabs": [{"name": "tile", "kind": "tile", "color": [1, 2, 3, 255]}]}`))
	require.NoError(t, err)

	img := Plan(smallRoom(), catalog, 10, -1)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, img.RGBAAt(6, 6))
	assert.Equal(t, KindColors[room.KindCorner], img.RGBAAt(30, 10), "unknown prefabs keep the kind colour")
}

func TestPlanFiltersLevel(t *testing.T) {
	placements := smallRoom()
	img := Plan(placements, nil, 10, 3)
	// No storey 3, so only the tiles are left and the bounds shrink to them.
	assert.Equal(t, image.Rect(0, 0, 30, 30), img.Bounds())

	empty := Plan(nil, nil, 10, -1)
	assert.Equal(t, image.Rect(0, 0, 1, 1), empty.Bounds())
}

func TestSwatches(t *testing.T) {
	catalog, err := prefab.Parse([]byte(`{"prefabs": [
		{"name": "a", "kind": "tile", "color": [10, 20, 30, 255]},
		{"name": "b", "kind": "wall"},
		{"name": "c", "kind": "statue"}
	]}`))
	require.NoError(t, err)

	img := Swatches(catalog, 2)
	assert.Equal(t, image.Rect(0, 0, 2*SwatchSize, 2*SwatchSize), img.Bounds())

	fill := color.RGBA{10, 20, 30, 255}
	assert.Equal(t, fill, img.RGBAAt(16, 16))
	assert.Equal(t, Darken(fill, 0.6), img.RGBAAt(0, 0))
	assert.Equal(t, KindColors[room.KindWall], img.RGBAAt(SwatchSize+16, 16))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, img.RGBAAt(16, SwatchSize+16))

	empty, err := prefab.Parse([]byte(`{"prefabs": []}`))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, SwatchSize, SwatchSize), Swatches(empty, 0).Bounds())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.png")
	require.NoError(t, SavePNG(Plan(smallRoom(), nil, 4, -1), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())

	assert.Error(t, SavePNG(decoded, filepath.Join(t.TempDir(), "missing", "plan.png")))
}

func TestColourHelpers(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}
	assert.Equal(t, color.RGBA{50, 100, 25, 255}, Darken(c, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(c, 1))
	assert.Equal(t, 0, DrawOrder(room.KindFoundation))
	assert.Less(t, DrawOrder(room.KindTile), DrawOrder(room.KindDoor))
}
