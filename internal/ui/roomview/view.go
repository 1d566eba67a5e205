// Package roomview draws a generated room from above.
package roomview

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/roomforge/internal/placeholders"
	"chosenoffset.com/roomforge/internal/world/prefab"
	"chosenoffset.com/roomforge/internal/world/room"
)

// View renders the placements of a scene. World X runs right and world -Z
// runs down the screen, so the grid reads the same way it is generated.
type View struct {
	Scene   *room.MemoryScene
	Catalog *prefab.Catalog // Optional, supplies prefab colours
	Scale   float64         // Pixels per world unit
	OriginX float64         // Screen position of world (0, 0)
	OriginY float64
	Level   int // Wall storey to draw, -1 for all
}

// New creates a view of scene.
func New(scene *room.MemoryScene, catalog *prefab.Catalog, scale float64) *View {
	return &View{
		Scene:   scene,
		Catalog: catalog,
		Scale:   scale,
		OriginX: scale * 2,
		OriginY: scale * 2,
		Level:   -1,
	}
}

// Draw renders every visible placement, foundation first and walls last.
func (v *View) Draw(screen *ebiten.Image) {
	placements := v.Scene.All()
	sort.SliceStable(placements, func(i, j int) bool {
		return placeholders.DrawOrder(placements[i].Kind) < placeholders.DrawOrder(placements[j].Kind)
	})

	for _, p := range placements {
		if p.Group == room.GroupWalls && v.Level >= 0 && p.Level != v.Level {
			continue
		}
		size := placeholders.Footprint[p.Kind] * v.Scale
		sx, sy := v.ToScreen(p.Position)
		fill := placeholders.ColorOf(p, v.Catalog)
		vector.FillRect(screen, float32(sx-size/2), float32(sy-size/2), float32(size), float32(size), fill, false)
		if placeholders.Outlined(p.Kind) {
			vector.StrokeRect(screen, float32(sx-size/2), float32(sy-size/2), float32(size), float32(size), 1, placeholders.Lighten(fill, 0.6), false)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%d placements  level %s", len(placements), v.levelLabel()))
}

// ToScreen maps a world position to screen pixels.
func (v *View) ToScreen(pos room.Vec3) (float64, float64) {
	return v.OriginX + pos.X*v.Scale, v.OriginY - pos.Z*v.Scale
}

func (v *View) levelLabel() string {
	if v.Level < 0 {
		return "all"
	}
	return fmt.Sprint(v.Level)
}
