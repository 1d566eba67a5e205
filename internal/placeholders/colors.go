// Package placeholders draws stand-in images for generated rooms: flat
// coloured blocks per placement, and swatch sheets for prefab catalogs.
package placeholders

import (
	"image/color"

	"chosenoffset.com/roomforge/internal/world/prefab"
	"chosenoffset.com/roomforge/internal/world/room"
)

// KindColors colours placements whose prefab has no preview colour
var KindColors = map[room.Kind]color.RGBA{
	room.KindTile:       {180, 170, 150, 255}, // Sandstone
	room.KindFirstWall:  {90, 140, 90, 255},   // Green marks the ring start
	room.KindWall:       {110, 110, 130, 255}, // Slate
	room.KindCorner:     {150, 80, 80, 255},   // Brick red
	room.KindHalf:       {80, 80, 150, 255},   // Blue marks the ring end
	room.KindDoor:       {170, 110, 50, 255},  // Oak
	room.KindFoundation: {60, 55, 50, 255},    // Dark stone
}

// Background is the colour behind everything
var Background = color.RGBA{30, 28, 25, 255}

// Footprint is the drawn edge length of each kind, in world units.
var Footprint = map[room.Kind]float64{
	room.KindTile:       0.95,
	room.KindFirstWall:  0.5,
	room.KindWall:       0.4,
	room.KindCorner:     0.5,
	room.KindHalf:       0.5,
	room.KindDoor:       0.5,
	room.KindFoundation: 1.2,
}

// Outlined reports whether a kind gets a border so it stands out in a ring.
func Outlined(k room.Kind) bool {
	return k == room.KindDoor || k == room.KindCorner
}

// ColorOf returns the preview colour of p: the catalog's colour for its
// prefab when there is one, the kind colour otherwise. catalog may be nil.
func ColorOf(p room.Placement, catalog *prefab.Catalog) color.RGBA {
	if catalog != nil {
		if def, ok := catalog.Get(p.Prefab); ok {
			if clr, ok := def.RGBA(); ok {
				return clr
			}
		}
	}
	return KindColors[p.Kind]
}

// DrawOrder sorts foundation under tiles and tiles under walls.
func DrawOrder(k room.Kind) int {
	switch k {
	case room.KindFoundation:
		return 0
	case room.KindTile:
		return 1
	}
	return 2
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
