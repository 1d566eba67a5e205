package room

import (
	"fmt"
)

// foundationDepth is how far below the floor foundation blocks sit.
const foundationDepth = -2

// Layout is the result of one generation pass.
type Layout struct {
	Spec       RoomSpec    `json:"spec"`       // Spec after door clamping
	HalfX      int         `json:"half_x"`     // Wall segments along the X run
	HalfY      int         `json:"half_y"`     // Wall segments along the Z run
	Placements []Placement `json:"placements"` // In generation order
}

// Count returns how many placements have the given kind.
func (l *Layout) Count(kind Kind) int {
	n := 0
	for _, p := range l.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// ByGroup returns the placements parented under group, in generation order.
func (l *Layout) ByGroup(group Group) []Placement {
	var result []Placement
	for _, p := range l.Placements {
		if p.Group == group {
			result = append(result, p)
		}
	}
	return result
}

// WallRing returns the wall pieces of one storey.
func (l *Layout) WallRing(level int) []Placement {
	var result []Placement
	for _, p := range l.ByGroup(GroupWalls) {
		if p.Level == level {
			result = append(result, p)
		}
	}
	return result
}

// Generator lays out floor tiles, wall rings and foundation for one room.
type Generator struct {
	spec   RoomSpec
	pools  *PrefabPools
	anchor Transform
	rng    Rand

	placements []Placement
}

// NewGenerator creates a generator. A nil pools value behaves like empty
// pools and a nil rng is replaced with a time-seeded one.
func NewGenerator(spec RoomSpec, pools *PrefabPools, anchor Transform, rng Rand) *Generator {
	if pools == nil {
		pools = &PrefabPools{}
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Generator{
		spec:   spec,
		pools:  pools,
		anchor: anchor,
		rng:    rng,
	}
}

// Generate is the one-shot form of NewGenerator(...).Generate().Placements.
func Generate(spec RoomSpec, pools *PrefabPools, anchor Transform, rng Rand) []Placement {
	return NewGenerator(spec, pools, anchor, rng).Generate().Placements
}

// Generate runs every enabled stage. It never fails: slots whose pool is
// empty are skipped and the rest of the room is still produced.
func (g *Generator) Generate() *Layout {
	g.placements = nil
	g.spec = g.spec.Clamped()

	if g.spec.MakeFloor {
		g.createFloor()
	}
	if g.spec.MakeWall {
		g.createWalls()
	}
	if g.spec.MakeFoundation {
		g.createFoundation()
	}

	halfX, halfY := g.spec.HalfCounts()
	return &Layout{
		Spec:       g.spec,
		HalfX:      halfX,
		HalfY:      halfY,
		Placements: g.placements,
	}
}

func (g *Generator) createFloor() {
	s := g.spec
	for y := 0; y < s.GridY; y++ {
		for x := 0; x < s.GridX; x++ {
			local := Vec3{
				X: float64(x)*s.TileSize + s.TileOffset.X,
				Z: -float64(y)*s.TileSize + s.TileOffset.Y,
			}

			// Yaw is drawn before the prefab.
			yaw := 0.0
			rot := Identity
			if !s.NotRotation {
				yaw = float64(g.rng.Intn(4) * 90)
				rot = g.anchor.rotation().Mul(Yaw(yaw))
			}

			prefab := Pick(g.pools.Tiles, g.rng)
			if prefab == "" {
				continue
			}
			g.placements = append(g.placements, Placement{
				Name:          fmt.Sprintf("Tile_%d_%d", x, y),
				Kind:          KindTile,
				Group:         GroupFloor,
				Prefab:        prefab,
				LocalPosition: local,
				LocalYaw:      yaw,
				Position:      g.anchor.TransformPoint(local),
				Rotation:      rot,
			})
		}
	}
}

func (g *Generator) createWalls() {
	s := g.spec
	halfX, halfY := s.HalfCounts()
	w := s.WallSize.X

	for level := 0; level < s.FloorCount; level++ {
		h := float64(level) * s.WallSize.Y

		g.placeWall(KindFirstWall, Pick(g.pools.FirstWalls, g.rng), level,
			fmt.Sprintf("FirstWall_%d", level), Vec3{Y: h}, 0)

		for i := 1; i < halfX; i++ {
			kind, prefab := g.wallOrDoor(level, i, s.DoorPos.X)
			g.placeWall(kind, prefab, level,
				fmt.Sprintf("Wall_%d_x%d", level, i), Vec3{X: float64(i) * w, Y: h}, 0)
		}

		corner := float64(halfX) * w
		g.placeWall(KindCorner, Pick(g.pools.WallCorners, g.rng), level,
			fmt.Sprintf("Corner_%d", level), Vec3{X: corner, Y: h}, 180)

		for i := 1; i < halfY; i++ {
			kind, prefab := g.wallOrDoor(level, i, s.DoorPos.Y)
			g.placeWall(kind, prefab, level,
				fmt.Sprintf("Wall_%d_z%d", level, i), Vec3{X: corner, Y: h, Z: -float64(i) * w}, 90)
		}

		g.placeWall(KindHalf, Pick(g.pools.WallHalves, g.rng), level,
			fmt.Sprintf("Half_%d", level), Vec3{X: corner, Y: h, Z: -float64(halfY) * w}, -90)
	}
}

// wallOrDoor picks the prefab for segment i of a run. Only the ground storey
// gets doors, and a door index of 0 means the run has none.
func (g *Generator) wallOrDoor(level, i, door int) (Kind, string) {
	if door != 0 && level == 0 && i == door {
		return KindDoor, Pick(g.pools.Doors, g.rng)
	}
	return KindWall, Pick(g.pools.Walls, g.rng)
}

func (g *Generator) placeWall(kind Kind, prefab string, level int, name string, local Vec3, yaw float64) {
	if prefab == "" {
		return
	}
	g.placements = append(g.placements, Placement{
		Name:          name,
		Kind:          kind,
		Group:         GroupWalls,
		Level:         level,
		Prefab:        prefab,
		LocalPosition: local,
		LocalYaw:      normalizeYaw(yaw),
		Position:      g.anchor.TransformPoint(local),
		Rotation:      g.anchor.rotation().Mul(Yaw(yaw)),
	})
}

func (g *Generator) createFoundation() {
	s := g.spec
	prefab := g.pools.Foundation
	if prefab == "" || s.TileSize <= 0 || s.FoundationSize <= 0 {
		return
	}
	per := s.FoundationSize / s.TileSize

	// Along the near edge, stepping down the grid.
	for y := 0; float64(y) < float64(s.GridY)/per; y++ {
		g.placeFoundation(prefab, fmt.Sprintf("Foundation_y%d", y), Vec3{
			X: s.TileOffset.X,
			Y: foundationDepth,
			Z: -float64(y)*s.TileSize + s.TileOffset.Y,
		})
	}

	// Along the far edge; x = 0 is the shared corner already covered above.
	for x := 1; float64(x) < float64(s.GridX)/per; x++ {
		g.placeFoundation(prefab, fmt.Sprintf("Foundation_x%d", x), Vec3{
			X: float64(x)*s.TileSize + s.TileOffset.X,
			Y: foundationDepth,
			Z: -float64(s.GridY-1)*s.TileSize + s.TileOffset.Y,
		})
	}
}

func (g *Generator) placeFoundation(prefab, name string, local Vec3) {
	g.placements = append(g.placements, Placement{
		Name:          name,
		Kind:          KindFoundation,
		Group:         GroupFoundation,
		Prefab:        prefab,
		LocalPosition: local,
		Position:      g.anchor.TransformPoint(local),
		Rotation:      g.anchor.rotation(),
	})
}

func normalizeYaw(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}
