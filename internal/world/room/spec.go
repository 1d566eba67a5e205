package room

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// RoomSpec describes the footprint of one generated room.
type RoomSpec struct {
	GridX          int     `json:"grid_x"`          // Cells along local +X
	GridY          int     `json:"grid_y"`          // Cells along local -Z
	TileSize       float64 `json:"tile_size"`       // Edge length of a floor tile
	FoundationSize float64 `json:"foundation_size"` // Edge length of a foundation block
	WallSize       Vec2    `json:"wall_size"`       // X = width of one wall segment, Y = height of one storey
	TileOffset     Vec2    `json:"tile_offset"`     // Shift applied to floor tiles and foundation
	DoorPos        Vec2i   `json:"door_pos"`        // Wall segment index that becomes a door on each run (0 = none)
	FloorCount     int     `json:"floor_count"`     // Storeys of wall ring stacked on top of each other
	MakeFloor      bool    `json:"make_floor"`
	MakeWall       bool    `json:"make_wall"`
	MakeFoundation bool    `json:"make_foundation"`
	NotRotation    bool    `json:"not_rotation"` // Disable random yaw on floor tiles
}

// DefaultSpec mirrors the defaults a freshly added room starts with.
func DefaultSpec() RoomSpec {
	return RoomSpec{
		TileSize:       1,
		FoundationSize: 2,
		WallSize:       Vec2{X: 1, Y: 1},
		FloorCount:     1,
	}
}

// Validate checks the sizes a room file must carry. Generate itself never
// fails; this is for catching authoring mistakes at load time.
func (s RoomSpec) Validate() error {
	if s.GridX <= 0 || s.GridY <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", s.GridX, s.GridY)
	}
	if s.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %g", s.TileSize)
	}
	if s.MakeWall && (s.WallSize.X <= 0 || s.WallSize.Y < 0) {
		return fmt.Errorf("wall_size must be positive, got %gx%g", s.WallSize.X, s.WallSize.Y)
	}
	if s.MakeFoundation && s.FoundationSize <= 0 {
		return fmt.Errorf("foundation_size must be positive, got %g", s.FoundationSize)
	}
	if s.FloorCount < 0 {
		return fmt.Errorf("floor_count must not be negative, got %d", s.FloorCount)
	}
	return nil
}

// Clamped returns a copy with DoorPos pulled into [0, floor(dim/2)-1] on each axis.
// The lower bound is applied first, so grids narrower than two cells clamp to -1.
func (s RoomSpec) Clamped() RoomSpec {
	s.DoorPos.X = clampInt(s.DoorPos.X, 0, s.GridX/2-1)
	s.DoorPos.Y = clampInt(s.DoorPos.Y, 0, s.GridY/2-1)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HalfCounts returns the number of wall segments along each run of the ring.
// Both axes divide by the wall width; the Y run does not use WallSize.Y.
func (s RoomSpec) HalfCounts() (halfX, halfY int) {
	if s.TileSize <= 0 || s.WallSize.X <= 0 {
		return 0, 0
	}
	ratio := s.WallSize.X / s.TileSize
	return int(math.Floor(float64(s.GridX) / ratio)), int(math.Floor(float64(s.GridY) / ratio))
}

// WallRingSize is the number of pieces one storey of wall ring holds.
func (s RoomSpec) WallRingSize() int {
	halfX, halfY := s.HalfCounts()
	return 3 + max(halfX-1, 0) + max(halfY-1, 0)
}

// PrefabPools holds the interchangeable variants for each placement slot.
type PrefabPools struct {
	Tiles       []string `json:"tiles"`
	Walls       []string `json:"walls"`
	FirstWalls  []string `json:"first_walls"`
	WallCorners []string `json:"wall_corners"`
	WallHalves  []string `json:"wall_halves"`
	Doors       []string `json:"doors"`
	Foundation  string   `json:"foundation"` // Single block, empty = no foundation pieces
}

// All returns every prefab name the pools reference, in pool order.
func (p *PrefabPools) All() []string {
	var names []string
	for _, pool := range [][]string{p.Tiles, p.Walls, p.FirstWalls, p.WallCorners, p.WallHalves, p.Doors} {
		names = append(names, pool...)
	}
	if p.Foundation != "" {
		names = append(names, p.Foundation)
	}
	return names
}

// Rand is the random source the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly chosen entry of pool, or "" without touching rng
// when the pool is empty.
func Pick(pool []string, rng Rand) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

// Kind tells the consumer what sort of geometry a placement is.
type Kind int

const (
	KindTile Kind = iota
	KindFirstWall
	KindWall
	KindCorner
	KindHalf
	KindDoor
	KindFoundation
)

func (k Kind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindFirstWall:
		return "first_wall"
	case KindWall:
		return "wall"
	case KindCorner:
		return "corner"
	case KindHalf:
		return "half"
	case KindDoor:
		return "door"
	case KindFoundation:
		return "foundation"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText lets kinds print by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Group is the named container a placement is parented under. Rebuilding a
// room clears all three groups.
type Group string

const (
	GroupFloor      Group = "Floor"
	GroupWalls      Group = "Walls"
	GroupFoundation Group = "Foundation"
)

// Groups lists every group in generation order.
var Groups = []Group{GroupFloor, GroupWalls, GroupFoundation}

// Placement is one piece of geometry to instantiate.
type Placement struct {
	Name          string  `json:"name"`
	Kind          Kind    `json:"kind"`
	Group         Group   `json:"group"`
	Level         int     `json:"level"` // Storey for wall pieces, 0 otherwise
	Prefab        string  `json:"prefab"`
	LocalPosition Vec3    `json:"local_position"`
	LocalYaw      float64 `json:"local_yaw"` // Yaw relative to the anchor, degrees
	Position      Vec3    `json:"position"`
	Rotation      Quat    `json:"rotation"`
}
