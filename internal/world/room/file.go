package room

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/roomforge/internal/world/prefab"
)

// AnchorSpec is the JSON form of a Transform: a position and a yaw in degrees.
type AnchorSpec struct {
	Position Vec3    `json:"position"`
	Yaw      float64 `json:"yaw"`
}

// Transform converts the anchor to a Transform.
func (a AnchorSpec) Transform() Transform {
	return NewTransform(a.Position, a.Yaw)
}

// RoomFile is one room definition on disk.
type RoomFile struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Catalog     string      `json:"catalog"` // Prefab catalog, relative to the room file
	Anchor      AnchorSpec  `json:"anchor"`
	Spec        RoomSpec    `json:"spec"`
	Pools       PrefabPools `json:"pools"`

	// Prefabs is the loaded catalog, nil when the file names none.
	Prefabs *prefab.Catalog `json:"-"`
}

// LoadRoomFile loads a room definition from a JSON file. Spec fields missing
// from the file keep their DefaultSpec values.
func LoadRoomFile(path string) (*RoomFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room file: %w", err)
	}

	rf := &RoomFile{Spec: DefaultSpec()}
	if err := json.Unmarshal(data, rf); err != nil {
		return nil, fmt.Errorf("failed to parse room file %s: %w", path, err)
	}

	if err := rf.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("room %s: %w", rf.Name, err)
	}

	if rf.Catalog != "" {
		catalogPath := rf.Catalog
		if !filepath.IsAbs(catalogPath) {
			catalogPath = filepath.Join(filepath.Dir(path), catalogPath)
		}
		catalog, err := prefab.LoadCatalog(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", rf.Name, err)
		}
		if err := CheckPools(&rf.Pools, catalog); err != nil {
			return nil, fmt.Errorf("room %s: %w", rf.Name, err)
		}
		rf.Prefabs = catalog
	}

	return rf, nil
}

// CheckPools reports the first pool entry the catalog does not define.
func CheckPools(pools *PrefabPools, catalog *prefab.Catalog) error {
	checked := mapset.New[string]()
	for _, name := range pools.All() {
		if checked.Has(name) {
			continue
		}
		checked.Put(name)
		if !catalog.Has(name) {
			return fmt.Errorf("pool references unknown prefab %q", name)
		}
	}
	return nil
}
