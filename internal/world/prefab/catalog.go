// Package prefab describes the named pieces of geometry a room is built from.
package prefab

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Definition defines a single prefab within a catalog
type Definition struct {
	Name       string                 `json:"name"`       // Semantic name (e.g., "stone_wall_a")
	Kind       string                 `json:"kind"`       // Slot it is meant for: tile, wall, door, ...
	Color      [4]uint8               `json:"color"`      // Preview colour, RGBA
	Properties map[string]interface{} `json:"properties"` // Custom properties (material, footstep sound, ...)
}

// RGBA returns the preview colour. A zero alpha means "not set".
func (d *Definition) RGBA() (color.RGBA, bool) {
	if d.Color[3] == 0 {
		return color.RGBA{}, false
	}
	return color.RGBA{d.Color[0], d.Color[1], d.Color[2], d.Color[3]}, true
}

// Config is the JSON layout of a catalog file
type Config struct {
	Name    string       `json:"name"`
	Prefabs []Definition `json:"prefabs"`
}

// Catalog is a loaded prefab catalog
type Catalog struct {
	Config *Config
	byName map[string]*Definition
}

// LoadCatalog loads a catalog from a JSON file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefab catalog %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("prefab catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Parse builds a catalog from JSON
func Parse(data []byte) (*Catalog, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse prefab catalog: %w", err)
	}
	return New(&config)
}

// New validates config and indexes it by name
func New(config *Config) (*Catalog, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	byName := make(map[string]*Definition, len(config.Prefabs))
	for i := range config.Prefabs {
		def := &config.Prefabs[i]
		byName[def.Name] = def
	}
	return &Catalog{Config: config, byName: byName}, nil
}

// Validate checks that every prefab has a unique, non-empty name
func (c *Config) Validate() error {
	seen := mapset.New[string]()
	for i, def := range c.Prefabs {
		if def.Name == "" {
			return fmt.Errorf("prefab %d has no name", i)
		}
		if seen.Has(def.Name) {
			return fmt.Errorf("duplicate prefab name %q", def.Name)
		}
		seen.Put(def.Name)
	}
	return nil
}

// Get returns a prefab definition by name
func (c *Catalog) Get(name string) (*Definition, bool) {
	def, ok := c.byName[name]
	return def, ok
}

// Has reports whether the catalog defines name
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns all prefab names, sorted
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property retrieves a property from a prefab definition
func (d *Definition) Property(key string) (interface{}, bool) {
	if d.Properties == nil {
		return nil, false
	}
	val, ok := d.Properties[key]
	return val, ok
}

// PropertyBool retrieves a boolean property
func (d *Definition) PropertyBool(key string, defaultVal bool) bool {
	val, ok := d.Property(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// PropertyString retrieves a string property
func (d *Definition) PropertyString(key string, defaultVal string) string {
	val, ok := d.Property(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}

// PropertyInt retrieves an integer property
func (d *Definition) PropertyInt(key string, defaultVal int) int {
	val, ok := d.Property(key)
	if !ok {
		return defaultVal
	}
	// JSON numbers are float64
	switch v := val.(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return defaultVal
}
