// Package gamescanner discovers room collections under a data directory.
package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/roomforge/internal/dialogue"
)

// DialogueDir is the sub-directory of a collection holding its scenes.
const DialogueDir = "dialogue"

// Collection represents a discoverable set of rooms in the data directory
type Collection struct {
	Name   string   // Display name (directory name)
	Dir    string   // Directory path relative to data/
	Rooms  []string // Room files, relative to Dir
	Scenes []string // Dialogue scene names found in Dir/dialogue
}

// RoomPath returns the path of room i relative to the data directory.
func (c Collection) RoomPath(i int) string {
	return filepath.Join(c.Dir, c.Rooms[i])
}

// SceneDir returns the collection's dialogue directory relative to the data directory.
func (c Collection) SceneDir() string {
	return filepath.Join(c.Dir, DialogueDir)
}

// ScanDataDirectory scans the data directory for room collections.
// Returns one Collection for each directory holding at least one room file.
func ScanDataDirectory(dataPath string) ([]Collection, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var collections []Collection

	for _, entry := range entries {
		// Skip non-directories
		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories
		dirName := entry.Name()
		if strings.HasPrefix(dirName, ".") {
			continue
		}

		collectionPath := filepath.Join(dataPath, dirName)
		rooms, err := scanRooms(collectionPath)
		if err != nil {
			// Skip directories that can't be read
			continue
		}

		// Only include directories with at least one room
		if len(rooms) == 0 {
			continue
		}
		collections = append(collections, Collection{
			Name:   dirName,
			Dir:    dirName,
			Rooms:  rooms,
			Scenes: scanScenes(filepath.Join(collectionPath, DialogueDir)),
		})
	}

	return collections, nil
}

// IsCatalog reports whether a JSON file name is a prefab catalog rather than a room.
func IsCatalog(name string) bool {
	lower := strings.ToLower(name)
	return lower == "prefabs.json" || strings.HasSuffix(lower, "_prefabs.json")
}

// scanRooms finds all room files in a collection directory
func scanRooms(collectionPath string) ([]string, error) {
	entries, err := os.ReadDir(collectionPath)
	if err != nil {
		return nil, err
	}

	var rooms []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(strings.ToLower(name), ".json") && !IsCatalog(name) {
			rooms = append(rooms, name)
		}
	}
	sort.Strings(rooms)
	return rooms, nil
}

// scanScenes lists dialogue scene names; a missing directory has none.
func scanScenes(dir string) []string {
	names, err := dialogue.FSSource{FS: os.DirFS(dir)}.Names()
	if err != nil {
		return nil
	}
	return names
}

// FirstRoom returns the path of the first room in the first collection under dataPath.
func FirstRoom(dataPath string) (string, error) {
	collections, err := ScanDataDirectory(dataPath)
	if err != nil {
		return "", err
	}
	if len(collections) == 0 {
		return "", fmt.Errorf("no room files found under %s", dataPath)
	}
	return filepath.Join(dataPath, collections[0].RoomPath(0)), nil
}
