package dialogue

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// ErrNotFound is wrapped by every Source when a scene name is unknown.
var ErrNotFound = errors.New("dialogue scene not found")

// NotFoundError is returned by Load and Interpreter.LoadScene for unknown scenes.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dialogue scene %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Source looks up the raw document for a scene name. A missing scene must be
// reported with an error wrapping ErrNotFound; any other error is treated as
// a read failure.
type Source interface {
	Lookup(name string) ([]byte, error)
}

// Lister is implemented by sources that can enumerate their scenes.
type Lister interface {
	Names() ([]string, error)
}

// MapSource is an in-memory table of scene documents keyed by name.
type MapSource map[string]string

// Lookup returns the document stored under name.
func (m MapSource) Lookup(name string) ([]byte, error) {
	doc, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return []byte(doc), nil
}

// Names returns the stored scene names, sorted.
func (m MapSource) Names() ([]string, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// sceneExts are tried in order when resolving a name to a file.
var sceneExts = []string{".yaml", ".yml"}

// FSSource reads scenes from <Dir>/<name>.yaml (or .yml) inside FS.
type FSSource struct {
	FS  fs.FS
	Dir string
}

// Lookup reads the document for name.
func (s FSSource) Lookup(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	for _, ext := range sceneExts {
		p := path.Join(s.dir(), name+ext)
		data, err := fs.ReadFile(s.FS, p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Names lists every scene file in the directory, sorted, without extension.
func (s FSSource) Names() ([]string, error) {
	entries, err := fs.ReadDir(s.FS, s.dir())
	if err != nil {
		return nil, fmt.Errorf("failed to list dialogue scenes: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := SceneName(entry.Name()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// DirSource reads scenes from a directory on disk.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

func (s FSSource) dir() string {
	if s.Dir == "" {
		return "."
	}
	return s.Dir
}

// SceneName strips a scene file extension. It reports false for files that
// are not scene documents.
func SceneName(file string) (string, bool) {
	ext := path.Ext(file)
	for _, e := range sceneExts {
		if strings.EqualFold(ext, e) {
			return strings.TrimSuffix(file, ext), true
		}
	}
	return "", false
}

// Load fetches and decodes a scene. An unknown name yields *NotFoundError and
// an undecodable document yields *ParseError. A document that does not name
// itself takes the lookup name. Invalid UTF-8 is repaired before decoding.
func Load(src Source, name string) (*Scene, error) {
	scene, _, err := load(src, name)
	return scene, err
}

// load is Load that also reports whether the document's encoding was repaired.
func load(src Source, name string) (*Scene, bool, error) {
	data, err := src.Lookup(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, &NotFoundError{Name: name}
		}
		return nil, false, fmt.Errorf("dialogue scene %q: %w", name, err)
	}

	data, repaired := NormalizeDocument(data)
	scene, err := DecodeScene(data)
	if err != nil {
		return nil, repaired, &ParseError{Name: name, Err: err}
	}
	if scene.Name == "" {
		scene.Name = name
	}
	return scene, repaired, nil
}
