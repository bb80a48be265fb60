// Package levels loads maze definitions: the built-in mazes and YAML files
// from a directory. It depends on engine but engine does not depend on it.
package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/maze-chase/internal/games/chase/engine"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultID is the maze used when none is selected.
const DefaultID = "classic"

// Level is a maze definition.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Corners  map[engine.Role]engine.Coord
	Metadata map[string]string
	FilePath string // empty for built-in mazes
}

// Build parses the rows into a maze and applies corner overrides.
func (l Level) Build() (*engine.Maze, engine.Layout, error) {
	m, layout, err := engine.ParseLayout(l.Rows)
	if err != nil {
		return nil, engine.Layout{}, fmt.Errorf("maze %s: %w", l.ID, err)
	}
	for role, c := range l.Corners {
		layout.Corners[role] = c
	}
	return m, layout, nil
}

// Size returns the maze dimensions.
func (l Level) Size() (w, h int) {
	if len(l.Rows) == 0 {
		return 0, 0
	}
	return len([]rune(l.Rows[0])), len(l.Rows)
}

// Builtin returns the mazes shipped with the game, classic first.
func Builtin() []Level {
	out := []Level{{
		ID:   DefaultID,
		Name: "Classic",
		Rows: engine.ClassicRows(),
	}}

	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return out
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			continue
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			continue
		}
		out = append(out, fromParsed(parsed, ""))
	}
	return out
}

// DefaultDir returns the user maze directory (~/.arcade/mazes).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "mazes")
}

// Loader handles loading mazes from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads every maze file that builds.
// Returns mazes sorted by ID for deterministic ordering. A missing root
// yields no mazes.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	if l.Root == "" {
		return nil, nil
	}
	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil
	}

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		if _, _, err := level.Build(); err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single maze file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return fromParsed(parsed, path), nil
}

// All returns the built-in mazes followed by the directory's mazes.
// Directory mazes whose ID collides with a built-in one are dropped.
func (l *Loader) All() []Level {
	out := Builtin()
	seen := make(map[string]bool, len(out))
	for _, lvl := range out {
		seen[lvl.ID] = true
	}
	custom, err := l.LoadAll()
	if err != nil {
		return out
	}
	for _, lvl := range custom {
		if seen[lvl.ID] {
			continue
		}
		seen[lvl.ID] = true
		out = append(out, lvl)
	}
	return out
}

// Find resolves a maze by ID among built-in and directory mazes, or by
// path when ref names an existing file.
func (l *Loader) Find(ref string) (Level, error) {
	if ref == "" {
		ref = DefaultID
	}
	if st, err := os.Stat(ref); err == nil && !st.IsDir() {
		lvl, err := l.LoadFile(ref)
		if err != nil {
			return Level{}, err
		}
		if _, _, err := lvl.Build(); err != nil {
			return Level{}, err
		}
		return lvl, nil
	}
	for _, lvl := range l.All() {
		if lvl.ID == ref {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("maze not found: %s", ref)
}

func fromParsed(p formats.Maze, path string) Level {
	return Level{
		ID:       p.ID,
		Name:     p.Name,
		Rows:     p.Rows,
		Corners:  p.Corners,
		Metadata: p.Metadata,
		FilePath: path,
	}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Maze, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Maze{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
