// Package formats provides maze file format parsers.
package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/games/chase/engine"
	"gopkg.in/yaml.v3"
)

// YAMLMaze represents the YAML structure of a maze file.
type YAMLMaze struct {
	ID       string               `yaml:"id"`
	Name     string               `yaml:"name"`
	Rows     []string             `yaml:"rows"`
	Corners  map[string]YAMLCoord `yaml:"corners,omitempty"`
	Metadata map[string]string    `yaml:"metadata,omitempty"`
}

// YAMLCoord is a grid cell in YAML form. Corners may lie off the grid.
type YAMLCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Maze is a parsed maze file, not yet validated as a layout.
type Maze struct {
	ID       string
	Name     string
	Rows     []string
	Corners  map[engine.Role]engine.Coord
	Metadata map[string]string
}

var roleNames = map[string]engine.Role{
	"chaser":   engine.RoleChaser,
	"ambusher": engine.RoleAmbusher,
	"flanker":  engine.RoleFlanker,
	"feigner":  engine.RoleFeigner,
}

// ParseYAML parses a YAML maze file.
func ParseYAML(data []byte) (Maze, error) {
	var ym YAMLMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Maze{}, errors.New("missing id")
	}
	if len(ym.Rows) == 0 {
		return Maze{}, errors.New("missing rows")
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}

	m := Maze{
		ID:       ym.ID,
		Name:     name,
		Rows:     ym.Rows,
		Corners:  make(map[engine.Role]engine.Coord, len(ym.Corners)),
		Metadata: ym.Metadata,
	}
	for key, c := range ym.Corners {
		role, ok := roleNames[key]
		if !ok {
			return Maze{}, fmt.Errorf("unknown role %q in corners", key)
		}
		m.Corners[role] = engine.C(c.X, c.Y)
	}
	return m, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
