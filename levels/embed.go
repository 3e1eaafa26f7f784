package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Source is the hand edited description of a level.
type Source struct {
	Tileset []TileSpec     `yaml:"tileset"`
	Legend  map[string]int `yaml:"legend"`
	Rows    []string       `yaml:"rows"`
	Objects []Object       `yaml:"objects"`
}

// TileSpec is one tile type. Its position in the tileset is the tile index
// minus one.
type TileSpec struct {
	Sprite string `yaml:"sprite"`
	Solid  bool   `yaml:"solid"`
	Ladder bool   `yaml:"ladder"`
}

// Object is a spawn marker in world pixels.
type Object struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

func ParseSource(data []byte) (*Source, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	return &src, nil
}

// LoadSource reads a level source from disk.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	src, err := ParseSource(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return src, nil
}

// LoadSourceFromFS reads an embedded level source.
func LoadSourceFromFS(name string) (*Source, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return ParseSource(data)
}
