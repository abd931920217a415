package prefabs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/mazes/canvas"
)

const (
	MazeFile  = "maze.yaml"
	TilesFile = "tiles.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MazeSpec struct {
	Name          string         `yaml:"name"`
	Title         string         `yaml:"title"`
	Width         int            `yaml:"width"`
	Height        int            `yaml:"height"`
	Scale         int            `yaml:"scale"`
	CellMargin    int            `yaml:"cell_margin"`
	EdgeThickness int            `yaml:"edge_thickness"`
	ShowHelp      bool           `yaml:"show_help"`
	Colors        MazeColorsSpec `yaml:"colors"`
}

type MazeColorsSpec struct {
	Background     YAMLColor `yaml:"background"`
	Start          YAMLColor `yaml:"start"`
	End            YAMLColor `yaml:"end"`
	Path           YAMLColor `yaml:"path"`
	Empty          YAMLColor `yaml:"empty"`
	VerticalEdge   YAMLColor `yaml:"vertical_edge"`
	HorizontalEdge YAMLColor `yaml:"horizontal_edge"`
}

// Validate rejects sizes the maze cannot be drawn with.
func (s *MazeSpec) Validate() error {
	switch {
	case s.Width < 1 || s.Height < 1:
		return fmt.Errorf("%w: maze grid %dx%d", ErrInvalidSpec, s.Width, s.Height)
	case s.Scale < 1:
		return fmt.Errorf("%w: maze scale %d", ErrInvalidSpec, s.Scale)
	case s.CellMargin < 0 || 2*s.CellMargin >= s.Scale:
		return fmt.Errorf("%w: cell margin %d does not fit scale %d", ErrInvalidSpec, s.CellMargin, s.Scale)
	case s.EdgeThickness < 0 || s.EdgeThickness > s.Scale:
		return fmt.Errorf("%w: edge thickness %d does not fit scale %d", ErrInvalidSpec, s.EdgeThickness, s.Scale)
	}
	return nil
}

func LoadMazeSpec() (*MazeSpec, error) {
	spec, err := LoadSpec[MazeSpec](MazeFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", MazeFile, err)
	}
	return &spec, nil
}

type TilesSpec struct {
	Name    string          `yaml:"name"`
	Title   string          `yaml:"title"`
	Width   int             `yaml:"width"`
	Height  int             `yaml:"height"`
	MinTile int             `yaml:"min_tile"`
	MaxTile int             `yaml:"max_tile"`
	Colors  TilesColorsSpec `yaml:"colors"`
}

type TilesColorsSpec struct {
	Light        YAMLColor `yaml:"light"`
	Dark         YAMLColor `yaml:"dark"`
	PressedLight YAMLColor `yaml:"pressed_light"`
	PressedDark  YAMLColor `yaml:"pressed_dark"`
}

func (s *TilesSpec) Validate() error {
	switch {
	case s.Width < 1 || s.Height < 1:
		return fmt.Errorf("%w: tiles surface %dx%d", ErrInvalidSpec, s.Width, s.Height)
	case s.MinTile < 1 || s.MaxTile < s.MinTile:
		return fmt.Errorf("%w: tile range [%d, %d]", ErrInvalidSpec, s.MinTile, s.MaxTile)
	}
	return nil
}

func LoadTilesSpec() (*TilesSpec, error) {
	spec, err := LoadSpec[TilesSpec](TilesFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", TilesFile, err)
	}
	return &spec, nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbff". Canvas colors are opaque, so a
// translucent alpha is rejected.
type YAMLColor struct {
	canvas.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	if len(s) == 8 {
		a, err := parse(6)
		if err != nil {
			return err
		}
		if a != 0xff {
			return fmt.Errorf("translucent color not supported: %s", value.Value)
		}
	}

	c.Color = canvas.Color{R: r, G: g, B: b}
	return nil
}
