package shapes

import (
	"fmt"
	"strconv"
	"strings"
)

// Type names one collectible form. The string doubles as the mesh key in
// the primitives registry.
type Type string

const (
	Cube        Type = "cube"
	Sphere      Type = "sphere"
	Tetrahedron Type = "tetrahedron"
	Octahedron  Type = "octahedron"
	Torus       Type = "torus"
)

// Def is the YAML definition for one shape type (see assets/shapes.yaml).
// Rarity is a relative weight, not a probability. Radius is the bounding
// sphere used by visibility tests and pickup rays.
type Def struct {
	Type   Type    `yaml:"type"`
	Name   string  `yaml:"name"`
	Color  string  `yaml:"color"`
	Rarity float32 `yaml:"rarity"`
	Radius float32 `yaml:"radius"`
}

// RGB parses Color ("#rrggbb" or "rrggbb").
func (d Def) RGB() (r, g, b uint8, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(d.Color), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("shape %s: color %q is not #rrggbb", d.Type, d.Color)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("shape %s: color %q: %w", d.Type, d.Color, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
