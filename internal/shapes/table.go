package shapes

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TablePath is the optional shape table override, relative to the working directory.
const TablePath = "assets/shapes.yaml"

// Table is the ordered rarity table. Order matters: weighted selection walks
// it front to back, so the same draw always maps to the same type.
type Table []Def

// DefaultTable returns the built-in five shapes.
func DefaultTable() Table {
	return Table{
		{Type: Cube, Name: "Cube", Color: "#ff4444", Rarity: 10, Radius: 1.75},
		{Type: Sphere, Name: "Sphere", Color: "#44ff44", Rarity: 7, Radius: 1.2},
		{Type: Tetrahedron, Name: "Tetrahedron", Color: "#ffff44", Rarity: 5, Radius: 1.5},
		{Type: Octahedron, Name: "Octahedron", Color: "#ff44ff", Rarity: 3, Radius: 1.3},
		{Type: Torus, Name: "Torus", Color: "#44ffff", Rarity: 2, Radius: 1.4},
	}
}

type tableFile struct {
	Shapes Table `yaml:"shapes"`
}

// LoadTable reads a shape table from path. A missing file returns
// DefaultTable() and no error; a malformed or empty one is an error.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultTable(), nil
		}
		return nil, fmt.Errorf("read shape table: %w", err)
	}
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse shape table %s: %w", path, err)
	}
	if len(f.Shapes) == 0 {
		return nil, fmt.Errorf("shape table %s: no shapes", path)
	}
	return f.Shapes, nil
}

// Lookup returns the definition for t.
func (t Table) Lookup(typ Type) (Def, bool) {
	for _, d := range t {
		if d.Type == typ {
			return d, true
		}
	}
	return Def{}, false
}

// Types returns the shape types in table order.
func (t Table) Types() []Type {
	out := make([]Type, len(t))
	for i, d := range t {
		out[i] = d.Type
	}
	return out
}

// Validate checks that every entry is usable: unique type, positive
// radius, non-negative rarity, parseable colour, and a positive total weight.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("shape table is empty")
	}
	seen := make(map[Type]bool, len(t))
	var total float32
	for _, d := range t {
		if d.Type == "" {
			return errors.New("shape table: entry without type")
		}
		if seen[d.Type] {
			return fmt.Errorf("shape table: duplicate type %s", d.Type)
		}
		seen[d.Type] = true
		if d.Rarity < 0 {
			return fmt.Errorf("shape %s: negative rarity %v", d.Type, d.Rarity)
		}
		if d.Radius <= 0 {
			return fmt.Errorf("shape %s: radius must be positive", d.Type)
		}
		if _, _, _, err := d.RGB(); err != nil {
			return err
		}
		total += d.Rarity
	}
	if total <= 0 {
		return ErrZeroWeight
	}
	return nil
}
