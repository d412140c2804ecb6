package shapes

import (
	"errors"

	"looky-shapes/internal/rng"
)

// ErrZeroWeight means no entry in the table can ever be selected.
var ErrZeroWeight = errors.New("shape table: total rarity weight is zero")

// Selector picks shape types with probability proportional to rarity.
type Selector struct {
	types   []Type
	weights []float32
	total   float32
}

// NewSelector validates table and captures its weights. A zero total weight
// is a configuration error the caller should treat as fatal.
func NewSelector(table Table) (*Selector, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	s := &Selector{
		types:   make([]Type, len(table)),
		weights: make([]float32, len(table)),
	}
	for i, d := range table {
		s.types[i] = d.Type
		s.weights[i] = d.Rarity
		s.total += d.Rarity
	}
	return s, nil
}

// Select draws r in [0, total) and walks the table subtracting weights,
// returning the first type where the remainder reaches zero. Rounding that
// leaves a sliver of remainder after the last entry resolves to the last
// positive-weight type.
func (s *Selector) Select(src rng.Source) Type {
	r := src.Float32() * s.total
	last := s.types[len(s.types)-1]
	for i, w := range s.weights {
		if w <= 0 {
			continue
		}
		last = s.types[i]
		r -= w
		if r <= 0 {
			return s.types[i]
		}
	}
	return last
}

// Total returns the sum of weights.
func (s *Selector) Total() float32 { return s.total }
