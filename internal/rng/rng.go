package rng

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform floats in [0,1). Every random decision in the game
// (shape pick, placement sampling, recipe shuffle) draws from a Source so
// tests can replay exact sequences.
type Source interface {
	Float32() float32
}

// New returns a PCG-backed Source. Seed 0 uses a time-based seed.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Float32() float32 {
	return s.r.Float32()
}

// Range maps the next draw from src onto [lo, hi).
func Range(src Source, lo, hi float32) float32 {
	return lo + src.Float32()*(hi-lo)
}

// Intn returns a draw in [0, n). n <= 0 returns 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float32() * float32(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sequence replays a fixed list of values, wrapping around at the end.
// Values are returned as given, so tests can feed exact boundary draws.
type Sequence struct {
	values []float32
	next   int
	Draws  int
}

// NewSequence returns a Sequence over values. An empty Sequence always yields 0.
func NewSequence(values ...float32) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float32() float32 {
	s.Draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
