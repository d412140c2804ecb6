// Package recipe generates shape quotas and tracks what has been collected
// toward them.
package recipe

import (
	"errors"

	"looky-shapes/internal/rng"
	"looky-shapes/internal/shapes"
)

// maxTypes caps how many distinct shapes a recipe asks for, and maxPerType
// caps the spread of the per-type count.
const (
	maxTypes   = 3
	maxPerType = 3
)

// Entry is one line of a recipe.
type Entry struct {
	Shape  shapes.Type
	Needed int
}

// Recipe is an ordered list of quotas with distinct shapes.
type Recipe struct {
	Difficulty int
	Entries    []Entry
}

// Generate builds a recipe for difficulty d (minimum 1). It asks for
// min(1+d/2, 3) distinct shapes chosen by shuffling the table, each needed
// 1 + floor(u·min(d, 3)) times.
func Generate(d int, table shapes.Table, src rng.Source) (Recipe, error) {
	if len(table) == 0 {
		return Recipe{}, errors.New("recipe: empty shape table")
	}
	d = max(d, 1)
	types := table.Types()
	// Fisher-Yates, drawing from src so tests can replay.
	for i := len(types) - 1; i > 0; i-- {
		j := rng.Intn(src, i+1)
		types[i], types[j] = types[j], types[i]
	}

	n := min(1+d/2, maxTypes, len(types))
	spread := float32(min(d, maxPerType))
	r := Recipe{Difficulty: d, Entries: make([]Entry, n)}
	for i := range r.Entries {
		r.Entries[i] = Entry{
			Shape:  types[i],
			Needed: 1 + int(src.Float32()*spread),
		}
	}
	return r, nil
}

// Total is the number of shapes the recipe needs overall.
func (r Recipe) Total() int {
	n := 0
	for _, e := range r.Entries {
		n += e.Needed
	}
	return n
}

// Wants reports whether s appears in the recipe.
func (r Recipe) Wants(s shapes.Type) bool {
	for _, e := range r.Entries {
		if e.Shape == s {
			return true
		}
	}
	return false
}

// Tally counts collected shapes.
type Tally map[shapes.Type]int

// Record adds one collected shape and returns the new count.
func (t Tally) Record(s shapes.Type) int {
	t[s]++
	return t[s]
}

// Progress returns how many of e are collected, capped at e.Needed.
func (t Tally) Progress(e Entry) int {
	return min(t[e.Shape], e.Needed)
}

// Complete reports whether every entry of r is satisfied.
func (t Tally) Complete(r Recipe) bool {
	for _, e := range r.Entries {
		if t[e.Shape] < e.Needed {
			return false
		}
	}
	return true
}

// Reset clears the tally.
func (t Tally) Reset() {
	clear(t)
}
