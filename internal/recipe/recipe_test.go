package recipe

import (
	"testing"

	"looky-shapes/internal/rng"
	"looky-shapes/internal/shapes"
)

func TestGenerateBounds(t *testing.T) {
	table := shapes.DefaultTable()
	src := rng.New(21)
	tests := []struct {
		difficulty int
		types      int
		maxNeeded  int
	}{
		{0, 1, 1},
		{1, 1, 1},
		{2, 2, 2},
		{3, 2, 3},
		{4, 3, 3},
		{10, 3, 3},
	}
	for _, tt := range tests {
		for i := 0; i < 200; i++ {
			r, err := Generate(tt.difficulty, table, src)
			if err != nil {
				t.Fatal(err)
			}
			if len(r.Entries) != tt.types {
				t.Fatalf("difficulty %d: %d entries, want %d", tt.difficulty, len(r.Entries), tt.types)
			}
			seen := map[shapes.Type]bool{}
			for _, e := range r.Entries {
				if seen[e.Shape] {
					t.Fatalf("difficulty %d: duplicate %s", tt.difficulty, e.Shape)
				}
				seen[e.Shape] = true
				if e.Needed < 1 || e.Needed > tt.maxNeeded {
					t.Fatalf("difficulty %d: needed %d outside [1, %d]", tt.difficulty, e.Needed, tt.maxNeeded)
				}
			}
		}
	}
}

func TestGenerateIsReplayable(t *testing.T) {
	table := shapes.DefaultTable()
	// Shuffle draws (4), then two count draws.
	r, err := Generate(2, table, rng.NewSequence(0.99, 0.99, 0.99, 0.99, 0.0, 0.99))
	if err != nil {
		t.Fatal(err)
	}
	// Every j = i leaves the table order unchanged.
	want := []Entry{{shapes.Cube, 1}, {shapes.Sphere, 2}}
	if len(r.Entries) != len(want) {
		t.Fatalf("entries = %+v", r.Entries)
	}
	for i := range want {
		if r.Entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, r.Entries[i], want[i])
		}
	}
	if r.Total() != 3 || !r.Wants(shapes.Sphere) || r.Wants(shapes.Torus) {
		t.Errorf("total = %d, wants sphere %v, wants torus %v", r.Total(), r.Wants(shapes.Sphere), r.Wants(shapes.Torus))
	}
}

func TestGenerateEmptyTable(t *testing.T) {
	if _, err := Generate(1, nil, rng.New(1)); err == nil {
		t.Error("expected error")
	}
}

func TestTally(t *testing.T) {
	r := Recipe{Entries: []Entry{{shapes.Cube, 2}, {shapes.Torus, 1}}}
	tally := Tally{}
	if tally.Complete(r) {
		t.Fatal("empty tally complete")
	}
	tally.Record(shapes.Cube)
	tally.Record(shapes.Cube)
	if got := tally.Record(shapes.Cube); got != 3 {
		t.Errorf("Record = %d", got)
	}
	if got := tally.Progress(r.Entries[0]); got != 2 {
		t.Errorf("Progress capped = %d, want 2", got)
	}
	if tally.Complete(r) {
		t.Error("complete without torus")
	}
	tally.Record(shapes.Torus)
	if !tally.Complete(r) {
		t.Error("expected complete")
	}
	tally.Reset()
	if len(tally) != 0 {
		t.Errorf("reset left %v", tally)
	}
}
