package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"looky-shapes/internal/shapes"
)

func newObject(r *Registry, x float32) *Object {
	return &Object{ID: r.NextID(), Shape: shapes.Cube, Position: mgl32.Vec3{x, 2, 0}, Radius: 1}
}

func TestRegistrySwapRemove(t *testing.T) {
	r := NewRegistry()
	objs := make([]*Object, 5)
	for i := range objs {
		objs[i] = newObject(r, float32(i))
		if err := r.Add(objs[i]); err != nil {
			t.Fatal(err)
		}
	}

	if !r.Remove(objs[1]) {
		t.Fatal("Remove returned false for a live object")
	}
	if r.Remove(objs[1]) {
		t.Error("second Remove should report false")
	}
	if r.Len() != 4 || r.Contains(objs[1]) {
		t.Fatalf("len = %d, contains removed = %v", r.Len(), r.Contains(objs[1]))
	}
	for _, o := range []*Object{objs[0], objs[2], objs[3], objs[4]} {
		got, ok := r.Get(o.ID)
		if !ok || got != o {
			t.Errorf("Get(%d) = %v, %v after swap", o.ID, got, ok)
		}
	}

	// Removing the tail must not disturb the index.
	r.Remove(objs[3])
	r.Remove(objs[4])
	if got, ok := r.Get(objs[2].ID); !ok || got != objs[2] {
		t.Errorf("Get after tail removals = %v, %v", got, ok)
	}
}

func TestRegistryRejectsDuplicateID(t *testing.T) {
	r := NewRegistry()
	o := newObject(r, 0)
	if err := r.Add(o); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(o); err == nil {
		t.Error("expected duplicate ID error")
	}
}

func TestRegistrySnapshotIsDetached(t *testing.T) {
	r := NewRegistry()
	o := newObject(r, 7)
	o.Spin = mgl32.Vec3{0.1, 0.2, 0.3}
	r.Add(o)

	snap, err := r.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap) != 1 || snap[0].ID != o.ID || snap[0].Position != o.Position || snap[0].Spin != o.Spin {
		t.Fatalf("snapshot = %+v", snap)
	}
	o.Position[0] = 99
	if snap[0].Position.X() != 7 {
		t.Error("snapshot shares state with the live object")
	}
}

func TestObjectAdvance(t *testing.T) {
	o := &Object{Spin: mgl32.Vec3{1, -2, 0.5}}
	o.Advance(0.5)
	if o.Rotation != (mgl32.Vec3{0.5, -1, 0.25}) {
		t.Errorf("rotation = %v", o.Rotation)
	}
}

func TestMemScene(t *testing.T) {
	s := NewMemScene()
	r := NewRegistry()
	a, b := newObject(r, 0), newObject(r, 1)
	s.Add(a)
	s.Add(b)
	s.Remove(a)
	s.Remove(a)
	if s.Len() != 1 || s.Has(a) || !s.Has(b) {
		t.Errorf("len = %d has(a) = %v has(b) = %v", s.Len(), s.Has(a), s.Has(b))
	}
	if s.Added != 2 || s.Removed != 1 {
		t.Errorf("added = %d removed = %d", s.Added, s.Removed)
	}
}
