package world

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Registry is the set of live objects. Order is not preserved across
// removals.
type Registry struct {
	objects []*Object
	index   map[uint64]int
	nextID  uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[uint64]int)}
}

// NextID reserves a new object ID. IDs start at 1.
func (r *Registry) NextID() uint64 {
	r.nextID++
	return r.nextID
}

// Add inserts o. Adding an ID that is already live is an error.
func (r *Registry) Add(o *Object) error {
	if _, ok := r.index[o.ID]; ok {
		return fmt.Errorf("object %d already registered", o.ID)
	}
	r.index[o.ID] = len(r.objects)
	r.objects = append(r.objects, o)
	return nil
}

// Remove drops o by swapping the last object into its slot. It reports
// whether o was present.
func (r *Registry) Remove(o *Object) bool {
	i, ok := r.index[o.ID]
	if !ok {
		return false
	}
	last := len(r.objects) - 1
	if i != last {
		moved := r.objects[last]
		r.objects[i] = moved
		r.index[moved.ID] = i
	}
	r.objects[last] = nil
	r.objects = r.objects[:last]
	delete(r.index, o.ID)
	return true
}

// Get returns the live object with the given ID.
func (r *Registry) Get(id uint64) (*Object, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.objects[i], true
}

// Contains reports whether o is live.
func (r *Registry) Contains(o *Object) bool {
	_, ok := r.index[o.ID]
	return ok
}

// Len returns the number of live objects.
func (r *Registry) Len() int { return len(r.objects) }

// Objects returns the live objects. The slice is owned by the registry and
// is only valid until the next Add or Remove.
func (r *Registry) Objects() []*Object { return r.objects }

// Snapshot returns copies of every live object, safe to keep across frames.
func (r *Registry) Snapshot() ([]Object, error) {
	out := make([]Object, len(r.objects))
	for i, o := range r.objects {
		if err := copier.Copy(&out[i], o); err != nil {
			return nil, fmt.Errorf("snapshot object %d: %w", o.ID, err)
		}
	}
	return out, nil
}
