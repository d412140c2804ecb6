package world

// MemScene is a Scene that only records membership. Used by tests and by
// headless runs.
type MemScene struct {
	objects map[uint64]*Object
	Added   int
	Removed int
}

// NewMemScene returns an empty MemScene.
func NewMemScene() *MemScene {
	return &MemScene{objects: make(map[uint64]*Object)}
}

func (s *MemScene) Add(o *Object) {
	s.objects[o.ID] = o
	s.Added++
}

func (s *MemScene) Remove(o *Object) {
	if _, ok := s.objects[o.ID]; ok {
		delete(s.objects, o.ID)
		s.Removed++
	}
}

// Has reports whether o is in the scene.
func (s *MemScene) Has(o *Object) bool {
	_, ok := s.objects[o.ID]
	return ok
}

// Len returns the number of renderables.
func (s *MemScene) Len() int { return len(s.objects) }
