package session

import (
	"looky-shapes/internal/density"
	"looky-shapes/internal/shapes"
	"looky-shapes/internal/world"
)

// EventKind identifies a session event.
type EventKind int

const (
	PickedUp EventKind = iota
	Dropped
	Collected
	RecipeComplete
	StateChanged
)

func (k EventKind) String() string {
	switch k {
	case PickedUp:
		return "picked-up"
	case Dropped:
		return "dropped"
	case Collected:
		return "collected"
	case RecipeComplete:
		return "recipe-complete"
	case StateChanged:
		return "state-changed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers. Shape and Object are set for pickup,
// drop and collect; State for StateChanged.
type Event struct {
	Kind   EventKind
	Shape  shapes.Type
	Object *world.Object
	State  density.State
}
