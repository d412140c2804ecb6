// Package hud draws the 2D overlay: the recipe panel, the prompt line, the
// crosshair and the optional FPS and density readouts.
package hud

import (
	"fmt"

	"looky-shapes/internal/density"
	"looky-shapes/internal/recipe"
	"looky-shapes/internal/shapes"
)

// Row is one recipe line as shown in the panel.
type Row struct {
	Shape shapes.Type
	Text  string
	Done  bool
}

// RecipeRows renders r with the collected count from progress.
func RecipeRows(r recipe.Recipe, table shapes.Table, progress func(recipe.Entry) int) []Row {
	rows := make([]Row, len(r.Entries))
	for i, e := range r.Entries {
		got := progress(e)
		rows[i] = Row{
			Shape: e.Shape,
			Text:  fmt.Sprintf("%s %d/%d", displayName(table, e.Shape), got, e.Needed),
			Done:  got >= e.Needed,
		}
	}
	return rows
}

// Status is the game state the prompt line depends on.
type Status struct {
	State        density.State
	Won          bool
	Holding      bool
	HeldShape    shapes.Type
	ZoneDistance float32
	ZoneRadius   float32
	Console      bool
}

// Prompt returns the hint shown at the bottom of the screen, or "".
func Prompt(s Status, table shapes.Table) string {
	switch {
	case s.Won:
		return "Recipe complete! Press Enter for the next one"
	case s.Console:
		return "Console open: press ` to close"
	case s.State != density.Active:
		return "Click to play"
	case s.Holding && s.ZoneDistance < s.ZoneRadius:
		return fmt.Sprintf("Click to drop the %s in the zone", displayName(table, s.HeldShape))
	case s.Holding:
		return fmt.Sprintf("Holding %s: zone %.0fm away", displayName(table, s.HeldShape), s.ZoneDistance)
	}
	return ""
}

func displayName(table shapes.Table, t shapes.Type) string {
	if d, ok := table.Lookup(t); ok && d.Name != "" {
		return d.Name
	}
	return string(t)
}
