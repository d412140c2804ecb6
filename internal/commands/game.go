package commands

import (
	"flag"
	"fmt"

	"looky-shapes/internal/density"
	"looky-shapes/internal/gameconfig"
	"looky-shapes/internal/spawn"
	"looky-shapes/internal/world"
)

// Printer receives command output, one line at a time.
type Printer interface {
	Log(line string)
}

// Game is what the dev console can inspect and change. Config is edited in
// place so the frame loop sees pref toggles immediately.
type Game struct {
	Controller *density.Controller
	Registry   *world.Registry
	Config     *gameconfig.Config
	ConfigPath string
	Out        Printer
}

// RegisterGame adds the game's console commands to r.
func RegisterGame(r *Registry, g Game) {
	r.Register("density", "density [-target N]  show or set the target density", func(fs *flag.FlagSet) func() error {
		target := fs.Int("target", -1, "objects to keep in view")
		return func() error {
			if *target >= 0 {
				g.Controller.SetTarget(*target)
				g.Config.Density.Target = g.Controller.Target()
			}
			g.Out.Log(fmt.Sprintf("target density %d", g.Controller.Target()))
			return nil
		}
	})
	r.Register("strategy", "strategy [-name edge|biased]  show or set the spawn strategy", func(fs *flag.FlagSet) func() error {
		name := fs.String("name", "", "edge or biased")
		return func() error {
			if *name != "" {
				s, err := spawn.ParseStrategy(*name)
				if err != nil {
					return err
				}
				if err := g.Controller.SetStrategy(s); err != nil {
					return err
				}
				g.Config.Density.Strategy = s.String()
			}
			g.Out.Log("spawn strategy " + g.Controller.Strategy().String())
			return nil
		}
	})
	r.Register("stats", "stats  toggle the density overlay and print the last tick", func(fs *flag.FlagSet) func() error {
		return func() error {
			g.Config.Prefs.ShowStats = !g.Config.Prefs.ShowStats
			g.Out.Log(g.Controller.Last().String())
			return nil
		}
	})
	r.Register("fps", "fps  toggle the FPS counter", func(fs *flag.FlagSet) func() error {
		return func() error {
			g.Config.Prefs.ShowFPS = !g.Config.Prefs.ShowFPS
			g.Out.Log(fmt.Sprintf("fps %v", g.Config.Prefs.ShowFPS))
			return nil
		}
	})
	r.Register("grid", "grid  toggle the debug grid", func(fs *flag.FlagSet) func() error {
		return func() error {
			g.Config.Prefs.ShowGrid = !g.Config.Prefs.ShowGrid
			g.Out.Log(fmt.Sprintf("grid %v", g.Config.Prefs.ShowGrid))
			return nil
		}
	})
	r.Register("objects", "objects [-n N]  list up to N live objects", func(fs *flag.FlagSet) func() error {
		n := fs.Int("n", 10, "objects to list")
		return func() error {
			objs, err := g.Registry.Snapshot()
			if err != nil {
				return err
			}
			g.Out.Log(fmt.Sprintf("%d live objects", len(objs)))
			for _, o := range objs[:min(max(*n, 0), len(objs))] {
				p := o.Position
				g.Out.Log(fmt.Sprintf("#%d %s (%.1f, %.1f, %.1f) seen=%v", o.ID, o.Shape, p.X(), p.Y(), p.Z(), o.Seen))
			}
			return nil
		}
	})
	r.Register("save", "save  write the current settings to the config file", func(fs *flag.FlagSet) func() error {
		return func() error {
			if err := gameconfig.Save(g.ConfigPath, *g.Config); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			g.Out.Log("saved " + g.ConfigPath)
			return nil
		}
	})
	r.Register("help", "help  list commands", func(fs *flag.FlagSet) func() error {
		return func() error {
			for _, n := range r.Names() {
				g.Out.Log(r.Usage(n))
			}
			return nil
		}
	})
}
