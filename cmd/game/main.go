package main

import (
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"looky-shapes/internal/audio"
	"looky-shapes/internal/commands"
	"looky-shapes/internal/fonts"
	"looky-shapes/internal/gameconfig"
	"looky-shapes/internal/graphics"
	"looky-shapes/internal/hud"
	"looky-shapes/internal/input"
	"looky-shapes/internal/logger"
	"looky-shapes/internal/mapgen"
	"looky-shapes/internal/physics"
	"looky-shapes/internal/rng"
	"looky-shapes/internal/scene"
	"looky-shapes/internal/session"
	"looky-shapes/internal/shapes"
	"looky-shapes/internal/terminal"
)

const fontLoadSize = 64

func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Log("fatal: " + err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := gameconfig.Load(gameconfig.ConfigPath)
	if err != nil {
		return err
	}
	table, err := shapes.LoadTable(shapes.TablePath)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rng.New(seed)
	log.Logf("seed %d", seed)

	opts := mapgen.DefaultScatterOptions(cfg.World.Size)
	opts.Count = cfg.World.Decorations
	opts.KeepOut = [2]float32{cfg.Zone.Center[0], cfg.Zone.Center[2]}
	opts.KeepOutRadius = cfg.Zone.Radius + 2
	opts.Seed = int32(seed)
	scn := scene.New(cfg, table, mapgen.Scatter(opts, src))

	player := physics.NewPlayer(0, 0, cfg.Camera.EyeHeight, cfg.Player.MoveSpeed, cfg.Player.Damping, cfg.SpawnConfig().Bound())
	rig := physics.NewRig(player, cfg.Look.Sensitivity)
	rig.FovY, rig.Near, rig.Far = cfg.Camera.FovY, cfg.Camera.Near, cfg.Camera.Far

	sess, err := session.New(session.Deps{
		Config:   cfg,
		Table:    table,
		Scene:    scn,
		Viewport: rig,
		Mover:    rig,
		Source:   src,
		Log:      log,
	})
	if err != nil {
		return err
	}

	snd := audio.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := snd.Init(); err != nil {
			log.Logf("audio: %v; running silent", err)
		}
	}
	defer snd.Close()

	ptr := &input.Pointer{}
	sess.Subscribe(snd.Handle)
	sess.Subscribe(func(e session.Event) {
		if e.Kind == session.RecipeComplete {
			ptr.Release()
		}
	})

	reg := commands.NewRegistry()
	commands.RegisterGame(reg, commands.Game{
		Controller: sess.Controller(),
		Registry:   sess.Registry(),
		Config:     &cfg,
		ConfigPath: gameconfig.ConfigPath,
		Out:        log,
	})
	term := terminal.New(log, reg)
	overlay := hud.New(table)

	var font rl.Font
	fontTried := false
	loadFont := func() {
		fontTried = true
		if cfg.Prefs.Font == "" {
			return
		}
		path, err := fonts.Find(cfg.Prefs.Font)
		if err != nil {
			log.Logf("font %q: %v", cfg.Prefs.Font, err)
			return
		}
		font = rl.LoadFontEx(path, fontLoadSize, nil)
		overlay.SetFont(font)
		term.SetFont(font)
	}

	update := func(dt float32) {
		if !fontTried {
			loadFont()
		}
		f := ptr.Poll()
		switch {
		case f.Console:
			term.SetOpen(!term.IsOpen())
			if term.IsOpen() && ptr.Release() {
				sess.Pause()
			}
		case f.Release:
			term.SetOpen(false)
			if ptr.Release() {
				sess.Pause()
			}
		case term.IsOpen():
			term.Update()
		case sess.Won():
			if f.Confirm {
				if err := sess.NextRecipe(); err != nil {
					log.Log(err.Error())
				} else {
					ptr.Capture()
				}
			}
		case f.Click && !ptr.Captured():
			ptr.Capture()
			sess.Start()
		case f.Click:
			sess.TryPickup()
		}

		rig.Intent = physics.Intent{}
		if ptr.Captured() {
			rig.Turn(f.DX, f.DY)
			sess.Look(f.DX, f.DY)
			rig.Intent = f.Keys.Intent()
		}
		rig.SetAspect(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		sess.Update(dt)

		scn.SetGridVisible(cfg.Prefs.ShowGrid)
		scn.Update(rig.Camera(), dt)
	}

	draw := func() {
		scn.Draw()

		st := hud.Status{
			State:      sess.State(),
			Won:        sess.Won(),
			Console:    term.IsOpen(),
			ZoneRadius: cfg.Zone.Radius,
		}
		if held := sess.Held(); held != nil {
			st.Holding = true
			st.HeldShape = held.Shape
			st.ZoneDistance = sess.ZoneDistance(held.Position)
		}
		r := sess.Recipe()
		overlay.Draw(hud.Frame{
			Difficulty: r.Difficulty,
			Rows:       hud.RecipeRows(r, table, sess.Progress),
			Prompt:     hud.Prompt(st, table),
			Captured:   ptr.Captured(),
			ShowFPS:    cfg.Prefs.ShowFPS,
			ShowStats:  cfg.Prefs.ShowStats,
			Report:     sess.Controller().Last(),
			Live:       sess.Registry().Len(),
		})
		term.Draw()
	}

	unload := func() {
		scn.Unload()
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
	}

	log.Log("press ` for the console, help lists commands")
	graphics.Run(graphics.DefaultWindow("Looky Shapes"), update, draw, unload)
	return nil
}
