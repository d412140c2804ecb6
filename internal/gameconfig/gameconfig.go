package gameconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"looky-shapes/internal/density"
	"looky-shapes/internal/spawn"
)

// ConfigPath is the path to the game config file, relative to the process working directory.
const ConfigPath = "config/game.yaml"

// Config holds every gameplay tunable. Values in config/game.yaml override
// the defaults field by field; anything the file omits keeps its default.
type Config struct {
	// Seed drives every random decision. 0 picks a time-based seed.
	Seed    uint64        `yaml:"seed"`
	World   WorldConfig   `yaml:"world"`
	Camera  CameraConfig  `yaml:"camera"`
	Density DensityConfig `yaml:"density"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Look    LookConfig    `yaml:"look"`
	Player  PlayerConfig  `yaml:"player"`
	Pickup  PickupConfig  `yaml:"pickup"`
	Zone    ZoneConfig    `yaml:"zone"`
	Audio   AudioConfig   `yaml:"audio"`
	Prefs   Prefs         `yaml:"prefs"`
}

type WorldConfig struct {
	Size            float32 `yaml:"size"`
	PlayerClearance float32 `yaml:"player_clearance"`
	Decorations     int     `yaml:"decorations"`
}

type CameraConfig struct {
	FovY      float32 `yaml:"fov_y"`
	Near      float32 `yaml:"near"`
	Far       float32 `yaml:"far"`
	EyeHeight float32 `yaml:"eye_height"`
}

type DensityConfig struct {
	Target            int     `yaml:"target"`
	InitialPopulation int     `yaml:"initial_population"`
	RetentionMargin   float32 `yaml:"retention_margin"`
	PendingRange      float32 `yaml:"pending_range"`
	Strategy          string  `yaml:"strategy"`
	MaxSpin           float32 `yaml:"max_spin"`
}

type SpawnConfig struct {
	HeightMin         float32 `yaml:"height_min"`
	HeightMax         float32 `yaml:"height_max"`
	ConeNear          float32 `yaml:"cone_near"`
	ConeRange         float32 `yaml:"cone_range"`
	ConeAngleFraction float32 `yaml:"cone_angle_fraction"`
	EdgeMinAngle      float32 `yaml:"edge_min_angle"`
	EdgeMaxAngle      float32 `yaml:"edge_max_angle"`
	EdgeMinDistance   float32 `yaml:"edge_min_distance"`
	EdgeMaxDistance   float32 `yaml:"edge_max_distance"`
	BiasMargin        float32 `yaml:"bias_margin"`
	BiasJitter        float32 `yaml:"bias_jitter"`
	MaxAttempts       int     `yaml:"max_attempts"`
	FallbackDistance  float32 `yaml:"fallback_distance"`
}

type LookConfig struct {
	Blend       float32 `yaml:"blend"`
	Deadzone    float32 `yaml:"deadzone"`
	Sensitivity float32 `yaml:"sensitivity"`
}

type PlayerConfig struct {
	MoveSpeed float32 `yaml:"move_speed"`
	Damping   float32 `yaml:"damping"`
}

type PickupConfig struct {
	Distance   float32    `yaml:"distance"`
	HoldOffset [3]float32 `yaml:"hold_offset"`
	HoldSpin   [2]float32 `yaml:"hold_spin"`
}

type ZoneConfig struct {
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume is linear gain from 0 (silent) to 1.
	Volume float64 `yaml:"volume"`
}


// Prefs are display toggles the dev console can change and save.
type Prefs struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
	ShowGrid  bool `yaml:"show_grid"`
	// Font is a font name or path under assets/fonts; empty uses the raylib default.
	Font string `yaml:"font"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		World:  WorldConfig{Size: 200, PlayerClearance: 5, Decorations: 30},
		Camera: CameraConfig{FovY: 75, Near: 0.01, Far: 1000, EyeHeight: 5},
		Density: DensityConfig{
			Target:            12,
			InitialPopulation: 12,
			RetentionMargin:   0.15,
			PendingRange:      90,
			Strategy:          spawn.LookBiased.String(),
			MaxSpin:           0.6,
		},
		Spawn: SpawnConfig{
			HeightMin:         1,
			HeightMax:         5,
			ConeNear:          10,
			ConeRange:         40,
			ConeAngleFraction: 0.8,
			EdgeMinAngle:      50,
			EdgeMaxAngle:      90,
			EdgeMinDistance:   20,
			EdgeMaxDistance:   60,
			BiasMargin:        6,
			BiasJitter:        0.5,
			MaxAttempts:       20,
			FallbackDistance:  25,
		},
		Look:   LookConfig{Blend: 0.7, Deadzone: 0.5, Sensitivity: 0.003},
		Player: PlayerConfig{MoveSpeed: 30, Damping: 10},
		Pickup: PickupConfig{Distance: 15, HoldOffset: [3]float32{0, -0.5, -3}, HoldSpin: [2]float32{0.6, 1.2}},
		Zone:   ZoneConfig{Center: [3]float32{0, 0, -20}, Radius: 8},
		Audio:  AudioConfig{Enabled: true, Volume: 0.5},
		Prefs:  Prefs{ShowFPS: true},
	}
}

// Load reads path over Default(). A missing file returns Default() and no
// error; a malformed one is an error. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy of c.
func (c Config) Clone() (Config, error) {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		return Config{}, fmt.Errorf("clone config: %w", err)
	}
	return out, nil
}

// Validate reports the first tunable that would break the game.
func (c Config) Validate() error {
	switch {
	case c.World.Size <= c.World.PlayerClearance:
		return fmt.Errorf("world.size %v must exceed player_clearance %v", c.World.Size, c.World.PlayerClearance)
	case c.World.Decorations < 0:
		return errors.New("world.decorations must not be negative")
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return fmt.Errorf("camera.fov_y %v must be in (0, 180)", c.Camera.FovY)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera near %v / far %v invalid", c.Camera.Near, c.Camera.Far)
	case c.Density.Target < 0 || c.Density.InitialPopulation < 0:
		return errors.New("density counts must not be negative")
	case c.Density.RetentionMargin < 0:
		return errors.New("density.retention_margin must not be negative")
	case c.Density.PendingRange <= 0:
		return errors.New("density.pending_range must be positive")
	case c.Spawn.HeightMin > c.Spawn.HeightMax:
		return errors.New("spawn.height_min exceeds height_max")
	case c.Spawn.EdgeMinAngle <= 0 || c.Spawn.EdgeMaxAngle > 180 || c.Spawn.EdgeMinAngle > c.Spawn.EdgeMaxAngle:
		return errors.New("spawn edge angles must satisfy 0 < min <= max <= 180")
	case c.Spawn.EdgeMinDistance <= 0 || c.Spawn.EdgeMinDistance > c.Spawn.EdgeMaxDistance:
		return errors.New("spawn edge distances must satisfy 0 < min <= max")
	case c.Spawn.MaxAttempts < 1:
		return errors.New("spawn.max_attempts must be at least 1")
	case c.Spawn.FallbackDistance <= 0:
		return errors.New("spawn.fallback_distance must be positive")
	case c.Look.Blend < 0 || c.Look.Blend >= 1:
		return fmt.Errorf("look.blend %v must be in [0, 1)", c.Look.Blend)
	case c.Pickup.Distance <= 0:
		return errors.New("pickup.distance must be positive")
	case c.Zone.Radius <= 0:
		return errors.New("zone.radius must be positive")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume %v must be in [0, 1]", c.Audio.Volume)
	}
	if _, err := c.DensityConfig(); err != nil {
		return err
	}
	return nil
}

// SpawnConfig converts the spawn and world sections for the placer.
func (c Config) SpawnConfig() spawn.Config {
	return spawn.Config{
		WorldSize:         c.World.Size,
		PlayerClearance:   c.World.PlayerClearance,
		HeightMin:         c.Spawn.HeightMin,
		HeightMax:         c.Spawn.HeightMax,
		ConeNear:          c.Spawn.ConeNear,
		ConeRange:         c.Spawn.ConeRange,
		ConeAngleFraction: c.Spawn.ConeAngleFraction,
		EdgeMinAngle:      c.Spawn.EdgeMinAngle,
		EdgeMaxAngle:      c.Spawn.EdgeMaxAngle,
		EdgeMinDistance:   c.Spawn.EdgeMinDistance,
		EdgeMaxDistance:   c.Spawn.EdgeMaxDistance,
		BiasMargin:        c.Spawn.BiasMargin,
		BiasJitter:        c.Spawn.BiasJitter,
		BiasDeadzone:      c.Look.Deadzone,
		MaxAttempts:       c.Spawn.MaxAttempts,
		FallbackDistance:  c.Spawn.FallbackDistance,
	}
}

// DensityConfig converts the density section for the controller.
func (c Config) DensityConfig() (density.Config, error) {
	s, err := spawn.ParseStrategy(c.Density.Strategy)
	if err != nil {
		return density.Config{}, err
	}
	if s == spawn.AheadCone {
		return density.Config{}, fmt.Errorf("density.strategy: %w", density.ErrConeAtRuntime)
	}
	return density.Config{
		TargetDensity: c.Density.Target,
		PendingRange:  c.Density.PendingRange,
		Strategy:      s,
		MaxSpin:       c.Density.MaxSpin,
	}, nil
}
