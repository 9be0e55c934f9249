package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"roomdrag/internal/placement"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config location, relative to the working directory.
const ConfigPath = "config/roomdrag.yaml"

var ErrInvalidConfig = errors.New("invalid config")

// Vec3 is written as a three-element YAML list.
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

type Config struct {
	ScenePath string    `yaml:"scene_path"`
	Placement Placement `yaml:"placement"`
	Camera    Camera    `yaml:"camera"`
	Window    Window    `yaml:"window"`
	Log       Log       `yaml:"log"`
}

type Placement struct {
	RestingHeight  float32 `yaml:"resting_height"`
	BoundaryMargin Vec3    `yaml:"boundary_margin"`
	CeilingPolicy  string  `yaml:"ceiling_policy"`
	MaxRayDistance float32 `yaml:"max_ray_distance"`
}

type Camera struct {
	Position    Vec3    `yaml:"position"`
	Target      Vec3    `yaml:"target"`
	Fovy        float32 `yaml:"fovy"`
	MaxPolarDeg float32 `yaml:"max_polar_deg"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default mirrors the original room: a 20x10x15 origin zone with 0.4 of
// slack in width and depth, and a camera up and to the side of it.
func Default() Config {
	return Config{
		Placement: Placement{
			RestingHeight:  3,
			BoundaryMargin: Vec3{0.4, 0, 0.4},
			CeilingPolicy:  "skip",
			MaxRayDistance: 1000,
		},
		Camera: Camera{
			Position:    Vec3{20, 20, 40},
			Target:      Vec3{0, 0, 0},
			Fovy:        70,
			MaxPolarDeg: 54.4,
			MinDistance: 5,
			MaxDistance: 500,
		},
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "roomdrag",
			TargetFPS: 60,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML config on top of Default(). A missing file is not an
// error; the defaults are returned as is.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := placement.ParseCeilingPolicy(c.Placement.CeilingPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for i, m := range c.Placement.BoundaryMargin {
		if m < 0 {
			return fmt.Errorf("%w: boundary_margin[%d] is negative", ErrInvalidConfig, i)
		}
	}
	if c.Placement.MaxRayDistance <= 0 {
		return fmt.Errorf("%w: max_ray_distance must be positive", ErrInvalidConfig)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return fmt.Errorf("%w: camera fovy %v out of range", ErrInvalidConfig, c.Camera.Fovy)
	}
	if c.Camera.MaxPolarDeg <= 0 || c.Camera.MaxPolarDeg > 90 {
		return fmt.Errorf("%w: max_polar_deg %v out of range", ErrInvalidConfig, c.Camera.MaxPolarDeg)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MinDistance >= c.Camera.MaxDistance {
		return fmt.Errorf("%w: camera distance range [%v, %v]", ErrInvalidConfig, c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.Position == c.Camera.Target {
		return fmt.Errorf("%w: camera position equals target", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Ceiling returns the parsed policy. Validate has already checked it.
func (p Placement) Ceiling() placement.CeilingPolicy {
	policy, _ := placement.ParseCeilingPolicy(p.CeilingPolicy)
	return policy
}

// ZapLevel returns the parsed level. Validate has already checked it.
func (l Log) ZapLevel() zapcore.Level {
	level, _ := zapcore.ParseLevel(l.Level)
	return level
}
