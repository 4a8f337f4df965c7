// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/internal/logger"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Mirror shapes.
const (
	ShapeBox    = "box"
	ShapeSphere = "sphere"
)

// Reflection plane modes.
const (
	// PlaneFixed reflects every mirror face through the mirror's local z=0 plane.
	PlaneFixed = "fixed"
	// PlaneFace reflects through the plane spanned by each face's corners.
	PlaneFace = "face"
)

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Watch    bool           `yaml:"watch" toml:"watch"` // reload scene tunables when the file changes
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Fullscreen bool    `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool    `yaml:"vsync" toml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit" toml:"fps_limit"`
	FOVDegrees float32 `yaml:"fov_degrees" toml:"fov_degrees"`

	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// SceneConfig holds the initial scene layout and its tunables.
type SceneConfig struct {
	Teapot TeapotConfig `yaml:"teapot" toml:"teapot"`
	Mirror MirrorConfig `yaml:"mirror" toml:"mirror"`
	Camera CameraConfig `yaml:"camera" toml:"camera"`
	Rates  RatesConfig  `yaml:"rates" toml:"rates"`
	Light  LightConfig  `yaml:"light" toml:"light"`
}

// TeapotConfig places the teapot.
type TeapotConfig struct {
	Position [3]float32 `yaml:"position" toml:"position"`
	Material string     `yaml:"material" toml:"material"`
}

// MirrorConfig describes the mirror object and the reflection policy.
type MirrorConfig struct {
	Shape         string     `yaml:"shape" toml:"shape"`
	Position      [3]float32 `yaml:"position" toml:"position"`
	Size          float32    `yaml:"size" toml:"size"` // box edge length
	SphereRadius  float32    `yaml:"sphere_radius" toml:"sphere_radius"`
	SphereSlices  int        `yaml:"sphere_slices" toml:"sphere_slices"`
	SphereStacks  int        `yaml:"sphere_stacks" toml:"sphere_stacks"`
	Material      string     `yaml:"material" toml:"material"`
	PlaneMode     string     `yaml:"plane_mode" toml:"plane_mode"`
	SkipBackFaces bool       `yaml:"skip_back_faces" toml:"skip_back_faces"`
}

// CameraConfig is the initial orbit placement.
type CameraConfig struct {
	Angle  float32 `yaml:"angle" toml:"angle"` // radians
	Radius float32 `yaml:"radius" toml:"radius"`
	Height float32 `yaml:"height" toml:"height"`
}

// RatesConfig holds per-second input rates.
type RatesConfig struct {
	Angular float32 `yaml:"angular" toml:"angular"` // radians per second
	Zoom    float32 `yaml:"zoom" toml:"zoom"`       // units per second
	Teapot  float32 `yaml:"teapot" toml:"teapot"`   // units per second
}

// LightConfig holds the directional light.
type LightConfig struct {
	Direction [3]float32 `yaml:"direction" toml:"direction"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      640,
			Height:     480,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			FOVDegrees: 45,

			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Teapot: TeapotConfig{
				Position: [3]float32{0, 0, -7},
				Material: "yellow",
			},
			Mirror: MirrorConfig{
				Shape:         ShapeBox,
				Position:      [3]float32{0, 0, 0},
				Size:          2,
				SphereRadius:  5,
				SphereSlices:  16,
				SphereStacks:  16,
				Material:      "white",
				PlaneMode:     PlaneFixed,
				SkipBackFaces: true,
			},
			Camera: CameraConfig{
				Angle:  float32(3 * gomath.Pi / 2),
				Radius: 17,
				Height: 1,
			},
			Rates: RatesConfig{
				Angular: 0.5,
				Zoom:    4,
				Teapot:  3,
			},
			Light: LightConfig{
				Direction: [3]float32{1, -1, 1},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Watch: true,
	}
}

// Validate checks settings that would otherwise fail at startup.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FOVDegrees <= 0 || c.Graphics.FOVDegrees >= 180 {
		return fmt.Errorf("%w: fov %.1f", ErrInvalid, c.Graphics.FOVDegrees)
	}

	m := c.Scene.Mirror
	switch m.Shape {
	case ShapeBox:
		if m.Size <= 0 {
			return fmt.Errorf("%w: mirror size %.2f", ErrInvalid, m.Size)
		}
	case ShapeSphere:
		if m.SphereRadius <= 0 || m.SphereSlices < 3 || m.SphereStacks < 2 {
			return fmt.Errorf("%w: sphere %.2f/%d/%d", ErrInvalid, m.SphereRadius, m.SphereSlices, m.SphereStacks)
		}
	default:
		return fmt.Errorf("%w: mirror shape %q", ErrInvalid, m.Shape)
	}

	switch m.PlaneMode {
	case PlaneFixed, PlaneFace:
	default:
		return fmt.Errorf("%w: plane mode %q", ErrInvalid, m.PlaneMode)
	}

	if _, ok := material.ByName(m.Material); !ok {
		return fmt.Errorf("%w: mirror material %q", ErrInvalid, m.Material)
	}
	if _, ok := material.ByName(c.Scene.Teapot.Material); !ok {
		return fmt.Errorf("%w: teapot material %q", ErrInvalid, c.Scene.Teapot.Material)
	}

	d := c.Scene.Light.Direction
	if d[0] == 0 && d[1] == 0 && d[2] == 0 {
		return fmt.Errorf("%w: zero light direction", ErrInvalid)
	}
	if c.Scene.Camera.Radius <= 0 {
		return fmt.Errorf("%w: camera radius %.2f", ErrInvalid, c.Scene.Camera.Radius)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
