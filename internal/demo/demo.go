package demo

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stencil-mirror/internal/config"
	"github.com/Faultbox/stencil-mirror/internal/engine/debug"
	"github.com/Faultbox/stencil-mirror/internal/engine/input"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderer"
	"github.com/Faultbox/stencil-mirror/internal/engine/window"
	"github.com/Faultbox/stencil-mirror/internal/logger"
)

// Title is the window title.
const Title = "Stencil Mirror"

// Demo owns the window, GL device and scene, and runs the frame loop.
type Demo struct {
	config  *config.Config
	window  *window.Window
	device  *renderer.GL
	input   *input.Input
	scene   *Scene
	watcher *config.Watcher
	capture *debug.Capture
	log     *zap.Logger

	debug bool
}

// New opens the window, creates the GL device and uploads the scene.
// configPath is watched for changes when cfg.Watch is set; pass "" to disable.
func New(cfg *config.Config, configPath string) (*Demo, error) {
	d := &Demo{
		config: cfg,
		log:    logger.Named("demo"),
		debug:  cfg.Logging.Level == "debug",
	}

	scene, err := NewScene(cfg)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	d.scene = scene

	// Create window (this also creates OpenGL context)
	d.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create device (AFTER window, since OpenGL context must exist)
	width, height := d.window.GetSize()
	d.device, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := d.scene.Upload(d.device); err != nil {
		d.device.Close()
		d.window.Close()
		return nil, err
	}
	d.resize(width, height)

	d.input = input.New()
	d.capture = debug.NewCapture(cfg.Graphics.ScreenshotDir, "mirror")

	if cfg.Watch && configPath != "" {
		w, err := config.Watch(configPath)
		if err != nil {
			// Hot reload is a convenience; run without it.
			d.log.Warn("config watch disabled", zap.Error(err))
		} else {
			d.watcher = w
		}
	}

	d.log.Info("demo initialized",
		zap.Int("teapot_faces", d.scene.Teapot.Mesh.FaceCount()),
		zap.Int("mirror_faces", d.scene.Mirror.Mesh.FaceCount()),
		zap.Stringer("plane_mode", d.scene.Policy.PlaneMode),
		zap.Bool("skip_back_faces", d.scene.Policy.SkipBackFaces),
	)
	return d, nil
}

// Run runs the frame loop until the window is closed or Escape is pressed.
func (d *Demo) Run() error {
	var frameBudget time.Duration
	if d.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(d.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	d.log.Info("starting frame loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		stats, ok := d.Frame(dt)
		if !ok {
			return nil
		}
		d.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			d.window.SetTitle(fmt.Sprintf("%s - %d FPS", Title, frameCount))
			d.log.Debug("frame",
				zap.Int("fps", frameCount),
				zap.Int("reflected", stats.Drawn),
				zap.Int("back_facing", stats.SkippedBackFacing),
				zap.Int("degenerate", stats.SkippedDegenerate),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if spent := time.Since(now); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}
}

// Frame processes input and renders one frame. It returns false when the
// demo should stop.
func (d *Demo) Frame(dt float64) (PassStats, bool) {
	if d.input.Update() {
		return PassStats{}, false
	}
	for _, e := range d.input.Events() {
		if e.Type == input.EventWindowResize {
			d.resize(e.Width, e.Height)
		}
	}
	if d.input.Pressed(input.KeyEscape) {
		return PassStats{}, false
	}

	d.applyReloads()

	stats := d.scene.Step(d.device, d.input, dt)
	d.captureFrame()

	if d.debug {
		if err := d.device.CheckError(); err != nil {
			d.log.Warn("GL error", zap.Error(err))
		}
	}
	return stats, true
}

// captureFrame saves the back buffer on F12 and the stencil mask on F11.
// It must run before the buffers are swapped.
func (d *Demo) captureFrame() {
	var (
		path string
		err  error
	)
	switch {
	case d.input.JustPressed(input.KeyF12):
		path, err = d.capture.SaveColor(d.device.ReadColor())
	case d.input.JustPressed(input.KeyF11):
		path, err = d.capture.SaveStencil(d.device.ReadStencil())
	default:
		return
	}
	if err != nil {
		d.log.Warn("capture failed", zap.Error(err))
		return
	}
	d.log.Info("frame captured", zap.String("path", path))
}

// applyReloads drains a pending config reload without blocking.
func (d *Demo) applyReloads() {
	if d.watcher == nil {
		return
	}
	select {
	case cfg := <-d.watcher.Updates():
		if err := d.scene.Apply(cfg); err != nil {
			d.log.Warn("config reload ignored", zap.Error(err))
			return
		}
		d.resize(d.window.GetSize())
		d.log.Info("config reloaded",
			zap.Stringer("plane_mode", d.scene.Policy.PlaneMode),
			zap.Bool("skip_back_faces", d.scene.Policy.SkipBackFaces),
		)
	default:
	}
}

func (d *Demo) resize(width, height int) {
	d.device.Resize(width, height)
	d.device.SetProjection(d.scene.Projection.Matrix(width, height))
}

// Close releases the scene, device and window.
func (d *Demo) Close() {
	d.log.Info("closing demo")

	if d.watcher != nil {
		if err := d.watcher.Close(); err != nil {
			d.log.Warn("closing config watcher", zap.Error(err))
		}
	}
	if d.device != nil {
		d.scene.Release(d.device)
		d.device.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}
