package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stencil-mirror/internal/config"
	"github.com/Faultbox/stencil-mirror/internal/engine/input"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderer"
	"github.com/Faultbox/stencil-mirror/internal/logger"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// HeadlessDelta is the fixed frame time of headless runs.
const HeadlessDelta = 1.0 / 60

// Summary describes a finished headless run.
type Summary struct {
	Frames int
	Draws  int // draw calls issued over the whole run
	Last   PassStats
	Eye    math.Vec3
	Teapot math.Vec3
}

// RunHeadless renders frames into a Recorder at a fixed step with keys held
// throughout. It exercises the whole frame path without a window or GL.
func RunHeadless(cfg *config.Config, frames int, keys input.Keyboard) (Summary, error) {
	log := logger.Named("headless")

	scene, err := NewScene(cfg)
	if err != nil {
		return Summary{}, fmt.Errorf("building scene: %w", err)
	}

	rec := renderer.NewRecorder()
	if err := scene.Upload(rec); err != nil {
		return Summary{}, err
	}
	defer scene.Release(rec)
	rec.SetProjection(scene.Projection.Matrix(cfg.Graphics.Width, cfg.Graphics.Height))

	var sum Summary
	for i := 0; i < frames; i++ {
		rec.Reset()
		sum.Last = scene.Step(rec, keys, HeadlessDelta)
		sum.Draws += len(rec.Draws())
		sum.Frames++
	}
	sum.Eye = scene.Camera.Position()
	sum.Teapot = scene.Teapot.Position

	log.Info("headless run complete",
		zap.Int("frames", sum.Frames),
		zap.Int("draws", sum.Draws),
		zap.Int("mirror_faces", sum.Last.Faces),
		zap.Int("reflected", sum.Last.Drawn),
	)
	return sum, nil
}
