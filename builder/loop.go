package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/Carmen-Shannon/oxy-build/engine/renderer"
	"github.com/Carmen-Shannon/oxy-build/engine/scene"
	"go.uber.org/zap"
)

// DefaultFrameInterval is the TickerFrames interval when none is set.
const DefaultFrameInterval = time.Second / 60

// FrameSource schedules frames. Run calls frame until it returns false, the source
// stops on its own, or ctx is done. window.Window satisfies it.
type FrameSource interface {
	Run(ctx context.Context, frame func() bool) error
}

// TickerFrames is a FrameSource driven by a time.Ticker, for running without a window.
type TickerFrames struct {
	// Interval is the time between frames. Zero means DefaultFrameInterval.
	Interval time.Duration

	// Limit stops the source after that many frames. Zero means no limit.
	Limit int
}

var _ FrameSource = TickerFrames{}

func (t TickerFrames) Run(ctx context.Context, frame func() bool) error {
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; t.Limit <= 0 || n < t.Limit; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if !frame() {
			return nil
		}
	}
	return nil
}

// FrameContext is what a frame hook sees.
type FrameContext struct {
	Scene    scene.Scene
	Camera   camera.Camera
	Renderer renderer.Renderer

	// Delta is the seconds since the previous frame, 0 on the first.
	Delta float32

	// Elapsed is the seconds since the first frame.
	Elapsed float32
}

// FrameHook runs at the start of every frame, before controls and animations advance.
type FrameHook func(fc FrameContext)

// Frame runs one frame: the hook, orbit controls damping, every mixer, picking when
// SetRaycaster was given a handler, then rendering.
//
// Parameters:
//   - hook: optional per-frame hook
//
// Returns:
//   - error: ErrMissingScene, ErrMissingCamera or ErrMissingRenderer when setup is
//     incomplete, or the render error
func (b *Builder) Frame(hook FrameHook) error {
	b.mu.Lock()
	if b.err != nil {
		err := b.err
		b.mu.Unlock()
		return err
	}
	s, cam, r := b.scene, b.camera, b.renderer
	oc := b.controls
	mixers := append(b.mixers[:0:0], b.mixers...)
	rc, onIntersect, pointer, selected := b.raycaster, b.onIntersect, b.pointer, b.selection
	prof := b.profiler
	b.mu.Unlock()

	switch {
	case s == nil:
		return ErrMissingScene
	case cam == nil:
		return ErrMissingCamera
	case r == nil:
		return ErrMissingRenderer
	}

	delta := b.clock.Delta()
	if hook != nil {
		hook(FrameContext{Scene: s, Camera: cam, Renderer: r, Delta: delta, Elapsed: b.clock.Elapsed()})
	}
	if oc != nil {
		oc.Update()
	}
	for _, m := range mixers {
		m.Update(delta)
	}

	// A nil handler disables picking.
	if rc != nil && onIntersect != nil {
		rc.SetFromCamera(pointer, cam)
		next := onIntersect(rc.IntersectObjects(s.Children(), true), selected)
		b.mu.Lock()
		b.selection = next
		b.mu.Unlock()
	}

	if err := r.Render(s, cam); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if prof != nil {
		prof.Tick()
	}
	return nil
}

// Animate runs frames from frames until the source stops, ctx is done, or a frame
// fails. A panic inside a frame is recovered and returned as an error.
//
// Parameters:
//   - ctx: stops the loop when done
//   - frames: the frame source, a window or TickerFrames
//   - hook: optional per-frame hook
//
// Returns:
//   - error: the first frame error, the frame source error, or nil
func (b *Builder) Animate(ctx context.Context, frames FrameSource, hook FrameHook) (err error) {
	b.mu.Lock()
	switch {
	case b.err != nil:
		err = b.err
	case b.scene == nil:
		err = ErrMissingScene
	case b.camera == nil:
		err = ErrMissingCamera
	case b.renderer == nil:
		err = ErrMissingRenderer
	}
	b.mu.Unlock()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render loop panic: %v", r)
			b.logger.Error("render loop panic", zap.Any("panic", r))
		}
	}()

	b.logger.Info("render loop started")
	var frameErr error
	runErr := frames.Run(ctx, func() bool {
		if frameErr = b.Frame(hook); frameErr != nil {
			b.logger.Error("frame failed", zap.Error(frameErr))
			return false
		}
		return true
	})
	b.logger.Info("render loop stopped")
	if frameErr != nil {
		return frameErr
	}
	return runErr
}
