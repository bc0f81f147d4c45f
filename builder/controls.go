package builder

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/controls"
	"go.uber.org/zap"
)

// SetOrbitControls creates the orbit controls on first use and applies options to them.
// Keys that are not controls properties are ignored. An empty options map only
// creates the controls.
//
// Parameters:
//   - options: property values keyed by name, see controls.PropertyNames
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetOrbitControls(options OrbitControlsOptions) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b
	}
	if b.camera == nil {
		return b.fail("SetOrbitControls", ErrMissingCamera)
	}
	if b.renderer == nil {
		return b.fail("SetOrbitControls", ErrMissingRenderer)
	}

	oc := b.controls
	if oc == nil {
		oc = controls.NewOrbitControls(b.camera, b.viewport())
	}
	if len(options) == 0 {
		b.controls = oc
		return b
	}

	known := controls.PropertyNames()
	props := make(map[string]any, len(options))
	for key, value := range options {
		if _, found := slices.BinarySearch(known, key); found {
			props[key] = value
		}
	}
	applied, err := oc.Apply(props)
	if err != nil {
		return b.fail("SetOrbitControls", fmt.Errorf("apply orbit controls options: %w", err))
	}
	oc.Update()
	b.controls = oc
	b.logger.Debug("orbit controls set", zap.Strings("applied", applied), zap.Int("ignored", len(options)-len(applied)))
	return b
}

// viewport returns the container, or the renderer when the renderer was set directly.
// Callers hold b.mu.
func (b *Builder) viewport() controls.Viewport {
	if b.container != nil {
		return b.container
	}
	return b.renderer
}

// InputSource delivers pointer, scroll and resize events. window.Window satisfies it.
type InputSource interface {
	SetMouseButtonCallback(callback func(button int, pressed bool, x, y float32))
	SetMouseMoveCallback(callback func(x, y float32))
	SetScrollCallback(callback func(delta float32))
	SetResizeCallback(callback func(width, height int))
}

// BindInput routes src events to the builder: pointer moves update the pick pointer,
// left drags rotate and right drags pan the orbit controls, scrolling dollies, and
// resizes update the renderer size and camera aspect.
//
// Parameters:
//   - src: the event source, usually the window passed to SetWebGPURenderer
//
// Returns:
//   - *Builder: the builder
func (b *Builder) BindInput(src InputSource) *Builder {
	var (
		dragButton = -1
		lastX      float32
		lastY      float32
	)

	src.SetMouseButtonCallback(func(button int, pressed bool, x, y float32) {
		if pressed {
			dragButton, lastX, lastY = button, x, y
		} else if button == dragButton {
			dragButton = -1
		}
		if oc := b.Controls(); oc != nil && button == common.MouseButtonLeft {
			oc.SetRotating(pressed)
		}
	})

	src.SetMouseMoveCallback(func(x, y float32) {
		b.OnPointerMove(x, y)
		oc := b.Controls()
		if oc == nil || dragButton < 0 {
			return
		}
		dx, dy := x-lastX, y-lastY
		lastX, lastY = x, y
		switch dragButton {
		case common.MouseButtonLeft:
			oc.Rotate(dx, dy)
		case common.MouseButtonRight, common.MouseButtonMiddle:
			oc.Pan(dx, dy)
		}
	})

	src.SetScrollCallback(func(delta float32) {
		if oc := b.Controls(); oc != nil {
			oc.Dolly(delta)
		}
	})

	src.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return
		}
		if r := b.Renderer(); r != nil {
			if err := r.SetSize(width, height); err != nil {
				b.logger.Warn("renderer resize failed", zap.Error(err))
			}
		}
		if cam := b.Camera(); cam != nil {
			cam.SetAspect(float32(width) / float32(height))
		}
	})
	return b
}
