// Package main is a demo scene assembled with the builder: a crate on a floor, a ring
// of orbs, lights, orbit controls, picking and any models listed in the config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-build/builder"
	"github.com/Carmen-Shannon/oxy-build/engine"
	"github.com/Carmen-Shannon/oxy-build/engine/animation"
	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/loader"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/Carmen-Shannon/oxy-build/engine/profiler"
	"github.com/Carmen-Shannon/oxy-build/engine/raycast"
	"github.com/Carmen-Shannon/oxy-build/engine/renderer"
	"github.com/Carmen-Shannon/oxy-build/engine/window"
	"github.com/Carmen-Shannon/oxy-build/internal/config"
	"github.com/Carmen-Shannon/oxy-build/internal/logger"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== oxy-build demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("demo closed normally")
}

// headlessContainer stands in for a window when rendering without one.
type headlessContainer struct {
	width, height int
}

func (h headlessContainer) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (h headlessContainer) Width() int                                 { return h.width }
func (h headlessContainer) Height() int                                { return h.height }
func (h headlessContainer) PixelRatio() float32                        { return 1 }
func (h headlessContainer) Size() (int, int)                           { return h.width, h.height }

func run(ctx context.Context, cfg *config.Config) error {
	lib := engine.NewLibrary(
		engine.WithLogger(logger.Engine()),
		engine.WithRendererOptions(rendererOptions(cfg.Renderer)...),
	)

	var (
		container builder.Container
		frames    builder.FrameSource
		win       window.Window
	)
	if cfg.Renderer.Backend == renderer.BackendTypeHeadless.String() {
		container = headlessContainer{width: cfg.Window.Width, height: cfg.Window.Height}
		frames = builder.TickerFrames{Interval: time.Second / time.Duration(max(cfg.Renderer.FPS, 1))}
	} else {
		w, err := window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithSize(cfg.Window.Width, cfg.Window.Height),
		)
		if err != nil {
			return fmt.Errorf("create window: %w", err)
		}
		defer w.Close()
		container, frames, win = w, w, w
	}

	loaderOptions := []loader.LoaderBuilderOption{
		loader.WithLogger(logger.Loader()),
		loader.WithAssetRoot(cfg.Loader.AssetRoot),
		loader.WithWorkers(cfg.Loader.Workers),
	}
	if cfg.Loader.DracoDecoder != "" {
		loaderOptions = append(loaderOptions, loader.WithDracoDecoder(loader.NewExecDracoDecoder(cfg.Loader.DracoDecoder)))
	}
	builderOptions := []builder.BuilderOption{
		builder.WithLogger(logger.Builder()),
		builder.WithLoaderOptions(loaderOptions...),
	}
	if cfg.Renderer.Profile {
		builderOptions = append(builderOptions, builder.WithProfiler(profiler.NewProfiler(profiler.WithLogger(logger.Profiler()))))
	}

	b := builder.New(lib, builderOptions...)
	defer b.Close()

	sceneOptions, err := builder.Merge(builder.DefaultSceneOptions(), builder.SceneOptions{
		Background:           cfg.Scene.Background,
		BackgroundBlurriness: cfg.Scene.BackgroundBlurriness,
	})
	if err != nil {
		return err
	}
	b.SetScene(sceneOptions)
	if cfg.Scene.AxesHelper {
		b.InitHelper()
	}
	b.SetWebGPURenderer(container, builder.RendererOptions{
		Antialias: cfg.Renderer.Antialias,
		Alpha:     cfg.Renderer.Alpha,
	})
	if err := setCamera(b, cfg.Camera, container); err != nil {
		return err
	}

	buildScene(b)
	if err := animateCrate(b); err != nil {
		return err
	}

	b.SetOrbitControls(builder.MergeOrbitControls(builder.DefaultOrbitControlsOptions(), cfg.Controls))
	b.SetRaycaster(func(hits []raycast.Intersection, selected node.Node) node.Node {
		var next node.Node
		if len(hits) > 0 {
			next = hits[0].Object
		}
		if next != selected && next != nil {
			logger.Debug("picked", zap.String("name", next.Name()), zap.Float32("distance", hits[0].Distance))
		}
		return next
	})
	if win != nil {
		b.BindInput(win)
	}
	if err := b.Err(); err != nil {
		return err
	}

	for _, m := range cfg.Loader.Models {
		go playModel(ctx, b.LoadGLTF(ctx, m.Path, m.Name), m)
	}

	err = b.Animate(ctx, frames, func(fc builder.FrameContext) {
		if orbs := fc.Scene.Child("orbs"); orbs != nil {
			orbs.SetRotation(0, fc.Elapsed*0.5, 0)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func rendererOptions(cfg config.RendererConfig) []renderer.RendererBuilderOption {
	options := []renderer.RendererBuilderOption{renderer.WithForceSoftwareRenderer(cfg.ForceSoftware)}
	if cfg.Backend == renderer.BackendTypeHeadless.String() {
		options = append(options, renderer.WithBackend(renderer.BackendTypeHeadless))
	}
	if cfg.VSync {
		options = append(options, renderer.WithPresentMode(renderer.PresentModeVSync))
	} else {
		options = append(options, renderer.WithPresentMode(renderer.PresentModeUncapped))
	}
	return options
}

func setCamera(b *builder.Builder, cfg config.CameraConfig, container builder.Container) error {
	if cfg.Type == "orthographic" {
		options, err := builder.Merge(builder.DefaultOrthographicCameraOptions(), builder.OrthographicCameraOptions{
			Near: cfg.Near, Far: cfg.Far,
			X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2],
			TargetX: cfg.Target[0], TargetY: cfg.Target[1], TargetZ: cfg.Target[2],
		})
		if err != nil {
			return err
		}
		b.SetOrthographicCamera(options)
		return nil
	}

	options, err := builder.Merge(builder.DefaultPerspectiveCameraOptions(), builder.PerspectiveCameraOptions{
		Fov: cfg.Fov, Near: cfg.Near, Far: cfg.Far,
		X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2],
		TargetX: cfg.Target[0], TargetY: cfg.Target[1], TargetZ: cfg.Target[2],
	})
	if err != nil {
		return err
	}
	if w, h := container.Size(); w > 0 && h > 0 {
		options.Aspect = float32(w) / float32(h)
	}
	b.SetPerspectiveCamera(options)
	return nil
}

// buildScene adds the floor, the crate, a group of orbs and the lights.
func buildScene(b *builder.Builder) {
	b.SetGeometry(func(lib engine.Library) geometry.Geometry {
		return lib.PlaneGeometry(40, 40)
	}).SetMaterial(func(lib engine.Library) material.Material {
		return lib.StandardMaterial(material.WithColorHex(0x808080), material.WithRoughness(0.9))
	}).SetMesh("floor", 0, 0, 0, false)
	if s := b.Scene(); s != nil {
		if floor := s.Child("floor"); floor != nil {
			floor.SetRotation(-math32.Pi/2, 0, 0)
		}
	}

	b.SetGeometry(func(lib engine.Library) geometry.Geometry {
		return lib.BoxGeometry(4, 4, 4)
	}).SetMaterial(func(lib engine.Library) material.Material {
		return lib.StandardMaterial(material.WithColorHex(0xc08040))
	}).SetMesh("crate", 0, 2, 0, false)

	for i := 0; i < 6; i++ {
		angle := float32(i) * 2 * math32.Pi / 6
		b.SetGeometry(func(lib engine.Library) geometry.Geometry {
			return lib.SphereGeometry(1, 16, 12)
		}).SetMaterial(func(lib engine.Library) material.Material {
			return lib.BasicMaterial(material.WithColorHex(0x3060ff))
		}).SetMesh(fmt.Sprintf("orb%d", i), 10*math32.Cos(angle), 3, 10*math32.Sin(angle), true)
	}
	b.AddMeshGroup("orbs")

	b.SetAmbientLight(0xffffff, 0.4, 0, 0, 0)
	spot := builder.DefaultSpotLightOptions()
	spot.Target = "crate"
	spot.X, spot.Y, spot.Z = 10, 25, 10
	b.SetSpotLight(spot)
}

// animateCrate bounces the crate and fades its color.
func animateCrate(b *builder.Builder) error {
	tracks, err := b.GetKeyframeTrack([]builder.KeyframeTrackOptions{
		builder.KeyframeTrackOption(animation.TrackTypeVector, "crate", "position",
			[]float32{0, 1, 2}, []float32{0, 2, 0, 0, 6, 0, 0, 2, 0}),
		builder.KeyframeTrackOption(animation.TrackTypeColor, "crate", "material.color",
			[]float32{0, 1, 2}, []float32{0.75, 0.5, 0.25, 1, 0.2, 0.2, 0.75, 0.5, 0.25}),
	})
	if err != nil {
		return err
	}
	b.AddAnimationMixer("crate", "crateMixer", "bounce", -1, tracks, func(a *animation.Action, _ engine.Library) {
		a.SetLoop(animation.LoopRepeat, animation.Infinite)
	})
	return nil
}

// playModel waits for a model and starts its configured clip.
func playModel(ctx context.Context, f *loader.Future, cfg config.ModelConfig) {
	m, err := f.Wait(ctx)
	if err != nil {
		logger.Warn("model not loaded", zap.String("name", cfg.Name), zap.Error(err))
		return
	}
	if cfg.Clip == "" {
		return
	}
	clip := m.Clip(cfg.Clip)
	if clip == nil {
		logger.Warn("clip not found", zap.String("model", m.Name), zap.String("clip", cfg.Clip))
		return
	}
	m.Mixer.ClipAction(clip).Play()
}
