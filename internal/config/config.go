// Package config handles demo configuration loading and management.
package config

// Config holds all settings for the demo scene.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Renderer RendererConfig `yaml:"renderer"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls map[string]any `yaml:"controls"`
	Loader   LoaderConfig   `yaml:"loader"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// RendererConfig holds renderer settings.
type RendererConfig struct {
	// Backend is "wgpu" or "headless".
	Backend       string `yaml:"backend"`
	Antialias     bool   `yaml:"antialias"`
	Alpha         bool   `yaml:"alpha"`
	VSync         bool   `yaml:"vsync"`
	ForceSoftware bool   `yaml:"force_software"`

	// FPS is the frame rate of the headless ticker loop.
	FPS int `yaml:"fps"`

	Profile bool `yaml:"profile"`
}

// SceneConfig holds scene settings.
type SceneConfig struct {
	Background           uint32  `yaml:"background"`
	BackgroundBlurriness float32 `yaml:"background_blurriness"`
	AxesHelper           bool    `yaml:"axes_helper"`
}

// CameraConfig holds the initial camera.
type CameraConfig struct {
	// Type is "perspective" or "orthographic".
	Type     string     `yaml:"type"`
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

// LoaderConfig holds model loading settings.
type LoaderConfig struct {
	AssetRoot string `yaml:"asset_root"`

	// DracoDecoder is the path of an external draco_decoder executable.
	// Empty disables Draco-compressed models.
	DracoDecoder string `yaml:"draco_decoder"`

	Workers int           `yaml:"workers"`
	Models  []ModelConfig `yaml:"models"`
}

// ModelConfig names one model to load at startup.
type ModelConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Clip string `yaml:"clip"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "oxy-build",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			Backend:   "wgpu",
			Antialias: true,
			VSync:     true,
			FPS:       60,
		},
		Scene: SceneConfig{
			Background: 0xffffff,
			AxesHelper: true,
		},
		Camera: CameraConfig{
			Type:     "perspective",
			Fov:      45,
			Near:     1,
			Far:      1000,
			Position: [3]float32{0, 10, 30},
		},
		Controls: map[string]any{
			"enableDamping": true,
			"dampingFactor": 0.05,
		},
		Loader: LoaderConfig{
			AssetRoot: "assets",
			Workers:   2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
