package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	ConfigPath string
	Debug      bool
	Headless   bool
	Width      int
	Height     int
	AssetRoot  string
	Profile    bool
}

// RegisterFlags binds the override flags to fs and returns where they are stored.
// Call fs.Parse before Load.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Headless, "headless", false, "Render without a window")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.StringVar(&f.AssetRoot, "assets", "", "Directory model paths are resolved against")
	fs.BoolVar(&f.Profile, "profile", false, "Log frame statistics every second")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Headless {
		cfg.Renderer.Backend = "headless"
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.AssetRoot != "" {
		cfg.Loader.AssetRoot = f.AssetRoot
	}
	if f.Profile {
		cfg.Renderer.Profile = true
	}
}
