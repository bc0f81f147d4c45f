package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// flags may be nil.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()

	configPath := ""
	if flags != nil {
		configPath = flags.ConfigPath
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := LoadFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if flags != nil {
		flags.apply(cfg)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./oxy-build.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "OxyBuild")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "OxyBuild")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "oxy-build")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "oxy-build")
	}
}

// LoadFile merges a YAML file into cfg. Keys absent from the file keep their values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
