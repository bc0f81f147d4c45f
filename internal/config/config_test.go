package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "wgpu", cfg.Renderer.Backend)
	assert.True(t, cfg.Renderer.Antialias)
	assert.Equal(t, uint32(0xffffff), cfg.Scene.Background)
	assert.Equal(t, "perspective", cfg.Camera.Type)
	assert.Equal(t, float32(45), cfg.Camera.Fov)
	assert.Equal(t, true, cfg.Controls["enableDamping"])
	assert.Equal(t, 2, cfg.Loader.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
window:
  width: 1920
renderer:
  backend: headless
  fps: 30
scene:
  background: 0x202020
camera:
  type: orthographic
  position: [1, 2, 3]
controls:
  autoRotate: true
loader:
  asset_root: /srv/models
  draco_decoder: /usr/bin/draco_decoder
  models:
    - name: fox
      path: fox.glb
      clip: Walk
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := Load(&Flags{ConfigPath: configPath})
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, "headless", cfg.Renderer.Backend)
	assert.Equal(t, 30, cfg.Renderer.FPS)
	assert.Equal(t, uint32(0x202020), cfg.Scene.Background)
	assert.Equal(t, "orthographic", cfg.Camera.Type)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, true, cfg.Controls["autoRotate"])
	assert.Equal(t, "/srv/models", cfg.Loader.AssetRoot)
	assert.Equal(t, "/usr/bin/draco_decoder", cfg.Loader.DracoDecoder)
	require.Len(t, cfg.Loader.Models, 1)
	assert.Equal(t, ModelConfig{Name: "fox", Path: "fox.glb", Clip: "Walk"}, cfg.Loader.Models[0])
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(&Flags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestFlagsOverrideFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", configPath, "-width", "1024", "-headless", "-debug", "-assets", "models", "-profile"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "headless", cfg.Renderer.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "models", cfg.Loader.AssetRoot)
	assert.True(t, cfg.Renderer.Profile)
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Window.Title = "saved"
	cfg.Loader.Models = []ModelConfig{{Name: "box", Path: "box.gltf"}}
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, LoadFile(loaded, path))
	assert.Equal(t, "saved", loaded.Window.Title)
	assert.Equal(t, cfg.Loader.Models, loaded.Loader.Models)
	assert.Equal(t, cfg.Camera, loaded.Camera)
}
