package builder

import (
	"context"

	"github.com/Carmen-Shannon/oxy-build/engine/loader"
	"go.uber.org/zap"
)

// LoadGLTF loads a glTF or GLB asset in the background. On success the model root is
// added to the scene and its mixer is registered before the future resolves. On
// failure the cause is logged and the future rejects with ErrModelLoad; nothing is
// attached. Without a scene the call fails immediately, recording ErrMissingScene.
//
// Parameters:
//   - ctx: cancels the load if done before it starts
//   - path: the asset path, relative to the loader's asset root
//   - name: the name given to the model root and its mixer
//
// Returns:
//   - *loader.Future: the pending model
func (b *Builder) LoadGLTF(ctx context.Context, path, name string) *loader.Future {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return loader.Rejected(b.err)
	}
	if !b.requireScene("LoadGLTF") {
		return loader.Rejected(b.err)
	}
	if b.closed {
		return loader.Rejected(loader.ErrLoaderClosed)
	}
	if b.loader == nil {
		options := append([]loader.LoaderBuilderOption{loader.WithLogger(b.logger)}, b.loaderOptions...)
		b.loader = loader.NewLoader(options...)
	}

	target := b.scene
	b.logger.Debug("loading model", zap.String("name", name), zap.String("path", path))
	return b.loader.LoadAsync(ctx, name, path, func(m *loader.Model) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		if m.Mixer != nil {
			b.mixers = append(b.mixers, m.Mixer)
		}
		target.Add(m.Root)
		b.logger.Info("model attached",
			zap.String("name", m.Name),
			zap.Int("clips", len(m.Clips)))
		return nil
	})
}
