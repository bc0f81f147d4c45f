package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"go.uber.org/zap"
)

var (
	// ErrModelLoad rejects an asynchronous load. The underlying cause is logged, not returned.
	ErrModelLoad = errors.New("model load failed")

	// ErrUnsupportedFormat is returned for file extensions no backend handles.
	ErrUnsupportedFormat = errors.New("unsupported model format")

	// ErrLoaderClosed is returned by loads started after Close.
	ErrLoaderClosed = errors.New("loader closed")
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu *sync.RWMutex

	cache     map[string]*importedModel
	backend   loaderBackend
	draco     DracoDecoder
	assetRoot string
	workers   int
	closed    bool

	pool   worker.DynamicWorkerPool
	taskID atomic.Int64

	logger *zap.Logger
}

// Loader imports glTF/GLB assets into fresh node graphs. Parsed documents are cached by
// resolved path, so repeated loads of one file skip parsing but still return new nodes.
type Loader interface {
	// Load imports the model at path synchronously.
	//
	// Parameters:
	//   - name: the root node name; empty derives it from the scene or file name
	//   - path: the model path, relative paths resolve against the asset root
	//
	// Returns:
	//   - *Model: the instantiated model
	//   - error: error if the format is unsupported or parsing fails
	Load(name, path string) (*Model, error)

	// LoadReader imports a model from a stream. Stream loads are not cached.
	//
	// Parameters:
	//   - name: the root node name
	//   - r: the reader providing model data
	//   - isGLB: true for GLB binary data
	//
	// Returns:
	//   - *Model: the instantiated model
	//   - error: error if parsing fails
	LoadReader(name string, r io.Reader, isGLB bool) (*Model, error)

	// LoadAsync imports the model on the loader's worker pool. onLoad, when set, runs on
	// the worker after a successful import and before the future resolves; an error from
	// onLoad rejects the future. Failures are logged and reject with ErrModelLoad.
	//
	// Parameters:
	//   - ctx: a load not yet started when ctx is done is rejected
	//   - name: the root node name
	//   - path: the model path
	//   - onLoad: optional hook run before resolution
	//
	// Returns:
	//   - *Future: settles with the model or ErrModelLoad
	LoadAsync(ctx context.Context, name, path string, onLoad func(*Model) error) *Future

	// Cached reports whether the document at path has already been parsed.
	//
	// Parameters:
	//   - path: the model path
	//
	// Returns:
	//   - bool: true if cached
	Cached(path string) bool

	// Close stops the worker pool. Pending asynchronous loads may never settle.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a loader for glTF 2.0 and GLB files.
//
// Parameters:
//   - options: functional options for the loader
//
// Returns:
//   - Loader: the loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:      &sync.RWMutex{},
		cache:   make(map[string]*importedModel),
		workers: 2,
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(l)
	}
	l.backend = newGLTFLoaderBackend(l.draco)
	l.pool = worker.NewDynamicWorkerPool(l.workers, 64, time.Second)
	return l
}

func (l *loader) Load(name, path string) (*Model, error) {
	resolved := l.resolve(path)
	if err := checkFormat(resolved); err != nil {
		return nil, err
	}

	l.mu.RLock()
	imp, ok := l.cache[resolved]
	l.mu.RUnlock()

	if !ok {
		var err error
		imp, err = l.backend.Load(resolved)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		l.logWarnings(resolved, imp)

		l.mu.Lock()
		l.cache[resolved] = imp
		l.mu.Unlock()
	}

	return instantiate(imp, modelName(name, imp, resolved), l.logger)
}

func (l *loader) LoadReader(name string, r io.Reader, isGLB bool) (*Model, error) {
	imp, err := l.backend.LoadReader(r, isGLB, l.assetRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}
	l.logWarnings(name, imp)
	return instantiate(imp, modelName(name, imp, ""), l.logger)
}

func (l *loader) LoadAsync(ctx context.Context, name, path string, onLoad func(*Model) error) *Future {
	l.mu.RLock()
	closed := l.closed
	l.mu.RUnlock()
	if closed {
		return Rejected(ErrLoaderClosed)
	}

	f := newFuture()
	id := int(l.taskID.Add(1))
	l.pool.SubmitTask(worker.Task{
		ID:      id,
		Payload: path,
		Do: func() (any, error) {
			m, err := l.loadTask(ctx, name, path, onLoad)
			if err != nil {
				l.logger.Error("model load failed",
					zap.Int("task", id),
					zap.String("name", name),
					zap.String("path", path),
					zap.Error(err))
				f.settle(nil, ErrModelLoad)
				return nil, err
			}
			l.logger.Debug("model loaded", zap.String("name", m.Name), zap.String("path", path), zap.Int("clips", len(m.Clips)))
			f.settle(m, nil)
			return m, nil
		},
	})
	return f
}

func (l *loader) loadTask(ctx context.Context, name, path string, onLoad func(*Model) error) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := l.Load(name, path)
	if err != nil {
		return nil, err
	}
	if onLoad != nil {
		if err := onLoad(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (l *loader) Cached(path string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.cache[l.resolve(path)]
	return ok
}

func (l *loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.pool.Stop()
}

// resolve joins relative paths onto the asset root.
func (l *loader) resolve(path string) string {
	if l.assetRoot == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.assetRoot, path)
}

func (l *loader) logWarnings(source string, imp *importedModel) {
	for _, w := range imp.warnings {
		l.logger.Warn("skipped glTF content", zap.String("source", source), zap.String("detail", w))
	}
}

func checkFormat(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gltf", ".glb":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// modelName picks the explicit name, then the glTF scene name, then the file name.
func modelName(name string, imp *importedModel, path string) string {
	switch {
	case name != "":
		return name
	case imp.name != "":
		return imp.name
	case path != "":
		base := filepath.Base(path)
		return strings.TrimSuffix(base, filepath.Ext(base))
	default:
		return "model"
	}
}
