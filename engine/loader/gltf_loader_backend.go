package loader

import (
	"fmt"
	"io"
)

// gltfLoaderBackend is the loaderBackend for .gltf and .glb files.
type gltfLoaderBackend struct {
	draco DracoDecoder
}

var _ loaderBackend = &gltfLoaderBackend{}

func newGLTFLoaderBackend(draco DracoDecoder) *gltfLoaderBackend {
	return &gltfLoaderBackend{draco: draco}
}

func (b *gltfLoaderBackend) Load(path string) (*importedModel, error) {
	parser, err := parseGLTFFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return b.importFromParser(parser)
}

func (b *gltfLoaderBackend) LoadReader(r io.Reader, isGLB bool, baseDir string) (*importedModel, error) {
	parser, err := parseGLTFReader(r, isGLB, baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to parse from reader: %w", err)
	}
	return b.importFromParser(parser)
}

// importFromParser runs the scene and animation extractors over a parsed document.
func (b *gltfLoaderBackend) importFromParser(parser *gltfParser) (*importedModel, error) {
	m, err := newGLTFSceneExtractor(parser, b.draco).Extract()
	if err != nil {
		return nil, fmt.Errorf("scene extraction failed: %w", err)
	}

	clips, warnings, err := newGLTFAnimationExtractor(parser).ExtractAll()
	if err != nil {
		return nil, fmt.Errorf("animation extraction failed: %w", err)
	}
	m.clips = clips
	m.warnings = append(m.warnings, warnings...)
	return m, nil
}
