package loader

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-build/common"
)

// ErrDracoDecoderMissing is returned for Draco-compressed primitives when no decoder is registered.
var ErrDracoDecoderMissing = errors.New("draco-compressed primitive requires a DracoDecoder")

// importedModel is the CPU-side result of parsing one glTF document. It holds no
// scene-graph nodes so the same import can be instantiated any number of times.
type importedModel struct {
	name      string
	roots     []int
	nodes     []importedNode
	materials []importedMaterial
	clips     []importedClip

	// warnings lists content that was skipped, for the caller to log.
	warnings []string
}

type importedNode struct {
	name       string
	position   [3]float32
	quaternion [4]float32
	scale      [3]float32
	primitives []importedPrimitive
	children   []int
}

type importedPrimitive struct {
	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32
	indices   []uint32

	// material is an index into importedModel.materials, or -1 for the default material.
	material int
}

type importedMaterial struct {
	name        string
	color       [3]float32
	opacity     float32
	emissive    [3]float32
	metallic    float32
	roughness   float32
	transparent bool
	doubleSided bool
}

// gltfSceneExtractor converts the parsed document's node hierarchy, meshes and
// materials into importedModel form.
type gltfSceneExtractor struct {
	parser *gltfParser
	draco  DracoDecoder
}

func newGLTFSceneExtractor(parser *gltfParser, draco DracoDecoder) *gltfSceneExtractor {
	return &gltfSceneExtractor{parser: parser, draco: draco}
}

// Extract builds the importedModel for the document's default scene.
//
// Returns:
//   - *importedModel: the model without clips
//   - error: error if a node, mesh or accessor is malformed
func (e *gltfSceneExtractor) Extract() (*importedModel, error) {
	doc := e.parser.document
	for _, ext := range doc.ExtensionsRequired {
		if ext == ExtensionDracoMeshCompression {
			if e.draco == nil {
				return nil, ErrDracoDecoderMissing
			}
			continue
		}
		return nil, fmt.Errorf("unsupported required extension %q", ext)
	}

	m := &importedModel{roots: e.rootNodes()}
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		m.name = doc.Scenes[*doc.Scene].Name
	}

	for i := range doc.Materials {
		m.materials = append(m.materials, extractMaterial(&doc.Materials[i], i))
	}

	m.nodes = make([]importedNode, len(doc.Nodes))
	for i := range doc.Nodes {
		n, err := e.extractNode(i, m)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		m.nodes[i] = n
	}
	return m, nil
}

// rootNodes returns the default scene's roots, or every node that is nobody's child
// when the document declares no scenes.
func (e *gltfSceneExtractor) rootNodes() []int {
	doc := e.parser.document
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			idx = *doc.Scene
		}
		return append([]int(nil), doc.Scenes[idx].Nodes...)
	}

	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func (e *gltfSceneExtractor) extractNode(index int, m *importedModel) (importedNode, error) {
	doc := e.parser.document
	src := &doc.Nodes[index]

	n := importedNode{
		name:       gltfNodeName(doc, index),
		quaternion: [4]float32{0, 0, 0, 1},
		scale:      [3]float32{1, 1, 1},
	}
	for _, c := range src.Children {
		if c < 0 || c >= len(doc.Nodes) || c == index {
			return n, fmt.Errorf("invalid child index %d", c)
		}
		n.children = append(n.children, c)
	}

	if src.Matrix != nil {
		n.position, n.quaternion, n.scale = common.DecomposeMatrix(*src.Matrix)
	} else {
		if src.Translation != nil {
			n.position = *src.Translation
		}
		if src.Rotation != nil {
			n.quaternion = common.Normalize4(*src.Rotation)
		}
		if src.Scale != nil {
			n.scale = *src.Scale
		}
	}

	if src.Mesh == nil {
		return n, nil
	}
	if *src.Mesh < 0 || *src.Mesh >= len(doc.Meshes) {
		return n, fmt.Errorf("mesh index %d out of range", *src.Mesh)
	}
	for pi := range doc.Meshes[*src.Mesh].Primitives {
		prim := &doc.Meshes[*src.Mesh].Primitives[pi]
		if prim.Mode != nil && *prim.Mode != gltfPrimitiveModeTriangles {
			m.warnings = append(m.warnings, fmt.Sprintf("%s: primitive %d has non-triangle mode %d", n.name, pi, *prim.Mode))
			continue
		}
		p, err := e.extractPrimitive(prim)
		if err != nil {
			return n, fmt.Errorf("mesh %d primitive %d: %w", *src.Mesh, pi, err)
		}
		if p.material >= len(m.materials) {
			p.material = -1
		}
		n.primitives = append(n.primitives, p)
	}
	return n, nil
}

func (e *gltfSceneExtractor) extractPrimitive(prim *gltfPrimitive) (importedPrimitive, error) {
	p := importedPrimitive{material: -1}
	if prim.Material != nil {
		p.material = *prim.Material
	}

	if raw, ok := prim.Extensions[ExtensionDracoMeshCompression]; ok {
		return e.decodeDraco(raw, p)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return p, errors.New("primitive has no POSITION attribute")
	}
	positions, n, err := e.parser.readFloats(posIdx)
	if err != nil {
		return p, fmt.Errorf("POSITION: %w", err)
	}
	if n != 3 {
		return p, fmt.Errorf("POSITION has %d components", n)
	}
	p.positions = toVec3(positions)

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, n, err := e.parser.readFloats(idx); err == nil && n == 3 {
			p.normals = toVec3(normals)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, n, err := e.parser.readFloats(idx); err == nil && n == 2 {
			p.uvs = toVec2(uvs)
		}
	}

	if prim.Indices != nil {
		if p.indices, err = e.parser.readIndices(*prim.Indices); err != nil {
			return p, fmt.Errorf("indices: %w", err)
		}
	}
	return p, nil
}

func (e *gltfSceneExtractor) decodeDraco(raw json.RawMessage, p importedPrimitive) (importedPrimitive, error) {
	if e.draco == nil {
		return p, ErrDracoDecoderMissing
	}
	var ext gltfDracoExtension
	if err := json.Unmarshal(raw, &ext); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", ExtensionDracoMeshCompression, err)
	}
	data, err := e.parser.bufferView(ext.BufferView)
	if err != nil {
		return p, err
	}
	decoded, err := e.draco.Decode(data, ext.Attributes)
	if err != nil {
		return p, fmt.Errorf("draco decode: %w", err)
	}
	if decoded == nil || len(decoded.Positions) == 0 {
		return p, errors.New("draco decoder returned no positions")
	}
	p.positions = decoded.Positions
	p.normals = decoded.Normals
	p.uvs = decoded.UVs
	p.indices = decoded.Indices
	return p, nil
}

func extractMaterial(src *gltfMaterial, index int) importedMaterial {
	mat := importedMaterial{
		name:        src.Name,
		color:       [3]float32{1, 1, 1},
		opacity:     1,
		metallic:    1,
		roughness:   1,
		transparent: src.AlphaMode == "BLEND",
		doubleSided: src.DoubleSided,
	}
	if mat.name == "" {
		mat.name = fmt.Sprintf("material_%d", index)
	}
	if src.EmissiveFactor != nil {
		mat.emissive = *src.EmissiveFactor
	}
	if pbr := src.PbrMetallicRoughness; pbr != nil {
		if pbr.BaseColorFactor != nil {
			c := *pbr.BaseColorFactor
			mat.color = [3]float32{c[0], c[1], c[2]}
			mat.opacity = c[3]
		}
		if pbr.MetallicFactor != nil {
			mat.metallic = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			mat.roughness = *pbr.RoughnessFactor
		}
	}
	return mat
}

// gltfNodeName returns the node's name, or node_<index> for unnamed nodes.
func gltfNodeName(doc *gltfDocument, index int) string {
	if name := doc.Nodes[index].Name; name != "" {
		return name
	}
	return fmt.Sprintf("node_%d", index)
}

func toVec3(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/3)
	for i := range out {
		out[i] = [3]float32{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return out
}

func toVec2(flat []float32) [][2]float32 {
	out := make([][2]float32, len(flat)/2)
	for i := range out {
		out[i] = [2]float32{flat[i*2], flat[i*2+1]}
	}
	return out
}
