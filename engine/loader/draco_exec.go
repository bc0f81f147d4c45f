package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ExecDracoDecoder decodes Draco data by running the reference draco_decoder tool,
// which writes the mesh as Wavefront OBJ. Attribute ids are not needed since OBJ
// carries positions, normals and texture coordinates by kind.
type ExecDracoDecoder struct {
	// Path is the draco_decoder executable.
	Path string
}

var _ DracoDecoder = &ExecDracoDecoder{}

// NewExecDracoDecoder returns a decoder that runs the executable at path.
//
// Parameters:
//   - path: the draco_decoder executable
//
// Returns:
//   - *ExecDracoDecoder: the decoder
func NewExecDracoDecoder(path string) *ExecDracoDecoder {
	return &ExecDracoDecoder{Path: path}
}

func (d *ExecDracoDecoder) Decode(data []byte, attributes map[string]int) (*DracoPrimitive, error) {
	dir, err := os.MkdirTemp("", "oxy-draco-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "mesh.drc")
	out := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, err
	}

	var stderr bytes.Buffer
	cmd := exec.Command(d.Path, "-i", in, "-o", out)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", filepath.Base(d.Path), err, strings.TrimSpace(stderr.String()))
	}

	f, err := os.Open(out)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseOBJ(f)
}

// objCorner is one face corner: 0-based position, uv and normal indices, -1 when absent.
type objCorner [3]int

// parseOBJ reads the v, vt, vn and f records of a Wavefront OBJ stream and
// re-indexes them into a single vertex stream. Polygons are fan-triangulated.
func parseOBJ(r io.Reader) (*DracoPrimitive, error) {
	var (
		positions [][3]float32
		uvs       [][2]float32
		normals   [][3]float32
		out       DracoPrimitive
		seen      = map[objCorner]uint32{}
	)

	emit := func(c objCorner) uint32 {
		if i, ok := seen[c]; ok {
			return i
		}
		i := uint32(len(out.Positions))
		out.Positions = append(out.Positions, positions[c[0]])
		if c[1] >= 0 {
			out.UVs = append(out.UVs, uvs[c[1]])
		}
		if c[2] >= 0 {
			out.Normals = append(out.Normals, normals[c[2]])
		}
		seen[c] = i
		return i
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			positions = append(positions, [3]float32{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			uvs = append(uvs, [2]float32{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			normals = append(normals, [3]float32{v[0], v[1], v[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs 3 corners", line)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", line, err)
				}
				corners = append(corners, c)
			}
			for i := 1; i+1 < len(corners); i++ {
				out.Indices = append(out.Indices, emit(corners[0]), emit(corners[i]), emit(corners[i+1]))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out.Positions) == 0 {
		return nil, errors.New("obj has no faces")
	}
	// Mixed corners would misalign the attribute streams.
	if len(out.UVs) != 0 && len(out.UVs) != len(out.Positions) {
		out.UVs = nil
	}
	if len(out.Normals) != 0 && len(out.Normals) != len(out.Positions) {
		out.Normals = nil
	}
	return &out, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := range out {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses "p", "p/t", "p//n" or "p/t/n" with 1-based or negative indices.
func parseCorner(tok string, np, nt, nn int) (objCorner, error) {
	c := objCorner{-1, -1, -1}
	parts := strings.Split(tok, "/")
	counts := [3]int{np, nt, nn}
	for i, p := range parts {
		if i > 2 {
			break
		}
		if p == "" {
			continue
		}
		idx, err := strconv.Atoi(p)
		if err != nil {
			return c, fmt.Errorf("bad index %q", tok)
		}
		if idx < 0 {
			idx += counts[i]
		} else {
			idx--
		}
		if idx < 0 || idx >= counts[i] {
			return c, fmt.Errorf("index %q out of range", tok)
		}
		c[i] = idx
	}
	if c[0] < 0 {
		return c, fmt.Errorf("corner %q has no position", tok)
	}
	return c, nil
}
