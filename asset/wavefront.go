package asset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alucas2/raytracing-potato/log"
	"github.com/alucas2/raytracing-potato/scene"
	"github.com/alucas2/raytracing-potato/types"
)

var wavefrontLogger = log.New("wavefront")

// A vertex reference inside a face statement: position index plus optional
// texcoord and normal indices, all 0-based after parsing.
type wavefrontIndex struct {
	position int
	texcoord int // -1 when absent
	normal   int // -1 when absent
}

// Read a triangle mesh from a wavefront object stream. Only the v, vn, vt
// and f statements are interpreted; faces must be triangles. Vertices are
// deduplicated on their full v/vt/vn triplet. The mesh material defaults to
// id 0 and is meant to be patched by the caller.
func ReadMesh(r io.Reader) (*scene.Mesh, error) {
	start := time.Now()

	var positions []types.Vec3
	var normals []types.Vec3
	var texcoords []types.Vec2

	mesh := &scene.Mesh{Material: scene.MaterialId(0)}
	uniqueVertices := make(map[wavefrontIndex]uint32)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("asset: line %d: %v", lineNum, err)
			}
			positions = append(positions, types.XYZ(v[0], v[1], v[2]))
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("asset: line %d: %v", lineNum, err)
			}
			normals = append(normals, types.XYZ(v[0], v[1], v[2]))
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("asset: line %d: %v", lineNum, err)
			}
			texcoords = append(texcoords, types.XY(v[0], v[1]))
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("asset: line %d: non-triangular faces are not supported", lineNum)
			}
			for _, token := range fields[1:] {
				index, err := parseIndex(token)
				if err != nil {
					return nil, fmt.Errorf("asset: line %d: %v", lineNum, err)
				}

				vertexIndex, seen := uniqueVertices[index]
				if !seen {
					vertex, err := buildVertex(index, positions, normals, texcoords)
					if err != nil {
						return nil, fmt.Errorf("asset: line %d: %v", lineNum, err)
					}
					vertexIndex = uint32(len(mesh.Vertices))
					uniqueVertices[index] = vertexIndex
					mesh.Vertices = append(mesh.Vertices, vertex)
				}
				mesh.Indices = append(mesh.Indices, vertexIndex)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("asset: mesh contains no faces")
	}

	wavefrontLogger.Debugf(
		"parsed mesh in %d ms: %d vertices, %d triangles",
		time.Since(start).Nanoseconds()/1e6,
		len(mesh.Vertices), len(mesh.Indices)/3,
	)
	return mesh, nil
}

// Load a triangle mesh from a wavefront object file.
func LoadMesh(path string) (*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMesh(bufio.NewReader(f))
}

func parseFloats(fields []string, count int) ([]float64, error) {
	if len(fields) < count {
		return nil, fmt.Errorf("expected %d coordinates; got %d", count, len(fields))
	}
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Parse a face vertex token of the form "p", "p/t", "p//n" or "p/t/n" with
// 1-based indices.
func parseIndex(token string) (wavefrontIndex, error) {
	index := wavefrontIndex{texcoord: -1, normal: -1}
	parts := strings.Split(token, "/")

	if len(parts) == 0 || parts[0] == "" {
		return index, fmt.Errorf("position index not provided in %q", token)
	}
	p, err := strconv.Atoi(parts[0])
	if err != nil {
		return index, err
	}
	index.position = p - 1

	if len(parts) > 1 && parts[1] != "" {
		t, err := strconv.Atoi(parts[1])
		if err != nil {
			return index, err
		}
		index.texcoord = t - 1
	}
	if len(parts) > 2 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return index, err
		}
		index.normal = n - 1
	}
	return index, nil
}

func buildVertex(index wavefrontIndex, positions, normals []types.Vec3, texcoords []types.Vec2) (scene.Vertex, error) {
	var vertex scene.Vertex
	if index.position < 0 || index.position >= len(positions) {
		return vertex, fmt.Errorf("position index %d out of range", index.position+1)
	}
	vertex.Position = positions[index.position]

	if index.normal >= 0 {
		if index.normal >= len(normals) {
			return vertex, fmt.Errorf("normal index %d out of range", index.normal+1)
		}
		vertex.Normal = normals[index.normal]
	}
	if index.texcoord >= 0 {
		if index.texcoord >= len(texcoords) {
			return vertex, fmt.Errorf("texcoord index %d out of range", index.texcoord+1)
		}
		vertex.UV = texcoords[index.texcoord]
	}
	return vertex, nil
}
