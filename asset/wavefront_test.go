package asset

import (
	"strings"
	"testing"

	"github.com/alucas2/raytracing-potato/types"
)

const sampleObj = `
# a unit square made of two triangles
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

func TestReadMesh(t *testing.T) {
	mesh, err := ReadMesh(strings.NewReader(sampleObj))
	if err != nil {
		t.Fatalf("expected no error; got %v", err)
	}

	// The shared corners 1/1/1 and 3/3/1 are deduplicated
	if len(mesh.Vertices) != 4 {
		t.Fatalf("expected 4 unique vertices; got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 6 {
		t.Fatalf("expected 6 indices; got %d", len(mesh.Indices))
	}
	if got := len(mesh.Triangles()); got != 2 {
		t.Fatalf("expected 2 triangles; got %d", got)
	}

	first := mesh.Vertices[mesh.Indices[0]]
	if first.Position != types.XYZ(0, 0, 0) {
		t.Fatalf("expected position (0, 0, 0); got %v", first.Position)
	}
	if first.Normal != types.XYZ(0, 0, 1) {
		t.Fatalf("expected normal (0, 0, 1); got %v", first.Normal)
	}
	if first.UV != types.XY(0, 0) {
		t.Fatalf("expected uv (0, 0); got %v", first.UV)
	}

	// Both triangles reuse the same first corner
	if mesh.Indices[0] != mesh.Indices[3] {
		t.Fatal("expected the shared corner to be deduplicated")
	}
}

func TestReadMeshIndexForms(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0.5 0.5
f 1 2/1 3//1
`
	mesh, err := ReadMesh(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("expected no error; got %v", err)
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("expected 3 vertices; got %d", len(mesh.Vertices))
	}
	if mesh.Vertices[1].UV != types.XY(0.5, 0.5) {
		t.Fatalf("expected uv (0.5, 0.5); got %v", mesh.Vertices[1].UV)
	}
	if mesh.Vertices[2].Normal != types.XYZ(0, 0, 1) {
		t.Fatalf("expected normal (0, 0, 1); got %v", mesh.Vertices[2].Normal)
	}
}

func TestReadMeshErrors(t *testing.T) {
	specs := []struct {
		descr string
		obj   string
	}{
		{"quad face", "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"},
		{"position out of range", "v 0 0 0\nf 1 2 3\n"},
		{"normal out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n"},
		{"malformed position", "v 0 0\n"},
		{"no faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
	}
	for i, s := range specs {
		if _, err := ReadMesh(strings.NewReader(s.obj)); err == nil {
			t.Fatalf("[spec %d] %s: expected an error", i, s.descr)
		}
	}
}
