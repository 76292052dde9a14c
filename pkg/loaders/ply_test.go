package loaders

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
)

const asciiQuad = `ply
format ascii 1.0
comment unit square in the xz plane
element vertex 4
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 0 1
0 0 1
4 0 1 2 3
`

// createBinaryPLY writes two triangles with per-vertex normals and colors
// that the loader has to skip
func createBinaryPLY(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	buf.WriteString("ply\n")
	buf.WriteString("format binary_little_endian 1.0\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	buf.WriteString("property float nx\n")
	buf.WriteString("property float ny\n")
	buf.WriteString("property float nz\n")
	buf.WriteString("property uchar red\n")
	buf.WriteString("property uchar green\n")
	buf.WriteString("property uchar blue\n")
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	vertices := [][3]float32{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}
	for _, v := range vertices {
		for _, f := range []float32{v[0], v[1], v[2], 0, 0, 1} {
			binary.Write(&buf, binary.LittleEndian, f)
		}
		buf.Write([]byte{255, 128, 0})
	}

	faces := [][3]int32{{0, 1, 2}, {0, 2, 3}}
	for _, f := range faces {
		buf.WriteByte(3)
		for _, idx := range f {
			binary.Write(&buf, binary.LittleEndian, idx)
		}
	}
	return buf.Bytes()
}

func TestReadPLY_ASCII(t *testing.T) {
	data, err := ReadPLY(strings.NewReader(asciiQuad))
	if err != nil {
		t.Fatalf("ReadPLY failed: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Fatalf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	// The quad is fanned into two triangles
	expected := []int{0, 1, 2, 0, 2, 3}
	if len(data.Faces) != len(expected) {
		t.Fatalf("Expected %d indices, got %d", len(expected), len(data.Faces))
	}
	for i := range expected {
		if data.Faces[i] != expected[i] {
			t.Errorf("Index %d: expected %d, got %d", i, expected[i], data.Faces[i])
		}
	}
	if data.Vertices[2] != core.NewVec3(1, 0, 1) {
		t.Errorf("Unexpected vertex 2: %v", data.Vertices[2])
	}
}

func TestReadPLY_BinarySkipsExtraProperties(t *testing.T) {
	data, err := ReadPLY(bytes.NewReader(createBinaryPLY(t)))
	if err != nil {
		t.Fatalf("ReadPLY failed: %v", err)
	}

	if len(data.Vertices) != 4 || len(data.Faces) != 6 {
		t.Fatalf("Expected 4 vertices and 2 triangles, got %d and %d", len(data.Vertices), len(data.Faces)/3)
	}
	if data.Vertices[2] != core.NewVec3(2, 2, 0) {
		t.Errorf("Unexpected vertex 2: %v", data.Vertices[2])
	}
	if data.Faces[5] != 3 {
		t.Errorf("Expected last index 3, got %d", data.Faces[5])
	}
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing magic", "format ascii 1.0\nend_header\n"},
		{"no end_header", "ply\nformat ascii 1.0\n"},
		{"big endian", "ply\nformat binary_big_endian 1.0\nend_header\n"},
		{"bad count", "ply\nformat ascii 1.0\nelement vertex many\nend_header\n"},
		{"bad type", "ply\nformat ascii 1.0\nelement vertex 1\nproperty quad x\nend_header\n"},
		{"truncated", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n1\n"},
		{"index out of range", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n3 0 1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPLY(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

func TestLoadPLY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.ply")
	if err := os.WriteFile(path, []byte(asciiQuad), 0o644); err != nil {
		t.Fatalf("Failed to write PLY: %v", err)
	}

	data, err := LoadPLY(path)
	if err != nil {
		t.Fatalf("LoadPLY failed: %v", err)
	}
	if len(data.Faces) != 6 {
		t.Errorf("Expected 2 triangles, got %d", len(data.Faces)/3)
	}

	if _, err := LoadPLY(filepath.Join(t.TempDir(), "missing.ply")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestPLYData_Fit(t *testing.T) {
	data, err := ReadPLY(bytes.NewReader(createBinaryPLY(t)))
	if err != nil {
		t.Fatalf("ReadPLY failed: %v", err)
	}

	center := core.NewVec3(5, 1, -3)
	data.Fit(center, 1)

	box := data.Bounds()
	if math.Abs(box.Size().X-1) > 1e-9 || math.Abs(box.Size().Y-1) > 1e-9 {
		t.Errorf("Expected unit extent, got %v", box.Size())
	}
	if box.Center().Subtract(center).Length() > 1e-9 {
		t.Errorf("Expected centre %v, got %v", center, box.Center())
	}
}

func TestPLYData_Triangles(t *testing.T) {
	data, err := ReadPLY(strings.NewReader(asciiQuad))
	if err != nil {
		t.Fatalf("ReadPLY failed: %v", err)
	}

	triangles := data.Triangles(core.NewSpectrum(0.5), nil)
	if len(triangles) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(triangles))
	}

	// A ray straight down through the square hits one of the triangles
	ray := core.NewRay(core.NewVec3(0.3, 1, 0.6), core.NewVec3(0, -1, 0))
	hits := 0
	for _, tri := range triangles {
		var rec geometry.HitRecord
		if tri.Hit(ray, 0, math.Inf(1), &rec) {
			hits++
			if math.Abs(rec.T-1) > 1e-9 {
				t.Errorf("Expected t=1, got %f", rec.T)
			}
		}
	}
	if hits != 1 {
		t.Errorf("Expected exactly one triangle hit, got %d", hits)
	}
}
