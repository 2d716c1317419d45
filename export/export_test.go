package export

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/text3d/mesh"
)

// quadMesh returns a welded unit quad on the front channel and one side
// triangle.
func quadMesh() *mesh.Result {
	var set mesh.TriangleSet
	set.Add(mesh.Front,
		mesh.Triangle{A: mesh.Pt(0, 0, 0), B: mesh.Pt(1, 1, 0), C: mesh.Pt(1, 0, 0)},
		mesh.Triangle{A: mesh.Pt(0, 0, 0), B: mesh.Pt(0, 1, 0), C: mesh.Pt(1, 1, 0)},
	)
	set.Add(mesh.Side, mesh.Triangle{A: mesh.Pt(0, 0, 0), B: mesh.Pt(1, 0, 0), C: mesh.Pt(0, 0, 1)})
	return mesh.Assemble(&set, mesh.AssembleOptions{HAlign: mesh.AlignLeft, VAlign: mesh.AlignBottom})
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, quadMesh()); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	var groups, verts, normals, faces []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		fields := strings.Fields(line)
		switch fields[0] {
		case "g":
			groups = append(groups, fields[1])
		case "v":
			verts = append(verts, line)
		case "vn":
			normals = append(normals, line)
		case "f":
			faces = append(faces, line)
		}
	}

	if strings.Join(groups, ",") != "Front,Side" {
		t.Errorf("groups = %v, want [Front Side]", groups)
	}
	// 4 welded front vertices + 3 side vertices.
	if len(verts) != 7 || len(normals) != 7 {
		t.Errorf("v/vn = %d/%d, want 7/7", len(verts), len(normals))
	}
	if len(faces) != 3 {
		t.Fatalf("faces = %d, want 3", len(faces))
	}
	// Side indices continue after the front vertices.
	if faces[2] != "f 5//5 6//6 7//7" {
		t.Errorf("side face = %q, want f 5//5 6//6 7//7", faces[2])
	}
}

func TestWriteOBJ_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, &mesh.Result{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\nf ") {
		t.Error("empty mesh should have no faces")
	}
}

func TestWriteSTL(t *testing.T) {
	m := quadMesh()
	var buf bytes.Buffer
	if err := WriteSTL(&buf, m); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	b := buf.Bytes()
	if len(b) != 80+4+3*50 {
		t.Fatalf("size = %d, want %d", len(b), 80+4+3*50)
	}
	if n := binary.LittleEndian.Uint32(b[80:]); n != 3 {
		t.Errorf("triangle count = %d, want 3", n)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
	}
	// First record: front triangle, normal (0,0,1) for this winding.
	rec := 84
	if f32(rec) != 0 || f32(rec+4) != 0 || f32(rec+8) != 1 {
		t.Errorf("normal = (%v,%v,%v), want (0,0,1)", f32(rec), f32(rec+4), f32(rec+8))
	}
	if f32(rec+24) != 1 || f32(rec+28) != 1 {
		t.Errorf("second corner = (%v,%v), want (1,1)", f32(rec+24), f32(rec+28))
	}
}
