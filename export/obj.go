package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/text3d/mesh"
)

// WriteOBJ writes m as a Wavefront OBJ file. Each non-empty channel becomes
// a group named after its face; vertex normals are written alongside
// positions so face lines use the v//vn form.
func WriteOBJ(w io.Writer, m *mesh.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# text3d mesh: %d vertices, %d triangles\n",
		m.VertexCount(), m.TriangleCount()); err != nil {
		return err
	}

	base := 1 // OBJ indices are 1-based and global.
	for _, f := range mesh.Faces {
		ch := m.Channel(f)
		if ch.IsEmpty() {
			continue
		}

		fmt.Fprintf(bw, "g %s\n", f)
		for _, v := range ch.Vertices {
			writeVec(bw, "v", v.Position)
		}
		for _, v := range ch.Vertices {
			writeVec(bw, "vn", v.Normal)
		}
		for i := 0; i < len(ch.Indices); i += 3 {
			a := base + int(ch.Indices[i])
			b := base + int(ch.Indices[i+1])
			c := base + int(ch.Indices[i+2])
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		base += len(ch.Vertices)
	}
	return bw.Flush()
}

func writeVec(w *bufio.Writer, prefix string, p mesh.Point) {
	w.WriteString(prefix)
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	w.WriteByte('\n')
}
