package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/gogpu/text3d/mesh"
)

// ErrTooManyTriangles is returned when a mesh does not fit the 32-bit
// triangle count of binary STL.
var ErrTooManyTriangles = errors.New("export: too many triangles for STL")

const stlHeaderSize = 80

// WriteSTL writes m as binary STL. Every channel is written; STL has no
// notion of groups or shared vertices.
func WriteSTL(w io.Writer, m *mesh.Result) error {
	n := m.TriangleCount()
	if uint64(n) > math.MaxUint32 {
		return ErrTooManyTriangles
	}

	bw := bufio.NewWriter(w)
	var header [stlHeaderSize]byte
	copy(header[:], "text3d binary STL")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(n)); err != nil { //nolint:gosec // checked above
		return err
	}

	// normal, three corners, attribute byte count
	var rec [12*4 + 2]byte
	for _, f := range mesh.Faces {
		ch := m.Channel(f)
		for i := range ch.TriangleCount() {
			t := ch.Triangle(i)
			putVec(rec[0:], ch.Vertices[ch.Indices[3*i]].Normal)
			putVec(rec[12:], t.A)
			putVec(rec[24:], t.B)
			putVec(rec[36:], t.C)
			if _, err := bw.Write(rec[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func putVec(b []byte, p mesh.Point) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(p.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(p.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(p.Z)))
}
