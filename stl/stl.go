// Package stl writes a dmc.Mesh out as a binary STL file, a standard
// triangle-soup format for physical output.
package stl

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/soypat/geometry/ms3"
)

// Writer accumulates a mesh's vertices and faces and emits them as binary
// STL on Flush. It implements dmc.MeshSink.
type Writer struct {
	w     io.Writer
	verts []ms3.Vec
	faces [][3]int
}

// NewWriter wraps w for a single mesh write. Call Flush once both
// AddVertices and AddFaces have been called (dmc.Mesh.WriteTo does this).
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) AddVertices(v []ms3.Vec) error {
	s.verts = append(s.verts, v...)
	return nil
}

func (s *Writer) AddFaces(f [][3]int) error {
	s.faces = append(s.faces, f...)
	return nil
}

// Flush writes the accumulated mesh as a binary STL file: an 80-byte
// header, a uint32 triangle count, then 50 bytes per triangle (a float32
// normal, three float32 vertices, and a uint16 attribute byte count).
func (s *Writer) Flush() (int, error) {
	var header [80]byte
	n, err := s.w.Write(header[:])
	if err != nil {
		return n, err
	}
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(s.faces)))
	wn, err := s.w.Write(countBuf[:])
	n += wn
	if err != nil {
		return n, err
	}
	var rec [50]byte
	for _, f := range s.faces {
		a, b, c := s.verts[f[0]], s.verts[f[1]], s.verts[f[2]]
		normal := triangleNormal(a, b, c)
		putVec(rec[0:12], normal)
		putVec(rec[12:24], a)
		putVec(rec[24:36], b)
		putVec(rec[36:48], c)
		rec[48], rec[49] = 0, 0
		wn, err = s.w.Write(rec[:])
		n += wn
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func triangleNormal(a, b, c ms3.Vec) ms3.Vec {
	e1 := ms3.Sub(b, a)
	e2 := ms3.Sub(c, a)
	cross := ms3.Vec{
		X: e1.Y*e2.Z - e1.Z*e2.Y,
		Y: e1.Z*e2.X - e1.X*e2.Z,
		Z: e1.X*e2.Y - e1.Y*e2.X,
	}
	return ms3.Unit(cross)
}

func putVec(dst []byte, v ms3.Vec) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v.Z))
}
