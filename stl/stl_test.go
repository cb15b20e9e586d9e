package stl

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/soypat/geometry/ms3"
)

func TestFlushWritesHeaderAndTriangleCount(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.AddVertices([]ms3.Vec{{}, {X: 1}, {Y: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := w.AddFaces([][3]int{{0, 1, 2}}); err != nil {
		t.Fatal(err)
	}
	n, err := w.Flush()
	if err != nil {
		t.Fatal(err)
	}
	const wantLen = 80 + 4 + 50
	if n != wantLen {
		t.Fatalf("wrote %d bytes, want %d", n, wantLen)
	}
	if buf.Len() != wantLen {
		t.Fatalf("buffer has %d bytes, want %d", buf.Len(), wantLen)
	}
	count := binary.LittleEndian.Uint32(buf.Bytes()[80:84])
	if count != 1 {
		t.Errorf("triangle count = %d, want 1", count)
	}
}

func TestTriangleNormalIsUnitLength(t *testing.T) {
	n := triangleNormal(ms3.Vec{}, ms3.Vec{X: 1}, ms3.Vec{Y: 1})
	got := ms3.Norm(n)
	if got < 0.99 || got > 1.01 {
		t.Errorf("normal length = %v, want ~1", got)
	}
	if n.Z < 0.99 {
		t.Errorf("normal = %+v, want ~(0,0,1)", n)
	}
}
