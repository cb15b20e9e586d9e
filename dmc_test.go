package dmc

import (
	"testing"

	"github.com/soypat/geometry/ms3"
)

func TestTessellateSphereProducesClosedMesh(t *testing.T) {
	obj := sphereObject{r: 1}
	mesh, stats, err := Tessellate(obj, Config{Resolution: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) == 0 || len(mesh.Faces) == 0 {
		t.Fatal("expected a non-empty mesh")
	}
	ms := computeMeshStats(mesh)
	if ms.ComponentCount != 1 {
		t.Errorf("expected 1 connected component, got %d", ms.ComponentCount)
	}
	if ms.EulerCharacteristic != 2 {
		t.Errorf("expected Euler characteristic 2 (sphere topology), got %d", ms.EulerCharacteristic)
	}
	if n := len(mesh.Faces); n < 1800 || n > 2400 {
		t.Errorf("expected between 1800 and 2400 triangles, got %d", n)
	}
	for _, v := range mesh.Vertices {
		if r := ms3.Norm(v); r < 0.85 || r > 1.15 {
			t.Errorf("vertex %v has norm %f, want in [0.85, 1.15]", v, r)
		}
	}
	for _, f := range mesh.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(mesh.Vertices) {
				t.Fatalf("face references out-of-range vertex %d", vi)
			}
		}
	}
	if stats.Retries != 0 {
		t.Errorf("expected no retries for a well-behaved sphere, got %d", stats.Retries)
	}
	if stats.Qefs+stats.Clamps == 0 {
		t.Error("expected some vertex positions to have been computed")
	}
}

func TestTessellateBoxProducesClosedMesh(t *testing.T) {
	obj := boxObject{hx: 1, hy: 0.6, hz: 0.4}
	mesh, stats, err := Tessellate(obj, Config{Resolution: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	ms := computeMeshStats(mesh)
	if ms.ComponentCount != 1 {
		t.Errorf("expected 1 connected component, got %d", ms.ComponentCount)
	}
	if ms.EulerCharacteristic != 2 {
		t.Errorf("expected Euler characteristic 2, got %d", ms.EulerCharacteristic)
	}
	if stats.Clamps == 0 {
		t.Error("expected corner vertices to have clamped to the tangent-plane centroid")
	}
	const cosTenthRadian = 0.995004 // cos(0.1 rad)
	axes := [3]ms3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	for _, f := range mesh.Faces {
		a, b, c := mesh.Vertices[f[0]], mesh.Vertices[f[1]], mesh.Vertices[f[2]]
		n := triangleNormal(a, b, c)
		aligned := false
		for _, axis := range axes {
			if d := ms3.Dot(n, axis); d >= cosTenthRadian || d <= -cosTenthRadian {
				aligned = true
				break
			}
		}
		if !aligned {
			t.Errorf("face normal %v does not align with any axis within 0.1 radians", n)
		}
	}
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

func TestTessellateTwoSpheresProducesTwoComponents(t *testing.T) {
	obj := twoSpheresObject{
		a: ms3.Vec{X: -2}, ra: 0.8,
		b: ms3.Vec{X: 2}, rb: 0.8,
	}
	mesh, _, err := Tessellate(obj, Config{Resolution: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	ms := computeMeshStats(mesh)
	if ms.ComponentCount != 2 {
		t.Errorf("expected 2 connected components, got %d", ms.ComponentCount)
	}
}

func TestTessellateEmptyFieldProducesEmptyMesh(t *testing.T) {
	obj := constantObject{value: 1}
	mesh, stats, err := Tessellate(obj, Config{Resolution: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) != 0 || len(mesh.Faces) != 0 {
		t.Errorf("expected an empty mesh, got %d vertices, %d faces", len(mesh.Vertices), len(mesh.Faces))
	}
	if stats.LeafVertices != 0 {
		t.Errorf("expected no leaf vertices, got %d", stats.LeafVertices)
	}
}

func TestTessellateRetriesOnExactZero(t *testing.T) {
	calls := 0
	obj := exactZeroObject{sphereObject: sphereObject{r: 1}, calls: &calls}
	mesh, stats, err := Tessellate(obj, Config{Resolution: 0.25, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Retries == 0 {
		t.Error("expected at least one retry after hitting an exact zero")
	}
	if len(mesh.Vertices) == 0 {
		t.Error("expected a non-empty mesh after retry recovers")
	}
}

func TestTessellateRejectsNilObject(t *testing.T) {
	_, err := NewTessellator(nil, Config{Resolution: 0.1})
	if err == nil {
		t.Fatal("expected an error constructing with a nil object")
	}
}

func TestTessellateRejectsBadResolution(t *testing.T) {
	_, err := NewTessellator(sphereObject{r: 1}, Config{Resolution: 0})
	if err == nil {
		t.Fatal("expected an error constructing with a non-positive resolution")
	}
}

func TestTessellatorIsReusableAcrossCalls(t *testing.T) {
	obj := sphereObject{r: 1}
	tess, err := NewTessellator(obj, Config{Resolution: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	mesh1, _, err := tess.Tessellate()
	if err != nil {
		t.Fatal(err)
	}
	mesh2, _, err := tess.Tessellate()
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh1.Vertices) != len(mesh2.Vertices) || len(mesh1.Faces) != len(mesh2.Faces) {
		t.Errorf("repeated runs over the same object should agree: %d/%d vs %d/%d",
			len(mesh1.Vertices), len(mesh1.Faces), len(mesh2.Vertices), len(mesh2.Faces))
	}
}
