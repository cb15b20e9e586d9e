package dmc

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/soypat/geometry/ms3"
)

// WriteSliceImage rasterizes a width x height cross-section of obj's value
// at a fixed depth along axis (0=X, 1=Y, 2=Z) and writes it as a PNG to w,
// black where the object is negative (inside) and white where positive
// (outside). It is a debug aid for inspecting a sampled field, not the mesh
// sink: this package never owns file I/O for the mesh itself.
func WriteSliceImage(w io.Writer, obj Object, axis int, depth float32, width, height int) error {
	bb := obj.Bounds()
	min, max := bb.Min, bb.Max
	img := image.NewGray(image.Rect(0, 0, width, height))
	u, v := otherAxes(axis)
	for row := 0; row < height; row++ {
		fv := component(max, v) - (component(max, v)-component(min, v))*float32(row)/float32(height-1)
		for col := 0; col < width; col++ {
			fu := component(min, u) + (component(max, u)-component(min, u))*float32(col)/float32(width-1)
			pos := withComponent(withComponent(ms3.Vec{}, u, fu), v, fv)
			pos = withComponent(pos, axis, depth)
			val := obj.ApproxValue(pos, 0)
			c := color.Gray{Y: 0}
			if val > 0 {
				c = color.Gray{Y: 255}
			}
			img.SetGray(col, row, c)
		}
	}
	return png.Encode(w, img)
}

func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
