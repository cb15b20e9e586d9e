package dmc

import "github.com/soypat/geometry/ms3"

// pow2roundup returns the smallest power of two >= x (x>0).
func pow2roundup(x int) int {
	if x <= 1 {
		return 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x + 1
}

func maxInt(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// component returns the axis-th component of v (0=X, 1=Y, 2=Z).
func component(v ms3.Vec, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// withComponent returns v with its axis-th component replaced by val.
func withComponent(v ms3.Vec, axis int, val float32) ms3.Vec {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

func signF(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
