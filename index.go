package dmc

// Index addresses a grid point on the sample lattice. Components are always
// non-negative: the tessellator's working grid is anchored at its own origin.
type Index [3]int

// Add returns i+o component-wise.
func (i Index) Add(o Index) Index {
	return Index{i[0] + o[0], i[1] + o[1], i[2] + o[2]}
}

// Sub returns i-o component-wise.
func (i Index) Sub(o Index) Index {
	return Index{i[0] - o[0], i[1] - o[1], i[2] - o[2]}
}

// Half returns i with every component divided by two, used to find the
// super-cell a cell at this index belongs to during octree simplification.
func (i Index) Half() Index {
	return Index{i[0] / 2, i[1] / 2, i[2] / 2}
}

// Edge names one of the twelve edges of a unit cube, following the lettering
// A through L. An edge's base direction is edge%3: A, D, G, J run along X,
// B, E, H, K run along Y, and C, F, I, L run along Z.
type Edge uint8

const (
	EdgeA Edge = iota // X, offset (0,0,0)
	EdgeB             // Y, offset (0,0,0)
	EdgeC             // Z, offset (0,0,0)
	EdgeD             // X, offset (0,1,0)
	EdgeE             // Y, offset (1,0,0)
	EdgeF             // Z, offset (1,0,0)
	EdgeG             // X, offset (0,0,1)
	EdgeH             // Y, offset (0,0,1)
	EdgeI             // Z, offset (0,1,0)
	EdgeJ             // X, offset (0,1,1)
	EdgeK             // Y, offset (1,0,1)
	EdgeL             // Z, offset (1,1,0)
)

func (e Edge) String() string {
	if e > EdgeL {
		return "Edge(?)"
	}
	return string(rune('A') + rune(e))
}

// Dir returns the axis (0=X, 1=Y, 2=Z) the edge runs along.
func (e Edge) Dir() int { return int(e) % 3 }

// Base returns the canonical direction letter (A, B or C) for this edge's axis.
func (e Edge) Base() Edge { return Edge(e.Dir()) }

// EDGE_OFFSET gives, for each edge, the index offset (relative to the cell's
// own origin corner) of the corner the edge starts at.
var EDGE_OFFSET = [12]Index{
	EdgeA: {0, 0, 0},
	EdgeB: {0, 0, 0},
	EdgeC: {0, 0, 0},
	EdgeD: {0, 1, 0},
	EdgeE: {1, 0, 0},
	EdgeF: {1, 0, 0},
	EdgeG: {0, 0, 1},
	EdgeH: {0, 0, 1},
	EdgeI: {0, 1, 0},
	EdgeJ: {0, 1, 1},
	EdgeK: {1, 0, 1},
	EdgeL: {1, 1, 0},
}

// QUADS lists, for each base direction (X, Y, Z), the four edges surrounding
// a minimal edge of that direction, in the winding order a quad emitter walks
// them in.
var QUADS = [3][4]Edge{
	0: {EdgeA, EdgeG, EdgeJ, EdgeD}, // around an X edge
	1: {EdgeB, EdgeE, EdgeK, EdgeH}, // around a Y edge
	2: {EdgeC, EdgeI, EdgeL, EdgeF}, // around a Z edge
}

// EdgeIndex names an edge of a specific cell: the edge letter plus the index
// of the cell's own origin corner.
type EdgeIndex struct {
	Edge  Edge
	Index Index
}

// Canonical rewrites an EdgeIndex to the unique A/B/C-direction form every
// occurrence of this physical edge reduces to, used as the edge grid's key.
func (ei EdgeIndex) Canonical() EdgeIndex {
	return EdgeIndex{Edge: ei.Edge.Base(), Index: ei.Index.Add(EDGE_OFFSET[ei.Edge])}
}

// cornerEdges lists, for edges A through L in order, the pair of unit-cube
// corner indices ((z<<2)|(y<<1)|x) the edge connects.
var cornerEdges = [12][2]int{
	EdgeA: {0, 1},
	EdgeB: {0, 2},
	EdgeC: {0, 4},
	EdgeD: {2, 3},
	EdgeE: {1, 3},
	EdgeF: {1, 5},
	EdgeG: {4, 5},
	EdgeH: {4, 6},
	EdgeI: {2, 6},
	EdgeJ: {6, 7},
	EdgeK: {5, 7},
	EdgeL: {3, 7},
}
