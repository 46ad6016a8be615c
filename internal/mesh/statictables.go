package mesh

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// PolyhedronType tags a polyhedron's canonical shape. General polyhedra
// store facet incidence explicitly; the four fixed types read it from the
// static tables below (the canonical Euler-consistent layouts), per the
// design notes: "Static incidence tables ... are essential — do not
// recompute."
type PolyhedronType int

// Polyhedron types.
const (
	Tetra PolyhedronType = iota
	Pyramid
	Prism
	Hex
	General
)

// String names the polyhedron type.
func (t PolyhedronType) String() string {
	switch t {
	case Tetra:
		return "tetra"
	case Pyramid:
		return "pyramid"
	case Prism:
		return "prism"
	case Hex:
		return "hex"
	default:
		return "polyhedron"
	}
}

// facetLayout lists, per fixed polyhedron type, the local vertex indices
// of every facet in outward-oriented order.
var facetLayout = map[PolyhedronType][][]geoid.Index{
	Tetra: {
		{1, 2, 3},
		{0, 3, 2},
		{0, 1, 3},
		{0, 2, 1},
	},
	Pyramid: {
		{0, 1, 2, 3}, // base (quad)
		{0, 4, 1},
		{1, 4, 2},
		{2, 4, 3},
		{3, 4, 0},
	},
	Prism: {
		{0, 1, 2},
		{3, 5, 4},
		{0, 3, 4, 1},
		{1, 4, 5, 2},
		{2, 5, 3, 0},
	},
	Hex: {
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	},
}

// edgeLayout lists, per fixed polyhedron type, the local vertex pairs of
// every edge.
var edgeLayout = map[PolyhedronType][][2]geoid.Index{
	Tetra: {
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	},
	Pyramid: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {1, 4}, {2, 4}, {3, 4},
	},
	Prism: {
		{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3},
		{0, 3}, {1, 4}, {2, 5},
	},
	Hex: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	},
}

// nbVerticesFor returns the fixed vertex count for a type, or 0 for General.
func nbVerticesFor(t PolyhedronType) int {
	switch t {
	case Tetra:
		return 4
	case Pyramid:
		return 5
	case Prism:
		return 6
	case Hex:
		return 8
	default:
		return 0
	}
}

func typeForVertexCount(n int) (PolyhedronType, bool) {
	switch n {
	case 4:
		return Tetra, true
	case 5:
		return Pyramid, true
	case 6:
		return Prism, true
	case 8:
		return Hex, true
	default:
		return General, false
	}
}
