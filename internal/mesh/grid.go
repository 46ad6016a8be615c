package mesh

import (
	"math"

	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// Grid is a structured regular grid over 2 or 3 dimensions: an implicit
// vertex/cell lattice defined by an origin, a uniform cell length per axis,
// and a cell count per axis. The cell and vertex attribute managers are
// created together with the grid, sized to its cell and vertex counts; they
// are not materialized lazily on first access.
type Grid[C Coord] struct {
	origin    C
	cellSize  []float64
	nbCells   []geoid.Index
	cellAttrs *attribute.Manager
	vtxAttrs  *attribute.Manager
}

// NewGrid2D returns a regular grid over 2D space.
func NewGrid2D(origin geoid.Point2D, cellSize [2]float64, nbCells [2]geoid.Index) *Grid[geoid.Point2D] {
	return newGrid[geoid.Point2D](origin, cellSize[:], nbCells[:])
}

// NewGrid3D returns a regular grid over 3D space.
func NewGrid3D(origin geoid.Point3D, cellSize [3]float64, nbCells [3]geoid.Index) *Grid[geoid.Point3D] {
	return newGrid[geoid.Point3D](origin, cellSize[:], nbCells[:])
}

func newGrid[C Coord](origin C, cellSize []float64, nbCells []geoid.Index) *Grid[C] {
	nbC := geoid.Index(1)
	for _, n := range nbCells {
		nbC *= n
	}
	nbV := geoid.Index(1)
	for _, n := range nbCells {
		nbV *= n + 1
	}
	return &Grid[C]{
		origin:    origin,
		cellSize:  append([]float64(nil), cellSize...),
		nbCells:   append([]geoid.Index(nil), nbCells...),
		cellAttrs: attribute.NewManager(nbC),
		vtxAttrs:  attribute.NewManager(nbV),
	}
}

// Dimension returns 2 or 3.
func (g *Grid[C]) Dimension() int { return len(g.nbCells) }

// NbCells returns the total cell count (product over every axis).
func (g *Grid[C]) NbCells() geoid.Index {
	n := geoid.Index(1)
	for _, c := range g.nbCells {
		n *= c
	}
	return n
}

// NbVertices returns the total grid-vertex count.
func (g *Grid[C]) NbVertices() geoid.Index {
	n := geoid.Index(1)
	for _, c := range g.nbCells {
		n *= c + 1
	}
	return n
}

// CellAttributes returns the per-cell attribute manager, sized to NbCells().
func (g *Grid[C]) CellAttributes() *attribute.Manager { return g.cellAttrs }

// VertexAttributes returns the per-grid-vertex attribute manager, sized to
// NbVertices().
func (g *Grid[C]) VertexAttributes() *attribute.Manager { return g.vtxAttrs }

func (g *Grid[C]) originCoords() []float64 {
	return any(g.origin).(interface{ Coords() []float64 }).Coords()
}

// CellIndices decomposes a lexicographic cell id into per-axis indices,
// axis 0 varying fastest: cell_index(i0,...,i_{D-1}) =
// i0 + n0*(i1 + n1*(i2 + ...)).
func (g *Grid[C]) CellIndices(cell geoid.Index) []geoid.Index {
	out := make([]geoid.Index, len(g.nbCells))
	rem := cell
	for axis := 0; axis < len(g.nbCells); axis++ {
		out[axis] = rem % g.nbCells[axis]
		rem /= g.nbCells[axis]
	}
	return out
}

// CellIndex encodes per-axis cell indices into a lexicographic cell id,
// axis 0 varying fastest.
func (g *Grid[C]) CellIndex(indices []geoid.Index) geoid.Index {
	d := len(g.nbCells)
	id := indices[d-1]
	for axis := d - 2; axis >= 0; axis-- {
		id = indices[axis] + g.nbCells[axis]*id
	}
	return id
}

// GridVertex encodes per-axis vertex indices into a lexicographic vertex id
// (the lattice has one more vertex than cells per axis), axis 0 varying
// fastest.
func (g *Grid[C]) GridVertex(indices []geoid.Index) geoid.Index {
	d := len(g.nbCells)
	id := indices[d-1]
	for axis := d - 2; axis >= 0; axis-- {
		id = indices[axis] + (g.nbCells[axis]+1)*id
	}
	return id
}

// GridPoint returns the world coordinates of grid vertex `indices`.
func (g *Grid[C]) GridPoint(indices []geoid.Index) []float64 {
	origin := g.originCoords()
	out := make([]float64, len(origin))
	for axis := range out {
		out[axis] = origin[axis] + float64(indices[axis])*g.cellSize[axis]
	}
	return out
}

// Contains reports whether point lies within the grid bounding box, with
// GlobalEpsilon slack on each face.
func (g *Grid[C]) Contains(point []float64) bool {
	origin := g.originCoords()
	for axis := range origin {
		lo := origin[axis] - geoid.GlobalEpsilon
		hi := origin[axis] + float64(g.nbCells[axis])*g.cellSize[axis] + geoid.GlobalEpsilon
		if point[axis] < lo || point[axis] > hi {
			return false
		}
	}
	return true
}

// Cells returns every cell id whose closed box contains point (up to 2^D
// cells on grid-vertex boundaries), or nil if point lies outside the grid.
func (g *Grid[C]) Cells(point []float64) []geoid.Index {
	if !g.Contains(point) {
		return nil
	}
	origin := g.originCoords()
	dim := len(g.nbCells)
	// candidate cell index per axis: the cell below and, on an exact
	// boundary, the cell above too.
	candidates := make([][]geoid.Index, dim)
	for axis := 0; axis < dim; axis++ {
		rel := (point[axis] - origin[axis]) / g.cellSize[axis]
		base := geoid.Index(math.Floor(rel))
		if base >= g.nbCells[axis] {
			base = g.nbCells[axis] - 1
		}
		frac := rel - math.Floor(rel)
		cs := []geoid.Index{base}
		if frac < geoid.GlobalEpsilon && base > 0 {
			cs = append(cs, base-1)
		}
		if frac > 1-geoid.GlobalEpsilon && base+1 < g.nbCells[axis] {
			cs = append(cs, base+1)
		}
		candidates[axis] = cs
	}
	var out []geoid.Index
	var combine func(axis int, indices []geoid.Index)
	combine = func(axis int, indices []geoid.Index) {
		if axis == dim {
			cp := append([]geoid.Index(nil), indices...)
			out = append(out, g.CellIndex(cp))
			return
		}
		for _, c := range candidates[axis] {
			combine(axis+1, append(indices, c))
		}
	}
	combine(0, make([]geoid.Index, 0, dim))
	return out
}

// ClosestVertex returns the grid-vertex id nearest point by rounding each
// axis's fractional cell coordinate.
func (g *Grid[C]) ClosestVertex(point []float64) geoid.Index {
	origin := g.originCoords()
	indices := make([]geoid.Index, len(g.nbCells))
	for axis := range indices {
		rel := (point[axis] - origin[axis]) / g.cellSize[axis]
		idx := geoid.Index(math.Round(rel))
		if idx > g.nbCells[axis] {
			idx = g.nbCells[axis]
		}
		indices[axis] = idx
	}
	return g.GridVertex(indices)
}
