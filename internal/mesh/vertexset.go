package mesh

import (
	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// Coord is the set of coordinate types a VertexSet can be parametrized
// over: 2D for Sections/planar curves, 3D for BReps/surfaces/solids. Using
// a type parameter here is the generic-element-type idiom the design notes
// ask for, applied to dimensionality instead of attribute element type.
type Coord interface {
	geoid.Point2D | geoid.Point3D
}

// VertexSet is an attribute manager over N vertices plus their coordinates
// — the base every mesh augments with topology.
type VertexSet[C Coord] struct {
	attrs  *attribute.Manager
	points []C
}

// NewVertexSet returns an empty vertex set.
func NewVertexSet[C Coord]() *VertexSet[C] {
	return &VertexSet[C]{attrs: attribute.NewManager(0)}
}

// Attributes returns the vertex attribute manager.
func (v *VertexSet[C]) Attributes() *attribute.Manager { return v.attrs }

// NbVertices returns the vertex count.
func (v *VertexSet[C]) NbVertices() geoid.Index { return geoid.Index(len(v.points)) }

// Point returns the coordinates of vertex id.
func (v *VertexSet[C]) Point(id geoid.Index) (C, error) {
	var zero C
	if id >= v.NbVertices() {
		return zero, ErrIndexOutOfRange
	}
	return v.points[id], nil
}

// SetPoint overwrites vertex id's coordinates.
func (v *VertexSet[C]) SetPoint(id geoid.Index, p C) error {
	if id >= v.NbVertices() {
		return ErrIndexOutOfRange
	}
	v.points[id] = p
	return nil
}

// CreateVertex appends a new vertex at the origin and returns its id.
func (v *VertexSet[C]) CreateVertex() geoid.Index {
	var zero C
	return v.CreatePoint(zero)
}

// CreatePoint appends a new vertex at p and returns its id.
func (v *VertexSet[C]) CreatePoint(p C) geoid.Index {
	id := v.NbVertices()
	v.points = append(v.points, p)
	v.attrs.Resize(id + 1)
	return id
}

// permuteVertices reorders vertex storage + attributes by p.
func (v *VertexSet[C]) permuteVertices(p []geoid.Index) error {
	out := make([]C, len(v.points))
	for i, src := range p {
		out[i] = v.points[src]
	}
	v.points = out
	return v.attrs.PermuteRows(p)
}

// deleteVertices compacts vertex storage + attributes by mask, returning
// the in2out mapping (old id -> new id, NoIndex if deleted).
func (v *VertexSet[C]) deleteVertices(mask []bool) []geoid.Index {
	in2out := make([]geoid.Index, len(v.points))
	out := v.points[:0:0]
	var next geoid.Index
	for i, p := range v.points {
		if i < len(mask) && mask[i] {
			in2out[i] = geoid.NoIndex
			continue
		}
		in2out[i] = next
		out = append(out, p)
		next++
	}
	v.points = out
	v.attrs.DeleteRows(mask)
	return in2out
}
