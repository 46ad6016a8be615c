package mesh

import (
	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// EdgeVertices is a pair of vertex ids. Built by canonicalEdge it is
// ordered V0 <= V1, so two edges referencing the same unordered pair compare
// equal — the dedup key for derived edge tables everywhere in the kernel.
// EdgedCurve stores its own edges in the order they were created.
type EdgeVertices struct {
	V0, V1 geoid.Index
}

func canonicalEdge(a, b geoid.Index) EdgeVertices {
	if a <= b {
		return EdgeVertices{a, b}
	}
	return EdgeVertices{b, a}
}

// PointSet is vertex coordinates with no topology: the degenerate mesh
// kind used for point clouds.
type PointSet[C Coord] struct {
	*VertexSet[C]
}

// NewPointSet returns an empty point set.
func NewPointSet[C Coord]() *PointSet[C] {
	return &PointSet[C]{VertexSet: NewVertexSet[C]()}
}

// EdgedCurve is a vertex set plus an explicit, optional edge table: a
// sequence of (v0,v1) pairs with their own attribute manager.
type EdgedCurve[C Coord] struct {
	*VertexSet[C]
	edges      []EdgeVertices
	edgeAttrs  *attribute.Manager
	index      map[EdgeVertices]geoid.Index
}

// NewEdgedCurve returns an empty edged curve.
func NewEdgedCurve[C Coord]() *EdgedCurve[C] {
	return &EdgedCurve[C]{
		VertexSet: NewVertexSet[C](),
		edgeAttrs: attribute.NewManager(0),
		index:     make(map[EdgeVertices]geoid.Index),
	}
}

// NbEdges returns the number of edges.
func (c *EdgedCurve[C]) NbEdges() geoid.Index { return geoid.Index(len(c.edges)) }

// EdgeAttributes returns the edge attribute manager.
func (c *EdgedCurve[C]) EdgeAttributes() *attribute.Manager { return c.edgeAttrs }

// EdgeVertex returns the local-th vertex (0 or 1) of edge e.
func (c *EdgedCurve[C]) EdgeVertex(e geoid.Index, local geoid.LocalIndex) (geoid.Index, error) {
	if e >= c.NbEdges() {
		return 0, ErrIndexOutOfRange
	}
	if local == 0 {
		return c.edges[e].V0, nil
	}
	return c.edges[e].V1, nil
}

// CreateEdge appends an edge between v0 and v1 (deduplicated: returns the
// existing edge id if that unordered pair is already present).
func (c *EdgedCurve[C]) CreateEdge(v0, v1 geoid.Index) geoid.Index {
	key := canonicalEdge(v0, v1)
	if id, ok := c.index[key]; ok {
		return id
	}
	id := c.NbEdges()
	c.edges = append(c.edges, EdgeVertices{v0, v1})
	c.index[key] = id
	c.edgeAttrs.Resize(id + 1)
	return id
}

// EdgeLength returns the Euclidean length of edge e.
func (c *EdgedCurve[C]) EdgeLength(e geoid.Index) (float64, error) {
	if e >= c.NbEdges() {
		return 0, ErrIndexOutOfRange
	}
	v0, _ := c.Point(c.edges[e].V0)
	v1, _ := c.Point(c.edges[e].V1)
	return distance(v0, v1), nil
}

func distance[C Coord](a, b C) float64 {
	switch va := any(a).(type) {
	case geoid.Point2D:
		vb := any(b).(geoid.Point2D)
		return va.Sub(vb).Length()
	case geoid.Point3D:
		vb := any(b).(geoid.Point3D)
		return va.Sub(vb).Length()
	}
	return 0
}
