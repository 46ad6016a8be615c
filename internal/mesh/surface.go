package mesh

import (
	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// PolygonVertexRef names a polygon's local vertex slot (p, i).
type PolygonVertexRef struct {
	Polygon geoid.Index
	Local   geoid.Index
}

// PolygonEdgeRef names a polygon's local edge slot (p, i): the edge from
// local vertex i to local vertex (i+1) mod arity.
type PolygonEdgeRef struct {
	Polygon geoid.Index
	Local   geoid.Index
}

// SurfaceMesh holds polygons of variable arity with adjacency, a derived
// edge table enabled on demand, and a derived polygons-around-vertex index
// maintained alongside it.
//
// Derived tables are rebuilt on every mutating operation rather than
// maintained incrementally: simpler to keep correct, and the kernel's
// builders are not expected to run in a hot loop per polygon edit (see
// DESIGN.md).
type SurfaceMesh[C Coord] struct {
	*VertexSet[C]

	polyVerts []geoid.Index // flattened CSR
	polyPtr   []geoid.Index // length nbPolygons+1
	adjacent  []geoid.Index // parallel to polyVerts; NoIndex = on border
	polyAttrs *attribute.Manager

	edgesEnabled bool
	edges        []EdgeVertices
	edgeIndex    map[EdgeVertices]geoid.Index
	edgeAttrs    *attribute.Manager
	polygonEdge  []geoid.Index // parallel to polyVerts: edge id per polygon edge
	aroundVertex [][]PolygonVertexRef
}

// NewSurfaceMesh returns an empty surface mesh.
func NewSurfaceMesh[C Coord]() *SurfaceMesh[C] {
	return &SurfaceMesh[C]{
		VertexSet: NewVertexSet[C](),
		polyPtr:   []geoid.Index{0},
		polyAttrs: attribute.NewManager(0),
	}
}

// PolygonAttributes returns the polygon attribute manager.
func (s *SurfaceMesh[C]) PolygonAttributes() *attribute.Manager { return s.polyAttrs }

// EdgeAttributes returns the derived-edge attribute manager; valid only
// while edges are enabled (empty manager otherwise).
func (s *SurfaceMesh[C]) EdgeAttributes() *attribute.Manager { return s.edgeAttrs }

// NbPolygons returns the polygon count.
func (s *SurfaceMesh[C]) NbPolygons() geoid.Index { return geoid.Index(len(s.polyPtr) - 1) }

// NbPolygonVertices returns polygon p's arity.
func (s *SurfaceMesh[C]) NbPolygonVertices(p geoid.Index) geoid.Index {
	if p >= s.NbPolygons() {
		return 0
	}
	return s.polyPtr[p+1] - s.polyPtr[p]
}

// NbPolygonEdges is an alias of NbPolygonVertices: a polygon's arity.
func (s *SurfaceMesh[C]) NbPolygonEdges(p geoid.Index) geoid.Index { return s.NbPolygonVertices(p) }

// NbEdges returns the derived edge count (0 if edges are disabled).
func (s *SurfaceMesh[C]) NbEdges() geoid.Index { return geoid.Index(len(s.edges)) }

// EdgesEnabled reports whether the derived edge table is present.
func (s *SurfaceMesh[C]) EdgesEnabled() bool { return s.edgesEnabled }

func (s *SurfaceMesh[C]) slot(ref PolygonVertexRef) (geoid.Index, error) {
	if ref.Polygon >= s.NbPolygons() || ref.Local >= s.NbPolygonVertices(ref.Polygon) {
		return 0, ErrIndexOutOfRange
	}
	return s.polyPtr[ref.Polygon] + ref.Local, nil
}

// PolygonVertex returns the vertex id at local slot (p,i).
func (s *SurfaceMesh[C]) PolygonVertex(ref PolygonVertexRef) (geoid.Index, error) {
	idx, err := s.slot(ref)
	if err != nil {
		return 0, err
	}
	return s.polyVerts[idx], nil
}

// PolygonVertices returns the ordered vertex ids of polygon p.
func (s *SurfaceMesh[C]) PolygonVertices(p geoid.Index) []geoid.Index {
	if p >= s.NbPolygons() {
		return nil
	}
	lo, hi := s.polyPtr[p], s.polyPtr[p+1]
	out := make([]geoid.Index, hi-lo)
	copy(out, s.polyVerts[lo:hi])
	return out
}

// NextPolygonVertex returns (p, (i+1) mod arity).
func (s *SurfaceMesh[C]) NextPolygonVertex(ref PolygonVertexRef) PolygonVertexRef {
	n := s.NbPolygonVertices(ref.Polygon)
	return PolygonVertexRef{Polygon: ref.Polygon, Local: (ref.Local + 1) % n}
}

// PreviousPolygonVertex returns (p, (i-1) mod arity).
func (s *SurfaceMesh[C]) PreviousPolygonVertex(ref PolygonVertexRef) PolygonVertexRef {
	n := s.NbPolygonVertices(ref.Polygon)
	return PolygonVertexRef{Polygon: ref.Polygon, Local: (ref.Local + n - 1) % n}
}

// NextPolygonEdge is the edge-space analogue of NextPolygonVertex.
func (s *SurfaceMesh[C]) NextPolygonEdge(ref PolygonEdgeRef) PolygonEdgeRef {
	n := s.NbPolygonVertices(ref.Polygon)
	return PolygonEdgeRef{Polygon: ref.Polygon, Local: (ref.Local + 1) % n}
}

// PreviousPolygonEdge is the edge-space analogue of PreviousPolygonVertex.
func (s *SurfaceMesh[C]) PreviousPolygonEdge(ref PolygonEdgeRef) PolygonEdgeRef {
	n := s.NbPolygonVertices(ref.Polygon)
	return PolygonEdgeRef{Polygon: ref.Polygon, Local: (ref.Local + n - 1) % n}
}

// PolygonAdjacent returns the polygon across edge (p,i), or NoIndex if it
// is on border.
func (s *SurfaceMesh[C]) PolygonAdjacent(ref PolygonEdgeRef) geoid.Index {
	idx, err := s.slot(PolygonVertexRef(ref))
	if err != nil {
		return geoid.NoIndex
	}
	return s.adjacent[idx]
}

// IsEdgeOnBorder reports whether edge (p,i) has no paired adjacent polygon.
func (s *SurfaceMesh[C]) IsEdgeOnBorder(ref PolygonEdgeRef) bool {
	return !s.PolygonAdjacent(ref).IsSet()
}

// PolygonAdjacentEdge returns the local edge slot on the neighbouring
// polygon that shares edge (p,i), or (NoIndex, NoIndex) if on border.
func (s *SurfaceMesh[C]) PolygonAdjacentEdge(ref PolygonEdgeRef) PolygonEdgeRef {
	q := s.PolygonAdjacent(ref)
	if !q.IsSet() {
		return PolygonEdgeRef{Polygon: geoid.NoIndex, Local: geoid.NoIndex}
	}
	va, vb := s.edgeEndpoints(ref)
	n := s.NbPolygonVertices(q)
	for k := geoid.Index(0); k < n; k++ {
		other := PolygonEdgeRef{Polygon: q, Local: k}
		oa, ob := s.edgeEndpoints(other)
		if (oa == va && ob == vb) || (oa == vb && ob == va) {
			return other
		}
	}
	return PolygonEdgeRef{Polygon: geoid.NoIndex, Local: geoid.NoIndex}
}

func (s *SurfaceMesh[C]) edgeEndpoints(ref PolygonEdgeRef) (geoid.Index, geoid.Index) {
	v0, _ := s.PolygonVertex(PolygonVertexRef(ref))
	v1, _ := s.PolygonVertex(s.NextPolygonVertex(PolygonVertexRef(ref)))
	return v0, v1
}

// PolygonsAroundVertex returns every (p,i) with polygon_vertex(p,i)==v.
// Requires edges enabled (the index is cached alongside the edge table);
// returns nil otherwise.
func (s *SurfaceMesh[C]) PolygonsAroundVertex(v geoid.Index) []PolygonVertexRef {
	if !s.edgesEnabled || int(v) >= len(s.aroundVertex) {
		return nil
	}
	out := make([]PolygonVertexRef, len(s.aroundVertex[v]))
	copy(out, s.aroundVertex[v])
	return out
}

// PolygonEdgeFromVertices returns the (p,i) whose consecutive vertices
// equal (from,to), or (NoIndex,NoIndex) if none.
func (s *SurfaceMesh[C]) PolygonEdgeFromVertices(from, to geoid.Index) PolygonEdgeRef {
	for p := geoid.Index(0); p < s.NbPolygons(); p++ {
		n := s.NbPolygonVertices(p)
		for i := geoid.Index(0); i < n; i++ {
			ref := PolygonEdgeRef{Polygon: p, Local: i}
			v0, v1 := s.edgeEndpoints(ref)
			if v0 == from && v1 == to {
				return ref
			}
		}
	}
	return PolygonEdgeRef{Polygon: geoid.NoIndex, Local: geoid.NoIndex}
}

// NextOnBorder walks the border cycle through the vertex shared with the
// next polygon edge. Precondition: (p,i) is on border.
func (s *SurfaceMesh[C]) NextOnBorder(ref PolygonEdgeRef) (PolygonEdgeRef, error) {
	if !s.IsEdgeOnBorder(ref) {
		return PolygonEdgeRef{}, ErrEdgeNotOnBorder
	}
	_, v1 := s.edgeEndpoints(ref)
	cur := s.NextPolygonEdge(ref)
	for s.IsEdgeOnBorder(cur) == false {
		adj := s.PolygonAdjacentEdge(cur)
		cur = s.NextPolygonEdge(adj)
	}
	v0, _ := s.edgeEndpoints(cur)
	if v0 != v1 {
		// consistency not guaranteed on non-manifold fans; still return
		// the first border edge found walking forward.
		return cur, nil
	}
	return cur, nil
}

// PreviousOnBorder walks the border cycle backward. Precondition: (p,i) is
// on border.
func (s *SurfaceMesh[C]) PreviousOnBorder(ref PolygonEdgeRef) (PolygonEdgeRef, error) {
	if !s.IsEdgeOnBorder(ref) {
		return PolygonEdgeRef{}, ErrEdgeNotOnBorder
	}
	cur := s.PreviousPolygonEdge(ref)
	for s.IsEdgeOnBorder(cur) == false {
		adj := s.PolygonAdjacentEdge(cur)
		cur = s.PreviousPolygonEdge(adj)
	}
	return cur, nil
}

// --- geometry queries ---

// EdgeBarycenter returns the midpoint of derived edge e.
func (s *SurfaceMesh[C]) EdgeBarycenter(e geoid.Index) (C, error) {
	var zero C
	if e >= s.NbEdges() {
		return zero, ErrIndexOutOfRange
	}
	v0, _ := s.Point(s.edges[e].V0)
	v1, _ := s.Point(s.edges[e].V1)
	return midpoint(v0, v1), nil
}

func midpoint[C Coord](a, b C) C {
	switch va := any(a).(type) {
	case geoid.Point2D:
		vb := any(b).(geoid.Point2D)
		return any(geoid.Point2D{X: (va.X + vb.X) / 2, Y: (va.Y + vb.Y) / 2}).(C)
	case geoid.Point3D:
		vb := any(b).(geoid.Point3D)
		return any(geoid.Point3D{X: (va.X + vb.X) / 2, Y: (va.Y + vb.Y) / 2, Z: (va.Z + vb.Z) / 2}).(C)
	}
	return a
}

// EdgeLength returns the Euclidean length of derived edge e.
func (s *SurfaceMesh[C]) EdgeLength(e geoid.Index) (float64, error) {
	if e >= s.NbEdges() {
		return 0, ErrIndexOutOfRange
	}
	v0, _ := s.Point(s.edges[e].V0)
	v1, _ := s.Point(s.edges[e].V1)
	return distance(v0, v1), nil
}

// PolygonBarycenter returns the arithmetic mean of polygon p's vertices.
func (s *SurfaceMesh[C]) PolygonBarycenter(p geoid.Index) C {
	var zero C
	verts := s.PolygonVertices(p)
	if len(verts) == 0 {
		return zero
	}
	switch any(zero).(type) {
	case geoid.Point2D:
		var x, y float64
		for _, v := range verts {
			pt, _ := s.Point(v)
			pp := any(pt).(geoid.Point2D)
			x += pp.X
			y += pp.Y
		}
		n := float64(len(verts))
		return any(geoid.Point2D{X: x / n, Y: y / n}).(C)
	case geoid.Point3D:
		var x, y, z float64
		for _, v := range verts {
			pt, _ := s.Point(v)
			pp := any(pt).(geoid.Point3D)
			x += pp.X
			y += pp.Y
			z += pp.Z
		}
		n := float64(len(verts))
		return any(geoid.Point3D{X: x / n, Y: y / n, Z: z / n}).(C)
	}
	return zero
}

// PolygonNormal returns polygon p's normal via Newell's method, or false
// if the polygon is degenerate. Only meaningful for 3D surface meshes.
func (s *SurfaceMesh[C]) PolygonNormal(p geoid.Index) (geoid.Vector3D, bool) {
	verts := s.PolygonVertices(p)
	var n geoid.Vector3D
	for i, v := range verts {
		pt, _ := s.Point(v)
		p3, ok := any(pt).(geoid.Point3D)
		if !ok {
			return geoid.Vector3D{}, false
		}
		next, _ := s.Point(verts[(i+1)%len(verts)])
		q3 := any(next).(geoid.Point3D)
		n.X += (p3.Y - q3.Y) * (p3.Z + q3.Z)
		n.Y += (p3.Z - q3.Z) * (p3.X + q3.X)
		n.Z += (p3.X - q3.X) * (p3.Y + q3.Y)
	}
	if n.Length() <= geoid.GlobalEpsilon {
		return geoid.Vector3D{}, false
	}
	return n, true
}

// PolygonArea returns the polygon's area: shoelace formula in its own 2D
// embedding, or the signed area w.r.t. the computed normal in 3D.
func (s *SurfaceMesh[C]) PolygonArea(p geoid.Index) float64 {
	verts := s.PolygonVertices(p)
	if len(verts) < 3 {
		return 0
	}
	var zero C
	switch any(zero).(type) {
	case geoid.Point2D:
		var sum float64
		for i, v := range verts {
			a, _ := s.Point(v)
			pa := any(a).(geoid.Point2D)
			b, _ := s.Point(verts[(i+1)%len(verts)])
			pb := any(b).(geoid.Point2D)
			sum += pa.X*pb.Y - pb.X*pa.Y
		}
		if sum < 0 {
			sum = -sum
		}
		return sum / 2
	case geoid.Point3D:
		n, ok := s.PolygonNormal(p)
		if !ok {
			return 0
		}
		return n.Length() / 2
	}
	return 0
}

// PolygonVertexNormal returns the area-weighted mean of the normals of
// polygons incident to vertex v, skipping degenerate polygons. Requires
// edges enabled. Only meaningful for 3D surface meshes.
func (s *SurfaceMesh[C]) PolygonVertexNormal(v geoid.Index) (geoid.Vector3D, bool) {
	var sum geoid.Vector3D
	any_ := false
	for _, ref := range s.PolygonsAroundVertex(v) {
		n, ok := s.PolygonNormal(ref.Polygon)
		if !ok {
			continue
		}
		area := s.PolygonArea(ref.Polygon)
		sum = sum.Add(n.Normalize1().Scale(area))
		any_ = true
	}
	if !any_ || sum.Length() <= geoid.GlobalEpsilon {
		return geoid.Vector3D{}, false
	}
	n, err := sum.Normalize()
	if err != nil {
		return geoid.Vector3D{}, false
	}
	return n, true
}
