package predicates

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// Position is the symbolic location of a point relative to a segment,
// triangle, or tetrahedron, expressed purely in terms of exact predicate
// signs — never a tolerance.
type Position int

// Position values. VertexI/EdgeI/FacetI carry their local index separately
// (see PositionResult).
const (
	PosOutside Position = iota
	PosInside
	PosVertex
	PosEdge
	PosFacet
	PosParallel
)

// PositionResult pairs a Position with the local index it refers to
// (vertex/edge/facet number), 0 when Position doesn't name one.
type PositionResult struct {
	Position Position
	Local    geoid.LocalIndex
}

// PointSideToSegment classifies a 2D point relative to the line through a
// segment's two endpoints (the sign of Orient2D(p0, p1, point)).
func PointSideToSegment(p0, p1, point geoid.Point2D) Sign {
	return Orient2D(p0, p1, point)
}

// PointSideToLine is an alias of PointSideToSegment naming a 2D line
// through two points rather than a bounded segment.
func PointSideToLine(p0, p1, point geoid.Point2D) Sign {
	return Orient2D(p0, p1, point)
}

// PointSideToPlane classifies a 3D point relative to the plane through
// a,b,c (the sign of Orient3D(a, b, c, point)).
func PointSideToPlane(a, b, c, point geoid.Point3D) Sign {
	return Orient3D(a, b, c, point)
}

// PointSideToTriangle is an alias of PointSideToPlane: a triangle's
// supporting plane, classified the same way.
func PointSideToTriangle(a, b, c, point geoid.Point3D) Sign {
	return Orient3D(a, b, c, point)
}

// PointSegmentPosition classifies point relative to the bounded segment
// [p0,p1] in 2D. A point that is not colinear with the segment is reported
// PosOutside, since a segment has no "parallel" concept of its own —
// parallel is reserved for segment/segment and segment/triangle overlap
// classification.
func PointSegmentPosition(p0, p1, point geoid.Point2D) PositionResult {
	if Orient2D(p0, p1, point) != Zero {
		return PositionResult{Position: PosOutside}
	}
	// colinear: locate point along the p0->p1 axis using the dominant
	// coordinate to avoid division.
	along := func(a, b, p float64) (t0, t1, tp float64) { return a, b, p }
	var a, b, p float64
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx*dx >= dy*dy {
		a, b, p = along(p0.X, p1.X, point.X)
	} else {
		a, b, p = along(p0.Y, p1.Y, point.Y)
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case p == a:
		return PositionResult{Position: PosVertex, Local: 0}
	case p == b:
		return PositionResult{Position: PosVertex, Local: 1}
	case p > lo && p < hi:
		return PositionResult{Position: PosInside}
	default:
		return PositionResult{Position: PosOutside}
	}
}

// PointTrianglePosition classifies point, known coplanar with triangle
// (a,b,c), against the triangle using the three edge side predicates.
// Non-coplanar points (Orient3D(a,b,c,point) != Zero) are reported
// PosOutside.
func PointTrianglePosition(a, b, c, point geoid.Point3D) PositionResult {
	if Orient3D(a, b, c, point) != Zero {
		return PositionResult{Position: PosOutside}
	}
	// project onto the dominant axis pair of the triangle's normal to
	// reduce to a 2D in-triangle test: the exact Orient2D sign against each
	// edge decides inside/outside, and a Zero sign is resolved to a vertex
	// or edge position by a colinear test along that edge.
	ax, ay := dominantProjection(a, b, c)
	pa := project(a, ax, ay)
	pb := project(b, ax, ay)
	pc := project(c, ax, ay)
	pp := project(point, ax, ay)

	s0 := Orient2D(pa, pb, pp)
	s1 := Orient2D(pb, pc, pp)
	s2 := Orient2D(pc, pa, pp)

	if s0 == Zero {
		if r := vertexOrEdge(pa, pb, pp, 0); r.Position != PosOutside {
			return r
		}
	}
	if s1 == Zero {
		if r := vertexOrEdge(pb, pc, pp, 1); r.Position != PosOutside {
			return r
		}
	}
	if s2 == Zero {
		if r := vertexOrEdge(pc, pa, pp, 2); r.Position != PosOutside {
			return r
		}
	}
	if sameSign(s0, s1, s2) {
		return PositionResult{Position: PosInside}
	}
	return PositionResult{Position: PosOutside}
}

func sameSign(signs ...Sign) bool {
	pos, neg := false, false
	for _, s := range signs {
		if s == Positive {
			pos = true
		}
		if s == Negative {
			neg = true
		}
	}
	return !(pos && neg)
}

// vertexOrEdge inspects a colinear point against the bounded edge (p0,p1)
// whose local edge index is edgeIdx; returns PosVertex with local index
// edgeIdx or (edgeIdx+1)%3 for the two endpoints, PosEdge for strictly
// between, PosOutside when outside the segment's bound.
func vertexOrEdge(p0, p1, p geoid.Point2D, edgeIdx geoid.LocalIndex) PositionResult {
	res := PointSegmentPosition(p0, p1, p)
	switch res.Position {
	case PosVertex:
		if res.Local == 0 {
			return PositionResult{Position: PosVertex, Local: edgeIdx}
		}
		return PositionResult{Position: PosVertex, Local: (edgeIdx + 1) % 3}
	case PosInside:
		return PositionResult{Position: PosEdge, Local: edgeIdx}
	default:
		return PositionResult{Position: PosOutside}
	}
}

// dominantProjection picks the axis pair (0=x,1=y,2=z) to project a,b,c
// onto that maximizes the projected area, avoiding degenerate projections.
func dominantProjection(a, b, c geoid.Point3D) (ax, ay int) {
	nx := (b.Y-a.Y)*(c.Z-a.Z) - (b.Z-a.Z)*(c.Y-a.Y)
	ny := (b.Z-a.Z)*(c.X-a.X) - (b.X-a.X)*(c.Z-a.Z)
	nz := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if nx < 0 {
		nx = -nx
	}
	if ny < 0 {
		ny = -ny
	}
	if nz < 0 {
		nz = -nz
	}
	switch {
	case nz >= nx && nz >= ny:
		return 0, 1
	case ny >= nx && ny >= nz:
		return 0, 2
	default:
		return 1, 2
	}
}

func project(p geoid.Point3D, ax, ay int) geoid.Point2D {
	coord := func(axis int) float64 {
		switch axis {
		case 0:
			return p.X
		case 1:
			return p.Y
		default:
			return p.Z
		}
	}
	return geoid.Point2D{X: coord(ax), Y: coord(ay)}
}

// PointTetrahedronPosition classifies point against tetrahedron (a,b,c,d)
// using the four facet-side predicates; facet i is the one opposite vertex
// i. For PosEdge, Local is the lower index of the two facets that meet at
// the edge, not an edge number.
func PointTetrahedronPosition(a, b, c, d, point geoid.Point3D) PositionResult {
	// facets, oriented so "inside" means non-negative side for all facets
	// consistent with the tetrahedron's own orientation.
	vol := Orient3D(a, b, c, d)
	if vol == Zero {
		return PositionResult{Position: PosParallel}
	}
	type facet struct {
		p0, p1, p2 geoid.Point3D
		opposite   geoid.Point3D
		localFacet geoid.LocalIndex
	}
	facets := []facet{
		{b, c, d, a, 0},
		{a, c, d, b, 1},
		{a, b, d, c, 2},
		{a, b, c, d, 3},
	}
	sides := make([]Sign, 4)
	for i, f := range facets {
		refSide := Orient3D(f.p0, f.p1, f.p2, f.opposite)
		s := Orient3D(f.p0, f.p1, f.p2, point)
		if refSide == Negative {
			s = s.Opposite()
		}
		sides[i] = s
	}
	for _, s := range sides {
		if s == Negative {
			return PositionResult{Position: PosOutside}
		}
	}
	zeroCount := 0
	var zeroFacets []geoid.LocalIndex
	for i, s := range sides {
		if s == Zero {
			zeroCount++
			zeroFacets = append(zeroFacets, geoid.LocalIndex(i))
		}
	}
	switch zeroCount {
	case 0:
		return PositionResult{Position: PosInside}
	case 1:
		return PositionResult{Position: PosFacet, Local: zeroFacets[0]}
	case 2:
		return PositionResult{Position: PosEdge, Local: zeroFacets[0]}
	default:
		// on three facets: the vertex opposite the remaining facet
		for i, s := range sides {
			if s != Zero {
				return PositionResult{Position: PosVertex, Local: geoid.LocalIndex(i)}
			}
		}
		return PositionResult{Position: PosVertex, Local: 0}
	}
}
