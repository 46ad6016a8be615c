package predicates

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// Triangle3D is a supplemented primitive (present in original_source's
// basic_objects/triangle.cpp, dropped by the distillation) used by the
// segment/triangle intersection classification. The surface-mesh
// area/normal queries compute their own geometry and do not use it.
type Triangle3D struct {
	A, B, C geoid.Point3D
}

// Normal returns Newell's-method normal of the triangle, or (zero vector,
// false) if the triangle is degenerate (zero area).
func (t Triangle3D) Normal() (geoid.Vector3D, bool) {
	u := t.B.Sub(t.A)
	v := t.C.Sub(t.A)
	n := u.Cross(v)
	if n.Length() <= geoid.GlobalEpsilon {
		return geoid.Vector3D{}, false
	}
	return n, true
}

// Area returns the triangle's area, 0 for a degenerate triangle.
func (t Triangle3D) Area() float64 {
	u := t.B.Sub(t.A)
	v := t.C.Sub(t.A)
	return 0.5 * u.Cross(v).Length()
}

// IntersectionPosition is the pair of symbolic positions returned by
// segment/segment and segment/triangle intersection classification: the
// position on the source primitive and the position on the target.
type IntersectionPosition struct {
	Source PositionResult
	Target PositionResult
}

// SegmentSegmentIntersection2D classifies the intersection of segment
// (a0,a1) with segment (b0,b1). Colinear/coplanar overlaps of positive
// measure are reported as Source=PosParallel, Target=PosParallel via a
// dedicated overlap branch; otherwise each side returns its own endpoint
// position.
func SegmentSegmentIntersection2D(a0, a1, b0, b1 geoid.Point2D) (IntersectionPosition, bool) {
	sa0 := Orient2D(b0, b1, a0)
	sa1 := Orient2D(b0, b1, a1)
	sb0 := Orient2D(a0, a1, b0)
	sb1 := Orient2D(a0, a1, b1)

	if sa0 == Zero && sa1 == Zero {
		// colinear: classify as an overlap in parameter space along the
		// dominant axis of segment a.
		return classifyColinearOverlap(a0, a1, b0, b1)
	}
	if sa0 == sa1 && sa0 != Zero {
		return IntersectionPosition{}, false
	}
	if sb0 == sb1 && sb0 != Zero {
		return IntersectionPosition{}, false
	}
	// proper or touching crossing: locate the intersection point's
	// position on each segment via the endpoint-colinearity signs already
	// computed.
	src := PositionResult{Position: PosInside}
	if sa0 == Zero {
		src = PositionResult{Position: PosVertex, Local: 0}
	} else if sa1 == Zero {
		src = PositionResult{Position: PosVertex, Local: 1}
	}
	tgt := PositionResult{Position: PosInside}
	if sb0 == Zero {
		tgt = PositionResult{Position: PosVertex, Local: 0}
	} else if sb1 == Zero {
		tgt = PositionResult{Position: PosVertex, Local: 1}
	}
	return IntersectionPosition{Source: src, Target: tgt}, true
}

func classifyColinearOverlap(a0, a1, b0, b1 geoid.Point2D) (IntersectionPosition, bool) {
	// project every point onto the dominant axis of segment a and test
	// for positive-measure overlap of the two parameter intervals.
	dx := a1.X - a0.X
	dy := a1.Y - a0.Y
	axis := func(p geoid.Point2D) float64 {
		if dx*dx >= dy*dy {
			return p.X
		}
		return p.Y
	}
	amin, amax := minmax(axis(a0), axis(a1))
	bmin, bmax := minmax(axis(b0), axis(b1))
	lo := amin
	if bmin > lo {
		lo = bmin
	}
	hi := amax
	if bmax < hi {
		hi = bmax
	}
	if lo < hi {
		return IntersectionPosition{
			Source: PositionResult{Position: PosParallel},
			Target: PositionResult{Position: PosParallel},
		}, true
	}
	if lo == hi {
		return IntersectionPosition{
			Source: PositionResult{Position: PosVertex},
			Target: PositionResult{Position: PosVertex},
		}, true
	}
	return IntersectionPosition{}, false
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// SegmentTriangleIntersection3D classifies the intersection of segment
// (p0,p1) with triangle t. Coplanar configurations with positive-measure
// overlap resolve to PosParallel/PosParallel via the dedicated overlap
// branch; otherwise the crossing point's position on the triangle is
// derived from PointTrianglePosition.
func SegmentTriangleIntersection3D(p0, p1 geoid.Point3D, t Triangle3D) (IntersectionPosition, bool) {
	s0 := Orient3D(t.A, t.B, t.C, p0)
	s1 := Orient3D(t.A, t.B, t.C, p1)

	if s0 == Zero && s1 == Zero {
		// both endpoints lie in the triangle's plane: a positive-measure
		// overlap exists when either segment endpoint lies strictly
		// inside or on the border of the triangle, or when the segment
		// crosses the triangle's interior.
		pos0 := PointTrianglePosition(t.A, t.B, t.C, p0)
		pos1 := PointTrianglePosition(t.A, t.B, t.C, p1)
		overlap := pos0.Position != PosOutside || pos1.Position != PosOutside
		ax, ay := dominantProjection(t.A, t.B, t.C)
		corners := [3]geoid.Point3D{t.A, t.B, t.C}
		for i := 0; i < 3 && !overlap; i++ {
			_, overlap = SegmentSegmentIntersection2D(project(p0, ax, ay), project(p1, ax, ay),
				project(corners[i], ax, ay), project(corners[(i+1)%3], ax, ay))
		}
		if overlap {
			return IntersectionPosition{
				Source: PositionResult{Position: PosParallel},
				Target: PositionResult{Position: PosParallel},
			}, true
		}
		return IntersectionPosition{}, false
	}
	if s0 == s1 {
		return IntersectionPosition{}, false
	}
	// linear interpolation parameter where the segment crosses the plane
	total := float64(s0) - float64(s1)
	if total == 0 {
		return IntersectionPosition{}, false
	}
	w := float64(s0) / total
	cross := geoid.Point3D{
		X: p0.X + w*(p1.X-p0.X),
		Y: p0.Y + w*(p1.Y-p0.Y),
		Z: p0.Z + w*(p1.Z-p0.Z),
	}
	targetPos := PointTrianglePosition(t.A, t.B, t.C, cross)
	if targetPos.Position == PosOutside {
		return IntersectionPosition{}, false
	}
	srcPos := PositionResult{Position: PosInside}
	if w == 0 {
		srcPos = PositionResult{Position: PosVertex, Local: 0}
	} else if w == 1 {
		srcPos = PositionResult{Position: PosVertex, Local: 1}
	}
	return IntersectionPosition{Source: srcPos, Target: targetPos}, true
}
