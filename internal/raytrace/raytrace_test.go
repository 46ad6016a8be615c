// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raytrace

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/aabb"
)

// segment is a 2D line segment used only to exercise Engine in these tests.
type segment struct {
	a, b [2]float64
}

func (s segment) box() aabb.Box {
	return aabb.NewBox(
		[]float64{math.Min(s.a[0], s.b[0]), math.Min(s.a[1], s.b[1])},
		[]float64{math.Max(s.a[0], s.b[0]), math.Max(s.a[1], s.b[1])},
	)
}

func (s segment) DistanceToPoint(point []float64) float64 {
	return s.box().DistanceSquared(point)
}

// IntersectRay intersects a vertical ray (dir = (0,1)) against a horizontal
// segment at a fixed y; enough geometry for the dedup test below.
func (s segment) IntersectRay(origin, dir []float64) (float64, bool) {
	if dir[0] != 0 || s.a[1] != s.b[1] {
		return 0, false
	}
	y := s.a[1]
	if origin[0] < math.Min(s.a[0], s.b[0]) || origin[0] > math.Max(s.a[0], s.b[0]) {
		return 0, false
	}
	t := (y - origin[1]) / dir[1]
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Invariant 10: two elements sharing a dedup key (here, the two facets on
// either side of a ray passing exactly through a shared endpoint) report a
// single hit, not two.
func TestAllIntersectionsDedup(tst *testing.T) {

	chk.PrintTitle("raytrace dedup")

	// Two segments sharing the endpoint (1,1), both crossed by a ray along
	// x=1 heading in +y: without dedup this would report 2 hits at the same
	// shared vertex.
	elems := []Element{
		segment{a: [2]float64{0, 1}, b: [2]float64{1, 1}},
		segment{a: [2]float64{1, 1}, b: [2]float64{2, 1}},
	}
	dedupKey := func(e aabb.ElementIndex) string { return "shared-vertex" }
	eng := New(elems, func(e Element) aabb.Box { return e.(segment).box() }, dedupKey)

	hits := eng.AllIntersections([]float64{1, 0}, []float64{0, 1})
	chk.IntAssert(len(hits), 1)

	// Without a dedup key, both are reported.
	engNoDedup := New(elems, func(e Element) aabb.Box { return e.(segment).box() }, nil)
	hits2 := engNoDedup.AllIntersections([]float64{1, 0}, []float64{0, 1})
	chk.IntAssert(len(hits2), 2)
}

// AllIntersections sorts hits by increasing ray parameter t.
func TestAllIntersectionsSortedByT(tst *testing.T) {

	chk.PrintTitle("raytrace hits sorted by t")

	elems := []Element{
		segment{a: [2]float64{-1, 5}, b: [2]float64{1, 5}},
		segment{a: [2]float64{-1, 2}, b: [2]float64{1, 2}},
		segment{a: [2]float64{-1, 8}, b: [2]float64{1, 8}},
	}
	eng := New(elems, func(e Element) aabb.Box { return e.(segment).box() }, nil)
	hits := eng.AllIntersections([]float64{0, 0}, []float64{0, 1})
	chk.IntAssert(len(hits), 3)
	for i := 1; i < len(hits); i++ {
		if hits[i].T < hits[i-1].T {
			tst.Fatalf("hits not sorted: t[%d]=%f < t[%d]=%f", i, hits[i].T, i-1, hits[i-1].T)
		}
	}
	chk.Scalar(tst, "closest hit t", 1e-12, hits[0].T, 2)
}
