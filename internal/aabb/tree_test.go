// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aabb

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// S-aabb-raytrace-2d: a 10x10 grid of axis-aligned boxes, half-width 0.5,
// touching exactly at their shared edges. Each vertical ray must hit the
// 10-i boxes above its origin, and a ray grazing the edge shared by two
// columns must report the boxes of both (2*10, no deduplication at the
// box level); ray-hit deduplication (invariant 10) lives in package
// raytrace, and invariant 9 is TestClosestElement below.
func TestRayGridScenario(tst *testing.T) {

	chk.PrintTitle("aabb ray grid scenario")

	var boxes []Box
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			x, y := float64(i), float64(j)
			boxes = append(boxes, NewBox(
				[]float64{x - 0.5, y - 0.5},
				[]float64{x + 0.5, y + 0.5},
			))
		}
	}
	tree := New(boxes)
	chk.IntAssert(tree.NbElements(), 100)

	for i := 0; i < 10; i++ {
		hits := tree.RayIntersections([]float64{float64(i), float64(i)}, []float64{0, 1})
		want := 10 - i
		chk.IntAssert(len(hits), want)
		for _, h := range hits {
			col := int(h) / 10
			if col != i {
				tst.Fatalf("ray from column %d hit box in column %d", i, col)
			}
		}
	}

	// A ray exactly on the edge shared by columns 0 and 1 grazes both.
	hits := tree.RayIntersections([]float64{0.5, -0.5}, []float64{0, 1})
	chk.IntAssert(len(hits), 20)
	seenCols := map[int]bool{}
	for _, h := range hits {
		seenCols[int(h)/10] = true
	}
	chk.IntAssert(len(seenCols), 2)
}

// Invariant 9: ClosestElement returns the element minimizing the caller's
// distance function, regardless of box-center proximity.
func TestClosestElement(tst *testing.T) {

	chk.PrintTitle("aabb closest element")

	boxes := []Box{
		NewBox([]float64{0, 0}, []float64{1, 1}),
		NewBox([]float64{10, 10}, []float64{11, 11}),
		NewBox([]float64{2, 2}, []float64{3, 3}),
	}
	tree := New(boxes)

	point := []float64{2.4, 2.4}
	dist := func(e ElementIndex) float64 {
		return tree.ElementBox(e).DistanceSquared(point)
	}
	best, _, found := tree.ClosestElement(point, dist)
	if !found {
		tst.Fatalf("ClosestElement found nothing")
	}
	if best != 2 {
		tst.Fatalf("closest element = %d, want 2", best)
	}
}
