// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package predicates

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// Invariant 8: orient is antisymmetric in its first two arguments and
// translation-invariant.
func TestOrientSignDeterminism(tst *testing.T) {

	chk.PrintTitle("orient sign determinism")

	a := geoid.Point3D{X: 0, Y: 0, Z: 0}
	b := geoid.Point3D{X: 1, Y: 0, Z: 0}
	c := geoid.Point3D{X: 0, Y: 1, Z: 0}
	d := geoid.Point3D{X: 0, Y: 0, Z: 1}

	if Orient3D(a, b, c, d) != -Orient3D(b, a, c, d) {
		tst.Fatalf("orient3d not antisymmetric under swap of first two args")
	}

	shift := geoid.Vector3D{X: 3.5, Y: -2, Z: 7}
	shifted := func(p geoid.Point3D) geoid.Point3D {
		return geoid.Point3D{X: p.X + shift.X, Y: p.Y + shift.Y, Z: p.Z + shift.Z}
	}
	if Orient3D(a, b, c, d) != Orient3D(shifted(a), shifted(b), shifted(c), shifted(d)) {
		tst.Fatalf("orient3d not translation invariant")
	}

	a2 := geoid.Point2D{X: 0, Y: 0}
	b2 := geoid.Point2D{X: 1, Y: 0}
	c2 := geoid.Point2D{X: 0, Y: 1}
	if Orient2D(a2, b2, c2) != -Orient2D(b2, a2, c2) {
		tst.Fatalf("orient2d not antisymmetric under swap of first two args")
	}
}

// S-position-predicates-2d: segment [(0,0),(1,0)], classify five points by
// position (inside/outside the bounded segment) and side (sign of the
// supporting line's orientation).
func TestPositionPredicates2D(tst *testing.T) {

	chk.PrintTitle("position predicates 2d")

	p0 := geoid.Point2D{X: 0, Y: 0}
	p1 := geoid.Point2D{X: 1, Y: 0}

	cases := []struct {
		point        geoid.Point2D
		wantPosition Position
		wantSide     Sign
	}{
		{geoid.Point2D{X: 0.5, Y: 0}, PosInside, Zero},
		{geoid.Point2D{X: 10, Y: 0}, PosOutside, Zero},
		{geoid.Point2D{X: 0.3, Y: 2}, PosOutside, Positive},
		{geoid.Point2D{X: 12, Y: -6}, PosOutside, Negative},
		{geoid.Point2D{X: 0, Y: -1e-10}, PosOutside, Negative},
	}

	for i, c := range cases {
		res := PointSegmentPosition(p0, p1, c.point)
		if res.Position != c.wantPosition {
			tst.Fatalf("case %d: position = %v, want %v", i, res.Position, c.wantPosition)
		}
		side := PointSideToSegment(p0, p1, c.point)
		if side != c.wantSide {
			tst.Fatalf("case %d: side = %v, want %v", i, side, c.wantSide)
		}
	}
}
