// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// A unit right tetrahedron at the origin has volume 1/6 and each
// coordinate-plane facet has area 1/2.
func TestTetrahedronVolumeAndFacetArea(tst *testing.T) {

	chk.PrintTitle("tetrahedron volume and facet area")

	s := NewSolidMesh()
	s.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 1, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 0, Y: 1, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 1})
	if _, err := s.CreateTetrahedron([4]geoid.Index{0, 1, 2, 3}); err != nil {
		tst.Fatalf("CreateTetrahedron: %v", err)
	}
	s.EnableFacets()

	chk.Scalar(tst, "tetra volume", 1e-12, s.PolyhedronVolume(0), 1.0/6.0)

	var totalArea float64
	for f := geoid.Index(0); f < s.NbPolyhedronFacets(0); f++ {
		area := s.PolyhedronFacetArea(PolyhedronFacetRef{Polyhedron: 0, Facet: f})
		if area <= 0 {
			tst.Fatalf("facet %d has non-positive area %f", f, area)
		}
		totalArea += area
	}
	// 3 right-triangle faces of area 1/2 plus the slanted face.
	if totalArea <= 1.5 {
		tst.Fatalf("total facet area %f should exceed the 3 axis faces alone (1.5)", totalArea)
	}
}

// EdgeIncidentFacets finds the two facets sharing a given edge of a
// tetrahedron, and OppositeEdgeIncidentFacets finds the other two.
func TestTetrahedronEdgeFacetQueries(tst *testing.T) {

	chk.PrintTitle("tetrahedron edge facet queries")

	s := NewSolidMesh()
	s.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 1, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 0, Y: 1, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 1})
	if _, err := s.CreateTetrahedron([4]geoid.Index{0, 1, 2, 3}); err != nil {
		tst.Fatalf("CreateTetrahedron: %v", err)
	}
	s.EnableFacets()

	facets := s.EdgeIncidentFacets(0, 0, 1)
	chk.IntAssert(len(facets), 2)

	ov0, ov1, ok := s.OppositeEdgeVertices(0, 0, 1)
	if !ok {
		tst.Fatalf("OppositeEdgeVertices should succeed on a tetrahedron")
	}
	if (ov0 != 2 && ov0 != 3) || (ov1 != 2 && ov1 != 3) || ov0 == ov1 {
		tst.Fatalf("opposite edge vertices = (%d,%d), want {2,3}", ov0, ov1)
	}

	opposite := s.OppositeEdgeIncidentFacets(0, 0, 1)
	chk.IntAssert(len(opposite), 2)
	for _, f := range opposite {
		for _, g := range facets {
			if f == g {
				tst.Fatalf("opposite-edge facet %d should not coincide with edge-incident facet", f)
			}
		}
	}
}
