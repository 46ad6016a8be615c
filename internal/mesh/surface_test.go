// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// S-polygonal-surface: a triangle and two quads sharing edges, then a
// vertex deletion (cascading into the polygon that references it) followed
// by a polygon deletion, checked against each intermediate edge count.
func TestPolygonalSurfaceScenario(tst *testing.T) {

	chk.PrintTitle("polygonal surface scenario")

	s := NewSurfaceMesh[geoid.Point3D]()
	s.CreatePoint(geoid.Point3D{X: 0.1, Y: 0.2, Z: 0.3})
	s.CreatePoint(geoid.Point3D{X: 2.1, Y: 9.4, Z: 6.7})
	s.CreatePoint(geoid.Point3D{X: 7.5, Y: 5.2, Z: 6.3})
	s.CreatePoint(geoid.Point3D{X: 8.1, Y: 1.4, Z: 4.7})
	s.CreatePoint(geoid.Point3D{X: 4.7, Y: 2.1, Z: 1.3})
	s.CreatePoint(geoid.Point3D{X: 9.3, Y: 5.3, Z: 6.7})
	s.CreatePoint(geoid.Point3D{X: 7.5, Y: 4.2, Z: 2.8})
	chk.IntAssert(int(s.NbVertices()), 7)

	if _, err := s.CreatePolygon([]geoid.Index{0, 1, 2}); err != nil {
		tst.Fatalf("CreatePolygon 0: %v", err)
	}
	if _, err := s.CreatePolygon([]geoid.Index{1, 3, 4, 2}); err != nil {
		tst.Fatalf("CreatePolygon 1: %v", err)
	}
	if _, err := s.CreatePolygon([]geoid.Index{1, 5, 6, 3}); err != nil {
		tst.Fatalf("CreatePolygon 2: %v", err)
	}
	s.EnableEdges()
	chk.IntAssert(int(s.NbEdges()), 9)

	s.ComputePolygonAdjacencies()
	chk.IntAssert(int(s.PolygonAdjacent(PolygonEdgeRef{Polygon: 0, Local: 1})), 1)
	if s.PolygonAdjacent(PolygonEdgeRef{Polygon: 1, Local: 3}) != 0 {
		tst.Fatalf("polygon 1 edge 3 should be adjacent to polygon 0")
	}
	got := s.PolygonAdjacentEdge(PolygonEdgeRef{Polygon: 0, Local: 1})
	want := PolygonEdgeRef{Polygon: 1, Local: 3}
	if got != want {
		tst.Fatalf("adjacent edge = %v, want %v", got, want)
	}
	if s.IsEdgeOnBorder(PolygonEdgeRef{Polygon: 2, Local: 0}) == false {
		tst.Fatalf("polygon 2 edge 0 should be a border edge")
	}
	if s.PolygonAdjacent(PolygonEdgeRef{Polygon: 2, Local: 3}) != 1 {
		tst.Fatalf("polygon 2 edge 3 should be adjacent to polygon 1")
	}

	around := s.PolygonsAroundVertex(1)
	chk.IntAssert(len(around), 3)

	var borders int
	for e := geoid.Index(0); e < s.NbPolygonEdges(0); e++ {
		if s.IsEdgeOnBorder(PolygonEdgeRef{Polygon: 0, Local: e}) {
			borders++
		}
	}
	chk.IntAssert(borders, 2)

	// Deleting vertex 0 drops the triangle that referenced it (its only
	// polygon), shrinking 3 polygons to 2 and 9 edges to 7.
	s.DeleteVertices([]bool{true, false, false, false, false, false, false})
	chk.IntAssert(int(s.NbVertices()), 6)
	chk.IntAssert(int(s.NbPolygons()), 2)
	chk.IntAssert(int(s.NbEdges()), 7)
	p, err := s.Point(0)
	if err != nil {
		tst.Fatalf("Point(0): %v", err)
	}
	chk.Scalar(tst, "vertex 0 after deletion", 1e-12, p.X, 2.1)
	chk.Scalar(tst, "vertex 0 after deletion", 1e-12, p.Y, 9.4)
	chk.Scalar(tst, "vertex 0 after deletion", 1e-12, p.Z, 6.7)
	if s.PolygonAdjacent(PolygonEdgeRef{Polygon: 1, Local: 3}) != 0 {
		tst.Fatalf("polygon 1 edge 3 should still be adjacent to polygon 0 after vertex deletion")
	}

	// Deleting the (now first) remaining polygon leaves a single isolated
	// quad, dropping edges from 7 to 4.
	s.DeletePolygons([]bool{true, false})
	chk.IntAssert(int(s.NbPolygons()), 1)
	chk.IntAssert(int(s.NbEdges()), 4)
	v0, _ := s.PolygonVertex(PolygonVertexRef{Polygon: 0, Local: 0})
	v1, _ := s.PolygonVertex(PolygonVertexRef{Polygon: 0, Local: 1})
	v2, _ := s.PolygonVertex(PolygonVertexRef{Polygon: 0, Local: 2})
	v3, _ := s.PolygonVertex(PolygonVertexRef{Polygon: 0, Local: 3})
	chk.IntAssert(int(v0), 0)
	chk.IntAssert(int(v1), 4)
	chk.IntAssert(int(v2), 5)
	chk.IntAssert(int(v3), 2)
}

// Invariant 3: polygon adjacency is always reciprocal after
// ComputePolygonAdjacencies.
func TestPolygonAdjacencyReciprocity(tst *testing.T) {

	chk.PrintTitle("polygon adjacency reciprocity")

	s := NewSurfaceMesh[geoid.Point3D]()
	for i := 0; i < 4; i++ {
		s.CreatePoint(geoid.Point3D{X: float64(i), Y: 0, Z: 0})
	}
	s.CreatePoint(geoid.Point3D{X: 0, Y: 1, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 3, Y: 1, Z: 0})
	if _, err := s.CreatePolygon([]geoid.Index{0, 1, 5, 4}); err != nil {
		tst.Fatalf("CreatePolygon 0: %v", err)
	}
	if _, err := s.CreatePolygon([]geoid.Index{1, 2, 5}); err != nil {
		tst.Fatalf("CreatePolygon 1: %v", err)
	}
	if _, err := s.CreatePolygon([]geoid.Index{2, 3, 5}); err != nil {
		tst.Fatalf("CreatePolygon 2: %v", err)
	}
	s.EnableEdges()
	s.ComputePolygonAdjacencies()

	for p := geoid.Index(0); p < s.NbPolygons(); p++ {
		for e := geoid.Index(0); e < s.NbPolygonEdges(p); e++ {
			q := s.PolygonAdjacent(PolygonEdgeRef{Polygon: p, Local: e})
			if q == geoid.NoIndex {
				continue
			}
			back := s.PolygonAdjacentEdge(PolygonEdgeRef{Polygon: p, Local: e})
			if s.PolygonAdjacent(back) != p {
				tst.Fatalf("polygon %d edge %d -> %d is not reciprocated", p, e, q)
			}
		}
	}
}

// Invariant 5: two polygons sharing an edge contribute a single dedup'd
// edge, not two.
func TestEdgeDeduplication(tst *testing.T) {

	chk.PrintTitle("edge deduplication")

	s := NewSurfaceMesh[geoid.Point3D]()
	s.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 1, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 1, Y: 1, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 0, Y: 1, Z: 0})
	if _, err := s.CreatePolygon([]geoid.Index{0, 1, 2}); err != nil {
		tst.Fatalf("CreatePolygon 0: %v", err)
	}
	if _, err := s.CreatePolygon([]geoid.Index{0, 2, 3}); err != nil {
		tst.Fatalf("CreatePolygon 1: %v", err)
	}
	s.EnableEdges()
	// 5 distinct undirected edges: (0,1) (1,2) (2,0) shared (2,3) (3,0).
	chk.IntAssert(int(s.NbEdges()), 5)
}
