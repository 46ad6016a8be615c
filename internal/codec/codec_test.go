// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
	"github.com/Geode-solutions/opengeode-go/internal/mesh"
	"github.com/Geode-solutions/opengeode-go/internal/relationship"
)

func buildTriangleSurface() *mesh.SurfaceMesh[geoid.Point3D] {
	s := mesh.NewSurfaceMesh[geoid.Point3D]()
	s.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 1, Y: 0, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 0, Y: 1, Z: 0})
	s.CreatePoint(geoid.Point3D{X: 1, Y: 1, Z: 0})
	s.CreatePolygon([]geoid.Index{0, 1, 2})
	s.CreatePolygon([]geoid.Index{1, 3, 2})
	s.EnableEdges()
	s.ComputePolygonAdjacencies()
	return s
}

// Round-tripping a SurfaceMesh through either wire format preserves its
// vertex count, polygon count and adjacency.
func TestSurfaceMeshRoundTrip(tst *testing.T) {

	chk.PrintTitle("codec surface mesh round trip")

	for _, format := range []Format{FormatGob, FormatJSON} {
		s := buildTriangleSurface()
		var buf bytes.Buffer
		if err := EncodeSurfaceMesh(&buf, s, format); err != nil {
			tst.Fatalf("[%s] EncodeSurfaceMesh: %v", format, err)
		}
		got, err := DecodeSurfaceMesh(&buf, format)
		if err != nil {
			tst.Fatalf("[%s] DecodeSurfaceMesh: %v", format, err)
		}
		chk.IntAssert(int(got.NbVertices()), int(s.NbVertices()))
		chk.IntAssert(int(got.NbPolygons()), int(s.NbPolygons()))
		got.EnableEdges()
		chk.IntAssert(int(got.NbEdges()), int(s.NbEdges()))
		if got.PolygonAdjacent(mesh.PolygonEdgeRef{Polygon: 0, Local: 1}) !=
			s.PolygonAdjacent(mesh.PolygonEdgeRef{Polygon: 0, Local: 1}) {
			tst.Fatalf("[%s] adjacency not preserved", format)
		}
		p, err := got.Point(3)
		if err != nil {
			tst.Fatalf("[%s] Point(3): %v", format, err)
		}
		chk.Scalar(tst, string(format)+" point 3 x", 1e-12, p.X, 1)
		chk.Scalar(tst, string(format)+" point 3 y", 1e-12, p.Y, 1)
	}
}

// Round-tripping an EdgedCurve preserves its points and edges.
func TestEdgedCurveRoundTrip(tst *testing.T) {

	chk.PrintTitle("codec edged curve round trip")

	for _, format := range []Format{FormatGob, FormatJSON} {
		c := mesh.NewEdgedCurve[geoid.Point3D]()
		c.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 0})
		c.CreatePoint(geoid.Point3D{X: 1, Y: 0, Z: 0})
		c.CreatePoint(geoid.Point3D{X: 2, Y: 0, Z: 0})
		c.CreateEdge(0, 1)
		c.CreateEdge(1, 2)

		var buf bytes.Buffer
		if err := EncodeEdgedCurve(&buf, c, format); err != nil {
			tst.Fatalf("[%s] EncodeEdgedCurve: %v", format, err)
		}
		got, err := DecodeEdgedCurve(&buf, format)
		if err != nil {
			tst.Fatalf("[%s] DecodeEdgedCurve: %v", format, err)
		}
		chk.IntAssert(int(got.NbVertices()), 3)
		chk.IntAssert(int(got.NbEdges()), 2)
		v0, _ := got.EdgeVertex(1, 0)
		v1, _ := got.EdgeVertex(1, 1)
		chk.IntAssert(int(v0), 1)
		chk.IntAssert(int(v1), 2)
	}
}

// Round-tripping a SolidMesh of two face-sharing tetrahedra preserves its
// vertex, polyhedron and derived facet counts.
func TestSolidMeshRoundTrip(tst *testing.T) {

	chk.PrintTitle("codec solid mesh round trip")

	for _, format := range []Format{FormatGob, FormatJSON} {
		m := mesh.NewSolidMesh()
		pts := []geoid.Point3D{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 1, Y: 1, Z: 1},
		}
		for _, p := range pts {
			m.CreatePoint(p)
		}
		if _, err := m.CreateTetrahedron([4]geoid.Index{0, 1, 2, 3}); err != nil {
			tst.Fatalf("[%s] CreateTetrahedron: %v", format, err)
		}
		if _, err := m.CreateTetrahedron([4]geoid.Index{1, 2, 3, 4}); err != nil {
			tst.Fatalf("[%s] CreateTetrahedron: %v", format, err)
		}
		m.EnableFacets()
		m.ComputePolyhedronAdjacencies()

		var buf bytes.Buffer
		if err := EncodeSolidMesh(&buf, m, format); err != nil {
			tst.Fatalf("[%s] EncodeSolidMesh: %v", format, err)
		}
		got, err := DecodeSolidMesh(&buf, format)
		if err != nil {
			tst.Fatalf("[%s] DecodeSolidMesh: %v", format, err)
		}
		chk.IntAssert(int(got.NbVertices()), 5)
		chk.IntAssert(int(got.NbPolyhedra()), 2)
		got.EnableFacets()
		chk.IntAssert(int(got.NbFacets()), int(m.NbFacets()))
	}
}

// Round-tripping relationships preserves every (From, To, Kind) triple.
func TestRelationshipsRoundTrip(tst *testing.T) {

	chk.PrintTitle("codec relationships round trip")

	for _, format := range []Format{FormatGob, FormatJSON} {
		store := relationship.NewStore()
		corner := geoid.NewComponentID(geoid.TypeCorner)
		line := geoid.NewComponentID(geoid.TypeLine)
		if err := store.AddComponent(corner); err != nil {
			tst.Fatalf("[%s] AddComponent: %v", format, err)
		}
		if err := store.AddComponent(line); err != nil {
			tst.Fatalf("[%s] AddComponent: %v", format, err)
		}
		if err := store.AddBoundary(corner, line); err != nil {
			tst.Fatalf("[%s] AddBoundary: %v", format, err)
		}

		var buf bytes.Buffer
		if err := EncodeRelationships(&buf, store, []geoid.ComponentID{corner, line}, format); err != nil {
			tst.Fatalf("[%s] EncodeRelationships: %v", format, err)
		}

		dup := relationship.NewStore()
		if err := dup.AddComponent(corner); err != nil {
			tst.Fatalf("[%s] AddComponent dup: %v", format, err)
		}
		if err := dup.AddComponent(line); err != nil {
			tst.Fatalf("[%s] AddComponent dup: %v", format, err)
		}
		if err := DecodeRelationships(&buf, dup, format); err != nil {
			tst.Fatalf("[%s] DecodeRelationships: %v", format, err)
		}
		chk.IntAssert(len(dup.Boundaries(line)), 1)
		chk.IntAssert(len(dup.Incidences(corner)), 1)
	}
}
