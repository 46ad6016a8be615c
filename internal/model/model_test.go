// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// S-prism: a triangular-prism BRep — 6 corners, 9 lines, 5 surfaces, 1
// block, boundaries wired consistently, and 3 model boundaries over its 2
// triangular caps and 1 representative side surface.
func TestPrismScenario(tst *testing.T) {

	chk.PrintTitle("prism model scenario")

	m := NewBRep()

	var corners []geoid.ComponentID
	for i := 0; i < 6; i++ {
		id, err := m.AddComponent(geoid.TypeCorner, "corner")
		if err != nil {
			tst.Fatalf("AddComponent corner %d: %v", i, err)
		}
		corners = append(corners, id)
	}

	// Triangular prism edges: two triangles (0,1,2) and (3,4,5), three
	// verticals (0-3, 1-4, 2-5).
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{0, 3}, {1, 4}, {2, 5},
	}
	var lines []geoid.ComponentID
	for i, e := range edges {
		id, err := m.AddComponent(geoid.TypeLine, "line")
		if err != nil {
			tst.Fatalf("AddComponent line %d: %v", i, err)
		}
		lines = append(lines, id)
		if err := m.AddBoundaryRelation(corners[e[0]], id); err != nil {
			tst.Fatalf("AddBoundaryRelation corner->line: %v", err)
		}
		if err := m.AddBoundaryRelation(corners[e[1]], id); err != nil {
			tst.Fatalf("AddBoundaryRelation corner->line: %v", err)
		}
	}
	chk.IntAssert(len(lines), 9)

	// Surfaces: 2 triangular caps + 3 rectangular sides.
	surfaceLines := [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{0, 7, 3, 6},
		{1, 8, 4, 7},
		{2, 6, 5, 8},
	}
	var surfaces []geoid.ComponentID
	for i, ls := range surfaceLines {
		id, err := m.AddComponent(geoid.TypeSurface, "surface")
		if err != nil {
			tst.Fatalf("AddComponent surface %d: %v", i, err)
		}
		surfaces = append(surfaces, id)
		for _, li := range ls {
			if err := m.AddBoundaryRelation(lines[li], id); err != nil {
				tst.Fatalf("AddBoundaryRelation line->surface: %v", err)
			}
		}
	}
	chk.IntAssert(len(surfaces), 5)

	block, err := m.AddComponent(geoid.TypeBlock, "block")
	if err != nil {
		tst.Fatalf("AddComponent block: %v", err)
	}
	for _, s := range surfaces {
		if err := m.AddBoundaryRelation(s, block); err != nil {
			tst.Fatalf("AddBoundaryRelation surface->block: %v", err)
		}
	}
	chk.IntAssert(len(m.Relationships().Boundaries(block)), 5)

	var boundaries []geoid.ComponentID
	for i := 0; i < 3; i++ {
		id, err := m.AddComponent(geoid.TypeModelBoundary, "boundary")
		if err != nil {
			tst.Fatalf("AddComponent boundary %d: %v", i, err)
		}
		boundaries = append(boundaries, id)
		if err := m.relations.AddItem(surfaces[i], id); err != nil {
			tst.Fatalf("AddItem surface->boundary: %v", err)
		}
	}
	chk.IntAssert(len(boundaries), 3)
	chk.IntAssert(len(m.Relationships().Items(boundaries[0])), 1)

	// Corner 0 sits on 3 prism edges: (0,1), (2,0), (0,3).
	chk.IntAssert(len(m.Relationships().Incidences(corners[0])), 3)
}

// Model.Copy produces an independent component/relationship graph of equal
// shape, remapped to fresh ids.
func TestModelCopyIndependence(tst *testing.T) {

	chk.PrintTitle("model copy independence")

	m := NewBRep()
	c0, _ := m.AddComponent(geoid.TypeCorner, "c0")
	c1, _ := m.AddComponent(geoid.TypeCorner, "c1")
	line, err := m.AddComponent(geoid.TypeLine, "l0")
	if err != nil {
		tst.Fatalf("AddComponent line: %v", err)
	}
	if err := m.AddBoundaryRelation(c0, line); err != nil {
		tst.Fatalf("AddBoundaryRelation: %v", err)
	}
	if err := m.AddBoundaryRelation(c1, line); err != nil {
		tst.Fatalf("AddBoundaryRelation: %v", err)
	}
	lm, err := m.LineMesh(line)
	if err != nil {
		tst.Fatalf("LineMesh: %v", err)
	}
	lm.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 0})
	lm.CreatePoint(geoid.Point3D{X: 1, Y: 0, Z: 0})
	lm.CreateEdge(0, 1)

	dup, err := m.Copy()
	if err != nil {
		tst.Fatalf("Copy: %v", err)
	}

	chk.IntAssert(len(dup.Components(geoid.TypeCorner)), 2)
	chk.IntAssert(len(dup.Components(geoid.TypeLine)), 1)

	dupLine := dup.Components(geoid.TypeLine)[0]
	if dupLine.String() == line.String() {
		tst.Fatalf("copied line should carry a fresh id")
	}
	dupLM, err := dup.LineMesh(dupLine)
	if err != nil {
		tst.Fatalf("LineMesh on copy: %v", err)
	}
	chk.IntAssert(int(dupLM.NbVertices()), 2)
	chk.IntAssert(int(dupLM.NbEdges()), 1)

	chk.IntAssert(len(dup.Relationships().Incidences(dup.Components(geoid.TypeCorner)[0])), 1)

	// Mutating the copy must not affect the original.
	dupLM.CreatePoint(geoid.Point3D{X: 2, Y: 0, Z: 0})
	chk.IntAssert(int(lm.NbVertices()), 2)
}
