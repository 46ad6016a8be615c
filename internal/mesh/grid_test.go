// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// S-regular-grid-3d: origin (1.5,0,1), 5x10x15 cells of size (1,2,3).
func TestRegularGrid3DScenario(tst *testing.T) {

	chk.PrintTitle("regular grid 3d scenario")

	g := NewGrid3D(
		geoid.Point3D{X: 1.5, Y: 0, Z: 1},
		[3]float64{1, 2, 3},
		[3]geoid.Index{5, 10, 15},
	)

	chk.IntAssert(int(g.NbCells()), 750)
	chk.IntAssert(int(g.NbVertices()), 1056)

	// axis 0 varies fastest: vertex_index(1,1,1) = 1 + 6*(1 + 11*1) = 73,
	// with per-axis vertex counts (6,11,16) one more than the cell counts.
	idx := []geoid.Index{1, 1, 1}
	chk.IntAssert(int(g.GridVertex(idx)), 73)

	cid := g.CellIndex(idx)
	back := g.CellIndices(cid)
	for axis, want := range idx {
		if back[axis] != want {
			tst.Fatalf("CellIndices(CellIndex(idx))[%d] = %d, want %d", axis, back[axis], want)
		}
	}

	point := g.GridPoint([]geoid.Index{2, 1, 4})
	chk.Scalar(tst, "grid point x", 1e-12, point[0], 3.5)
	chk.Scalar(tst, "grid point y", 1e-12, point[1], 2)
	chk.Scalar(tst, "grid point z", 1e-12, point[2], 13)

	closest := g.ClosestVertex([]float64{3.55, 3.9, 7.5})
	want := g.GridVertex([]geoid.Index{2, 2, 2})
	if closest != want {
		tst.Fatalf("ClosestVertex = %d, want %d (indices {2,2,2})", closest, want)
	}

	cells := g.Cells([]float64{4.5, 6, 7 - 1e-10})
	chk.IntAssert(len(cells), 8)
}

// Cross-checks Grid's closed-form vertex lattice against gosl/gm.Bins, the
// way out.go builds NodBins over every domain node and out/filtering.go's
// At locator resolves a coordinate back to its id with Bins.Find: every
// grid vertex is appended to a Bins at its own world coordinate, keyed by
// its GridVertex id, and Find on that same coordinate must hand the id
// straight back.
func TestGridVertexCrossCheckedWithBins(tst *testing.T) {

	chk.PrintTitle("grid vertex cross-checked with gm.Bins")

	g := NewGrid2D(geoid.Point2D{X: 0, Y: 0}, [2]float64{1, 1}, [2]geoid.Index{4, 4})

	var bins gm.Bins
	if err := bins.Init([]float64{0, 0}, []float64{4, 4}, 20); err != nil {
		tst.Fatalf("bins.Init: %v", err)
	}
	for i := geoid.Index(0); i <= 4; i++ {
		for j := geoid.Index(0); j <= 4; j++ {
			idx := []geoid.Index{i, j}
			id := g.GridVertex(idx)
			point := g.GridPoint(idx)
			if err := bins.Append(point, int(id)); err != nil {
				tst.Fatalf("bins.Append(%v): %v", idx, err)
			}
		}
	}

	probe := []geoid.Index{2, 3}
	want := g.GridVertex(probe)
	got := bins.Find(g.GridPoint(probe))
	if got != int(want) {
		tst.Fatalf("bins.Find = %d, want %d (grid vertex {2,3})", got, want)
	}
}

// Invariant: Contains rejects points outside the grid's bounding box, with
// GlobalEpsilon slack on the boundary.
func TestGridContains(tst *testing.T) {

	chk.PrintTitle("grid contains")

	g := NewGrid2D(geoid.Point2D{X: 0, Y: 0}, [2]float64{1, 1}, [2]geoid.Index{4, 4})
	if !g.Contains([]float64{0, 0}) {
		tst.Fatalf("origin should be contained")
	}
	if !g.Contains([]float64{4, 4}) {
		tst.Fatalf("far corner should be contained")
	}
	if g.Contains([]float64{4.1, 0}) {
		tst.Fatalf("point past the far edge should not be contained")
	}
	if g.Contains([]float64{-0.1, 0}) {
		tst.Fatalf("point before the origin should not be contained")
	}
}
