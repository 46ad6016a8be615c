// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// Invariant 1: every column's size tracks the manager's row count, through
// AddColumn, Resize, DeleteRows, and PermuteRows.
func TestManagerLockstep(tst *testing.T) {

	chk.PrintTitle("attribute lockstep")

	m := NewManager(3)
	col := NewFloat64Column(0, Flags{}, 0)
	if _, err := m.AddColumn("weight", col); err != nil {
		tst.Fatalf("AddColumn: %v", err)
	}
	chk.IntAssert(int(col.Size()), int(m.NbRows()))

	m.Resize(7)
	chk.IntAssert(int(col.Size()), int(m.NbRows()))

	m.DeleteRows([]bool{false, true, false, false, true, false, false})
	chk.IntAssert(int(col.Size()), int(m.NbRows()))
	chk.IntAssert(int(m.NbRows()), 5)

	if err := m.PermuteRows([]geoid.Index{4, 3, 2, 1, 0}); err != nil {
		tst.Fatalf("PermuteRows: %v", err)
	}
	chk.IntAssert(int(col.Size()), int(m.NbRows()))
}

// Invariant 2: interpolate_into writes the common bit value verbatim when
// every source row agrees, regardless of the weights.
func TestInterpolationIdentity(tst *testing.T) {

	chk.PrintTitle("attribute interpolation identity")

	m := NewManager(4)
	col, err := FindOrCreateColumn[int32](m, "label", 0, Flags{Interpolable: true}, combineInt32, projectInt32)
	if err != nil {
		tst.Fatalf("FindOrCreateColumn: %v", err)
	}
	col.SetValue(0, 7)
	col.SetValue(1, 7)
	col.SetValue(2, 7)

	m.InterpolateInto(3, []geoid.Index{0, 1, 2}, []float64{0.1, 0.2, 0.9})
	chk.IntAssert(int(col.Value(3)), 7)
}

// Invariant 6: deleting rows compacts each column so row k of the result
// equals row π(k) of the original, π the ascending enumeration of kept rows.
func TestDeleteRowsCompaction(tst *testing.T) {

	chk.PrintTitle("attribute deletion compaction")

	m := NewManager(5)
	col := NewFloat64Column(0, Flags{}, 5)
	if _, err := m.AddColumn("v", col); err != nil {
		tst.Fatalf("AddColumn: %v", err)
	}
	for i := geoid.Index(0); i < 5; i++ {
		col.SetValue(i, float64(i)*10)
	}
	mask := []bool{false, true, false, true, false}
	m.DeleteRows(mask)
	chk.IntAssert(int(m.NbRows()), 3)
	chk.Scalar(tst, "row 0", 1e-15, col.Value(0), 0)
	chk.Scalar(tst, "row 1", 1e-15, col.Value(1), 20)
	chk.Scalar(tst, "row 2", 1e-15, col.Value(2), 40)
}

// Invariant 7: permute_rows(σ) followed by permute_rows(σ⁻¹) is the
// identity on every column.
func TestPermuteRoundTrip(tst *testing.T) {

	chk.PrintTitle("attribute permutation round trip")

	m := NewManager(4)
	col := NewFloat64Column(0, Flags{}, 4)
	if _, err := m.AddColumn("v", col); err != nil {
		tst.Fatalf("AddColumn: %v", err)
	}
	original := []float64{1, 2, 3, 4}
	for i, v := range original {
		col.SetValue(geoid.Index(i), v)
	}

	sigma := []geoid.Index{2, 0, 3, 1}
	inverse := make([]geoid.Index, len(sigma))
	for newIdx, oldIdx := range sigma {
		inverse[oldIdx] = geoid.Index(newIdx)
	}

	if err := m.PermuteRows(sigma); err != nil {
		tst.Fatalf("PermuteRows(sigma): %v", err)
	}
	if err := m.PermuteRows(inverse); err != nil {
		tst.Fatalf("PermuteRows(inverse): %v", err)
	}
	for i, want := range original {
		chk.Scalar(tst, "restored row", 1e-15, col.Value(geoid.Index(i)), want)
	}
}
