// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relationship

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

func newID(t geoid.ComponentType) geoid.ComponentID { return geoid.NewComponentID(t) }

// Boundary, internal and item relations are each independently queryable
// from either end, and distinct from one another.
func TestStoreRelationKinds(tst *testing.T) {

	chk.PrintTitle("relationship kinds")

	s := NewStore()
	corner := newID(geoid.TypeCorner)
	line := newID(geoid.TypeLine)
	surface := newID(geoid.TypeSurface)
	collection := newID(geoid.TypeLineCollection)

	for _, id := range []geoid.ComponentID{corner, line, surface, collection} {
		if err := s.AddComponent(id); err != nil {
			tst.Fatalf("AddComponent: %v", err)
		}
	}

	if err := s.AddBoundary(corner, line); err != nil {
		tst.Fatalf("AddBoundary: %v", err)
	}
	if err := s.AddInternal(line, surface); err != nil {
		tst.Fatalf("AddInternal: %v", err)
	}
	if err := s.AddItem(line, collection); err != nil {
		tst.Fatalf("AddItem: %v", err)
	}

	chk.IntAssert(len(s.Boundaries(line)), 1)
	chk.IntAssert(len(s.Incidences(corner)), 1)
	chk.IntAssert(len(s.Embeddings(line)), 1)
	chk.IntAssert(len(s.Internals(surface)), 1)
	chk.IntAssert(len(s.Collections(line)), 1)
	chk.IntAssert(len(s.Items(collection)), 1)

	// line is touched by all three relations, each a distinct kind.
	rel := s.Relations(line)
	chk.IntAssert(len(rel), 3)
	kinds := map[Kind]int{}
	for _, r := range rel {
		kinds[r.Kind]++
	}
	chk.IntAssert(kinds[KindBoundary], 1)
	chk.IntAssert(kinds[KindInternal], 1)
	chk.IntAssert(kinds[KindItem], 1)
}

// Adding the same relation twice is idempotent: it does not duplicate rows
// in the per-relation attribute manager.
func TestAddRelationIdempotent(tst *testing.T) {

	chk.PrintTitle("relationship idempotent add")

	s := NewStore()
	corner := newID(geoid.TypeCorner)
	line := newID(geoid.TypeLine)
	if err := s.AddComponent(corner); err != nil {
		tst.Fatalf("AddComponent: %v", err)
	}
	if err := s.AddComponent(line); err != nil {
		tst.Fatalf("AddComponent: %v", err)
	}

	if err := s.AddBoundary(corner, line); err != nil {
		tst.Fatalf("AddBoundary: %v", err)
	}
	if err := s.AddBoundary(corner, line); err != nil {
		tst.Fatalf("AddBoundary (again): %v", err)
	}
	chk.IntAssert(len(s.Boundaries(line)), 1)
	chk.IntAssert(int(s.RelationAttributes().NbRows()), 1)
}

// AllRelations preserves From/To direction, unlike Relations(id) which
// folds direction into "the other end".
func TestAllRelationsPreservesDirection(tst *testing.T) {

	chk.PrintTitle("relationship AllRelations direction")

	s := NewStore()
	corner := newID(geoid.TypeCorner)
	line := newID(geoid.TypeLine)
	if err := s.AddComponent(corner); err != nil {
		tst.Fatalf("AddComponent: %v", err)
	}
	if err := s.AddComponent(line); err != nil {
		tst.Fatalf("AddComponent: %v", err)
	}
	if err := s.AddBoundary(corner, line); err != nil {
		tst.Fatalf("AddBoundary: %v", err)
	}

	all := s.AllRelations()
	chk.IntAssert(len(all), 1)
	if all[0].From.String() != corner.String() {
		tst.Fatalf("From = %v, want corner", all[0].From)
	}
	if all[0].To.String() != line.String() {
		tst.Fatalf("To = %v, want line", all[0].To)
	}
	if all[0].Kind != KindBoundary {
		tst.Fatalf("Kind = %v, want KindBoundary", all[0].Kind)
	}
}

// RemoveComponent removes every relation touching the removed component.
func TestRemoveComponentCascades(tst *testing.T) {

	chk.PrintTitle("relationship remove component cascades")

	s := NewStore()
	corner := newID(geoid.TypeCorner)
	line := newID(geoid.TypeLine)
	if err := s.AddComponent(corner); err != nil {
		tst.Fatalf("AddComponent: %v", err)
	}
	if err := s.AddComponent(line); err != nil {
		tst.Fatalf("AddComponent: %v", err)
	}
	if err := s.AddBoundary(corner, line); err != nil {
		tst.Fatalf("AddBoundary: %v", err)
	}

	if err := s.RemoveComponent(corner); err != nil {
		tst.Fatalf("RemoveComponent: %v", err)
	}
	chk.IntAssert(len(s.Boundaries(line)), 0)
}
