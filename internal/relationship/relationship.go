// Package relationship stores the model relationship graph: which
// component boundaries which, which is internal to which, and which
// components are items of which collection. It is grounded on
// github.com/katalvlaran/lvlath/core.Graph, a directed multigraph: every
// component is a vertex, every relation a labeled edge, so two components
// can carry several distinct relation kinds between them (a surface can be
// simultaneously a block's boundary and a collection's item).
package relationship

import (
	"errors"

	"github.com/katalvlaran/lvlath/core"

	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// Kind names a relation's semantics.
type Kind int

// Relation kinds.
const (
	KindBoundary Kind = iota
	KindInternal
	KindItem
)

const kindKey = "og_kind"

// ErrComponentNotFound is returned when a relation references a component
// never added to the store.
var ErrComponentNotFound = errors.New("relationship: component not found")

// Store is the relationship graph plus a per-relation attribute manager
// and an insertion-order index (lvlath's Graph iterates its adjacency maps
// in Go's randomized map order, so relation listing order is rebuilt here).
type Store struct {
	graph   *core.Graph
	attrs   *attribute.Manager
	order   []string // edge id, insertion order
	edgeRow map[string]geoid.Index
}

// NewStore returns an empty relationship store.
func NewStore() *Store {
	return &Store{
		graph:   core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops()),
		attrs:   attribute.NewManager(0),
		edgeRow: make(map[string]geoid.Index),
	}
}

// RelationAttributes returns the per-relation attribute manager; one row
// per relation, in Add* insertion order.
func (s *Store) RelationAttributes() *attribute.Manager { return s.attrs }

// AddComponent registers a component id as a graph vertex. Idempotent.
func (s *Store) AddComponent(id geoid.ComponentID) error {
	key := id.String()
	if s.graph.HasVertex(key) {
		return nil
	}
	return s.graph.AddVertex(key)
}

// RemoveComponent deletes a component and every relation touching it.
func (s *Store) RemoveComponent(id geoid.ComponentID) error {
	return s.graph.RemoveVertex(id.String())
}

func (s *Store) addRelation(from, to geoid.ComponentID, kind Kind) error {
	if !s.graph.HasVertex(from.String()) || !s.graph.HasVertex(to.String()) {
		return ErrComponentNotFound
	}
	if s.graph.HasEdge(from.String(), to.String()) {
		if s.hasKind(from, to, kind) {
			return nil
		}
	}
	eid, err := s.graph.AddEdge(from.String(), to.String(), 0)
	if err != nil {
		return err
	}
	row, err := attribute.FindOrCreateColumn(s.attrs, kindKey, int32(KindBoundary), attribute.Flags{}, nil, nil)
	if err != nil {
		return err
	}
	idx := s.attrs.NbRows()
	s.attrs.Resize(idx + 1)
	row.SetValue(idx, int32(kind))
	s.order = append(s.order, eid)
	s.edgeRow[eid] = idx
	return nil
}

func (s *Store) hasKind(from, to geoid.ComponentID, kind Kind) bool {
	col := s.attrs.FindColumn(kindKey)
	if col == nil {
		return false
	}
	typed, ok := col.(*attribute.VariableColumn[int32])
	if !ok {
		return false
	}
	for _, eid := range s.order {
		e := s.edgeByID(eid)
		if e == nil {
			continue
		}
		if e.From == from.String() && e.To == to.String() && typed.Value(s.edgeRow[eid]) == int32(kind) {
			return true
		}
	}
	return false
}

func (s *Store) edgeByID(eid string) *core.Edge {
	for _, v := range s.graph.InternalVertices() {
		nbrs, err := s.graph.Neighbors(v.ID)
		if err != nil {
			continue
		}
		for _, e := range nbrs {
			if e.ID == eid {
				return e
			}
		}
	}
	return nil
}

// AddBoundary records that boundary is part of incident's boundary.
func (s *Store) AddBoundary(boundary, incident geoid.ComponentID) error {
	return s.addRelation(boundary, incident, KindBoundary)
}

// AddInternal records that internalComp is internal to embedding.
func (s *Store) AddInternal(internalComp, embedding geoid.ComponentID) error {
	return s.addRelation(internalComp, embedding, KindInternal)
}

// AddItem records that item belongs to collection.
func (s *Store) AddItem(item, collection geoid.ComponentID) error {
	return s.addRelation(item, collection, KindItem)
}

// RemoveRelation deletes the edge recorded between from and to, if any.
func (s *Store) RemoveRelation(from, to geoid.ComponentID) error {
	e := s.findEdge(from, to)
	if e == nil {
		return nil
	}
	return s.graph.RemoveEdge(e.ID)
}

func (s *Store) findEdge(from, to geoid.ComponentID) *core.Edge {
	for _, eid := range s.order {
		e := s.edgeByID(eid)
		if e != nil && e.From == from.String() && e.To == to.String() {
			return e
		}
	}
	return nil
}

func (s *Store) relationsOf(id geoid.ComponentID, kind Kind, reverse bool) []geoid.ComponentID {
	var out []geoid.ComponentID
	col := s.attrs.FindColumn(kindKey)
	if col == nil {
		return nil
	}
	typed := col.(*attribute.VariableColumn[int32])
	for _, eid := range s.order {
		e := s.edgeByID(eid)
		if e == nil || typed.Value(s.edgeRow[eid]) != int32(kind) {
			continue
		}
		if !reverse && e.From == id.String() {
			out = append(out, parseComponentID(e.To))
		}
		if reverse && e.To == id.String() {
			out = append(out, parseComponentID(e.From))
		}
	}
	return out
}

// Boundaries returns every component recorded as a boundary of incident, in
// insertion order.
func (s *Store) Boundaries(incident geoid.ComponentID) []geoid.ComponentID {
	return s.relationsOf(incident, KindBoundary, true)
}

// Incidences returns every component that boundary bounds, in insertion
// order.
func (s *Store) Incidences(boundary geoid.ComponentID) []geoid.ComponentID {
	return s.relationsOf(boundary, KindBoundary, false)
}

// Internals returns every component internal to embedding, in insertion
// order.
func (s *Store) Internals(embedding geoid.ComponentID) []geoid.ComponentID {
	return s.relationsOf(embedding, KindInternal, true)
}

// Embeddings returns every component that internalComp is internal to, in
// insertion order.
func (s *Store) Embeddings(internalComp geoid.ComponentID) []geoid.ComponentID {
	return s.relationsOf(internalComp, KindInternal, false)
}

// Items returns every item belonging to collection, in insertion order.
func (s *Store) Items(collection geoid.ComponentID) []geoid.ComponentID {
	return s.relationsOf(collection, KindItem, true)
}

// Collections returns every collection item belongs to, in insertion order.
func (s *Store) Collections(item geoid.ComponentID) []geoid.ComponentID {
	return s.relationsOf(item, KindItem, false)
}

// Relations returns every relation touching id, as (other, kind) pairs, in
// insertion order.
func (s *Store) Relations(id geoid.ComponentID) []struct {
	Other geoid.ComponentID
	Kind  Kind
} {
	var out []struct {
		Other geoid.ComponentID
		Kind  Kind
	}
	col := s.attrs.FindColumn(kindKey)
	if col == nil {
		return nil
	}
	typed := col.(*attribute.VariableColumn[int32])
	for _, eid := range s.order {
		e := s.edgeByID(eid)
		if e == nil {
			continue
		}
		k := Kind(typed.Value(s.edgeRow[eid]))
		if e.From == id.String() {
			out = append(out, struct {
				Other geoid.ComponentID
				Kind  Kind
			}{parseComponentID(e.To), k})
		} else if e.To == id.String() {
			out = append(out, struct {
				Other geoid.ComponentID
				Kind  Kind
			}{parseComponentID(e.From), k})
		}
	}
	return out
}

// AllRelations returns every relation in the store as (from, to, kind)
// triples, in insertion order, direction preserved — the form Model.Copy
// replays against a fresh Store.
func (s *Store) AllRelations() []struct {
	From geoid.ComponentID
	To   geoid.ComponentID
	Kind Kind
} {
	var out []struct {
		From geoid.ComponentID
		To   geoid.ComponentID
		Kind Kind
	}
	col := s.attrs.FindColumn(kindKey)
	if col == nil {
		return nil
	}
	typed := col.(*attribute.VariableColumn[int32])
	for _, eid := range s.order {
		e := s.edgeByID(eid)
		if e == nil {
			continue
		}
		k := Kind(typed.Value(s.edgeRow[eid]))
		out = append(out, struct {
			From geoid.ComponentID
			To   geoid.ComponentID
			Kind Kind
		}{parseComponentID(e.From), parseComponentID(e.To), k})
	}
	return out
}

func parseComponentID(s string) geoid.ComponentID {
	id, _ := geoid.ParseComponentID(s)
	return id
}
