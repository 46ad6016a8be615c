// Package model assembles typed component collections (corners, lines,
// surfaces, blocks, model boundaries, and their *Collection siblings) plus
// one relationship.Store into the two model flavors the kernel supports:
// Section (2D) and BRep (3D). Each component carries a uuid identity and a
// Name, and each line, surface and block also a mesh (from package mesh);
// the model owns the identity->mesh and
// identity->metadata maps the way the teacher's inp package owns its
// Dom/Mesh/Vert registries.
package model

import (
	"bytes"
	"errors"

	"github.com/Geode-solutions/opengeode-go/internal/codec"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
	"github.com/Geode-solutions/opengeode-go/internal/mesh"
	"github.com/Geode-solutions/opengeode-go/internal/relationship"
)

// ErrComponentNotFound is returned when a component id is not registered.
var ErrComponentNotFound = errors.New("model: component not found")

// ErrDuplicateUUID is returned by Add* when the given id is already
// registered.
var ErrDuplicateUUID = errors.New("model: duplicate uuid")

// ErrInvalidRelationType is returned when a relation is attempted between
// component types the model kind does not allow (e.g. a Corner embedded in
// a Corner).
var ErrInvalidRelationType = errors.New("model: invalid relation between component types")

type componentEntry struct {
	id   geoid.ComponentID
	name string
}

// Model is a BRep (3D) or Section (2D) model: the component registry plus
// one relationship store. Dim is 3 for a BRep and 2 for a Section; only a
// BRep accepts Block components and their SolidMesh. Line and surface
// meshes hold 3D points in both kinds and are reached through the typed
// accessors below.
type Model struct {
	Dim int // 2 (Section) or 3 (BRep)

	corners   map[string]*componentEntry
	lines     map[string]*componentEntry
	surfaces  map[string]*componentEntry
	blocks    map[string]*componentEntry // BRep only
	boundaries map[string]*componentEntry

	cornerCollections   map[string]*componentEntry
	lineCollections     map[string]*componentEntry
	surfaceCollections  map[string]*componentEntry
	blockCollections    map[string]*componentEntry
	boundaryCollections map[string]*componentEntry

	lineMeshes    map[string]*mesh.EdgedCurve[geoid.Point3D]
	surfaceMeshes map[string]*mesh.SurfaceMesh[geoid.Point3D]
	blockMeshes   map[string]*mesh.SolidMesh

	relations *relationship.Store
}

// NewBRep returns an empty 3D model.
func NewBRep() *Model { return newModel(3) }

// NewSection returns an empty 2D model.
func NewSection() *Model { return newModel(2) }

func newModel(dim int) *Model {
	return &Model{
		Dim:                  dim,
		corners:              make(map[string]*componentEntry),
		lines:                make(map[string]*componentEntry),
		surfaces:             make(map[string]*componentEntry),
		blocks:               make(map[string]*componentEntry),
		boundaries:           make(map[string]*componentEntry),
		cornerCollections:    make(map[string]*componentEntry),
		lineCollections:      make(map[string]*componentEntry),
		surfaceCollections:   make(map[string]*componentEntry),
		blockCollections:     make(map[string]*componentEntry),
		boundaryCollections:  make(map[string]*componentEntry),
		lineMeshes:           make(map[string]*mesh.EdgedCurve[geoid.Point3D]),
		surfaceMeshes:        make(map[string]*mesh.SurfaceMesh[geoid.Point3D]),
		blockMeshes:          make(map[string]*mesh.SolidMesh),
		relations:            relationship.NewStore(),
	}
}

// Relationships returns the model's relationship store.
func (m *Model) Relationships() *relationship.Store { return m.relations }

func registryFor(m *Model, t geoid.ComponentType) map[string]*componentEntry {
	switch t {
	case geoid.TypeCorner:
		return m.corners
	case geoid.TypeLine:
		return m.lines
	case geoid.TypeSurface:
		return m.surfaces
	case geoid.TypeBlock:
		return m.blocks
	case geoid.TypeModelBoundary:
		return m.boundaries
	case geoid.TypeCornerCollection:
		return m.cornerCollections
	case geoid.TypeLineCollection:
		return m.lineCollections
	case geoid.TypeSurfCollection:
		return m.surfaceCollections
	case geoid.TypeBlockCollection:
		return m.blockCollections
	case geoid.TypeModelBoundaryCol:
		return m.boundaryCollections
	default:
		return nil
	}
}

// AddComponent registers a new component of type t with the given name and
// returns its fresh id.
func (m *Model) AddComponent(t geoid.ComponentType, name string) (geoid.ComponentID, error) {
	reg := registryFor(m, t)
	if reg == nil || (t == geoid.TypeBlock && m.Dim != 3) {
		return geoid.ComponentID{}, ErrInvalidRelationType
	}
	id := geoid.NewComponentID(t)
	reg[id.String()] = &componentEntry{id: id, name: name}
	if err := m.relations.AddComponent(id); err != nil {
		return geoid.ComponentID{}, err
	}
	switch t {
	case geoid.TypeLine:
		m.lineMeshes[id.String()] = mesh.NewEdgedCurve[geoid.Point3D]()
	case geoid.TypeSurface:
		m.surfaceMeshes[id.String()] = mesh.NewSurfaceMesh[geoid.Point3D]()
	case geoid.TypeBlock:
		m.blockMeshes[id.String()] = mesh.NewSolidMesh()
	}
	return id, nil
}

// RemoveComponent deletes a component, its mesh (if any), and every
// relation touching it.
func (m *Model) RemoveComponent(id geoid.ComponentID) error {
	reg := registryFor(m, id.Type)
	if reg == nil {
		return ErrInvalidRelationType
	}
	if _, ok := reg[id.String()]; !ok {
		return ErrComponentNotFound
	}
	delete(reg, id.String())
	delete(m.lineMeshes, id.String())
	delete(m.surfaceMeshes, id.String())
	delete(m.blockMeshes, id.String())
	return m.relations.RemoveComponent(id)
}

// Name returns a component's display name.
func (m *Model) Name(id geoid.ComponentID) (string, error) {
	reg := registryFor(m, id.Type)
	if reg == nil {
		return "", ErrInvalidRelationType
	}
	e, ok := reg[id.String()]
	if !ok {
		return "", ErrComponentNotFound
	}
	return e.name, nil
}

// SetName renames a component.
func (m *Model) SetName(id geoid.ComponentID, name string) error {
	reg := registryFor(m, id.Type)
	if reg == nil {
		return ErrInvalidRelationType
	}
	e, ok := reg[id.String()]
	if !ok {
		return ErrComponentNotFound
	}
	e.name = name
	return nil
}

// Components returns every registered id of type t.
func (m *Model) Components(t geoid.ComponentType) []geoid.ComponentID {
	reg := registryFor(m, t)
	out := make([]geoid.ComponentID, 0, len(reg))
	for _, e := range reg {
		out = append(out, e.id)
	}
	return out
}

// LineMesh returns line id's curve mesh.
func (m *Model) LineMesh(id geoid.ComponentID) (*mesh.EdgedCurve[geoid.Point3D], error) {
	mm, ok := m.lineMeshes[id.String()]
	if !ok {
		return nil, ErrComponentNotFound
	}
	return mm, nil
}

// SurfaceMesh returns surface id's mesh.
func (m *Model) SurfaceMesh(id geoid.ComponentID) (*mesh.SurfaceMesh[geoid.Point3D], error) {
	mm, ok := m.surfaceMeshes[id.String()]
	if !ok {
		return nil, ErrComponentNotFound
	}
	return mm, nil
}

// BlockMesh returns block id's solid mesh.
func (m *Model) BlockMesh(id geoid.ComponentID) (*mesh.SolidMesh, error) {
	mm, ok := m.blockMeshes[id.String()]
	if !ok {
		return nil, ErrComponentNotFound
	}
	return mm, nil
}

var allowedBoundary = map[geoid.ComponentType]geoid.ComponentType{
	geoid.TypeCorner:  geoid.TypeLine,
	geoid.TypeLine:    geoid.TypeSurface,
	geoid.TypeSurface: geoid.TypeBlock,
}

// AddBoundaryRelation records that boundary bounds incident, validating
// that the pairing is one the model kind permits (Corner-of-Line,
// Line-of-Surface, Surface-of-Block).
func (m *Model) AddBoundaryRelation(boundary, incident geoid.ComponentID) error {
	if allowedBoundary[boundary.Type] != incident.Type {
		return ErrInvalidRelationType
	}
	return m.relations.AddBoundary(boundary, incident)
}

// AddInternalRelation records that internalComp is internal to embedding,
// requiring matching component types (a Line can be internal to a
// Surface, a Surface internal to a Block).
func (m *Model) AddInternalRelation(internalComp, embedding geoid.ComponentID) error {
	if allowedBoundary[internalComp.Type] != embedding.Type {
		return ErrInvalidRelationType
	}
	return m.relations.AddInternal(internalComp, embedding)
}

// AddItemRelation records that item belongs to collection, requiring the
// collection type to match the item's *Collection counterpart.
func (m *Model) AddItemRelation(item, collection geoid.ComponentID) error {
	want := map[geoid.ComponentType]geoid.ComponentType{
		geoid.TypeCorner:        geoid.TypeCornerCollection,
		geoid.TypeLine:          geoid.TypeLineCollection,
		geoid.TypeSurface:       geoid.TypeSurfCollection,
		geoid.TypeBlock:         geoid.TypeBlockCollection,
		geoid.TypeModelBoundary: geoid.TypeModelBoundaryCol,
	}[item.Type]
	if want != collection.Type {
		return ErrInvalidRelationType
	}
	return m.relations.AddItem(item, collection)
}

var allComponentTypes = []geoid.ComponentType{
	geoid.TypeCorner, geoid.TypeLine, geoid.TypeSurface, geoid.TypeBlock, geoid.TypeModelBoundary,
	geoid.TypeCornerCollection, geoid.TypeLineCollection, geoid.TypeSurfCollection,
	geoid.TypeBlockCollection, geoid.TypeModelBoundaryCol,
}

// Copy returns a deep copy of m: every component gets a fresh uuid (the
// identity is not preserved across a copy, matching the teacher's fem
// package giving each cloned Dom a new id), meshes are cloned by an
// encode/decode round trip through package codec rather than by reaching
// into their unexported fields, and relations are replayed under the
// remapped ids. Mesh attribute columns are not carried over, since the
// codec encodes coordinates and incidence only; meshes are cloned one
// after another, not in parallel.
func (m *Model) Copy() (*Model, error) {
	out := newModel(m.Dim)
	remap := make(map[string]geoid.ComponentID)

	for _, t := range allComponentTypes {
		reg := registryFor(m, t)
		for _, e := range reg {
			newID, err := out.AddComponent(t, e.name)
			if err != nil {
				return nil, err
			}
			remap[e.id.String()] = newID
		}
	}

	for oldKey, mm := range m.lineMeshes {
		var buf bytes.Buffer
		if err := codec.EncodeEdgedCurve(&buf, mm, codec.FormatGob); err != nil {
			return nil, err
		}
		clone, err := codec.DecodeEdgedCurve(&buf, codec.FormatGob)
		if err != nil {
			return nil, err
		}
		out.lineMeshes[remap[oldKey].String()] = clone
	}
	for oldKey, mm := range m.surfaceMeshes {
		var buf bytes.Buffer
		if err := codec.EncodeSurfaceMesh(&buf, mm, codec.FormatGob); err != nil {
			return nil, err
		}
		clone, err := codec.DecodeSurfaceMesh(&buf, codec.FormatGob)
		if err != nil {
			return nil, err
		}
		out.surfaceMeshes[remap[oldKey].String()] = clone
	}
	for oldKey, mm := range m.blockMeshes {
		var buf bytes.Buffer
		if err := codec.EncodeSolidMesh(&buf, mm, codec.FormatGob); err != nil {
			return nil, err
		}
		clone, err := codec.DecodeSolidMesh(&buf, codec.FormatGob)
		if err != nil {
			return nil, err
		}
		out.blockMeshes[remap[oldKey].String()] = clone
	}

	for _, rel := range m.relations.AllRelations() {
		from, to := remap[rel.From.String()], remap[rel.To.String()]
		var err error
		switch rel.Kind {
		case relationship.KindBoundary:
			err = out.relations.AddBoundary(from, to)
		case relationship.KindInternal:
			err = out.relations.AddInternal(from, to)
		case relationship.KindItem:
			err = out.relations.AddItem(from, to)
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
