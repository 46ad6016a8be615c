// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geoid implements the scalar identifier vocabulary shared by every
// element set in the kernel: row indices, intra-element local indices, and
// model-wide component identifiers.
package geoid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformedComponentID is returned by ParseComponentID when its input is
// not a "Type:uuid" string.
var ErrMalformedComponentID = errors.New("geoid: malformed component id")

// Index is a 32-bit row/element identifier (index_t in the source spec).
type Index uint32

// NoIndex is the reserved sentinel meaning "absent" (all-ones).
const NoIndex Index = ^Index(0)

// IsSet reports whether i is not the NoIndex sentinel.
func (i Index) IsSet() bool { return i != NoIndex }

// LocalIndex is an 8-bit intra-element position (local_index_t in the spec):
// a vertex inside a polyhedron, a facet inside a polyhedron.
type LocalIndex uint8

// NoLocalIndex is the reserved sentinel for LocalIndex.
const NoLocalIndex LocalIndex = ^LocalIndex(0)

// IsSet reports whether l is not the NoLocalIndex sentinel.
func (l LocalIndex) IsSet() bool { return l != NoLocalIndex }

// UUID is a 128-bit opaque identifier with equality, hashing (via map key),
// and a canonical string form.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a fresh random UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// NilUUID is the zero-value UUID (all zero bits); used as a not-set marker.
var NilUUID = UUID{}

// String returns the canonical (RFC 4122) string form.
func (u UUID) String() string {
	return u.id.String()
}

// IsNil reports whether u is the zero-value UUID.
func (u UUID) IsNil() bool {
	return u.id == uuid.Nil
}

// ComponentType tags the kind of model component a ComponentID refers to.
type ComponentType string

// Component type tags used across model mixins.
const (
	TypeCorner           ComponentType = "Corner"
	TypeLine             ComponentType = "Line"
	TypeSurface          ComponentType = "Surface"
	TypeBlock            ComponentType = "Block"
	TypeModelBoundary    ComponentType = "ModelBoundary"
	TypeCornerCollection ComponentType = "CornerCollection"
	TypeLineCollection   ComponentType = "LineCollection"
	TypeSurfCollection   ComponentType = "SurfaceCollection"
	TypeBlockCollection  ComponentType = "BlockCollection"
	TypeModelBoundaryCol ComponentType = "ModelBoundaryCollection"
	TypeUnknown          ComponentType = "Unknown"
)

// ComponentID identifies a model component by type tag plus uuid.
type ComponentID struct {
	Type ComponentType
	ID   UUID
}

// NewComponentID returns a fresh ComponentID of the given type.
func NewComponentID(t ComponentType) ComponentID {
	return ComponentID{Type: t, ID: NewUUID()}
}

// String renders a ComponentID as "Type:uuid" for logs and graph node keys.
func (c ComponentID) String() string {
	return fmt.Sprintf("%s:%s", c.Type, c.ID.String())
}

// IsNil reports whether c has no identity set.
func (c ComponentID) IsNil() bool {
	return c.ID.IsNil()
}

// ParseComponentID parses the "Type:uuid" form produced by String, the
// inverse used when a relationship graph vertex key is read back into a
// ComponentID.
func ParseComponentID(s string) (ComponentID, error) {
	typ, raw, ok := strings.Cut(s, ":")
	if !ok {
		return ComponentID{}, ErrMalformedComponentID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return ComponentID{}, ErrMalformedComponentID
	}
	return ComponentID{Type: ComponentType(typ), ID: UUID{id: id}}, nil
}
