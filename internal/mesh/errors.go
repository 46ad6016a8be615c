// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the mesh topology kernel: the incidence/adjacency
// graphs of polygonal surfaces, polyhedral solids, and structured grids,
// built on top of the attribute system (package attribute) for all
// per-element data.
package mesh

import "github.com/cpmech/gosl/chk"

// ErrInvalidArity is returned when a polygon is created with fewer than 3
// vertices, or a polyhedron with an unsupported vertex count for its type.
var ErrInvalidArity = chk.Err("mesh: invalid arity\n")

// ErrIndexOutOfRange is returned by explicit vertex/element/local-index
// access past the known bound.
var ErrIndexOutOfRange = chk.Err("mesh: index out of range\n")

// ErrAdjacencyInconsistent is returned when a builder-requested adjacency
// change would produce a non-reciprocal polygon-edge or polyhedron-facet
// pairing.
var ErrAdjacencyInconsistent = chk.Err("mesh: adjacency would be non-reciprocal\n")

// ErrEdgeNotOnBorder guards next_on_border/previous_on_border's
// precondition.
var ErrEdgeNotOnBorder = chk.Err("mesh: edge is not on border\n")
