// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attribute implements the typed columnar storage attached to every
// element set in the kernel (vertices, edges, facets, polygons, polyhedra,
// model components): the Manager owning a row count and a name->column map,
// and the three column storage variants (constant, variable, sparse) with
// their interpolate/permute/delete/generic-float-projection contracts.
package attribute

import "github.com/cpmech/gosl/chk"

// ErrAttributeTypeMismatch is returned by FindOrCreateColumn when a column
// of the requested name already exists with a different element type.
type ErrAttributeTypeMismatch struct {
	Name     string
	Existing string
	Wanted   string
}

func (e *ErrAttributeTypeMismatch) Error() string {
	return chk.Err("attribute %q exists with type %q, wanted %q\n", e.Name, e.Existing, e.Wanted).Error()
}

// ErrIndexOutOfRange is returned by explicit row access past the manager's
// row count.
type ErrIndexOutOfRange struct {
	Index uint32
	Size  uint32
}

func (e *ErrIndexOutOfRange) Error() string {
	return chk.Err("row index %d out of range [0,%d)\n", e.Index, e.Size).Error()
}

// ErrInvalidPermutation is returned by PermuteRows when the given sequence
// is not a bijection on [0,N).
var ErrInvalidPermutation = chk.Err("attribute: permutation vector is not a bijection on [0,N)\n")

// ErrMappingOutOfRange is returned by Extract/ImportFrom when a target row
// index exceeds the stated new size.
var ErrMappingOutOfRange = chk.Err("attribute: mapping target row exceeds new size\n")
