package attribute

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// SparseColumn stores explicit entries in a map; reads of unset rows fall
// back to the default value. Suited to columns where only a small subset
// of rows carry a non-default value.
type SparseColumn[T comparable] struct {
	spec    spec[T]
	size    geoid.Index
	entries map[geoid.Index]T
}

// NewSparseColumn creates a sparse column of size n with no explicit
// entries (every row reads def).
func NewSparseColumn[T comparable](elementType string, def T, flags Flags, combine Combiner[T], project Projector[T], n geoid.Index) *SparseColumn[T] {
	return &SparseColumn[T]{
		spec:    spec[T]{elementType: elementType, def: def, flags: flags, combine: combine, project: project},
		size:    n,
		entries: make(map[geoid.Index]T),
	}
}

// Storage reports Sparse.
func (c *SparseColumn[T]) Storage() StorageKind { return Sparse }

// ElementType names the column's element type.
func (c *SparseColumn[T]) ElementType() string { return c.spec.elementType }

// Flags returns the column's bulk-op flags.
func (c *SparseColumn[T]) Flags() Flags { return c.spec.flags }

// Size returns the row count.
func (c *SparseColumn[T]) Size() geoid.Index { return c.size }

// Value returns row's explicit entry, or the default if unset.
func (c *SparseColumn[T]) Value(row geoid.Index) T {
	if v, ok := c.entries[row]; ok {
		return v
	}
	return c.spec.def
}

// SetValue writes an explicit entry at row, growing the column if
// necessary. Writing the default value removes any explicit entry (keeps
// the sparse map minimal).
func (c *SparseColumn[T]) SetValue(row geoid.Index, v T) {
	if row >= c.size {
		c.size = row + 1
	}
	if v == c.spec.def {
		delete(c.entries, row)
		return
	}
	c.entries[row] = v
}

// DefaultValue returns the column's default.
func (c *SparseColumn[T]) DefaultValue() T { return c.spec.def }

// SetDefault changes the default used by unset rows.
func (c *SparseColumn[T]) SetDefault(v T) { c.spec.def = v }

// Resize grows or shrinks the row count, dropping entries past the new
// size on shrink.
func (c *SparseColumn[T]) Resize(n geoid.Index) {
	grow := n >= c.size
	c.size = n
	if grow {
		return
	}
	for row := range c.entries {
		if row >= n {
			delete(c.entries, row)
		}
	}
}

// Reserve is a capacity hint with no semantic effect.
func (c *SparseColumn[T]) Reserve(_ geoid.Index) {}

// PermuteRows reorders explicit entries: new[i] holds old[p[i]].
func (c *SparseColumn[T]) PermuteRows(p []geoid.Index) {
	inverse := make(map[geoid.Index]geoid.Index, len(p))
	for newIdx, oldIdx := range p {
		inverse[oldIdx] = geoid.Index(newIdx)
	}
	out := make(map[geoid.Index]T, len(c.entries))
	for oldIdx, v := range c.entries {
		if newIdx, ok := inverse[oldIdx]; ok {
			out[newIdx] = v
		}
	}
	c.entries = out
}

// DeleteRows compacts the column, keeping rows where mask is false.
func (c *SparseColumn[T]) DeleteRows(mask []bool) {
	out := make(map[geoid.Index]T)
	var kept geoid.Index
	for i := geoid.Index(0); i < c.size; i++ {
		if int(i) < len(mask) && mask[i] {
			continue
		}
		if v, ok := c.entries[i]; ok {
			out[kept] = v
		}
		kept++
	}
	c.entries = out
	c.size = kept
}

// Clone returns a deep copy.
func (c *SparseColumn[T]) Clone() Column {
	out := &SparseColumn[T]{spec: c.spec, size: c.size, entries: make(map[geoid.Index]T, len(c.entries))}
	for k, v := range c.entries {
		out.entries[k] = v
	}
	return out
}

// CopyFrom deep-copies the first nbElements rows of other.
func (c *SparseColumn[T]) CopyFrom(other Column, nbElements geoid.Index) bool {
	o, ok := other.(*SparseColumn[T])
	if !ok {
		return false
	}
	c.entries = make(map[geoid.Index]T)
	c.size = nbElements
	for row, v := range o.entries {
		if row < nbElements {
			c.entries[row] = v
		}
	}
	return true
}

// Extract projects self onto a new column of size newSize via in2out.
func (c *SparseColumn[T]) Extract(in2out []geoid.Index, newSize geoid.Index) Column {
	out := NewSparseColumn[T](c.spec.elementType, c.spec.def, c.spec.flags, c.spec.combine, c.spec.project, newSize)
	for row, v := range c.entries {
		if int(row) >= len(in2out) {
			continue
		}
		dst := in2out[row]
		if !dst.IsSet() {
			continue
		}
		out.SetValue(dst, v)
	}
	return out
}

// ImportFrom writes other's explicit entries into self via in2out.
func (c *SparseColumn[T]) ImportFrom(other Column, in2out []geoid.Index) bool {
	o, ok := other.(*SparseColumn[T])
	if !ok {
		return false
	}
	for row, v := range o.entries {
		if int(row) >= len(in2out) {
			continue
		}
		dst := in2out[row]
		if !dst.IsSet() {
			continue
		}
		c.SetValue(dst, v)
	}
	return true
}

// InterpolateInto writes the interpolated value into dstRow.
func (c *SparseColumn[T]) InterpolateInto(dstRow geoid.Index, srcRows []geoid.Index, weights []float64) {
	if !c.spec.flags.Interpolable {
		return
	}
	values := make([]T, len(srcRows))
	for i, r := range srcRows {
		values[i] = c.Value(r)
	}
	c.SetValue(dstRow, c.spec.interpolate(values, weights))
}

// IsGenericable reports whether the column exposes a generic-float projection.
func (c *SparseColumn[T]) IsGenericable() bool { return c.spec.project != nil }

// ItemCount returns floats-per-row of the generic projection.
func (c *SparseColumn[T]) ItemCount() int { return c.spec.itemCount() }

// ValueAsFloat returns the item-th float of row's generic-float projection.
func (c *SparseColumn[T]) ValueAsFloat(row geoid.Index, item int) float64 {
	return c.spec.valueAsFloat(c.Value(row), item)
}
