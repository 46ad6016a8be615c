package attribute

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// ConstantColumn stores a single value shared by every row. Reads always
// return that value; Size is conceptual, tracking the row count the
// column was told about purely so DeleteRows/PermuteRows/Resize keep
// consistent bookkeeping for callers that inspect Size().
type ConstantColumn[T comparable] struct {
	spec spec[T]
	size geoid.Index
	val  T
}

// NewConstantColumn creates a constant column of size n holding def.
func NewConstantColumn[T comparable](elementType string, def T, flags Flags, combine Combiner[T], project Projector[T], n geoid.Index) *ConstantColumn[T] {
	return &ConstantColumn[T]{spec: spec[T]{elementType: elementType, def: def, flags: flags, combine: combine, project: project}, size: n, val: def}
}

// Storage reports Constant.
func (c *ConstantColumn[T]) Storage() StorageKind { return Constant }

// ElementType names the column's element type.
func (c *ConstantColumn[T]) ElementType() string { return c.spec.elementType }

// Flags returns the column's bulk-op flags.
func (c *ConstantColumn[T]) Flags() Flags { return c.spec.flags }

// Size returns the conceptual row count.
func (c *ConstantColumn[T]) Size() geoid.Index { return c.size }

// Value returns the shared value regardless of row.
func (c *ConstantColumn[T]) Value(_ geoid.Index) T { return c.val }

// DefaultValue returns the shared value.
func (c *ConstantColumn[T]) DefaultValue() T { return c.val }

// SetDefault is the only way to change a constant column's value; it
// rewrites the single shared value for every row.
func (c *ConstantColumn[T]) SetDefault(v T) {
	c.val = v
	c.spec.def = v
}

// Resize updates the conceptual row count; no storage to grow or shrink.
func (c *ConstantColumn[T]) Resize(n geoid.Index) { c.size = n }

// Reserve has no semantic effect on a constant column.
func (c *ConstantColumn[T]) Reserve(_ geoid.Index) {}

// PermuteRows is a no-op: every row reads the same value.
func (c *ConstantColumn[T]) PermuteRows(_ []geoid.Index) {}

// DeleteRows shrinks the conceptual row count to the number of kept rows.
func (c *ConstantColumn[T]) DeleteRows(mask []bool) {
	kept := geoid.Index(0)
	for _, m := range mask {
		if !m {
			kept++
		}
	}
	c.size = kept
}

// Clone returns a copy.
func (c *ConstantColumn[T]) Clone() Column {
	out := *c
	return &out
}

// CopyFrom copies the value and size from other if it is a comparable
// constant column.
func (c *ConstantColumn[T]) CopyFrom(other Column, nbElements geoid.Index) bool {
	o, ok := other.(*ConstantColumn[T])
	if !ok {
		return false
	}
	c.val = o.val
	c.size = nbElements
	return true
}

// Extract returns a constant column of the given size holding the same
// value (a constant's value is independent of row, so there is nothing to
// remap).
func (c *ConstantColumn[T]) Extract(_ []geoid.Index, newSize geoid.Index) Column {
	return NewConstantColumn[T](c.spec.elementType, c.val, c.spec.flags, c.spec.combine, c.spec.project, newSize)
}

// ImportFrom is a no-op: a constant column cannot receive per-row data.
func (c *ConstantColumn[T]) ImportFrom(other Column, _ []geoid.Index) bool {
	_, ok := other.(*ConstantColumn[T])
	return ok
}

// InterpolateInto is a no-op: every row already holds the shared value.
func (c *ConstantColumn[T]) InterpolateInto(_ geoid.Index, _ []geoid.Index, _ []float64) {}

// IsGenericable reports whether the column exposes a generic-float projection.
func (c *ConstantColumn[T]) IsGenericable() bool { return c.spec.project != nil }

// ItemCount returns floats-per-row of the generic projection.
func (c *ConstantColumn[T]) ItemCount() int { return c.spec.itemCount() }

// ValueAsFloat returns the item-th float of the shared value's projection.
func (c *ConstantColumn[T]) ValueAsFloat(_ geoid.Index, item int) float64 {
	return c.spec.valueAsFloat(c.val, item)
}
