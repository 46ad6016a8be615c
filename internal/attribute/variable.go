package attribute

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// VariableColumn is a dense per-row storage variant: one value per row,
// O(1) reads, length tracked independently of any backing manager so a
// handle remains valid across resizes issued elsewhere.
type VariableColumn[T comparable] struct {
	spec   spec[T]
	values []T
}

// NewVariableColumn creates a variable column of size n filled with def.
func NewVariableColumn[T comparable](elementType string, def T, flags Flags, combine Combiner[T], project Projector[T], n geoid.Index) *VariableColumn[T] {
	c := &VariableColumn[T]{spec: spec[T]{elementType: elementType, def: def, flags: flags, combine: combine, project: project}}
	c.values = make([]T, n)
	for i := range c.values {
		c.values[i] = def
	}
	return c
}

// Storage reports Variable.
func (c *VariableColumn[T]) Storage() StorageKind { return Variable }

// ElementType names the column's element type.
func (c *VariableColumn[T]) ElementType() string { return c.spec.elementType }

// Flags returns the column's bulk-op flags.
func (c *VariableColumn[T]) Flags() Flags { return c.spec.flags }

// Size returns the number of rows.
func (c *VariableColumn[T]) Size() geoid.Index { return geoid.Index(len(c.values)) }

// Value returns row's value, or the default if row is out of range.
func (c *VariableColumn[T]) Value(row geoid.Index) T {
	if int(row) >= len(c.values) {
		return c.spec.def
	}
	return c.values[row]
}

// SetValue writes v at row, growing the column if necessary.
func (c *VariableColumn[T]) SetValue(row geoid.Index, v T) {
	if int(row) >= len(c.values) {
		c.Resize(row + 1)
	}
	c.values[row] = v
}

// DefaultValue returns the column's default.
func (c *VariableColumn[T]) DefaultValue() T { return c.spec.def }

// SetDefault changes the default value used when growing the column.
func (c *VariableColumn[T]) SetDefault(v T) { c.spec.def = v }

// Resize grows or shrinks the column to n rows.
func (c *VariableColumn[T]) Resize(n geoid.Index) {
	if int(n) <= len(c.values) {
		c.values = c.values[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, c.values)
	for i := len(c.values); i < int(n); i++ {
		grown[i] = c.spec.def
	}
	c.values = grown
}

// Reserve is a capacity hint; it pre-grows the backing slice's capacity
// without changing Size().
func (c *VariableColumn[T]) Reserve(m geoid.Index) {
	if int(m) <= cap(c.values) {
		return
	}
	grown := make([]T, len(c.values), m)
	copy(grown, c.values)
	c.values = grown
}

// PermuteRows reorders rows: new[i] = old[p[i]].
func (c *VariableColumn[T]) PermuteRows(p []geoid.Index) {
	out := make([]T, len(c.values))
	for i, src := range p {
		out[i] = c.values[src]
	}
	c.values = out
}

// DeleteRows compacts the column, keeping rows where mask is false.
func (c *VariableColumn[T]) DeleteRows(mask []bool) {
	out := c.values[:0:0]
	for i, v := range c.values {
		if i < len(mask) && mask[i] {
			continue
		}
		out = append(out, v)
	}
	c.values = out
}

// Clone returns a deep copy.
func (c *VariableColumn[T]) Clone() Column {
	out := &VariableColumn[T]{spec: c.spec, values: make([]T, len(c.values))}
	copy(out.values, c.values)
	return out
}

// CopyFrom deep-copies the first nbElements rows of other, if other is a
// VariableColumn[T] of the same element type.
func (c *VariableColumn[T]) CopyFrom(other Column, nbElements geoid.Index) bool {
	o, ok := other.(*VariableColumn[T])
	if !ok {
		return false
	}
	n := int(nbElements)
	if n > len(o.values) {
		n = len(o.values)
	}
	c.Resize(geoid.Index(n))
	copy(c.values, o.values[:n])
	return true
}

// Extract projects self onto a new column of size newSize via in2out.
func (c *VariableColumn[T]) Extract(in2out []geoid.Index, newSize geoid.Index) Column {
	out := NewVariableColumn[T](c.spec.elementType, c.spec.def, c.spec.flags, c.spec.combine, c.spec.project, newSize)
	for i, v := range c.values {
		if i >= len(in2out) {
			break
		}
		dst := in2out[i]
		if !dst.IsSet() {
			continue
		}
		out.SetValue(dst, v)
	}
	return out
}

// ImportFrom writes other's rows into self at positions named by in2out.
func (c *VariableColumn[T]) ImportFrom(other Column, in2out []geoid.Index) bool {
	o, ok := other.(*VariableColumn[T])
	if !ok {
		return false
	}
	for i, v := range o.values {
		if i >= len(in2out) {
			break
		}
		dst := in2out[i]
		if !dst.IsSet() {
			continue
		}
		c.SetValue(dst, v)
	}
	return true
}

// InterpolateInto writes the interpolated value into dstRow.
func (c *VariableColumn[T]) InterpolateInto(dstRow geoid.Index, srcRows []geoid.Index, weights []float64) {
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
func (c *VariableColumn[T]) IsGenericable() bool { return c.spec.project != nil }

// ItemCount returns floats-per-row of the generic projection.
func (c *VariableColumn[T]) ItemCount() int { return c.spec.itemCount() }

// ValueAsFloat returns the item-th float of row's generic-float projection.
func (c *VariableColumn[T]) ValueAsFloat(row geoid.Index, item int) float64 {
	return c.spec.valueAsFloat(c.Value(row), item)
}
