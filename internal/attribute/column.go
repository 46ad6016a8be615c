package attribute

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// Flags controls how bulk attribute-manager operations treat a column.
type Flags struct {
	// Assignable: when a mesh vertex is copied, copy this column's value.
	Assignable bool
	// Interpolable: when a new element is introduced by a linear
	// combination of existing ones, compute the interpolated value.
	Interpolable bool
	// Transferable: survives model copy to a new element set.
	Transferable bool
}

// StorageKind names the three column storage variants.
type StorageKind int

// Storage variants.
const (
	Constant StorageKind = iota
	Variable
	Sparse
)

// Column is the capability every attribute column variant implements,
// regardless of element type. It replaces the source's
// AttributeBase -> ReadOnlyAttribute<T> -> VariableAttribute<T> class
// hierarchy with a single interface implemented by three generic storage
// types (ConstantColumn[T], VariableColumn[T], SparseColumn[T]).
type Column interface {
	// Storage reports which of the three storage variants this column is.
	Storage() StorageKind
	// ElementType names the column's element type, e.g. "float64", "bool".
	ElementType() string
	// Flags returns the column's assignable/interpolable/transferable bits.
	Flags() Flags
	// Size returns the column's effective row count. Conceptual for
	// Constant columns: it always equals the owning manager's row count.
	Size() geoid.Index
	// Resize grows or shrinks the column to n rows, filling new rows with
	// the default value.
	Resize(n geoid.Index)
	// Reserve is a capacity hint with no semantic effect.
	Reserve(m geoid.Index)
	// PermuteRows reorders the column's rows by permutation p:
	// new[i] = old[p[i]].
	PermuteRows(p []geoid.Index)
	// DeleteRows compacts the column keeping only rows where mask is
	// false, in ascending original-index order.
	DeleteRows(mask []bool)
	// Clone returns a deep, independent copy of the column.
	Clone() Column
	// CopyFrom deep-copies the first nbElements rows of other into self.
	// Returns false if the element types differ.
	CopyFrom(other Column, nbElements geoid.Index) bool
	// Extract projects self onto a new column of size newSize using
	// in2out (len(in2out) == self.Size()); rows not targeted by any
	// mapping entry keep the default value.
	Extract(in2out []geoid.Index, newSize geoid.Index) Column
	// ImportFrom is the dual of Extract: appends/writes other's rows into
	// self at the rows named by in2out (len(in2out) == other.Size()).
	ImportFrom(other Column, in2out []geoid.Index) bool
	// InterpolateInto writes into dstRow the linear combination of
	// srcRows weighted by weights, per the column's interpolation
	// contract (no-op if the column is not Interpolable).
	InterpolateInto(dstRow geoid.Index, srcRows []geoid.Index, weights []float64)
	// IsGenericable reports whether the column exposes a generic-float
	// projection.
	IsGenericable() bool
	// ItemCount returns how many floats project() writes per row; 0 for
	// non-genericable columns.
	ItemCount() int
	// ValueAsFloat returns the item-th float of row's generic-float
	// projection; 0 for non-genericable columns or out-of-range items.
	ValueAsFloat(row geoid.Index, item int) float64
}
