package attribute

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// Manager owns an immutable row count and a name->column map, fanning out
// bulk row operations to every column in deterministic insertion order.
// Every mesh and model component's attribute storage goes through exactly
// one Manager.
type Manager struct {
	size  geoid.Index
	names []string // insertion order
	cols  map[string]Column
}

// NewManager returns an empty manager with the given initial row count.
func NewManager(n geoid.Index) *Manager {
	return &Manager{size: n, cols: make(map[string]Column)}
}

// NbRows returns the manager's row count.
func (m *Manager) NbRows() geoid.Index { return m.size }

// ColumnNames returns the column names in insertion order.
func (m *Manager) ColumnNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// FindColumn returns the named column, or nil if absent.
func (m *Manager) FindColumn(name string) Column {
	return m.cols[name]
}

// AddColumn registers a pre-built column under name, resized to NbRows().
// If a column of that name already exists, AddColumn returns the existing
// column when its element type matches col's (col is then not registered),
// and fails with ErrAttributeTypeMismatch otherwise.
func (m *Manager) AddColumn(name string, col Column) (Column, error) {
	if existing, ok := m.cols[name]; ok {
		if existing.ElementType() == col.ElementType() {
			return existing, nil
		}
		return nil, &ErrAttributeTypeMismatch{Name: name, Existing: existing.ElementType(), Wanted: col.ElementType()}
	}
	col.Resize(m.size)
	m.cols[name] = col
	m.names = append(m.names, name)
	return col, nil
}

// DeleteColumn removes the named column, if present.
func (m *Manager) DeleteColumn(name string) {
	if _, ok := m.cols[name]; !ok {
		return
	}
	delete(m.cols, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
}

// Resize grows or shrinks every column to n rows and updates NbRows.
func (m *Manager) Resize(n geoid.Index) {
	m.size = n
	for _, name := range m.names {
		m.cols[name].Resize(n)
	}
}

// Reserve passes a capacity hint to every column; no semantic effect.
func (m *Manager) Reserve(capHint geoid.Index) {
	for _, name := range m.names {
		m.cols[name].Reserve(capHint)
	}
}

// DeleteRows compacts every column by the same keep-map (mask[i]==true
// means drop row i); the new row count is the number of false entries.
func (m *Manager) DeleteRows(mask []bool) {
	var kept geoid.Index
	for _, v := range mask {
		if !v {
			kept++
		}
	}
	for _, name := range m.names {
		m.cols[name].DeleteRows(mask)
	}
	m.size = kept
}

// PermuteRows reorders every column's rows by p, a permutation of
// [0,NbRows()). Returns ErrInvalidPermutation if p is not a bijection.
func (m *Manager) PermuteRows(p []geoid.Index) error {
	if !isPermutation(p, m.size) {
		return ErrInvalidPermutation
	}
	for _, name := range m.names {
		m.cols[name].PermuteRows(p)
	}
	return nil
}

func isPermutation(p []geoid.Index, n geoid.Index) bool {
	if geoid.Index(len(p)) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// CopyFrom deep-copies every column of other that is marked Assignable or
// Transferable into self, matching columns by name; columns present only
// in other are created in self first.
func (m *Manager) CopyFrom(other *Manager) {
	for _, name := range other.names {
		src := other.cols[name]
		flags := src.Flags()
		if !flags.Assignable && !flags.Transferable {
			continue
		}
		dst, ok := m.cols[name]
		if !ok {
			dst = src.Clone()
			dst.Resize(0)
			m.cols[name] = dst
			m.names = append(m.names, name)
		}
		dst.CopyFrom(src, other.size)
	}
	m.size = other.size
	for _, name := range m.names {
		m.cols[name].Resize(m.size)
	}
}

// ImportFrom appends rows from other into self using the index mapping
// in2out (len(in2out) == other.NbRows()); columns present only in other
// are created in self first when Transferable.
func (m *Manager) ImportFrom(other *Manager, in2out []geoid.Index) {
	for _, name := range other.names {
		src := other.cols[name]
		if !src.Flags().Transferable {
			continue
		}
		dst, ok := m.cols[name]
		if !ok {
			dst = src.Clone()
			dst.Resize(m.size)
			m.cols[name] = dst
			m.names = append(m.names, name)
		}
		dst.ImportFrom(src, in2out)
	}
}

// InterpolateInto fans out to every Interpolable column: dstRow becomes the
// linear combination of srcRows weighted by weights.
func (m *Manager) InterpolateInto(dstRow geoid.Index, srcRows []geoid.Index, weights []float64) {
	for _, name := range m.names {
		col := m.cols[name]
		if col.Flags().Interpolable {
			col.InterpolateInto(dstRow, srcRows, weights)
		}
	}
}

// FindOrCreateColumn returns the named Variable column of element type T,
// creating it (filled with def for every existing row) if absent. If a
// column of that name exists with a different element type, it fails with
// ErrAttributeTypeMismatch. This is a free function, not a Manager method,
// because Go methods cannot carry their own type parameters.
func FindOrCreateColumn[T comparable](m *Manager, name string, def T, flags Flags, combine Combiner[T], project Projector[T]) (*VariableColumn[T], error) {
	if existing, ok := m.cols[name]; ok {
		typed, ok := existing.(*VariableColumn[T])
		if !ok {
			return nil, &ErrAttributeTypeMismatch{Name: name, Existing: existing.ElementType(), Wanted: typeNameOf(def)}
		}
		return typed, nil
	}
	col := NewVariableColumn[T](typeNameOf(def), def, flags, combine, project, m.size)
	m.cols[name] = col
	m.names = append(m.names, name)
	return col, nil
}

func typeNameOf(v any) string {
	switch v.(type) {
	case float64:
		return "float64"
	case int32:
		return "int32"
	case bool:
		return "bool"
	case string:
		return "string"
	case geoid.Point2D:
		return "point2d"
	case geoid.Point3D:
		return "point3d"
	default:
		return "value"
	}
}
