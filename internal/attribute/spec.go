package attribute

// Combiner computes the linear combination of values weighted by weights,
// used by InterpolateInto for Interpolable columns. Implementations for
// the built-in arithmetic scalar/array element types live in scalars.go;
// non-arithmetic element types pass a nil Combiner, in which case
// InterpolateInto always writes the column's default value.
type Combiner[T comparable] func(values []T, weights []float64) T

// Projector returns the generic-float projection of a value: a fixed-size
// sequence of floats. A nil Projector marks the element type as not
// genericable (ItemCount reports 0).
type Projector[T comparable] func(v T) []float64

// spec bundles the per-element-type configuration shared by all three
// storage variants of a column: its default value, bulk-op flags, display
// name, and the two optional behaviors (interpolation, generic projection)
// that only apply to types that support them.
type spec[T comparable] struct {
	elementType string
	def         T
	flags       Flags
	combine     Combiner[T]
	project     Projector[T]
}

func (s spec[T]) interpolate(values []T, weights []float64) T {
	if len(values) == 0 {
		return s.def
	}
	// interpolation identity: if every source value is bit-equal to the
	// first, return the first verbatim regardless of weights — this is
	// the authoritative default per the column interpolation contract
	// (preserves exact integer/enum labels across a no-op interpolation).
	first := values[0]
	allEqual := true
	for _, v := range values[1:] {
		if v != first {
			allEqual = false
			break
		}
	}
	if allEqual {
		return first
	}
	if s.combine == nil {
		return s.def
	}
	return s.combine(values, weights)
}

func (s spec[T]) itemCount() int {
	if s.project == nil {
		return 0
	}
	return len(s.project(s.def))
}

func (s spec[T]) valueAsFloat(v T, item int) float64 {
	if s.project == nil {
		return 0
	}
	items := s.project(v)
	if item < 0 || item >= len(items) {
		return 0
	}
	return items[item]
}
