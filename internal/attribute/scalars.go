package attribute

import (
	"github.com/cpmech/gosl/la"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// This file collects the built-in genericable/interpolable element types:
// float64, int32, and the fixed-size point/vector arrays. Non-arithmetic
// types (bool, string) are genericable=false, interpolable default value
// only, matching the "types without a generic-float projection report 0
// items" and "non-arithmetic types default to returning the column's
// default value" contracts.

// combineVector computes a weighted sum of dim-dimensional vectors the way
// shp/shp.go and fem/e_u_contact.go build weighted nodal sums: la.VecFill
// the accumulator, then la.VecAdd each scaled contribution into it.
func combineVector(dim int, values [][]float64, weights []float64) []float64 {
	acc := make([]float64, dim)
	la.VecFill(acc, 0)
	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		la.VecAdd(acc, w, v)
	}
	return acc
}

func combineFloat64(values []float64, weights []float64) float64 {
	vs := make([][]float64, len(values))
	for i, v := range values {
		vs[i] = []float64{v}
	}
	return combineVector(1, vs, weights)[0]
}

func projectFloat64(v float64) []float64 { return []float64{v} }

// NewFloat64Column builds a Variable float64 column, interpolable and
// genericable by default (single-item projection).
func NewFloat64Column(def float64, flags Flags, n geoid.Index) *VariableColumn[float64] {
	return NewVariableColumn[float64]("float64", def, flags, combineFloat64, projectFloat64, n)
}

func combineInt32(values []int32, weights []float64) int32 {
	vs := make([][]float64, len(values))
	for i, v := range values {
		vs[i] = []float64{float64(v)}
	}
	return int32(combineVector(1, vs, weights)[0])
}

func projectInt32(v int32) []float64 { return []float64{float64(v)} }

// NewInt32Column builds a Variable int32 column.
func NewInt32Column(def int32, flags Flags, n geoid.Index) *VariableColumn[int32] {
	return NewVariableColumn[int32]("int32", def, flags, combineInt32, projectInt32, n)
}

// NewBoolColumn builds a Variable bool column. Bool values are packed one
// byte per row (the natural Go []bool representation), not bits, so that a
// handle to a single row's value remains a stable reference as required by
// the spec. Bool is not interpolable or genericable by default.
func NewBoolColumn(def bool, flags Flags, n geoid.Index) *VariableColumn[bool] {
	return NewVariableColumn[bool]("bool", def, flags, nil, nil, n)
}

// NewStringColumn builds a Variable string column, neither interpolable
// nor genericable.
func NewStringColumn(def string, flags Flags, n geoid.Index) *VariableColumn[string] {
	return NewVariableColumn[string]("string", def, flags, nil, nil, n)
}

func combinePoint2D(values []geoid.Point2D, weights []float64) geoid.Point2D {
	vs := make([][]float64, len(values))
	for i, v := range values {
		vs[i] = v.Coords()
	}
	r := combineVector(2, vs, weights)
	return geoid.Point2D{X: r[0], Y: r[1]}
}

func projectPoint2D(v geoid.Point2D) []float64 { return v.Coords() }

// NewPoint2DColumn builds a Variable 2D-point column (vertex coordinates
// in surface/grid meshes). Interpolable and genericable (2 items/row).
func NewPoint2DColumn(def geoid.Point2D, flags Flags, n geoid.Index) *VariableColumn[geoid.Point2D] {
	return NewVariableColumn[geoid.Point2D]("point2d", def, flags, combinePoint2D, projectPoint2D, n)
}

func combinePoint3D(values []geoid.Point3D, weights []float64) geoid.Point3D {
	vs := make([][]float64, len(values))
	for i, v := range values {
		vs[i] = v.Coords()
	}
	r := combineVector(3, vs, weights)
	return geoid.Point3D{X: r[0], Y: r[1], Z: r[2]}
}

func projectPoint3D(v geoid.Point3D) []float64 { return v.Coords() }

// NewPoint3DColumn builds a Variable 3D-point column. Interpolable and
// genericable (3 items/row).
func NewPoint3DColumn(def geoid.Point3D, flags Flags, n geoid.Index) *VariableColumn[geoid.Point3D] {
	return NewVariableColumn[geoid.Point3D]("point3d", def, flags, combinePoint3D, projectPoint3D, n)
}
