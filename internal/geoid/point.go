package geoid

import (
	"errors"

	"github.com/cpmech/gosl/la"
)

// ErrDegenerateVector is raised by normalization when a vector's length is
// at or below the global epsilon, making normalization (division by length)
// impossible.
var ErrDegenerateVector = errors.New("geoid: degenerate vector (length <= epsilon)")

// GlobalEpsilon is the tolerance used by approximate (non-exact) geometric
// queries: grid containment slack, ray-trace hit deduplication, and vector
// degeneracy detection. Exact predicates (package predicates) never use it.
const GlobalEpsilon = 1e-8

// Point2D is an ordered pair of doubles.
type Point2D struct{ X, Y float64 }

// Point3D is an ordered triple of doubles.
type Point3D struct{ X, Y, Z float64 }

// Vector2D is a 2D displacement with length/normalize/dot.
type Vector2D struct{ X, Y float64 }

// Vector3D is a 3D displacement with length/normalize/dot/cross.
type Vector3D struct{ X, Y, Z float64 }

// Add returns a+b.
func (a Point2D) Add(b Vector2D) Point2D { return Point2D{a.X + b.X, a.Y + b.Y} }

// Sub returns the displacement from b to a.
func (a Point2D) Sub(b Point2D) Vector2D { return Vector2D{a.X - b.X, a.Y - b.Y} }

// Add returns a+b.
func (a Point3D) Add(b Vector3D) Point3D { return Point3D{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns the displacement from b to a.
func (a Point3D) Sub(b Point3D) Vector3D { return Vector3D{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns b scaled by t.
func (b Vector2D) Scale(t float64) Vector2D { return Vector2D{b.X * t, b.Y * t} }

// Scale returns b scaled by t.
func (b Vector3D) Scale(t float64) Vector3D { return Vector3D{b.X * t, b.Y * t, b.Z * t} }

// Length returns the Euclidean length, via gosl/la's vector norm.
func (b Vector2D) Length() float64 { return la.VecNorm([]float64{b.X, b.Y}) }

// Length returns the Euclidean length, via gosl/la's vector norm.
func (b Vector3D) Length() float64 { return la.VecNorm([]float64{b.X, b.Y, b.Z}) }

// Dot returns the dot product, via gosl/la.
func (b Vector2D) Dot(o Vector2D) float64 { return la.VecDot([]float64{b.X, b.Y}, []float64{o.X, o.Y}) }

// Dot returns the dot product, via gosl/la.
func (b Vector3D) Dot(o Vector3D) float64 {
	return la.VecDot([]float64{b.X, b.Y, b.Z}, []float64{o.X, o.Y, o.Z})
}

// Cross returns the 3D cross product b x o. gosl/la has no 3-dimensional
// cross product (it works over arbitrary-length vectors); this is the
// dimension-specific formula instead.
func (b Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: b.Y*o.Z - b.Z*o.Y,
		Y: b.Z*o.X - b.X*o.Z,
		Z: b.X*o.Y - b.Y*o.X,
	}
}

// Normalize returns b scaled to unit length, or ErrDegenerateVector if its
// length is at or below GlobalEpsilon.
func (b Vector2D) Normalize() (Vector2D, error) {
	l := b.Length()
	if l <= GlobalEpsilon {
		return Vector2D{}, ErrDegenerateVector
	}
	return b.Scale(1 / l), nil
}

// Normalize returns b scaled to unit length, or ErrDegenerateVector if its
// length is at or below GlobalEpsilon.
func (b Vector3D) Normalize() (Vector3D, error) {
	l := b.Length()
	if l <= GlobalEpsilon {
		return Vector3D{}, ErrDegenerateVector
	}
	return b.Scale(1 / l), nil
}

// Add returns b+o.
func (b Vector3D) Add(o Vector3D) Vector3D { return Vector3D{b.X + o.X, b.Y + o.Y, b.Z + o.Z} }

// Add returns b+o.
func (b Vector2D) Add(o Vector2D) Vector2D { return Vector2D{b.X + o.X, b.Y + o.Y} }

// Normalize1 is Normalize without the degenerate-vector error: it returns
// the zero vector for a degenerate input, for callers accumulating
// area-weighted normals where a zero contribution is the correct no-op.
func (b Vector3D) Normalize1() Vector3D {
	n, err := b.Normalize()
	if err != nil {
		return Vector3D{}
	}
	return n
}

// Coords returns the coordinates as a slice (used by the generic-float
// projection of point-valued attribute columns).
func (p Point2D) Coords() []float64 { return []float64{p.X, p.Y} }

// Coords returns the coordinates as a slice.
func (p Point3D) Coords() []float64 { return []float64{p.X, p.Y, p.Z} }
