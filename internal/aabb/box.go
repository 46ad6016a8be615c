// Package aabb implements a static axis-aligned bounding-box tree: a binary
// hierarchy over a fixed set of boxed elements, split along each node's
// longest axis at the median, used to accelerate nearest-element, box-
// intersection and ray-intersection queries without an element-specific
// geometric kernel (that lives in package raytrace).
package aabb

import "math"

// Box is an axis-aligned bounding box over 2 or 3 dimensions (Min/Max share
// length, either 2 or 3).
type Box struct {
	Min []float64
	Max []float64
}

// NewBox returns the box [min,max]. Panics if the slices differ in length.
func NewBox(min, max []float64) Box {
	if len(min) != len(max) {
		panic("aabb: mismatched box dimension")
	}
	return Box{Min: append([]float64(nil), min...), Max: append([]float64(nil), max...)}
}

// Union returns the smallest box containing both a and b.
func Union(a, b Box) Box {
	out := Box{Min: make([]float64, len(a.Min)), Max: make([]float64, len(a.Max))}
	for i := range a.Min {
		out.Min[i] = math.Min(a.Min[i], b.Min[i])
		out.Max[i] = math.Max(a.Max[i], b.Max[i])
	}
	return out
}

// Center returns the box's centroid.
func (b Box) Center() []float64 {
	out := make([]float64, len(b.Min))
	for i := range out {
		out[i] = 0.5 * (b.Min[i] + b.Max[i])
	}
	return out
}

// LongestAxis returns the index of the axis along which b is widest.
func (b Box) LongestAxis() int {
	best, bestLen := 0, -1.0
	for i := range b.Min {
		l := b.Max[i] - b.Min[i]
		if l > bestLen {
			best, bestLen = i, l
		}
	}
	return best
}

// Intersects reports whether b and o overlap (touching counts as overlap).
func (b Box) Intersects(o Box) bool {
	for i := range b.Min {
		if b.Max[i] < o.Min[i] || o.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// Contains reports whether point lies within b.
func (b Box) Contains(point []float64) bool {
	for i := range b.Min {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// DistanceSquared returns the squared Euclidean distance from point to the
// nearest point of b (0 if point is inside).
func (b Box) DistanceSquared(point []float64) float64 {
	var sum float64
	for i := range b.Min {
		d := 0.0
		if point[i] < b.Min[i] {
			d = b.Min[i] - point[i]
		} else if point[i] > b.Max[i] {
			d = point[i] - b.Max[i]
		}
		sum += d * d
	}
	return sum
}

// rayIntersects implements the slab method, returning whether the ray
// (origin + t*dir, t ∈ [tMin,tMax]) crosses b.
func (b Box) rayIntersects(origin, dir []float64, tMin, tMax float64) bool {
	for i := range b.Min {
		if dir[i] == 0 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return false
			}
			continue
		}
		inv := 1 / dir[i]
		t0 := (b.Min[i] - origin[i]) * inv
		t1 := (b.Max[i] - origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
