// Package raytrace layers an element-specific geometric test over an
// internal/aabb tree: closest-element queries, k-nearest, and ray casts
// against a mesh's polygons or polyhedron facets, deduplicated by mesh
// topology (shared vertices/edges) rather than by floating-point distance.
package raytrace

import (
	"sort"

	"github.com/Geode-solutions/opengeode-go/internal/aabb"
)

// Element is anything a ray or point can be tested against: a triangle, a
// segment, or any other primitive with a distance-to-point and a
// ray-intersection test.
type Element interface {
	// DistanceToPoint returns the Euclidean distance from point to the
	// element's closest point.
	DistanceToPoint(point []float64) float64
	// IntersectRay returns the ray parameter t>=0 of the element's closest
	// intersection with the ray (origin + t*dir), or false if none.
	IntersectRay(origin, dir []float64) (float64, bool)
}

// Engine binds an AABB tree to the elements it was built over, and to the
// topology-aware dedup key (e.g. a canonical edge or shared vertex id) so
// coincident hits at a shared boundary report once.
type Engine struct {
	tree     *aabb.Tree
	elements []Element
	dedupKey func(aabb.ElementIndex) string
}

// New returns an engine over elements, whose boxes are supplied by boxOf.
// dedupKey may be nil, disabling topology-based deduplication.
func New(elements []Element, boxOf func(Element) aabb.Box, dedupKey func(aabb.ElementIndex) string) *Engine {
	boxes := make([]aabb.Box, len(elements))
	for i, e := range elements {
		boxes[i] = boxOf(e)
	}
	return &Engine{
		tree:     aabb.New(boxes),
		elements: append([]Element(nil), elements...),
		dedupKey: dedupKey,
	}
}

// ClosestElementDistance returns the element nearest point and its distance.
func (e *Engine) ClosestElementDistance(point []float64) (aabb.ElementIndex, float64, bool) {
	return e.tree.ClosestElement(point, func(i aabb.ElementIndex) float64 {
		return e.elements[i].DistanceToPoint(point)
	})
}

// ClosestElements returns the k elements nearest point, nearest first. It
// computes the distance to every element and sorts them all; the tree is
// not used to prune candidates.
func (e *Engine) ClosestElements(point []float64, k int) []aabb.ElementIndex {
	type scored struct {
		idx aabb.ElementIndex
		d   float64
	}
	all := make([]scored, len(e.elements))
	for i := range e.elements {
		all[i] = scored{aabb.ElementIndex(i), e.elements[i].DistanceToPoint(point)}
	}
	sort.Slice(all, func(a, b int) bool { return all[a].d < all[b].d })
	if k > len(all) {
		k = len(all)
	}
	out := make([]aabb.ElementIndex, k)
	for i := 0; i < k; i++ {
		out[i] = all[i].idx
	}
	return out
}

// Hit is one ray/element intersection.
type Hit struct {
	Element aabb.ElementIndex
	T       float64
}

// AllIntersections returns every element the ray (origin + t*dir, t>=0)
// crosses, sorted by increasing t, with topology-based deduplication: when
// two candidate hits share a dedup key (e.g. a ray passing exactly through
// a shared mesh edge would otherwise double-count both incident facets),
// only the first (smallest t) is kept.
func (e *Engine) AllIntersections(origin, dir []float64) []Hit {
	candidates := e.tree.RayIntersections(origin, dir)
	var hits []Hit
	for _, c := range candidates {
		t, ok := e.elements[c].IntersectRay(origin, dir)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Element: c, T: t})
	}
	sort.Slice(hits, func(a, b int) bool { return hits[a].T < hits[b].T })
	if e.dedupKey == nil {
		return hits
	}
	seen := make(map[string]bool)
	out := hits[:0]
	for _, h := range hits {
		key := e.dedupKey(h.Element)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}
