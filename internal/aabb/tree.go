package aabb

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// ElementIndex identifies a boxed element by its position in the slice
// passed to New.
type ElementIndex uint32

type node struct {
	box      Box
	left     int // node index, -1 for a leaf
	right    int
	element  ElementIndex // valid only at a leaf
	isLeaf   bool
}

// Tree is a static binary AABB tree over N boxed elements: no element is
// added or removed after New returns. Splits happen at the median along
// each node's longest axis, halving elements instead of space, which keeps
// the tree balanced regardless of element clustering.
type Tree struct {
	nodes    []node
	root     int
	elements []Box
}

// New builds a static AABB tree over boxes. Panics if boxes is empty.
func New(boxes []Box) *Tree {
	if len(boxes) == 0 {
		chk.Panic("aabb: cannot build a tree over zero elements")
	}
	t := &Tree{elements: append([]Box(nil), boxes...)}
	idx := make([]ElementIndex, len(boxes))
	for i := range idx {
		idx[i] = ElementIndex(i)
	}
	t.root = t.build(idx)
	return t
}

func (t *Tree) build(idx []ElementIndex) int {
	box := t.elements[idx[0]]
	for _, i := range idx[1:] {
		box = Union(box, t.elements[i])
	}
	if len(idx) == 1 {
		t.nodes = append(t.nodes, node{box: box, left: -1, right: -1, element: idx[0], isLeaf: true})
		return len(t.nodes) - 1
	}
	axis := box.LongestAxis()
	sort.Slice(idx, func(a, b int) bool {
		return t.elements[idx[a]].Center()[axis] < t.elements[idx[b]].Center()[axis]
	})
	mid := len(idx) / 2
	leftIdx := t.build(idx[:mid])
	rightIdx := t.build(idx[mid:])
	t.nodes = append(t.nodes, node{box: box, left: leftIdx, right: rightIdx, isLeaf: false})
	return len(t.nodes) - 1
}

// Box returns the root bounding box.
func (t *Tree) Box() Box { return t.nodes[t.root].box }

// NbElements returns the element count.
func (t *Tree) NbElements() int { return len(t.elements) }

// ElementBox returns element e's box.
func (t *Tree) ElementBox(e ElementIndex) Box { return t.elements[e] }

// ClosestElement walks the tree pruning subtrees whose box lower bound
// already exceeds the best distance found, via dist (an element-specific
// point-to-element distance supplied by the caller, e.g. package raytrace's
// geometric kernel). Returns false if the tree is empty.
func (t *Tree) ClosestElement(point []float64, dist func(ElementIndex) float64) (ElementIndex, float64, bool) {
	best := ElementIndex(0)
	bestD := -1.0
	found := false
	var visit func(n int)
	visit = func(n int) {
		nd := t.nodes[n]
		if found && nd.box.DistanceSquared(point) > bestD*bestD {
			return
		}
		if nd.isLeaf {
			d := dist(nd.element)
			if !found || d < bestD {
				found = true
				bestD = d
				best = nd.element
			}
			return
		}
		visit(nd.left)
		visit(nd.right)
	}
	visit(t.root)
	return best, bestD, found
}

// BoxIntersections returns every element whose box intersects query.
func (t *Tree) BoxIntersections(query Box) []ElementIndex {
	var out []ElementIndex
	var visit func(n int)
	visit = func(n int) {
		nd := t.nodes[n]
		if !nd.box.Intersects(query) {
			return
		}
		if nd.isLeaf {
			out = append(out, nd.element)
			return
		}
		visit(nd.left)
		visit(nd.right)
	}
	visit(t.root)
	return out
}

// SelfIntersections returns every pair of distinct elements whose boxes
// intersect, each pair reported once (a<b).
func (t *Tree) SelfIntersections() [][2]ElementIndex {
	var out [][2]ElementIndex
	for a := ElementIndex(0); int(a) < len(t.elements); a++ {
		for _, b := range t.BoxIntersections(t.elements[a]) {
			if b > a {
				out = append(out, [2]ElementIndex{a, b})
			}
		}
	}
	return out
}

// OtherIntersections returns every pair (e, o) where e is an element of t
// and o an element of other whose boxes intersect.
func (t *Tree) OtherIntersections(other *Tree) [][2]ElementIndex {
	var out [][2]ElementIndex
	for a := ElementIndex(0); int(a) < len(t.elements); a++ {
		for _, b := range other.BoxIntersections(t.elements[a]) {
			out = append(out, [2]ElementIndex{a, b})
		}
	}
	return out
}

// RayIntersections returns every element whose box the ray
// (origin + s*dir, s ∈ [0,+∞)) crosses, in no particular order; callers
// needing ordered hits run an element-specific test and sort (package
// raytrace does this).
func (t *Tree) RayIntersections(origin, dir []float64) []ElementIndex {
	var out []ElementIndex
	var visit func(n int)
	visit = func(n int) {
		nd := t.nodes[n]
		if !nd.box.rayIntersects(origin, dir, 0, math.Inf(1)) {
			return
		}
		if nd.isLeaf {
			out = append(out, nd.element)
			return
		}
		visit(nd.left)
		visit(nd.right)
	}
	visit(t.root)
	return out
}
