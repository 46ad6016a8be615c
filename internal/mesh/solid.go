package mesh

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// PolyhedronFacetRef names a polyhedron's local facet slot (p, f).
type PolyhedronFacetRef struct {
	Polyhedron geoid.Index
	Facet      geoid.Index
}

// PolyhedronVertexRef names a polyhedron's local vertex slot (p, i).
type PolyhedronVertexRef struct {
	Polyhedron geoid.Index
	Local      geoid.Index
}

// SolidMesh is the surface kernel lifted by one dimension: polyhedra (of
// type tetra/pyramid/prism/hex/general) with facet adjacency, and derived
// facet and edge tables built across the whole mesh. For fixed types,
// facet and local-edge incidence comes from the static tables in
// statictables.go; general polyhedra store an explicit per-polyhedron
// facet-vertex CSR, matching the hybrid-solid variant described in
// original_source/src/geode/mesh/core/geode_hybrid_solid.cpp.
type SolidMesh struct {
	*VertexSet[geoid.Point3D]

	polyhVerts []geoid.Index
	polyhPtr   []geoid.Index
	polyhType  []PolyhedronType
	polyhAttrs *attribute.Manager

	// only populated for General-type polyhedra: outward-ordered global
	// vertex ids per facet.
	genFacets map[geoid.Index][][]geoid.Index

	facetAdjacent [][]geoid.Index // [p][localFacet] -> adjacent polyhedron or NoIndex

	facetsEnabled   bool
	facetKeys       []string
	facetIndex      map[string]geoid.Index
	facetAttrs      *attribute.Manager
	polyhedronFacet [][]geoid.Index // [p][localFacet] -> facet id

	edgesEnabled bool
	edges        []EdgeVertices
	edgeIndex    map[EdgeVertices]geoid.Index
	edgeAttrs    *attribute.Manager

	aroundVertexHint []geoid.Index // vertex -> one incident polyhedron, for BFS seeding
}

// NewSolidMesh returns an empty solid mesh.
func NewSolidMesh() *SolidMesh {
	return &SolidMesh{
		VertexSet:  NewVertexSet[geoid.Point3D](),
		polyhPtr:   []geoid.Index{0},
		polyhAttrs: attribute.NewManager(0),
		genFacets:  make(map[geoid.Index][][]geoid.Index),
	}
}

// PolyhedronAttributes returns the polyhedron attribute manager.
func (s *SolidMesh) PolyhedronAttributes() *attribute.Manager { return s.polyhAttrs }

// FacetAttributes returns the derived-facet attribute manager.
func (s *SolidMesh) FacetAttributes() *attribute.Manager { return s.facetAttrs }

// EdgeAttributes returns the derived-edge attribute manager.
func (s *SolidMesh) EdgeAttributes() *attribute.Manager { return s.edgeAttrs }

// NbPolyhedra returns the polyhedron count.
func (s *SolidMesh) NbPolyhedra() geoid.Index { return geoid.Index(len(s.polyhPtr) - 1) }

// NbFacets returns the derived facet count (0 if facets are disabled).
func (s *SolidMesh) NbFacets() geoid.Index { return geoid.Index(len(s.facetKeys)) }

// NbEdges returns the derived edge count (0 if edges are disabled).
func (s *SolidMesh) NbEdges() geoid.Index { return geoid.Index(len(s.edges)) }

// PolyhedronType returns polyhedron p's type.
func (s *SolidMesh) PolyhedronType(p geoid.Index) PolyhedronType {
	if p >= s.NbPolyhedra() {
		return General
	}
	return s.polyhType[p]
}

// NbPolyhedronVertices returns polyhedron p's vertex count.
func (s *SolidMesh) NbPolyhedronVertices(p geoid.Index) geoid.Index {
	if p >= s.NbPolyhedra() {
		return 0
	}
	return s.polyhPtr[p+1] - s.polyhPtr[p]
}

// PolyhedronVertex returns the vertex id at local slot (p,i).
func (s *SolidMesh) PolyhedronVertex(ref PolyhedronVertexRef) (geoid.Index, error) {
	if ref.Polyhedron >= s.NbPolyhedra() || ref.Local >= s.NbPolyhedronVertices(ref.Polyhedron) {
		return 0, ErrIndexOutOfRange
	}
	return s.polyhVerts[s.polyhPtr[ref.Polyhedron]+ref.Local], nil
}

// PolyhedronVertices returns the ordered vertex ids of polyhedron p.
func (s *SolidMesh) PolyhedronVertices(p geoid.Index) []geoid.Index {
	if p >= s.NbPolyhedra() {
		return nil
	}
	lo, hi := s.polyhPtr[p], s.polyhPtr[p+1]
	out := make([]geoid.Index, hi-lo)
	copy(out, s.polyhVerts[lo:hi])
	return out
}

// NbPolyhedronFacets returns polyhedron p's facet count.
func (s *SolidMesh) NbPolyhedronFacets(p geoid.Index) geoid.Index {
	if p >= s.NbPolyhedra() {
		return 0
	}
	t := s.polyhType[p]
	if t == General {
		return geoid.Index(len(s.genFacets[p]))
	}
	return geoid.Index(len(facetLayout[t]))
}

// PolyhedronFacetVertices returns the outward-ordered global vertex ids of
// facet (p,f).
func (s *SolidMesh) PolyhedronFacetVertices(ref PolyhedronFacetRef) []geoid.Index {
	p, f := ref.Polyhedron, ref.Facet
	if p >= s.NbPolyhedra() || f >= s.NbPolyhedronFacets(p) {
		return nil
	}
	t := s.polyhType[p]
	if t == General {
		return append([]geoid.Index(nil), s.genFacets[p][f]...)
	}
	locals := facetLayout[t][f]
	verts := s.PolyhedronVertices(p)
	out := make([]geoid.Index, len(locals))
	for i, l := range locals {
		out[i] = verts[l]
	}
	return out
}

// PolyhedronAdjacentFacet returns the polyhedron q on the other side of
// facet (p,f), or NoIndex if the facet is on the border. Only q is
// returned; the matching local facet of q is not.
func (s *SolidMesh) PolyhedronAdjacentFacet(ref PolyhedronFacetRef) geoid.Index {
	if int(ref.Polyhedron) >= len(s.facetAdjacent) {
		return geoid.NoIndex
	}
	row := s.facetAdjacent[ref.Polyhedron]
	if int(ref.Facet) >= len(row) {
		return geoid.NoIndex
	}
	return row[ref.Facet]
}

func facetKey(verts []geoid.Index) string {
	sorted := append([]geoid.Index(nil), verts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}

// localEdges returns the global-vertex-id edges of polyhedron p: from the
// static table for fixed types, derived from facet cycles (deduplicated)
// for General.
func (s *SolidMesh) localEdges(p geoid.Index) []EdgeVertices {
	t := s.polyhType[p]
	verts := s.PolyhedronVertices(p)
	if t != General {
		out := make([]EdgeVertices, len(edgeLayout[t]))
		for i, e := range edgeLayout[t] {
			out[i] = canonicalEdge(verts[e[0]], verts[e[1]])
		}
		return out
	}
	seen := make(map[EdgeVertices]bool)
	var out []EdgeVertices
	for f := geoid.Index(0); f < s.NbPolyhedronFacets(p); f++ {
		fv := s.PolyhedronFacetVertices(PolyhedronFacetRef{p, f})
		for i := range fv {
			e := canonicalEdge(fv[i], fv[(i+1)%len(fv)])
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}
