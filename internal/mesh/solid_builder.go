package mesh

import (
	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

func (s *SolidMesh) appendPolyhedron(t PolyhedronType, verts []geoid.Index) (geoid.Index, error) {
	for _, v := range verts {
		if v >= s.NbVertices() {
			return 0, ErrIndexOutOfRange
		}
	}
	p := s.NbPolyhedra()
	s.polyhVerts = append(s.polyhVerts, verts...)
	s.polyhPtr = append(s.polyhPtr, geoid.Index(len(s.polyhVerts)))
	s.polyhType = append(s.polyhType, t)
	nf := 0
	if t == General {
		nf = len(s.genFacets[p])
	} else {
		nf = len(facetLayout[t])
	}
	s.facetAdjacent = append(s.facetAdjacent, make([]geoid.Index, nf))
	for i := range s.facetAdjacent[p] {
		s.facetAdjacent[p][i] = geoid.NoIndex
	}
	s.polyhAttrs.Resize(p + 1)
	s.maintainDerivedSolid()
	return p, nil
}

// CreateTetrahedron appends a tetra polyhedron over 4 vertices.
func (s *SolidMesh) CreateTetrahedron(vs [4]geoid.Index) (geoid.Index, error) {
	return s.appendPolyhedron(Tetra, vs[:])
}

// CreatePyramid appends a pyramid polyhedron over 5 vertices (base quad
// 0..3, apex 4).
func (s *SolidMesh) CreatePyramid(vs [5]geoid.Index) (geoid.Index, error) {
	return s.appendPolyhedron(Pyramid, vs[:])
}

// CreatePrism appends a prism polyhedron over 6 vertices (two triangles
// 0-1-2 and 3-4-5).
func (s *SolidMesh) CreatePrism(vs [6]geoid.Index) (geoid.Index, error) {
	return s.appendPolyhedron(Prism, vs[:])
}

// CreateHexahedron appends a hex polyhedron over 8 vertices.
func (s *SolidMesh) CreateHexahedron(vs [8]geoid.Index) (geoid.Index, error) {
	return s.appendPolyhedron(Hex, vs[:])
}

// CreatePolyhedron appends a general polyhedron given its vertex list and
// explicit facet incidence (each facet a list of local indices into vs, in
// outward order).
func (s *SolidMesh) CreatePolyhedron(vs []geoid.Index, facets [][]geoid.Index) (geoid.Index, error) {
	if len(vs) < 4 || len(facets) < 4 {
		return 0, ErrInvalidArity
	}
	p := s.NbPolyhedra()
	globalFacets := make([][]geoid.Index, len(facets))
	for i, f := range facets {
		gf := make([]geoid.Index, len(f))
		for j, local := range f {
			if int(local) >= len(vs) {
				return 0, ErrIndexOutOfRange
			}
			gf[j] = vs[local]
		}
		globalFacets[i] = gf
	}
	s.genFacets[p] = globalFacets
	return s.appendPolyhedron(General, vs)
}

// SetPolyhedronAdjacentFacet pairs facet (p,f) with polyhedron q across it.
func (s *SolidMesh) SetPolyhedronAdjacentFacet(ref PolyhedronFacetRef, q geoid.Index) error {
	if int(ref.Polyhedron) >= len(s.facetAdjacent) || int(ref.Facet) >= len(s.facetAdjacent[ref.Polyhedron]) {
		return ErrIndexOutOfRange
	}
	s.facetAdjacent[ref.Polyhedron][ref.Facet] = q
	return nil
}

// ComputePolyhedronAdjacencies pairs up, for every facet vertex-cycle
// (up to rotation/reflection), the two polyhedron facets referencing it;
// facets with more than two occurrences are left unpaired.
func (s *SolidMesh) ComputePolyhedronAdjacencies() {
	type occurrence struct{ polyh, facet geoid.Index }
	buckets := make(map[string][]occurrence)
	for p := geoid.Index(0); p < s.NbPolyhedra(); p++ {
		for f := geoid.Index(0); f < s.NbPolyhedronFacets(p); f++ {
			verts := s.PolyhedronFacetVertices(PolyhedronFacetRef{p, f})
			key := facetKey(verts)
			buckets[key] = append(buckets[key], occurrence{p, f})
		}
	}
	for _, occs := range buckets {
		if len(occs) != 2 {
			for _, o := range occs {
				s.facetAdjacent[o.polyh][o.facet] = geoid.NoIndex
			}
			continue
		}
		s.facetAdjacent[occs[0].polyh][occs[0].facet] = occs[1].polyh
		s.facetAdjacent[occs[1].polyh][occs[1].facet] = occs[0].polyh
	}
	s.maintainDerivedSolid()
}

// DeletePolyhedra removes the marked polyhedra and compacts every derived
// table in lockstep.
func (s *SolidMesh) DeletePolyhedra(mask []bool) {
	in2out := make([]geoid.Index, s.NbPolyhedra())
	var kept geoid.Index
	for p := geoid.Index(0); p < s.NbPolyhedra(); p++ {
		if int(p) < len(mask) && mask[p] {
			in2out[p] = geoid.NoIndex
			continue
		}
		in2out[p] = kept
		kept++
	}
	newVerts := s.polyhVerts[:0:0]
	newPtr := []geoid.Index{0}
	var newType []PolyhedronType
	var newAdjacent [][]geoid.Index
	newGenFacets := make(map[geoid.Index][][]geoid.Index)
	for p := geoid.Index(0); p < s.NbPolyhedra(); p++ {
		if int(p) < len(mask) && mask[p] {
			continue
		}
		lo, hi := s.polyhPtr[p], s.polyhPtr[p+1]
		newVerts = append(newVerts, s.polyhVerts[lo:hi]...)
		newPtr = append(newPtr, geoid.Index(len(newVerts)))
		newType = append(newType, s.polyhType[p])
		row := make([]geoid.Index, len(s.facetAdjacent[p]))
		for i, adj := range s.facetAdjacent[p] {
			if adj.IsSet() {
				adj = in2out[adj]
			}
			row[i] = adj
		}
		newAdjacent = append(newAdjacent, row)
		if s.polyhType[p] == General {
			newGenFacets[in2out[p]] = s.genFacets[p]
		}
	}
	s.polyhVerts = newVerts
	s.polyhPtr = newPtr
	s.polyhType = newType
	s.facetAdjacent = newAdjacent
	s.genFacets = newGenFacets
	s.polyhAttrs.DeleteRows(mask)
	s.maintainDerivedSolid()
}

// PermutePolyhedra reorders polyhedra by σ: new[i] = old[σ(i)].
func (s *SolidMesh) PermutePolyhedra(sigma []geoid.Index) error {
	n := s.NbPolyhedra()
	inverse := make([]geoid.Index, n)
	for newIdx, oldIdx := range sigma {
		inverse[oldIdx] = geoid.Index(newIdx)
	}
	newVerts := make([]geoid.Index, 0, len(s.polyhVerts))
	newPtr := []geoid.Index{0}
	newType := make([]PolyhedronType, 0, n)
	newAdjacent := make([][]geoid.Index, 0, n)
	newGenFacets := make(map[geoid.Index][][]geoid.Index)
	for newIdx, oldP := range sigma {
		lo, hi := s.polyhPtr[oldP], s.polyhPtr[oldP+1]
		newVerts = append(newVerts, s.polyhVerts[lo:hi]...)
		newPtr = append(newPtr, geoid.Index(len(newVerts)))
		newType = append(newType, s.polyhType[oldP])
		row := make([]geoid.Index, len(s.facetAdjacent[oldP]))
		for i, adj := range s.facetAdjacent[oldP] {
			if adj.IsSet() {
				adj = inverse[adj]
			}
			row[i] = adj
		}
		newAdjacent = append(newAdjacent, row)
		if s.polyhType[oldP] == General {
			newGenFacets[geoid.Index(newIdx)] = s.genFacets[oldP]
		}
	}
	s.polyhVerts = newVerts
	s.polyhPtr = newPtr
	s.polyhType = newType
	s.facetAdjacent = newAdjacent
	s.genFacets = newGenFacets
	if err := s.polyhAttrs.PermuteRows(sigma); err != nil {
		return err
	}
	s.maintainDerivedSolid()
	return nil
}

// EnableFacets materializes the derived facet table. Idempotent.
func (s *SolidMesh) EnableFacets() {
	if s.facetsEnabled {
		return
	}
	s.facetsEnabled = true
	s.rebuildFacetTable()
}

// DisableFacets tears down the derived facet table and its attributes.
func (s *SolidMesh) DisableFacets() {
	s.facetsEnabled = false
	s.facetKeys = nil
	s.facetIndex = nil
	s.facetAttrs = nil
	s.polyhedronFacet = nil
}

// EnableEdges materializes the derived edge table. Idempotent.
func (s *SolidMesh) EnableEdges() {
	if s.edgesEnabled {
		return
	}
	s.edgesEnabled = true
	s.rebuildEdgeTable()
}

// DisableEdges tears down the derived edge table and its attributes.
func (s *SolidMesh) DisableEdges() {
	s.edgesEnabled = false
	s.edges = nil
	s.edgeIndex = nil
	s.edgeAttrs = nil
}

func (s *SolidMesh) maintainDerivedSolid() {
	s.aroundVertexHint = make([]geoid.Index, s.NbVertices())
	for i := range s.aroundVertexHint {
		s.aroundVertexHint[i] = geoid.NoIndex
	}
	for p := geoid.Index(0); p < s.NbPolyhedra(); p++ {
		for _, v := range s.PolyhedronVertices(p) {
			if !s.aroundVertexHint[v].IsSet() {
				s.aroundVertexHint[v] = p
			}
		}
	}
	if s.facetsEnabled {
		s.rebuildFacetTable()
	}
	if s.edgesEnabled {
		s.rebuildEdgeTable()
	}
}

func (s *SolidMesh) rebuildFacetTable() {
	s.facetIndex = make(map[string]geoid.Index)
	s.facetKeys = nil
	s.polyhedronFacet = make([][]geoid.Index, s.NbPolyhedra())
	for p := geoid.Index(0); p < s.NbPolyhedra(); p++ {
		n := s.NbPolyhedronFacets(p)
		s.polyhedronFacet[p] = make([]geoid.Index, n)
		for f := geoid.Index(0); f < n; f++ {
			verts := s.PolyhedronFacetVertices(PolyhedronFacetRef{p, f})
			key := facetKey(verts)
			id, ok := s.facetIndex[key]
			if !ok {
				id = geoid.Index(len(s.facetKeys))
				s.facetKeys = append(s.facetKeys, key)
				s.facetIndex[key] = id
			}
			s.polyhedronFacet[p][f] = id
		}
	}
	s.facetAttrs = attribute.NewManager(geoid.Index(len(s.facetKeys)))
}

func (s *SolidMesh) rebuildEdgeTable() {
	s.edgeIndex = make(map[EdgeVertices]geoid.Index)
	s.edges = nil
	for p := geoid.Index(0); p < s.NbPolyhedra(); p++ {
		for _, e := range s.localEdges(p) {
			if _, ok := s.edgeIndex[e]; !ok {
				id := geoid.Index(len(s.edges))
				s.edges = append(s.edges, e)
				s.edgeIndex[e] = id
			}
		}
	}
	s.edgeAttrs = attribute.NewManager(geoid.Index(len(s.edges)))
}
