package mesh

import (
	"github.com/Geode-solutions/opengeode-go/internal/attribute"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// CreatePolygon appends a polygon over vertices (arity >= 3); adjacency
// slots default to on-border. Fails with ErrInvalidArity if len(vertices)<3
// and with ErrIndexOutOfRange if any vertex id is out of range.
func (s *SurfaceMesh[C]) CreatePolygon(vertices []geoid.Index) (geoid.Index, error) {
	if len(vertices) < 3 {
		return 0, ErrInvalidArity
	}
	for _, v := range vertices {
		if v >= s.NbVertices() {
			return 0, ErrIndexOutOfRange
		}
	}
	p := s.NbPolygons()
	s.polyVerts = append(s.polyVerts, vertices...)
	s.polyPtr = append(s.polyPtr, geoid.Index(len(s.polyVerts)))
	for range vertices {
		s.adjacent = append(s.adjacent, geoid.NoIndex)
	}
	s.polyAttrs.Resize(p + 1)
	s.maintainDerived()
	return p, nil
}

// SetPolygonVertex rewrites the vertex referenced at local slot (p,i).
func (s *SurfaceMesh[C]) SetPolygonVertex(ref PolygonVertexRef, v geoid.Index) error {
	idx, err := s.slot(ref)
	if err != nil {
		return err
	}
	if v >= s.NbVertices() {
		return ErrIndexOutOfRange
	}
	s.polyVerts[idx] = v
	s.maintainDerived()
	return nil
}

// SetPolygonAdjacent pairs edge (p,i) with polygon q across it.
func (s *SurfaceMesh[C]) SetPolygonAdjacent(ref PolygonEdgeRef, q geoid.Index) error {
	idx, err := s.slot(PolygonVertexRef(ref))
	if err != nil {
		return err
	}
	s.adjacent[idx] = q
	return nil
}

// UnsetPolygonAdjacent marks edge (p,i) as on border.
func (s *SurfaceMesh[C]) UnsetPolygonAdjacent(ref PolygonEdgeRef) error {
	return s.SetPolygonAdjacent(ref, geoid.NoIndex)
}

// ComputePolygonAdjacencies pairs up, for every unordered vertex-pair edge,
// the two polygon edges referencing it; edges with 3+ incident polygon
// edges are left pairwise unpaired (non-manifold edges remain on border).
// Deterministic: identical input yields identical adjacencies.
func (s *SurfaceMesh[C]) ComputePolygonAdjacencies() {
	s.computeAdjacenciesOver(allPolygons(s.NbPolygons()))
}

// ComputePolygonAdjacenciesSubset restricts ComputePolygonAdjacencies to a
// subset of polygon ids.
func (s *SurfaceMesh[C]) ComputePolygonAdjacenciesSubset(subset []geoid.Index) {
	s.computeAdjacenciesOver(subset)
}

func allPolygons(n geoid.Index) []geoid.Index {
	out := make([]geoid.Index, n)
	for i := range out {
		out[i] = geoid.Index(i)
	}
	return out
}

func (s *SurfaceMesh[C]) computeAdjacenciesOver(subset []geoid.Index) {
	type occurrence struct {
		polygon, local geoid.Index
	}
	buckets := make(map[EdgeVertices][]occurrence)
	for _, p := range subset {
		n := s.NbPolygonVertices(p)
		for i := geoid.Index(0); i < n; i++ {
			ref := PolygonEdgeRef{Polygon: p, Local: i}
			v0, v1 := s.edgeEndpoints(ref)
			key := canonicalEdge(v0, v1)
			buckets[key] = append(buckets[key], occurrence{p, i})
		}
	}
	for _, occs := range buckets {
		if len(occs) != 2 {
			for _, o := range occs {
				idx, _ := s.slot(PolygonVertexRef{o.polygon, o.local})
				s.adjacent[idx] = geoid.NoIndex
			}
			continue
		}
		idx0, _ := s.slot(PolygonVertexRef{occs[0].polygon, occs[0].local})
		idx1, _ := s.slot(PolygonVertexRef{occs[1].polygon, occs[1].local})
		s.adjacent[idx0] = occs[1].polygon
		s.adjacent[idx1] = occs[0].polygon
	}
}

// DeletePolygons removes the marked polygons and compacts the polygon
// attribute manager and derived tables in lockstep.
func (s *SurfaceMesh[C]) DeletePolygons(mask []bool) {
	newPolyVerts := s.polyVerts[:0:0]
	newAdjacent := s.adjacent[:0:0]
	newPtr := []geoid.Index{0}

	// old polygon id -> new polygon id, to remap adjacency targets.
	in2out := make([]geoid.Index, s.NbPolygons())
	var kept geoid.Index
	for p := geoid.Index(0); p < s.NbPolygons(); p++ {
		if int(p) < len(mask) && mask[p] {
			in2out[p] = geoid.NoIndex
			continue
		}
		in2out[p] = kept
		kept++
	}
	for p := geoid.Index(0); p < s.NbPolygons(); p++ {
		if int(p) < len(mask) && mask[p] {
			continue
		}
		lo, hi := s.polyPtr[p], s.polyPtr[p+1]
		newPolyVerts = append(newPolyVerts, s.polyVerts[lo:hi]...)
		for k := lo; k < hi; k++ {
			adj := s.adjacent[k]
			if adj.IsSet() {
				adj = in2out[adj]
			}
			newAdjacent = append(newAdjacent, adj)
		}
		newPtr = append(newPtr, geoid.Index(len(newPolyVerts)))
	}
	s.polyVerts = newPolyVerts
	s.adjacent = newAdjacent
	s.polyPtr = newPtr
	s.polyAttrs.DeleteRows(mask)
	s.maintainDerived()
}

// PermutePolygons reorders polygons by σ: new[i] = old[σ(i)].
func (s *SurfaceMesh[C]) PermutePolygons(sigma []geoid.Index) error {
	n := s.NbPolygons()
	inverse := make([]geoid.Index, n)
	for newIdx, oldIdx := range sigma {
		inverse[oldIdx] = geoid.Index(newIdx)
	}
	newPolyVerts := make([]geoid.Index, 0, len(s.polyVerts))
	newAdjacent := make([]geoid.Index, 0, len(s.adjacent))
	newPtr := []geoid.Index{0}
	for _, oldP := range sigma {
		lo, hi := s.polyPtr[oldP], s.polyPtr[oldP+1]
		newPolyVerts = append(newPolyVerts, s.polyVerts[lo:hi]...)
		for k := lo; k < hi; k++ {
			adj := s.adjacent[k]
			if adj.IsSet() {
				adj = inverse[adj]
			}
			newAdjacent = append(newAdjacent, adj)
		}
		newPtr = append(newPtr, geoid.Index(len(newPolyVerts)))
	}
	s.polyVerts = newPolyVerts
	s.adjacent = newAdjacent
	s.polyPtr = newPtr
	if err := s.polyAttrs.PermuteRows(sigma); err != nil {
		return err
	}
	s.maintainDerived()
	return nil
}

// DeleteVertices deletes the marked vertices, removing every incident
// polygon, then compacts.
func (s *SurfaceMesh[C]) DeleteVertices(mask []bool) {
	deletedPolys := make([]bool, s.NbPolygons())
	for p := geoid.Index(0); p < s.NbPolygons(); p++ {
		for _, v := range s.PolygonVertices(p) {
			if int(v) < len(mask) && mask[v] {
				deletedPolys[p] = true
				break
			}
		}
	}
	s.DeletePolygons(deletedPolys)

	in2out := s.deleteVertices(mask)
	for i, v := range s.polyVerts {
		s.polyVerts[i] = in2out[v]
	}
	s.maintainDerived()
}

// DeleteIsolatedVertices removes every vertex referenced by no polygon.
func (s *SurfaceMesh[C]) DeleteIsolatedVertices() {
	referenced := make([]bool, s.NbVertices())
	for _, v := range s.polyVerts {
		referenced[v] = true
	}
	mask := make([]bool, s.NbVertices())
	for v := range mask {
		mask[v] = !referenced[v]
	}
	in2out := s.deleteVertices(mask)
	for i, v := range s.polyVerts {
		s.polyVerts[i] = in2out[v]
	}
	s.maintainDerived()
}

// DeleteIsolatedEdges removes every derived edge referenced by no polygon
// edge; a no-op when edges are disabled (there is nothing to prune).
func (s *SurfaceMesh[C]) DeleteIsolatedEdges() {
	if !s.edgesEnabled {
		return
	}
	s.rebuildEdgeTables()
}

// ReplaceVertex rewrites every incident polygon's reference from old to
// new; old becomes isolated.
func (s *SurfaceMesh[C]) ReplaceVertex(old, newV geoid.Index) {
	for i, v := range s.polyVerts {
		if v == old {
			s.polyVerts[i] = newV
		}
	}
	s.maintainDerived()
}

// AssociatePolygonVertexToVertex rewrites the polygon reference at (p,i)
// to v, exactly like SetPolygonVertex; SurfaceMesh keeps no separate
// per-vertex polygon hint to rebind.
func (s *SurfaceMesh[C]) AssociatePolygonVertexToVertex(ref PolygonVertexRef, v geoid.Index) error {
	return s.SetPolygonVertex(ref, v)
}

// EnableEdges materializes the derived edge table and polygons-around-
// vertex index. Idempotent.
func (s *SurfaceMesh[C]) EnableEdges() {
	if s.edgesEnabled {
		return
	}
	s.edgesEnabled = true
	s.rebuildEdgeTables()
}

// DisableEdges tears down the derived edge table, its attribute manager,
// and the polygons-around-vertex index.
func (s *SurfaceMesh[C]) DisableEdges() {
	s.edgesEnabled = false
	s.edges = nil
	s.edgeIndex = nil
	s.edgeAttrs = nil
	s.polygonEdge = nil
	s.aroundVertex = nil
}

func (s *SurfaceMesh[C]) maintainDerived() {
	if s.edgesEnabled {
		s.rebuildEdgeTables()
	}
}

func (s *SurfaceMesh[C]) rebuildEdgeTables() {
	s.edgeIndex = make(map[EdgeVertices]geoid.Index)
	s.edges = nil
	s.polygonEdge = make([]geoid.Index, len(s.polyVerts))
	s.aroundVertex = make([][]PolygonVertexRef, s.NbVertices())

	for p := geoid.Index(0); p < s.NbPolygons(); p++ {
		n := s.NbPolygonVertices(p)
		for i := geoid.Index(0); i < n; i++ {
			v := s.polyVerts[s.polyPtr[p]+i]
			s.aroundVertex[v] = append(s.aroundVertex[v], PolygonVertexRef{Polygon: p, Local: i})

			ref := PolygonEdgeRef{Polygon: p, Local: i}
			v0, v1 := s.edgeEndpoints(ref)
			key := canonicalEdge(v0, v1)
			id, ok := s.edgeIndex[key]
			if !ok {
				id = geoid.Index(len(s.edges))
				s.edges = append(s.edges, key)
				s.edgeIndex[key] = id
			}
			slotIdx := s.polyPtr[p] + i
			s.polygonEdge[slotIdx] = id
		}
	}
	s.edgeAttrs = attribute.NewManager(geoid.Index(len(s.edges)))
}
