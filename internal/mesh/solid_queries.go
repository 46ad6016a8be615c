package mesh

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// PolyhedronFacetNormal returns facet (p,f)'s outward unit normal via
// Newell's method over its vertex cycle, or false if degenerate.
func (s *SolidMesh) PolyhedronFacetNormal(ref PolyhedronFacetRef) (geoid.Vector3D, bool) {
	verts := s.PolyhedronFacetVertices(ref)
	if len(verts) < 3 {
		return geoid.Vector3D{}, false
	}
	var n geoid.Vector3D
	for i := range verts {
		a, _ := s.Point(verts[i])
		b, _ := s.Point(verts[(i+1)%len(verts)])
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Normalize1(), n.Length() > geoid.GlobalEpsilon
}

// PolyhedronFacetArea returns facet (p,f)'s area, summing the Newell cross
// products of its fan triangulation about the first vertex.
func (s *SolidMesh) PolyhedronFacetArea(ref PolyhedronFacetRef) float64 {
	verts := s.PolyhedronFacetVertices(ref)
	if len(verts) < 3 {
		return 0
	}
	origin, _ := s.Point(verts[0])
	var sum geoid.Vector3D
	for i := 1; i+1 < len(verts); i++ {
		b, _ := s.Point(verts[i])
		c, _ := s.Point(verts[i+1])
		e1 := b.Sub(origin)
		e2 := c.Sub(origin)
		sum = sum.Add(e1.Cross(e2))
	}
	return 0.5 * sum.Length()
}

// PolyhedronVolume returns polyhedron p's volume via the signed-tetrahedra
// decomposition: the sum, over every facet, of the signed volume of the
// tetrahedron formed by that facet's fan triangulation and the origin.
// The facet orientations being consistently outward makes the sum
// origin-independent and positive.
func (s *SolidMesh) PolyhedronVolume(p geoid.Index) float64 {
	var vol float64
	origin := geoid.Point3D{}
	for f := geoid.Index(0); f < s.NbPolyhedronFacets(p); f++ {
		verts := s.PolyhedronFacetVertices(PolyhedronFacetRef{p, f})
		if len(verts) < 3 {
			continue
		}
		a, _ := s.Point(verts[0])
		for i := 1; i+1 < len(verts); i++ {
			b, _ := s.Point(verts[i])
			c, _ := s.Point(verts[i+1])
			vol += signedTetraVolume(origin, a, b, c)
		}
	}
	if vol < 0 {
		vol = -vol
	}
	return vol
}

func signedTetraVolume(o, a, b, c geoid.Point3D) float64 {
	ao := a.Sub(o)
	bo := b.Sub(o)
	co := c.Sub(o)
	return ao.Dot(bo.Cross(co)) / 6
}

// EdgeIncidentFacets returns the local facet slots of polyhedron p whose
// vertex cycle contains edge (v0,v1).
func (s *SolidMesh) EdgeIncidentFacets(p geoid.Index, v0, v1 geoid.Index) []geoid.Index {
	want := canonicalEdge(v0, v1)
	var out []geoid.Index
	for f := geoid.Index(0); f < s.NbPolyhedronFacets(p); f++ {
		verts := s.PolyhedronFacetVertices(PolyhedronFacetRef{p, f})
		for i := range verts {
			if canonicalEdge(verts[i], verts[(i+1)%len(verts)]) == want {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// OppositeEdgeVertices returns, for a tetrahedron p and one of its edges
// (v0,v1), the other two vertices forming the opposite edge.
func (s *SolidMesh) OppositeEdgeVertices(p geoid.Index, v0, v1 geoid.Index) (geoid.Index, geoid.Index, bool) {
	if s.PolyhedronType(p) != Tetra {
		return 0, 0, false
	}
	var others []geoid.Index
	for _, v := range s.PolyhedronVertices(p) {
		if v != v0 && v != v1 {
			others = append(others, v)
		}
	}
	if len(others) != 2 {
		return 0, 0, false
	}
	return others[0], others[1], true
}

// OppositeEdgeIncidentFacets returns the two facets of tetrahedron p
// incident to the edge opposite (v0,v1).
func (s *SolidMesh) OppositeEdgeIncidentFacets(p geoid.Index, v0, v1 geoid.Index) []geoid.Index {
	ov0, ov1, ok := s.OppositeEdgeVertices(p, v0, v1)
	if !ok {
		return nil
	}
	return s.EdgeIncidentFacets(p, ov0, ov1)
}

// PolyhedraAroundVertex returns every polyhedron incident to v, found by a
// breadth-first walk across facet adjacencies starting from the cached
// one-incident-polyhedron hint.
func (s *SolidMesh) PolyhedraAroundVertex(v geoid.Index) []geoid.Index {
	if int(v) >= len(s.aroundVertexHint) {
		return nil
	}
	seed := s.aroundVertexHint[v]
	if !seed.IsSet() {
		return nil
	}
	visited := map[geoid.Index]bool{seed: true}
	queue := []geoid.Index{seed}
	var out []geoid.Index
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		hasV := false
		for _, pv := range s.PolyhedronVertices(p) {
			if pv == v {
				hasV = true
				break
			}
		}
		if !hasV {
			continue
		}
		out = append(out, p)
		for _, q := range s.facetAdjacent[p] {
			if q.IsSet() && !visited[q] {
				visited[q] = true
				queue = append(queue, q)
			}
		}
	}
	return out
}

// PolyhedraAroundEdge returns every polyhedron incident to edge (v0,v1), in
// a connected one-ring order starting from the lowest-index polyhedron
// found. Cyclic for an interior edge, a single path for a border edge.
func (s *SolidMesh) PolyhedraAroundEdge(v0, v1 geoid.Index) []geoid.Index {
	candidates := s.PolyhedraAroundVertex(v0)
	var start geoid.Index = geoid.NoIndex
	for _, p := range candidates {
		if hasEdge(s.PolyhedronVertices(p), v0, v1) {
			if !start.IsSet() || p < start {
				start = p
			}
		}
	}
	if !start.IsSet() {
		return nil
	}
	visited := map[geoid.Index]bool{start: true}
	out := []geoid.Index{start}
	current := start
	for {
		next := geoid.NoIndex
		for _, f := range s.EdgeIncidentFacets(current, v0, v1) {
			q := s.PolyhedronAdjacentFacet(PolyhedronFacetRef{current, f})
			if q.IsSet() && !visited[q] {
				next = q
				break
			}
		}
		if !next.IsSet() {
			break
		}
		visited[next] = true
		out = append(out, next)
		current = next
		if current == start {
			break
		}
	}
	return out
}

func hasEdge(verts []geoid.Index, v0, v1 geoid.Index) bool {
	var has0, has1 bool
	for _, v := range verts {
		if v == v0 {
			has0 = true
		}
		if v == v1 {
			has1 = true
		}
	}
	return has0 && has1
}
