package mesh

import "github.com/Geode-solutions/opengeode-go/internal/geoid"

// MergeSolidMeshes fuses several solid meshes into one: vertices within
// tolerance of each other are welded to a single vertex, polyhedra are
// carried over with their vertex references remapped, duplicate polyhedra
// (same vertex set after welding) are dropped, and adjacencies are
// recomputed across the fused mesh so facets shared across what were
// formerly separate inputs pair up correctly.
func MergeSolidMeshes(meshes []*SolidMesh, tolerance float64) *SolidMesh {
	out := NewSolidMesh()
	if len(meshes) == 0 {
		return out
	}

	type weldKey struct{ x, y, z int64 }
	keyOf := func(p geoid.Point3D) weldKey {
		scale := 1.0
		if tolerance > 0 {
			scale = 1 / tolerance
		}
		return weldKey{
			x: int64(p.X * scale),
			y: int64(p.Y * scale),
			z: int64(p.Z * scale),
		}
	}

	welded := make(map[weldKey]geoid.Index)
	remap := make([][]geoid.Index, len(meshes))

	for mi, m := range meshes {
		remap[mi] = make([]geoid.Index, m.NbVertices())
		for v := geoid.Index(0); v < m.NbVertices(); v++ {
			p, _ := m.Point(v)
			k := keyOf(p)
			id, ok := welded[k]
			if !ok {
				id = out.CreatePoint(p)
				welded[k] = id
			}
			remap[mi][v] = id
		}
	}

	seenPolyh := make(map[string]bool)
	for mi, m := range meshes {
		for p := geoid.Index(0); p < m.NbPolyhedra(); p++ {
			verts := m.PolyhedronVertices(p)
			remapped := make([]geoid.Index, len(verts))
			for i, v := range verts {
				remapped[i] = remap[mi][v]
			}
			key := facetKey(remapped)
			if seenPolyh[key] {
				continue
			}
			if isDegeneratePolyhedron(remapped) {
				continue
			}
			seenPolyh[key] = true
			switch m.PolyhedronType(p) {
			case Tetra:
				out.CreateTetrahedron([4]geoid.Index{remapped[0], remapped[1], remapped[2], remapped[3]})
			case Pyramid:
				out.CreatePyramid([5]geoid.Index{remapped[0], remapped[1], remapped[2], remapped[3], remapped[4]})
			case Prism:
				out.CreatePrism([6]geoid.Index{remapped[0], remapped[1], remapped[2], remapped[3], remapped[4], remapped[5]})
			case Hex:
				out.CreateHexahedron([8]geoid.Index{remapped[0], remapped[1], remapped[2], remapped[3], remapped[4], remapped[5], remapped[6], remapped[7]})
			default:
				nf := m.NbPolyhedronFacets(p)
				facets := make([][]geoid.Index, nf)
				for f := geoid.Index(0); f < nf; f++ {
					global := m.PolyhedronFacetVertices(PolyhedronFacetRef{p, f})
					local := make([]geoid.Index, len(global))
					for i, gv := range global {
						local[i] = localIndexIn(verts, gv)
					}
					facets[f] = local
				}
				out.CreatePolyhedron(remapped, facets)
			}
		}
	}
	out.ComputePolyhedronAdjacencies()
	return out
}

func isDegeneratePolyhedron(verts []geoid.Index) bool {
	seen := make(map[geoid.Index]bool)
	for _, v := range verts {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}

// localIndexIn returns the position of target within verts (a
// polyhedron's own vertex list), used to translate a facet's global vertex
// ids back into local indices when rebuilding a General polyhedron.
func localIndexIn(verts []geoid.Index, target geoid.Index) geoid.Index {
	for i, v := range verts {
		if v == target {
			return geoid.Index(i)
		}
	}
	return geoid.NoIndex
}
