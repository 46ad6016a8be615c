// Package codec serializes meshes and relationship stores to the native
// on-disk extensions, following fem/fileio.go's pattern: a gob/json
// Encoder/Decoder pair selected by a format tag, writing to/reading from a
// bytes.Buffer before touching the filesystem.
package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
	"github.com/Geode-solutions/opengeode-go/internal/mesh"
	"github.com/Geode-solutions/opengeode-go/internal/relationship"
)

// Format selects the wire encoding.
type Format string

// Supported formats.
const (
	FormatGob  Format = "gob"
	FormatJSON Format = "json"
)

// ModelKind tags which native extension NativeExtension returns.
type ModelKind int

// Model kinds.
const (
	KindBRep ModelKind = iota
	KindSection
)

// NativeExtension returns the on-disk extension for a model kind: BReps
// (3D) save as "og_brep", Sections (2D) as "og_section".
func NativeExtension(kind ModelKind) string {
	if kind == KindSection {
		return "og_section"
	}
	return "og_brep"
}

// Encoder is satisfied by gob.Encoder and json.Encoder.
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder is satisfied by gob.Decoder and json.Decoder.
type Decoder interface {
	Decode(e interface{}) error
}

func getEncoder(w goio.Writer, format Format) Encoder {
	if format == FormatJSON {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

func getDecoder(r goio.Reader, format Format) Decoder {
	if format == FormatJSON {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// surfaceWire is the wire representation of a SurfaceMesh: plain slices,
// decoupled from the live CSR/derived-table layout so the encoding is
// stable across an internal refactor.
type surfaceWire struct {
	Points    []geoid.Point3D
	PolyVerts []geoid.Index
	PolyPtr   []geoid.Index
	Adjacent  []geoid.Index
}

// EncodeSurfaceMesh writes m to w in the given format.
func EncodeSurfaceMesh(w goio.Writer, m *mesh.SurfaceMesh[geoid.Point3D], format Format) error {
	wire := surfaceWireOf(m)
	enc := getEncoder(w, format)
	if err := enc.Encode(&wire); err != nil {
		return chk.Err("codec: cannot encode surface mesh\n%v", err)
	}
	return nil
}

func surfaceWireOf(m *mesh.SurfaceMesh[geoid.Point3D]) surfaceWire {
	var wire surfaceWire
	for v := geoid.Index(0); v < m.NbVertices(); v++ {
		p, _ := m.Point(v)
		wire.Points = append(wire.Points, p)
	}
	for p := geoid.Index(0); p < m.NbPolygons(); p++ {
		verts := m.PolygonVertices(p)
		wire.PolyPtr = append(wire.PolyPtr, geoid.Index(len(wire.PolyVerts)))
		wire.PolyVerts = append(wire.PolyVerts, verts...)
		for i := geoid.Index(0); i < geoid.Index(len(verts)); i++ {
			wire.Adjacent = append(wire.Adjacent, m.PolygonAdjacent(mesh.PolygonEdgeRef{Polygon: p, Local: i}))
		}
	}
	wire.PolyPtr = append(wire.PolyPtr, geoid.Index(len(wire.PolyVerts)))
	return wire
}

// DecodeSurfaceMesh reads a SurfaceMesh previously written by
// EncodeSurfaceMesh.
func DecodeSurfaceMesh(r goio.Reader, format Format) (*mesh.SurfaceMesh[geoid.Point3D], error) {
	var wire surfaceWire
	dec := getDecoder(r, format)
	if err := dec.Decode(&wire); err != nil {
		return nil, chk.Err("codec: cannot decode surface mesh\n%v", err)
	}
	m := mesh.NewSurfaceMesh[geoid.Point3D]()
	for _, p := range wire.Points {
		m.CreatePoint(p)
	}
	for i := 0; i+1 < len(wire.PolyPtr); i++ {
		lo, hi := wire.PolyPtr[i], wire.PolyPtr[i+1]
		if _, err := m.CreatePolygon(wire.PolyVerts[lo:hi]); err != nil {
			return nil, chk.Err("codec: cannot rebuild polygon %d\n%v", i, err)
		}
	}
	for i, adj := range wire.Adjacent {
		p, local := polygonSlotFor(wire.PolyPtr, geoid.Index(i))
		if adj.IsSet() {
			_ = m.SetPolygonAdjacent(mesh.PolygonEdgeRef{Polygon: p, Local: local}, adj)
		}
	}
	return m, nil
}

func polygonSlotFor(ptr []geoid.Index, flat geoid.Index) (geoid.Index, geoid.Index) {
	for p := 0; p+1 < len(ptr); p++ {
		if flat >= ptr[p] && flat < ptr[p+1] {
			return geoid.Index(p), flat - ptr[p]
		}
	}
	return 0, 0
}

// curveWire is the wire representation of an EdgedCurve.
type curveWire struct {
	Points []geoid.Point3D
	Edges  []mesh.EdgeVertices
}

// EncodeEdgedCurve writes c to w in the given format.
func EncodeEdgedCurve(w goio.Writer, c *mesh.EdgedCurve[geoid.Point3D], format Format) error {
	var wire curveWire
	for v := geoid.Index(0); v < c.NbVertices(); v++ {
		p, _ := c.Point(v)
		wire.Points = append(wire.Points, p)
	}
	for e := geoid.Index(0); e < c.NbEdges(); e++ {
		v0, _ := c.EdgeVertex(e, 0)
		v1, _ := c.EdgeVertex(e, 1)
		wire.Edges = append(wire.Edges, mesh.EdgeVertices{V0: v0, V1: v1})
	}
	enc := getEncoder(w, format)
	if err := enc.Encode(&wire); err != nil {
		return chk.Err("codec: cannot encode curve\n%v", err)
	}
	return nil
}

// DecodeEdgedCurve reads an EdgedCurve previously written by
// EncodeEdgedCurve.
func DecodeEdgedCurve(r goio.Reader, format Format) (*mesh.EdgedCurve[geoid.Point3D], error) {
	var wire curveWire
	dec := getDecoder(r, format)
	if err := dec.Decode(&wire); err != nil {
		return nil, chk.Err("codec: cannot decode curve\n%v", err)
	}
	c := mesh.NewEdgedCurve[geoid.Point3D]()
	for _, p := range wire.Points {
		c.CreatePoint(p)
	}
	for _, e := range wire.Edges {
		c.CreateEdge(e.V0, e.V1)
	}
	return c, nil
}

// solidWire is the wire representation of a SolidMesh.
type solidWire struct {
	Points     []geoid.Point3D
	PolyhType  []mesh.PolyhedronType
	PolyhVerts [][]geoid.Index
	GenFacets  map[geoid.Index][][]geoid.Index
}

// EncodeSolidMesh writes m to w in the given format.
func EncodeSolidMesh(w goio.Writer, m *mesh.SolidMesh, format Format) error {
	var wire solidWire
	wire.GenFacets = make(map[geoid.Index][][]geoid.Index)
	for v := geoid.Index(0); v < m.NbVertices(); v++ {
		p, _ := m.Point(v)
		wire.Points = append(wire.Points, p)
	}
	for p := geoid.Index(0); p < m.NbPolyhedra(); p++ {
		t := m.PolyhedronType(p)
		wire.PolyhType = append(wire.PolyhType, t)
		verts := m.PolyhedronVertices(p)
		wire.PolyhVerts = append(wire.PolyhVerts, verts)
		if t == mesh.General {
			nf := m.NbPolyhedronFacets(p)
			facets := make([][]geoid.Index, nf)
			for f := geoid.Index(0); f < nf; f++ {
				global := m.PolyhedronFacetVertices(mesh.PolyhedronFacetRef{Polyhedron: p, Facet: f})
				local := make([]geoid.Index, len(global))
				for i, gv := range global {
					for j, vv := range verts {
						if vv == gv {
							local[i] = geoid.Index(j)
							break
						}
					}
				}
				facets[f] = local
			}
			wire.GenFacets[p] = facets
		}
	}
	enc := getEncoder(w, format)
	if err := enc.Encode(&wire); err != nil {
		return chk.Err("codec: cannot encode solid mesh\n%v", err)
	}
	return nil
}

// DecodeSolidMesh reads a SolidMesh previously written by EncodeSolidMesh.
func DecodeSolidMesh(r goio.Reader, format Format) (*mesh.SolidMesh, error) {
	var wire solidWire
	dec := getDecoder(r, format)
	if err := dec.Decode(&wire); err != nil {
		return nil, chk.Err("codec: cannot decode solid mesh\n%v", err)
	}
	m := mesh.NewSolidMesh()
	for _, p := range wire.Points {
		m.CreatePoint(p)
	}
	for p, t := range wire.PolyhType {
		verts := wire.PolyhVerts[p]
		switch t {
		case mesh.Tetra:
			m.CreateTetrahedron([4]geoid.Index{verts[0], verts[1], verts[2], verts[3]})
		case mesh.Pyramid:
			m.CreatePyramid([5]geoid.Index{verts[0], verts[1], verts[2], verts[3], verts[4]})
		case mesh.Prism:
			m.CreatePrism([6]geoid.Index{verts[0], verts[1], verts[2], verts[3], verts[4], verts[5]})
		case mesh.Hex:
			m.CreateHexahedron([8]geoid.Index{verts[0], verts[1], verts[2], verts[3], verts[4], verts[5], verts[6], verts[7]})
		default:
			if _, err := m.CreatePolyhedron(verts, wire.GenFacets[geoid.Index(p)]); err != nil {
				return nil, chk.Err("codec: cannot rebuild polyhedron %d\n%v", p, err)
			}
		}
	}
	m.ComputePolyhedronAdjacencies()
	return m, nil
}

// relationWire is one encoded relation.
type relationWire struct {
	From string
	To   string
	Kind int
}

// EncodeRelationships writes every relation recorded for ids to w.
func EncodeRelationships(w goio.Writer, store *relationship.Store, ids []geoid.ComponentID, format Format) error {
	var wires []relationWire
	want := make(map[string]bool)
	for _, id := range ids {
		want[id.String()] = true
	}
	for _, rel := range store.AllRelations() {
		if !want[rel.From.String()] && !want[rel.To.String()] {
			continue
		}
		wires = append(wires, relationWire{From: rel.From.String(), To: rel.To.String(), Kind: int(rel.Kind)})
	}
	enc := getEncoder(w, format)
	if err := enc.Encode(&wires); err != nil {
		return chk.Err("codec: cannot encode relationships\n%v", err)
	}
	return nil
}

// DecodeRelationships reads relations previously written by
// EncodeRelationships and replays them into store (which must already have
// every referenced component added).
func DecodeRelationships(r goio.Reader, store *relationship.Store, format Format) error {
	var wires []relationWire
	dec := getDecoder(r, format)
	if err := dec.Decode(&wires); err != nil {
		return chk.Err("codec: cannot decode relationships\n%v", err)
	}
	for _, w := range wires {
		from, err := geoid.ParseComponentID(w.From)
		if err != nil {
			return err
		}
		to, err := geoid.ParseComponentID(w.To)
		if err != nil {
			return err
		}
		switch relationship.Kind(w.Kind) {
		case relationship.KindBoundary:
			err = store.AddBoundary(from, to)
		case relationship.KindInternal:
			err = store.AddInternal(from, to)
		case relationship.KindItem:
			err = store.AddItem(from, to)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveToFile runs encode into an in-memory buffer, then writes the buffer
// to a new file at path, matching
// fem/fileio.go's save_file buffering convention.
func SaveToFile(path string, encode func(w goio.Writer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// LoadFromFile reads path and decodes it via decode.
func LoadFromFile(path string, decode func(r goio.Reader) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return chk.Err("codec: cannot read %q\n%v", path, err)
	}
	return decode(bytes.NewReader(data))
}
