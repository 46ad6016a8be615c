// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/Geode-solutions/opengeode-go/internal/codec"
	"github.com/Geode-solutions/opengeode-go/internal/geoid"
	"github.com/Geode-solutions/opengeode-go/internal/mesh"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	outpath, _ := io.ArgToFilename(0, "out", ".og_brep", false)
	verbose := io.ArgToBool(1, true)

	if verbose {
		io.PfWhite("\nopengeode-go -- B-Rep modeling kernel\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"output file", "outpath", outpath,
			"show messages", "verbose", verbose,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// build a tiny triangulated square surface, then save it.
	m := mesh.NewSurfaceMesh[geoid.Point3D]()
	v0 := m.CreatePoint(geoid.Point3D{X: 0, Y: 0, Z: 0})
	v1 := m.CreatePoint(geoid.Point3D{X: 1, Y: 0, Z: 0})
	v2 := m.CreatePoint(geoid.Point3D{X: 1, Y: 1, Z: 0})
	v3 := m.CreatePoint(geoid.Point3D{X: 0, Y: 1, Z: 0})
	if _, err := m.CreatePolygon([]geoid.Index{v0, v1, v2}); err != nil {
		chk.Panic("cannot create first triangle:\n%v", err)
	}
	if _, err := m.CreatePolygon([]geoid.Index{v0, v2, v3}); err != nil {
		chk.Panic("cannot create second triangle:\n%v", err)
	}
	m.ComputePolygonAdjacencies()

	if err := codec.SaveToFile(outpath, func(w goio.Writer) error {
		return codec.EncodeSurfaceMesh(w, m, codec.FormatGob)
	}); err != nil {
		chk.Panic("cannot save %q:\n%v", outpath, err)
	}

	if verbose {
		io.Pf("saved surface mesh with %d polygons to %q\n", m.NbPolygons(), outpath)
	}
}
