// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/vdplots/go-vdp/scale"
)

// ratioTable returns a table of the filtered chromosome ratios of
// each genome scale, with columns "scale", "index", "chromosome" and
// "ratio". Scales with an empty domain are skipped.
func ratioTable(genomes []*scale.GenomeScale) *table.Table {
	var (
		ids, chroms []string
		idxs        []int
		ratios      []float64
	)
	for _, g := range genomes {
		rs, err := g.ChromosomeRatiosFiltered()
		if err != nil {
			continue
		}
		for i, chrom := range g.ChromosomesFiltered() {
			ids = append(ids, g.ID())
			idxs = append(idxs, i)
			chroms = append(chroms, chrom)
			ratios = append(ratios, rs[i])
		}
	}
	return new(table.Builder).
		Add("scale", ids).
		Add("index", idxs).
		Add("chromosome", chroms).
		Add("ratio", ratios).
		Done()
}

// plotRatios plots each genome scale's chromosome ratios against
// chromosome index, one line per scale.
func plotRatios(genomes []*scale.GenomeScale) *gg.Plot {
	p := gg.NewPlot(ratioTable(genomes))
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerLines{X: "index", Y: "ratio", Color: "scale"})
	p.Add(gg.LayerPoints{X: "index", Y: "ratio", Color: "scale"})
	p.Add(gg.LayerTooltips{X: "index", Y: "ratio", Label: "chromosome"})
	return p
}
