// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vdpreplay replays a script of interactions against a view
// and prints what its scales look like along the way.
//
// Each script line is one command, split into words with shell
// quoting rules. Blank lines and lines starting with # are ignored.
// The commands are
//
//	scale genome|grch37|grch38 ID NAME
//	scale categorical|continuous ID NAME COLUMN
//	scale binary ID NAME [FALSE-LABEL TRUE-LABEL]
//	push TYPE SUBTYPE ARGS...
//	undo
//	redo
//	param NAME
//	domain ID
//	ratios ID
//	map ID KEY [VALUE]
//	human ID KEY VALUE
//
// For example,
//
//	scale genome g Genome
//	push filter hide g Y M
//	ratios g
//	undo
//
// Categorical and continuous scales are built from the columns of the
// tab-separated dataset given by -data.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/vdplots/go-vdp/data"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("vdpreplay: ")
	log.SetFlags(0)

	var (
		flagData  = flag.String("data", "", "read the dataset from TSV `file`")
		flagOut   = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable = flag.Bool("table", false, "print the dataset before replaying")
		flagSVG   = flag.String("svg", "", "plot chromosome ratios of the genome scales to SVG `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [script]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var c *data.Container
	if *flagData != "" {
		f, err := os.Open(*flagData)
		if err != nil {
			log.Fatal(err)
		}
		c, err = data.ReadTSV(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", *flagData, err)
		}
	}

	var script io.Reader = os.Stdin
	if flag.NArg() == 1 && flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		script = f
	}

	out := os.Stdout
	if *flagOut != "" {
		var err error
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}

	if *flagTable && c != nil {
		table.Fprint(out, c.Table())
	}

	s := newSession(out, c)
	if err := s.run(script); err != nil {
		log.Fatal(err)
	}

	if *flagSVG != "" {
		if len(s.genomes) == 0 {
			log.Fatal("-svg: script created no genome scales")
		}
		f, err := os.Create(*flagSVG)
		if err != nil {
			log.Fatal(err)
		}
		names := make([]string, len(s.genomes))
		for i, g := range s.genomes {
			names[i] = g.ID()
		}
		p := plotRatios(s.genomes)
		p.Add(gg.Title(strings.Join(names, " ")))
		if err := p.WriteSVG(f, 600, 350); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "%s\n", s.status())
	}
}
