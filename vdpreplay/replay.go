// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/vdplots/go-vdp/data"
	"github.com/vdplots/go-vdp/history"
	"github.com/vdplots/go-vdp/scale"
	"github.com/vdplots/go-vdp/view"
)

// A session is the state of one replayed script.
type session struct {
	out  io.Writer
	data *data.Container
	view *view.View

	// genomes lists the genome scales in the order they were
	// created, for the ratio plot.
	genomes []*scale.GenomeScale

	// commands and failures count executed script lines.
	commands, failures int
}

func newSession(out io.Writer, c *data.Container) *session {
	return &session{out: out, data: c, view: view.New("replay", c)}
}

// run executes every line of script. A failing command is reported
// to the output and does not stop the script; run returns an error
// only if script cannot be read or a line cannot be tokenised.
func (s *session) run(script io.Reader) error {
	sc := bufio.NewScanner(script)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellquote.Split(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		s.commands++
		if err := s.exec(args); err != nil {
			s.failures++
			fmt.Fprintf(s.out, "line %d: %s: %v\n", lineno, args[0], err)
		}
	}
	return sc.Err()
}

func (s *session) exec(args []string) error {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "scale":
		return s.cmdScale(args)
	case "push":
		return s.cmdPush(args)
	case "undo":
		return s.view.Undo()
	case "redo":
		return s.view.Redo()
	case "param":
		return s.cmdParam(args)
	case "domain":
		return s.cmdDomain(args)
	case "ratios":
		return s.cmdRatios(args)
	case "map":
		return s.cmdMap(args)
	case "human":
		return s.cmdHuman(args)
	}
	return fmt.Errorf("unknown command")
}

func nargs(args []string, lo, hi int) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return fmt.Errorf("wrong number of arguments")
	}
	return nil
}

func (s *session) cmdScale(args []string) error {
	if err := nargs(args, 3, 5); err != nil {
		return err
	}
	kind, id, name, rest := args[0], args[1], args[2], args[3:]
	var sc scale.Scale
	col := ""
	switch kind {
	case "genome", "grch37", "grch38":
		a := scale.GRCh37
		if kind == "grch38" {
			a = scale.GRCh38
		}
		g, err := scale.NewGenomeScaleFor(id, name, a)
		if err != nil {
			return err
		}
		sc = g
	case "categorical", "continuous":
		if len(rest) != 1 {
			return fmt.Errorf("%s scale needs a data column", kind)
		}
		if s.data == nil {
			return fmt.Errorf("no data loaded")
		}
		col = rest[0]
		var err error
		if kind == "categorical" {
			sc, err = scale.NewCategoricalScaleFromData(id, name, s.data, col)
		} else {
			sc, err = scale.NewContinuousScaleFromData(id, name, s.data, col)
		}
		if err != nil {
			return err
		}
	case "binary":
		switch len(rest) {
		case 0:
			sc = scale.NewBinaryScale(id, name)
		case 2:
			b, err := scale.NewBinaryScaleLabels(id, name, rest[0], rest[1])
			if err != nil {
				return err
			}
			sc = b
		default:
			return fmt.Errorf("binary scale takes two labels or none")
		}
	default:
		return fmt.Errorf("unknown scale kind %q", kind)
	}
	if err := s.view.AddScale(sc, col); err != nil {
		return err
	}
	if g, ok := sc.(*scale.GenomeScale); ok {
		s.genomes = append(s.genomes, g)
	}
	return nil
}

// cmdPush parses "TYPE SUBTYPE ARGS..." into an event payload:
//
//	sort ascending|descending SCALE COLUMN
//	filter hide|show SCALE KEY...
//	select add|remove KEY...
//	navigate zoom SCALE LO HI
//
// Reset subtypes (and select clear) take no arguments.
func (s *session) cmdPush(args []string) error {
	if err := nargs(args, 2, -1); err != nil {
		return err
	}
	typ, sub, rest := history.Type(args[0]), history.Subtype(args[1]), args[2:]
	if !history.Valid(typ, sub) {
		return &history.InvalidEventError{Type: typ, Subtype: sub, Reason: "not in the event taxonomy"}
	}
	var payload interface{}
	switch {
	case history.IsReset(history.Kind{Type: typ, Subtype: sub}):
		if len(rest) != 0 {
			return fmt.Errorf("%s %s takes no arguments", typ, sub)
		}
	case typ == history.Sort:
		if len(rest) != 2 {
			return fmt.Errorf("usage: push sort %s SCALE COLUMN", sub)
		}
		payload = history.SortPayload{Scale: rest[0], By: rest[1]}
	case typ == history.Filter:
		if len(rest) < 1 {
			return fmt.Errorf("usage: push filter %s SCALE KEY...", sub)
		}
		payload = history.FilterPayload{Scale: rest[0], Keys: rest[1:]}
	case typ == history.Select:
		payload = history.SelectPayload{Keys: rest}
	case typ == history.Navigate:
		if len(rest) != 3 {
			return fmt.Errorf("usage: push navigate %s SCALE LO HI", sub)
		}
		lo, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return err
		}
		hi, err := strconv.ParseFloat(rest[2], 64)
		if err != nil {
			return err
		}
		payload = history.NavigatePayload{Scale: rest[0], Lo: lo, Hi: hi}
	}
	return s.view.Push(typ, sub, payload)
}

func (s *session) cmdParam(args []string) error {
	if err := nargs(args, 1, 1); err != nil {
		return err
	}
	v, err := s.view.Stack().Param(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s: %v\n", args[0], v)
	return nil
}

func (s *session) lookup(id string) (scale.Scale, error) {
	sc, ok := s.view.Scale(id)
	if !ok {
		return nil, fmt.Errorf("no scale %q", id)
	}
	return sc, nil
}

func (s *session) cmdDomain(args []string) error {
	if err := nargs(args, 1, 1); err != nil {
		return err
	}
	sc, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	switch sc := sc.(type) {
	case *scale.GenomeScale:
		ivs := sc.DomainsFiltered()
		for i, chrom := range sc.ChromosomesFiltered() {
			fmt.Fprintf(s.out, "%s\t%.0f\t%.0f\n", sc.ToHuman(chrom, nil), ivs[i].Lo, ivs[i].Hi)
		}
	case *scale.ContinuousScale:
		fmt.Fprintf(s.out, "%s\t%s\n", sc.ID(), sc.DomainFiltered())
	default:
		fmt.Fprintf(s.out, "%s\t%s\n", sc.ID(), strings.Join(sc.FilteredKeys(), " "))
	}
	return nil
}

func (s *session) cmdRatios(args []string) error {
	if err := nargs(args, 1, 1); err != nil {
		return err
	}
	sc, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	g, ok := sc.(*scale.GenomeScale)
	if !ok {
		return fmt.Errorf("%s is not a genome scale", args[0])
	}
	ratios, err := g.ChromosomeRatiosFiltered()
	if err != nil {
		return err
	}
	for i, chrom := range g.ChromosomesFiltered() {
		fmt.Fprintf(s.out, "%s\t%.6f\n", g.ToHuman(chrom, nil), ratios[i])
	}
	return nil
}

func (s *session) cmdMap(args []string) error {
	if err := nargs(args, 2, 3); err != nil {
		return err
	}
	sc, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	key, value := args[1], ""
	if len(args) == 3 {
		value = args[2]
	}
	var x float64
	switch sc := sc.(type) {
	case *scale.GenomeScale:
		pos, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad position %q", value)
		}
		if x, err = sc.Map(key, pos); err != nil {
			return err
		}
	case *scale.ContinuousScale:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad value %q", value)
		}
		x = sc.Map(v)
	case *scale.CategoricalScale:
		if x, err = sc.Map(key); err != nil {
			return err
		}
	case *scale.BinaryScale:
		v, err := sc.Domain(key)
		if err != nil {
			return err
		}
		if x, err = sc.Map(v); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot map on %s", sc.ID())
	}
	fmt.Fprintf(s.out, "%.6f\n", x)
	return nil
}

func (s *session) cmdHuman(args []string) error {
	if err := nargs(args, 3, 3); err != nil {
		return err
	}
	sc, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	var value interface{} = args[2]
	if x, err := strconv.ParseFloat(args[2], 64); err == nil {
		value = x
	} else if b, err := strconv.ParseBool(args[2]); err == nil {
		value = b
	}
	fmt.Fprintln(s.out, sc.ToHuman(args[1], value))
	return nil
}

// status summarises the session in one line.
func (s *session) status() string {
	st := s.view.Stack()
	return fmt.Sprintf("%d commands (%d failed), %d events, cursor at %d", s.commands, s.failures, st.Len(), st.Cursor())
}
