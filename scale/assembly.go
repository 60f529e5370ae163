// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"strings"
)

// A Chromosome is one sequence of a reference assembly.
type Chromosome struct {
	Name   string
	Length int64 // in base pairs
}

// An Assembly is an ordered list of reference chromosomes.
type Assembly struct {
	Name        string
	Chromosomes []Chromosome
}

// GRCh37 is the human reference assembly GRCh37 (hg19). It is the
// default for NewGenomeScale.
var GRCh37 = Assembly{"GRCh37", []Chromosome{
	{"1", 249250621},
	{"2", 243199373},
	{"3", 198022430},
	{"4", 191154276},
	{"5", 180915260},
	{"6", 171115067},
	{"7", 159138663},
	{"8", 146364022},
	{"9", 141213431},
	{"10", 135534747},
	{"11", 135006516},
	{"12", 133851895},
	{"13", 115169878},
	{"14", 107349540},
	{"15", 102531392},
	{"16", 90354753},
	{"17", 81195210},
	{"18", 78077248},
	{"19", 59128983},
	{"20", 63025520},
	{"21", 48129895},
	{"22", 51304566},
	{"X", 155270560},
	{"Y", 59373566},
	{"M", 16571},
}}

// GRCh38 is the human reference assembly GRCh38 (hg38).
var GRCh38 = Assembly{"GRCh38", []Chromosome{
	{"1", 248956422},
	{"2", 242193529},
	{"3", 198295559},
	{"4", 190214555},
	{"5", 181538259},
	{"6", 170805979},
	{"7", 159345973},
	{"8", 145138636},
	{"9", 138394717},
	{"10", 133797422},
	{"11", 135086622},
	{"12", 133275309},
	{"13", 114364328},
	{"14", 107043718},
	{"15", 101991189},
	{"16", 90338345},
	{"17", 83257441},
	{"18", 80373285},
	{"19", 58617616},
	{"20", 64444167},
	{"21", 46709983},
	{"22", 50818468},
	{"X", 156040895},
	{"Y", 57227415},
	{"M", 16569},
}}

// Validate checks that a has at least one chromosome, that names are
// distinct and non-empty, and that lengths are positive.
func (a Assembly) Validate() error {
	if len(a.Chromosomes) == 0 {
		return fmt.Errorf("assembly %s: no chromosomes", a.Name)
	}
	seen := make(map[string]bool, len(a.Chromosomes))
	for _, c := range a.Chromosomes {
		switch {
		case c.Name == "":
			return fmt.Errorf("assembly %s: unnamed chromosome", a.Name)
		case seen[c.Name]:
			return fmt.Errorf("assembly %s: duplicate chromosome %s", a.Name, c.Name)
		case c.Length <= 0:
			return fmt.Errorf("assembly %s: chromosome %s has length %d", a.Name, c.Name, c.Length)
		}
		seen[c.Name] = true
	}
	return nil
}

// Length returns the total length of a in base pairs.
func (a Assembly) Length() int64 {
	var n int64
	for _, c := range a.Chromosomes {
		n += c.Length
	}
	return n
}

// NormalizeChromosome returns the canonical form of a chromosome name
// as used in the assemblies: a leading "chr" is removed and "MT" is
// written "M".
func NormalizeChromosome(name string) string {
	if len(name) > 3 && strings.EqualFold(name[:3], "chr") {
		name = name[3:]
	}
	switch strings.ToUpper(name) {
	case "X", "Y", "M":
		return strings.ToUpper(name)
	case "MT":
		return "M"
	}
	return name
}
