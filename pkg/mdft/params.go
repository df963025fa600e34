// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package mdft implements the connectivity with Molecular-DFT: the "pars.in"
// parameter file that describes a fragment's interaction sites (point charge
// plus Lennard-Jones sigma/epsilon per atom).
package mdft

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cge-lab/fdeta/pkg/element"
)

// Site is one atom row of a parameter file.
type Site struct {
	// ID is the 1-based unique-site id; atoms with identical interaction
	// parameters share an id.
	ID      int
	Charge  float64
	Sigma   float64
	Epsilon float64
	Coord   [3]float64 // Angstrom
	Element string
	Surname string
}

type Params struct {
	Comment string
	// NUnique is the number of distinct interaction-parameter sets.
	NUnique int
	Sites   []Site
}

// CheckLengths verifies that parallel arrays have a common length.
func CheckLengths(lengths ...int) error {
	if len(lengths) < 2 {
		return fmt.Errorf("at least two arrays need to be given")
	}
	for i, n := range lengths[1:] {
		if n != lengths[0] {
			return fmt.Errorf("array in position %d has different length", i+1)
		}
	}
	return nil
}

// NewParams assembles a Params from parallel arrays, assigning unique-site
// ids along the way.
func NewParams(
	comment string,
	elements, surnames []string,
	coords [][3]float64,
	charges, sigmas, epsilons []float64,
) (*Params, error) {
	if err := CheckLengths(len(elements), len(surnames), len(coords),
		len(charges), len(sigmas), len(epsilons)); err != nil {
		return nil, err
	}
	params := &Params{
		Comment: comment,
		Sites:   make([]Site, len(elements)),
	}
	for i := range params.Sites {
		params.Sites[i] = Site{
			Charge:  charges[i],
			Sigma:   sigmas[i],
			Epsilon: epsilons[i],
			Coord:   coords[i],
			Element: element.Normalize(elements[i]),
			Surname: surnames[i],
		}
	}
	params.NUnique = AssignSites(params.Sites)
	return params, nil
}

// ReadParams parses a parameter file.  The layout is: comment line, a
// "NATOMS NUNIQUES" line, a column-header line, then one 10-field row per
// atom.
func ReadParams(reader io.Reader) (*Params, error) {
	var params Params
	scanner := bufio.NewScanner(reader)
	lineno := 0
	declared := -1
	for scanner.Scan() {
		line := scanner.Text()
		lineno++
		switch {
		case lineno == 1:
			params.Comment = strings.TrimRight(line, "\n")
		case lineno == 2:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, fmt.Errorf("line 2: wrong format, expected 2 integers")
			}
			var err error
			declared, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line 2: atom count: %w", err)
			}
			params.NUnique, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line 2: unique count: %w", err)
			}
		case lineno == 3:
			// column header
		default:
			if strings.TrimSpace(line) == "" {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 10 {
				return nil, fmt.Errorf("line %d: wrong number of fields, expected 10, got %d",
					lineno, len(fields))
			}
			var site Site
			var err error
			site.ID, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: site id: %w", lineno, err)
			}
			floatDst := []*float64{&site.Charge, &site.Sigma, &site.Epsilon,
				&site.Coord[0], &site.Coord[1], &site.Coord[2]}
			for i, dst := range floatDst {
				*dst, err = strconv.ParseFloat(fields[1+i], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: field %d: %w", lineno, 2+i, err)
				}
			}
			// fields[7] is the atomic number; redundant with the symbol.
			site.Element = element.Normalize(fields[8])
			site.Surname = fields[9]
			params.Sites = append(params.Sites, site)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if declared < 0 {
		return nil, fmt.Errorf("line 2: missing \"NATOMS NUNIQUES\" line")
	}
	if declared != len(params.Sites) {
		return nil, fmt.Errorf("number of atoms and lines don't match: declared %d, have %d",
			declared, len(params.Sites))
	}
	return &params, nil
}

// ReadParamsFile parses the named parameter file.
func ReadParamsFile(filename string) (*Params, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	params, err := ReadParams(file)
	if err != nil {
		return nil, &fs.PathError{
			Op:   "parse parameter file",
			Path: filename,
			Err:  err,
		}
	}
	return params, nil
}

// Write renders the parameter file with the fixed-width layout that MDFT
// expects.
func (p *Params) Write(writer io.Writer) error {
	w := bufio.NewWriter(writer)
	fmt.Fprintln(w, p.Comment)
	fmt.Fprintf(w, "%d  %d\n", len(p.Sites), p.NUnique)
	fmt.Fprintf(w, "%-3s %s %s %-10s %s %s %s %s %s %s\n",
		"#",
		center("charge", 10), center("sigma", 10), "epsilon",
		center("x", 13), center("y", 13), center("z", 13),
		center("Z", 8), center("Atom name", 10), center("Surname", 8))
	for _, site := range p.Sites {
		z, err := element.ToAtomicNumber(site.Element)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-3s%10.6f%10.6f%10.6f%15.10f%15.10f%15.10f%5s%s%s\n",
			strconv.Itoa(site.ID),
			site.Charge, site.Sigma, site.Epsilon,
			site.Coord[0], site.Coord[1], site.Coord[2],
			strconv.Itoa(z),
			center(site.Element, 19),
			site.Surname)
	}
	return w.Flush()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
