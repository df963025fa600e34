// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package cube implements the Gaussian cube file format.
//
// http://paulbourke.net/dataformats/cube/
package cube

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/cge-lab/fdeta/pkg/grid"
	"github.com/cge-lab/fdeta/pkg/physconst"
)

type Atom struct {
	AtomicNumber int
	Charge       float64
	Coord        [3]float64 // Bohr
}

// Cube is a parsed cube file.  All lengths are in Bohr; files declared in
// Angstrom (negative axis counts) are converted on read.
type Cube struct {
	Comment [2]string
	Atoms   []Atom
	Grid    grid.Grid
	Values  []float64 // cube order: z varies fastest
}

// Read parses a cube file.
func Read(reader io.Reader) (*Cube, error) {
	br := bufio.NewReader(reader)
	var cube Cube
	lineno := 0

	readLine := func() (string, error) {
		line, err := br.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return "", fmt.Errorf("line %d: unexpected end of file", lineno+1)
		}
		lineno++
		return strings.TrimRight(line, "\n"), nil
	}

	for i := 0; i < 2; i++ {
		line, err := readLine()
		if err != nil {
			return nil, err
		}
		cube.Comment[i] = line
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) < 4 || len(fields) > 5 {
		return nil, fmt.Errorf("line %d: expected \"NATOMS OX OY OZ\", got %d fields", lineno, len(fields))
	}
	natoms, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: atom count: %w", lineno, err)
	}
	if natoms < 0 {
		return nil, fmt.Errorf("line %d: negative atom count (DSET_IDS data) is not supported", lineno)
	}
	for c := 0; c < 3; c++ {
		cube.Grid.Origin[c], err = strconv.ParseFloat(fields[1+c], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: origin: %w", lineno, err)
		}
	}
	if len(fields) == 5 {
		nval, err := strconv.Atoi(fields[4])
		if err != nil || nval != 1 {
			return nil, fmt.Errorf("line %d: NVAL != 1 is not supported", lineno)
		}
	}

	angstrom := false
	for axis := 0; axis < 3; axis++ {
		line, err := readLine()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected \"N VX VY VZ\", got %d fields", lineno, len(fields))
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: point count: %w", lineno, err)
		}
		if n < 0 {
			// Negative counts mean the file is in Angstrom.
			angstrom = true
			n = -n
		}
		if n == 0 {
			return nil, fmt.Errorf("line %d: zero point count", lineno)
		}
		cube.Grid.Shape[axis] = n
		for c := 0; c < 3; c++ {
			cube.Grid.Vectors[axis][c], err = strconv.ParseFloat(fields[1+c], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: step vector: %w", lineno, err)
			}
		}
	}
	if angstrom {
		cube.Grid.Origin = physconst.AngstromToBohrVec(cube.Grid.Origin)
		for axis := 0; axis < 3; axis++ {
			cube.Grid.Vectors[axis] = physconst.AngstromToBohrVec(cube.Grid.Vectors[axis])
		}
	}

	cube.Atoms = make([]Atom, natoms)
	for i := range cube.Atoms {
		line, err := readLine()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("line %d: expected \"Z CHARGE X Y Z\", got %d fields", lineno, len(fields))
		}
		cube.Atoms[i].AtomicNumber, err = strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: atomic number: %w", lineno, err)
		}
		cube.Atoms[i].Charge, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: charge: %w", lineno, err)
		}
		for c := 0; c < 3; c++ {
			cube.Atoms[i].Coord[c], err = strconv.ParseFloat(fields[2+c], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: coordinate: %w", lineno, err)
			}
		}
		if angstrom {
			cube.Atoms[i].Coord = physconst.AngstromToBohrVec(cube.Atoms[i].Coord)
		}
	}

	npoints := cube.Grid.NumPoints()
	cube.Values = make([]float64, 0, npoints)
	words := bufio.NewScanner(br)
	words.Split(bufio.ScanWords)
	for words.Scan() {
		val, err := strconv.ParseFloat(words.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("volumetric data: value %d: %w", len(cube.Values)+1, err)
		}
		if len(cube.Values) == npoints {
			return nil, fmt.Errorf("volumetric data: more than %d values", npoints)
		}
		cube.Values = append(cube.Values, val)
	}
	if err := words.Err(); err != nil {
		return nil, err
	}
	if len(cube.Values) != npoints {
		return nil, fmt.Errorf("volumetric data: have %d of %d values", len(cube.Values), npoints)
	}

	return &cube, nil
}

// ReadFile parses the named cube file.
func ReadFile(filename string) (*Cube, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	cube, err := Read(file)
	if err != nil {
		return nil, &fs.PathError{
			Op:   "parse cubefile",
			Path: filename,
			Err:  err,
		}
	}
	return cube, nil
}

// Write renders the cube file in Bohr (positive axis counts).
func (c *Cube) Write(writer io.Writer) error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if len(c.Values) != c.Grid.NumPoints() {
		return fmt.Errorf("cube: have %d values for %d grid points", len(c.Values), c.Grid.NumPoints())
	}
	w := bufio.NewWriter(writer)
	for _, comment := range c.Comment {
		fmt.Fprintln(w, comment)
	}
	fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f\n",
		len(c.Atoms), c.Grid.Origin[0], c.Grid.Origin[1], c.Grid.Origin[2])
	for axis := 0; axis < 3; axis++ {
		fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f\n", c.Grid.Shape[axis],
			c.Grid.Vectors[axis][0], c.Grid.Vectors[axis][1], c.Grid.Vectors[axis][2])
	}
	for _, atom := range c.Atoms {
		fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f%12.6f\n",
			atom.AtomicNumber, atom.Charge, atom.Coord[0], atom.Coord[1], atom.Coord[2])
	}
	// 6 values per line, and break the line at the end of every z-scan.
	nz := c.Grid.Shape[2]
	onLine := 0
	for i, val := range c.Values {
		fmt.Fprintf(w, "%13.5E", val)
		onLine++
		if onLine == 6 || (i+1)%nz == 0 {
			fmt.Fprintln(w)
			onLine = 0
		}
	}
	if onLine > 0 {
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// Integrate returns the Riemann sum of the volumetric data times the voxel
// volume.
func (c *Cube) Integrate() float64 {
	return floats.Sum(c.Values) * c.Grid.VoxelVolume()
}

// Reduce decimates the volumetric data, dropping r[axis] evenly spaced
// indices along each axis.  The retained points are no longer evenly spaced,
// so the result is a point cloud with matching values.
func (c *Cube) Reduce(r [3]int) ([][3]float64, []float64, error) {
	mask, err := c.Grid.Reduce(r)
	if err != nil {
		return nil, nil, err
	}
	allPoints := c.Grid.Points()
	points := make([][3]float64, 0, len(allPoints))
	values := make([]float64, 0, len(allPoints))
	for i, keep := range mask {
		if keep {
			points = append(points, allPoints[i])
			values = append(values, c.Values[i])
		}
	}
	return points, values, nil
}
