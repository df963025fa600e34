// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package grid models the cubic grids that volumetric data lives on.
//
// Point order follows the cube-file convention: the x index varies slowest
// and the z index varies fastest.
package grid

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"sigs.k8s.io/yaml"

	"github.com/cge-lab/fdeta/pkg/physconst"
)

// Grid is a (possibly non-orthogonal) cubic grid.  Origin and step vectors
// are in Bohr.
type Grid struct {
	Origin  [3]float64
	Vectors [3][3]float64
	Shape   [3]int
}

func (g Grid) Validate() error {
	for axis, n := range g.Shape {
		if n < 1 {
			return fmt.Errorf("grid: axis %d: non-positive point count %d", axis, n)
		}
	}
	if g.VoxelVolume() == 0 {
		return fmt.Errorf("grid: step vectors are singular")
	}
	return nil
}

// NumPoints returns the total number of grid points.
func (g Grid) NumPoints() int {
	return g.Shape[0] * g.Shape[1] * g.Shape[2]
}

// Points expands the grid to an explicit point list in cube order.
func (g Grid) Points() [][3]float64 {
	pts := make([][3]float64, 0, g.NumPoints())
	for i := 0; i < g.Shape[0]; i++ {
		for j := 0; j < g.Shape[1]; j++ {
			for k := 0; k < g.Shape[2]; k++ {
				var p [3]float64
				for c := 0; c < 3; c++ {
					p[c] = g.Origin[c] +
						float64(i)*g.Vectors[0][c] +
						float64(j)*g.Vectors[1][c] +
						float64(k)*g.Vectors[2][c]
				}
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// VoxelVolume returns the volume (Bohr³) of a single voxel.
func (g Grid) VoxelVolume() float64 {
	m := mat.NewDense(3, 3, []float64{
		g.Vectors[0][0], g.Vectors[0][1], g.Vectors[0][2],
		g.Vectors[1][0], g.Vectors[1][1], g.Vectors[1][2],
		g.Vectors[2][0], g.Vectors[2][1], g.Vectors[2][2],
	})
	return math.Abs(mat.Det(m))
}

// FracIndex maps a Cartesian point (Bohr) to its voxel indices, and reports
// whether the point falls inside the grid.
func (g Grid) FracIndex(p [3]float64) ([3]int, bool) {
	m := mat.NewDense(3, 3, []float64{
		// column-per-step-vector so that m·f = p - origin
		g.Vectors[0][0], g.Vectors[1][0], g.Vectors[2][0],
		g.Vectors[0][1], g.Vectors[1][1], g.Vectors[2][1],
		g.Vectors[0][2], g.Vectors[1][2], g.Vectors[2][2],
	})
	rhs := mat.NewVecDense(3, []float64{
		p[0] - g.Origin[0],
		p[1] - g.Origin[1],
		p[2] - g.Origin[2],
	})
	var frac mat.VecDense
	if err := frac.SolveVec(m, rhs); err != nil {
		return [3]int{}, false
	}
	var idx [3]int
	for c := 0; c < 3; c++ {
		idx[c] = int(math.Floor(frac.AtVec(c)))
		if idx[c] < 0 || idx[c] >= g.Shape[c] {
			return idx, false
		}
	}
	return idx, true
}

// FlatIndex converts voxel indices to the flat cube-order index.
func (g Grid) FlatIndex(idx [3]int) int {
	return (idx[0]*g.Shape[1]+idx[1])*g.Shape[2] + idx[2]
}

// Spec is the user-facing YAML description of a grid.  Lengths are in
// Angstrom; Step is the orthogonal voxel edge length per axis.
type Spec struct {
	Origin [3]float64
	Step   [3]float64
	Shape  [3]int
}

// Grid converts the Spec to a Grid in Bohr.
func (s Spec) Grid() (Grid, error) {
	var g Grid
	for c := 0; c < 3; c++ {
		g.Origin[c] = physconst.AngstromToBohr(s.Origin[c])
		g.Vectors[c][c] = physconst.AngstromToBohr(s.Step[c])
	}
	g.Shape = s.Shape
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// LoadSpec reads a YAML grid spec from a file.
func LoadSpec(filename string) (Grid, error) {
	yamlBytes, err := os.ReadFile(filename)
	if err != nil {
		return Grid{}, err
	}
	var spec Spec
	if err := yaml.Unmarshal(yamlBytes, &spec, yaml.DisallowUnknownFields); err != nil {
		return Grid{}, fmt.Errorf("%s: %w", filename, err)
	}
	g, err := spec.Grid()
	if err != nil {
		return Grid{}, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}
