// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

package density

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/cge-lab/fdeta/pkg/cube"
)

// gridTolerance is how far (Bohr) two cube files' origins or step vectors
// may disagree and still be considered the same grid.
const gridTolerance = 1e-8

// Combine merges several cube files defined on the same grid in to one,
// summing the volumetric data (or averaging it, with mean).  Atoms and
// comments are taken from the first cube.
func Combine(mean bool, cubes ...*cube.Cube) (*cube.Cube, error) {
	if len(cubes) == 0 {
		return nil, fmt.Errorf("density: no cubes to combine")
	}
	first := cubes[0]
	for i, c := range cubes[1:] {
		if c.Grid.Shape != first.Grid.Shape {
			return nil, fmt.Errorf("density: cube %d: grid shape %v does not match %v",
				i+2, c.Grid.Shape, first.Grid.Shape)
		}
		for axis := 0; axis < 3; axis++ {
			if !scalar.EqualWithinAbs(c.Grid.Origin[axis], first.Grid.Origin[axis], gridTolerance) {
				return nil, fmt.Errorf("density: cube %d: grid origin does not match", i+2)
			}
			for comp := 0; comp < 3; comp++ {
				if !scalar.EqualWithinAbs(c.Grid.Vectors[axis][comp], first.Grid.Vectors[axis][comp],
					gridTolerance) {
					return nil, fmt.Errorf("density: cube %d: grid step vectors do not match", i+2)
				}
			}
		}
	}

	out := &cube.Cube{
		Comment: first.Comment,
		Atoms:   append([]cube.Atom(nil), first.Atoms...),
		Grid:    first.Grid,
		Values:  append([]float64(nil), first.Values...),
	}
	for _, c := range cubes[1:] {
		floats.Add(out.Values, c.Values)
	}
	if mean {
		floats.Scale(1/float64(len(cubes)), out.Values)
	}
	return out, nil
}
