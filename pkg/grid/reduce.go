// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"fmt"
)

// Reduce builds a decimation mask over the grid's flattened point list:
// along each axis, r[axis] evenly spaced indices are dropped.  Each r[axis]
// must exactly divide the axis point count; pass 0 to leave an axis alone.
//
// The retained points are no longer evenly spaced, so the result is a point
// cloud rather than a new Grid; filter Points() and the value array with the
// returned mask.
func (g Grid) Reduce(r [3]int) ([]bool, error) {
	axisKeep := make([][]bool, 3)
	for axis := 0; axis < 3; axis++ {
		n := g.Shape[axis]
		keep := make([]bool, n)
		for i := range keep {
			keep[i] = true
		}
		if r[axis] == 0 {
			axisKeep[axis] = keep
			continue
		}
		if r[axis] < 0 || r[axis] > n {
			return nil, fmt.Errorf("grid: axis %d: cannot drop %d of %d points", axis, r[axis], n)
		}
		if n%r[axis] != 0 {
			return nil, fmt.Errorf("grid: axis %d: %d is not a divisor of %d points (try %d)",
				axis, r[axis], n, SmallestDivisor(n))
		}
		div := n / r[axis]
		for i := 0; i < n; i += div {
			keep[i] = false
		}
		axisKeep[axis] = keep
	}

	mask := make([]bool, 0, g.NumPoints())
	for i := 0; i < g.Shape[0]; i++ {
		for j := 0; j < g.Shape[1]; j++ {
			for k := 0; k < g.Shape[2]; k++ {
				mask = append(mask, axisKeep[0][i] && axisKeep[1][j] && axisKeep[2][k])
			}
		}
	}
	return mask, nil
}

// GCD returns the greatest common divisor of x and y.
func GCD(x, y int) int {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// SmallestDivisor returns the smallest divisor of x that is greater than 1.
// For primes that is x itself.
func SmallestDivisor(x int) int {
	if x < 2 {
		return x
	}
	for d := 2; d*d <= x; d++ {
		if x%d == 0 {
			return d
		}
	}
	return x
}
