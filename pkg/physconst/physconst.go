// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package physconst provides the few physical constants that the file codecs
// need.  Values follow the 2014 CODATA recommendations, matching what
// qcelemental ships by default.
package physconst

import (
	"gonum.org/v1/gonum/floats"
)

// BohrRadiusAngstrom is the Bohr radius expressed in Angstrom.
const BohrRadiusAngstrom = 0.52917721067

func BohrToAngstrom(x float64) float64 {
	return x * BohrRadiusAngstrom
}

func AngstromToBohr(x float64) float64 {
	return x / BohrRadiusAngstrom
}

// BohrToAngstromVec converts a coordinate triple from Bohr to Angstrom.
func BohrToAngstromVec(v [3]float64) [3]float64 {
	floats.Scale(BohrRadiusAngstrom, v[:])
	return v
}

// AngstromToBohrVec converts a coordinate triple from Angstrom to Bohr.
func AngstromToBohrVec(v [3]float64) [3]float64 {
	for c := range v {
		v[c] = AngstromToBohr(v[c])
	}
	return v
}
