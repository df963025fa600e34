// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package element is a minimal periodic table; just enough of
// `qcelemental.periodictable` to read and write the file formats that fdeta
// deals with.
package element

import (
	"fmt"
	"strings"
)

//nolint:gochecknoglobals // Would be 'const'.
var symbols = [...]string{
	1: "H", 2: "He",
	3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O", 9: "F", 10: "Ne",
	11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P", 16: "S", 17: "Cl", 18: "Ar",
	19: "K", 20: "Ca",
	21: "Sc", 22: "Ti", 23: "V", 24: "Cr", 25: "Mn",
	26: "Fe", 27: "Co", 28: "Ni", 29: "Cu", 30: "Zn",
	31: "Ga", 32: "Ge", 33: "As", 34: "Se", 35: "Br", 36: "Kr",
	37: "Rb", 38: "Sr",
	39: "Y", 40: "Zr", 41: "Nb", 42: "Mo", 43: "Tc",
	44: "Ru", 45: "Rh", 46: "Pd", 47: "Ag", 48: "Cd",
	49: "In", 50: "Sn", 51: "Sb", 52: "Te", 53: "I", 54: "Xe",
	55: "Cs", 56: "Ba",
	57: "La", 58: "Ce", 59: "Pr", 60: "Nd", 61: "Pm", 62: "Sm", 63: "Eu",
	64: "Gd", 65: "Tb", 66: "Dy", 67: "Ho", 68: "Er", 69: "Tm", 70: "Yb",
	71: "Lu", 72: "Hf", 73: "Ta", 74: "W", 75: "Re",
	76: "Os", 77: "Ir", 78: "Pt", 79: "Au", 80: "Hg",
	81: "Tl", 82: "Pb", 83: "Bi", 84: "Po", 85: "At", 86: "Rn",
}

// masses are the conventional atomic weights (u) of the elements that show up
// in classical MD force fields.  Extend as needed.
//
//nolint:gochecknoglobals // Would be 'const'.
var masses = map[int]float64{
	1:  1.00794,
	2:  4.002602,
	3:  6.941,
	5:  10.811,
	6:  12.0107,
	7:  14.0067,
	8:  15.9994,
	9:  18.9984032,
	11: 22.98976928,
	12: 24.305,
	14: 28.0855,
	15: 30.973762,
	16: 32.065,
	17: 35.453,
	19: 39.0983,
	20: 40.078,
	26: 55.845,
	29: 63.546,
	30: 65.38,
	35: 79.904,
	53: 126.90447,
}

// Normalize returns the canonical capitalization of an element symbol ("CL"
// and "cl" both become "Cl").
func Normalize(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return symbol
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// ToAtomicNumber maps an element symbol to its atomic number.
func ToAtomicNumber(symbol string) (int, error) {
	canon := Normalize(symbol)
	for z, s := range symbols {
		if s == canon {
			return z, nil
		}
	}
	return 0, fmt.Errorf("element: unknown symbol %q", symbol)
}

// ToSymbol maps an atomic number to its element symbol.
func ToSymbol(z int) (string, error) {
	if z < 1 || z >= len(symbols) || symbols[z] == "" {
		return "", fmt.Errorf("element: unknown atomic number %d", z)
	}
	return symbols[z], nil
}

// Mass returns the conventional atomic weight (u) for the given atomic
// number.
func Mass(z int) (float64, error) {
	m, ok := masses[z]
	if !ok {
		if _, err := ToSymbol(z); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("element: no tabulated mass for atomic number %d", z)
	}
	return m, nil
}

// IsSymbol reports whether the string names a known element.
func IsSymbol(symbol string) bool {
	_, err := ToAtomicNumber(symbol)
	return err == nil
}
