// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cge-lab/fdeta/pkg/element"
)

func TestToAtomicNumber(t *testing.T) {
	type TestCase struct {
		Input     string
		OutputVal int
		OutputErr string
	}
	testcases := []TestCase{
		{"H", 1, ""},
		{"h", 1, ""},
		{"O", 8, ""},
		{"CL", 17, ""},
		{"cl", 17, ""},
		{" Na ", 11, ""},
		{"Uuq", 0, `element: unknown symbol "Uuq"`},
		{"", 0, `element: unknown symbol ""`},
	}
	t.Parallel()
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.Input, func(t *testing.T) {
			t.Parallel()
			z, err := element.ToAtomicNumber(tc.Input)
			if tc.OutputErr != "" {
				assert.EqualError(t, err, tc.OutputErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.OutputVal, z)
			}
		})
	}
}

func TestToSymbol(t *testing.T) {
	t.Parallel()
	symbol, err := element.ToSymbol(8)
	require.NoError(t, err)
	assert.Equal(t, "O", symbol)

	for _, z := range []int{0, -1, 1000} {
		_, err := element.ToSymbol(z)
		assert.Error(t, err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for z := 1; z <= 86; z++ {
		symbol, err := element.ToSymbol(z)
		require.NoError(t, err)
		back, err := element.ToAtomicNumber(symbol)
		require.NoError(t, err)
		assert.Equal(t, z, back)
	}
}

func TestMass(t *testing.T) {
	t.Parallel()
	m, err := element.Mass(8)
	require.NoError(t, err)
	assert.InDelta(t, 15.9994, m, 1e-9)

	_, err = element.Mass(43) // Tc: known element, no tabulated mass
	assert.EqualError(t, err, "element: no tabulated mass for atomic number 43")

	_, err = element.Mass(1000)
	assert.EqualError(t, err, "element: unknown atomic number 1000")
}

func TestIsSymbol(t *testing.T) {
	t.Parallel()
	assert.True(t, element.IsSymbol("He"))
	assert.True(t, element.IsSymbol("he"))
	assert.False(t, element.IsSymbol("Zz"))
}
