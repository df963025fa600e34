// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

package mdft_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cge-lab/fdeta/pkg/mdft"
	"github.com/cge-lab/fdeta/pkg/testutil"
)

func waterParams(t *testing.T) *mdft.Params {
	t.Helper()
	params, err := mdft.NewParams(
		"SPC/E water",
		[]string{"O", "H", "H"},
		[]string{"OW", "HW", "HW"},
		[][3]float64{
			{0, 0, 0.1173},
			{0, 0.7572, -0.4692},
			{0, -0.7572, -0.4692},
		},
		[]float64{-0.8476, 0.4238, 0.4238},
		[]float64{3.1656, 0, 0},
		[]float64{0.6502, 0, 0},
	)
	require.NoError(t, err)
	return params
}

func TestAssignSites(t *testing.T) {
	t.Parallel()
	params := waterParams(t)
	assert.Equal(t, 2, params.NUnique)
	assert.Equal(t, 1, params.Sites[0].ID)
	assert.Equal(t, 2, params.Sites[1].ID)
	assert.Equal(t, 2, params.Sites[2].ID)

	distinct := []mdft.Site{
		{Charge: 0.1}, {Charge: 0.2}, {Charge: 0.3},
	}
	assert.Equal(t, 3, mdft.AssignSites(distinct))
	for i, site := range distinct {
		assert.Equal(t, i+1, site.ID)
	}
}

func TestCheckLengths(t *testing.T) {
	t.Parallel()
	assert.NoError(t, mdft.CheckLengths(3, 3, 3))
	assert.EqualError(t, mdft.CheckLengths(3),
		"at least two arrays need to be given")
	assert.EqualError(t, mdft.CheckLengths(3, 3, 2),
		"array in position 2 has different length")
}

func TestNewParamsLengthMismatch(t *testing.T) {
	t.Parallel()
	_, err := mdft.NewParams("c",
		[]string{"O", "H"},
		[]string{"OW"},
		[][3]float64{{0, 0, 0}, {0, 0, 1}},
		[]float64{0, 0},
		[]float64{0, 0},
		[]float64{0, 0},
	)
	assert.EqualError(t, err, "array in position 1 has different length")
}

func TestWrite(t *testing.T) {
	t.Parallel()
	params := waterParams(t)

	var rendered strings.Builder
	require.NoError(t, params.Write(&rendered))
	lines := strings.Split(rendered.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	assert.Equal(t, "SPC/E water", lines[0])
	assert.Equal(t, "3  2", lines[1])
	// line 3 is the column header; the rows are fixed-width but must also
	// split cleanly in to the 10 documented fields
	assert.Equal(t,
		[]string{"1", "-0.847600", "3.165600", "0.650200",
			"0.0000000000", "0.0000000000", "0.1173000000",
			"8", "O", "OW"},
		strings.Fields(lines[3]))
	assert.Equal(t,
		[]string{"2", "0.423800", "0.000000", "0.000000",
			"0.0000000000", "0.7572000000", "-0.4692000000",
			"1", "H", "HW"},
		strings.Fields(lines[4]))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	orig := waterParams(t)

	var rendered strings.Builder
	require.NoError(t, orig.Write(&rendered))

	back, err := mdft.ReadParams(strings.NewReader(rendered.String()))
	require.NoError(t, err)
	testutil.AssertEqualDump(t, orig, back)
}

func TestReadErrors(t *testing.T) {
	type TestCase struct {
		Name      string
		Input     string
		OutputErr string
	}
	testcases := []TestCase{
		{
			Name:      "empty",
			Input:     "",
			OutputErr: `line 2: missing "NATOMS NUNIQUES" line`,
		},
		{
			Name:      "bad-counts",
			Input:     "comment\n3\nheader\n",
			OutputErr: "line 2: wrong format, expected 2 integers",
		},
		{
			Name:      "short-row",
			Input:     "comment\n1  1\nheader\n1 0.0 0.0 0.0\n",
			OutputErr: "line 4: wrong number of fields, expected 10, got 4",
		},
		{
			Name:      "count-mismatch",
			Input:     "comment\n2  1\nheader\n1 0.0 0.0 0.0 0.0 0.0 0.0 8 O OW\n",
			OutputErr: "number of atoms and lines don't match: declared 2, have 1",
		},
	}
	t.Parallel()
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			_, err := mdft.ReadParams(strings.NewReader(tc.Input))
			assert.EqualError(t, err, tc.OutputErr)
		})
	}
}
