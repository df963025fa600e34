// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

package density_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/cge-lab/fdeta/pkg/density"
	"github.com/cge-lab/fdeta/pkg/fragment"
	"github.com/cge-lab/fdeta/pkg/grid"
	"github.com/cge-lab/fdeta/pkg/physconst"
	"github.com/cge-lab/fdeta/pkg/xyz"
)

func unitGrid(n int) grid.Grid {
	return grid.Grid{
		Vectors: [3][3]float64{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		Shape: [3]int{n, n, n},
	}
}

// atomAt places an atom so that it lands on the given Bohr position after
// the Angstrom-to-Bohr conversion.
func atomAt(symbol string, bohr [3]float64) xyz.Atom {
	return xyz.Atom{
		Symbol: symbol,
		Coord:  physconst.BohrToAngstromVec(bohr),
	}
}

func oxygenSelection() *fragment.Selection {
	return &fragment.Selection{
		Name:  "oxygens",
		Atoms: []intstr.IntOrString{intstr.FromString("O")},
	}
}

func TestAverageSingleFrame(t *testing.T) {
	t.Parallel()
	g := unitGrid(2)
	frames := []xyz.Frame{
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{0.5, 0.5, 0.5})}},
	}

	result, err := density.Average(context.Background(), g, frames, oxygenSelection(),
		density.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Frames)
	assert.Equal(t, 1, result.Binned)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Values, 8)
	assert.InDelta(t, 1.0, result.Values[0], 1e-12)
	for _, v := range result.Values[1:] {
		assert.Equal(t, 0.0, v)
	}
}

func TestAverageCharges(t *testing.T) {
	t.Parallel()
	g := unitGrid(2)
	frames := []xyz.Frame{
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{0.5, 0.5, 0.5})}},
	}

	result, err := density.Average(context.Background(), g, frames, oxygenSelection(),
		density.Options{Charges: map[string]float64{"O": -0.8476}})
	require.NoError(t, err)
	assert.InDelta(t, -0.8476, result.Values[0], 1e-12)
}

func TestAverageOutsideGrid(t *testing.T) {
	t.Parallel()
	g := unitGrid(2)
	frames := []xyz.Frame{
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{5, 5, 5})}},
	}

	result, err := density.Average(context.Background(), g, frames, oxygenSelection(),
		density.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Binned)
	assert.Equal(t, 1, result.Skipped)
	for _, v := range result.Values {
		assert.Equal(t, 0.0, v)
	}
}

func TestAverageWorkerIndependence(t *testing.T) {
	t.Parallel()
	g := unitGrid(4)
	frames := []xyz.Frame{
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{0.5, 0.5, 0.5})}},
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{1.5, 0.5, 0.5})}},
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{2.5, 3.5, 1.5})}},
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{0.5, 0.5, 0.5})}},
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{3.5, 3.5, 3.5})}},
	}

	serial, err := density.Average(context.Background(), g, frames, oxygenSelection(),
		density.Options{Workers: 1})
	require.NoError(t, err)
	parallel, err := density.Average(context.Background(), g, frames, oxygenSelection(),
		density.Options{Workers: 3})
	require.NoError(t, err)
	assert.Equal(t, serial.Values, parallel.Values)
	assert.Equal(t, serial.Binned, parallel.Binned)
}

func TestAverageCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := unitGrid(2)
	frames := []xyz.Frame{
		{Atoms: []xyz.Atom{atomAt("O", [3]float64{0.5, 0.5, 0.5})}},
	}
	_, err := density.Average(ctx, g, frames, oxygenSelection(), density.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAverageNoFrames(t *testing.T) {
	t.Parallel()
	_, err := density.Average(context.Background(), unitGrid(2), nil, oxygenSelection(),
		density.Options{})
	assert.EqualError(t, err, "density: no frames to average")
}
