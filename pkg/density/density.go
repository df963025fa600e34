// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package density accumulates trajectory frames in to an averaged density on
// a cubic grid.  This is the numerical core of fdeta: the environment's
// atoms are binned frame by frame, and the per-voxel averages become the
// frozen density that an embedding calculation consumes.
package density

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/cge-lab/fdeta/pkg/fragment"
	"github.com/cge-lab/fdeta/pkg/grid"
	"github.com/cge-lab/fdeta/pkg/physconst"
	"github.com/cge-lab/fdeta/pkg/xyz"
)

type Options struct {
	// Workers caps the number of concurrent frame accumulators; 0 means
	// GOMAXPROCS.
	Workers int
	// Charges weights each binned atom by its element's charge.  Elements
	// not in the map weigh 1, so a nil map yields a plain occupancy
	// density.
	Charges map[string]float64
}

type Result struct {
	Grid grid.Grid
	// Values is the per-voxel density: accumulated weight divided by the
	// frame count and the voxel volume (Bohr⁻³).
	Values []float64
	Frames int
	// Binned and Skipped count the selected atom positions that fell
	// inside and outside the grid, over all frames.
	Binned  int
	Skipped int
}

// Average bins the selected atoms of every frame on to the grid and averages
// over frames.  Frames are distributed over a worker pool; the result is
// independent of frame order.
func Average(
	ctx context.Context,
	g grid.Grid,
	frames []xyz.Frame,
	sel *fragment.Selection,
	opts Options,
) (*Result, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("density: no frames to average")
	}
	indices, err := sel.Indices(frames[0])
	if err != nil {
		return nil, err
	}

	weights := make([]float64, len(indices))
	for i, idx := range indices {
		weights[i] = 1
		if w, ok := opts.Charges[frames[0].Atoms[idx].Symbol]; ok {
			weights[i] = w
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(frames) {
		workers = len(frames)
	}

	type partial struct {
		hist    []float64
		binned  int
		skipped int
	}
	partials := make([]partial, workers)

	group, ctx := errgroup.WithContext(ctx)
	for worker := 0; worker < workers; worker++ {
		worker := worker
		group.Go(func() error {
			local := partial{hist: make([]float64, g.NumPoints())}
			for f := worker; f < len(frames); f += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				frame := frames[f]
				for i, idx := range indices {
					p := physconst.AngstromToBohrVec(frame.Atoms[idx].Coord)
					voxel, inside := g.FracIndex(p)
					if !inside {
						local.skipped++
						continue
					}
					local.hist[g.FlatIndex(voxel)] += weights[i]
					local.binned++
				}
			}
			partials[worker] = local
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Grid:   g,
		Values: make([]float64, g.NumPoints()),
		Frames: len(frames),
	}
	for _, part := range partials {
		floats.Add(result.Values, part.hist)
		result.Binned += part.binned
		result.Skipped += part.skipped
	}
	floats.Scale(1/(float64(len(frames))*g.VoxelVolume()), result.Values)
	return result, nil
}
