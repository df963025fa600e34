package main

import (
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"sigs.k8s.io/yaml"

	"github.com/cge-lab/fdeta/pkg/cliutil"
	"github.com/cge-lab/fdeta/pkg/cube"
)

func init() {
	cmd := &cobra.Command{
		Use:   "info IN_CUBEFILE",
		Short: "Summarize a cube file's header and volumetric data",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			c, err := cube.ReadFile(args[0])
			if err != nil {
				return err
			}

			info := struct {
				Comment     [2]string
				Atoms       int
				Shape       [3]int
				Origin      [3]float64 // Bohr
				VoxelVolume float64    // Bohr³
				Points      int
				Min         float64
				Max         float64
				Integral    float64
			}{
				Comment:     c.Comment,
				Atoms:       len(c.Atoms),
				Shape:       c.Grid.Shape,
				Origin:      c.Grid.Origin,
				VoxelVolume: c.Grid.VoxelVolume(),
				Points:      c.Grid.NumPoints(),
				Min:         floats.Min(c.Values),
				Max:         floats.Max(c.Values),
				Integral:    c.Integrate(),
			}

			bs, err := yaml.Marshal(info)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(bs); err != nil {
				return err
			}
			return nil
		},
	}
	argparserCube.AddCommand(cmd)
}
