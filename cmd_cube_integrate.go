package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cge-lab/fdeta/pkg/cliutil"
	"github.com/cge-lab/fdeta/pkg/cube"
)

func init() {
	cmd := &cobra.Command{
		Use:   "integrate IN_CUBEFILE",
		Short: "Integrate a cube file's volumetric data",
		Long: "Print the Riemann sum of the volumetric data times the voxel volume; for " +
			"an electron-density cube this is the number of electrons on the grid.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			c, err := cube.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(flags.OutOrStdout(), "%.10g\n", c.Integrate())
			return nil
		},
	}
	argparserCube.AddCommand(cmd)
}
