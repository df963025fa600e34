package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cge-lab/fdeta/pkg/cube"
	"github.com/cge-lab/fdeta/pkg/density"
)

func init() {
	var flagMean bool
	cmd := &cobra.Command{
		Use:   "combine [flags] IN_CUBEFILES... >OUT_CUBEFILE",
		Short: "Combine cube files on a common grid in to one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(flags *cobra.Command, args []string) error {
			cubes := make([]*cube.Cube, 0, len(args))
			for _, filename := range args {
				c, err := cube.ReadFile(filename)
				if err != nil {
					return err
				}
				cubes = append(cubes, c)
			}

			combined, err := density.Combine(flagMean, cubes...)
			if err != nil {
				return err
			}
			return combined.Write(os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&flagMean, "mean", false,
		"Average the volumetric data instead of summing it")
	argparserCube.AddCommand(cmd)
}
