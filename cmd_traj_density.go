package main

import (
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/cge-lab/fdeta/pkg/cliutil"
	"github.com/cge-lab/fdeta/pkg/cube"
	"github.com/cge-lab/fdeta/pkg/density"
	"github.com/cge-lab/fdeta/pkg/element"
	"github.com/cge-lab/fdeta/pkg/fragment"
	"github.com/cge-lab/fdeta/pkg/grid"
	"github.com/cge-lab/fdeta/pkg/physconst"
	"github.com/cge-lab/fdeta/pkg/reproducible"
	"github.com/cge-lab/fdeta/pkg/xyz"
)

func init() {
	var flagVals struct {
		GridFile     string
		FragmentFile string
		ChargesFile  string
		Workers      int
	}
	cmd := &cobra.Command{
		Use:   "density [flags] IN_TRAJECTORY.xyz >OUT_CUBEFILE",
		Short: "Average a fragment's density over a trajectory",
		Long: "Bin the selected fragment's atom positions on to a cubic grid, frame by " +
			"frame, and write the per-voxel averages as a cube file.  Without " +
			"--charges-file every atom weighs 1 and the output is an occupancy " +
			"density; with it, each element is weighted by its charge and the output " +
			"is a charge density." +
			"\n\n" +
			"The grid file is YAML, in Angstrom:" +
			"\n\n" +
			"    Origin: [-5.0, -5.0, -5.0]\n" +
			"    Step: [0.25, 0.25, 0.25]\n" +
			"    Shape: [40, 40, 40]\n" +
			"\n" +
			"The fragment file is YAML; an Atoms entry is a 1-based atom index or an " +
			"element symbol:" +
			"\n\n" +
			"    Name: solvent-oxygens\n" +
			"    Atoms: [O]\n",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			g, err := grid.LoadSpec(flagVals.GridFile)
			if err != nil {
				return err
			}
			sel, err := fragment.Load(flagVals.FragmentFile)
			if err != nil {
				return err
			}
			var charges map[string]float64
			if flagVals.ChargesFile != "" {
				yamlBytes, err := os.ReadFile(flagVals.ChargesFile)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(yamlBytes, &charges, yaml.DisallowUnknownFields); err != nil {
					return fmt.Errorf("%s: %w", flagVals.ChargesFile, err)
				}
			}

			frames, err := xyz.ReadTrajectoryFile(args[0])
			if err != nil {
				return err
			}
			dlog.Infof(ctx, "read %d frames of %d atoms", len(frames), len(frames[0].Atoms))

			result, err := density.Average(ctx, g, frames, sel, density.Options{
				Workers: flagVals.Workers,
				Charges: charges,
			})
			if err != nil {
				return err
			}
			dlog.Infof(ctx, "binned %d positions (%d outside the grid)",
				result.Binned, result.Skipped)

			inside, _, err := sel.Split(frames[0])
			if err != nil {
				return err
			}
			out := &cube.Cube{
				Comment: [2]string{
					fmt.Sprintf("fdeta trajectory-averaged density: %s", sel.Name),
					fmt.Sprintf("%d frames, generated %s", result.Frames, reproducible.Stamp()),
				},
				Grid:   result.Grid,
				Values: result.Values,
			}
			for _, atom := range inside {
				z, err := element.ToAtomicNumber(atom.Symbol)
				if err != nil {
					return err
				}
				out.Atoms = append(out.Atoms, cube.Atom{
					AtomicNumber: z,
					Charge:       float64(z),
					Coord:        physconst.AngstromToBohrVec(atom.Coord),
				})
			}
			return out.Write(os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagVals.GridFile, "grid-file", "",
		"Read `IN_YAML_FILE` for the output grid description")
	cmd.Flags().StringVar(&flagVals.FragmentFile, "fragment-file", "",
		"Read `IN_YAML_FILE` for the fragment selection")
	cmd.Flags().StringVar(&flagVals.ChargesFile, "charges-file", "",
		"Read `IN_YAML_FILE` mapping element symbols to charges")
	cmd.Flags().IntVar(&flagVals.Workers, "workers", 0,
		"Number of concurrent frame accumulators (0 means one per CPU)")
	for _, required := range []string{"grid-file", "fragment-file"} {
		if err := cmd.MarkFlagRequired(required); err != nil {
			panic(err)
		}
	}
	argparserTraj.AddCommand(cmd)
}
