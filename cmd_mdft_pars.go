package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/cge-lab/fdeta/pkg/cliutil"
	"github.com/cge-lab/fdeta/pkg/fragment"
	"github.com/cge-lab/fdeta/pkg/mdft"
	"github.com/cge-lab/fdeta/pkg/reproducible"
	"github.com/cge-lab/fdeta/pkg/xyz"
)

func init() {
	var flagVals struct {
		ParamsFile   string
		FragmentFile string
		Comment      string
	}
	cmd := &cobra.Command{
		Use:   "pars [flags] IN_GEOMETRY.xyz >OUT_PARSFILE",
		Short: "Write an MDFT parameter file for a geometry",
		Long: "Given a geometry and a table of per-element interaction parameters, write " +
			"the \"pars.in\" file that MDFT expects.  The parameter table is YAML, " +
			"keyed by element symbol:" +
			"\n\n" +
			"    O: {Charge: -0.8476, Sigma: 3.1656, Epsilon: 0.6502, Surname: OW}\n" +
			"    H: {Charge: 0.4238, Sigma: 0.0, Epsilon: 0.0, Surname: HW}\n" +
			"\n" +
			"Surname defaults to the element symbol.  With --fragment-file only the " +
			"selected atoms are written.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			yamlBytes, err := os.ReadFile(flagVals.ParamsFile)
			if err != nil {
				return err
			}
			var table map[string]struct {
				Charge  float64
				Sigma   float64
				Epsilon float64
				Surname string
			}
			if err := yaml.Unmarshal(yamlBytes, &table, yaml.DisallowUnknownFields); err != nil {
				return fmt.Errorf("%s: %w", flagVals.ParamsFile, err)
			}

			frames, err := xyz.ReadTrajectoryFile(args[0])
			if err != nil {
				return err
			}
			atoms := frames[0].Atoms
			if flagVals.FragmentFile != "" {
				sel, err := fragment.Load(flagVals.FragmentFile)
				if err != nil {
					return err
				}
				atoms, _, err = sel.Split(frames[0])
				if err != nil {
					return err
				}
			}

			var (
				elements []string
				surnames []string
				coords   [][3]float64
				charges  []float64
				sigmas   []float64
				epsilons []float64
			)
			for _, atom := range atoms {
				entry, ok := table[atom.Symbol]
				if !ok {
					return fmt.Errorf("%s: no parameters for element %q",
						flagVals.ParamsFile, atom.Symbol)
				}
				surname := entry.Surname
				if surname == "" {
					surname = atom.Symbol
				}
				elements = append(elements, atom.Symbol)
				surnames = append(surnames, surname)
				coords = append(coords, atom.Coord)
				charges = append(charges, entry.Charge)
				sigmas = append(sigmas, entry.Sigma)
				epsilons = append(epsilons, entry.Epsilon)
			}

			comment := flagVals.Comment
			if comment == "" {
				comment = fmt.Sprintf("Input made with FDETA module, %s.", reproducible.Stamp())
			}
			params, err := mdft.NewParams(comment,
				elements, surnames, coords, charges, sigmas, epsilons)
			if err != nil {
				return err
			}
			return params.Write(os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagVals.ParamsFile, "params-file", "",
		"Read `IN_YAML_FILE` mapping element symbols to interaction parameters")
	cmd.Flags().StringVar(&flagVals.FragmentFile, "fragment-file", "",
		"Read `IN_YAML_FILE` for the fragment selection")
	cmd.Flags().StringVar(&flagVals.Comment, "comment", "",
		"First line of the output file")
	if err := cmd.MarkFlagRequired("params-file"); err != nil {
		panic(err)
	}
	argparserMDFT.AddCommand(cmd)
}
