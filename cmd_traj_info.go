package main

import (
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/cge-lab/fdeta/pkg/cliutil"
	"github.com/cge-lab/fdeta/pkg/xyz"
)

func init() {
	cmd := &cobra.Command{
		Use:   "info IN_TRAJECTORY.xyz",
		Short: "Summarize an XYZ trajectory",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			frames, err := xyz.ReadTrajectoryFile(args[0])
			if err != nil {
				return err
			}

			elements := make(map[string]int)
			for _, atom := range frames[0].Atoms {
				elements[atom.Symbol]++
			}
			info := struct {
				Frames   int
				Atoms    int
				Elements map[string]int
				Comment  string
			}{
				Frames:   len(frames),
				Atoms:    len(frames[0].Atoms),
				Elements: elements,
				Comment:  frames[0].Comment,
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
	argparserTraj.AddCommand(cmd)
}
