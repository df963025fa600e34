package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/cge-lab/fdeta/pkg/cliutil"
	"github.com/cge-lab/fdeta/pkg/mdft"
)

func init() {
	cmd := &cobra.Command{
		Use:   "inspect IN_PARSFILE",
		Short: "Dump an MDFT parameter file as YAML",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			params, err := mdft.ReadParamsFile(args[0])
			if err != nil {
				return err
			}

			var out struct {
				File        string
				mdft.Params `yaml:",inline"`
			}
			out.File = args[0]
			out.Params = *params

			bs, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(bs); err != nil {
				return err
			}
			return nil
		},
	}
	argparserMDFT.AddCommand(cmd)
}
