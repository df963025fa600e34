package main

import (
	"github.com/spf13/cobra"

	"github.com/cge-lab/fdeta/pkg/cliutil"
)

var argparserMDFT = &cobra.Command{
	Use:   "mdft {[flags]|SUBCOMMAND...}",
	Short: "Connectivity with Molecular-DFT",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserMDFT)
}
