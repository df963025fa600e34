package main

import (
	"github.com/spf13/cobra"

	"github.com/cge-lab/fdeta/pkg/cliutil"
)

var argparserCube = &cobra.Command{
	Use:   "cube {[flags]|SUBCOMMAND...}",
	Short: "Work with Gaussian cube files",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserCube)
}
