package main

import (
	"github.com/spf13/cobra"

	"github.com/cge-lab/fdeta/pkg/cliutil"
)

var argparserTraj = &cobra.Command{
	Use:   "traj {[flags]|SUBCOMMAND...}",
	Short: "Work with MD trajectory files",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserTraj)
}
