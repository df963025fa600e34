package main

import (
	"os"

	"github.com/datawire/dlib/dexec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run MDFT_EXECUTABLE [ARGS...]",
		Short: "Run an external MDFT solver",
		Long: "Exec the MDFT solver with the given arguments, logging the invocation.  " +
			"Use this after `fdeta mdft pars` has produced the solver's input.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			solver := dexec.CommandContext(ctx, args[0], args[1:]...)
			solver.Stdin = os.Stdin
			solver.Stdout = os.Stdout
			solver.Stderr = os.Stderr
			return solver.Run()
		},
	}
	argparserMDFT.AddCommand(cmd)
}
