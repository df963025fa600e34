package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cge-lab/fdeta/pkg/cliutil"
	"github.com/cge-lab/fdeta/pkg/cube"
)

type pointsFlag [3]int

var _ pflag.Value = (*pointsFlag)(nil)

func (p *pointsFlag) String() string {
	return fmt.Sprintf("%d,%d,%d", p[0], p[1], p[2])
}

func (p *pointsFlag) Set(str string) error {
	parts := strings.Split(str, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected NX,NY,NZ, got %q", str)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("negative point count %d", n)
		}
		p[i] = n
	}
	return nil
}

func (p *pointsFlag) Type() string {
	return "NX,NY,NZ"
}

func init() {
	var flagPoints pointsFlag
	cmd := &cobra.Command{
		Use:   "reduce [flags] IN_CUBEFILE >OUT_GRIDFILE",
		Short: "Decimate a cube file's grid",
		Long: "Take off a set amount of evenly spaced points in each direction to make " +
			"a smaller grid, and write the retained points as \"X Y Z VALUE\" rows " +
			"(the retained points are no longer evenly spaced, so the output is a " +
			"point cloud rather than a cube file)." +
			"\n\n" +
			"Each count must exactly divide the number of grid points along its axis; " +
			"pass 0 to leave an axis alone.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			c, err := cube.ReadFile(args[0])
			if err != nil {
				return err
			}
			points, values, err := c.Reduce([3]int(flagPoints))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			for i, p := range points {
				fmt.Fprintf(w, "%15.10f %15.10f %15.10f %13.5E\n", p[0], p[1], p[2], values[i])
			}
			return w.Flush()
		},
	}
	cmd.Flags().Var(&flagPoints, "points",
		"Take off `NX,NY,NZ` points along the x, y, and z axes")
	if err := cmd.MarkFlagRequired("points"); err != nil {
		panic(err)
	}
	argparserCube.AddCommand(cmd)
}
