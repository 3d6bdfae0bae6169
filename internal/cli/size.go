package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/diagram"
	"github.com/gogpu/diagram/dsl"
)

// newSizeCmd creates the size command, which prints a diagram's
// natural (unscaled) footprint without rendering it.
func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <file.toml>",
		Short: "Print the natural size of a diagram definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dsl.DecodeFile(args[0])
			if err != nil {
				return err
			}
			sz := diagram.NaturalSize(d)
			fmt.Fprintf(cmd.OutOrStdout(), "%g x %g\n", sz.W, sz.H)
			return nil
		},
	}
}
