package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/colorspace"
	"github.com/mbourmaud/shade/internal/ui"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color between hex, RGB and HSL",
		Long: `Convert a color between hex, RGB and HSL.

The argument is either a hex color (#RRGGBB, the # is optional) or an
h,s,l triple.

Examples:
  shade convert "#3b82f6"
  shade convert 217,91,60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if hex, ok := colorspace.Normalize(args[0]); ok {
				fmt.Fprintln(out, ui.ColorCard(hex))
				return nil
			}

			hsl, err := ui.ParseHSL(args[0])
			if err != nil {
				return fmt.Errorf("%q is neither a 6-digit hex color nor an h,s,l triple", args[0])
			}
			fmt.Fprintln(out, ui.ColorCardHSL(hsl))
			return nil
		},
	}
}
