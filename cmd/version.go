package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/ui"
)

// GetVersionString returns the formatted version line
func GetVersionString() string {
	return fmt.Sprintf("%s %s %s",
		ui.StyleHeader.Render("shade "+Version),
		ui.StyleDim.Render("("+GitCommit+")"),
		ui.StyleDim.Render("built "+BuildDate),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), GetVersionString())
		},
	}
}
