package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/ui"
)

func newGenerateCmd() *cobra.Command {
	opts := &seedOptions{}
	var plain bool

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Render a palette from a seed color",
		Long: `Render a palette from a seed color.

Examples:
  shade generate                          # Seed and mode from shade.yaml
  shade generate --hex "#3b82f6"          # 11-step shade ramp
  shade generate --hsl 10,80,50 -m triadic
  shade generate --random --plain         # name<TAB>hex lines for scripts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.state(configFrom(cmd))
			if err != nil {
				return err
			}

			entries := s.Palette()
			describe(s).WithField("entries", len(entries)).Info("generated palette")

			out := cmd.OutOrStdout()
			if plain {
				for _, e := range entries {
					fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Hex)
				}
				return nil
			}

			fmt.Fprint(out, ui.PaletteView(s.LibraryName(), s.Mode(), entries))
			return nil
		},
	}

	opts.bind(cmd.Flags())
	cmd.Flags().BoolVar(&plain, "plain", false, "print name and hex without styling")

	return cmd
}
