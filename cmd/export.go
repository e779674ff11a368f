package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/export"
	"github.com/mbourmaud/shade/internal/logger"
	"github.com/mbourmaud/shade/internal/ui"
)

func newExportCmd() *cobra.Command {
	opts := &seedOptions{}
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a palette as CSS, SCSS or JSON",
		Long: `Export a palette as CSS custom properties, SCSS variables or JSON.

Output goes to stdout unless --output is given or export.directory is set
in shade.yaml, in which case the file is named after the palette.

Examples:
  shade export --hex "#3b82f6" --name brand
  shade export -f scss -o _colors.scss
  shade export -f json -m triadic | jq .`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			s, err := opts.state(cfg)
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Export.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			content, err := export.Serialize(s.Palette(), f, s.Name())
			if err != nil {
				return err
			}

			path := exportPath(output, cfg.Export.Directory, s.Name(), f)
			if path == "" {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			if err := export.WriteFile(path, content); err != nil {
				return err
			}
			logger.WithField("format", f).Info("exported palette to %s", path)
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("Wrote "+path))
			return nil
		},
	}

	opts.bind(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "", "export format: css, scss, json (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout`)

	return cmd
}

// exportPath picks the destination file; an empty result means stdout
func exportPath(output, dir, name string, f export.Format) string {
	switch {
	case output == "-":
		return ""
	case output != "":
		return output
	case dir != "":
		return filepath.Join(dir, export.SanitizeName(name)+f.Extension())
	}
	return ""
}
