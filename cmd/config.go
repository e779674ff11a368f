package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mbourmaud/shade/internal/config"
	"github.com/mbourmaud/shade/internal/ui"
)

// confirm asks before destructive changes; tests replace it
var confirm = ui.PromptConfirm

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or manage configuration",
		Long: `View and manage shade configuration.

Examples:
  shade config show        # Display the effective configuration
  shade config validate    # Validate shade.yaml
  shade config init        # Write a shade.yaml with defaults
  shade config path        # Show config file paths`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigValidateCmd(),
		newConfigInitCmd(),
		newConfigPathCmd(),
	)
	return cmd
}

// configFile returns the --config path, or shade.yaml in the working directory
func configFile(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return config.FileName
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *configFrom(cmd)
			if cfg.Redis.Password != "" {
				cfg.Redis.Password = "********"
			}

			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.Header("⚙️", "Current configuration"))
			fmt.Fprintln(out)
			fmt.Fprintln(out, string(data))

			path := configFile(cmd)
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintln(out, ui.StyleDim.Render("Source: "+path))
			} else {
				fmt.Fprintln(out, ui.StyleDim.Render("Source: defaults (no "+path+" found)"))
			}
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{lenientConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := configFile(cmd)

			if _, err := os.Stat(path); err != nil {
				fmt.Fprintln(out, ui.Warning(path+": not found (using defaults)"))
				return nil
			}

			cfg, err := config.Load(path)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				fmt.Fprintln(out, ui.Error(fmt.Sprintf("%s: INVALID - %s", path, err)))
				return fmt.Errorf("configuration validation failed")
			}

			fmt.Fprintln(out, ui.Success(path+": OK"))
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a configuration file with default values",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{lenientConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFile(cmd)
			if _, err := os.Stat(path); err == nil && !force {
				ok, err := confirm(fmt.Sprintf("%s exists. Overwrite it?", path), false)
				if err != nil || !ok {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Success("Created "+path))
			fmt.Fprint(out, ui.NextSteps([]ui.Step{
				{Command: "shade doctor", Description: "Check Redis and the export directory"},
				{Command: "shade generate", Description: "Render the configured palette"},
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Show configuration file paths",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{lenientConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			path := configFile(cmd)
			if !filepath.IsAbs(path) {
				path = filepath.Join(cwd, path)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration file paths:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Working directory: %s\n", cwd)
			fmt.Fprintf(out, "  %-18s %s\n", config.FileName+":", path)
			fmt.Fprintf(out, "  %-18s %s\n", ".env:", filepath.Join(cwd, ".env"))
			return nil
		},
	}
}
