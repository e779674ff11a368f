package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/config"
	"github.com/mbourmaud/shade/internal/logger"
	"github.com/mbourmaud/shade/internal/ui"
)

// Build information, set with -ldflags at release time
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configFile string
	logLevel   string
	logJSON    bool
	envFile    string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "shade",
		Short: "🎨 shade - color palette generator",
		Long: `shade derives coherent color palettes from a single seed color.

Core Commands:
  generate         Render a palette (shades, complementary, analogous, triadic)
  convert <color>  Convert between hex and h,s,l
  export           Print or write a palette as CSS, SCSS or JSON
  interactive      Edit a palette step by step

Library:
  library save     Store the current palette in Redis
  library list     List saved palettes

Setup:
  config init      Write a shade.yaml with defaults
  doctor           Check configuration and Redis`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default ./"+config.FileName+")")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with SHADE_* overrides")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")

	cmd.AddCommand(
		newGenerateCmd(),
		newConvertCmd(),
		newExportCmd(),
		newInteractiveCmd(),
		newLibraryCmd(),
		newConfigCmd(),
		newDoctorCmd(),
		newVersionCmd(),
	)

	return cmd
}

// lenientConfig marks commands that still run on defaults when an explicit
// --config file cannot be loaded (they inspect or rewrite that file)
const lenientConfig = "shade/lenient-config"

// loadConfig reads --config when given; only the implicit ./shade.yaml may be
// missing or broken without an error
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configFile == "" {
		return config.LoadOrDefault(""), nil
	}
	return config.Load(o.configFile)
}

// setup loads configuration into the command context and configures logging
func (o *globalOptions) setup(cmd *cobra.Command) error {
	cfg, loadErr := o.loadConfig()
	if loadErr != nil {
		if cmd.Annotations[lenientConfig] == "" {
			return fmt.Errorf("config %s: %w", o.configFile, loadErr)
		}
		cfg = config.Default()
	}
	cfg.LoadEnv(o.envFile)

	level := cfg.Logging.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	if err := logger.Configure(level, cfg.Logging.JSON || o.logJSON); err != nil {
		return err
	}

	if loadErr != nil {
		logger.Warn("%v; using defaults", loadErr)
	}
	logger.WithField("command", cmd.CommandPath()).Debug("configuration loaded from %s", configSource(o.configFile))
	setConfig(cmd, cfg)
	return nil
}

func configSource(path string) string {
	if path == "" {
		path = config.FileName
	}
	if _, err := os.Stat(path); err != nil {
		return "defaults"
	}
	return path
}

// Execute runs the root command and renders any error
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.ErrorBox("", err.Error()))
	}
	return err
}
