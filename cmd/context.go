package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/config"
)

type configKey struct{}

func setConfig(cmd *cobra.Command, cfg *config.Config) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
}

// configFrom returns the configuration loaded by the root command
func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
