package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/preflight"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, export directory and palette library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			ping := func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, redisTimeout)
				defer cancel()
				client, err := connectRedis(ctx, cfg.Redis)
				if err != nil {
					return err
				}
				return client.Close()
			}

			results := preflight.RunAllChecks(cmd.Context(), cfg, configFile(cmd), ping)
			if !preflight.PrintResults(cmd.OutOrStdout(), results) {
				return fmt.Errorf("some checks failed")
			}
			return nil
		},
	}
}
