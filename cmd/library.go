package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/config"
	"github.com/mbourmaud/shade/internal/export"
	"github.com/mbourmaud/shade/internal/logger"
	"github.com/mbourmaud/shade/internal/palette"
	"github.com/mbourmaud/shade/internal/store"
	"github.com/mbourmaud/shade/internal/ui"
)

const redisTimeout = 5 * time.Second

// connectRedis is replaced in tests with a redismock client
var connectRedis = func(ctx context.Context, rc config.RedisConfig) (*redis.Client, error) {
	return store.Connect(ctx, rc.Addr, rc.Password, rc.DB)
}

// openStore connects to the configured library. The returned func closes the client.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, func(), error) {
	client, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return store.New(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
}

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "Manage saved palettes",
		Long: `Save, list, show and delete palettes kept in Redis.

Examples:
  shade library save --hex "#3b82f6" --name "Brand Blue"
  shade library list
  shade library show <id> -f css
  shade library delete <id>`,
	}

	cmd.AddCommand(
		newLibrarySaveCmd(),
		newLibraryListCmd(),
		newLibraryShowCmd(),
		newLibraryDeleteCmd(),
	)
	return cmd
}

// savePalette stores the state's current palette in the library
func savePalette(ctx context.Context, cfg *config.Config, s *palette.State) (store.Palette, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	st, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return store.Palette{}, err
	}
	defer closeFn()

	return st.Save(ctx, store.Palette{
		Name:   s.LibraryName(),
		Mode:   s.Mode(),
		Seed:   s.Hex(),
		Colors: s.Palette(),
	})
}

func newLibrarySaveCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a palette to the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			s, err := opts.state(cfg)
			if err != nil {
				return err
			}

			p, err := savePalette(cmd.Context(), cfg, s)
			if err != nil {
				return err
			}

			logger.WithField("id", p.ID).Info("saved palette %q", p.Name)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Saved %s as %s", p.Name, p.ID)))
			return nil
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}

func newLibraryListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved palettes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), redisTimeout)
			defer cancel()

			st, closeFn, err := openStore(ctx, configFrom(cmd))
			if err != nil {
				return err
			}
			defer closeFn()

			palettes, err := st.List(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(palettes) == 0 {
				fmt.Fprintln(out, ui.Warning("The library is empty. Save one with: shade library save"))
				return nil
			}

			rows := make([][]string, 0, len(palettes))
			for _, p := range palettes {
				rows = append(rows, []string{
					p.ID,
					p.Name,
					string(p.Mode),
					ui.Swatch(p.Seed, p.Seed),
					p.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprint(out, ui.Header("📚", "Palette library"))
			fmt.Fprintln(out)
			fmt.Fprint(out, ui.Table([]string{"ID", "Name", "Mode", "Seed", "Saved"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of palettes")
	return cmd
}

func newLibraryShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved palette, or export it with --format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), redisTimeout)
			defer cancel()

			st, closeFn, err := openStore(ctx, configFrom(cmd))
			if err != nil {
				return err
			}
			defer closeFn()

			p, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "" {
				fmt.Fprint(out, ui.PaletteView(p.Name, p.Mode, p.Colors))
				return nil
			}

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			content, err := export.Serialize(p.Colors, f, p.Name)
			if err != nil {
				return err
			}
			fmt.Fprint(out, content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "export format instead of the swatch view")
	return cmd
}

func newLibraryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete saved palettes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), redisTimeout)
			defer cancel()

			st, closeFn, err := openStore(ctx, configFrom(cmd))
			if err != nil {
				return err
			}
			defer closeFn()

			var missing []string
			for _, id := range args {
				err := st.Delete(ctx, id)
				switch {
				case errors.Is(err, store.ErrNotFound):
					missing = append(missing, id)
				case err != nil:
					return err
				default:
					fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Deleted "+id))
				}
			}

			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", store.ErrNotFound, strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
