package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"NUTRINO_BACK-END/internal/config"
	"NUTRINO_BACK-END/internal/logger"
	"NUTRINO_BACK-END/internal/store/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withPool(cmd.Context(), func(cfg *config.Config, pool *pgxpool.Pool) error {
					n, err := postgres.MigrateUp(pool)
					if err != nil {
						return err
					}
					log := logger.New(cfg.Log)
					log.Info().Int("applied", n).Msg("migrations applied")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
					statuses, err := postgres.MigrationStatuses(pool)
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "MIGRATION\tAPPLIED AT")
					for _, s := range statuses {
						applied := "pending"
						if s.AppliedAt != nil {
							applied = s.AppliedAt.Format(time.RFC3339)
						}
						fmt.Fprintf(tw, "%s\t%s\n", s.ID, applied)
					}
					return tw.Flush()
				})
			},
		},
	)
	return cmd
}

func withPool(ctx context.Context, fn func(*config.Config, *pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate needs DB_DRIVER=%s, the sqlite store migrates itself", config.DriverPostgres)
	}

	pool, err := postgres.NewPool(ctx, cfg.GetDSN(), cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(cfg, pool)
}
