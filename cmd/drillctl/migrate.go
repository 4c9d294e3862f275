package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
)

func newMigrateCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(g, func(cmd *cobra.Command, e *env, m *postgres.Migrator) error {
				n, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				e.logger.Info("migrations applied", slog.Int("count", n))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(g, func(cmd *cobra.Command, e *env, m *postgres.Migrator) error {
				v, err := m.Down(cmd.Context())
				if err != nil {
					return err
				}
				e.logger.Info("migration rolled back", slog.Int64("version", v))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withMigrator(g, func(cmd *cobra.Command, _ *env, m *postgres.Migrator) error {
				list, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
				for _, s := range list {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Path)
				}
				return tw.Flush()
			}),
		},
	)
	return cmd
}

func withMigrator(g *globals, run func(cmd *cobra.Command, e *env, m *postgres.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		e, err := g.loadEnv(cmd.Context(), false)
		if err != nil {
			return err
		}
		m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer m.Close()
		return run(cmd, e, m)
	}
}
