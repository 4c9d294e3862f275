package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/app"
	"github.com/heartmarshall/norsk-drill/internal/config"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "drillctl",
		Short:         "Operate a norsk-drill installation",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	root.AddCommand(
		newMigrateCmd(g),
		newImportCmd(g),
		newStatsCmd(g),
		newHashPasswordCmd(),
	)
	return root
}

// env is what the database commands share: loaded config, logger and pool.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func (e *env) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

func (g *globals) loadEnv(ctx context.Context, withPool bool) (*env, error) {
	path := g.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: app.NewLogger(cfg.Log)}
	if !withPool {
		return e, nil
	}
	e.pool, err = postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return e, nil
}
