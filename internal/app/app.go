package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/norsk-drill/internal/adapter/postgres"
	"github.com/heartmarshall/norsk-drill/internal/config"
)

// Run is the application entry point. It loads configuration, connects to
// the database, optionally applies migrations and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("personal_mode", cfg.Admin.PersonalMode),
		slog.Bool("login_enabled", cfg.Admin.LoginEnabled()),
	)

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := NewServices(cfg, pool, logger)
	handler, limiter := NewHandler(cfg, svc, pool, logger)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func migrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Int("count", n))
	return nil
}
