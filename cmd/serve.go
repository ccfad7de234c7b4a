package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"NUTRINO_BACK-END/internal/config"
	"NUTRINO_BACK-END/internal/handlers"
	"NUTRINO_BACK-END/internal/logger"
	"NUTRINO_BACK-END/internal/middleware"
	"NUTRINO_BACK-END/internal/routes"
	"NUTRINO_BACK-END/internal/services"
	"NUTRINO_BACK-END/internal/store"
	"NUTRINO_BACK-END/internal/store/postgres"
	"NUTRINO_BACK-END/internal/store/sqlite"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	users := services.NewUserService(st)
	h := routes.Handlers{
		Health:       handlers.NewHealthHandler(st),
		Webhook:      handlers.NewWebhookHandler(services.NewProvisioningService(st, cfg.Webhook.SigningSecret, log)),
		HealthStatus: handlers.NewHealthStatusHandler(services.NewHealthProfileService(st), users),
		Users:        handlers.NewUserHandler(users),
	}
	mux := routes.SetupRoutes(h, cfg.Auth)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           buildHandler(mux, log, cfg.CORS),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("db_driver", cfg.Database.Driver).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

// buildHandler wraps mux in the middleware chain. RequestID is outermost so
// Recovery and Logger both see the id.
func buildHandler(mux http.Handler, log zerolog.Logger, corsCfg config.CORSConfig) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		AllowCredentials: corsCfg.AllowCredentials,
	})
	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.Logger(log),
		c.Handler,
	)
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		s, err := sqlite.OpenFile(cfg.Database.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Database.SQLitePath).Msg("sqlite store ready")
		return s, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg.GetDSN(), cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			n, err := postgres.MigrateUp(pool)
			if err != nil {
				pool.Close()
				return nil, err
			}
			log.Info().Int("applied", n).Msg("migrations applied")
		}
		log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("postgres store ready")
		return postgres.New(pool, cfg.Database.QueryTimeout), nil
	}
}
