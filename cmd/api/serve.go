package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mds-studio/mds-backend/internal/config"
	"github.com/mds-studio/mds-backend/internal/credential"
	"github.com/mds-studio/mds-backend/internal/database"
	"github.com/mds-studio/mds-backend/internal/handler"
	"github.com/mds-studio/mds-backend/internal/logging"
	"github.com/mds-studio/mds-backend/internal/middleware"
	"github.com/mds-studio/mds-backend/internal/repo"
	"github.com/mds-studio/mds-backend/internal/service"
)

const shutdownGrace = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	logger := logging.New(cfg.Profile, cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := database.NewPool(ctx, database.PoolConfig{
		DatabaseURL: cfg.DB.ConnectionString(),
		MaxConns:    cfg.DB.MaxConns,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("database connection established", "max_conns", cfg.DB.MaxConns)

	if cfg.MigrateOnStart {
		results, err := database.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "count", len(results))
	}

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := database.RegisterPoolMetrics(reg, pool); err != nil {
		return err
	}

	// --- Services ---------------------------------------------------------
	hasher, err := credential.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}
	catalog := service.NewCatalogService(repo.NewServiceRepo(pool), logger)
	employees := service.NewEmployeeService(repo.NewEmployeeRepo(pool), hasher, logger)
	api := handler.NewServer(catalog, employees, pool, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(cfg, logger, reg, api),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.RequestTimeout,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return serve(ctx, srv, logger)
}

// newRouter applies the middleware stack around the API routes:
// RequestID, RealIP, request logging, panic recovery, metrics, timeout, CORS
// and the body cap. /metrics is served outside the timeout and body cap.
// Recovery, timeout and the body cap answer with the JSON error envelope.
// A handler that already answered when the deadline passes (GET /services
// returns [] on a store fault) keeps its response; no 504 follows it.
func newRouter(cfg config.Config, logger *slog.Logger, reg *prometheus.Registry, api *handler.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewRecoverer(logger))

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewMetrics(reg).Handler)
		r.Use(middleware.NewTimeoutHandler(cfg.Server.RequestTimeout))
		r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
		r.Use(middleware.NewMaxBodySizeHandler(cfg.Server.MaxBodyBytes))
		r.Mount("/", api.Routes())
	})
	return r
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// up to shutdownGrace.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
