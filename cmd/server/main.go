package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"confighub/internal/auth"
	"confighub/internal/config"
	"confighub/internal/handler"
	"confighub/internal/metrics"
	"confighub/internal/middleware"
	"confighub/internal/service/configsys"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	if err := run(config.Load()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// run wires the server and blocks until a shutdown signal. Errors are
// returned rather than fatal so deferred closers always run.
func run(cfg *config.Config) error {
	logger, logCloser, err := config.NewLogger(cfg, os.Stdout)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"seed_file", cfg.SeedFile,
	)

	// Load seed data
	var seed *configsys.Seed
	if cfg.SeedFile != "" {
		seed, err = configsys.LoadSeedFile(cfg.SeedFile)
	} else {
		seed, err = configsys.DefaultSeed()
	}
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	m := metrics.Global()
	store, err := configsys.NewStore(seed, logger,
		configsys.WithHistoryLimit(cfg.HistoryLimit),
		configsys.WithActivityLimit(cfg.ActivityLimit),
		configsys.WithMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("create entity store: %w", err)
	}

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, store, logger)
	mux.Handle("GET "+cfg.MetricsPath, promhttp.Handler())

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Metrics → Recovery → Auth → Routes
	switch {
	case cfg.AuthJWKSURL != "":
		verifier, err := auth.NewJWKSVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			return fmt.Errorf("create JWT verifier: %w", err)
		}
		defer verifier.Close()
		h = middleware.AuthMiddleware(verifier, logger, "/health", cfg.MetricsPath)(h)
	case cfg.IsProduction():
		return errors.New("AUTH_JWKS_URL is required in production")
	default:
		logger.Warn("AUTH DISABLED: no AUTH_JWKS_URL configured (dev only)")
	}
	h = middleware.Recovery(logger)(h)
	h = middleware.Metrics(m)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "metrics_path", cfg.MetricsPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
