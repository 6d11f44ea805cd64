package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/database"
	"expense-tracker-web/internal/middleware"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/repositories"
	"expense-tracker-web/internal/server"
	"expense-tracker-web/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const janitorInterval = time.Minute

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize credential store", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	breaker := services.NewCircuitBreaker(cfg.CircuitBreaker, func(state models.CircuitBreakerState) {
		logger.Warn("Finance API circuit breaker changed state", "state", state.String())
		metrics.RecordGauge("circuit_breaker_state", float64(state), map[string]string{"service": "finance_api"})
	})

	api := services.NewFinanceAPIService(&cfg.API, breaker, metrics, logger)
	sessions := services.NewSessionService(
		repositories.NewCredentialRepository(db.DB),
		services.NewSecretboxCipher(cfg.Session.EncryptionKey),
		metrics,
		logger,
	)
	views := services.NewViewService(cfg.Session.ViewCacheSize, cfg.Session.ViewTTL, logger)
	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst, metrics)

	e, err := server.New(server.Dependencies{
		Config:      cfg,
		Store:       db,
		Breaker:     breaker,
		Sessions:    sessions,
		Fetch:       services.NewFetchService(sessions, api, metrics, logger),
		Submit:      services.NewSubmitService(sessions, api, metrics, logger, cfg.Session.RedirectDelay),
		Views:       views,
		Tokens:      services.NewClientTokenService(&cfg.ClientToken, cfg.Session.CookieTTL),
		Metrics:     metrics,
		RateLimiter: rateLimiter,
		Gatherer:    prometheus.DefaultGatherer,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	janitor := server.NewJanitor(views, db, cfg.Session.CookieTTL, janitorInterval, metrics, logger)
	go janitor.Run(ctx)
	go rateLimiter.Run(ctx)

	srv := &http.Server{
		Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting expense tracker web server",
		"addr", srv.Addr,
		"environment", cfg.Server.Environment,
		"finance_api", cfg.API.BaseURL,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err, "addr", srv.Addr)
		os.Exit(1)
	}

	<-shutdownDone
	logger.Info("Server stopped gracefully")
}

// newLogger writes JSON in production and text elsewhere
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Server.LogLevel)}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
