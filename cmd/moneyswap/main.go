package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/moneyswap/internal/adapters/cache"
	"github.com/SscSPs/moneyswap/internal/adapters/rateapi"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	"github.com/SscSPs/moneyswap/internal/core/services"
	"github.com/SscSPs/moneyswap/internal/handlers"
	"github.com/SscSPs/moneyswap/internal/middleware"
	"github.com/SscSPs/moneyswap/internal/platform/config"
	"github.com/SscSPs/moneyswap/internal/platform/metrics"
	"github.com/SscSPs/moneyswap/internal/repositories/database/pgsql"
	"github.com/SscSPs/moneyswap/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// @title MoneySwap API
// @version 1.0
// @description Currency conversion with live rates, offline fallback and conversion history.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	rateSlots, closeSlots, err := newRateSlotStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSlots()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	conversionMetrics := metrics.NewConversionMetrics(registry)

	provider := rateapi.NewClient(
		cfg.LatestRatesURL,
		cfg.HistoryRatesURL,
		cfg.RateAPITimeout,
		rateapi.WithMetrics(conversionMetrics),
	)

	repos := pgsql.NewRepositoryProvider(dbPool, rateSlots)
	container := services.NewServiceContainer(cfg, repos, provider, conversionMetrics)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, container, registry); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)

		// Let in-flight cache and history writes land before the pool closes.
		container.Session.CloseAllSessions(shutdownCtx)
		return err
	})

	return g.Wait()
}

// newRateSlotStore picks Redis when configured and process memory otherwise.
func newRateSlotStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RateSlotStore, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, fallback rates are kept in memory")
		return cache.NewMemoryStore(), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected to Redis", slog.String("addr", cfg.RedisAddr))

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing Redis client", slog.String("error", err.Error()))
		}
	}
	return cache.NewRedisStore(client, ""), closeFn, nil
}
