package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dex_gateway/internal/client"
	"dex_gateway/internal/config"
	"dex_gateway/internal/infrastructure/restapi"
	"dex_gateway/internal/pkg/utils"
	"dex_gateway/internal/service"
	"dex_gateway/pkg/metrics"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

func main() {
	// logrus covers the window before the config is loaded; zap takes over
	// for everything request-scoped.
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// Bridge stdlib slog users onto the same zap core.
	slogHandler := zapslog.NewHandler(zapLogger.Core())
	slog.SetDefault(slog.New(slogHandler))

	// Load configuration
	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Warnf("Invalid log level in config: %s. Defaulting to Info.", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(file)
		} else {
			log.Infof("Failed to log to file, using default stdout: %v", err)
		}
	}

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	// Initialize Prometheus metrics
	metrics.MustRegisterMetrics()

	// Initialize outbound clients
	priceFeedTimeout := time.Duration(cfg.PriceFeed.RequestTimeoutMillis) * time.Millisecond
	priceFeedClient := client.NewPriceFeedClient(
		cfg.PriceFeed.BaseURL,
		priceFeedTimeout,
		cfg.PriceFeed.RateLimitPerSecond,
		cfg.PriceFeed.RateLimitBurst,
		zapLogger,
	)
	zapLogger.Info("Price feed client initialized")

	aggregatorTimeout := time.Duration(cfg.Aggregator.RequestTimeoutMillis) * time.Millisecond
	subgraphClient := client.NewBinSubgraphClient(cfg.Aggregator.JoeSubgraphURL, aggregatorTimeout, zapLogger)
	backendClient := client.NewDEXBackendClient(cfg.Aggregator.JoeAPIBaseURL, aggregatorTimeout, zapLogger)
	poolsClient := client.NewPoolsAPIClient(cfg.Aggregator.FlamingoAPIBaseURL, aggregatorTimeout, zapLogger)

	geoClient := client.NewGeoIPClient(
		cfg.Geo.BaseURL,
		time.Duration(cfg.Geo.RequestTimeoutMillis)*time.Millisecond,
		time.Duration(cfg.Geo.CacheTTLMinutes)*time.Minute,
		zapLogger,
	)

	// Initialize services
	priceService := service.NewPriceService(priceFeedClient, zapLogger)
	quoteService := service.NewQuoteService(priceService, zapLogger)
	positionService := service.NewPositionService(subgraphClient, backendClient, poolsClient, zapLogger)
	zapLogger.Info("Services initialized")

	// Advisory price warmup: surfaces feed/registry misconfiguration in the
	// logs right away. Snapshots are still fetched fresh per request.
	if cfg.Warmup.Enabled {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Warmup.TimeoutSeconds)*time.Second)
			defer cancel()
			snapshots := priceService.SnapshotAll(ctx)
			zapLogger.Info("Price warmup completed", zap.Int("chains", len(snapshots)))
		}()
	}

	// Initialize handlers and router
	marketHandler := restapi.NewMarketHandler(priceService, quoteService)
	positionHandler := restapi.NewPositionHandler(positionService)
	geoHandler := restapi.NewGeoHandler(geoClient, zapLogger)
	registryHandler := restapi.NewRegistryHandler()

	router := restapi.SetupRouter(marketHandler, positionHandler, geoHandler, registryHandler, zapLogger)

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
