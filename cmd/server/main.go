package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"shortlink/internal/database"
	"shortlink/internal/geo"
	"shortlink/internal/queue"
	"shortlink/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	slog.Info("Starting shortlink service...", "port", os.Getenv("PORT"))

	if err := godotenv.Load(); err != nil {
		slog.Warn("Error loading .env file", "error", err)
	}

	postgresURL := os.Getenv("DB_URL")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	geoipPath := os.Getenv("GEOIP_DB_PATH")
	rootDomain := os.Getenv("ROOT_DOMAIN")
	port := os.Getenv("PORT")

	if postgresURL == "" ||
		redisAddr == "" ||
		geoipPath == "" ||
		rootDomain == "" ||
		port == "" {
		slog.Error("Missing required environment variables")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectPostgres(ctx, postgresURL)
	if err != nil {
		slog.Error("Could not connect to Postgres", "error", err)
		return
	}
	defer db.Close()

	clickQueue, err := queue.ConnectRedis(redisAddr, redisPassword, queue.DefaultClickQueue)
	if err != nil {
		slog.Error("Could not connect to Redis", "error", err)
		return
	}
	defer clickQueue.Close()

	locator, err := geo.Open(geoipPath)
	if err != nil {
		slog.Error("Could not open GeoIP database", "error", err)
		return
	}
	defer locator.Close()

	entitlements := service.NewSubscriptionEntitlements(db)
	resolver := service.NewResolver(db, rootDomain)
	ingestor := service.NewIngestor(db, clickQueue)
	links := service.NewLinkService(db, entitlements, rootDomain)
	analytics := service.NewAnalyticsService(db, db)

	aggregator := service.NewAggregator(clickQueue, db)
	aggregator.Start(ctx)

	sweeper := service.NewSweeper(db, db)
	sweeper.Start(ctx)

	server := service.NewServer(port, resolver, ingestor, links, analytics, locator, service.HeaderAuth{})
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start(ctx) }()

	slog.Info("Service is up and running!")

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server stopped with error", "error", err)
			stop()
		}
	}

	slog.Info("Shutting down gracefully...")
}
