package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/liamo132/currently-server/internal/api"
	"github.com/liamo132/currently-server/internal/catalog"
	"github.com/liamo132/currently-server/internal/config"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/liamo132/currently-server/internal/metrics"
)

const defaultSigningKey = "wT0phFUusHZIrDhL9bUKPUhwaxKhpi/SaI6PtgB+MgU="

type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, strings.Split(value, ",")...)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var (
	addr           string
	dsn            string
	signingKey     string
	tokenTTL       time.Duration
	pricePerKWh    float64
	allowedOrigins stringSliceFlag
)

func main() {
	// .env is optional; real environments set variables directly
	godotenv.Load()

	defaultTTL, err := time.ParseDuration(envOr("CURRENTLY_TOKEN_TTL", "24h"))
	if err != nil {
		log.Fatal("parse CURRENTLY_TOKEN_TTL:", err)
	}
	defaultPrice, err := strconv.ParseFloat(envOr("CURRENTLY_PRICE_PER_KWH", "0.30"), 64)
	if err != nil {
		log.Fatal("parse CURRENTLY_PRICE_PER_KWH:", err)
	}

	flag.StringVar(&addr, "addr", envOr("CURRENTLY_ADDR", "localhost:8080"), "server address")
	flag.StringVar(&dsn, "dsn", envOr("CURRENTLY_DSN", "host=localhost user=postgres password=postgres dbname=postgres sslmode=disable"), "database connection string")
	flag.StringVar(&signingKey, "signing-key", envOr("CURRENTLY_SIGNING_KEY", defaultSigningKey), "base64 encoded signing key")
	flag.DurationVar(&tokenTTL, "token-ttl", defaultTTL, "bearer token lifetime")
	flag.Float64Var(&pricePerKWh, "price-per-kwh", defaultPrice, "electricity tariff used for cost estimates")
	flag.Var(&allowedOrigins, "allowed-origins", "comma-separated list of allowed origins for CORS")
	flag.Parse()

	logger := log.New(os.Stderr, "[currently] ", log.LstdFlags)

	cfg, err := config.NewConfig(addr, dsn, signingKey, tokenTTL, pricePerKWh, allowedOrigins)
	if err != nil {
		logger.Fatal("config:", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("load catalogue:", err)
	}
	logger.Printf("loaded %d appliance archetypes\n", len(cat.All()))

	dbConn, err := database.NewPgCurrentlyRepository(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Fatal("db close:", err)
		}
	}()

	if err := dbConn.Migrate(); err != nil {
		logger.Fatal("migrate:", err)
	}

	collector := metrics.NewCollector()

	srv := api.NewCurrentlyApp(logger, dbConn, cat, collector, cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Printf("received signal: %s\n", sig)
	case err := <-errCh:
		logger.Println("server:", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("HTTP server shutdown:", err)
	}

	logger.Println("shutdown complete")
}
