package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-movie-ledger/docs"
	"github.com/sbilibin2017/gw-movie-ledger/internal/facades"
	"github.com/sbilibin2017/gw-movie-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-movie-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
	"github.com/sbilibin2017/gw-movie-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-movie-ledger/internal/services"
	"github.com/sbilibin2017/gw-movie-ledger/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-movie-ledger API
// @version 1.0.0
// @description Personal movie ledger: search the movie catalog, rate what you watched, review your statistics
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, catalog client, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFilePath); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.postgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Info("Kafka publishing disabled")
	}

	// Catalog client
	catalog, err := facades.NewCatalogHTTPFacade(cfg.TMDBBaseURL, cfg.TMDBAPIKey,
		facades.WithImageBaseURL(cfg.TMDBImageBaseURL),
		facades.WithLanguage(cfg.TMDBLanguage),
		facades.WithTimeout(time.Duration(cfg.TMDBTimeoutSecond)*time.Second),
		facades.WithMaxResults(cfg.TMDBMaxResults),
	)
	if err != nil {
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	ratingReadRepo := repositories.NewRatingReadRepository(db)
	ratingWriteRepo := repositories.NewRatingWriteRepository(db, middlewares.GetTxFromContext)
	blacklistRepo := repositories.NewTokenBlacklistRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, blacklistRepo)
	ledgerService := services.NewLedgerService(
		ratingWriteRepo,
		ratingReadRepo,
		kafkaWriter,
		cfg.StatsTopN,
		services.WithAfterCommit(middlewares.AfterCommit),
	)
	searchService := services.NewSearchService(catalog, ledgerService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, blacklistRepo))

		r.Post("/logout", handlers.NewLogoutHandler(authService, tokens))
		r.Get("/movies/search", handlers.NewSearchHandler(searchService, tokens))
		r.With(middlewares.TxMiddleware(db)).Put("/ratings", handlers.NewSaveRatingHandler(ledgerService, tokens))
		r.Get("/ratings", handlers.NewListRatingsHandler(ledgerService, tokens))
		r.Get("/ratings/years", handlers.NewWatchedYearsHandler(ledgerService, tokens))
		r.Delete("/ratings/{id}", handlers.NewDeleteRatingHandler(ledgerService, tokens))
		r.Get("/stats", handlers.NewStatsHandler(ledgerService, tokens))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
