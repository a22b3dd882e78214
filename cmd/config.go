package main

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Local development defaults. They are rejected outside APP_ENV=local.
const (
	defaultPostgresPassword = "password"
	defaultJWTSecretKey     = "my_super_secret_key"
	defaultTMDBAPIKey       = ""
)

// config holds application, database, Redis, Kafka, catalog, logging, and JWT settings.
type config struct {
	AppEnv      string
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFilePath string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	TMDBAPIKey        string
	TMDBBaseURL       string
	TMDBImageBaseURL  string
	TMDBLanguage      string
	TMDBTimeoutSecond int
	TMDBMaxResults    int

	JWTSecretKey string
	JWTExpSecond int

	StatsTopN int
}

// parseConfig loads environment variables from a file and returns the service configuration.
// Variables already set in the environment take precedence over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppEnv = getEnv("APP_ENV", "local")
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFilePath = getEnv("APP_LOG_FILE", "app.log")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", defaultPostgresPassword)
	cfg.PGDB = getEnv("POSTGRES_DB", "movies")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config, empty brokers disable publishing
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "rating-events")

	// Catalog config
	cfg.TMDBAPIKey = getEnv("TMDB_API_KEY", defaultTMDBAPIKey)
	cfg.TMDBBaseURL = getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	cfg.TMDBImageBaseURL = getEnv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/w500")
	cfg.TMDBLanguage = getEnv("TMDB_LANGUAGE", "pt-BR")
	if cfg.TMDBTimeoutSecond, err = getInt("TMDB_TIMEOUT_SECOND", "5"); err != nil {
		return
	}
	if cfg.TMDBMaxResults, err = getInt("TMDB_MAX_RESULTS", "5"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", defaultJWTSecretKey)
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	if cfg.StatsTopN, err = getInt("STATS_TOP_N", "5"); err != nil {
		return
	}

	err = cfg.validate()
	return
}

// validate refuses development credentials outside the local environment.
func (c config) validate() error {
	if c.AppEnv == "local" {
		return nil
	}

	var errs []error
	if c.PGPassword == defaultPostgresPassword {
		errs = append(errs, errors.New("POSTGRES_PASSWORD must be set"))
	}
	if c.JWTSecretKey == defaultJWTSecretKey {
		errs = append(errs, errors.New("JWT_SECRET_KEY must be set"))
	}
	if c.TMDBAPIKey == defaultTMDBAPIKey {
		errs = append(errs, errors.New("TMDB_API_KEY must be set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("APP_ENV=%s: %w", c.AppEnv, errors.Join(errs...))
	}
	return nil
}

// postgresDSN builds the connection string for the pgx driver.
func (c config) postgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PGUser, c.PGPassword),
		Host:     net.JoinHostPort(c.PGHost, strconv.Itoa(c.PGPort)),
		Path:     "/" + c.PGDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
