package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/ctfground/ctf-backend/internal/handlers"
	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/middlewares"
	"github.com/ctfground/ctf-backend/internal/repositories"
	"github.com/ctfground/ctf-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title ctf-backend API
// @version 1.0.0
// @description Backend for a CTF scoring platform: registration, challenge catalog, flag submission, leaderboard
// @host localhost:8000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dbURL, dbName, dbMaxOpenConns, dbMaxIdleConns,
		redisAddr, redisPassword, redisDB, redisChannel,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbURL, dbName, dbMaxOpenConns, dbMaxIdleConns,
		redisAddr, redisPassword, redisDB, redisChannel,
		kafkaAddr, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbURL, dbName string, dbMaxOpenConns, dbMaxIdleConns int,
	redisAddr, redisPassword string, redisDB int, redisChannel string,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "0.0.0.0")
	appPort = getEnv("APP_PORT", "8000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Database config. An empty DATABASE_URL leaves the store unconfigured:
	// the service still starts, data endpoints answer 500.
	dbURL = getEnv("DATABASE_URL", "")
	dbName = getEnv("DATABASE_NAME", "")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DATABASE_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DATABASE_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (solve feed). Empty addr disables announcements.
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisChannel = getEnv("REDIS_SOLVE_CHANNEL", "ctf.solves")

	// Kafka config (submission audit events). Empty addr disables publishing.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "ctf.submissions")

	return
}

// run initializes the logger, database, Redis, and Kafka, wires the
// repositories, services, and handlers, and serves HTTP until a shutdown
// signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbURL, dbName string, dbMaxOpenConns, dbMaxIdleConns int,
	redisAddr, redisPassword string, redisDB int, redisChannel string,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL. The store is optional at startup: data
	// endpoints report "Database not configured" while db stays nil.
	var db *sqlx.DB
	if dbURL == "" {
		logger.Log.Warn("DATABASE_URL not set, starting without a store")
	} else {
		var err error
		db, err = sqlx.ConnectContext(ctx, "pgx", dbURL)
		if err != nil {
			logger.Log.Errorw("PostgreSQL connection failed, starting without a store", "error", err)
			db = nil
		} else {
			defer db.Close()
			db.SetMaxOpenConns(dbMaxOpenConns)
			db.SetMaxIdleConns(dbMaxIdleConns)
			logger.Log.Infof("Connected to PostgreSQL database %s", dbName)
		}
	}

	// Connect to Redis (optional solve feed)
	var rdb *redis.Client
	if redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection failed, solve feed disabled", "error", err)
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	// Kafka writer (optional submission audit events)
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	challengeReadRepo := repositories.NewChallengeReadRepository(db)
	challengeWriteRepo := repositories.NewChallengeWriteRepository(db)
	submissionRepo := repositories.NewSubmissionWriteRepository(db)
	solveFeedRepo := repositories.NewSolveFeedRepository(rdb, redisChannel)
	statusRepo := repositories.NewStatusRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	catalogService := services.NewCatalogService(challengeReadRepo)
	scoringService := services.NewScoringService(
		userReadRepo, userWriteRepo, challengeReadRepo, submissionRepo,
		solveFeedRepo, kafkaWriter,
	)
	leaderboardService := services.NewLeaderboardService(userReadRepo)
	seedService := services.NewSeedService(challengeReadRepo, challengeWriteRepo)
	statusService := services.NewStatusService(statusRepo,
		os.Getenv("DATABASE_URL") != "", os.Getenv("DATABASE_NAME") != "")

	// Ensure schema and seed demo challenges on first run
	if db != nil {
		if err := repositories.EnsureSchema(ctx, db); err != nil {
			return err
		}
		if err := seedService.Seed(ctx); err != nil {
			return err
		}
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware())

	r.Post("/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/challenges", handlers.NewListChallengesHandler(catalogService))
	r.Get("/challenges/{challengeID}", handlers.NewGetChallengeHandler(catalogService))
	r.Post("/submit", handlers.NewSubmitHandler(scoringService))
	r.Get("/stats", handlers.NewStatsHandler(leaderboardService))
	r.Get("/", handlers.NewRootHandler())
	r.Get("/test", handlers.NewStatusHandler(statusService))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
