package main

import (
	"context"
	"errors"
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

	"github.com/skosovan/data-analyzer/internal/facades"
	"github.com/skosovan/data-analyzer/internal/handlers"
	appjwt "github.com/skosovan/data-analyzer/internal/jwt"
	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/middlewares"
	"github.com/skosovan/data-analyzer/internal/repositories"
	"github.com/skosovan/data-analyzer/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment at startup.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	storageBackend string // "sheets" or "postgres"

	sheetsCredentialsFile string
	spreadsheetID         string
	accountsSheet         string
	uploadsSheet          string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBroker string
	kafkaTopic  string

	summarizerURL     string
	summarizerToken   string
	summarizerTimeout time.Duration

	jwtSecretKey string
	jwtExp       time.Duration

	datasetTTL time.Duration

	adminPassword string
}

// @title data-analyzer API
// @version 1.0.0
// @description CSV dashboard service: accounts on a remote table store, dataset upload/preview/filter, chart rendering, summarization and report export
// @host localhost:8080
// @BasePath /api/v1
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and validates the
// settings that have no usable default. Missing store credentials or a
// missing admin bootstrap password are fatal here, not at first use.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Record-store backend
	cfg.storageBackend = getEnv("STORAGE_BACKEND", "sheets")
	cfg.sheetsCredentialsFile = getEnv("SHEETS_CREDENTIALS_FILE", "")
	cfg.spreadsheetID = getEnv("SHEETS_SPREADSHEET_ID", "")
	cfg.accountsSheet = getEnv("SHEETS_ACCOUNTS_SHEET", "accounts")
	cfg.uploadsSheet = getEnv("SHEETS_UPLOADS_SHEET", "uploads")

	switch cfg.storageBackend {
	case "sheets":
		if cfg.sheetsCredentialsFile == "" || cfg.spreadsheetID == "" {
			return nil, errors.New("SHEETS_CREDENTIALS_FILE and SHEETS_SPREADSHEET_ID are required for the sheets backend")
		}
	case "postgres":
		// connection settings below have defaults
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.storageBackend)
	}

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	// Kafka config (optional: empty broker disables audit events)
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "uploads")

	// Summarizer config (optional: empty token disables summaries)
	cfg.summarizerURL = getEnv("SUMMARIZER_URL", "")
	cfg.summarizerToken = getEnv("SUMMARIZER_TOKEN", "")
	timeoutSecond, err := getEnvInt("SUMMARIZER_TIMEOUT_SECOND", 5)
	if err != nil {
		return nil, err
	}
	cfg.summarizerTimeout = time.Duration(timeoutSecond) * time.Second

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.jwtSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}
	jwtExpSecond, err := getEnvInt("JWT_EXP_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second

	// Dataset cache TTL
	datasetTTLSecond, err := getEnvInt("DATASET_TTL_SECOND", 1800)
	if err != nil {
		return nil, err
	}
	cfg.datasetTTL = time.Duration(datasetTTLSecond) * time.Second

	// Admin bootstrap
	cfg.adminPassword = getEnv("ADMIN_PASSWORD", "")
	if cfg.adminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD is required")
	}

	return cfg, nil
}

// run initializes the logger, stores, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect the record-store backend
	var accountTable, uploadTable repositories.Table
	switch cfg.storageBackend {
	case "sheets":
		logger.Log.Infof("Using spreadsheet %s as record store", cfg.spreadsheetID)
		var err error
		accountTable, err = facades.NewSheetsTable(ctx, cfg.sheetsCredentialsFile, cfg.spreadsheetID, cfg.accountsSheet)
		if err != nil {
			return err
		}
		uploadTable, err = facades.NewSheetsTable(ctx, cfg.sheetsCredentialsFile, cfg.spreadsheetID, cfg.uploadsSheet)
		if err != nil {
			return err
		}
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
		logger.Log.Infof("Connecting to PostgreSQL record store at %s:%d", cfg.pgHost, cfg.pgPort)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.pgMaxOpenConns)
		db.SetMaxIdleConns(cfg.pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("PostgreSQL ping failed: %w", err)
		}
		accountTable = repositories.NewPostgresTable(db, cfg.accountsSheet)
		uploadTable = repositories.NewPostgresTable(db, cfg.uploadsSheet)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for upload audit events
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing upload events to %s topic %s", cfg.kafkaBroker, cfg.kafkaTopic)
	}

	// Initialize JWT service
	tokens := appjwt.New(cfg.jwtSecretKey, cfg.jwtExp)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(accountTable)
	accountWriteRepo := repositories.NewAccountWriteRepository(accountTable)
	uploadLogRepo := repositories.NewUploadLogRepository(uploadTable)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.jwtExp)
	datasetRepo := repositories.NewDatasetCacheRepository(rdb, cfg.datasetTTL)

	// Initialize facades
	summarizer := facades.NewSummarizerFacade(cfg.summarizerURL, cfg.summarizerToken, cfg.summarizerTimeout)

	// Initialize services
	authService := services.NewAuthService(accountReadRepo, accountWriteRepo, tokens, sessionRepo)
	datasetService := services.NewDatasetService(datasetRepo)
	chartService := services.NewChartService(datasetRepo)
	reportService := services.NewReportService(datasetRepo, chartService, func() services.DeckBuilder {
		return facades.NewPDFDeck()
	})
	summaryService := services.NewSummaryService(summarizer)
	uploadLogService := services.NewUploadLogService(uploadLogRepo, uploadLogRepo, kafkaWriter)

	// Provision the admin account
	if err := authService.Bootstrap(ctx, cfg.adminPassword); err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokens, sessionRepo)
	adminMiddleware := middlewares.AdminMiddleware()

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/logout", handlers.NewLogoutHandler(authService))
			r.Post("/datasets", handlers.NewUploadHandler(datasetService, uploadLogService))
			r.Get("/datasets/{id}", handlers.NewPreviewHandler(datasetService))
			r.Get("/datasets/{id}/stats", handlers.NewStatsHandler(datasetService))
			r.Post("/datasets/{id}/filter", handlers.NewFilterHandler(datasetService))
			r.Post("/datasets/{id}/chart", handlers.NewChartHandler(chartService))
			r.Post("/datasets/{id}/report", handlers.NewReportHandler(reportService))
			r.Post("/summarize", handlers.NewSummarizeHandler(summaryService))

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(adminMiddleware)
				r.Get("/admin/users", handlers.NewListUsersHandler(authService))
				r.Delete("/admin/users/{username}", handlers.NewDeleteUserHandler(authService))
				r.Post("/admin/users/{username}/password", handlers.NewResetPasswordHandler(authService))
				r.Get("/admin/uploads", handlers.NewUploadHistoryHandler(uploadLogService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
