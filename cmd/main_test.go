package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-03-01"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "version v1.0.0")
	assert.Contains(t, output, "commit abcd1234")
	assert.Contains(t, output, "build 2026-03-01")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	// sheets is the default backend and requires credentials; use postgres
	// to exercise the defaults.
	os.Setenv("STORAGE_BACKEND", "postgres")
	os.Setenv("JWT_SECRET_KEY", "testsecret")
	os.Setenv("ADMIN_PASSWORD", "changeme")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)

	assert.Equal(t, "postgres", cfg.storageBackend)
	assert.Equal(t, "accounts", cfg.accountsSheet)
	assert.Equal(t, "uploads", cfg.uploadsSheet)

	assert.Equal(t, "localhost", cfg.pgHost)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 8, cfg.pgMaxIdleConns)

	assert.Equal(t, "localhost", cfg.redisHost)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, 10, cfg.redisPoolSize)
	assert.Equal(t, 2, cfg.redisMinIdleConns)

	assert.Empty(t, cfg.kafkaBroker)
	assert.Equal(t, "uploads", cfg.kafkaTopic)

	assert.Empty(t, cfg.summarizerURL)
	assert.Empty(t, cfg.summarizerToken)
	assert.Equal(t, 5*time.Second, cfg.summarizerTimeout)

	assert.Equal(t, "testsecret", cfg.jwtSecretKey)
	assert.Equal(t, time.Hour, cfg.jwtExp)
	assert.Equal(t, 30*time.Minute, cfg.datasetTTL)
	assert.Equal(t, "changeme", cfg.adminPassword)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("STORAGE_BACKEND", "sheets")
	os.Setenv("SHEETS_CREDENTIALS_FILE", "/etc/creds.json")
	os.Setenv("SHEETS_SPREADSHEET_ID", "sheet-id-123")
	os.Setenv("SHEETS_ACCOUNTS_SHEET", "users")
	os.Setenv("SHEETS_UPLOADS_SHEET", "audit")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")

	os.Setenv("KAFKA_BROKER", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "audit-events")

	os.Setenv("SUMMARIZER_URL", "https://summarizer.example.com/run")
	os.Setenv("SUMMARIZER_TOKEN", "api-token")
	os.Setenv("SUMMARIZER_TIMEOUT_SECOND", "10")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")
	os.Setenv("DATASET_TTL_SECOND", "600")
	os.Setenv("ADMIN_PASSWORD", "adminpw")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.appHost)
	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, "debug", cfg.logLevel)

	assert.Equal(t, "sheets", cfg.storageBackend)
	assert.Equal(t, "/etc/creds.json", cfg.sheetsCredentialsFile)
	assert.Equal(t, "sheet-id-123", cfg.spreadsheetID)
	assert.Equal(t, "users", cfg.accountsSheet)
	assert.Equal(t, "audit", cfg.uploadsSheet)

	assert.Equal(t, "redis.example.com", cfg.redisHost)
	assert.Equal(t, 6380, cfg.redisPort)
	assert.Equal(t, 2, cfg.redisDB)
	assert.Equal(t, "redispass", cfg.redisPassword)

	assert.Equal(t, "kafka.example.com:9092", cfg.kafkaBroker)
	assert.Equal(t, "audit-events", cfg.kafkaTopic)

	assert.Equal(t, "https://summarizer.example.com/run", cfg.summarizerURL)
	assert.Equal(t, "api-token", cfg.summarizerToken)
	assert.Equal(t, 10*time.Second, cfg.summarizerTimeout)

	assert.Equal(t, "supersecret", cfg.jwtSecretKey)
	assert.Equal(t, 300*time.Second, cfg.jwtExp)
	assert.Equal(t, 600*time.Second, cfg.datasetTTL)
	assert.Equal(t, "adminpw", cfg.adminPassword)
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "sheets backend without credentials",
			env: map[string]string{
				"JWT_SECRET_KEY": "s",
				"ADMIN_PASSWORD": "p",
			},
		},
		{
			name: "unknown storage backend",
			env: map[string]string{
				"STORAGE_BACKEND": "dynamo",
				"JWT_SECRET_KEY":  "s",
				"ADMIN_PASSWORD":  "p",
			},
		},
		{
			name: "missing jwt secret",
			env: map[string]string{
				"STORAGE_BACKEND": "postgres",
				"ADMIN_PASSWORD":  "p",
			},
		},
		{
			name: "missing admin password",
			env: map[string]string{
				"STORAGE_BACKEND": "postgres",
				"JWT_SECRET_KEY":  "s",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// The rowstore expects its table to exist already.
	dsn := fmt.Sprintf("postgres://user:password@%s:%d/testdb?sslmode=disable", pgHost, pgPort.Int())
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sheet_rows (
			sheet TEXT      NOT NULL,
			pos   BIGSERIAL PRIMARY KEY,
			cells JSONB     NOT NULL
		)
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	cfg := &config{
		appHost:           "127.0.0.1",
		appPort:           "8086",
		logLevel:          "debug",
		storageBackend:    "postgres",
		accountsSheet:     "accounts",
		uploadsSheet:      "uploads",
		pgHost:            pgHost,
		pgPort:            pgPort.Int(),
		pgUser:            "user",
		pgPassword:        "password",
		pgDB:              "testdb",
		pgMaxOpenConns:    5,
		pgMaxIdleConns:    2,
		redisHost:         redisHost,
		redisPort:         redisPort.Int(),
		redisPoolSize:     10,
		redisMinIdleConns: 2,
		kafkaTopic:        "uploads",
		summarizerTimeout: 5 * time.Second,
		jwtSecretKey:      "testsecret",
		jwtExp:            time.Minute,
		datasetTTL:        time.Minute,
		adminPassword:     "changeme",
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
