package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/results_portal/internal/app"
	"github.com/kurochkinivan/results_portal/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const envPrefix = "RESULTS_PORTAL_"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "results_portal",
		Usage:   "Exam result extraction and analysis service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var configFile string

	// sources lets an environment variable override the yaml config file.
	sources := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(
			cli.EnvVar(envPrefix+env),
			yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)),
		)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:    "env",
			Usage:   "Set application environment",
			Value:   "local",
			Sources: sources("ENV", "app.env"),
		},

		&cli.StringFlag{
			Name:      "session-backend",
			Usage:     "Set temporary session store (memory or redis)",
			Value:     config.SessionBackendMemory,
			Sources:   sources("SESSION_BACKEND", "session.backend"),
			Validator: oneOf(config.SessionBackendMemory, config.SessionBackendRedis),
		},
		&cli.DurationFlag{
			Name:      "session-ttl",
			Usage:     "Set how long an extraction waits for a save or discard decision",
			Value:     30 * time.Minute,
			Sources:   sources("SESSION_TTL", "session.ttl"),
			Validator: positive,
		},
		&cli.DurationFlag{
			Name:      "sweep-interval",
			Usage:     "Set expired session sweep interval",
			Value:     5 * time.Minute,
			Sources:   sources("SWEEP_INTERVAL", "session.sweep_interval"),
			Validator: positive,
		},
		&cli.StringFlag{
			Name:    "upload-dir",
			Usage:   "Set directory to keep uploaded files in until a decision is made",
			Value:   "uploads",
			Sources: sources("UPLOAD_DIR", "session.upload_dir"),
		},

		&cli.Int64Flag{
			Name:    "max-upload-size",
			Usage:   "Set maximum upload size in bytes",
			Value:   10 << 20,
			Sources: sources("MAX_UPLOAD_SIZE", "extraction.max_upload_size"),
		},
		&cli.BoolFlag{
			Name:    "ocr-enabled",
			Usage:   "Fall back to tesseract OCR for PDFs without a text layer",
			Sources: sources("OCR_ENABLED", "extraction.ocr_enabled"),
		},
		&cli.DurationFlag{
			Name:    "ocr-timeout",
			Usage:   "Set OCR timeout per document",
			Value:   2 * time.Minute,
			Sources: sources("OCR_TIMEOUT", "extraction.ocr_timeout"),
		},
		&cli.IntFlag{
			Name:    "upload-rate-limit",
			Usage:   "Set allowed uploads per minute, 0 disables limiting",
			Value:   30,
			Sources: sources("UPLOAD_RATE_LIMIT", "extraction.rate_limit"),
		},
		&cli.IntFlag{
			Name:    "upload-rate-burst",
			Usage:   "Set upload burst size",
			Value:   10,
			Sources: sources("UPLOAD_RATE_BURST", "extraction.rate_burst"),
		},

		&cli.StringFlag{
			Name:      "storage-driver",
			Usage:     "Set storage driver (postgres or mongodb)",
			Value:     config.StorageDriverPostgres,
			Sources:   sources("STORAGE_DRIVER", "storage.driver"),
			Validator: oneOf(config.StorageDriverPostgres, config.StorageDriverMongoDB),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: sources("PG_HOST", "postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: sources("PG_PORT", "postgresql.port"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Value:   "postgres",
			Sources: sources("PG_USERNAME", "postgresql.username"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: sources("PG_PASSWORD", "postgresql.password"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "results_portal",
			Sources: sources("PG_DBNAME", "postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "mongo-uri",
			Usage:   "Set MongoDB connection URI",
			Value:   "mongodb://localhost:27017/?replicaSet=rs0",
			Sources: sources("MONGO_URI", "mongodb.uri"),
		},
		&cli.StringFlag{
			Name:    "mongo-database",
			Usage:   "Set MongoDB database name",
			Value:   "results_portal",
			Sources: sources("MONGO_DATABASE", "mongodb.database"),
		},

		&cli.StringFlag{
			Name:    "redis-host",
			Usage:   "Set Redis host",
			Value:   "localhost",
			Sources: sources("REDIS_HOST", "redis.host"),
		},
		&cli.StringFlag{
			Name:    "redis-port",
			Usage:   "Set Redis port",
			Value:   "6379",
			Sources: sources("REDIS_PORT", "redis.port"),
		},
		&cli.StringFlag{
			Name:    "redis-username",
			Usage:   "Set Redis username",
			Sources: sources("REDIS_USERNAME", "redis.username"),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: sources("REDIS_PASSWORD", "redis.password"),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Set Redis database number",
			Sources: sources("REDIS_DB", "redis.db"),
		},

		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: sources("HTTP_HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "5000",
			Sources: sources("HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_IDLE_TIMEOUT", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   30 * time.Second,
			Sources: sources("HTTP_READ_TIMEOUT", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   3 * time.Minute,
			Sources: sources("HTTP_WRITE_TIMEOUT", "http.write_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-request-timeout",
			Usage:   "Set per request handling timeout",
			Value:   150 * time.Second,
			Sources: sources("HTTP_REQUEST_TIMEOUT", "http.request_timeout"),
		},
		&cli.StringSliceFlag{
			Name:    "http-allowed-origins",
			Usage:   "Set CORS allowed origins",
			Value:   []string{"http://localhost:3000"},
			Sources: sources("HTTP_ALLOWED_ORIGINS", "http.allowed_origins"),
		},
		&cli.StringFlag{
			Name:    "jwt-secret",
			Usage:   "Set HS256 secret for bearer tokens, empty trusts the X-Uploaded-By header",
			Sources: sources("JWT_SECRET", "http.jwt_secret"),
		},

		&cli.StringFlag{
			Name:      "inbox-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory to watch for result files, empty disables the inbox",
			Sources:   sources("INBOX_DIR", "inbox.dir"),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:    "reports-dir",
			Aliases: []string{"r"},
			Usage:   "Set directory to write inbox analysis reports to",
			Value:   "reports",
			Sources: sources("REPORTS_DIR", "inbox.reports_dir"),
		},
		&cli.DurationFlag{
			Name:      "scan-interval",
			Aliases:   []string{"s"},
			Value:     3 * time.Second,
			Usage:     "Set inbox scan interval",
			Sources:   sources("SCAN_INTERVAL", "inbox.scan_interval"),
			Validator: positive,
		},
	}
}

func oneOf(allowed ...string) func(string) error {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("%q must be one of %q", v, allowed)
	}
}

func positive(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive", d)
	}
	return nil
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
