package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

const envProduction = "production"

type loggerKey struct{}

func main() {
	// .env has to be loaded before the logger picks its format from RESULTS_PORTAL_ENV
	envErr := godotenv.Load()

	log := newLogger(os.Getenv(envPrefix + "ENV"))

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn("failed to load .env file", slog.String("err", envErr.Error()))
	}

	ctx := context.WithValue(context.Background(), loggerKey{}, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "stopped app due to the error %q\n", err)
		os.Exit(1)
	}
}

// newLogger writes JSON at info level in production and human readable debug output elsewhere.
func newLogger(env string) *slog.Logger {
	if env == envProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
