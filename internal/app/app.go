package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/results_portal/internal/config"
	v1 "github.com/kurochkinivan/results_portal/internal/controller/http/v1"
	"github.com/kurochkinivan/results_portal/internal/domain"
	"github.com/kurochkinivan/results_portal/internal/extractor"
	"github.com/kurochkinivan/results_portal/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/results_portal/internal/pipeline"
	"github.com/kurochkinivan/results_portal/internal/session"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	filesBuffer        = 100
	parseResultsBuffer = 50
	reportsBuffer      = 100

	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("env", a.cfg.App.Env),
		slog.String("storage_driver", a.cfg.Storage.Driver),
		slog.String("session_backend", a.cfg.Session.Backend),
		slog.String("upload_dir", a.cfg.Session.UploadDir),
		slog.Bool("ocr_enabled", a.cfg.Extraction.OCREnabled),
		slog.Bool("inbox_enabled", a.cfg.Inbox.Enabled()),
	)

	store, err := a.openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		store.close(closeCtx)
	}()

	sessions, closeSessions, err := a.openSessions(ctx)
	if err != nil {
		return err
	}
	defer closeSessions()

	if a.cfg.Inbox.Enabled() {
		reset, err := store.files.ResetProcessingFiles(ctx)
		if err != nil {
			return fmt.Errorf("failed to reset processing files: %w", err)
		}
		if reset > 0 {
			a.log.InfoContext(ctx, "interrupted inbox files returned to pending", slog.Int64("count", reset))
		}
	}

	return a.start(ctx, store, sessions)
}

func (a *App) start(ctx context.Context, store *storage, sessions session.Store) error {
	var ocr extractor.OCR
	if a.cfg.Extraction.OCREnabled {
		ocr = extractor.NewTesseractOCR(a.cfg.Extraction.OCRTimeout)
	}

	ext := extractor.New(a.log, ocr)
	reports := report_generator.New()

	server := v1.NewServer(a.log, a.cfg.HTTP, v1.Dependencies{
		Extractor:        ext,
		Sessions:         sessions,
		ProcessedResults: store.results,
		Students:         store.students,
		Faculty:          store.faculty,
		Reports:          reports,
		Upload: v1.UploadOptions{
			Dir:           a.cfg.Session.UploadDir,
			SessionTTL:    a.cfg.Session.TTL,
			MaxUploadSize: a.cfg.Extraction.MaxUploadSize,
		},
		UploadLimiter: a.uploadLimiter(),
	})

	sweeper := session.NewSweeper(a.log, sessions, a.cfg.Session.UploadDir, a.cfg.Session.TTL, a.cfg.Session.SweepInterval)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "session sweeper started", slog.Duration("interval", a.cfg.Session.SweepInterval))
		return sweeper.Run(ctx)
	})

	if a.cfg.Inbox.Enabled() {
		a.startInbox(ctx, erg, store, ext, reports)
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// startInbox wires scanner, parser, writer and reporter into the errgroup. Result files dropped
// into the inbox directory are extracted, saved and analyzed without a review step.
func (a *App) startInbox(
	ctx context.Context,
	erg *errgroup.Group,
	store *storage,
	ext pipeline.Extractor,
	reports pipeline.ReportGenerator,
) {
	files := make(chan string, filesBuffer)
	parseResults := make(chan *domain.ParseResult, parseResultsBuffer)
	toReport := make(chan *domain.ParseResult, reportsBuffer)

	scanner := pipeline.NewScanner(a.log, a.cfg.Inbox.Dir, a.cfg.Inbox.ScanInterval, files, store.files, store.files)
	parser := pipeline.NewParser(a.log, files, parseResults, ext)
	writer := pipeline.NewWriter(a.log, parseResults, toReport, store.files, store.results, store.tx)
	reporter := pipeline.NewReporter(a.log, a.cfg.Inbox.ReportsDir, toReport, reports)

	a.log.InfoContext(ctx, "inbox enabled",
		slog.String("inbox_dir", a.cfg.Inbox.Dir),
		slog.String("reports_dir", a.cfg.Inbox.ReportsDir),
		slog.Duration("scan_interval", a.cfg.Inbox.ScanInterval),
	)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "parser started")
		return parser.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})
}

// uploadLimiter returns nil when upload throttling is disabled.
func (a *App) uploadLimiter() *rate.Limiter {
	perMinute := a.cfg.Extraction.RateLimit
	if perMinute <= 0 {
		return nil
	}

	burst := a.cfg.Extraction.RateBurst
	if burst <= 0 {
		burst = perMinute
	}

	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}
