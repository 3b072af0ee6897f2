package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

// InboxUploader is recorded as the uploader of results that arrive through the inbox directory.
const InboxUploader = "inbox"

type Writer struct {
	log          *slog.Logger
	parseResults <-chan *domain.ParseResult
	reports      chan<- *domain.ParseResult
	fileUpdater  FileUpdater
	resultSaver  ResultSaver
	transactor   Transactor
	now          func() time.Time
}

func NewWriter(
	log *slog.Logger,
	parseResults <-chan *domain.ParseResult,
	reports chan<- *domain.ParseResult,
	fileUpdater FileUpdater,
	resultSaver ResultSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:          log,
		parseResults: parseResults,
		reports:      reports,
		fileUpdater:  fileUpdater,
		resultSaver:  resultSaver,
		transactor:   transactor,
		now:          time.Now,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case result, ok := <-w.parseResults:
			if !ok {
				return nil
			}

			if !w.record(ctx, result) {
				continue
			}

			select {
			case w.reports <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// record persists the outcome of one parsed inbox file and reports whether it should be analyzed.
// A file whose result cannot be saved is marked failed rather than left processing.
func (w *Writer) record(ctx context.Context, result *domain.ParseResult) bool {
	name := filepath.Base(result.Filename)
	log := w.log.With(slog.String("filename", name))

	if result.Error != nil {
		log.InfoContext(ctx, "inbox file could not be extracted", slog.String("err", result.Error.Error()))
		w.markFailed(ctx, log, name, result.Error)
		return false
	}

	id, err := w.save(ctx, name, result.Result)
	if err != nil {
		log.ErrorContext(ctx, "failed to save inbox result", slog.String("err", err.Error()))
		w.markFailed(ctx, log, name, err)
		return false
	}

	result.ResultID = id

	log.InfoContext(ctx, "inbox result saved",
		slog.String("result_id", id),
		slog.Int("rows", len(result.Result.Rows)),
	)

	return true
}

// save stores the processed result and marks the file done in one transaction.
func (w *Writer) save(ctx context.Context, name string, data *domain.ExtractedResult) (string, error) {
	id := uuid.NewString()

	err := w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		now := w.now()

		if err := w.resultSaver.SaveProcessedResult(ctx,
			domain.NewProcessedResult(id, name, InboxUploader, data, now)); err != nil {
			return fmt.Errorf("failed to save processed result: %w", err)
		}

		if err := w.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
			Name:        name,
			Status:      domain.StatusDone,
			ResultID:    id,
			ProcessedAt: &now,
		}); err != nil {
			return fmt.Errorf("failed to mark file as done: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

func (w *Writer) markFailed(ctx context.Context, log *slog.Logger, name string, cause error) {
	now := w.now()

	err := w.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
		Name:         name,
		Status:       domain.StatusError,
		ErrorMessage: cause.Error(),
		ProcessedAt:  &now,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to mark file as failed", slog.String("err", err.Error()))
	}
}
