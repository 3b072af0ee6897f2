package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/results_portal/internal/analysis"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

// Reporter writes a PDF analysis report for every result the writer persisted.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.ParseResult
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.ParseResult,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("filename", result.Filename),
				slog.String("result_id", result.ResultID),
			)

			path, err := r.report(result)
			if err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
				continue
			}

			log.InfoContext(ctx, "analysis report written", slog.String("path", path))

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// report analyzes every student of the result and writes the summary next to the other reports.
func (r *Reporter) report(result *domain.ParseResult) (string, error) {
	if result.Result == nil {
		return "", fmt.Errorf("no extracted data for %s", result.Filename)
	}

	subjects, students := analysis.StudentsFromResult(result.Result.Headers, result.Result.Rows)
	if len(subjects) == 0 {
		return "", fmt.Errorf("no subject columns found in %s", filepath.Base(result.Filename))
	}

	path := ReportPath(r.outputDir, result.Filename)

	if err := r.reportGenerator.GenerateReport(path, filepath.Base(result.Filename), analysis.Analyze(subjects, students, 0)); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return path, nil
}

// ReportPath names the report after the source file with its extension replaced by .pdf.
func ReportPath(outputDir, sourceFile string) string {
	base := filepath.Base(sourceFile)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
}
