package pipeline

import (
	"context"

	"github.com/kurochkinivan/results_portal/internal/analysis"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.File, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.File) error
}

type ResultSaver interface {
	SaveProcessedResult(ctx context.Context, res *domain.ProcessedResult) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Extractor interface {
	Extract(ctx context.Context, fileName string, data []byte) (*domain.ExtractedResult, error)
}

type ReportGenerator interface {
	GenerateReport(outputPath, sourceFile string, summary analysis.Summary) error
}
