package extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/results_portal/internal/domain"
)

type Extractor struct {
	log *slog.Logger
	ocr OCR
}

// New creates an extractor. ocr may be nil, in which case PDFs without a usable text layer fail.
func New(log *slog.Logger, ocr OCR) *Extractor {
	return &Extractor{
		log: log,
		ocr: ocr,
	}
}

func SupportedExtension(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".csv", ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}

// Extract reads the table out of an uploaded result file and structures it.
// domain.ErrNoTableData is returned when nothing resembling a table was found.
func (e *Extractor) Extract(ctx context.Context, fileName string, data []byte) (*domain.ExtractedResult, error) {
	log := e.log.With(slog.String("filename", fileName), slog.Int("size", len(data)))

	var (
		tables []domain.Table
		method domain.ExtractionMethod
		notes  []string
		err    error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		tables, method, notes, err = e.extractPdfData(ctx, log, data)
	case ".csv":
		method = domain.MethodCSV
		tables, err = csvTables(data)
	case ".xlsx", ".xlsm":
		method = domain.MethodExcel
		tables, err = excelTables(data)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFile, filepath.Ext(fileName))
	}
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "tables extracted", slog.Int("tables", len(tables)), slog.String("method", string(method)))

	result, err := Structure(tables, method)
	if err != nil {
		return nil, err
	}

	result.Metadata.Issues = append(notes, result.Metadata.Issues...)
	if result.Metadata.Issues == nil {
		result.Metadata.Issues = []string{}
	}

	log.InfoContext(ctx, "result structured",
		slog.Int("rows", result.Metadata.TotalRows),
		slog.Float64("confidence", result.Metadata.Confidence),
	)

	return result, nil
}

func (e *Extractor) extractPdfData(
	ctx context.Context,
	log *slog.Logger,
	data []byte,
) ([]domain.Table, domain.ExtractionMethod, []string, error) {
	tables, text, err := structuredTables(data)
	if err != nil {
		return nil, "", nil, err
	}

	if len(tables) > 0 {
		return tables, domain.MethodStructured, nil, nil
	}

	if tables = TextTables(text, "text"); len(tables) > 0 {
		log.DebugContext(ctx, "no positioned tables found, using plain text lines")
		return tables, domain.MethodText, []string{"no table layout found, rows were split from plain text"}, nil
	}

	if e.ocr == nil {
		return nil, "", nil, domain.ErrNoTableData
	}

	log.InfoContext(ctx, "no text tables found, falling back to ocr")

	recognized, err := e.ocr.Recognize(ctx, data)
	if err != nil {
		if errors.Is(err, domain.ErrOCRUnavailable) {
			log.WarnContext(ctx, "ocr fallback unavailable", slog.String("err", err.Error()))
			return nil, "", nil, domain.ErrNoTableData
		}
		return nil, "", nil, fmt.Errorf("failed to run ocr: %w", err)
	}

	if tables = TextTables(recognized, "ocr"); len(tables) == 0 {
		return nil, "", nil, domain.ErrNoTableData
	}

	return tables, domain.MethodOCR, []string{"document has no text layer, rows were recognized with OCR"}, nil
}
