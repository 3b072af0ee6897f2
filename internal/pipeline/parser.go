package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/results_portal/internal/domain"
)

// Parser runs table extraction on every file the scanner hands over.
type Parser struct {
	log          *slog.Logger
	files        <-chan string
	parseResults chan<- *domain.ParseResult
	extractor    Extractor
}

func NewParser(
	log *slog.Logger,
	files <-chan string,
	parseResults chan<- *domain.ParseResult,
	extractor Extractor,
) *Parser {
	return &Parser{
		log:          log,
		files:        files,
		parseResults: parseResults,
		extractor:    extractor,
	}
}

func (p *Parser) Run(ctx context.Context) error {
	defer close(p.parseResults)

	for {
		select {
		case filename, ok := <-p.files:
			if !ok {
				return nil
			}

			p.log.DebugContext(ctx, "received file to parse", slog.String("filename", filename))

			result, err := p.parseFile(ctx, filename)
			if err != nil {
				p.log.ErrorContext(ctx, "failed to extract results",
					slog.String("filename", filename),
					slog.String("err", err.Error()),
				)
			}

			select {
			case p.parseResults <- &domain.ParseResult{
				Filename: filename,
				Result:   result,
				Error:    err,
			}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Parser) parseFile(ctx context.Context, filename string) (*domain.ExtractedResult, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	result, err := p.extractor.Extract(ctx, filepath.Base(filename), data)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "successfully extracted results",
		slog.String("filename", filename),
		slog.Int("rows", len(result.Rows)),
		slog.Float64("confidence", result.Metadata.Confidence),
	)

	return result, nil
}
