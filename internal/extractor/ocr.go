package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kurochkinivan/results_portal/internal/domain"
)

// OCR recognizes text in a PDF whose content has no extractable text layer.
type OCR interface {
	Recognize(ctx context.Context, pdf []byte) (string, error)
}

// TesseractOCR rasterizes pages with pdftoppm and recognizes them with the tesseract binary.
type TesseractOCR struct {
	PdftoppmPath  string
	TesseractPath string
	DPI           int
	Timeout       time.Duration
}

func NewTesseractOCR(timeout time.Duration) *TesseractOCR {
	return &TesseractOCR{
		PdftoppmPath:  "pdftoppm",
		TesseractPath: "tesseract",
		DPI:           300,
		Timeout:       timeout,
	}
}

func (o *TesseractOCR) Recognize(ctx context.Context, data []byte) (_ string, err error) {
	pdftoppm, err := exec.LookPath(o.PdftoppmPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOCRUnavailable, err)
	}

	tesseract, err := exec.LookPath(o.TesseractPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOCRUnavailable, err)
	}

	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	dir, err := os.MkdirTemp("", "results-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { err = errors.Join(err, os.RemoveAll(dir)) }()

	input := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(input, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}

	prefix := filepath.Join(dir, "page")
	if err := run(ctx, pdftoppm, "-r", strconv.Itoa(o.DPI), "-png", input, prefix); err != nil {
		return "", fmt.Errorf("failed to rasterize pdf: %w", err)
	}

	images, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", fmt.Errorf("failed to list pages: %w", err)
	}

	var out bytes.Buffer
	for _, img := range images {
		cmd := exec.CommandContext(ctx, tesseract, img, "stdout", "--psm", "6")
		text, err := cmd.Output()
		if err != nil {
			return "", fmt.Errorf("failed to recognize %s: %w", filepath.Base(img), err)
		}

		out.Write(text)
		out.WriteByte('\n')
	}

	return out.String(), nil
}

func run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return err
	}

	return nil
}
