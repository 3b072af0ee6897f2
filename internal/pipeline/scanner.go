package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"github.com/kurochkinivan/results_portal/internal/extractor"
)

// Scanner polls the inbox directory and claims result files for the parser. A file is claimed only
// once its size is unchanged between two scans, so a copy still in progress is left alone.
type Scanner struct {
	log           *slog.Logger
	inboxDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider FilesProvider
	fileUpdater   FileUpdater

	// sizes seen on the previous scan for files not claimed yet
	sizes map[string]int64
}

func NewScanner(
	log *slog.Logger,
	inboxDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		inboxDir:      inboxDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
		sizes:         make(map[string]int64),
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.scan(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.ErrorContext(ctx, "failed to scan inbox", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scan(ctx context.Context) error {
	tracked, err := s.trackedStatuses(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.inboxDir)
	if err != nil {
		return fmt.Errorf("failed to read inbox %q: %w", s.inboxDir, err)
	}

	sizes := make(map[string]int64, len(s.sizes))
	defer func() { s.sizes = sizes }()

	for _, entry := range entries {
		name := entry.Name()
		if !candidate(entry) {
			continue
		}
		if status, ok := tracked[name]; ok && !status.Claimable() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}

		prev, seen := s.sizes[name]
		sizes[name] = info.Size()
		if !seen || prev != info.Size() {
			continue
		}

		if err := s.claim(ctx, name); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.ErrorContext(ctx, "failed to claim inbox file, retrying on next scan",
				slog.String("filename", name),
				slog.String("err", err.Error()),
			)
			continue
		}

		delete(sizes, name)
	}

	return nil
}

func (s *Scanner) trackedStatuses(ctx context.Context) (map[string]domain.Status, error) {
	files, err := s.filesProvider.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked files: %w", err)
	}

	statuses := make(map[string]domain.Status, len(files))
	for _, f := range files {
		statuses[f.Name] = f.Status
	}

	return statuses, nil
}

// claim marks the file as processing and hands it to the parser.
func (s *Scanner) claim(ctx context.Context, name string) error {
	err := s.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
		Name:   name,
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to mark file as processing: %w", err)
	}

	s.log.DebugContext(ctx, "inbox file claimed", slog.String("filename", name))

	select {
	case s.files <- filepath.Join(s.inboxDir, name):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// candidate skips directories, dotfiles and extensions the extractor cannot read.
func candidate(entry os.DirEntry) bool {
	return !entry.IsDir() &&
		!strings.HasPrefix(entry.Name(), ".") &&
		extractor.SupportedExtension(entry.Name())
}
