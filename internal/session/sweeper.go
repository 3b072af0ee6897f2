package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Sweeper periodically drops expired sessions together with their uploaded files, and removes
// upload files that outlived the session TTL without belonging to any session.
type Sweeper struct {
	log       *slog.Logger
	store     Store
	uploadDir string
	ttl       time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewSweeper(log *slog.Logger, store Store, uploadDir string, ttl, interval time.Duration) *Sweeper {
	return &Sweeper{
		log:       log,
		store:     store,
		uploadDir: uploadDir,
		ttl:       ttl,
		interval:  interval,
		now:       time.Now,
	}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.log.ErrorContext(ctx, "failed to sweep sessions", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) error {
	now := s.now()

	expired, err := s.store.Sweep(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to sweep store: %w", err)
	}

	for _, sess := range expired {
		if err := RemoveFile(sess.OriginalFile); err != nil {
			s.log.WarnContext(ctx, "failed to remove expired upload",
				slog.String("temp_id", sess.TempID),
				slog.String("err", err.Error()),
			)
		}
	}

	removed, err := s.removeStaleUploads(now)
	if err != nil {
		return err
	}

	if len(expired) > 0 || removed > 0 {
		s.log.InfoContext(ctx, "expired sessions swept",
			slog.Int("sessions", len(expired)),
			slog.Int("orphaned_files", removed),
		)
	}

	return nil
}

func (s *Sweeper) removeStaleUploads(now time.Time) (int, error) {
	if s.uploadDir == "" {
		return 0, nil
	}

	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read upload directory %q: %w", s.uploadDir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if now.Sub(info.ModTime()) < s.ttl {
			continue
		}

		if err := RemoveFile(filepath.Join(s.uploadDir, entry.Name())); err == nil {
			removed++
		}
	}

	return removed, nil
}

// RemoveFile deletes a temporary upload; a file that is already gone is not an error.
func RemoveFile(path string) error {
	if path == "" {
		return nil
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
