package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

const DefaultTTL = 30 * time.Minute

// Store keeps extractions waiting for the uploader's save or discard decision.
// Get must treat an expired entry exactly like a missing one.
type Store interface {
	Set(ctx context.Context, s *domain.TempSession) error
	Get(ctx context.Context, tempID string) (*domain.TempSession, error)
	Delete(ctx context.Context, tempID string) error
	// Take removes and returns a live entry in one step, so only one caller can act on it.
	Take(ctx context.Context, tempID string) (*domain.TempSession, error)
	// Sweep removes expired entries and returns them so their files can be cleaned up.
	Sweep(ctx context.Context, now time.Time) ([]*domain.TempSession, error)
}

// NewTempID returns a timestamp-derived key. The random suffix keeps two uploads in the same
// millisecond apart.
func NewTempID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
