package mongodb

import (
	"errors"
	"fmt"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

func findError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}

	return fmt.Errorf("failed to find document: %w", err)
}

func writeError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to write document: %w", domain.ErrAlreadyExists)
	}

	return fmt.Errorf("failed to write document: %w", err)
}

func decodeError(err error) error {
	return fmt.Errorf("failed to decode documents: %w", err)
}
