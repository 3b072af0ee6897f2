package mongodb

import (
	"context"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FilesRepository struct {
	col *mongo.Collection
}

func NewFilesRepository(db *mongo.Database) *FilesRepository {
	return &FilesRepository{col: db.Collection(CollectionFiles)}
}

func (r *FilesRepository) Files(ctx context.Context) ([]*domain.File, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, findError(err)
	}

	files := make([]*domain.File, 0)
	if err := cursor.All(ctx, &files); err != nil {
		return nil, decodeError(err)
	}

	return files, nil
}

func (r *FilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.File) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": file.Name},
		bson.M{"$set": bson.M{
			"status":        file.Status,
			"error_message": file.ErrorMessage,
			"result_id":     file.ResultID,
			"processed_at":  file.ProcessedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return writeError(err)
	}

	return nil
}

func (r *FilesRepository) ResetProcessingFiles(ctx context.Context) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"status": domain.StatusProcessing},
		bson.M{"$set": bson.M{"status": domain.StatusPending}},
	)
	if err != nil {
		return 0, writeError(err)
	}

	return res.ModifiedCount, nil
}
