package mongodb

import (
	"context"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProcessedResultsRepository struct {
	col *mongo.Collection
}

func NewProcessedResultsRepository(db *mongo.Database) *ProcessedResultsRepository {
	return &ProcessedResultsRepository{col: db.Collection(CollectionProcessedResults)}
}

func (r *ProcessedResultsRepository) SaveProcessedResult(ctx context.Context, res *domain.ProcessedResult) error {
	if _, err := r.col.InsertOne(ctx, res); err != nil {
		return writeError(err)
	}

	return nil
}

func (r *ProcessedResultsRepository) ProcessedResultByID(ctx context.Context, id string) (*domain.ProcessedResult, error) {
	var res domain.ProcessedResult
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res); err != nil {
		return nil, findError(err)
	}

	return &res, nil
}

func (r *ProcessedResultsRepository) ProcessedResults(
	ctx context.Context,
	uploadedBy string,
	limit, offset uint64,
) ([]*domain.ProcessedResult, int, error) {
	filter := bson.M{}
	if uploadedBy != "" {
		filter["uploaded_by"] = uploadedBy
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, -1, findError(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, -1, findError(err)
	}

	results := make([]*domain.ProcessedResult, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, -1, decodeError(err)
	}

	return results, int(total), nil
}

func (r *ProcessedResultsRepository) DeleteProcessedResult(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return writeError(err)
	}

	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}
