package mongodb

import (
	"context"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FacultyRepository struct {
	col *mongo.Collection
}

func NewFacultyRepository(db *mongo.Database) *FacultyRepository {
	return &FacultyRepository{col: db.Collection(CollectionFaculty)}
}

func (r *FacultyRepository) CreateFaculty(ctx context.Context, f *domain.Faculty) error {
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return writeError(err)
	}

	return nil
}

func (r *FacultyRepository) FacultyByID(ctx context.Context, id string) (*domain.Faculty, error) {
	var f domain.Faculty
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, findError(err)
	}

	return &f, nil
}

func (r *FacultyRepository) FacultyList(
	ctx context.Context,
	department string,
	limit, offset uint64,
) ([]*domain.Faculty, int, error) {
	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, -1, findError(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, -1, findError(err)
	}

	list := make([]*domain.Faculty, 0)
	if err := cursor.All(ctx, &list); err != nil {
		return nil, -1, decodeError(err)
	}

	return list, int(total), nil
}

func (r *FacultyRepository) UpdateFaculty(ctx context.Context, f *domain.Faculty) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": f.ID}, bson.M{
		"$set": bson.M{
			"name":        f.Name,
			"email":       f.Email,
			"department":  f.Department,
			"designation": f.Designation,
			"updated_at":  f.UpdatedAt,
		},
	})
	if err != nil {
		return writeError(err)
	}

	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *FacultyRepository) DeleteFaculty(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return writeError(err)
	}

	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}
