package mongodb

import (
	"context"

	"github.com/kurochkinivan/results_portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentsRepository struct {
	col *mongo.Collection
}

func NewStudentsRepository(db *mongo.Database) *StudentsRepository {
	return &StudentsRepository{col: db.Collection(CollectionStudents)}
}

func (r *StudentsRepository) CreateStudent(ctx context.Context, s *domain.Student) error {
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return writeError(err)
	}

	return nil
}

func (r *StudentsRepository) StudentByID(ctx context.Context, id string) (*domain.Student, error) {
	var s domain.Student
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, findError(err)
	}

	return &s, nil
}

func (r *StudentsRepository) Students(
	ctx context.Context,
	department string,
	limit, offset uint64,
) ([]*domain.Student, int, error) {
	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, -1, findError(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "registration_number", Value: 1}}).
		SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, -1, findError(err)
	}

	students := make([]*domain.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, -1, decodeError(err)
	}

	return students, int(total), nil
}

func (r *StudentsRepository) UpdateStudent(ctx context.Context, s *domain.Student) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": s.ID}, bson.M{
		"$set": bson.M{
			"registration_number": s.RegistrationNumber,
			"name":                s.Name,
			"department":          s.Department,
			"semester":            s.Semester,
			"grades":              s.Grades,
			"updated_at":          s.UpdatedAt,
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

func (r *StudentsRepository) DeleteStudent(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return writeError(err)
	}

	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *StudentsRepository) SaveStudents(ctx context.Context, students ...*domain.Student) error {
	if len(students) == 0 {
		return nil
	}

	docs := make([]any, len(students))
	for i, s := range students {
		docs[i] = s
	}

	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return writeError(err)
	}

	return nil
}
