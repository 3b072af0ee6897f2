package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

const TableStudents = "students"

var studentColumns = []string{
	"id",
	"registration_number",
	"name",
	"department",
	"semester",
	"grades",
	"created_at",
	"updated_at",
}

type StudentsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewStudentsRepository(pool *pgxpool.Pool) *StudentsRepository {
	return &StudentsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *StudentsRepository) CreateStudent(ctx context.Context, s *domain.Student) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableStudents).
		Columns(studentColumns...).
		Values(studentValues(s)...).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *StudentsRepository) StudentByID(ctx context.Context, id string) (*domain.Student, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(studentColumns...).
		From(TableStudents).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	student, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Student])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return student, nil
}

// Students returns a page of students ordered by registration number. An empty department lists all.
func (r *StudentsRepository) Students(
	ctx context.Context,
	department string,
	limit, offset uint64,
) ([]*domain.Student, int, error) {
	db := extractDB(ctx, r.pool)

	filter := func(b sq.SelectBuilder) sq.SelectBuilder {
		if department == "" {
			return b
		}
		return b.Where(sq.Eq{"department": department})
	}

	sql, args, err := filter(r.qb.Select("COUNT(*)").From(TableStudents)).ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	selectBuilder := filter(r.qb.Select(studentColumns...).From(TableStudents)).
		OrderBy("registration_number ASC").
		Offset(offset)
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	sql, args, err = selectBuilder.ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Student])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return students, total, nil
}

func (r *StudentsRepository) UpdateStudent(ctx context.Context, s *domain.Student) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableStudents).
		SetMap(map[string]any{
			"registration_number": s.RegistrationNumber,
			"name":                s.Name,
			"department":          s.Department,
			"semester":            s.Semester,
			"grades":              grades(s.Grades),
			"updated_at":          s.UpdatedAt,
		}).
		Where(sq.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *StudentsRepository) DeleteStudent(ctx context.Context, id string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableStudents).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *StudentsRepository) SaveStudents(ctx context.Context, students ...*domain.Student) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableStudents}, studentColumns,
		pgx.CopyFromSlice(len(students), func(i int) ([]any, error) {
			return studentValues(students[i]), nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to save students: %w", executeQueryError(err))
	}

	if copied != int64(len(students)) {
		return fmt.Errorf("failed to save students: copied %d rows, expected %d", copied, len(students))
	}

	return nil
}

func studentValues(s *domain.Student) []any {
	return []any{
		s.ID,
		s.RegistrationNumber,
		s.Name,
		s.Department,
		s.Semester,
		grades(s.Grades),
		s.CreatedAt,
		s.UpdatedAt,
	}
}

func grades(g map[string]string) map[string]string {
	if g == nil {
		return map[string]string{}
	}
	return g
}
