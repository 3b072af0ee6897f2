package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

const TableFaculty = "faculty"

var facultyColumns = []string{
	"id",
	"name",
	"email",
	"department",
	"designation",
	"created_at",
	"updated_at",
}

type FacultyRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFacultyRepository(pool *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FacultyRepository) CreateFaculty(ctx context.Context, f *domain.Faculty) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFaculty).
		Columns(facultyColumns...).
		Values(
			f.ID,
			f.Name,
			f.Email,
			f.Department,
			f.Designation,
			f.CreatedAt,
			f.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *FacultyRepository) FacultyByID(ctx context.Context, id string) (*domain.Faculty, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(facultyColumns...).
		From(TableFaculty).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	faculty, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Faculty])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return faculty, nil
}

func (r *FacultyRepository) FacultyList(
	ctx context.Context,
	department string,
	limit, offset uint64,
) ([]*domain.Faculty, int, error) {
	db := extractDB(ctx, r.pool)

	filter := func(b sq.SelectBuilder) sq.SelectBuilder {
		if department == "" {
			return b
		}
		return b.Where(sq.Eq{"department": department})
	}

	sql, args, err := filter(r.qb.Select("COUNT(*)").From(TableFaculty)).ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = filter(r.qb.Select(facultyColumns...).From(TableFaculty)).
		OrderBy("name ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Faculty])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return list, total, nil
}

func (r *FacultyRepository) UpdateFaculty(ctx context.Context, f *domain.Faculty) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableFaculty).
		SetMap(map[string]any{
			"name":        f.Name,
			"email":       f.Email,
			"department":  f.Department,
			"designation": f.Designation,
			"updated_at":  f.UpdatedAt,
		}).
		Where(sq.Eq{"id": f.ID}).
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

func (r *FacultyRepository) DeleteFaculty(ctx context.Context, id string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableFaculty).
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
