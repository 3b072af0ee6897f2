package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

const TableProcessedResults = "processed_results"

var processedResultColumns = []string{
	"id",
	"file_name",
	"uploaded_by",
	"processing_status",
	"headers",
	"rows",
	"metadata",
	"created_at",
}

type ProcessedResultsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewProcessedResultsRepository(pool *pgxpool.Pool) *ProcessedResultsRepository {
	return &ProcessedResultsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProcessedResultsRepository) SaveProcessedResult(ctx context.Context, res *domain.ProcessedResult) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableProcessedResults).
		Columns(processedResultColumns...).
		Values(
			res.ID,
			res.FileName,
			res.UploadedBy,
			res.ProcessingStatus,
			res.Headers,
			res.Rows,
			res.Metadata,
			res.CreatedAt,
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

func (r *ProcessedResultsRepository) ProcessedResultByID(ctx context.Context, id string) (*domain.ProcessedResult, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(processedResultColumns...).
		From(TableProcessedResults).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	res, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ProcessedResult])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return res, nil
}

// ProcessedResults returns a page of results, newest first, and the total count. An empty uploadedBy
// lists everyone's results.
func (r *ProcessedResultsRepository) ProcessedResults(
	ctx context.Context,
	uploadedBy string,
	limit, offset uint64,
) ([]*domain.ProcessedResult, int, error) {
	db := extractDB(ctx, r.pool)

	filter := func(b sq.SelectBuilder) sq.SelectBuilder {
		if uploadedBy == "" {
			return b
		}
		return b.Where(sq.Eq{"uploaded_by": uploadedBy})
	}

	sql, args, err := filter(r.qb.
		Select("COUNT(*)").
		From(TableProcessedResults)).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = filter(r.qb.
		Select(processedResultColumns...).
		From(TableProcessedResults)).
		OrderBy("created_at DESC", "id").
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

	results, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.ProcessedResult])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return results, total, nil
}

func (r *ProcessedResultsRepository) DeleteProcessedResult(ctx context.Context, id string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableProcessedResults).
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
