package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

const TableFiles = "files"

type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Files lists every tracked inbox file. result_id is NULL until a file is done or after its result
// was deleted.
func (r *FilesRepository) Files(ctx context.Context) ([]*domain.File, error) {
	sql, args, err := r.qb.
		Select(
			"name",
			"status",
			"error_message",
			"COALESCE(result_id, '') AS result_id",
			"processed_at",
		).
		From(TableFiles).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := extractDB(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.File])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

func (r *FilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.File) error {
	sql, args, err := r.qb.
		Insert(TableFiles).
		Columns("name", "status", "error_message", "result_id", "processed_at").
		Values(
			file.Name,
			file.Status,
			file.ErrorMessage,
			sq.Expr("NULLIF(?, '')", file.ResultID),
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			result_id = EXCLUDED.result_id,
			processed_at = EXCLUDED.processed_at`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := extractDB(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// ResetProcessingFiles returns files interrupted mid-processing to the pending state so the scanner
// picks them up again after a restart. It reports how many files were reset.
func (r *FilesRepository) ResetProcessingFiles(ctx context.Context) (int64, error) {
	sql, args, err := r.qb.
		Update(TableFiles).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := extractDB(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
