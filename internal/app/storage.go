package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/results_portal/internal/config"
	v1 "github.com/kurochkinivan/results_portal/internal/controller/http/v1"
	"github.com/kurochkinivan/results_portal/internal/pipeline"
	"github.com/kurochkinivan/results_portal/internal/repository/mongodb"
	"github.com/kurochkinivan/results_portal/internal/repository/postgresql"
	"github.com/kurochkinivan/results_portal/internal/session"
)

type filesRepository interface {
	pipeline.FilesProvider
	pipeline.FileUpdater
	ResetProcessingFiles(ctx context.Context) (int64, error)
}

// storage is the set of repositories backed by the configured driver.
type storage struct {
	results  v1.ProcessedResultsRepository
	students v1.StudentsRepository
	faculty  v1.FacultyRepository
	files    filesRepository
	tx       pipeline.Transactor
	close    func(ctx context.Context)
}

func (a *App) openStorage(ctx context.Context) (*storage, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageDriverPostgres, "":
		return a.openPostgreSQL(ctx)
	case config.StorageDriverMongoDB:
		return a.openMongoDB(ctx)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) openPostgreSQL(ctx context.Context) (*storage, error) {
	pg := a.cfg.Storage.PostgreSQL

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", pg.Host),
		slog.String("postgresql_port", pg.Port),
		slog.String("postgresql_dbname", pg.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, pg)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return &storage{
		results:  postgresql.NewProcessedResultsRepository(pool),
		students: postgresql.NewStudentsRepository(pool),
		faculty:  postgresql.NewFacultyRepository(pool),
		files:    postgresql.NewFilesRepository(pool),
		tx:       postgresql.NewTxManager(pool),
		close:    func(context.Context) { pool.Close() },
	}, nil
}

func (a *App) openMongoDB(ctx context.Context) (*storage, error) {
	a.log.InfoContext(ctx, "establishing mongodb connection",
		slog.String("mongodb_database", a.cfg.Storage.MongoDB.Database),
	)

	client, db, err := mongodb.NewConnection(ctx, a.log, a.cfg.Storage.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return &storage{
		results:  mongodb.NewProcessedResultsRepository(db),
		students: mongodb.NewStudentsRepository(db),
		faculty:  mongodb.NewFacultyRepository(db),
		files:    mongodb.NewFilesRepository(db),
		tx:       mongodb.NewTxManager(client),
		close: func(ctx context.Context) {
			if err := mongodb.Disconnect(ctx, client); err != nil {
				a.log.WarnContext(ctx, "failed to disconnect mongodb", slog.String("err", err.Error()))
			}
		},
	}, nil
}

// openSessions returns the temporary session store and a func releasing its connection.
func (a *App) openSessions(ctx context.Context) (session.Store, func(), error) {
	switch a.cfg.Session.Backend {
	case config.SessionBackendMemory, "":
		return session.NewMemoryStore(), func() {}, nil
	case config.SessionBackendRedis:
		a.log.InfoContext(ctx, "establishing redis connection",
			slog.String("redis_host", a.cfg.Redis.Host),
			slog.String("redis_port", a.cfg.Redis.Port),
		)

		client, err := session.NewRedisClient(ctx, a.cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis connection: %w", err)
		}

		return session.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				a.log.WarnContext(ctx, "failed to close redis", slog.String("err", err.Error()))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", a.cfg.Session.Backend)
	}
}
