package v1

import (
	"context"

	"github.com/kurochkinivan/results_portal/internal/analysis"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

type Extractor interface {
	Extract(ctx context.Context, fileName string, data []byte) (*domain.ExtractedResult, error)
}

type SessionStore interface {
	Set(ctx context.Context, s *domain.TempSession) error
	Get(ctx context.Context, tempID string) (*domain.TempSession, error)
	Take(ctx context.Context, tempID string) (*domain.TempSession, error)
}

type ProcessedResultsRepository interface {
	SaveProcessedResult(ctx context.Context, res *domain.ProcessedResult) error
	ProcessedResultByID(ctx context.Context, id string) (*domain.ProcessedResult, error)
	ProcessedResults(ctx context.Context, uploadedBy string, limit, offset uint64) ([]*domain.ProcessedResult, int, error)
	DeleteProcessedResult(ctx context.Context, id string) error
}

type StudentsRepository interface {
	CreateStudent(ctx context.Context, s *domain.Student) error
	StudentByID(ctx context.Context, id string) (*domain.Student, error)
	Students(ctx context.Context, department string, limit, offset uint64) ([]*domain.Student, int, error)
	UpdateStudent(ctx context.Context, s *domain.Student) error
	DeleteStudent(ctx context.Context, id string) error
	SaveStudents(ctx context.Context, students ...*domain.Student) error
}

type FacultyRepository interface {
	CreateFaculty(ctx context.Context, f *domain.Faculty) error
	FacultyByID(ctx context.Context, id string) (*domain.Faculty, error)
	FacultyList(ctx context.Context, department string, limit, offset uint64) ([]*domain.Faculty, int, error)
	UpdateFaculty(ctx context.Context, f *domain.Faculty) error
	DeleteFaculty(ctx context.Context, id string) error
}

type ReportGenerator interface {
	Generate(title string, summary analysis.Summary) ([]byte, error)
}
