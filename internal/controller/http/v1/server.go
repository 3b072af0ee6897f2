package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kurochkinivan/results_portal/internal/config"
	"golang.org/x/time/rate"
)

const defaultRequestTimeout = 60 * time.Second

type Dependencies struct {
	Extractor        Extractor
	Sessions         SessionStore
	ProcessedResults ProcessedResultsRepository
	Students         StudentsRepository
	Faculty          FacultyRepository
	Reports          ReportGenerator
	Upload           UploadOptions
	// UploadLimiter throttles upload-extract; nil disables throttling.
	UploadLimiter *rate.Limiter
}

type Server struct {
	httpServer *http.Server
}

func NewServer(log *slog.Logger, cfg config.HTTP, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg, deps),
		},
	}
}

func NewRouter(log *slog.Logger, cfg config.HTTP, deps Dependencies) http.Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", UploadedByHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	})

	results := NewProcessedResultsHandler(log, deps.Extractor, deps.Sessions, deps.ProcessedResults, deps.Reports, deps.Upload)
	students := NewStudentsHandler(log, deps.Students)
	faculty := NewFacultyHandler(log, deps.Faculty)

	r.Route("/api", func(r chi.Router) {
		r.Use(Identity(cfg.JWTSecret))

		r.Route("/processed-results", func(r chi.Router) {
			r.With(RateLimit(deps.UploadLimiter)).Post("/upload-extract", results.UploadExtract)
			r.Get("/temp/{tempId}", results.GetTemp)
			r.Post("/save", results.SaveDecision)
			r.Get("/list", results.List)
			r.Get("/{id}", results.Get)
			r.Delete("/{id}", results.Delete)
			r.Get("/{id}/analysis", results.Analysis)
			r.Get("/{id}/report", results.Report)
		})

		r.Route("/students", func(r chi.Router) {
			r.Get("/", students.List)
			r.Post("/", students.Create)
			r.Post("/import", students.Import)
			r.Get("/export", students.Export)
			r.Get("/{id}", students.Get)
			r.Put("/{id}", students.Update)
			r.Delete("/{id}", students.Delete)
		})

		r.Route("/faculty", func(r chi.Router) {
			r.Get("/", faculty.List)
			r.Post("/", faculty.Create)
			r.Get("/{id}", faculty.Get)
			r.Put("/{id}", faculty.Update)
			r.Delete("/{id}", faculty.Delete)
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
