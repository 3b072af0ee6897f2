package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

type FacultyHandler struct {
	log     *slog.Logger
	faculty FacultyRepository
	now     func() time.Time
}

func NewFacultyHandler(log *slog.Logger, faculty FacultyRepository) *FacultyHandler {
	return &FacultyHandler{
		log:     log,
		faculty: faculty,
		now:     time.Now,
	}
}

type FacultyRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

type ListFacultyResponse struct {
	Faculty    []*domain.Faculty `json:"faculty"`
	Pagination Pagination        `json:"pagination"`
}

func (h *FacultyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	list, total, err := h.faculty.FacultyList(r.Context(), r.URL.Query().Get("department"), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, ListFacultyResponse{
		Faculty:    list,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *FacultyHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, ok := h.decode(w, r)
	if !ok {
		return
	}

	now := h.now()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now

	if err := h.faculty.CreateFaculty(r.Context(), f); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, f)
}

func (h *FacultyHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.faculty.FacultyByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, f)
}

func (h *FacultyHandler) Update(w http.ResponseWriter, r *http.Request) {
	f, ok := h.decode(w, r)
	if !ok {
		return
	}

	f.ID = chi.URLParam(r, "id")
	f.UpdatedAt = h.now()

	if err := h.faculty.UpdateFaculty(r.Context(), f); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	updated, err := h.faculty.FacultyByID(r.Context(), f.ID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, updated)
}

func (h *FacultyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.faculty.DeleteFaculty(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "Faculty member deleted")
}

func (h *FacultyHandler) decode(w http.ResponseWriter, r *http.Request) (*domain.Faculty, bool) {
	var req FacultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	f := &domain.Faculty{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Department:  strings.TrimSpace(req.Department),
		Designation: strings.TrimSpace(req.Designation),
	}

	if err := f.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return f, true
}
