package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/results_portal/internal/domain"
)

const maxImportSize = 5 << 20

type StudentsHandler struct {
	log      *slog.Logger
	students StudentsRepository
	now      func() time.Time
}

func NewStudentsHandler(log *slog.Logger, students StudentsRepository) *StudentsHandler {
	return &StudentsHandler{
		log:      log,
		students: students,
		now:      time.Now,
	}
}

type StudentRequest struct {
	RegistrationNumber string            `json:"registrationNumber"`
	Name               string            `json:"name"`
	Department         string            `json:"department"`
	Semester           int               `json:"semester"`
	Grades             map[string]string `json:"grades"`
}

func (req StudentRequest) toStudent() *domain.Student {
	return &domain.Student{
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		Name:               strings.TrimSpace(req.Name),
		Department:         strings.TrimSpace(req.Department),
		Semester:           req.Semester,
		Grades:             req.Grades,
	}
}

type ListStudentsResponse struct {
	Students   []*domain.Student `json:"students"`
	Pagination Pagination        `json:"pagination"`
}

func (h *StudentsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	students, total, err := h.students.Students(r.Context(), r.URL.Query().Get("department"), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, ListStudentsResponse{
		Students:   students,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *StudentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	student, ok := h.decode(w, r)
	if !ok {
		return
	}

	now := h.now()
	student.ID = uuid.NewString()
	student.CreatedAt = now
	student.UpdatedAt = now

	if err := h.students.CreateStudent(r.Context(), student); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, student)
}

func (h *StudentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	student, err := h.students.StudentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, student)
}

func (h *StudentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	student, ok := h.decode(w, r)
	if !ok {
		return
	}

	student.ID = chi.URLParam(r, "id")
	student.UpdatedAt = h.now()

	if err := h.students.UpdateStudent(r.Context(), student); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	updated, err := h.students.StudentByID(r.Context(), student.ID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, updated)
}

func (h *StudentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.students.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "Student deleted")
}

type ImportStudentsResponse struct {
	Imported int `json:"imported"`
}

// Import loads students from a CSV file with the export's header. The whole file is rejected when
// any record is invalid or a registration number repeats.
func (h *StudentsHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := readCSVUpload(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var records []domain.Student
	if err := csvutil.Unmarshal(data, &records); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid csv: %v", err))
		return
	}

	if len(records) == 0 {
		writeError(w, http.StatusBadRequest, "csv contains no students")
		return
	}

	now := h.now()
	seen := make(map[string]int, len(records))
	students := make([]*domain.Student, 0, len(records))

	for i := range records {
		s := &records[i]
		s.RegistrationNumber = strings.TrimSpace(s.RegistrationNumber)

		if err := s.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid student record #%d: %v", i+1, err))
			return
		}

		if prev, ok := seen[s.RegistrationNumber]; ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf(
				"student record #%d repeats registration number %s from record #%d", i+1, s.RegistrationNumber, prev))
			return
		}
		seen[s.RegistrationNumber] = i + 1

		s.ID = uuid.NewString()
		s.Grades = map[string]string{}
		s.CreatedAt = now
		s.UpdatedAt = now
		students = append(students, s)
	}

	if err := h.students.SaveStudents(r.Context(), students...); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "students imported", slog.Int("count", len(students)))

	writeData(w, http.StatusCreated, ImportStudentsResponse{Imported: len(students)})
}

func (h *StudentsHandler) Export(w http.ResponseWriter, r *http.Request) {
	students, _, err := h.students.Students(r.Context(), r.URL.Query().Get("department"), 0, 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	records := make([]domain.Student, 0, len(students))
	for _, s := range students {
		records = append(records, *s)
	}

	data, err := csvutil.Marshal(records)
	if err != nil {
		writeDomainError(w, r, h.log, fmt.Errorf("failed to encode students: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="students.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *StudentsHandler) decode(w http.ResponseWriter, r *http.Request) (*domain.Student, bool) {
	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	student := req.toStudent()
	if err := student.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return student, true
}

// readCSVUpload accepts either a multipart "file" field or a raw CSV body.
func readCSVUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, errors.New("failed to read csv body")
		}
		return data, nil
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("no file uploaded")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("failed to read uploaded csv")
	}

	return data, nil
}
