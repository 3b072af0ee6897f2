package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/results_portal/internal/analysis"
	"github.com/kurochkinivan/results_portal/internal/domain"
	"github.com/kurochkinivan/results_portal/internal/extractor"
	"github.com/kurochkinivan/results_portal/internal/session"
)

const (
	DecisionSave    = "save"
	DecisionDiscard = "discard"
)

// multipartOverhead leaves room for boundaries and form fields around the file itself.
const multipartOverhead = 1 << 20

type UploadOptions struct {
	Dir           string
	SessionTTL    time.Duration
	MaxUploadSize int64
}

type ProcessedResultsHandler struct {
	log       *slog.Logger
	extractor Extractor
	sessions  SessionStore
	results   ProcessedResultsRepository
	reports   ReportGenerator
	opts      UploadOptions
	now       func() time.Time
}

func NewProcessedResultsHandler(
	log *slog.Logger,
	extractor Extractor,
	sessions SessionStore,
	results ProcessedResultsRepository,
	reports ReportGenerator,
	opts UploadOptions,
) *ProcessedResultsHandler {
	return &ProcessedResultsHandler{
		log:       log,
		extractor: extractor,
		sessions:  sessions,
		results:   results,
		reports:   reports,
		opts:      opts,
		now:       time.Now,
	}
}

type TempExtractionResponse struct {
	TempID        string                  `json:"tempId"`
	FileName      string                  `json:"fileName"`
	ExtractedData *domain.ExtractedResult `json:"extractedData"`
	ExpiresAt     time.Time               `json:"expiresAt"`
}

func newTempExtractionResponse(s *domain.TempSession) TempExtractionResponse {
	return TempExtractionResponse{
		TempID:        s.TempID,
		FileName:      s.FileName,
		ExtractedData: s.ExtractedData,
		ExpiresAt:     s.ExpiryTime,
	}
}

func (h *ProcessedResultsHandler) UploadExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.opts.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := formFile(r, "file", "pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > h.opts.MaxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
		return
	}

	fileName := filepath.Base(header.Filename)
	if !extractor.SupportedExtension(fileName) {
		writeDomainError(w, r, h.log, domain.ErrUnsupportedFile)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeDomainError(w, r, h.log, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	now := h.now()
	tempID := session.NewTempID(now)
	log := h.log.With(slog.String("temp_id", tempID), slog.String("filename", fileName))

	path, err := h.storeUpload(tempID, fileName, data)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.extractor.Extract(r.Context(), fileName, data)
	if err != nil {
		_ = session.RemoveFile(path)
		log.InfoContext(r.Context(), "extraction failed", slog.String("err", err.Error()))
		writeDomainError(w, r, h.log, err)
		return
	}

	s := &domain.TempSession{
		TempID:        tempID,
		ExtractedData: result,
		FileName:      fileName,
		OriginalFile:  path,
		UploadedBy:    uploaderFrom(r),
		ExpiryTime:    now.Add(h.opts.SessionTTL),
	}

	if err := h.sessions.Set(r.Context(), s); err != nil {
		_ = session.RemoveFile(path)
		writeDomainError(w, r, h.log, fmt.Errorf("failed to store session: %w", err))
		return
	}

	log.InfoContext(r.Context(), "extraction ready for review",
		slog.Int("rows", len(result.Rows)),
		slog.Float64("confidence", result.Metadata.Confidence),
	)

	writeData(w, http.StatusOK, newTempExtractionResponse(s))
}

func (h *ProcessedResultsHandler) GetTemp(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "tempId"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, newTempExtractionResponse(s))
}

type SaveDecisionRequest struct {
	TempID   string `json:"tempId"`
	Decision string `json:"decision"`
}

// SaveDecision persists or drops a reviewed extraction. Either way the temporary session and the
// uploaded file are gone afterwards. The session is taken out of the store before saving, so a
// repeated or concurrent decision for the same upload gets 404. A failed save puts it back.
func (h *ProcessedResultsHandler) SaveDecision(w http.ResponseWriter, r *http.Request) {
	var req SaveDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.TempID == "" {
		writeError(w, http.StatusBadRequest, "tempId is required")
		return
	}

	if req.Decision != DecisionSave && req.Decision != DecisionDiscard {
		writeError(w, http.StatusBadRequest, `decision must be "save" or "discard"`)
		return
	}

	s, err := h.sessions.Take(r.Context(), req.TempID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	log := h.log.With(slog.String("temp_id", s.TempID), slog.String("decision", req.Decision))

	var saved *domain.ProcessedResult
	if req.Decision == DecisionSave {
		saved = domain.NewProcessedResult(uuid.NewString(), s.FileName, s.UploadedBy, s.ExtractedData, h.now())

		if err := h.results.SaveProcessedResult(r.Context(), saved); err != nil {
			if err := h.sessions.Set(r.Context(), s); err != nil {
				log.WarnContext(r.Context(), "failed to restore session", slog.String("err", err.Error()))
			}
			writeDomainError(w, r, h.log, fmt.Errorf("failed to save processed result: %w", err))
			return
		}
	}

	h.removeUpload(r, log, s)

	if saved == nil {
		writeMessage(w, http.StatusOK, "Extraction discarded")
		return
	}

	log.InfoContext(r.Context(), "processed result saved", slog.String("id", saved.ID))

	writeJSON(w, http.StatusCreated, Response{Success: true, Message: "Results saved", Data: saved})
}

type ListProcessedResultsResponse struct {
	Results    []*domain.ProcessedResult `json:"results"`
	Pagination Pagination                `json:"pagination"`
}

func (h *ProcessedResultsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	results, total, err := h.results.ProcessedResults(r.Context(), r.URL.Query().Get("uploadedBy"), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, ListProcessedResultsResponse{
		Results:    results,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *ProcessedResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.results.ProcessedResultByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, res)
}

func (h *ProcessedResultsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.results.DeleteProcessedResult(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "Processed result deleted")
}

func (h *ProcessedResultsHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	_, summary, ok := h.analyze(w, r)
	if !ok {
		return
	}

	writeData(w, http.StatusOK, summary)
}

func (h *ProcessedResultsHandler) Report(w http.ResponseWriter, r *http.Request) {
	res, summary, ok := h.analyze(w, r)
	if !ok {
		return
	}

	pdf, err := h.reports.Generate("Result analysis: "+res.FileName, summary)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	name := strings.TrimSuffix(res.FileName, filepath.Ext(res.FileName)) + "-analysis.pdf"

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *ProcessedResultsHandler) analyze(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.ProcessedResult, analysis.Summary, bool) {
	startIndex := 0
	if s := r.URL.Query().Get("startIndex"); s != "" {
		var err error
		startIndex, err = strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startIndex")
			return nil, analysis.Summary{}, false
		}
	}

	res, err := h.results.ProcessedResultByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return nil, analysis.Summary{}, false
	}

	subjects, students := analysis.StudentsFromResult(res.Headers, res.Rows)

	return res, analysis.Analyze(subjects, students, startIndex), true
}

func (h *ProcessedResultsHandler) storeUpload(tempID, fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(h.opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(h.opts.Dir, tempID+strings.ToLower(filepath.Ext(fileName)))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return path, nil
}

func (h *ProcessedResultsHandler) removeUpload(r *http.Request, log *slog.Logger, s *domain.TempSession) {
	if err := session.RemoveFile(s.OriginalFile); err != nil {
		log.WarnContext(r.Context(), "failed to remove upload", slog.String("err", err.Error()))
	}
}

func (h *ProcessedResultsHandler) tooLargeMessage() string {
	return fmt.Sprintf("File too large, the limit is %d MB", h.opts.MaxUploadSize>>20)
}

// formFile returns the first present multipart file among fields.
func formFile(r *http.Request, fields ...string) (multipart.File, *multipart.FileHeader, error) {
	for _, field := range fields {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		return file, header, err
	}

	return nil, nil, http.ErrMissingFile
}
