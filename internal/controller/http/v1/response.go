package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/results_portal/internal/domain"
)

const noTableDataMessage = "No table data could be extracted from the file. Make sure it contains a results table."

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// writeDomainError maps domain sentinels to statuses. Anything unrecognised is logged and reported
// as a 500 without leaking the cause.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Temporary extraction not found or expired")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Record already exists")
	case errors.Is(err, domain.ErrUnsupportedFile):
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported file type, upload a PDF, CSV or Excel file")
	case errors.Is(err, domain.ErrNoTableData):
		writeError(w, http.StatusBadRequest, noTableDataMessage)
	case errors.Is(err, domain.ErrExtractionFailed):
		writeError(w, http.StatusBadRequest, "The file could not be read")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
