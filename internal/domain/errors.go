package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrSessionNotFound  = errors.New("temporary session not found or expired")
	ErrNoTableData      = errors.New("no table data could be extracted")
	ErrExtractionFailed = errors.New("file could not be read")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrOCRUnavailable   = errors.New("ocr engine unavailable")
	ErrInvalidInput     = errors.New("invalid input")
)
