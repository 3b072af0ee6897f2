package domain

import "time"

type ExtractionMethod string

const (
	MethodStructured ExtractionMethod = "structured"
	MethodText       ExtractionMethod = "text"
	MethodOCR        ExtractionMethod = "ocr"
	MethodCSV        ExtractionMethod = "csv"
	MethodExcel      ExtractionMethod = "excel"
)

// Table is one candidate table found in an uploaded file, before any header detection.
type Table struct {
	Rows   [][]string
	Source string
}

type ExtractedResult struct {
	Headers  []string           `json:"headers"  bson:"headers"`
	Rows     []ResultRow        `json:"rows"     bson:"rows"`
	Metadata ExtractionMetadata `json:"metadata" bson:"metadata"`
}

type ResultRow struct {
	Data          map[string]string `json:"data"          bson:"data"`
	Issues        []string          `json:"issues"        bson:"issues"`
	OriginalIndex int               `json:"originalIndex" bson:"original_index"`
	ColumnCount   int               `json:"columnCount"   bson:"column_count"`
	Source        string            `json:"source"        bson:"source"`
}

type ExtractionMetadata struct {
	Confidence       float64          `json:"confidence"       bson:"confidence"`
	TotalRows        int              `json:"totalRows"        bson:"total_rows"`
	ExtractionMethod ExtractionMethod `json:"extractionMethod" bson:"extraction_method"`
	Issues           []string         `json:"issues"           bson:"issues"`
}

type ProcessingStatus string

const (
	ProcessingCompleted ProcessingStatus = "completed"
	ProcessingFailed    ProcessingStatus = "failed"
)

type ProcessedResult struct {
	ID               string             `json:"id"               bson:"_id"               db:"id"`
	FileName         string             `json:"fileName"         bson:"file_name"         db:"file_name"`
	UploadedBy       string             `json:"uploadedBy"       bson:"uploaded_by"       db:"uploaded_by"`
	ProcessingStatus ProcessingStatus   `json:"processingStatus" bson:"processing_status" db:"processing_status"`
	Headers          []string           `json:"headers"          bson:"headers"           db:"headers"`
	Rows             []ResultRow        `json:"rows"             bson:"rows"              db:"rows"`
	Metadata         ExtractionMetadata `json:"metadata"         bson:"metadata"          db:"metadata"`
	CreatedAt        time.Time          `json:"createdAt"        bson:"created_at"        db:"created_at"`
}

// NewProcessedResult copies a confirmed extraction into a record ready to be persisted.
func NewProcessedResult(id, fileName, uploadedBy string, data *ExtractedResult, now time.Time) *ProcessedResult {
	res := &ProcessedResult{
		ID:               id,
		FileName:         fileName,
		UploadedBy:       uploadedBy,
		ProcessingStatus: ProcessingCompleted,
		CreatedAt:        now,
	}

	if data != nil {
		res.Headers = data.Headers
		res.Rows = data.Rows
		res.Metadata = data.Metadata
	}

	return res
}
