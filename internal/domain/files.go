package domain

import "time"

// File tracks a result file picked up from the inbox directory. ResultID points at the processed
// result created from it once the file is done.
type File struct {
	Name         string     `db:"name"          bson:"_id"`
	Status       Status     `db:"status"        bson:"status"`
	ErrorMessage string     `db:"error_message" bson:"error_message"`
	ResultID     string     `db:"result_id"     bson:"result_id,omitempty"`
	ProcessedAt  *time.Time `db:"processed_at"  bson:"processed_at"`
}
