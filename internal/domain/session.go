package domain

import "time"

// TempSession holds an extraction that the uploader has not saved or discarded yet.
type TempSession struct {
	TempID        string           `json:"tempId"`
	ExtractedData *ExtractedResult `json:"extractedData"`
	FileName      string           `json:"fileName"`
	OriginalFile  string           `json:"originalFile"`
	UploadedBy    string           `json:"uploadedBy"`
	ExpiryTime    time.Time        `json:"expiryTime"`
}

func (s *TempSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiryTime)
}
