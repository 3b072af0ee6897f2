package domain

import (
	"errors"
	"strings"
	"time"
)

type Student struct {
	ID                 string            `csv:"id"                  db:"id"                  json:"id"                 bson:"_id"`
	RegistrationNumber string            `csv:"registration_number" db:"registration_number" json:"registrationNumber" bson:"registration_number"`
	Name               string            `csv:"name"                db:"name"                json:"name"               bson:"name"`
	Department         string            `csv:"department"          db:"department"          json:"department"         bson:"department"`
	Semester           int               `csv:"semester,omitempty"  db:"semester"            json:"semester"           bson:"semester"`
	Grades             map[string]string `csv:"-"                   db:"grades"              json:"grades"             bson:"grades"`
	CreatedAt          time.Time         `csv:"-"                   db:"created_at"          json:"createdAt"          bson:"created_at"`
	UpdatedAt          time.Time         `csv:"-"                   db:"updated_at"          json:"updatedAt"          bson:"updated_at"`
}

func (s *Student) Validate() error {
	if strings.TrimSpace(s.RegistrationNumber) == "" {
		return errors.New("registration_number is required")
	}

	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}

	if s.Semester < 0 {
		return errors.New("semester must not be negative")
	}

	return nil
}
