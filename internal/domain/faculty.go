package domain

import (
	"errors"
	"strings"
	"time"
)

type Faculty struct {
	ID          string    `db:"id"          json:"id"          bson:"_id"`
	Name        string    `db:"name"        json:"name"        bson:"name"`
	Email       string    `db:"email"       json:"email"       bson:"email"`
	Department  string    `db:"department"  json:"department"  bson:"department"`
	Designation string    `db:"designation" json:"designation" bson:"designation"`
	CreatedAt   time.Time `db:"created_at"  json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updatedAt"   bson:"updated_at"`
}

func (f *Faculty) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name is required")
	}

	if strings.TrimSpace(f.Department) == "" {
		return errors.New("department is required")
	}

	if f.Email != "" && !strings.Contains(f.Email, "@") {
		return errors.New("email is invalid")
	}

	return nil
}
