package models

import (
	"time"

	"gorm.io/gorm"
)

// TimestampLayout is the ISO-8601 profile used for datum_odeslani outside the database
const TimestampLayout = time.RFC3339Nano

// Submission is one accepted contact form. Rows are only ever inserted.
type Submission struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"jmeno" gorm:"column:jmeno;size:100;not null"`
	Email       string    `json:"email" gorm:"column:email;size:120;not null"`
	Phone       string    `json:"telefon" gorm:"column:telefon;size:20;not null"`
	PostalCode  string    `json:"psc" gorm:"column:psc;size:6;not null"`
	Message     string    `json:"zprava" gorm:"column:zprava;type:text"`
	SubmittedAt time.Time `json:"datum_odeslani" gorm:"column:datum_odeslani;not null;index"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "form_submissions"
}

// BeforeCreate stamps the insertion time when the caller did not set one
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now().UTC()
	}
	return nil
}

// SubmissionLogEntry is the element shape of the JSON submissions log
type SubmissionLogEntry struct {
	ID          uint   `json:"id"`
	Name        string `json:"jmeno"`
	Email       string `json:"email"`
	Phone       string `json:"telefon"`
	PostalCode  string `json:"psc"`
	Message     string `json:"zprava"`
	SubmittedAt string `json:"datum_odeslani"`
}

// ToLogEntry serializes a persisted submission for the JSON log
func (s *Submission) ToLogEntry() SubmissionLogEntry {
	return SubmissionLogEntry{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		PostalCode:  s.PostalCode,
		Message:     s.Message,
		SubmittedAt: s.SubmittedAt.UTC().Format(TimestampLayout),
	}
}
