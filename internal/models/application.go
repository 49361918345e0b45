package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores an ordered list of strings as a JSON text column.
// Order is preserved; duplicates are not deduplicated.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for string list: %T", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// ApplicationSubmission represents a job application submission.
// ResumeFile holds the uploaded document base64-encoded; it is empty when
// no file was uploaded. Like contacts, records are create/read/delete only.
type ApplicationSubmission struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"not null;size:255" json:"name"`
	Email       string     `gorm:"not null;size:255;index" json:"email"`
	Phone       string     `gorm:"size:64" json:"phone,omitempty"`
	Position    string     `gorm:"not null;size:255" json:"position"`
	Experience  string     `gorm:"type:text" json:"experience,omitempty"`
	Education   string     `gorm:"type:text" json:"education,omitempty"`
	Skills      StringList `gorm:"type:text" json:"skills"`
	CoverLetter string     `gorm:"type:text" json:"coverLetter,omitempty"`
	ResumeFile  string     `gorm:"type:text" json:"resumeFile,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
}

// TableName returns the table name for ApplicationSubmission
func (ApplicationSubmission) TableName() string {
	return "application_submissions"
}

// BeforeCreate assigns a UUID identifier before insert
func (a *ApplicationSubmission) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// HasResume reports whether a resume file was uploaded with this application
func (a *ApplicationSubmission) HasResume() bool {
	return a.ResumeFile != ""
}
