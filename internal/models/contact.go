package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission represents a contact form submission.
// Records are immutable after insert; the only mutation path is deletion.
type ContactSubmission struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"not null;size:255;index" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone,omitempty"`
	Subject   string    `gorm:"not null;size:500" json:"subject"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

// TableName returns the table name for ContactSubmission
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// BeforeCreate assigns a UUID identifier before insert
func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
