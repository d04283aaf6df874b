package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact statuses
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// IsValidContactStatus reports whether s is one of the contact lifecycle states.
func IsValidContactStatus(s string) bool {
	return s == ContactStatusNew || s == ContactStatusRead || s == ContactStatusReplied
}

// Contact is a message submitted through the contact form. IPAddress and
// UserAgent are captured server-side at submission time and never taken from
// the request body.
type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null" validate:"required,min=2,max=100,alphaspace"`
	Email     string    `json:"email" gorm:"type:text;not null" validate:"required,email"`
	Message   string    `json:"message" gorm:"type:text;not null" validate:"required,min=10,max=1000"`
	IPAddress string    `json:"ipAddress,omitempty" gorm:"type:text"`
	UserAgent string    `json:"userAgent,omitempty" gorm:"type:text"`
	Status    string    `json:"status" gorm:"type:text;not null" validate:"omitempty,oneof=new read replied"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewContact returns a Contact with defaults applied.
func NewContact() Contact {
	return Contact{Status: ContactStatusNew}
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Normalize trims submitted fields and lowercases the email address.
func (c *Contact) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Message = strings.TrimSpace(c.Message)
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
}

// Redact clears the submitter metadata that must not appear in non-admin
// listings.
func (c *Contact) Redact() {
	c.IPAddress = ""
	c.UserAgent = ""
}
