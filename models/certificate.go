package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CertificateCategories is the fixed set of valid certificate categories.
var CertificateCategories = []string{
	"Technical",
	"Academic",
	"Professional",
	"Achievement",
	"Other",
}

// Certificate represents a certification or award entry
type Certificate struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string                      `json:"title" gorm:"type:text;not null" validate:"required,min=3,max=100"`
	Description    string                      `json:"description" gorm:"type:text;not null" validate:"required,min=5,max=200"`
	Issuer         string                      `json:"issuer" gorm:"type:text;not null" validate:"required,min=2,max=100"`
	IssueDate      time.Time                   `json:"issueDate" gorm:"not null;index" validate:"required"`
	ExpiryDate     *time.Time                  `json:"expiryDate,omitempty"`
	CertificateID  string                      `json:"certificateId,omitempty" gorm:"type:text" validate:"max=100"`
	CertificateURL string                      `json:"certificateUrl,omitempty" gorm:"type:text" validate:"omitempty,url"`
	ImageURL       string                      `json:"imageUrl,omitempty" gorm:"type:text"`
	Skills         datatypes.JSONSlice[string] `json:"skills" validate:"dive,max=30"`
	Category       string                      `json:"category" gorm:"type:text;not null;index" validate:"omitempty,oneof=Technical Academic Professional Achievement Other"`
	Verified       bool                        `json:"verified"`
	Featured       bool                        `json:"featured" gorm:"index:idx_certificates_display,priority:1"`
	Order          int                         `json:"order" gorm:"column:display_order;not null;default:0;index:idx_certificates_display,priority:2"`
	IsActive       bool                        `json:"isActive" gorm:"index"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

// NewCertificate returns a Certificate with defaults applied.
func NewCertificate() Certificate {
	return Certificate{
		Category: "Technical",
		IsActive: true,
	}
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Normalize trims free-text fields and restores blanked-out defaults.
func (c *Certificate) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Issuer = strings.TrimSpace(c.Issuer)
	c.CertificateID = strings.TrimSpace(c.CertificateID)
	c.CertificateURL = strings.TrimSpace(c.CertificateURL)
	c.ImageURL = strings.TrimSpace(c.ImageURL)
	for i, skill := range c.Skills {
		c.Skills[i] = strings.TrimSpace(skill)
	}
	if c.Category == "" {
		c.Category = "Technical"
	}
}
