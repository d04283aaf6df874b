package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project statuses
const (
	ProjectStatusActive   = "active"
	ProjectStatusInactive = "inactive"
	ProjectStatusArchived = "archived"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string                      `json:"title" gorm:"type:text;not null" validate:"required,min=3,max=100"`
	Description  string                      `json:"description" gorm:"type:text;not null" validate:"required,min=10,max=1000"`
	Type         string                      `json:"type" gorm:"type:text;not null" validate:"required,min=2,max=50"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" validate:"required,min=1,dive,max=30"`
	GithubURL    string                      `json:"githubUrl,omitempty" gorm:"type:text" validate:"omitempty,url"`
	DemoURL      string                      `json:"demoUrl,omitempty" gorm:"type:text" validate:"omitempty,url"`
	ImageURL     string                      `json:"imageUrl,omitempty" gorm:"type:text"`
	Featured     bool                        `json:"featured" gorm:"index:idx_projects_display,priority:1"`
	Order        int                         `json:"order" gorm:"column:display_order;not null;default:0;index:idx_projects_display,priority:2"`
	Status       string                      `json:"status" gorm:"type:text;not null;index" validate:"omitempty,oneof=active inactive archived"`
	StartDate    *time.Time                  `json:"startDate,omitempty"`
	EndDate      *time.Time                  `json:"endDate,omitempty"`
	TeamSize     int                         `json:"teamSize"`
	MyRole       string                      `json:"myRole,omitempty" gorm:"type:text" validate:"max=100"`
	CreatedAt    time.Time                   `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// NewProject returns a Project with defaults applied. Decoding a request body
// over this value keeps the defaults for any absent field.
func NewProject() Project {
	return Project{
		Status:   ProjectStatusActive,
		TeamSize: 1,
	}
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Normalize trims whitespace on free-text fields and restores defaults that
// were blanked out by the request body.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Type = strings.TrimSpace(p.Type)
	p.GithubURL = strings.TrimSpace(p.GithubURL)
	p.DemoURL = strings.TrimSpace(p.DemoURL)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.MyRole = strings.TrimSpace(p.MyRole)
	for i, tech := range p.Technologies {
		p.Technologies[i] = strings.TrimSpace(tech)
	}
	if p.Status == "" {
		p.Status = ProjectStatusActive
	}
}
