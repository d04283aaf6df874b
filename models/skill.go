package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillCategories is the fixed set of valid skill categories.
var SkillCategories = []string{
	"Programming Languages",
	"Tools & Technologies",
	"Specializations",
	"Frameworks",
	"Databases",
	"Other",
}

const defaultSkillColor = "#7C3AED"

// Skill represents a single skill entry. Names are unique; the constraint is
// enforced by the store's unique index, not by the application.
type Skill struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string    `json:"name" gorm:"type:text;not null;uniqueIndex" validate:"required,min=2,max=50"`
	Category          string    `json:"category" gorm:"type:text;not null;index:idx_skills_display,priority:1" validate:"required,oneof='Programming Languages' 'Tools & Technologies' 'Specializations' 'Frameworks' 'Databases' 'Other'"`
	Proficiency       int       `json:"proficiency" validate:"omitempty,min=1,max=10"`
	YearsOfExperience float64   `json:"yearsOfExperience" validate:"min=0"`
	Certified         bool      `json:"certified"`
	Icon              string    `json:"icon,omitempty" gorm:"type:text"`
	Color             string    `json:"color,omitempty" gorm:"type:text"`
	Order             int       `json:"order" gorm:"column:display_order;not null;default:0;index:idx_skills_display,priority:2"`
	IsActive          bool      `json:"isActive" gorm:"index"`
	Description       string    `json:"description,omitempty" gorm:"type:text" validate:"max=200"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewSkill returns a Skill with defaults applied.
func NewSkill() Skill {
	return Skill{
		Category:    "Other",
		Proficiency: 5,
		Color:       defaultSkillColor,
		IsActive:    true,
	}
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Normalize trims free-text fields and restores blanked-out defaults.
func (s *Skill) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Category = strings.TrimSpace(s.Category)
	s.Icon = strings.TrimSpace(s.Icon)
	s.Color = strings.TrimSpace(s.Color)
	s.Description = strings.TrimSpace(s.Description)
	if s.Proficiency == 0 {
		s.Proficiency = 5
	}
	if s.Color == "" {
		s.Color = defaultSkillColor
	}
}
