package client

import (
	"time"

	"github.com/ajaiswal/portfolio-backend/models"
	"gorm.io/datatypes"
)

// Static content shown when the backend is unreachable. Kept intentionally
// small, enough to render the page without empty sections.

func fallbackProjects() []models.Project {
	return []models.Project{
		{
			Title:        "Portfolio Website",
			Description:  "Personal portfolio with an admin-managed content backend.",
			Type:         "Web App",
			Technologies: datatypes.JSONSlice[string]{"Go", "PostgreSQL", "React"},
			Featured:     true,
			Status:       models.ProjectStatusActive,
		},
		{
			Title:        "Realtime Chat Service",
			Description:  "WebSocket chat service with presence tracking and message history.",
			Type:         "Backend",
			Technologies: datatypes.JSONSlice[string]{"Go", "Redis", "WebSocket"},
			Featured:     true,
			Status:       models.ProjectStatusActive,
		},
	}
}

func fallbackSkills() map[string][]models.Skill {
	return map[string][]models.Skill{
		"Programming Languages": {
			{Name: "Go", Category: "Programming Languages", Proficiency: 8, IsActive: true},
			{Name: "JavaScript", Category: "Programming Languages", Proficiency: 7, IsActive: true},
		},
		"Databases": {
			{Name: "PostgreSQL", Category: "Databases", Proficiency: 7, IsActive: true},
		},
	}
}

func fallbackCertificates() []models.Certificate {
	return []models.Certificate{
		{
			Title:       "AWS Certified Cloud Practitioner",
			Description: "Foundational AWS cloud certification.",
			Issuer:      "Amazon Web Services",
			IssueDate:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Category:    "Professional",
			Verified:    true,
			Featured:    true,
			IsActive:    true,
		},
	}
}
