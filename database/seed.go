package database

import (
	"time"

	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// Seed populates empty collections with sample portfolio content so a fresh
// local database renders something. Collections that already hold rows are
// left untouched.
func (d Database) Seed() error {
	var projectCount int64
	if err := d.db.Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount == 0 {
		projects := sampleProjects()
		if err := d.db.Create(&projects).Error; err != nil {
			return err
		}
		log.Info().Int("count", len(projects)).Msg("Seeded projects")
	}

	var skillCount int64
	if err := d.db.Model(&models.Skill{}).Count(&skillCount).Error; err != nil {
		return err
	}
	if skillCount == 0 {
		skills := sampleSkills()
		if err := d.db.Create(&skills).Error; err != nil {
			return err
		}
		log.Info().Int("count", len(skills)).Msg("Seeded skills")
	}

	var certificateCount int64
	if err := d.db.Model(&models.Certificate{}).Count(&certificateCount).Error; err != nil {
		return err
	}
	if certificateCount == 0 {
		certificates := sampleCertificates()
		if err := d.db.Create(&certificates).Error; err != nil {
			return err
		}
		log.Info().Int("count", len(certificates)).Msg("Seeded certificates")
	}

	return nil
}

func sampleProjects() []models.Project {
	return []models.Project{
		{
			Title:        "Raksha360",
			Description:  "A comprehensive safety application for iOS that provides real-time emergency assistance, location tracking, and safety features.",
			Type:         "iOS Application",
			Technologies: datatypes.JSONSlice[string]{"Swift", "Xcode", "iOS", "Core Location"},
			GithubURL:    "https://github.com/ajaiswal/raksha360",
			Featured:     true,
			Order:        1,
			Status:       models.ProjectStatusActive,
			TeamSize:     1,
		},
		{
			Title:        "FarmSuraksha 360",
			Description:  "An agricultural protection system that uses machine learning to monitor crop health, predict diseases, and give farmers actionable insights.",
			Type:         "Agriculture Tech",
			Technologies: datatypes.JSONSlice[string]{"Python", "Computer Vision", "Flask"},
			GithubURL:    "https://github.com/ajaiswal/farmsuraksha360",
			Featured:     true,
			Order:        2,
			Status:       models.ProjectStatusActive,
			TeamSize:     3,
		},
		{
			Title:        "University Management System",
			Description:  "A web-based system for managing university operations including student records, course management, and academic tracking.",
			Type:         "Web Application",
			Technologies: datatypes.JSONSlice[string]{"JavaScript", "MySQL", "PHP"},
			GithubURL:    "https://github.com/ajaiswal/university-management",
			Featured:     true,
			Order:        3,
			Status:       models.ProjectStatusActive,
			TeamSize:     2,
		},
		{
			Title:        "Blood Bank Management System",
			Description:  "A digital solution for blood banks to manage donor records, blood inventory, and request processing.",
			Type:         "Healthcare System",
			Technologies: datatypes.JSONSlice[string]{"SQL", "Database Design", "ER Modeling"},
			GithubURL:    "https://github.com/ajaiswal/blood-bank-management",
			Order:        4,
			Status:       models.ProjectStatusActive,
			TeamSize:     1,
		},
	}
}

func sampleSkills() []models.Skill {
	return []models.Skill{
		{Name: "Python", Category: "Programming Languages", Proficiency: 8, YearsOfExperience: 2, Order: 1, IsActive: true, Color: defaultSampleColor},
		{Name: "Swift", Category: "Programming Languages", Proficiency: 7, YearsOfExperience: 1.5, Order: 2, IsActive: true, Color: defaultSampleColor},
		{Name: "JavaScript", Category: "Programming Languages", Proficiency: 7, YearsOfExperience: 2, Order: 3, IsActive: true, Color: defaultSampleColor},
		{Name: "SQL", Category: "Programming Languages", Proficiency: 8, YearsOfExperience: 2, Order: 4, IsActive: true, Color: defaultSampleColor},
		{Name: "Xcode", Category: "Tools & Technologies", Proficiency: 7, YearsOfExperience: 1.5, Order: 1, IsActive: true, Color: defaultSampleColor},
		{Name: "VS Code", Category: "Tools & Technologies", Proficiency: 9, YearsOfExperience: 2.5, Order: 2, IsActive: true, Color: defaultSampleColor},
		{Name: "MySQL", Category: "Tools & Technologies", Proficiency: 8, YearsOfExperience: 2, Order: 3, IsActive: true, Color: defaultSampleColor},
		{Name: "DBMS", Category: "Specializations", Proficiency: 8, YearsOfExperience: 2, Order: 1, IsActive: true, Color: defaultSampleColor},
		{Name: "Statistical Analysis", Category: "Specializations", Proficiency: 7, YearsOfExperience: 1, Order: 2, IsActive: true, Color: defaultSampleColor},
	}
}

const defaultSampleColor = "#7C3AED"

func sampleCertificates() []models.Certificate {
	return []models.Certificate{
		{
			Title:       "DSA MasterMind",
			Description: "MCQ Elimination Round Certificate",
			Issuer:      "DSA MasterMind",
			IssueDate:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Category:    "Technical",
			Skills:      datatypes.JSONSlice[string]{"Data Structures", "Algorithms"},
			Featured:    true,
			Verified:    true,
			Order:       1,
			IsActive:    true,
		},
		{
			Title:       "SparkIIT",
			Description: "Growth & Operation Certificate",
			Issuer:      "SparkIIT",
			IssueDate:   time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			Category:    "Professional",
			Skills:      datatypes.JSONSlice[string]{"Operations", "Growth Strategy"},
			Featured:    true,
			Order:       2,
			IsActive:    true,
		},
		{
			Title:       "Database Management Essentials",
			Description: "Coursework certificate covering relational modeling and SQL",
			Issuer:      "Coursera",
			IssueDate:   time.Date(2023, time.November, 2, 0, 0, 0, 0, time.UTC),
			Category:    "Academic",
			Skills:      datatypes.JSONSlice[string]{"SQL", "ER Modeling"},
			Order:       3,
			IsActive:    true,
		},
	}
}
