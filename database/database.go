package database

import (
	"github.com/ajaiswal/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db              *gorm.DB
	projectRepo     *ProjectRepo
	skillRepo       *SkillRepo
	certificateRepo *CertificateRepo
	contactRepo     *ContactRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:              db,
		projectRepo:     NewProjectRepo(db),
		skillRepo:       NewSkillRepo(db),
		certificateRepo: NewCertificateRepo(db),
		contactRepo:     NewContactRepo(db),
	}
}

// Migrate creates or updates the schema for every entity, including the
// unique index backing skill-name uniqueness.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.Certificate{},
		&models.Contact{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}
