package database

import (
	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/google/uuid"
)

// The store interfaces are the capability surface handlers depend on. The
// GORM repositories implement them against postgres; tests substitute
// in-memory fakes. FindByID returns (nil, nil) for a lookup miss so callers
// can distinguish absence from a store failure.

// ProjectFilter narrows and truncates a project listing. Limit <= 0 means
// unbounded.
type ProjectFilter struct {
	FeaturedOnly bool
	Status       string
	Limit        int
}

type ProjectStore interface {
	Find(filter ProjectFilter) ([]models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	Count(filter ProjectFilter) (int64, error)
}

// SkillFilter narrows a skill listing.
type SkillFilter struct {
	Category   string
	ActiveOnly bool
}

type SkillStore interface {
	Find(filter SkillFilter) ([]models.Skill, error)
	FindByID(id uuid.UUID) (*models.Skill, error)
	Add(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id uuid.UUID) error
	Categories() ([]string, error)
	Count(filter SkillFilter) (int64, error)
}

// CertificateFilter narrows and truncates a certificate listing. Limit <= 0
// means unbounded.
type CertificateFilter struct {
	FeaturedOnly bool
	Category     string
	ActiveOnly   bool
	Limit        int
}

type CertificateStore interface {
	Find(filter CertificateFilter) ([]models.Certificate, error)
	FindByID(id uuid.UUID) (*models.Certificate, error)
	Add(certificate *models.Certificate) error
	Update(certificate *models.Certificate) error
	Delete(id uuid.UUID) error
	Categories() ([]string, error)
	Count(filter CertificateFilter) (int64, error)
}

// ContactFilter selects one page of the inbox, newest first. Status is
// ignored unless it is a valid lifecycle state.
type ContactFilter struct {
	Status string
	Page   int
	Limit  int
}

// Normalized clamps Page and Limit to the values a page query will actually
// use, so pagination metadata built from the filter matches the served rows.
func (f ContactFilter) Normalized() ContactFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	return f
}

type ContactStore interface {
	// FindPage returns one page plus the total match count for pagination.
	FindPage(filter ContactFilter) ([]models.Contact, int64, error)
	FindByID(id uuid.UUID) (*models.Contact, error)
	Add(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) error
	Count(status string) (int64, error)
}
