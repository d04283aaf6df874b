package database

import (
	"errors"

	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// projectDisplayOrder is the canonical listing order: featured entries first,
// then explicit display order, then newest first.
const projectDisplayOrder = "featured DESC, display_order ASC, created_at DESC"

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Find returns projects matching the filter in canonical display order.
func (r *ProjectRepo) Find(filter ProjectFilter) ([]models.Project, error) {
	query := r.applyFilter(filter).Order(projectDisplayOrder)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var projects []models.Project
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or (nil, nil) when it does not exist.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// Count returns the number of projects matching the filter.
func (r *ProjectRepo) Count(filter ProjectFilter) (int64, error) {
	var count int64
	err := r.applyFilter(filter).Count(&count).Error
	return count, err
}

func (r *ProjectRepo) applyFilter(filter ProjectFilter) *gorm.DB {
	query := r.db.Model(&models.Project{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	return query
}
