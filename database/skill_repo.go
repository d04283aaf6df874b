package database

import (
	"errors"

	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const skillDisplayOrder = "category ASC, display_order ASC, name ASC"

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// Find returns skills matching the filter, ordered by category, display
// order, then name.
func (r *SkillRepo) Find(filter SkillFilter) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.applyFilter(filter).Order(skillDisplayOrder).Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or (nil, nil) when it does not exist.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill. Name uniqueness is enforced by the unique index;
// a duplicate surfaces as the driver's duplicate-key error.
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

// Categories returns the distinct categories present among active skills.
func (r *SkillRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Skill{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Count returns the number of skills matching the filter.
func (r *SkillRepo) Count(filter SkillFilter) (int64, error) {
	var count int64
	err := r.applyFilter(filter).Count(&count).Error
	return count, err
}

func (r *SkillRepo) applyFilter(filter SkillFilter) *gorm.DB {
	query := r.db.Model(&models.Skill{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	return query
}
