package database

import (
	"errors"

	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindPage returns one page of contact messages, newest first, along with the
// total number of messages matching the filter.
func (r *ContactRepo) FindPage(filter ContactFilter) ([]models.Contact, int64, error) {
	filter = filter.Normalized()

	query := r.applyStatus(filter.Status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&contacts).Error
	return contacts, total, err
}

// FindByID returns a contact by its ID, or (nil, nil) when it does not exist.
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Add inserts a new contact message into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Update updates an existing contact message in the database
func (r *ContactRepo) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes a contact message from the database by id
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}

// Count returns the number of contact messages, optionally restricted to one
// lifecycle status.
func (r *ContactRepo) Count(status string) (int64, error) {
	var count int64
	err := r.applyStatus(status).Count(&count).Error
	return count, err
}

func (r *ContactRepo) applyStatus(status string) *gorm.DB {
	query := r.db.Model(&models.Contact{})
	if models.IsValidContactStatus(status) {
		query = query.Where("status = ?", status)
	}
	return query
}
