package database

import (
	"errors"

	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const certificateDisplayOrder = "featured DESC, display_order ASC, issue_date DESC"

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

// Find returns certificates matching the filter in canonical display order.
func (r *CertificateRepo) Find(filter CertificateFilter) ([]models.Certificate, error) {
	query := r.applyFilter(filter).Order(certificateDisplayOrder)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var certificates []models.Certificate
	err := query.Find(&certificates).Error
	return certificates, err
}

// FindByID returns a certificate by its ID, or (nil, nil) when it does not
// exist.
func (r *CertificateRepo) FindByID(id uuid.UUID) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.db.First(&certificate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

// Add inserts a new certificate into the database
func (r *CertificateRepo) Add(certificate *models.Certificate) error {
	return r.db.Create(certificate).Error
}

// Update updates an existing certificate in the database
func (r *CertificateRepo) Update(certificate *models.Certificate) error {
	return r.db.Save(certificate).Error
}

// Delete removes a certificate from the database by id
func (r *CertificateRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certificate{}, "id = ?", id).Error
}

// Categories returns the distinct categories present among active
// certificates.
func (r *CertificateRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Certificate{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Count returns the number of certificates matching the filter.
func (r *CertificateRepo) Count(filter CertificateFilter) (int64, error) {
	var count int64
	err := r.applyFilter(filter).Count(&count).Error
	return count, err
}

func (r *CertificateRepo) applyFilter(filter CertificateFilter) *gorm.DB {
	query := r.db.Model(&models.Certificate{})
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	return query
}
