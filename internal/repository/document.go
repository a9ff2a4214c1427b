package repository

import (
	"time"

	"github.com/carebridge/careworker-go/internal/domain/document"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	Create(d *document.Document) error
	Save(d *document.Document) error
	FindByID(id uint) (document.Document, error)
	ListByWorker(workerID uint) ([]document.Document, error)
	ListCertificates(workerID uint) ([]document.Document, error)
	CountExpiringCertificates(workerID uint, within time.Duration) (int64, error)
	Delete(id uint) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{db: db}
}

func (r *DBDocumentRepo) Create(d *document.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) Save(d *document.Document) error {
	return r.db.Save(d).Error
}

func (r *DBDocumentRepo) FindByID(id uint) (document.Document, error) {
	var d document.Document
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDocumentRepo) ListByWorker(workerID uint) ([]document.Document, error) {
	var ds []document.Document
	err := r.db.Where("care_worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&ds).Error
	return ds, err
}

// ListCertificates returns the subset of a worker's documents matching the
// certificate convention: an expiry date, or "certificate" in the name.
func (r *DBDocumentRepo) ListCertificates(workerID uint) ([]document.Document, error) {
	var ds []document.Document
	err := r.db.Where("care_worker_id = ?", workerID).
		Where("expiry_date IS NOT NULL OR name ILIKE ?", "%certificate%").
		Order("expiry_date ASC NULLS LAST, created_at DESC").
		Find(&ds).Error
	return ds, err
}

func (r *DBDocumentRepo) CountExpiringCertificates(workerID uint, within time.Duration) (int64, error) {
	cutoff := time.Now().Add(within)
	var count int64
	err := r.db.Model(&document.Document{}).
		Where("care_worker_id = ?", workerID).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", cutoff).
		Count(&count).Error
	return count, err
}

func (r *DBDocumentRepo) Delete(id uint) error {
	res := r.db.Delete(&document.Document{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{db: tx}
}
