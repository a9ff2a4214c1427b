package repository

import (
	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"gorm.io/gorm"
)

type SignatureRepo interface {
	Create(s *assignment.Signature) error
	ListByAssignment(assignmentID uint) ([]assignment.Signature, error)
	WithTx(tx *gorm.DB) SignatureRepo
}

type DBSignatureRepo struct {
	db *gorm.DB
}

func NewSignatureRepo(db *gorm.DB) *DBSignatureRepo {
	return &DBSignatureRepo{db: db}
}

func (r *DBSignatureRepo) Create(s *assignment.Signature) error {
	return r.db.Create(s).Error
}

func (r *DBSignatureRepo) ListByAssignment(assignmentID uint) ([]assignment.Signature, error) {
	var sigs []assignment.Signature
	err := r.db.Where("form_assignment_id = ?", assignmentID).
		Order("created_at DESC").
		Find(&sigs).Error
	return sigs, err
}

func (r *DBSignatureRepo) WithTx(tx *gorm.DB) SignatureRepo {
	if tx == nil {
		return r
	}
	return &DBSignatureRepo{db: tx}
}
