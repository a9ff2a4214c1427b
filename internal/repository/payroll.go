package repository

import (
	"github.com/carebridge/careworker-go/internal/domain/payroll"
	"gorm.io/gorm"
)

type PayrollRepo interface {
	Create(p *payroll.Payroll) error
	Save(p *payroll.Payroll) error
	FindByID(id uint) (payroll.Payroll, error)
	List(q payroll.ListPayrollQuery) ([]payroll.Row, error)
	ListByWorker(workerID uint) ([]payroll.Payroll, error)
	Delete(id uint) error
	WithTx(tx *gorm.DB) PayrollRepo
}

type DBPayrollRepo struct {
	db *gorm.DB
}

func NewPayrollRepo(db *gorm.DB) *DBPayrollRepo {
	return &DBPayrollRepo{db: db}
}

func (r *DBPayrollRepo) Create(p *payroll.Payroll) error {
	return r.db.Create(p).Error
}

func (r *DBPayrollRepo) Save(p *payroll.Payroll) error {
	return r.db.Save(p).Error
}

func (r *DBPayrollRepo) FindByID(id uint) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBPayrollRepo) List(q payroll.ListPayrollQuery) ([]payroll.Row, error) {
	query := r.db.Table("payroll p").
		Select("p.*, u.email, cwp.name AS care_worker_name").
		Joins("LEFT JOIN users u ON p.care_worker_id = u.id").
		Joins("LEFT JOIN care_worker_profiles cwp ON p.care_worker_id = cwp.user_id")

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("(p.name ILIKE ? OR p.client_no ILIKE ? OR cwp.name ILIKE ? OR u.email ILIKE ?)",
			term, term, term, term)
	}
	if q.Region != "" && q.Region != "All" {
		query = query.Where("p.region = ?", q.Region)
	}
	if q.Status != "" && q.Status != "All" {
		query = query.Where("p.status = ?", q.Status)
	}

	var rows []payroll.Row
	err := query.Order("p.date DESC NULLS LAST, p.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *DBPayrollRepo) ListByWorker(workerID uint) ([]payroll.Payroll, error) {
	var ps []payroll.Payroll
	err := r.db.Where("care_worker_id = ?", workerID).
		Order("date DESC NULLS LAST, created_at DESC").
		Find(&ps).Error
	return ps, err
}

func (r *DBPayrollRepo) Delete(id uint) error {
	res := r.db.Delete(&payroll.Payroll{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBPayrollRepo) WithTx(tx *gorm.DB) PayrollRepo {
	if tx == nil {
		return r
	}
	return &DBPayrollRepo{db: tx}
}
