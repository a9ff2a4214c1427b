package repository

import (
	"errors"
	"time"

	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/internal/domain/template"
	"gorm.io/gorm"
)

// ErrStaleAssignment means another writer updated the assignment between
// read and write; the caller should retry with fresh state.
var ErrStaleAssignment = errors.New("assignment was modified concurrently")

type AssignmentRepo interface {
	Create(a *assignment.FormAssignment) error
	FindByID(id uint) (assignment.FormAssignment, error)
	ExistsForWorkerAndTemplate(workerID, templateID uint) (bool, error)
	UpdateLifecycle(a *assignment.FormAssignment, expectedRevision uint) error
	UpdateDueDate(id uint, due *time.Time) error
	CountByTemplate(templateID uint) (int64, error)
	CountByStatuses(statuses []assignment.Status) (int64, error)
	CountByWorkerAndStatuses(workerID uint, statuses []assignment.Status) (int64, error)
	ListByWorker(workerID uint) ([]assignment.WorkerAssignmentRow, error)
	ListStatusRows() ([]assignment.StatusRow, error)
	ListSubmissions(q template.ListSubmissionsQuery) ([]assignment.SubmissionRow, error)
	ListSignatureRows(workerID uint) ([]assignment.WorkerAssignmentRow, error)
	WithTx(tx *gorm.DB) AssignmentRepo
}

type DBAssignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) *DBAssignmentRepo {
	return &DBAssignmentRepo{db: db}
}

func (r *DBAssignmentRepo) Create(a *assignment.FormAssignment) error {
	return r.db.Create(a).Error
}

func (r *DBAssignmentRepo) FindByID(id uint) (assignment.FormAssignment, error) {
	var a assignment.FormAssignment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAssignmentRepo) ExistsForWorkerAndTemplate(workerID, templateID uint) (bool, error) {
	var count int64
	err := r.db.Model(&assignment.FormAssignment{}).
		Where("care_worker_id = ? AND form_template_id = ?", workerID, templateID).
		Count(&count).Error
	return count > 0, err
}

// UpdateLifecycle writes every lifecycle-owned column with a
// compare-and-swap on the revision counter. Zero rows affected means a
// concurrent writer won.
func (r *DBAssignmentRepo) UpdateLifecycle(a *assignment.FormAssignment, expectedRevision uint) error {
	res := r.db.Model(&assignment.FormAssignment{}).
		Where("id = ? AND revision = ?", a.ID, expectedRevision).
		Updates(map[string]interface{}{
			"form_data":              a.FormData,
			"completed_fields_count": a.CompletedFieldsCount,
			"total_fields_count":     a.TotalFieldsCount,
			"progress":               a.Progress,
			"status":                 a.Status,
			"signature_data":         a.SignatureData,
			"submitted_at":           a.SubmittedAt,
			"completed_at":           a.CompletedAt,
			"last_updated_at":        a.LastUpdatedAt,
			"revision":               expectedRevision + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleAssignment
	}
	a.Revision = expectedRevision + 1
	return nil
}

func (r *DBAssignmentRepo) UpdateDueDate(id uint, due *time.Time) error {
	res := r.db.Model(&assignment.FormAssignment{}).
		Where("id = ?", id).
		Update("due_date", due)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBAssignmentRepo) CountByTemplate(templateID uint) (int64, error) {
	var count int64
	err := r.db.Model(&assignment.FormAssignment{}).
		Where("form_template_id = ?", templateID).
		Count(&count).Error
	return count, err
}

func (r *DBAssignmentRepo) CountByStatuses(statuses []assignment.Status) (int64, error) {
	var count int64
	err := r.db.Model(&assignment.FormAssignment{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count, err
}

func (r *DBAssignmentRepo) CountByWorkerAndStatuses(workerID uint, statuses []assignment.Status) (int64, error) {
	var count int64
	err := r.db.Model(&assignment.FormAssignment{}).
		Where("care_worker_id = ? AND status IN ?", workerID, statuses).
		Count(&count).Error
	return count, err
}

func (r *DBAssignmentRepo) ListByWorker(workerID uint) ([]assignment.WorkerAssignmentRow, error) {
	var rows []assignment.WorkerAssignmentRow
	err := r.db.Table("form_assignments fa").
		Select(`
			fa.id, fa.status, fa.progress, fa.assigned_at, fa.submitted_at,
			fa.completed_at, fa.due_date, fa.form_data, fa.signature_data,
			ft.id AS form_template_id, ft.name AS form_name, ft.type AS form_type,
			ft.version AS form_version, ft.description AS form_description
		`).
		Joins("JOIN form_templates ft ON fa.form_template_id = ft.id").
		Where("fa.care_worker_id = ?", workerID).
		Order("fa.assigned_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBAssignmentRepo) ListStatusRows() ([]assignment.StatusRow, error) {
	var rows []assignment.StatusRow
	err := r.db.Table("form_assignments fa").
		Select(`
			fa.id AS assignment_id, fa.status, fa.progress,
			fa.completed_fields_count, fa.total_fields_count,
			fa.last_updated_at, fa.submitted_at, fa.completed_at,
			fa.assigned_at, fa.due_date,
			u.id AS care_worker_id, cwp.name AS care_worker_name,
			u.email AS care_worker_email,
			ft.id AS form_id, ft.name AS form_name, ft.type AS form_type
		`).
		Joins("JOIN users u ON fa.care_worker_id = u.id").
		Joins("LEFT JOIN care_worker_profiles cwp ON u.id = cwp.user_id").
		Joins("JOIN form_templates ft ON fa.form_template_id = ft.id").
		Order("fa.last_updated_at DESC, fa.assigned_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBAssignmentRepo) ListSubmissions(q template.ListSubmissionsQuery) ([]assignment.SubmissionRow, error) {
	query := r.db.Table("form_assignments fa").
		Select(`
			fa.id, fa.status, fa.progress, fa.submitted_at, fa.completed_at,
			fa.due_date, fa.form_data,
			ft.id AS form_template_id, ft.name AS form_name, ft.type AS form_type,
			ft.version AS form_version, ft.description AS form_description,
			u.id AS care_worker_id, u.email AS care_worker_email,
			cwp.name AS care_worker_name
		`).
		Joins("JOIN form_templates ft ON fa.form_template_id = ft.id").
		Joins("JOIN users u ON fa.care_worker_id = u.id").
		Joins("LEFT JOIN care_worker_profiles cwp ON u.id = cwp.user_id").
		Where("fa.status IN ?", []assignment.Status{
			assignment.StatusSubmitted,
			assignment.StatusCompleted,
			assignment.StatusSignaturePending,
		}).
		Where("ft.form_category = ?", template.CategoryTemplate)

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("(ft.name ILIKE ? OR ft.description ILIKE ?)", term, term)
	}
	if q.Status != "" && q.Status != "All" {
		query = query.Where("fa.status = ?", q.Status)
	}
	if q.DateFrom != "" {
		query = query.Where("DATE(fa.submitted_at) >= ?", q.DateFrom)
	}
	if q.DateTo != "" {
		query = query.Where("DATE(fa.submitted_at) <= ?", q.DateTo)
	}
	if q.SubmittedBy != "" {
		term := "%" + q.SubmittedBy + "%"
		query = query.Where("(cwp.name ILIKE ? OR u.email ILIKE ?)", term, term)
	}

	var rows []assignment.SubmissionRow
	err := query.Order("fa.submitted_at DESC").Scan(&rows).Error
	return rows, err
}

// ListSignatureRows returns assignments relevant to the signatures view:
// awaiting signature, or completed with one captured. workerID 0 means all
// workers (admin view).
func (r *DBAssignmentRepo) ListSignatureRows(workerID uint) ([]assignment.WorkerAssignmentRow, error) {
	query := r.db.Table("form_assignments fa").
		Select(`
			fa.id, fa.status, fa.progress, fa.assigned_at, fa.submitted_at,
			fa.completed_at, fa.due_date, fa.signature_data,
			ft.id AS form_template_id, ft.name AS form_name, ft.type AS form_type,
			ft.version AS form_version, ft.description AS form_description
		`).
		Joins("JOIN form_templates ft ON fa.form_template_id = ft.id").
		Where(`fa.status = ? OR fa.status = ? OR (fa.status = ? AND fa.signature_data IS NOT NULL)`,
			assignment.StatusSignaturePending,
			assignment.StatusSubmitted,
			assignment.StatusCompleted,
		)

	if workerID != 0 {
		query = query.Where("fa.care_worker_id = ?", workerID)
	}

	var rows []assignment.WorkerAssignmentRow
	err := query.Order("fa.submitted_at DESC, fa.completed_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *DBAssignmentRepo) WithTx(tx *gorm.DB) AssignmentRepo {
	if tx == nil {
		return r
	}
	return &DBAssignmentRepo{db: tx}
}
