package repository

import (
	"github.com/carebridge/careworker-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByEmail(email string) (user.User, error)
	GetUserByID(id uint) (user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	EmailTaken(email string, excludeID uint) (bool, error)
	GetProfileByUserID(userID uint) (user.CareWorkerProfile, error)
	SaveProfile(p *user.CareWorkerProfile) error
	DeleteProfileByUserID(userID uint) error
	GetCareWorkerRow(id uint) (user.CareWorkerRow, error)
	ListCareWorkers(q user.ListCareWorkersQuery) ([]user.CareWorkerRow, error)
	RecentCareWorkers(limit int) ([]user.CareWorkerRow, error)
	CountActiveCareWorkers() (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("email = ? AND id != ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBUserRepo) GetProfileByUserID(userID uint) (user.CareWorkerProfile, error) {
	var p user.CareWorkerProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	return p, err
}

func (r *DBUserRepo) SaveProfile(p *user.CareWorkerProfile) error {
	return r.db.Save(p).Error
}

func (r *DBUserRepo) DeleteProfileByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&user.CareWorkerProfile{}).Error
}

func (r *DBUserRepo) careWorkerQuery() *gorm.DB {
	return r.db.Table("users u").
		Select(`
			u.id, u.email, u.status, u.created_at,
			cwp.name, cwp.phone, cwp.address,
			cwp.emergency_contact_name, cwp.emergency_contact_phone,
			cwp.progress, cwp.pending_sign_offs,
			COUNT(DISTINCT fa.id) AS total_forms,
			COUNT(DISTINCT CASE WHEN fa.status = 'completed' THEN fa.id END) AS completed_forms,
			COUNT(DISTINCT CASE WHEN fa.status = 'signature_pending' THEN fa.id END) AS calculated_pending_signoff
		`).
		Joins("LEFT JOIN care_worker_profiles cwp ON u.id = cwp.user_id").
		Joins("LEFT JOIN form_assignments fa ON u.id = fa.care_worker_id").
		Where("u.role = ?", "care_worker").
		Group("u.id, u.email, u.status, u.created_at, cwp.name, cwp.phone, cwp.address, cwp.emergency_contact_name, cwp.emergency_contact_phone, cwp.progress, cwp.pending_sign_offs")
}

func (r *DBUserRepo) GetCareWorkerRow(id uint) (user.CareWorkerRow, error) {
	var row user.CareWorkerRow
	err := r.careWorkerQuery().
		Where("u.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return row, err
	}
	if row.ID == 0 {
		return row, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (r *DBUserRepo) ListCareWorkers(q user.ListCareWorkersQuery) ([]user.CareWorkerRow, error) {
	query := r.careWorkerQuery()

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("(cwp.name ILIKE ? OR u.email ILIKE ? OR cwp.phone ILIKE ?)", term, term, term)
	}
	if q.Status != "" && q.Status != "All" {
		query = query.Where("u.status = ?", toStatusValue(q.Status))
	}

	var rows []user.CareWorkerRow
	err := query.Order("u.id DESC").Scan(&rows).Error
	return rows, err
}

func (r *DBUserRepo) RecentCareWorkers(limit int) ([]user.CareWorkerRow, error) {
	var rows []user.CareWorkerRow
	err := r.careWorkerQuery().
		Order("u.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *DBUserRepo) CountActiveCareWorkers() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("role = ? AND status = ?", user.RoleCareWorker, user.StatusActive).
		Count(&count).Error
	return count, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}

func toStatusValue(s string) string {
	switch s {
	case "Active", "active":
		return "active"
	case "Inactive", "inactive":
		return "inactive"
	default:
		return "pending"
	}
}
