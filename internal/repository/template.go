package repository

import (
	"github.com/carebridge/careworker-go/internal/domain/template"
	"gorm.io/gorm"
)

type TemplateRepo interface {
	Create(t *template.FormTemplate) error
	Save(t *template.FormTemplate) error
	FindByID(id uint) (template.FormTemplate, error)
	FindActiveByID(id uint) (template.FormTemplate, error)
	List(category template.Category, activeOnly bool, q template.ListTemplatesQuery) ([]template.FormTemplate, error)
	Delete(id uint) error
	Deactivate(id uint) error
	WithTx(tx *gorm.DB) TemplateRepo
}

type DBTemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *DBTemplateRepo {
	return &DBTemplateRepo{db: db}
}

func (r *DBTemplateRepo) Create(t *template.FormTemplate) error {
	return r.db.Create(t).Error
}

func (r *DBTemplateRepo) Save(t *template.FormTemplate) error {
	return r.db.Save(t).Error
}

func (r *DBTemplateRepo) FindByID(id uint) (template.FormTemplate, error) {
	var t template.FormTemplate
	err := r.db.First(&t, id).Error
	return t, err
}

func (r *DBTemplateRepo) FindActiveByID(id uint) (template.FormTemplate, error) {
	var t template.FormTemplate
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&t).Error
	return t, err
}

func (r *DBTemplateRepo) List(category template.Category, activeOnly bool, q template.ListTemplatesQuery) ([]template.FormTemplate, error) {
	query := r.db.Model(&template.FormTemplate{}).
		Where("form_category = ?", category)

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", term, term)
	}
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}

	var templates []template.FormTemplate
	err := query.Order("name ASC").Find(&templates).Error
	return templates, err
}

func (r *DBTemplateRepo) Delete(id uint) error {
	return r.db.Delete(&template.FormTemplate{}, id).Error
}

func (r *DBTemplateRepo) Deactivate(id uint) error {
	return r.db.Model(&template.FormTemplate{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *DBTemplateRepo) WithTx(tx *gorm.DB) TemplateRepo {
	if tx == nil {
		return r
	}
	return &DBTemplateRepo{db: tx}
}
