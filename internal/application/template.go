package application

import (
	"encoding/json"
	"errors"

	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/carebridge/careworker-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound = errors.New("form template not found")
	ErrBadFormSchema    = errors.New("form schema is not valid JSON")
)

type TemplateService struct {
	Repos *repository.Repos
}

func NewTemplateService(repos *repository.Repos) *TemplateService {
	return &TemplateService{Repos: repos}
}

func (s *TemplateService) List(category template.Category, activeOnly bool, q template.ListTemplatesQuery) ([]template.FormTemplate, error) {
	return s.Repos.Template.List(category, activeOnly, q)
}

func (s *TemplateService) Get(id uint) (template.FormTemplate, error) {
	t, err := s.Repos.Template.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return template.FormTemplate{}, ErrTemplateNotFound
		}
		return template.FormTemplate{}, err
	}
	return t, nil
}

func (s *TemplateService) Create(createdBy uint, input template.CreateTemplateInput) (template.FormTemplate, error) {
	t := template.FormTemplate{
		Name:         input.Name,
		Description:  input.Description,
		Type:         "Input",
		Version:      "1.0",
		IsActive:     true,
		FormCategory: template.CategoryTemplate,
		CreatedBy:    createdBy,
	}
	if input.Type != "" {
		t.Type = input.Type
	}
	if input.Version != "" {
		t.Version = input.Version
	}
	if input.IsActive != nil {
		t.IsActive = *input.IsActive
	}
	if input.FormCategory != "" {
		t.FormCategory = template.Category(input.FormCategory)
	}
	if input.FormData != nil {
		raw, err := json.Marshal(input.FormData)
		if err != nil {
			return template.FormTemplate{}, ErrBadFormSchema
		}
		t.FormData = raw
	}

	if err := s.Repos.Template.Create(&t); err != nil {
		return template.FormTemplate{}, err
	}
	return t, nil
}

func (s *TemplateService) Update(id uint, input template.UpdateTemplateInput) (template.FormTemplate, error) {
	t, err := s.Repos.Template.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return template.FormTemplate{}, ErrTemplateNotFound
		}
		return template.FormTemplate{}, err
	}

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Description != nil {
		t.Description = input.Description
	}
	if input.Type != nil {
		t.Type = *input.Type
	}
	if input.Version != nil {
		t.Version = *input.Version
	}
	if input.IsActive != nil {
		t.IsActive = *input.IsActive
	}
	if input.FormData != nil {
		raw, err := json.Marshal(input.FormData)
		if err != nil {
			return template.FormTemplate{}, ErrBadFormSchema
		}
		t.FormData = raw
	}

	if err := s.Repos.Template.Save(&t); err != nil {
		return template.FormTemplate{}, err
	}
	return t, nil
}

// Delete hard-deletes an unreferenced template. Once assignments reference
// it the template is deactivated instead so history keeps resolving.
// Returns true when the delete was a deactivation.
func (s *TemplateService) Delete(id uint) (bool, error) {
	if _, err := s.Repos.Template.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrTemplateNotFound
		}
		return false, err
	}

	count, err := s.Repos.Assignment.CountByTemplate(id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, s.Repos.Template.Deactivate(id)
	}
	return false, s.Repos.Template.Delete(id)
}
