package application

import (
	"testing"

	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupTemplateServiceMocks(t *testing.T) (*TemplateService, *mock.MockTemplateRepo, *mock.MockAssignmentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTemplate := mock.NewMockTemplateRepo(ctrl)
	mockAssignment := mock.NewMockAssignmentRepo(ctrl)
	repos := &repository.Repos{
		Template:   mockTemplate,
		Assignment: mockAssignment,
	}
	svc := NewTemplateService(repos)
	return svc, mockTemplate, mockAssignment
}

// --------------------- Create ---------------------
func TestCreateTemplate_Defaults(t *testing.T) {
	svc, mockTemplate, _ := setupTemplateServiceMocks(t)

	var saved template.FormTemplate
	mockTemplate.EXPECT().Create(gomock.Any()).DoAndReturn(func(tpl *template.FormTemplate) error {
		tpl.ID = 10
		saved = *tpl
		return nil
	})

	created, err := svc.Create(1, template.CreateTemplateInput{Name: "Employment Contract"})
	assert.NoError(t, err)
	assert.Equal(t, uint(10), created.ID)
	assert.Equal(t, "Input", saved.Type)
	assert.Equal(t, "1.0", saved.Version)
	assert.Equal(t, template.CategoryTemplate, saved.FormCategory)
	assert.Equal(t, uint(1), saved.CreatedBy)
	assert.True(t, saved.IsActive)
}

// --------------------- Delete ---------------------
func TestDeleteTemplate_HardDeleteWhenUnreferenced(t *testing.T) {
	svc, mockTemplate, mockAssignment := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10}, nil)
	mockAssignment.EXPECT().CountByTemplate(uint(10)).Return(int64(0), nil)
	mockTemplate.EXPECT().Delete(uint(10)).Return(nil)

	deactivated, err := svc.Delete(10)
	assert.NoError(t, err)
	assert.False(t, deactivated)
}

func TestDeleteTemplate_DeactivatesWhenReferenced(t *testing.T) {
	svc, mockTemplate, mockAssignment := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10}, nil)
	mockAssignment.EXPECT().CountByTemplate(uint(10)).Return(int64(3), nil)
	mockTemplate.EXPECT().Deactivate(uint(10)).Return(nil)

	deactivated, err := svc.Delete(10)
	assert.NoError(t, err)
	assert.True(t, deactivated)
}

func TestDeleteTemplate_NotFound(t *testing.T) {
	svc, mockTemplate, _ := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().FindByID(uint(99)).Return(template.FormTemplate{}, gorm.ErrRecordNotFound)

	_, err := svc.Delete(99)
	assert.Equal(t, ErrTemplateNotFound, err)
}
