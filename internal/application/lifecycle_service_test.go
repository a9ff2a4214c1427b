package application

import (
	"errors"
	"testing"

	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/internal/domain/notification"
	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordingPublisher captures what the service pushes to live subscribers.
type recordingPublisher struct {
	published []notification.Notification
}

func (p *recordingPublisher) Publish(ns ...notification.Notification) {
	p.published = append(p.published, ns...)
}

type lifecycleMocks struct {
	user         *mock.MockUserRepo
	template     *mock.MockTemplateRepo
	assignment   *mock.MockAssignmentRepo
	signature    *mock.MockSignatureRepo
	notification *mock.MockNotificationRepo
	events       *recordingPublisher
}

// --------------------- Setup ---------------------
func setupLifecycleServiceMocks(t *testing.T) (*LifecycleService, lifecycleMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := lifecycleMocks{
		user:         mock.NewMockUserRepo(ctrl),
		template:     mock.NewMockTemplateRepo(ctrl),
		assignment:   mock.NewMockAssignmentRepo(ctrl),
		signature:    mock.NewMockSignatureRepo(ctrl),
		notification: mock.NewMockNotificationRepo(ctrl),
		events:       &recordingPublisher{},
	}
	repos := &repository.Repos{
		User:         m.user,
		Template:     m.template,
		Assignment:   m.assignment,
		Signature:    m.signature,
		Notification: m.notification,
	}
	svc := NewLifecycleService(repos, m.events)
	return svc, m
}

func contractSchema() datatypes.JSON {
	return datatypes.JSON(`{"fields":[
		{"name":"full_name","required":true},
		{"name":"start_date","required":true},
		{"name":"notes"}
	]}`)
}

func expectWorkerAggregates(m lifecycleMocks, workerID uint) {
	m.user.EXPECT().GetProfileByUserID(workerID).Return(user.CareWorkerProfile{UserID: workerID}, nil)
	m.assignment.EXPECT().CountByWorkerAndStatuses(workerID, gomock.Any()).Return(int64(4), nil)
	m.assignment.EXPECT().CountByWorkerAndStatuses(workerID, gomock.Any()).Return(int64(1), nil)
	m.assignment.EXPECT().CountByWorkerAndStatuses(workerID, gomock.Any()).Return(int64(2), nil)
	m.user.EXPECT().SaveProfile(gomock.Any()).Return(nil)
}

// --------------------- AssignForms ---------------------
func TestAssignForms_SkipsDuplicates(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Role: user.RoleCareWorker}, nil)

	tpl := template.FormTemplate{ID: 10, Name: "Employment Contract", FormData: contractSchema()}
	m.template.EXPECT().FindActiveByID(uint(10)).Return(tpl, nil)
	m.assignment.EXPECT().ExistsForWorkerAndTemplate(uint(5), uint(10)).Return(false, nil)
	m.assignment.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *assignment.FormAssignment) error {
		a.ID = 100
		return nil
	})

	m.template.EXPECT().FindActiveByID(uint(11)).Return(template.FormTemplate{ID: 11, Name: "Health Declaration"}, nil)
	m.assignment.EXPECT().ExistsForWorkerAndTemplate(uint(5), uint(11)).Return(true, nil)

	m.notification.EXPECT().CreateBatch(gomock.Any()).Return(nil)

	result, err := svc.AssignForms(1, assignment.AssignFormsInput{
		CareWorkerID:    5,
		FormTemplateIDs: []uint{10, 11},
	})
	assert.NoError(t, err)
	assert.Len(t, result.Created, 1)
	assert.Equal(t, uint(10), result.Created[0].FormTemplateID)
	assert.Equal(t, 3, result.Created[0].TotalFieldsCount)
	assert.Equal(t, []uint{11}, result.Skipped)

	// one live notification per created assignment, none for skips
	assert.Len(t, m.events.published, 1)
	assert.Equal(t, uint(5), m.events.published[0].UserID)
	assert.Equal(t, notification.TypeFormAssigned, m.events.published[0].Type)
}

func TestAssignForms_RejectsNonWorkerTarget(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Role: user.RoleAdmin}, nil)

	_, err := svc.AssignForms(1, assignment.AssignFormsInput{
		CareWorkerID:    2,
		FormTemplateIDs: []uint{10},
	})
	assert.Equal(t, ErrCareWorkerNotFound, err)
	assert.Empty(t, m.events.published)
}

func TestAssignForms_TemplateNotFound(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Role: user.RoleCareWorker}, nil)
	m.template.EXPECT().FindActiveByID(uint(99)).Return(template.FormTemplate{}, gorm.ErrRecordNotFound)

	_, err := svc.AssignForms(1, assignment.AssignFormsInput{
		CareWorkerID:    5,
		FormTemplateIDs: []uint{99},
	})
	assert.Equal(t, ErrTemplateNotFound, err)
	assert.Empty(t, m.events.published)
}

// --------------------- UpdateProgress ---------------------
func TestUpdateProgress_PromotesToInProgress(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{
		ID:               7,
		CareWorkerID:     5,
		FormTemplateID:   10,
		Status:           assignment.StatusAssigned,
		TotalFieldsCount: 3,
	}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, FormData: contractSchema()}, nil)
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(0)).Return(nil)

	result, err := svc.UpdateProgress(5, assignment.UpdateProgressInput{
		AssignedFormID: 7,
		FieldName:      "full_name",
		FieldValue:     "Ada",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.CompletedFieldsCount)
	assert.Equal(t, 3, result.TotalFieldsCount)
	assert.Equal(t, 33, result.Progress)
	assert.Equal(t, assignment.StatusInProgress, result.Status)
}

func TestUpdateProgress_OwnershipEnforced(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(7)).Return(assignment.FormAssignment{ID: 7, CareWorkerID: 5}, nil)

	_, err := svc.UpdateProgress(6, assignment.UpdateProgressInput{AssignedFormID: 7, FieldName: "x"})
	assert.Equal(t, ErrNotYourAssignment, err)
}

func TestUpdateProgress_ConcurrentWriteConflicts(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, Revision: 3, TotalFieldsCount: 3}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10}, nil)
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(3)).Return(repository.ErrStaleAssignment)

	_, err := svc.UpdateProgress(5, assignment.UpdateProgressInput{AssignedFormID: 7, FieldName: "x", FieldValue: "y"})
	assert.Equal(t, ErrAssignmentConflict, err)
}

// --------------------- Submit ---------------------
func TestSubmit_RejectsMissingRequired(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, Status: assignment.StatusInProgress}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, FormData: contractSchema()}, nil)

	_, err := svc.Submit(5, assignment.SubmitInput{
		AssignedFormID: 7,
		FilledFormData: assignment.FieldMap{"full_name": "Ada"},
	})

	var missing *MissingFieldsError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"start_date"}, missing.Fields)
	assert.Empty(t, m.events.published)
}

func TestSubmit_SignatureRequested(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, AssignedBy: 1, Status: assignment.StatusInProgress}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, Name: "Employment Contract", FormData: contractSchema()}, nil).Times(2)
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(0)).Return(nil)
	expectWorkerAggregates(m, 5)
	m.notification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		n.ID = 50
		return nil
	})

	result, err := svc.Submit(5, assignment.SubmitInput{
		AssignedFormID:    7,
		FilledFormData:    assignment.FieldMap{"full_name": "Ada", "start_date": "2026-09-01"},
		RequiresSignature: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, assignment.StatusSignaturePending, result.Status)
	assert.True(t, result.RequiresSignature)

	assert.Len(t, m.events.published, 1)
	assert.Equal(t, uint(1), m.events.published[0].UserID)
	assert.Equal(t, notification.TypeFormSubmitted, m.events.published[0].Type)
}

func TestSubmit_FullFillCompletes(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, AssignedBy: 1, Status: assignment.StatusInProgress, TotalFieldsCount: 3}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, Name: "Employment Contract", FormData: contractSchema()}, nil)

	var saved assignment.FormAssignment
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(0)).DoAndReturn(func(a *assignment.FormAssignment, _ uint) error {
		saved = *a
		return nil
	})
	expectWorkerAggregates(m, 5)

	result, err := svc.Submit(5, assignment.SubmitInput{
		AssignedFormID: 7,
		FilledFormData: assignment.FieldMap{"full_name": "Ada", "start_date": "2026-09-01", "notes": "n/a"},
	})
	assert.NoError(t, err)
	assert.Equal(t, assignment.StatusCompleted, result.Status)
	assert.Equal(t, 100, result.Progress)
	assert.False(t, result.RequiresSignature)
	assert.NotNil(t, saved.CompletedAt)
	assert.NotNil(t, saved.SubmittedAt)

	// a self-completing submission must not ping the assigner
	assert.Empty(t, m.events.published)
}

func TestSubmit_PartialFillStaysSubmitted(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, AssignedBy: 1, Status: assignment.StatusInProgress, TotalFieldsCount: 3}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, Name: "Employment Contract", FormData: contractSchema()}, nil).Times(2)
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(0)).Return(nil)
	expectWorkerAggregates(m, 5)
	m.notification.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := svc.Submit(5, assignment.SubmitInput{
		AssignedFormID: 7,
		FilledFormData: assignment.FieldMap{"full_name": "Ada", "start_date": "2026-09-01"},
	})
	assert.NoError(t, err)
	assert.Equal(t, assignment.StatusSubmitted, result.Status)
	assert.Equal(t, 67, result.Progress)
}

func TestSubmit_StaleRevisionConflicts(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, Revision: 2, Status: assignment.StatusInProgress, TotalFieldsCount: 3}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, FormData: contractSchema()}, nil)
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(2)).Return(repository.ErrStaleAssignment)

	_, err := svc.Submit(5, assignment.SubmitInput{
		AssignedFormID: 7,
		FilledFormData: assignment.FieldMap{"full_name": "Ada", "start_date": "2026-09-01"},
	})
	assert.Equal(t, ErrAssignmentConflict, err)
	assert.Empty(t, m.events.published)
}

// --------------------- Sign ---------------------
func TestSign_CompletesAndRecordsSignature(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, AssignedBy: 1, Status: assignment.StatusSignaturePending}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(0)).Return(nil)

	var sig assignment.Signature
	m.signature.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *assignment.Signature) error {
		sig = *s
		return nil
	})
	expectWorkerAggregates(m, 5)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, Name: "Employment Contract"}, nil)
	m.notification.EXPECT().Create(gomock.Any()).Return(nil)

	signed, err := svc.Sign(5, assignment.SignInput{AssignedFormID: 7, SignatureImage: "data:image/png;base64,AAA"})
	assert.NoError(t, err)
	assert.Equal(t, assignment.StatusCompleted, signed.Status)
	assert.Equal(t, 100, signed.Progress)
	assert.True(t, signed.HasSignature())
	assert.Equal(t, uint(7), sig.FormAssignmentID)
	assert.Equal(t, "draw", sig.SignatureType)
	assert.Len(t, m.events.published, 1)
	assert.Equal(t, notification.TypeFormCompleted, m.events.published[0].Type)
}

func TestSign_RejectsWrongOwner(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(7)).Return(assignment.FormAssignment{ID: 7, CareWorkerID: 5, Status: assignment.StatusSignaturePending}, nil)

	_, err := svc.Sign(6, assignment.SignInput{AssignedFormID: 7, SignatureImage: "sig"})
	assert.Equal(t, ErrNotYourAssignment, err)
}

func TestSign_RejectsUnsignableState(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(7)).Return(assignment.FormAssignment{ID: 7, CareWorkerID: 5, Status: assignment.StatusInProgress}, nil)

	_, err := svc.Sign(5, assignment.SignInput{AssignedFormID: 7, SignatureImage: "sig"})

	var state *SignStateError
	assert.True(t, errors.As(err, &state))
	assert.Equal(t, assignment.StatusInProgress, state.Current)
}

func TestSubmitSignature_AdminBypassesOwnership(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	a := assignment.FormAssignment{ID: 7, CareWorkerID: 5, FormTemplateID: 10, Status: assignment.StatusSubmitted}
	m.assignment.EXPECT().FindByID(uint(7)).Return(a, nil)
	m.assignment.EXPECT().UpdateLifecycle(gomock.Any(), uint(0)).Return(nil)

	var sig assignment.Signature
	m.signature.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *assignment.Signature) error {
		sig = *s
		return nil
	})
	expectWorkerAggregates(m, 5)
	m.template.EXPECT().FindByID(uint(10)).Return(template.FormTemplate{ID: 10, Name: "Employment Contract"}, nil)

	signed, err := svc.SubmitSignature(assignment.SubmitSignatureInput{
		AssignmentID:  7,
		SignatureData: "typed name",
		SignatureType: "type",
	})
	assert.NoError(t, err)
	assert.Equal(t, assignment.StatusCompleted, signed.Status)
	assert.Equal(t, "type", sig.SignatureType)
	// nobody to notify when the assigner is unknown
	assert.Empty(t, m.events.published)
}

// --------------------- Patch ---------------------
func TestPatch_NotFound(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.assignment.EXPECT().UpdateDueDate(uint(99), gomock.Any()).Return(gorm.ErrRecordNotFound)

	err := svc.Patch(99, assignment.Patch{})
	assert.Equal(t, ErrAssignmentNotFound, err)
}

// --------------------- SignatureHistory ---------------------
func TestSignatureHistory_NewestFirst(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(7)).Return(assignment.FormAssignment{ID: 7}, nil)
	m.signature.EXPECT().ListByAssignment(uint(7)).Return([]assignment.Signature{
		{ID: 2, FormAssignmentID: 7, SignatureType: "type"},
		{ID: 1, FormAssignmentID: 7, SignatureType: "draw"},
	}, nil)

	sigs, err := svc.SignatureHistory(7)
	assert.NoError(t, err)
	assert.Len(t, sigs, 2)
	assert.Equal(t, uint(2), sigs[0].ID)
}

func TestSignatureHistory_AssignmentNotFound(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.assignment.EXPECT().FindByID(uint(99)).Return(assignment.FormAssignment{}, gorm.ErrRecordNotFound)

	_, err := svc.SignatureHistory(99)
	assert.Equal(t, ErrAssignmentNotFound, err)
}
