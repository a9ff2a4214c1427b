package application

import (
	"testing"
	"time"

	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupDashboardServiceMocks(t *testing.T) (*DashboardService, *repository.Repos, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repos := &repository.Repos{
		User:         mock.NewMockUserRepo(ctrl),
		Assignment:   mock.NewMockAssignmentRepo(ctrl),
		Document:     mock.NewMockDocumentRepo(ctrl),
		Notification: mock.NewMockNotificationRepo(ctrl),
	}
	svc := NewDashboardService(repos)
	return svc, repos, ctrl
}

func TestAdminDashboard(t *testing.T) {
	svc, repos, _ := setupDashboardServiceMocks(t)
	mockUser := repos.User.(*mock.MockUserRepo)
	mockAssignment := repos.Assignment.(*mock.MockAssignmentRepo)

	mockUser.EXPECT().CountActiveCareWorkers().Return(int64(12), nil)
	mockAssignment.EXPECT().CountByStatuses([]assignment.Status{
		assignment.StatusSubmitted, assignment.StatusSignaturePending,
	}).Return(int64(3), nil)
	mockAssignment.EXPECT().CountByStatuses([]assignment.Status{assignment.StatusCompleted}).Return(int64(20), nil)
	mockAssignment.EXPECT().CountByStatuses([]assignment.Status{assignment.StatusInProgress}).Return(int64(5), nil)

	name := "Ada"
	mockUser.EXPECT().RecentCareWorkers(5).Return([]user.CareWorkerRow{
		{ID: 1, Email: "ada@carebridge.test", Status: user.StatusActive, Name: &name},
	}, nil)

	d, err := svc.Admin()
	assert.NoError(t, err)
	assert.Equal(t, int64(12), d.TotalCareWorkers)
	assert.Equal(t, int64(3), d.PendingSignOffs)
	assert.Equal(t, int64(20), d.CompletedForms)
	assert.Equal(t, int64(5), d.FormsInProgress)
	assert.Len(t, d.RecentCareWorkers, 1)
	assert.Equal(t, "Ada", d.RecentCareWorkers[0].Name)
}

func TestWorkerDashboard(t *testing.T) {
	svc, repos, _ := setupDashboardServiceMocks(t)
	mockAssignment := repos.Assignment.(*mock.MockAssignmentRepo)
	mockDocument := repos.Document.(*mock.MockDocumentRepo)
	mockNotification := repos.Notification.(*mock.MockNotificationRepo)

	mockAssignment.EXPECT().CountByWorkerAndStatuses(uint(5), []assignment.Status{assignment.StatusAssigned}).Return(int64(2), nil)
	mockAssignment.EXPECT().CountByWorkerAndStatuses(uint(5), []assignment.Status{assignment.StatusInProgress}).Return(int64(1), nil)
	mockAssignment.EXPECT().CountByWorkerAndStatuses(uint(5), []assignment.Status{
		assignment.StatusSubmitted, assignment.StatusSignaturePending,
	}).Return(int64(1), nil)
	mockAssignment.EXPECT().CountByWorkerAndStatuses(uint(5), []assignment.Status{assignment.StatusCompleted}).Return(int64(4), nil)
	mockDocument.EXPECT().CountExpiringCertificates(uint(5), 30*24*time.Hour).Return(int64(1), nil)
	mockNotification.EXPECT().CountUnread(uint(5)).Return(int64(7), nil)
	mockAssignment.EXPECT().ListByWorker(uint(5)).Return([]assignment.WorkerAssignmentRow{{ID: 9}}, nil)

	d, err := svc.Worker(5)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), d.AssignedForms)
	assert.Equal(t, int64(1), d.FormsInProgress)
	assert.Equal(t, int64(1), d.PendingSignatures)
	assert.Equal(t, int64(4), d.CompletedForms)
	assert.Equal(t, int64(1), d.ExpiringCertificates)
	assert.Equal(t, int64(7), d.UnreadNotifications)
	assert.Len(t, d.Assignments, 1)
}
