package application

import (
	"time"

	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
)

// AdminDashboard is the admin landing-page projection.
type AdminDashboard struct {
	TotalCareWorkers  int64                `json:"totalCareWorkers"`
	PendingSignOffs   int64                `json:"pendingSignOffs"`
	CompletedForms    int64                `json:"completedForms"`
	FormsInProgress   int64                `json:"formsInProgress"`
	RecentCareWorkers []user.CareWorkerDTO `json:"recentCareWorkers"`
}

// WorkerDashboard is the care-worker landing-page projection.
type WorkerDashboard struct {
	AssignedForms        int64                            `json:"assignedForms"`
	FormsInProgress      int64                            `json:"formsInProgress"`
	PendingSignatures    int64                            `json:"pendingSignatures"`
	CompletedForms       int64                            `json:"completedForms"`
	ExpiringCertificates int64                            `json:"expiringCertificates"`
	UnreadNotifications  int64                            `json:"unreadNotifications"`
	Assignments          []assignment.WorkerAssignmentRow `json:"assignments"`
}

type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{Repos: repos}
}

func (s *DashboardService) Admin() (AdminDashboard, error) {
	var d AdminDashboard
	var err error

	if d.TotalCareWorkers, err = s.Repos.User.CountActiveCareWorkers(); err != nil {
		return AdminDashboard{}, err
	}
	if d.PendingSignOffs, err = s.Repos.Assignment.CountByStatuses([]assignment.Status{
		assignment.StatusSubmitted,
		assignment.StatusSignaturePending,
	}); err != nil {
		return AdminDashboard{}, err
	}
	if d.CompletedForms, err = s.Repos.Assignment.CountByStatuses([]assignment.Status{
		assignment.StatusCompleted,
	}); err != nil {
		return AdminDashboard{}, err
	}
	if d.FormsInProgress, err = s.Repos.Assignment.CountByStatuses([]assignment.Status{
		assignment.StatusInProgress,
	}); err != nil {
		return AdminDashboard{}, err
	}

	rows, err := s.Repos.User.RecentCareWorkers(5)
	if err != nil {
		return AdminDashboard{}, err
	}
	d.RecentCareWorkers = make([]user.CareWorkerDTO, 0, len(rows))
	for _, r := range rows {
		d.RecentCareWorkers = append(d.RecentCareWorkers, r.ToDTO())
	}
	return d, nil
}

func (s *DashboardService) Worker(workerID uint) (WorkerDashboard, error) {
	var d WorkerDashboard
	var err error

	count := func(statuses ...assignment.Status) (int64, error) {
		return s.Repos.Assignment.CountByWorkerAndStatuses(workerID, statuses)
	}

	if d.AssignedForms, err = count(assignment.StatusAssigned); err != nil {
		return WorkerDashboard{}, err
	}
	if d.FormsInProgress, err = count(assignment.StatusInProgress); err != nil {
		return WorkerDashboard{}, err
	}
	if d.PendingSignatures, err = count(assignment.StatusSubmitted, assignment.StatusSignaturePending); err != nil {
		return WorkerDashboard{}, err
	}
	if d.CompletedForms, err = count(assignment.StatusCompleted); err != nil {
		return WorkerDashboard{}, err
	}

	// Certificates expiring in the next 30 days.
	if d.ExpiringCertificates, err = s.Repos.Document.CountExpiringCertificates(workerID, 30*24*time.Hour); err != nil {
		return WorkerDashboard{}, err
	}
	if d.UnreadNotifications, err = s.Repos.Notification.CountUnread(workerID); err != nil {
		return WorkerDashboard{}, err
	}
	if d.Assignments, err = s.Repos.Assignment.ListByWorker(workerID); err != nil {
		return WorkerDashboard{}, err
	}
	return d, nil
}
