package application

import (
	"github.com/carebridge/careworker-go/internal/repository"
)

type Services struct {
	Auth         *AuthService
	CareWorker   *CareWorkerService
	Template     *TemplateService
	Lifecycle    *LifecycleService
	Notification *NotificationService
	Dashboard    *DashboardService
	Document     *DocumentService
	Payroll      *PayrollService
	ImportExport *ImportExportService
}

func NewServices(repos *repository.Repos) *Services {
	notifications := NewNotificationService(repos)
	return &Services{
		Auth:         NewAuthService(repos),
		CareWorker:   NewCareWorkerService(repos),
		Template:     NewTemplateService(repos),
		Lifecycle:    NewLifecycleService(repos, notifications),
		Notification: notifications,
		Dashboard:    NewDashboardService(repos),
		Document:     NewDocumentService(repos),
		Payroll:      NewPayrollService(repos),
		ImportExport: NewImportExportService(repos),
	}
}
