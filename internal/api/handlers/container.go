package handlers

import (
	"github.com/carebridge/careworker-go/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth         *AuthHandler
	CareWorker   *CareWorkerHandler
	Form         *FormHandler
	Assignment   *AssignmentHandler
	Lifecycle    *LifecycleHandler
	Dashboard    *DashboardHandler
	Document     *DocumentHandler
	Payroll      *PayrollHandler
	ImportExport *ImportExportHandler
	Notification *NotificationHandler
	Router       *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Auth),
		CareWorker:   NewCareWorkerHandler(svc.CareWorker),
		Form:         NewFormHandler(svc.Template, svc.Lifecycle),
		Assignment:   NewAssignmentHandler(svc.Lifecycle),
		Lifecycle:    NewLifecycleHandler(svc.Lifecycle),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Document:     NewDocumentHandler(svc.Document),
		Payroll:      NewPayrollHandler(svc.Payroll),
		ImportExport: NewImportExportHandler(svc.ImportExport),
		Notification: NewNotificationHandler(svc.Notification),
		Router:       router,
	}
}
