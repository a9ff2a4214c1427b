package routes

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/api/handlers"
	"github.com/carebridge/careworker-go/internal/api/middleware"
	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/config/db"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	repos := repository.NewRepositories(db.DB)
	services := application.NewServices(repos)
	h := handlers.New(services, r)

	RegisterWith(r, h)
}

// RegisterWith wires routes against prebuilt handlers; the integration
// tests use it with a containerized database.
func RegisterWith(r *gin.Engine, h *handlers.Handlers) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OK(gin.H{"status": "ok"}))
	})

	r.POST("/api/auth/login", h.Auth.Login)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	{
		auth := api.Group("/auth")
		{
			auth.GET("/me", h.Auth.Me)
			auth.PUT("/profile", h.Auth.UpdateProfile)
			auth.PUT("/change-password", h.Auth.ChangePassword)
		}

		workers := api.Group("/care-workers", middleware.Admin())
		{
			workers.GET("", h.CareWorker.List)
			workers.POST("", h.CareWorker.Create)
			workers.GET("/:id", h.CareWorker.Get)
			workers.PUT("/:id", h.CareWorker.Update)
			workers.DELETE("/:id", h.CareWorker.Delete)
		}

		admin := api.Group("/admin", middleware.Admin())
		{
			admin.GET("/dashboard", h.Dashboard.Admin)
			admin.GET("/forms/assigned-status", h.Assignment.AssignedStatus)
		}

		worker := api.Group("/care-worker", middleware.CareWorker())
		{
			worker.GET("/dashboard", h.Dashboard.Worker)
			worker.PUT("/forms/update-progress", h.Lifecycle.UpdateProgress)
			worker.PUT("/forms/save-draft", h.Lifecycle.SaveDraft)
			worker.POST("/forms/submit", h.Lifecycle.Submit)
			worker.POST("/forms/sign", h.Lifecycle.Sign)
		}

		forms := api.Group("/forms", middleware.Admin())
		{
			forms.GET("", h.Form.List)
			forms.POST("", h.Form.Create)
			forms.GET("/templates", h.Form.Templates)
			forms.GET("/clients", h.Form.Clients)
			forms.GET("/submissions", h.Form.Submissions)
			forms.GET("/:id", h.Form.Get)
			forms.PUT("/:id", h.Form.Update)
			forms.DELETE("/:id", h.Form.Delete)
		}

		assignments := api.Group("/form-assignments")
		{
			assignments.POST("", middleware.Admin(), h.Assignment.Assign)
			assignments.PUT("/:id", middleware.Admin(), h.Assignment.Patch)
			assignments.GET("/care-worker/:id", middleware.SelfOrAdmin(), h.Assignment.ByWorker)
		}

		signatures := api.Group("/signatures")
		{
			signatures.GET("/pending", h.Assignment.PendingSignatures)
			signatures.GET("/assignment/:id", middleware.Admin(), h.Assignment.SignatureHistory)
			signatures.POST("", middleware.Admin(), h.Assignment.SubmitSignature)
		}

		documents := api.Group("/documents")
		{
			documents.POST("", middleware.Admin(), h.Document.Create)
			documents.GET("/care-worker/:id", middleware.SelfOrAdmin(), h.Document.ByWorker)
			documents.GET("/certificates/care-worker/:id", middleware.SelfOrAdmin(), h.Document.Certificates)
			documents.GET("/certificates/me", h.Document.Certificates)
			documents.POST("/certificates", h.Document.CreateCertificate)
			documents.DELETE("/certificates/:id", h.Document.DeleteCertificate)
			documents.GET("/:id", middleware.Admin(), h.Document.Get)
			documents.PUT("/:id", middleware.Admin(), h.Document.Update)
			documents.DELETE("/:id", middleware.Admin(), h.Document.Delete)
		}

		payroll := api.Group("/payroll", middleware.Admin())
		{
			payroll.GET("", h.Payroll.List)
			payroll.POST("", h.Payroll.Create)
			payroll.GET("/:id", h.Payroll.Get)
			payroll.PUT("/:id", h.Payroll.Update)
			payroll.DELETE("/:id", h.Payroll.Delete)
		}

		importExport := api.Group("/import-export", middleware.Admin())
		{
			importExport.POST("/import-care-workers", h.ImportExport.Import)
			importExport.GET("/export-care-workers", h.ImportExport.Export)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.PUT("/read-all", h.Notification.MarkAllRead)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}
	}

	r.GET("/ws/notifications", middleware.JWTAuthMiddleware(), h.Notification.Stream)
}
