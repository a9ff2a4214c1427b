package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type ImportExportHandler struct {
	svc *application.ImportExportService
}

func NewImportExportHandler(svc *application.ImportExportService) *ImportExportHandler {
	return &ImportExportHandler{svc: svc}
}

// Import godoc
// @Summary Import care workers from a CSV file
// @Tags import-export
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV with name,email,... columns"
// @Success 200 {object} response.Envelope "Imported/skipped counts and row errors"
// @Router /api/import-export/import-care-workers [post]
func (h *ImportExportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "a CSV file is required in the 'file' field")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "could not read uploaded file")
		return
	}
	defer f.Close()

	result, err := h.svc.ImportCareWorkers(f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Import finished", result))
}

// Export godoc
// @Summary Export the care-worker listing as CSV
// @Tags import-export
// @Produce text/csv
// @Success 200 {string} string "CSV download"
// @Router /api/import-export/export-care-workers [get]
func (h *ImportExportHandler) Export(c *gin.Context) {
	data, filename, err := h.svc.ExportCareWorkers()
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
