package handlers

import (
	"net/http"
	"strconv"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/domain/document"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	svc *application.DocumentService
}

func NewDocumentHandler(svc *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ByWorker godoc
// @Summary List a care worker's documents
// @Tags documents
// @Produce json
// @Param id path string true "Care worker id or 'me'"
// @Success 200 {object} response.Envelope
// @Router /api/documents/care-worker/{id} [get]
func (h *DocumentHandler) ByWorker(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}
	workerID, err := utils.ResolveTargetID(c, claims)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	docs, err := h.svc.ListByWorker(workerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(docs))
}

// Get godoc
// @Summary Fetch one document
// @Tags documents
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} response.Envelope
// @Router /api/documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	d, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(d))
}

// Create godoc
// @Summary Record a document, uploading the file when attached
// @Tags documents
// @Accept mpfd
// @Produce json
// @Param careWorkerId formData int true "Care worker id"
// @Param name formData string true "Document name"
// @Param file formData file false "Document file"
// @Success 201 {object} response.Envelope
// @Router /api/documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input document.UploadDocumentInput
	if c.ContentType() == "application/json" {
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, "careWorkerId and name are required")
			return
		}
	} else {
		workerID, err := strconv.ParseUint(c.PostForm("careWorkerId"), 10, 32)
		if err != nil || workerID == 0 {
			badRequest(c, "careWorkerId is required")
			return
		}
		input.CareWorkerID = uint(workerID)
		input.Name = c.PostForm("name")
		if input.Name == "" {
			badRequest(c, "name is required")
			return
		}
		if desc := c.PostForm("description"); desc != "" {
			input.Description = &desc
		}

		if fileHeader, err := c.FormFile("file"); err == nil {
			f, err := fileHeader.Open()
			if err != nil {
				fail(c, application.ErrFileUploadFailed)
				return
			}
			defer f.Close()

			contentType := fileHeader.Header.Get("Content-Type")
			key, err := h.svc.UploadFile(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, f)
			if err != nil {
				fail(c, err)
				return
			}
			input.FileURL = &key
			input.FileType = &contentType
			size := fileHeader.Size
			input.FileSize = &size
		}
	}

	d, err := h.svc.Create(claims.UserID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageWithData("Document created", d))
}

// Update godoc
// @Summary Update document metadata
// @Tags documents
// @Accept json
// @Produce json
// @Param id path int true "Document id"
// @Param input body document.UpdateDocumentInput true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /api/documents/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var input document.UpdateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	d, err := h.svc.Update(id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Document updated", d))
}

// Delete godoc
// @Summary Delete a document and its stored file
// @Tags documents
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} response.Envelope
// @Router /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Document deleted"))
}

// CreateCertificate godoc
// @Summary Upload a certificate for the caller
// @Tags certificates
// @Accept json
// @Produce json
// @Param input body document.UploadCertificateInput true "Certificate info"
// @Success 201 {object} response.Envelope
// @Router /api/documents/certificates [post]
func (h *DocumentHandler) CreateCertificate(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input document.UploadCertificateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "name and fileUrl are required")
		return
	}

	d, err := h.svc.CreateCertificate(userID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageWithData("Certificate uploaded", d))
}

// Certificates godoc
// @Summary List a care worker's certificates
// @Tags certificates
// @Produce json
// @Param id path string true "Care worker id or 'me'"
// @Success 200 {object} response.Envelope
// @Router /api/documents/certificates/care-worker/{id} [get]
func (h *DocumentHandler) Certificates(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}
	workerID, err := utils.ResolveTargetID(c, claims)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	certs, err := h.svc.ListCertificates(c.Request.Context(), workerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(certs))
}

// DeleteCertificate godoc
// @Summary Delete one of the caller's certificates
// @Tags certificates
// @Produce json
// @Param id path int true "Certificate id"
// @Success 200 {object} response.Envelope
// @Router /api/documents/certificates/{id} [delete]
func (h *DocumentHandler) DeleteCertificate(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.svc.DeleteCertificate(c.Request.Context(), claims.UserID, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Certificate deleted"))
}
