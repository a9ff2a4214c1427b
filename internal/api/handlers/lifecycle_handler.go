package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

// LifecycleHandler carries the care-worker form fill operations.
type LifecycleHandler struct {
	svc *application.LifecycleService
}

func NewLifecycleHandler(svc *application.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{svc: svc}
}

// UpdateProgress godoc
// @Summary Write one field value and recompute progress
// @Tags care-worker
// @Accept json
// @Produce json
// @Param input body assignment.UpdateProgressInput true "Field name and value"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Concurrent update, retry"
// @Router /api/care-worker/forms/update-progress [put]
func (h *LifecycleHandler) UpdateProgress(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input assignment.UpdateProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "assignedFormId and fieldName are required")
		return
	}

	result, err := h.svc.UpdateProgress(userID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(result))
}

// SaveDraft godoc
// @Summary Replace the full field map without submitting
// @Tags care-worker
// @Accept json
// @Produce json
// @Param input body assignment.SaveDraftInput true "Filled form data"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Concurrent update, retry"
// @Router /api/care-worker/forms/save-draft [put]
func (h *LifecycleHandler) SaveDraft(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input assignment.SaveDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "assignedFormId and filledFormData are required")
		return
	}

	result, err := h.svc.SaveDraft(userID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Draft saved", result))
}

// Submit godoc
// @Summary Submit a filled form
// @Tags care-worker
// @Accept json
// @Produce json
// @Param input body assignment.SubmitInput true "Filled form data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Required fields are missing"
// @Failure 409 {object} response.Envelope "Concurrent update, retry"
// @Router /api/care-worker/forms/submit [post]
func (h *LifecycleHandler) Submit(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input assignment.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "assignedFormId and filledFormData are required")
		return
	}

	result, err := h.svc.Submit(userID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Form submitted", result))
}

// Sign godoc
// @Summary Sign one of the caller's own submitted forms
// @Tags care-worker
// @Accept json
// @Produce json
// @Param input body assignment.SignInput true "Signature image"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Form is not awaiting signature"
// @Router /api/care-worker/forms/sign [post]
func (h *LifecycleHandler) Sign(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input assignment.SignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "assignedFormId and signatureImage are required")
		return
	}

	a, err := h.svc.Sign(userID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Form signed and completed", a))
}
