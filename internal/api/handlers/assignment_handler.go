package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	svc *application.LifecycleService
}

func NewAssignmentHandler(svc *application.LifecycleService) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

// Assign godoc
// @Summary Assign form templates to a care worker
// @Tags form-assignments
// @Accept json
// @Produce json
// @Param input body assignment.AssignFormsInput true "Worker and template ids"
// @Success 201 {object} response.Envelope "Created and skipped template ids"
// @Failure 404 {object} response.Envelope "Worker or template not found"
// @Router /api/form-assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input assignment.AssignFormsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "careWorkerId and at least one formTemplateId are required")
		return
	}

	result, err := h.svc.AssignForms(claims.UserID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageWithData("Forms assigned", result))
}

// ByWorker godoc
// @Summary List a care worker's assignments
// @Tags form-assignments
// @Produce json
// @Param id path string true "Care worker id or 'me'"
// @Success 200 {object} response.Envelope
// @Router /api/form-assignments/care-worker/{id} [get]
func (h *AssignmentHandler) ByWorker(c *gin.Context) {
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

	rows, err := h.svc.WorkerAssignments(workerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(rows))
}

// Patch godoc
// @Summary Update an assignment's due date
// @Tags form-assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment id"
// @Param input body assignment.Patch true "Due date"
// @Success 200 {object} response.Envelope
// @Router /api/form-assignments/{id} [put]
func (h *AssignmentHandler) Patch(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var patch assignment.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	if err := h.svc.Patch(id, patch); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Assignment updated"))
}

// AssignedStatus godoc
// @Summary Admin view of every assignment with display status
// @Tags admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/admin/forms/assigned-status [get]
func (h *AssignmentHandler) AssignedStatus(c *gin.Context) {
	rows, err := h.svc.StatusRows()
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		name := r.CareWorkerEmail
		if r.CareWorkerName != nil && *r.CareWorkerName != "" {
			name = *r.CareWorkerName
		}
		out = append(out, gin.H{
			"assignedFormId":       r.AssignmentID,
			"status":               r.Status,
			"displayStatus":        r.Status.Display(),
			"progress":             r.Progress,
			"completedFieldsCount": r.CompletedFieldsCount,
			"totalFieldsCount":     r.TotalFieldsCount,
			"lastUpdatedAt":        r.LastUpdatedAt,
			"submittedAt":          r.SubmittedAt,
			"completedAt":          r.CompletedAt,
			"assignedAt":           r.AssignedAt,
			"dueDate":              r.DueDate,
			"careWorker": gin.H{
				"id":    r.CareWorkerID,
				"name":  name,
				"email": r.CareWorkerEmail,
			},
			"form": gin.H{
				"id":   r.FormID,
				"name": r.FormName,
				"type": r.FormType,
			},
		})
	}
	c.JSON(http.StatusOK, response.OK(out))
}

// PendingSignatures godoc
// @Summary List assignments relevant to signing
// @Tags signatures
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/signatures/pending [get]
func (h *AssignmentHandler) PendingSignatures(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	// Admins see every worker; care workers see their own.
	workerID := claims.UserID
	if claims.IsAdmin() {
		workerID = 0
	}

	rows, err := h.svc.PendingSignatures(workerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(rows))
}

// SubmitSignature godoc
// @Summary Capture a signature for an assignment
// @Tags signatures
// @Accept json
// @Produce json
// @Param input body assignment.SubmitSignatureInput true "Signature payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Assignment is not awaiting signature"
// @Router /api/signatures [post]
func (h *AssignmentHandler) SubmitSignature(c *gin.Context) {
	var input assignment.SubmitSignatureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "assignmentId and signatureData are required")
		return
	}

	a, err := h.svc.SubmitSignature(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Signature captured", a))
}

// SignatureHistory godoc
// @Summary List the signatures recorded for an assignment
// @Tags signatures
// @Produce json
// @Param id path int true "Assignment id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "Assignment not found"
// @Router /api/signatures/assignment/{id} [get]
func (h *AssignmentHandler) SignatureHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "Invalid assignment id")
		return
	}

	sigs, err := h.svc.SignatureHistory(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(sigs))
}
