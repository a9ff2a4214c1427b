package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CareWorkerHandler struct {
	svc *application.CareWorkerService
}

func NewCareWorkerHandler(svc *application.CareWorkerService) *CareWorkerHandler {
	return &CareWorkerHandler{svc: svc}
}

// List godoc
// @Summary List care workers with filters
// @Tags care-workers
// @Produce json
// @Param search query string false "Name or email substring"
// @Param status query string false "Account status filter"
// @Param progress query string false "Progress bucket filter"
// @Success 200 {object} response.Envelope
// @Router /api/care-workers [get]
func (h *CareWorkerHandler) List(c *gin.Context) {
	var q user.ListCareWorkersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	workers, err := h.svc.List(q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(workers))
}

// Get godoc
// @Summary Fetch one care worker
// @Tags care-workers
// @Produce json
// @Param id path int true "Care worker id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "Care worker not found"
// @Router /api/care-workers/{id} [get]
func (h *CareWorkerHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	worker, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(worker))
}

// Create godoc
// @Summary Create a care worker account and profile
// @Tags care-workers
// @Accept json
// @Produce json
// @Param input body user.CreateCareWorkerInput true "Care worker info"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Email already in use"
// @Router /api/care-workers [post]
func (h *CareWorkerHandler) Create(c *gin.Context) {
	var input user.CreateCareWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "name, email and password (min 6 characters) are required")
		return
	}

	worker, err := h.svc.Create(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageWithData("Care worker created", worker))
}

// Update godoc
// @Summary Update a care worker
// @Tags care-workers
// @Accept json
// @Produce json
// @Param id path int true "Care worker id"
// @Param input body user.UpdateCareWorkerInput true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /api/care-workers/{id} [put]
func (h *CareWorkerHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var input user.UpdateCareWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "Invalid input")
		return
	}

	worker, err := h.svc.Update(id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Care worker updated", worker))
}

// Delete godoc
// @Summary Delete a care worker
// @Tags care-workers
// @Produce json
// @Param id path int true "Care worker id"
// @Success 200 {object} response.Envelope
// @Router /api/care-workers/{id} [delete]
func (h *CareWorkerHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Care worker deleted"))
}
