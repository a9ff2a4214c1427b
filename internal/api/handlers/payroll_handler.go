package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/domain/payroll"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PayrollHandler struct {
	svc *application.PayrollService
}

func NewPayrollHandler(svc *application.PayrollService) *PayrollHandler {
	return &PayrollHandler{svc: svc}
}

// List godoc
// @Summary List payroll records with worker identity
// @Tags payroll
// @Produce json
// @Param search query string false "Name, client or email substring"
// @Param region query string false "Region filter"
// @Param status query string false "Paid/Unpaid filter"
// @Success 200 {object} response.Envelope
// @Router /api/payroll [get]
func (h *PayrollHandler) List(c *gin.Context) {
	var q payroll.ListPayrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	rows, err := h.svc.List(q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(rows))
}

// Get godoc
// @Summary Fetch one payroll record
// @Tags payroll
// @Produce json
// @Param id path int true "Payroll id"
// @Success 200 {object} response.Envelope
// @Router /api/payroll/{id} [get]
func (h *PayrollHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	p, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(p))
}

// Create godoc
// @Summary Create a payroll record
// @Tags payroll
// @Accept json
// @Produce json
// @Param input body payroll.CreatePayrollInput true "Payroll info"
// @Success 201 {object} response.Envelope
// @Router /api/payroll [post]
func (h *PayrollHandler) Create(c *gin.Context) {
	var input payroll.CreatePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "careWorkerId and name are required")
		return
	}

	p, err := h.svc.Create(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageWithData("Payroll record created", p))
}

// Update godoc
// @Summary Update a payroll record; balance is recomputed
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path int true "Payroll id"
// @Param input body payroll.UpdatePayrollInput true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /api/payroll/{id} [put]
func (h *PayrollHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var input payroll.UpdatePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	p, err := h.svc.Update(id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Payroll record updated", p))
}

// Delete godoc
// @Summary Delete a payroll record
// @Tags payroll
// @Produce json
// @Param id path int true "Payroll id"
// @Success 200 {object} response.Envelope
// @Router /api/payroll/{id} [delete]
func (h *PayrollHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Payroll record deleted"))
}
