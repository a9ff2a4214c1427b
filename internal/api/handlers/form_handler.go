package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	svc       *application.TemplateService
	lifecycle *application.LifecycleService
}

func NewFormHandler(svc *application.TemplateService, lifecycle *application.LifecycleService) *FormHandler {
	return &FormHandler{svc: svc, lifecycle: lifecycle}
}

// List godoc
// @Summary List form templates (including inactive)
// @Tags forms
// @Produce json
// @Param search query string false "Name or description substring"
// @Param type query string false "Template type filter"
// @Success 200 {object} response.Envelope
// @Router /api/forms [get]
func (h *FormHandler) List(c *gin.Context) {
	var q template.ListTemplatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	templates, err := h.svc.List(template.CategoryTemplate, false, q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(templates))
}

// Templates godoc
// @Summary List active form templates
// @Tags forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/forms/templates [get]
func (h *FormHandler) Templates(c *gin.Context) {
	h.listByCategory(c, template.CategoryTemplate)
}

// Clients godoc
// @Summary List active client forms
// @Tags forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/forms/clients [get]
func (h *FormHandler) Clients(c *gin.Context) {
	h.listByCategory(c, template.CategoryClient)
}

func (h *FormHandler) listByCategory(c *gin.Context, category template.Category) {
	var q template.ListTemplatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	templates, err := h.svc.List(category, true, q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(templates))
}

// Submissions godoc
// @Summary List submitted and completed forms
// @Tags forms
// @Produce json
// @Param search query string false "Form name or description substring"
// @Param status query string false "Assignment status filter"
// @Param dateFrom query string false "Submitted on or after (YYYY-MM-DD)"
// @Param dateTo query string false "Submitted on or before (YYYY-MM-DD)"
// @Param submittedBy query string false "Worker name or email substring"
// @Success 200 {object} response.Envelope
// @Router /api/forms/submissions [get]
func (h *FormHandler) Submissions(c *gin.Context) {
	var q template.ListSubmissionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	rows, err := h.lifecycle.Submissions(q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(rows))
}

// Get godoc
// @Summary Fetch one form template
// @Tags forms
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "Form template not found"
// @Router /api/forms/{id} [get]
func (h *FormHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	tpl, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(tpl))
}

// Create godoc
// @Summary Create a form template
// @Tags forms
// @Accept json
// @Produce json
// @Param input body template.CreateTemplateInput true "Template definition"
// @Success 201 {object} response.Envelope
// @Router /api/forms [post]
func (h *FormHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input template.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "name is required; formCategory must be template or client")
		return
	}

	tpl, err := h.svc.Create(claims.UserID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageWithData("Form template created", tpl))
}

// Update godoc
// @Summary Update a form template
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Template id"
// @Param input body template.UpdateTemplateInput true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /api/forms/{id} [put]
func (h *FormHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var input template.UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	tpl, err := h.svc.Update(id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Form template updated", tpl))
}

// Delete godoc
// @Summary Delete or deactivate a form template
// @Tags forms
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} response.Envelope
// @Router /api/forms/{id} [delete]
func (h *FormHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	deactivated, err := h.svc.Delete(id)
	if err != nil {
		fail(c, err)
		return
	}
	if deactivated {
		c.JSON(http.StatusOK, response.Message("Form template is in use and was deactivated instead"))
		return
	}
	c.JSON(http.StatusOK, response.Message("Form template deleted"))
}
