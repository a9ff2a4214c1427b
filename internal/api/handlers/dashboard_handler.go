package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Admin godoc
// @Summary Admin dashboard counts and recent care workers
// @Tags admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	d, err := h.svc.Admin()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(d))
}

// Worker godoc
// @Summary Care-worker dashboard counts and assignments
// @Tags care-worker
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/care-worker/dashboard [get]
func (h *DashboardHandler) Worker(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	d, err := h.svc.Worker(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(d))
}
