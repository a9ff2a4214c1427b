package handlers

import (
	"net/http"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/internal/config"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.Envelope "JWT token and user info"
// @Failure 400 {object} response.Envelope "Invalid input"
// @Failure 401 {object} response.Envelope "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	usr, token, err := h.svc.Login(input)
	if err != nil {
		fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, 24*3600, "/", "", config.IsProduction, true)

	c.JSON(http.StatusOK, response.OK(gin.H{
		"token": token,
		"user": gin.H{
			"id":     usr.ID,
			"email":  usr.Email,
			"role":   usr.Role,
			"status": usr.Status,
		},
	}))
}

// Me godoc
// @Summary Current user with profile
// @Tags auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "User not found"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	usr, profile, err := h.svc.Me(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{
		"user":    usr,
		"profile": profile,
	}))
}

// UpdateProfile godoc
// @Summary Update own email and profile fields
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.UpdateProfileInput true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid input")
		return
	}

	usr, profile, err := h.svc.UpdateProfile(userID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageWithData("Profile updated", gin.H{
		"user":    usr,
		"profile": profile,
	}))
}

// ChangePassword godoc
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.ChangePasswordInput true "Current and new password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Current password is incorrect"
// @Router /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	var input user.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err, "current and new password are required (new password min 6 characters)")
		return
	}

	if err := h.svc.ChangePassword(userID, input); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Password changed successfully"))
}
