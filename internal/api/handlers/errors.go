package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fail maps service errors to HTTP status codes and writes the envelope.
func fail(c *gin.Context, err error) {
	var missing *application.MissingFieldsError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, response.Envelope{
			Success: false,
			Message: "Required fields are missing",
			Error:   missing.Error(),
			Data:    gin.H{"missingFields": missing.Fields},
		})
		return
	}

	var signState *application.SignStateError
	if errors.As(err, &signState) {
		c.JSON(http.StatusBadRequest, response.Error("Cannot sign form", signState.Error()))
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrInactiveAccount):
		status = http.StatusUnauthorized
	case errors.Is(err, application.ErrNotYourAssignment):
		status = http.StatusForbidden
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrCareWorkerNotFound),
		errors.Is(err, application.ErrTemplateNotFound),
		errors.Is(err, application.ErrAssignmentNotFound),
		errors.Is(err, application.ErrNotificationNotFound),
		errors.Is(err, application.ErrDocumentNotFound),
		errors.Is(err, application.ErrPayrollNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrAssignmentConflict):
		status = http.StatusConflict
	case errors.Is(err, application.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, application.ErrIncorrectPassword),
		errors.Is(err, application.ErrBadFormSchema),
		errors.Is(err, application.ErrBadFormData),
		errors.Is(err, application.ErrNotACertificate):
		status = http.StatusBadRequest
	}

	c.JSON(status, response.Fail(err.Error()))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.Fail(msg))
}

// bindError turns a binding failure into a 400 with per-field detail when
// the failure came from struct validation, and a generic message otherwise.
func bindError(c *gin.Context, err error, fallback string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		badRequest(c, fallback)
		return
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field())+" failed on "+fe.Tag())
	}
	c.JSON(http.StatusBadRequest, response.Envelope{
		Success: false,
		Message: fallback,
		Error:   strings.Join(fields, "; "),
		Data:    gin.H{"invalidFields": fields},
	})
}
