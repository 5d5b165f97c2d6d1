package handlers

import (
	"errors"
	"net/http"

	"legal-advisor-backend/llm"
	"legal-advisor-backend/service"

	"github.com/gin-gonic/gin"
)

// classifyError maps an error to an HTTP status and an error code
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		return http.StatusBadRequest, "EMPTY_QUERY"
	case errors.Is(err, service.ErrInvalidCategory):
		return http.StatusBadRequest, "INVALID_CATEGORY"
	case errors.Is(err, service.ErrInvalidJurisdiction):
		return http.StatusBadRequest, "INVALID_JURISDICTION"
	case errors.Is(err, llm.ErrConfiguration):
		return http.StatusInternalServerError, "CONFIGURATION_ERROR"
	case errors.Is(err, llm.ErrService):
		return http.StatusBadGateway, "SERVICE_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondErrorFor(c *gin.Context, err error) {
	status, code := classifyError(err)
	respondError(c, status, code, err.Error())
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
