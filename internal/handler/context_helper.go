package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/middleware"
	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/service"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.Claims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.Claims)
	if !ok {
		return nil
	}
	return claims
}

// respondError routes service errors to the envelope, attaching per-field
// validation messages when present.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		response.Error(c, err, ve.Fields)
		return
	}
	response.Error(c, err)
}
