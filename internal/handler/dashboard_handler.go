package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/service"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

// DashboardHandler renders the role-composed dashboard.
type DashboardHandler struct {
	auth  *service.AuthService
	views *service.ViewService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(auth *service.AuthService, views *service.ViewService) *DashboardHandler {
	return &DashboardHandler{auth: auth, views: views}
}

// Dashboard godoc
// @Summary Dashboard
// @Description Details and events for everyone; marks for students, the roster for admins
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	// The persisted session slot, not the token, decides what renders.
	session, err := h.auth.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if session == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "not logged in"))
		return
	}

	view, err := h.views.Dashboard(c.Request.Context(), *session)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}
