package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/service"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the session manager.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// LoginStudent godoc
// @Summary Student login
// @Description Authenticate a student by email or registration number
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.StudentLoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login/student [post]
func (h *AuthHandler) LoginStudent(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.LoginStudent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// LoginAdmin godoc
// @Summary Admin login
// @Description Authenticate an admin by email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.AdminLoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login/admin [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.LoginAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary Logout current session
// @Description Clear the current-session slot
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := claimsFromContext(c); claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

// Me godoc
// @Summary Current session
// @Description Returns the persisted session snapshot
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	session, err := h.service.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if session == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "not logged in"))
		return
	}

	response.JSON(c, http.StatusOK, session)
}
