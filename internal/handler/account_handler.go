package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/service"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

// AccountHandler wires signup and the student roster to HTTP endpoints.
type AccountHandler struct {
	service *service.AccountService
}

// NewAccountHandler creates a new handler.
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// Signup godoc
// @Summary Create student account
// @Description Register a new student; email and reg. no must be unused
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body dto.SignupRequest true "Signup payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/signup [post]
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signup payload"))
		return
	}

	account, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "Account created. You can login now.",
		"email":   account.Email,
		"regNo":   account.RegNo,
	})
}

// Students godoc
// @Summary Student roster
// @Description List student accounts, filtered by a substring over name, email and reg. no
// @Tags Accounts
// @Produce json
// @Param search query string false "Filter text"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /students [get]
func (h *AccountHandler) Students(c *gin.Context) {
	rows, err := h.service.Students(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rows)
}
