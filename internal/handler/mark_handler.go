package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/identity"
	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/service"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

// MarkHandler wires mark recording and the marks table to HTTP endpoints.
type MarkHandler struct {
	marks *service.MarkService
	views *service.ViewService
}

// NewMarkHandler creates a new handler.
func NewMarkHandler(marks *service.MarkService, views *service.ViewService) *MarkHandler {
	return &MarkHandler{marks: marks, views: views}
}

// Record godoc
// @Summary Record a mark
// @Description Append an exam result for a student
// @Tags Marks
// @Accept json
// @Produce json
// @Param payload body dto.MarkRequest true "Mark payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /marks [post]
func (h *MarkHandler) Record(c *gin.Context) {
	var req dto.MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mark payload"))
		return
	}

	mark, err := h.marks.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, mark)
}

// List godoc
// @Summary Marks table
// @Description A student's marks, oldest first. Students see their own; admins pass regNo.
// @Tags Marks
// @Produce json
// @Param regNo query string false "Registration number (admin only)"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /marks [get]
func (h *MarkHandler) List(c *gin.Context) {
	regNo, err := resolveRegNo(c)
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := h.views.MarksFor(c.Request.Context(), regNo)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rows)
}

// resolveRegNo decides whose marks a request may read: admins name any
// student via the query parameter, students are pinned to their own regNo.
func resolveRegNo(c *gin.Context) (string, error) {
	claims := claimsFromContext(c)
	if claims == nil {
		return "", appErrors.ErrUnauthorized
	}

	query := strings.TrimSpace(c.Query("regNo"))
	if claims.Role == models.RoleAdmin {
		if query == "" {
			return "", appErrors.Clone(appErrors.ErrValidation, "regNo is required")
		}
		return query, nil
	}

	if claims.RegNo == "" {
		return "", appErrors.Clone(appErrors.ErrForbidden, "no registration number on session")
	}
	if query != "" && identity.Normalize(query) != identity.Normalize(claims.RegNo) {
		return "", appErrors.ErrForbidden
	}
	return claims.RegNo, nil
}
