package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/service"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

// ContactHandler wires the marketing site's contact and newsletter forms.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new handler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Submit godoc
// @Summary Contact form
// @Description Store a contact inquiry
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Contact payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid contact payload"))
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Thanks! We will contact you soon."})
}

// Subscribe godoc
// @Summary Newsletter signup
// @Description Acknowledge a newsletter subscription
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.NewsletterRequest true "Newsletter payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /newsletter [post]
func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid newsletter payload"))
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Subscribed! Check your inbox."})
}
