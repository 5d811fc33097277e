package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/service"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

// EventHandler wires event creation and the events list to HTTP endpoints.
type EventHandler struct {
	events *service.EventService
	views  *service.ViewService
}

// NewEventHandler creates a new handler.
func NewEventHandler(events *service.EventService, views *service.ViewService) *EventHandler {
	return &EventHandler{events: events, views: views}
}

// Create godoc
// @Summary Create event
// @Description Append a portal event; only the title is mandatory
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.EventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}

	event, err := h.events.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, event)
}

// List godoc
// @Summary Events list
// @Description All events sorted ascending by date string
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	items, err := h.views.Events(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}
