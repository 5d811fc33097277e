package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/models"
)

type eventRepository interface {
	Append(ctx context.Context, event models.Event) error
	List(ctx context.Context) ([]models.Event, error)
}

// EventService creates and lists portal events.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs an EventService instance.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &EventService{repo: repo, validator: validate, logger: logger}
}

// Create appends an event with a generated id. The date may be empty.
func (s *EventService) Create(ctx context.Context, req dto.EventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(err, "title required")
	}

	event := models.Event{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(req.Title),
		Date:  req.Date,
		Desc:  strings.TrimSpace(req.Desc),
	}
	if err := s.repo.Append(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event created", zap.String("id", event.ID), zap.String("title", event.Title))
	return &event, nil
}

// Upcoming returns all events sorted ascending by their date string. The
// comparison is lexicographic, not calendar-aware, so empty dates sort first —
// exactly how the portal list has always ordered them.
func (s *EventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events, nil
}
