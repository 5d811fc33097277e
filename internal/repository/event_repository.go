package repository

import (
	"context"

	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/store"
)

// EventRepository provides access to the append-only events collection.
type EventRepository struct {
	gateway *store.Gateway
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(gateway *store.Gateway) *EventRepository {
	return &EventRepository{gateway: gateway}
}

// Append adds an event. There is no update or delete.
func (r *EventRepository) Append(ctx context.Context, event models.Event) error {
	events, err := r.gateway.Events(ctx)
	if err != nil {
		return err
	}
	return r.gateway.SetEvents(ctx, append(events, event))
}

// List returns every stored event in insertion order.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	return r.gateway.Events(ctx)
}
