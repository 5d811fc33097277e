package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/repository"
	"github.com/noah-isme/etec-portal-api/internal/store"
)

func newEventFixture() (*EventService, *repository.EventRepository) {
	repo := repository.NewEventRepository(store.NewGateway(store.NewMemStore()))
	return NewEventService(repo, nil, nil), repo
}

func TestCreateEvent(t *testing.T) {
	svc, _ := newEventFixture()

	event, err := svc.Create(context.Background(), dto.EventRequest{Title: " Sports Meet ", Date: "2026-02-14", Desc: "Annual meet"})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Sports Meet", event.Title)

	// Date is optional.
	undated, err := svc.Create(context.Background(), dto.EventRequest{Title: "Orientation"})
	require.NoError(t, err)
	assert.Empty(t, undated.Date)
	assert.NotEqual(t, event.ID, undated.ID)
}

func TestCreateEventRequiresTitle(t *testing.T) {
	svc, _ := newEventFixture()

	_, err := svc.Create(context.Background(), dto.EventRequest{Date: "2026-02-14"})
	require.Error(t, err)
}

func TestUpcomingSortsByDateStringEmptyFirst(t *testing.T) {
	svc, repo := newEventFixture()
	ctx := context.Background()

	for _, e := range []models.Event{
		{ID: "1", Title: "Later", Date: "2026-09-01"},
		{ID: "2", Title: "Undated", Date: ""},
		{ID: "3", Title: "Sooner", Date: "2026-01-15"},
	} {
		require.NoError(t, repo.Append(ctx, e))
	}

	events, err := svc.Upcoming(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "Undated", events[0].Title)
	assert.Equal(t, "Sooner", events[1].Title)
	assert.Equal(t, "Later", events[2].Title)
}
