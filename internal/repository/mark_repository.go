package repository

import (
	"context"

	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/store"
)

// MarkRepository provides access to the append-only marks collection.
type MarkRepository struct {
	gateway *store.Gateway
}

// NewMarkRepository creates a new instance of MarkRepository.
func NewMarkRepository(gateway *store.Gateway) *MarkRepository {
	return &MarkRepository{gateway: gateway}
}

// Append adds a mark. There is no update or delete.
func (r *MarkRepository) Append(ctx context.Context, mark models.Mark) error {
	marks, err := r.gateway.Marks(ctx)
	if err != nil {
		return err
	}
	return r.gateway.SetMarks(ctx, append(marks, mark))
}

// List returns every stored mark in insertion order.
func (r *MarkRepository) List(ctx context.Context) ([]models.Mark, error) {
	return r.gateway.Marks(ctx)
}
