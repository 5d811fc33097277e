package repository

import (
	"context"

	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/store"
)

// InquiryRepository stores submitted contact-form entries.
type InquiryRepository struct {
	gateway *store.Gateway
}

// NewInquiryRepository creates a new instance of InquiryRepository.
func NewInquiryRepository(gateway *store.Gateway) *InquiryRepository {
	return &InquiryRepository{gateway: gateway}
}

// Append adds an inquiry.
func (r *InquiryRepository) Append(ctx context.Context, inquiry models.Inquiry) error {
	inquiries, err := r.gateway.Inquiries(ctx)
	if err != nil {
		return err
	}
	return r.gateway.SetInquiries(ctx, append(inquiries, inquiry))
}

// List returns every stored inquiry in insertion order.
func (r *InquiryRepository) List(ctx context.Context) ([]models.Inquiry, error) {
	return r.gateway.Inquiries(ctx)
}
