package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/identity"
	"github.com/noah-isme/etec-portal-api/internal/models"
)

type inquiryRepository interface {
	Append(ctx context.Context, inquiry models.Inquiry) error
}

// ContactService handles the marketing site's contact and newsletter forms.
// Submissions are only stored; nothing is mailed anywhere.
type ContactService struct {
	repo      inquiryRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService constructs a ContactService instance.
func NewContactService(repo inquiryRepository, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &ContactService{repo: repo, validator: validate, logger: logger}
}

// Submit validates and stores a contact inquiry.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*models.Inquiry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(err, "invalid contact payload")
	}

	inquiry := models.Inquiry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     identity.Normalize(req.Email),
		Program:   req.Program,
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.repo.Append(ctx, inquiry); err != nil {
		return nil, err
	}

	s.logger.Info("contact inquiry", zap.String("email", inquiry.Email), zap.String("program", inquiry.Program))
	return &inquiry, nil
}

// Subscribe validates a newsletter signup. The demo keeps no subscriber list,
// it just acknowledges like the original form did.
func (s *ContactService) Subscribe(ctx context.Context, req dto.NewsletterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return invalid(err, "invalid newsletter payload")
	}
	s.logger.Info("newsletter subscribe", zap.String("email", identity.Normalize(req.Email)))
	return nil
}
