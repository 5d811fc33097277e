package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/repository"
	"github.com/noah-isme/etec-portal-api/internal/store"
)

func newContactFixture() (*ContactService, *repository.InquiryRepository) {
	repo := repository.NewInquiryRepository(store.NewGateway(store.NewMemStore()))
	return NewContactService(repo, nil, nil), repo
}

func TestSubmitInquiry(t *testing.T) {
	svc, repo := newContactFixture()
	ctx := context.Background()

	inquiry, err := svc.Submit(ctx, dto.ContactRequest{
		Name: " Pat ", Email: "Pat@Mail.org", Program: "Science", Message: " Interested in enrolment ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, "Pat", inquiry.Name)
	assert.Equal(t, "pat@mail.org", inquiry.Email)
	assert.Equal(t, "Interested in enrolment", inquiry.Message)

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestSubmitInquiryValidation(t *testing.T) {
	svc, _ := newContactFixture()

	_, err := svc.Submit(context.Background(), dto.ContactRequest{Name: "Pat", Email: "bad", Program: "", Message: "hi"})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Enter a valid email", ve.Fields["Email"])
	assert.Equal(t, "Required", ve.Fields["Program"])
}

func TestSubscribe(t *testing.T) {
	svc, _ := newContactFixture()

	require.NoError(t, svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "pat@mail.org"}))
	require.Error(t, svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: ""}))
}
