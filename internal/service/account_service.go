package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/identity"
	"github.com/noah-isme/etec-portal-api/internal/models"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
)

type accountRepository interface {
	Find(ctx context.Context, identifier string) (*models.Account, error)
	Save(ctx context.Context, account models.Account) error
	List(ctx context.Context) ([]models.Account, error)
}

// AccountService covers signup and the admin student roster.
type AccountService struct {
	repo      accountRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAccountService constructs an AccountService instance.
func NewAccountService(repo accountRepository, validate *validator.Validate, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &AccountService{repo: repo, validator: validate, logger: logger}
}

// Signup creates a student account. Both the email and the registration
// number must be unused; resolution is case-insensitive through the
// normalized identifier, so A@B.com collides with an existing a@b.com.
func (s *AccountService) Signup(ctx context.Context, req dto.SignupRequest) (*models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(err, "invalid signup payload")
	}

	email := identity.Normalize(req.Email)
	regNo := identity.Normalize(req.RegNo)

	for _, id := range []string{email, regNo} {
		existing, err := s.repo.Find(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, appErrors.ErrDuplicateAccount
		}
	}

	account := models.Account{
		ID:       email,
		Email:    email,
		RegNo:    regNo,
		Role:     models.RoleStudent,
		Name:     strings.TrimSpace(req.Name),
		Password: req.Password,
		Stream:   req.Stream,
		Medium:   req.Medium,
	}
	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("student signup", zap.String("email", email), zap.String("regNo", regNo))
	return &account, nil
}

// Students returns roster rows for student accounts whose concatenated
// name, email and regNo contain the filter text, case-insensitively. An
// empty filter matches everyone.
func (s *AccountService) Students(ctx context.Context, filter string) ([]dto.StudentRow, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter))
	rows := make([]dto.StudentRow, 0, len(accounts))
	for _, account := range accounts {
		if account.Role != models.RoleStudent {
			continue
		}
		haystack := strings.ToLower(account.Name + " " + account.Email + " " + account.RegNo)
		if q != "" && !strings.Contains(haystack, q) {
			continue
		}
		rows = append(rows, dto.StudentRow{
			RegNo:  account.RegNo,
			Name:   account.Name,
			Email:  account.Email,
			Stream: account.Stream,
			Medium: account.Medium,
		})
	}

	// Accounts live in a map, so impose a stable roster order.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RegNo != rows[j].RegNo {
			return rows[i].RegNo < rows[j].RegNo
		}
		return rows[i].Email < rows[j].Email
	})
	return rows, nil
}
