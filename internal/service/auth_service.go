package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/models"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
)

type authAccountRepository interface {
	Find(ctx context.Context, identifier string) (*models.Account, error)
}

type sessionStore interface {
	Current(ctx context.Context) (*models.Session, error)
	SetCurrent(ctx context.Context, session *models.Session) error
}

// AuthConfig defines configuration for the login flows.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService is the session manager: it authenticates against the accounts
// collection, keeps the denormalized current-session snapshot in the store's
// single session slot, and issues access tokens for the HTTP surface.
//
// Credential comparison is plaintext equality, kept for parity with the demo
// portal. Demo-only; see the seeding note on AccountRepository.
type AuthService struct {
	accounts  authAccountRepository
	sessions  sessionStore
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(accounts authAccountRepository, sessions sessionStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &AuthService{accounts: accounts, sessions: sessions, validator: validate, logger: logger, config: config}
}

// LoginStudent authenticates a student by email or registration number. The
// error copy matches the original portal alerts.
func (s *AuthService) LoginStudent(ctx context.Context, req dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(err, "invalid login payload")
	}

	account, err := s.accounts.Find(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrAccountNotFound, "account not found or not a student")
	}
	return s.login(ctx, *account, req.Password)
}

// LoginAdmin authenticates an admin by email.
func (s *AuthService) LoginAdmin(ctx context.Context, req dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(err, "invalid login payload")
	}

	account, err := s.accounts.Find(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrAccountNotFound, "admin not found")
	}
	return s.login(ctx, *account, req.Password)
}

func (s *AuthService) login(ctx context.Context, account models.Account, password string) (*dto.LoginResponse, error) {
	if account.Password != password {
		return nil, appErrors.ErrWrongPassword
	}

	session := models.SessionFromAccount(account)
	if err := s.sessions.SetCurrent(ctx, &session); err != nil {
		return nil, err
	}

	token, err := s.generateAccessToken(session)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	s.logger.Info("login", zap.String("email", session.Email), zap.String("role", string(session.Role)))

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.TokenExpiry.Seconds()),
		Session:     session,
	}, nil
}

// Logout clears the current-session slot.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.SetCurrent(ctx, nil)
}

// Current returns the persisted session snapshot, or nil when logged out.
// The snapshot survives process restarts by design ("remember me" default).
func (s *AuthService) Current(ctx context.Context) (*models.Session, error) {
	return s.sessions.Current(ctx)
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(session models.Session) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.Claims{
		Email: session.Email,
		RegNo: session.RegNo,
		Role:  session.Role,
		Name:  session.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   session.Email,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.TokenSecret))
}
