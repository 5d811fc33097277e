package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/repository"
	"github.com/noah-isme/etec-portal-api/internal/store"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
)

func testAuthConfig() AuthConfig {
	return AuthConfig{TokenSecret: "test_secret", TokenExpiry: time.Hour, Issuer: "etec-portal"}
}

func newAuthFixture(t *testing.T) (*AuthService, *repository.AccountRepository, *store.MemStore) {
	t.Helper()
	mem := store.NewMemStore()
	gateway := store.NewGateway(mem)
	accounts := repository.NewAccountRepository(gateway)
	svc := NewAuthService(accounts, gateway, nil, nil, testAuthConfig())
	return svc, accounts, mem
}

func seedStudent(t *testing.T, accounts *repository.AccountRepository) models.Account {
	t.Helper()
	jane := models.Account{
		ID: "jane@x.com", Email: "jane@x.com", RegNo: "ET-0002",
		Role: models.RoleStudent, Name: "Jane", Password: "pw1",
		Stream: "Science", Medium: "English",
	}
	require.NoError(t, accounts.Save(context.Background(), jane))
	return jane
}

func TestLoginStudentByEmail(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	seedStudent(t, accounts)

	res, err := svc.LoginStudent(context.Background(), dto.StudentLoginRequest{Identifier: "jane@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, models.RoleStudent, res.Session.Role)
	assert.Equal(t, "ET-0002", res.Session.RegNo)
}

func TestLoginStudentByRegNoCaseInsensitive(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	seedStudent(t, accounts)

	res, err := svc.LoginStudent(context.Background(), dto.StudentLoginRequest{Identifier: "et-0002", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", res.Session.Email)
}

func TestLoginStudentWrongPassword(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	seedStudent(t, accounts)

	_, err := svc.LoginStudent(context.Background(), dto.StudentLoginRequest{Identifier: "jane@x.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrWrongPassword.Code, appErrors.FromError(err).Code)

	// A failed login never becomes the current session.
	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLoginStudentRejectsAdminAccount(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	admin := models.Account{ID: "admin@etec.lk", Email: "admin@etec.lk", Role: models.RoleAdmin, Name: "E-Tec Admin", Password: "admin123"}
	require.NoError(t, accounts.Save(context.Background(), admin))

	_, err := svc.LoginStudent(context.Background(), dto.StudentLoginRequest{Identifier: "admin@etec.lk", Password: "admin123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAccountNotFound.Code, appErrors.FromError(err).Code)
}

func TestLoginAdmin(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	admin := models.Account{ID: "admin@etec.lk", Email: "admin@etec.lk", Role: models.RoleAdmin, Name: "E-Tec Admin", Password: "admin123"}
	require.NoError(t, accounts.Save(context.Background(), admin))

	res, err := svc.LoginAdmin(context.Background(), dto.AdminLoginRequest{Email: "admin@etec.lk", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, res.Session.Role)
	// Admin snapshots never carry student fields.
	assert.Empty(t, res.Session.RegNo)
	assert.Empty(t, res.Session.Stream)
}

func TestSessionLifecycle(t *testing.T) {
	svc, accounts, mem := newAuthFixture(t)
	seedStudent(t, accounts)
	ctx := context.Background()

	_, err := svc.LoginStudent(ctx, dto.StudentLoginRequest{Identifier: "ET-0002", Password: "pw1"})
	require.NoError(t, err)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "jane@x.com", current.Email)

	// Simulated restart: fresh gateway and service over the same store.
	gateway := store.NewGateway(mem)
	restarted := NewAuthService(repository.NewAccountRepository(gateway), gateway, nil, nil, testAuthConfig())
	current, err = restarted.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "jane@x.com", current.Email)

	require.NoError(t, restarted.Logout(ctx))
	current, err = restarted.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestRepeatedLoginOverwritesSession(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	seedStudent(t, accounts)
	admin := models.Account{ID: "admin@etec.lk", Email: "admin@etec.lk", Role: models.RoleAdmin, Name: "E-Tec Admin", Password: "admin123"}
	require.NoError(t, accounts.Save(context.Background(), admin))
	ctx := context.Background()

	_, err := svc.LoginStudent(ctx, dto.StudentLoginRequest{Identifier: "jane@x.com", Password: "pw1"})
	require.NoError(t, err)
	_, err = svc.LoginAdmin(ctx, dto.AdminLoginRequest{Email: "admin@etec.lk", Password: "admin123"})
	require.NoError(t, err)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, models.RoleAdmin, current.Role)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	seedStudent(t, accounts)

	res, err := svc.LoginStudent(context.Background(), dto.StudentLoginRequest{Identifier: "jane@x.com", Password: "pw1"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "ET-0002", claims.RegNo)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
