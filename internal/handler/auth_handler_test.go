package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/repository"
	"github.com/noah-isme/etec-portal-api/internal/service"
	"github.com/noah-isme/etec-portal-api/internal/store"
	"github.com/noah-isme/etec-portal-api/pkg/response"
)

func newAuthFixture(t *testing.T) (*AuthHandler, *AccountHandler, *store.Gateway) {
	t.Helper()
	gateway := store.NewGateway(store.NewMemStore())
	accounts := repository.NewAccountRepository(gateway)
	validate := service.NewValidator()

	authSvc := service.NewAuthService(accounts, gateway, validate, nil, service.AuthConfig{
		TokenSecret: "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "etec-portal",
	})
	accountSvc := service.NewAccountService(accounts, validate, nil)

	require.NoError(t, accounts.SeedAdminIfMissing(context.Background(), models.Account{
		Name:     "E-Tec Admin",
		Email:    "admin@etec.lk",
		Password: "admin123",
	}))

	return NewAuthHandler(authSvc), NewAccountHandler(accountSvc), gateway
}

func postJSON(t *testing.T, h gin.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	h(c)
	return w
}

func TestAuthHandlerStudentLoginFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authH, accountH, gateway := newAuthFixture(t)

	w := postJSON(t, accountH.Signup, "/auth/signup", dto.SignupRequest{
		Name: "Jane", Email: "Jane@Example.com", RegNo: "st-001",
		Stream: "Maths", Medium: "English", Password: "pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, authH.LoginStudent, "/auth/login/student", dto.StudentLoginRequest{
		Identifier: "jane@example.com", Password: "pw",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.AccessToken)
	assert.Equal(t, "ST-001", envelope.Data.Session.RegNo)

	session, err := gateway.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "jane@example.com", session.Email)
}

func TestAuthHandlerWrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authH, _, _ := newAuthFixture(t)

	w := postJSON(t, authH.LoginAdmin, "/auth/login/admin", dto.AdminLoginRequest{
		Email: "admin@etec.lk", Password: "nope",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "wrong password", envelope.Error.Message)
}

func TestAuthHandlerLoginInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authH, _, _ := newAuthFixture(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login/student", bytes.NewBufferString(`{"identifier":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	authH.LoginStudent(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerMeWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authH, _, _ := newAuthFixture(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Request = req

	authH.Me(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerSignupDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, accountH, _ := newAuthFixture(t)

	payload := dto.SignupRequest{
		Name: "Jane", Email: "jane@x.com", RegNo: "st-001",
		Stream: "Maths", Medium: "English", Password: "pw",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, accountH.Signup, "/auth/signup", payload).Code)
	require.Equal(t, http.StatusConflict, postJSON(t, accountH.Signup, "/auth/signup", payload).Code)
}
