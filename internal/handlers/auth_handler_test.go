package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorkays/internal/services"
)

type stubLoginService struct {
	loginErr   error
	verifyErr  error
	token      string
	sourceAddr string
}

func (s *stubLoginService) Login(ctx context.Context, email, password string) error {
	return s.loginErr
}

func (s *stubLoginService) VerifyLogin(ctx context.Context, email, code, sourceAddr string) (string, error) {
	s.sourceAddr = sourceAddr
	if s.verifyErr != nil {
		return "", s.verifyErr
	}
	return s.token, nil
}

func newAuthRouter(stub *stubLoginService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(stub)
	r.POST("/api/admin/login", h.Login)
	r.POST("/api/admin/verify-login", h.VerifyLogin)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandlerSuccess(t *testing.T) {
	r := newAuthRouter(&stubLoginService{})

	w := postJSON(t, r, "/api/admin/login", `{"email":"admin@clinic.test","password":"pw"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"verificationSent":true}`, w.Body.String())
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	r := newAuthRouter(&stubLoginService{loginErr: services.ErrInvalidCredentials})

	w := postJSON(t, r, "/api/admin/login", `{"email":"admin@clinic.test","password":"bad"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLoginHandlerDeliveryFailure(t *testing.T) {
	r := newAuthRouter(&stubLoginService{loginErr: services.ErrChallengeDelivery})

	w := postJSON(t, r, "/api/admin/login", `{"email":"admin@clinic.test","password":"pw"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLoginHandlerBadBody(t *testing.T) {
	r := newAuthRouter(&stubLoginService{})

	w := postJSON(t, r, "/api/admin/login", `{`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyLoginHandlerSuccess(t *testing.T) {
	stub := &stubLoginService{token: "signed.jwt.token"}
	r := newAuthRouter(stub)

	w := postJSON(t, r, "/api/admin/verify-login", `{"email":"admin@clinic.test","token":"ABCD1234"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, w.Body.String())
}

func TestVerifyLoginHandlerExpiredCode(t *testing.T) {
	r := newAuthRouter(&stubLoginService{verifyErr: services.ErrChallengeNotFound})

	w := postJSON(t, r, "/api/admin/verify-login", `{"email":"admin@clinic.test","token":"ABCD1234"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired verification token")
}

func TestVerifyLoginHandlerAdminGone(t *testing.T) {
	r := newAuthRouter(&stubLoginService{verifyErr: services.ErrAdminNotFound})

	w := postJSON(t, r, "/api/admin/verify-login", `{"email":"admin@clinic.test","token":"ABCD1234"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyLoginHandlerForwardsSourceAddr(t *testing.T) {
	stub := &stubLoginService{token: "tok"}
	r := newAuthRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/verify-login",
		strings.NewReader(`{"email":"admin@clinic.test","token":"ABCD1234"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "203.0.113.7, 10.0.0.1", stub.sourceAddr)
}
