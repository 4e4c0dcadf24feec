package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/chainfolio/backend/src/config"
	"github.com/username/chainfolio/backend/src/logger"
	"github.com/username/chainfolio/backend/src/security"
)

const testSecret = "a-test-signing-secret-at-least-32-bytes!"

func setupAuth(t *testing.T) (*AuthHandler, *security.AuthService) {
	t.Helper()
	logger.InitLogger("error")
	config.Cfg = &config.AppConfig{TokenExpiry: time.Hour}
	authService := security.NewAuthService(testSecret)
	return NewAuthHandler(authService), authService
}

func TestHandleIssueToken(t *testing.T) {
	handler, _ := setupAuth(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"secret":"`+testSecret+`"}`))
	rec := httptest.NewRecorder()
	handler.HandleIssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
}

func TestHandleIssueToken_WrongSecret(t *testing.T) {
	handler, _ := setupAuth(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"secret":"nope"}`))
	rec := httptest.NewRecorder()
	handler.HandleIssueToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleIssueToken_BadBody(t *testing.T) {
	handler, _ := setupAuth(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.HandleIssueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	_, authService := setupAuth(t)

	var gotSubject string
	protected := AuthMiddleware(authService, func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = GetSubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	token, err := authService.GenerateToken("api")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/rows", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "api", gotSubject)
}

func TestAuthMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	_, authService := setupAuth(t)

	protected := AuthMiddleware(authService, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/rows", nil)
	rec := httptest.NewRecorder()
	protected(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/rows", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	protected(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
