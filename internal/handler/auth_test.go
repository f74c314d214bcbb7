package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
)

func findSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin", "secret-password")
	h := NewAuthHandler(env.userSvc, func(*http.Request) *domain.AdminUser { return nil }, env.logger, false)

	body := `{"username": "admin", "password": "secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var user domain.AdminUser
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	assert.Equal(t, "admin", user.Username)
	assert.Empty(t, user.PasswordHash) // never serialized

	cookie := findSessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Len(t, cookie.Value, 64)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, sessionCookieMaxAge, cookie.MaxAge)
}

func TestAuthLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin", "secret-password")
	h := NewAuthHandler(env.userSvc, func(*http.Request) *domain.AdminUser { return nil }, env.logger, false)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrong password",
			body:       `{"username": "admin", "password": "nope"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   domain.EUNAUTHORIZED,
		},
		{
			name:       "unknown username",
			body:       `{"username": "ghost", "password": "secret-password"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   domain.EUNAUTHORIZED,
		},
		{
			name:       "missing fields",
			body:       `{"username": "admin"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.EINVALID,
		},
		{
			name:       "malformed body",
			body:       `{never valid`,
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp JSONError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Nil(t, findSessionCookie(t, rec))
		})
	}
}

func TestAuthLogout(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t, "admin", "secret-password")
	h := NewAuthHandler(env.userSvc, func(*http.Request) *domain.AdminUser { return nil }, env.logger, false)

	// Login to obtain a real session cookie.
	loginReq := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username": "admin", "password": "secret-password"}`))
	loginRec := httptest.NewRecorder()
	h.Login(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)
	session := findSessionCookie(t, loginRec)
	require.NotNil(t, session)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.AddCookie(session)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cleared := findSessionCookie(t, rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)

	// The session is dead server-side too.
	_, err := env.userSvc.GetBySessionToken(req.Context(), session.Value)
	assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))
}

func TestAuthLogoutWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.userSvc, func(*http.Request) *domain.AdminUser { return nil }, env.logger, false)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t, "admin", "secret-password")

	h := NewAuthHandler(env.userSvc, func(*http.Request) *domain.AdminUser { return admin }, env.logger, false)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/user", nil)
	rec := httptest.NewRecorder()
	h.CurrentUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user domain.AdminUser
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	assert.Equal(t, admin.ID, user.ID)
}

func TestAuthCurrentUserUnauthenticated(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.userSvc, func(*http.Request) *domain.AdminUser { return nil }, env.logger, false)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/user", nil)
	rec := httptest.NewRecorder()
	h.CurrentUser(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp JSONError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.EUNAUTHORIZED, resp.Error.Code)
}
