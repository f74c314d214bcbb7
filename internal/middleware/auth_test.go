package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
)

// mockUserService implements service.UserService with overridable
// functions.
type mockUserService struct {
	LoginFunc                 func(ctx context.Context, username, password string) (*domain.LoginResult, error)
	LogoutFunc                func(ctx context.Context, token string) error
	GetBySessionTokenFunc     func(ctx context.Context, token string) (*domain.AdminUser, error)
	DeleteExpiredSessionsFunc func(ctx context.Context) (int64, error)
}

func (m *mockUserService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	return m.LoginFunc(ctx, username, password)
}

func (m *mockUserService) Logout(ctx context.Context, token string) error {
	return m.LogoutFunc(ctx, token)
}

func (m *mockUserService) GetBySessionToken(ctx context.Context, token string) (*domain.AdminUser, error) {
	return m.GetBySessionTokenFunc(ctx, token)
}

func (m *mockUserService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return m.DeleteExpiredSessionsFunc(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWithAdmin(t *testing.T) {
	admin := &domain.AdminUser{ID: 1, Username: "admin"}

	tests := []struct {
		name        string
		cookieValue string
		lookup      func(ctx context.Context, token string) (*domain.AdminUser, error)
		wantUser    bool
		wantCleared bool
	}{
		{
			name:     "no cookie",
			wantUser: false,
		},
		{
			name:        "valid session",
			cookieValue: "good-token",
			lookup: func(_ context.Context, token string) (*domain.AdminUser, error) {
				require.Equal(t, "good-token", token)
				return admin, nil
			},
			wantUser: true,
		},
		{
			name:        "invalid session clears cookie",
			cookieValue: "stale-token",
			lookup: func(_ context.Context, _ string) (*domain.AdminUser, error) {
				return nil, domain.Unauthorized("UserService.GetBySessionToken", "Invalid or expired session")
			},
			wantUser:    false,
			wantCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockUserService{GetBySessionTokenFunc: tt.lookup}
			mw := NewAuthMiddleware(svc, testLogger(), false)

			var got *domain.AdminUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/contact-forms", nil)
			if tt.cookieValue != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookieValue})
			}
			rec := httptest.NewRecorder()

			mw.WithAdmin(next).ServeHTTP(rec, req)

			// The request always reaches the next handler.
			assert.Equal(t, http.StatusOK, rec.Code)

			if tt.wantUser {
				require.NotNil(t, got)
				assert.Equal(t, admin.Username, got.Username)
			} else {
				assert.Nil(t, got)
			}

			cleared := false
			for _, c := range rec.Result().Cookies() {
				if c.Name == SessionCookieName && c.MaxAge < 0 {
					cleared = true
				}
			}
			assert.Equal(t, tt.wantCleared, cleared)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	mw := NewAuthMiddleware(&mockUserService{}, testLogger(), false)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects anonymous request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/contact-forms", nil)
		rec := httptest.NewRecorder()

		mw.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("passes authenticated request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/contact-forms", nil)
		req = req.WithContext(setUser(req.Context(), &domain.AdminUser{ID: 1, Username: "admin"}))
		rec := httptest.NewRecorder()

		mw.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestStackOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	stacked := Stack(tag("outer"), tag("inner"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	stacked.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestSessionCookieHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "abc123", true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, SessionCookieName, c.Name)
	assert.Equal(t, "abc123", c.Value)
	assert.Equal(t, SessionCookieMaxAge, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec, false)

	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
