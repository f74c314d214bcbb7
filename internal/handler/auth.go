package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/metrics"
	"github.com/nirmaan-labs/nirmaan/internal/service"
)

// Session cookie constants. These match middleware/auth.go; they are
// duplicated because middleware imports handler for error responses,
// so handler cannot import middleware back.
const (
	sessionCookieName   = "nirmaan_admin_session"
	sessionCookiePath   = "/"
	sessionCookieMaxAge = 24 * 60 * 60
)

// CurrentUserFunc looks up the admin attached to the request context
// by the auth middleware. Injected to avoid the import cycle above.
type CurrentUserFunc func(r *http.Request) *domain.AdminUser

// AuthHandler handles admin session endpoints.
//
// Routes handled:
// - POST /api/admin/login  -> Login
// - POST /api/admin/logout -> Logout
// - GET  /api/admin/user   -> CurrentUser
type AuthHandler struct {
	userService service.UserService
	currentUser CurrentUserFunc
	logger      *slog.Logger
	isSecure    bool
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(userService service.UserService, currentUser CurrentUserFunc, logger *slog.Logger, isSecure bool) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		currentUser: currentUser,
		logger:      logger,
		isSecure:    isSecure,
	}
}

// Login authenticates the admin and sets the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Login"

	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Request body must be valid JSON"))
		return
	}
	if payload.Username == "" || payload.Password == "" {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Username and password are required"))
		return
	}

	result, err := h.userService.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		metrics.AdminLogins.WithLabelValues("failure").Inc()
		ErrorResponse(w, r, h.logger, err)
		return
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	h.setSessionCookie(w, result.Token)
	writeJSON(w, http.StatusOK, result.User)
}

// Logout invalidates the session and clears the cookie. Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		_ = h.userService.Logout(r.Context(), cookie.Value)
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CurrentUser returns the authenticated admin, or 401.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     sessionCookiePath,
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   h.isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     sessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
