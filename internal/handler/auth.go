package handler

import (
	"net/http"
	"time"

	"github.com/dreamjobs/api/internal/model"
)

// SessionIssuer signs session tokens and reports their lifetime
type SessionIssuer interface {
	Issue(email string) (string, error)
	TTL() time.Duration
}

// AuthHandler handles the session cookie endpoints. The token never
// appears in a response body; it travels only in the http-only cookie.
type AuthHandler struct {
	sessions   SessionIssuer
	cookieName string
}

// AuthHandlerConfig holds configuration for the auth handler
type AuthHandlerConfig struct {
	Sessions   SessionIssuer
	CookieName string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		sessions:   cfg.Sessions,
		cookieName: cfg.CookieName,
	}
}

// AccessTokenRequest represents the access-token endpoint request body
type AccessTokenRequest struct {
	Email string `json:"email"`
}

// SessionResponse acknowledges a session change
type SessionResponse struct {
	Success bool `json:"success"`
}

// AccessToken handles POST /api/v1/auth/access-token.
// The email in the body is taken at face value; issuing a session is the
// only place identity enters the system.
func (h *AuthHandler) AccessToken(w http.ResponseWriter, r *http.Request) {
	var req AccessTokenRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	token, err := h.sessions.Issue(req.Email)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	WriteJSON(w, http.StatusOK, SessionResponse{Success: true})
}

// AccessCancel handles POST /api/v1/auth/access-cancel
func (h *AuthHandler) AccessCancel(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	WriteJSON(w, http.StatusOK, SessionResponse{Success: true})
}
