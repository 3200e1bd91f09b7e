package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/dreamjobs/api/internal/model"
	"github.com/dreamjobs/api/pkg/jwt"
)

// SessionVerifier defines the interface for session token validation
type SessionVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// ClaimsKey is the context key for verified session claims
const ClaimsKey contextKey = "claims"

// UserEmailKey is the context key for the verified session email
const UserEmailKey contextKey = "userEmail"

// Session returns a middleware that validates the session cookie.
// The token travels in an http-only cookie rather than an Authorization
// header; any failure (missing cookie, bad signature, expired) is a 401.
func Session(verifier SessionVerifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				model.NewUnauthorizedError("missing session cookie").WriteJSON(w)
				return
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					model.NewUnauthorizedError("session expired").WriteJSON(w)
				case errors.Is(err, jwt.ErrInvalidSignature):
					model.NewUnauthorizedError("invalid token signature").WriteJSON(w)
				default:
					model.NewUnauthorizedError("invalid session token").WriteJSON(w)
				}
				return
			}

			// Add verified identity to context
			ctx := context.WithValue(r.Context(), UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOwner rejects requests whose email query parameter does not match
// the verified session identity. Runs after Session, before any store
// access; a valid session acting on someone else's resource is a 403, not
// a 401.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionEmail := GetUserEmail(r.Context())
		if sessionEmail == "" {
			model.NewUnauthorizedError("no session identity").WriteJSON(w)
			return
		}

		requested := r.URL.Query().Get("email")
		if requested != sessionEmail {
			model.NewForbiddenError("email does not match session identity").WriteJSON(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserEmail extracts the verified session email from context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetClaims extracts the session claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
