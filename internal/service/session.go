package service

import (
	"strings"
	"time"

	"github.com/dreamjobs/api/pkg/jwt"
)

// SessionService issues and verifies the signed session tokens carried in
// the session cookie. The email claim supplied by the client at issue time
// is the whole identity model; there is no account record behind it.
type SessionService struct {
	jwtService *jwt.Service
}

// SessionServiceConfig holds configuration for the session service
type SessionServiceConfig struct {
	JWTService *jwt.Service
}

// NewSessionService creates a new session service
func NewSessionService(cfg SessionServiceConfig) *SessionService {
	return &SessionService{jwtService: cfg.JWTService}
}

// Issue signs a session token for the given email
func (s *SessionService) Issue(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	claims := jwt.Claims{
		Subject: email,
		Email:   email,
	}

	return s.jwtService.Sign(claims)
}

// Verify validates a session token and returns its claims
func (s *SessionService) Verify(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}

// TTL returns the session lifetime, used for the cookie expiry
func (s *SessionService) TTL() time.Duration {
	return s.jwtService.GetExpiration()
}
