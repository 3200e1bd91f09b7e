// Package jwt provides JSON Web Token utilities for the Dream Jobs API.
//
// The jwt package handles token generation, validation, and claims
// extraction for cookie-based session authentication.
//
// # Token Generation
//
// Generate tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:         "secret-key",
//	    Issuer:         "dreamjobs-api",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{Email: "user@example.com"})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	email := claims.Email
//
// # Signing
//
// Tokens are signed with HMAC-SHA256 using a secret sourced from the
// environment. Signature comparison uses hmac.Equal to stay constant-time.
//
// # Claims
//
// Standard JWT claims are supported alongside the email identity claim:
//
//	type Claims struct {
//	    Subject   string // optional subject
//	    IssuedAt  int64  // token creation time (unix seconds)
//	    ExpiresAt int64  // token expiration (unix seconds)
//	    Issuer    string // token issuer
//	    Email     string // identity claim carried by the session cookie
//	}
package jwt
