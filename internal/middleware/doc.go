// Package middleware provides HTTP middleware for the Dream Jobs API.
//
// The middleware package contains reusable middleware components for
// session authentication, ownership checks, rate limiting, and request
// processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Session: session cookie validation and identity extraction
//   - RequireOwner: email ownership check against the session identity
//   - RateLimitMiddleware: request rate limiting per session/IP
//   - RequestID, Logger, Recovery, CORS, Compress: request plumbing
//
// # Session Authentication
//
// The session middleware reads the JWT from an http-only cookie and
// verifies it before the handler runs:
//
//	mux.Handle("GET /api/v1/my-jobs", middleware.Session(verifier, cookieName)(handler))
//
// After authentication, handlers can access the verified identity:
//
//	email := middleware.GetUserEmail(r.Context())
//
// # Ownership
//
// RequireOwner runs after Session and rejects requests whose email query
// parameter names a different user than the session. This keeps guarded
// listings scoped to the caller's own data.
//
// # Rate Limiting
//
// Rate limiting protects against abuse:
//
//	handler = rateLimiter.Limit(handler)
//
// Buckets are keyed by session email when present, client IP otherwise.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserEmail(ctx): returns the verified session email
//   - GetClaims(ctx): returns the full session claims
//   - GetRequestID(ctx): returns the unique request identifier
package middleware
