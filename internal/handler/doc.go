// Package handler provides HTTP request handlers for the Dream Jobs API.
//
// The handler package contains all HTTP endpoint implementations organized by domain.
// Each handler struct encapsulates the dependencies needed to serve requests for a
// specific feature area (jobs, applications, session auth).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts a config struct with dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteJSON: raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// The job listing endpoints answer with ListingResponse, whose
// totalPagesCount field carries the unfiltered collection total.
//
// # Authentication
//
// Guarded endpoints sit behind the session cookie middleware plus the
// ownership check; handlers read the verified identity via
// middleware.GetUserEmail(r.Context()).
//
// # Example Usage
//
//	handler := NewJobHandler(JobHandlerConfig{Jobs: jobService})
//	mux.HandleFunc("GET /api/v1/jobs", handler.List)
//	mux.HandleFunc("POST /api/v1/jobs", handler.Create)
package handler
