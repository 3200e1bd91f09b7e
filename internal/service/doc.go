// Package service implements the business logic layer for the Dream Jobs API.
//
// The service package contains the domain logic and orchestration of
// repository operations. Services are the primary abstraction between HTTP
// handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations
//   - Errors are returned as sentinel errors defined in errors.go
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Services
//
//   - JobService: listing, lookup, and mutation of job postings
//   - ApplicationService: job applications and the read-time join to jobs
//   - SessionService: signed session token issue and verification
//
// # Example Usage
//
//	svc := NewJobService(JobServiceConfig{JobRepo: jobRepository})
//	page, err := svc.List(ctx, model.JobFilter{Page: 1, Limit: 10})
package service
