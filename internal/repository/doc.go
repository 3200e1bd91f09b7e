// Package repository implements the data access layer for the Dream Jobs API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity:
// job postings and job applications.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, List, Delete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Database Connection
//
// Repositories accept a database.Database interface, allowing:
//
//   - Connection pooling and management at a higher level
//   - Easy testing with mock implementations
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - LIMIT/START for offset pagination
//   - count() ... GROUP ALL for collection totals
//   - Field-level increment (+=) for the atomic applicant counter
//
// # Example Usage
//
//	repo := NewJobRepository(db)
//	job, err := repo.GetByID(ctx, "job:abc123")
//	if err != nil {
//	    return err
//	}
//	if job == nil {
//	    // Handle not found
//	}
package repository
