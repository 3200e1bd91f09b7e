// Package model defines domain entities and data structures for the Dream Jobs API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Job: A job posting owned by the poster's email identity
//   - AppliedJob: An application record linking an applicant email to a job id
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type AppliedJob struct {
//	    ID             string `json:"id"`
//	    ApplicantEmail string `json:"applicantEmail"`
//	    JobID          string `json:"jobId"`
//	}
//
// # Type Coercion
//
// Applicant counts arrive from clients as either JSON numbers or numeric
// strings. The FlexInt type absorbs both and always stores an integer.
//
// # Error Responses
//
// API errors are expressed as RFC 9457 Problem Details (ProblemDetails) with
// a small error-code taxonomy: unauthorized, forbidden, not-found, invalid
// input, and internal/store failures.
package model
