package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Session Errors =====
var (
	ErrEmailRequired = errors.New("email is required")
)

// ===== Job Errors =====
var (
	ErrJobNotFound   = errors.New("job not found")
	ErrJobIDRequired = errors.New("job id is required")
)
